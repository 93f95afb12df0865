package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"cnpj válido", "11222333000181", true},
		{"dígito verificador errado", "11222333000182", false},
		{"todos os dígitos iguais", "00000000000000", false},
		{"curto demais", "1122233300018", false},
		{"longo demais", "112223330001810", false},
		{"com máscara não é aceito", "11.222.333/0001-81", false},
		{"letras no meio", "112223330001a1", false},
		{"vazio", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCNPJ(tt.in))
		})
	}
}
