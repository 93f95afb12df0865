package utils

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// telefoneRegex cobre números fixos (8 dígitos) e celulares (9 dígitos),
// sempre precedidos do DDD de 2 dígitos.
var telefoneRegex = regexp.MustCompile(`^(\d{2})(\d{4,5})(\d{4})$`)

// CleanDigits remove tudo que não for dígito.
func CleanDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// FormatCNPJ aplica a máscara de exibição XX.XXX.XXX/XXXX-XX de forma
// incremental: entradas parciais produzem saídas parcialmente formatadas,
// então a função pode ser chamada a cada tecla digitada. É idempotente
// sobre strings já formatadas.
func FormatCNPJ(raw string) string {
	digits := CleanDigits(raw)

	var sb strings.Builder
	for i, r := range digits {
		switch i {
		case 2, 5:
			sb.WriteByte('.')
		case 8:
			sb.WriteByte('/')
		case 12:
			sb.WriteByte('-')
		}
		sb.WriteRune(r)
	}

	formatted := sb.String()
	if len(formatted) > 18 {
		formatted = formatted[:18]
	}
	return formatted
}

// FormatTelefone formata um telefone brasileiro como "(DD) NNNNN-NNNN".
// Entradas com mais de 11 dígitos são devolvidas sem alteração.
func FormatTelefone(raw string) string {
	digits := CleanDigits(raw)
	if len(digits) > 11 {
		return raw
	}
	return telefoneRegex.ReplaceAllString(digits, "($1) $2-$3")
}
