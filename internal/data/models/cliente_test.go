package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() ClienteCreate {
	return ClienteCreate{
		CNPJ:          "11.222.333/0001-81",
		Periodicidade: 30,
		StatusCliente: "ativo",
		Nacional:      true,
		Empresa: Empresa{
			IDEmpresa:   "EMP001",
			NomeEmpresa: "Empresa Modelo LTDA",
			CNPJ:        "11.222.333/0001-81",
		},
	}
}

func TestClienteCreateValidate(t *testing.T) {
	t.Run("rascunho válido passa", func(t *testing.T) {
		require.NoError(t, validCreate().Validate())
	})

	t.Run("todos os erros são coletados de uma vez", func(t *testing.T) {
		cc := ClienteCreate{}
		err := cc.Validate()
		require.Error(t, err)

		fields := FlattenValidationErrors(err)
		assert.Contains(t, fields, "cnpj")
		assert.Contains(t, fields, "periodicidade")
		assert.Contains(t, fields, "statusCliente")
		assert.Contains(t, fields, "empresa.idEmpresa")
		assert.Contains(t, fields, "empresa.nomeEmpresa")
		assert.Contains(t, fields, "empresa.cnpj")
	})

	t.Run("cnpj sem máscara é rejeitado", func(t *testing.T) {
		cc := validCreate()
		cc.CNPJ = "11222333000181"
		fields := FlattenValidationErrors(cc.Validate())
		assert.Equal(t, "CNPJ do Cliente inválido. Use o formato XX.XXX.XXX/XXXX-XX.", fields["cnpj"])
	})

	t.Run("periodicidade zero ou negativa é rejeitada", func(t *testing.T) {
		for _, p := range []int{0, -5} {
			cc := validCreate()
			cc.Periodicidade = p
			fields := FlattenValidationErrors(cc.Validate())
			assert.Equal(t, "Periodicidade deve ser um número positivo.", fields["periodicidade"])
		}
	})

	t.Run("idEmpresa com 7 caracteres é rejeitado", func(t *testing.T) {
		cc := validCreate()
		cc.Empresa.IDEmpresa = "EMP0001"
		fields := FlattenValidationErrors(cc.Validate())
		assert.Equal(t, "ID da Empresa não pode ter mais de 6 caracteres.", fields["empresa.idEmpresa"])
	})

	t.Run("nenhum tipo de CND marcado ainda é válido", func(t *testing.T) {
		cc := validCreate()
		cc.Nacional = false
		cc.Municipal = false
		cc.Estadual = false
		assert.NoError(t, cc.Validate())
	})
}

func TestNewClienteCreateDefaults(t *testing.T) {
	cc := NewClienteCreate()
	assert.Equal(t, 30, cc.Periodicidade)
	assert.Equal(t, "ativo", cc.StatusCliente)
	assert.True(t, cc.Nacional)
	assert.False(t, cc.Municipal)
	assert.False(t, cc.Estadual)
}

func TestFromCliente(t *testing.T) {
	c := Cliente{
		ID:            42,
		CNPJ:          "11.222.333/0001-81",
		Periodicidade: 15,
		StatusCliente: "inativo",
		Estadual:      true,
		Empresa: Empresa{
			IDEmpresa:   "ABC",
			NomeEmpresa: "ABC Comércio",
			CNPJ:        "11.222.333/0001-81",
		},
	}
	cc := FromCliente(&c)
	assert.Equal(t, c.CNPJ, cc.CNPJ)
	assert.Equal(t, c.Periodicidade, cc.Periodicidade)
	assert.Equal(t, c.StatusCliente, cc.StatusCliente)
	assert.Equal(t, c.Empresa, cc.Empresa)
	assert.True(t, cc.Estadual)
	assert.False(t, cc.Nacional)
}

func TestNomeExibicao(t *testing.T) {
	c := Cliente{
		CNPJ:    "11.222.333/0001-81",
		Empresa: Empresa{NomeEmpresa: "Padaria Modelo"},
	}
	assert.Equal(t, "Padaria Modelo (11.222.333/0001-81)", c.NomeExibicao())
}

func TestCleanCNPJ(t *testing.T) {
	assert.Equal(t, "11222333000181", CleanCNPJ("11.222.333/0001-81"))
	assert.Equal(t, "", CleanCNPJ("abc-./"))
	assert.Equal(t, "123", CleanCNPJ("123"))
}
