package models

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// cnpjFormatRegex exige o formato de exibição completo XX.XXX.XXX/XXXX-XX,
// que é o formato em que a API armazena e retorna os CNPJs.
var cnpjFormatRegex = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// Empresa representa a empresa vinculada a um cliente, conforme a API.
// IDEmpresa é a chave externa usada nas atualizações (PUT /clientes/{idEmpresa}).
type Empresa struct {
	IDEmpresa   string `json:"idEmpresa"`
	NomeEmpresa string `json:"nomeEmpresa"`
	CNPJ        string `json:"cnpj"`
}

// Validate aplica as regras de validação dos campos da empresa.
func (e Empresa) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.IDEmpresa,
			validation.Required.Error("ID da Empresa é obrigatório."),
			validation.Length(1, 6).Error("ID da Empresa não pode ter mais de 6 caracteres."),
		),
		validation.Field(&e.NomeEmpresa,
			validation.Required.Error("Nome da Empresa é obrigatório."),
		),
		validation.Field(&e.CNPJ,
			validation.Required.Error("CNPJ da Empresa inválido. Use o formato XX.XXX.XXX/XXXX-XX."),
			validation.Match(cnpjFormatRegex).Error("CNPJ da Empresa inválido. Use o formato XX.XXX.XXX/XXXX-XX."),
		),
	)
}

// Cliente representa um cliente monitorado, como retornado pela API.
// O ID é atribuído pelo servidor e imutável após a criação.
type Cliente struct {
	ID            int64   `json:"id"`
	CNPJ          string  `json:"cnpj"`
	Periodicidade int     `json:"periodicidade"`
	StatusCliente string  `json:"statusCliente"`
	Nacional      bool    `json:"nacional"`
	Municipal     bool    `json:"municipal"`
	Estadual      bool    `json:"estadual"`
	Empresa       Empresa `json:"empresa"`
}

// NomeExibicao retorna o rótulo usado na UI para identificar o cliente,
// ex: "Padaria Modelo LTDA (12.345.678/0001-90)".
func (c *Cliente) NomeExibicao() string {
	return fmt.Sprintf("%s (%s)", c.Empresa.NomeEmpresa, c.CNPJ)
}

// ClienteCreate é o payload de criação e de atualização de um cliente.
// A criação (POST) não envia ID; a atualização (PUT) envia o registro
// completo, endereçado pela chave externa Empresa.IDEmpresa.
type ClienteCreate struct {
	CNPJ          string  `json:"cnpj"`
	Periodicidade int     `json:"periodicidade"`
	StatusCliente string  `json:"statusCliente"`
	Nacional      bool    `json:"nacional"`
	Municipal     bool    `json:"municipal"`
	Estadual      bool    `json:"estadual"`
	Empresa       Empresa `json:"empresa"`
}

// NewClienteCreate retorna o rascunho padrão do formulário de cadastro.
func NewClienteCreate() ClienteCreate {
	return ClienteCreate{
		Periodicidade: 30,
		StatusCliente: "ativo",
		Nacional:      true,
	}
}

// FromCliente monta o payload a partir de um registro existente (modo edição).
func FromCliente(c *Cliente) ClienteCreate {
	return ClienteCreate{
		CNPJ:          c.CNPJ,
		Periodicidade: c.Periodicidade,
		StatusCliente: c.StatusCliente,
		Nacional:      c.Nacional,
		Municipal:     c.Municipal,
		Estadual:      c.Estadual,
		Empresa:       c.Empresa,
	}
}

// Validate aplica todas as regras de validação do formulário de uma só vez.
// Não há exigência de pelo menos um tipo de CND marcado.
func (cc ClienteCreate) Validate() error {
	return validation.ValidateStruct(&cc,
		validation.Field(&cc.CNPJ,
			validation.Required.Error("CNPJ do Cliente inválido. Use o formato XX.XXX.XXX/XXXX-XX."),
			validation.Match(cnpjFormatRegex).Error("CNPJ do Cliente inválido. Use o formato XX.XXX.XXX/XXXX-XX."),
		),
		validation.Field(&cc.Periodicidade,
			validation.Required.Error("Periodicidade deve ser um número positivo."),
			validation.Min(1).Error("Periodicidade deve ser um número positivo."),
		),
		validation.Field(&cc.StatusCliente,
			validation.Required.Error("Status do Cliente é obrigatório."),
		),
		validation.Field(&cc.Empresa),
	)
}

// FlattenValidationErrors converte o erro retornado por Validate em um mapa
// plano de caminho-de-campo -> mensagem, usando notação pontilhada para os
// campos aninhados da empresa (ex: "empresa.cnpj").
func FlattenValidationErrors(err error) map[string]string {
	fields := make(map[string]string)
	flattenInto(fields, "", err)
	return fields
}

func flattenInto(dst map[string]string, prefix string, err error) {
	if err == nil {
		return
	}
	ve, ok := err.(validation.Errors)
	if !ok {
		if prefix != "" {
			dst[prefix] = err.Error()
		}
		return
	}
	for name, fieldErr := range ve {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if nested, ok := fieldErr.(validation.Errors); ok {
			flattenInto(dst, key, nested)
		} else {
			dst[key] = fieldErr.Error()
		}
	}
}

// CleanCNPJ remove os caracteres não numéricos de uma string de CNPJ.
func CleanCNPJ(cnpjStr string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1 // Descarta o caractere
	}, cnpjStr)
}
