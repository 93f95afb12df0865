package core

import (
	"errors"
	"fmt"
	"strings"
)

// Erros sentinela pré-definidos para os tipos comuns de falha na aplicação.
// Podem ser verificados com errors.Is(err, core.ErrNotFound).
var (
	// --- Erros Gerais ---
	ErrInternal      = errors.New("erro interno da aplicação")
	ErrConfiguration = errors.New("erro de configuração da aplicação")

	// --- Erros da API remota ---
	ErrAPI      = errors.New("erro na resposta da API")
	ErrNetwork  = errors.New("falha de comunicação com a API")
	ErrNotFound = errors.New("registro não encontrado")

	// --- Erros de Validação e Entrada ---
	ErrValidation   = errors.New("erro de validação nos dados fornecidos")
	ErrInvalidInput = errors.New("entrada de dados inválida ou mal formatada")

	// --- Erros Específicos da Aplicação ---
	ErrExport = errors.New("falha ao exportar dados")
)

// ValidationError é um erro que carrega detalhes sobre os campos que falharam
// na validação. Fica confinado ao formulário que o produziu: nunca atravessa a
// camada de serviço.
type ValidationError struct {
	// Message é uma mensagem geral sobre a falha de validação.
	Message string
	// Fields mapeia caminhos de campo (ex: "empresa.cnpj") para as respectivas
	// mensagens de erro.
	Fields map[string]string
}

// NewValidationError cria uma nova instância de ValidationError.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// Error implementa a interface error.
func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Message != "" {
		sb.WriteString(ve.Message)
	} else {
		sb.WriteString("Erro de validação")
	}
	if len(ve.Fields) > 0 {
		sb.WriteString(" (Detalhes: ")
		fieldErrors := make([]string, 0, len(ve.Fields))
		for field, desc := range ve.Fields {
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s: %s", field, desc))
		}
		sb.WriteString(strings.Join(fieldErrors, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

// Is permite que errors.Is(err, core.ErrValidation) funcione para qualquer
// *ValidationError.
func (ve *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// APIError representa uma resposta não-2xx da API remota, com o status HTTP e
// a melhor mensagem que conseguimos extrair do corpo de erro.
type APIError struct {
	// StatusCode é o código HTTP retornado (ex: 409).
	StatusCode int
	// Message é a mensagem extraída do corpo JSON de erro, ou um fallback
	// "<status> <statusText>".
	Message string
}

// NewAPIError cria um novo APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// Error implementa a interface error.
func (ae *APIError) Error() string {
	return ae.Message
}

// Is permite errors.Is(err, core.ErrAPI) para qualquer *APIError, e
// errors.Is(err, core.ErrNotFound) quando o status é 404.
func (ae *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	return target == ErrNotFound && ae.StatusCode == 404
}

// WrapErrorf cria um novo erro que envolve um erro existente com uma mensagem
// formatada, preservando o original para errors.Is e errors.As.
func WrapErrorf(originalErr error, format string, args ...interface{}) error {
	if originalErr == nil {
		return fmt.Errorf(format, args...)
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), originalErr)
}
