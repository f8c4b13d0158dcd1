package metas

import (
	"errors"
	"fmt"
)

var (
	ErrMetaNotFound        = errors.New("meta não encontrada")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidMonth        = errors.New("mês inválido para meta mensal")
	ErrInvalidValue        = errors.New("valor de meta inválido")
	ErrInvalidTipoMeta     = errors.New("tipo de meta inválido")
)

// MetaError carrega o código de erro da API junto do erro base
type MetaError struct {
	Err     error
	Code    string
	Details string
}

func (e *MetaError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MetaError) Unwrap() error {
	return e.Err
}

func NewMetaError(baseErr error, code string, details string) *MetaError {
	return &MetaError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro veio da validação da meta
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingRequiredData) ||
		errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrInvalidValue) ||
		errors.Is(err, ErrInvalidTipoMeta)
}
