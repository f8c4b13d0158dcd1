package frappeclient

import (
	"errors"
	"fmt"
	"strings"
)

// RequestError representa uma resposta de erro do backend Frappe, com o
// corpo preservado para inspeção (o Frappe descreve erros de schema no corpo)
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("requisição ao Frappe falhou com status %d: %s", e.StatusCode, e.Body)
}

// IsUnknownFieldError indica se o erro é uma rejeição do backend por campo
// desconhecido no doctype (schema antigo sem a coluna).
func IsUnknownFieldError(err error, field string) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}

	if reqErr.StatusCode < 400 || reqErr.StatusCode >= 600 {
		return false
	}

	body := strings.ToLower(reqErr.Body)
	return strings.Contains(body, strings.ToLower(field)) &&
		(strings.Contains(body, "unknown column") ||
			strings.Contains(body, "no such column") ||
			strings.Contains(body, "invalid field") ||
			strings.Contains(body, "fieldname"))
}
