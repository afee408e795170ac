package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrRequiredField = errors.New("campo obligatorio")
	ErrValidation    = errors.New("validación fallida")
)

// ValidationKind clasifica la regla que incumplió un valor.
type ValidationKind string

const (
	KindEmpty    ValidationKind = "empty"
	KindLength   ValidationKind = "length"
	KindCharset  ValidationKind = "charset"
	KindAgeRange ValidationKind = "age-range"
	KindFormat   ValidationKind = "format"
)

// RequiredFieldError indica que no se suministró un campo obligatorio.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequiredField, e.Field)
}

func (e *RequiredFieldError) Unwrap() error { return ErrRequiredField }

// ValidationError indica que un valor suministrado no cumple una restricción.
type ValidationError struct {
	Field   string
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%s/%s): %s", ErrValidation, e.Field, e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError construye un ValidationError.
func NewValidationError(field string, kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Message: message}
}

// IsKind indica si err (o alguno de los errores que envuelve) es un
// ValidationError del tipo indicado.
func IsKind(err error, kind ValidationKind) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind == kind
	}
	return false
}
