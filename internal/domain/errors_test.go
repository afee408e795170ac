package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/validated-customer/internal/domain"
)

func TestValidationError_EnvueltoSigueClasificable(t *testing.T) {
	base := domain.NewValidationError("age", domain.KindAgeRange, "la edad debe estar entre 0 y 90")
	err := fmt.Errorf("crear cliente: %w", base)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, domain.IsKind(err, domain.KindAgeRange))
	assert.False(t, domain.IsKind(err, domain.KindFormat))

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "age", ve.Field)
	assert.Contains(t, err.Error(), "age/age-range")
}

func TestRequiredFieldError(t *testing.T) {
	err := &domain.RequiredFieldError{Field: "name"}

	assert.ErrorIs(t, err, domain.ErrRequiredField)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.False(t, domain.IsKind(err, domain.KindEmpty))
	assert.Contains(t, err.Error(), "name")
}

func TestIsKind_ErrorAjeno(t *testing.T) {
	assert.False(t, domain.IsKind(nil, domain.KindEmpty))
	assert.False(t, domain.IsKind(errors.New("otro"), domain.KindEmpty))
}
