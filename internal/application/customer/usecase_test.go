package customer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/validated-customer/internal/application/customer"
	"github.com/jhoicas/validated-customer/internal/application/dto"
	"github.com/jhoicas/validated-customer/internal/domain"
	"github.com/jhoicas/validated-customer/pkg/logger"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestBuild_Completo(t *testing.T) {
	uc := customer.NewUseCase(nil)

	c, err := uc.Build(dto.CustomerInput{
		Name:  strPtr(" John "),
		Age:   intPtr(25),
		Email: strPtr("john@test.com"),
	})
	require.NoError(t, err)

	view := uc.View(c)
	assert.Equal(t, "John", view.Name)
	require.NotNil(t, view.Age)
	assert.Equal(t, 25, *view.Age)
	require.NotNil(t, view.Email)
	assert.Equal(t, "john@test.com", *view.Email)
	assert.Equal(t, "Customer{name='John', age=25, email='john@test.com'}", view.Summary)
}

func TestBuild_SoloNombre(t *testing.T) {
	uc := customer.NewUseCase(logger.Nop())

	c, err := uc.Build(dto.CustomerInput{Name: strPtr("O'Connor")})
	require.NoError(t, err)

	view := uc.View(c)
	assert.Nil(t, view.Age)
	assert.Nil(t, view.Email)
}

func TestBuild_FallaRapidoYRegistraElCampo(t *testing.T) {
	var buf bytes.Buffer
	uc := customer.NewUseCase(logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf}))

	_, err := uc.Build(dto.CustomerInput{
		Name:  strPtr("John"),
		Age:   intPtr(91),
		Email: strPtr("invalid-email"),
	})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindAgeRange))
	assert.False(t, domain.IsKind(err, domain.KindFormat))
	assert.Contains(t, buf.String(), `"field":"age"`)
	assert.Contains(t, buf.String(), `"kind":"age-range"`)
}

func TestBuild_NombreAusente(t *testing.T) {
	uc := customer.NewUseCase(nil)

	_, err := uc.Build(dto.CustomerInput{Age: intPtr(30)})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequiredField)
}
