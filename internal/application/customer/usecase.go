package customer

import (
	"errors"
	"fmt"

	"github.com/jhoicas/validated-customer/internal/application/dto"
	"github.com/jhoicas/validated-customer/internal/domain"
	"github.com/jhoicas/validated-customer/internal/domain/entity"
	"github.com/jhoicas/validated-customer/pkg/logger"
)

// UseCase construye clientes validados a partir de datos de entrada.
type UseCase struct {
	log *logger.Logger
}

// NewUseCase construye el caso de uso. log nil equivale a logger.Nop().
func NewUseCase(log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{log: log}
}

// Build aplica Named, WithAge y WithEmail en ese orden y se detiene en el primer error.
// El rechazo se registra aquí en nivel warn; el error devuelto va envuelto con
// "crear cliente: %w" y sigue siendo clasificable con errors.Is/As y domain.IsKind.
func (uc *UseCase) Build(in dto.CustomerInput) (entity.Customer, error) {
	c, err := entity.NamedFrom(in.Name)
	if err == nil {
		c, err = c.WithAge(in.Age)
	}
	if err == nil {
		c, err = c.WithEmail(in.Email)
	}
	if err != nil {
		uc.logFailure(err)
		return entity.Customer{}, fmt.Errorf("crear cliente: %w", err)
	}

	uc.log.Debug().Str("customer", c.String()).Uint64("hash", c.Hash()).Msg("cliente válido")
	return c, nil
}

func (uc *UseCase) logFailure(err error) {
	ev := uc.log.Warn().Err(err)
	var ve *domain.ValidationError
	var rf *domain.RequiredFieldError
	switch {
	case errors.As(err, &ve):
		ev = ev.Str("field", ve.Field).Str("kind", string(ve.Kind))
	case errors.As(err, &rf):
		ev = ev.Str("field", rf.Field)
	}
	ev.Msg("cliente rechazado")
}

// View mapea el cliente a su representación de salida.
func (uc *UseCase) View(c entity.Customer) dto.CustomerView {
	out := dto.CustomerView{Name: c.Name(), Summary: c.String()}
	if age, ok := c.Age(); ok {
		out.Age = &age
	}
	if email, ok := c.Email(); ok {
		out.Email = &email
	}
	return out
}
