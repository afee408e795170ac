// Command customercheck valida el cliente definido en CUSTOMER_NAME,
// CUSTOMER_AGE y CUSTOMER_EMAIL e imprime su representación.
//
// Códigos de salida: 0 válido, 1 rechazado, 2 error de configuración.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/validated-customer/internal/application/customer"
	"github.com/jhoicas/validated-customer/internal/application/dto"
	"github.com/jhoicas/validated-customer/pkg/config"
	"github.com/jhoicas/validated-customer/pkg/logger"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "cargar configuración:", err)
		return 2
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   stderr,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando validación")

	// El caso de uso ya registra el rechazo con campo y tipo.
	uc := customer.NewUseCase(log)
	c, err := uc.Build(dto.CustomerInput{
		Name:  cfg.Customer.Name,
		Age:   cfg.Customer.Age,
		Email: cfg.Customer.Email,
	})
	if err != nil {
		return 1
	}

	fmt.Fprintln(stdout, c)
	return 0
}
