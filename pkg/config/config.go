package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Log      LogConfig
	Customer CustomerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// CustomerConfig datos del cliente candidato a validar. nil = no definido.
type CustomerConfig struct {
	Name  *string
	Age   *int
	Email *string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, CUSTOMER_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya preparada.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	// CUSTOMER_EMAIL="" debe llegar como cadena vacía, no como ausente.
	v.AllowEmptyEnv(true)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	age, err := getOptionalInt(v, "CUSTOMER_AGE")
	if err != nil {
		return nil, err
	}

	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "validated-customer"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Customer: CustomerConfig{
			Name:  getOptionalString(v, "CUSTOMER_NAME"),
			Age:   age,
			Email: getOptionalString(v, "CUSTOMER_EMAIL"),
		},
	}, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getOptionalString distingue "no definido" (nil) de cadena vacía.
func getOptionalString(v *viper.Viper, key string) *string {
	if !v.IsSet(key) {
		return nil
	}
	s := v.GetString(key)
	return &s
}

func getOptionalInt(v *viper.Viper, key string) (*int, error) {
	if !v.IsSet(key) {
		return nil, nil
	}
	switch val := v.Get(key).(type) {
	case int:
		return &val, nil
	default:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return nil, fmt.Errorf("config: %s debe ser un entero: %w", key, err)
		}
		return &n, nil
	}
}
