package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Env struct {
	AppAddr string `env:"APP_ADDR" envDefault:":8080"`
	GinMode string `env:"GIN_MODE"`

	DBUser string `env:"DB_USER" envDefault:"root"`
	DBPass string `env:"DB_PASS"`
	DBHost string `env:"DB_HOST" envDefault:"127.0.0.1:3306"`
	DBName string `env:"DB_NAME" envDefault:"busticket"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"super-secret-key-change-me"`

	// ReconcileInterval controls the background seat-repair job.
	// Zero disables the scheduler; the -reconcile flag still works.
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" envDefault:"0"`

	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoadEnv parses configuration from environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
