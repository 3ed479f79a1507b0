package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds everything the service needs at startup: server
// address, Firestore credentials, SMTP credentials, JWT secrets and the
// reminder scanner settings.
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:":8080"`

	// Firestore
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS,required"`
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`

	// JWT
	JwtSecret        string `env:"JWT_SECRET_KEY,required"`
	JwtRefreshSecret string `env:"JWT_REFRESH_SECRET_KEY,required"`

	// SMTP
	SMTPHost     string `env:"SMTP_HOST,required"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME,required"`
	SMTPPassword string `env:"SMTP_PASSWORD,required"`
	SMTPFrom     string `env:"SMTP_FROM"`

	// Reminder scanner
	ScanInterval  time.Duration `env:"SCAN_INTERVAL" envDefault:"5m"`
	ScanLookahead time.Duration `env:"SCAN_LOOKAHEAD" envDefault:"5m"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the .env file when present and parses the environment into a
// Configuration. A missing .env is fine on hosted platforms where the env
// vars are injected directly.
func Load() (*Configuration, error) {
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUsername
	}
	return cfg, nil
}
