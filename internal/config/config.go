package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	Logging  LoggingConfig
	Mail     MailConfig
	Checkout CheckoutConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host              string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port              int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout       time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOriginsCSV string        `env:"SERVER_ALLOWED_ORIGINS"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `env:"LOG_LEVEL" envDefault:"info"`
	Format        string `env:"LOG_FORMAT" envDefault:"text"` // text|json
	IncludeCaller bool   `env:"LOG_INCLUDE_CALLER" envDefault:"false"`
}

// MailConfig carries the transactional-email transport credential and the
// process-wide sender identity. Both are required at startup and immutable
// for the process lifetime.
type MailConfig struct {
	SendGridAPIKey string `env:"SENDGRID_API_KEY,required,notEmpty"`
	SenderEmail    string `env:"SENDER_EMAIL,required,notEmpty"`
	SenderName     string `env:"SENDER_NAME" envDefault:"FTUK"`
}

// CheckoutConfig tunes the simulated authorization flow.
type CheckoutConfig struct {
	ProcessingDelay time.Duration `env:"CHECKOUT_PROCESSING_DELAY" envDefault:"900ms"`
}

// Load reads configuration from environment variables, applying defaults.
// Missing required values (the mail credential and sender address) are a
// startup error, never a per-request one.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return Config{}, fmt.Errorf("port %d is out of range", cfg.HTTP.Port)
	}
	return cfg, nil
}
