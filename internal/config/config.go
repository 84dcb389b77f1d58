package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Tracing TracingConfig
}

type ServerConfig struct {
	Port            int           `env:"PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type StoreConfig struct {
	// SeedData loads the demo dataset on startup so the API answers with
	// something useful out of the box.
	SeedData bool `env:"SEED_DATA" envDefault:"true"`
}

type TracingConfig struct {
	Enabled      bool   `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"storefront-api"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
