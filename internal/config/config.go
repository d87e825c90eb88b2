package config

import "time"

type HTTPConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0" validate:"required"`
	Port int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
}

// DirectoryConfig describes the remote user source and how views over it behave.
type DirectoryConfig struct {
	// Base URL of the remote API, e.g. "https://reqres.in".
	SourceURL string `env:"SOURCE_URL" envDefault:"https://reqres.in" validate:"required,url"`
	UsersPath string `env:"USERS_PATH" envDefault:"/api/users" validate:"required,startswith=/"`
	// Sent as x-api-key when set.
	APIKey string `env:"API_KEY"`

	PageSize int `env:"PAGE_SIZE" envDefault:"2" validate:"min=1"`

	// Zero means no timeout: a hung request keeps the view loading.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"0s" validate:"min=0"`

	ViewIdleTTL   time.Duration `env:"VIEW_IDLE_TTL" envDefault:"30m" validate:"min=0"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m" validate:"min=0"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"userdir" validate:"required"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`

	HTTP          HTTPConfig          `envPrefix:"HTTP_"`
	Directory     DirectoryConfig     `envPrefix:"DIRECTORY_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
}
