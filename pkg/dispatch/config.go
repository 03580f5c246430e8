package dispatch

import (
	"time"

	"github.com/dmitrymomot/observing/pkg/config"
)

const (
	// DefaultMainQueueName labels the process-wide default queue.
	DefaultMainQueueName = "main"

	// DefaultShutdownTimeout bounds Run's drain phase.
	DefaultShutdownTimeout = 5 * time.Second
)

// Config describes the process-wide default queue.
type Config struct {
	MainQueueName   string        `env:"DISPATCH_MAIN_QUEUE_NAME" envDefault:"main"`
	ShutdownTimeout time.Duration `env:"DISPATCH_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns the configuration used when the environment is not consulted.
func DefaultConfig() Config {
	return Config{
		MainQueueName:   DefaultMainQueueName,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// LoadConfig reads Config from the environment (and the default .env file).
// On failure it returns DefaultConfig together with the error.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// NewSerialFromConfig creates a serial queue named and bounded by cfg.
// Explicit opts are applied after the config values.
func NewSerialFromConfig(cfg Config, opts ...Option) *Serial {
	name := cfg.MainQueueName
	if name == "" {
		name = DefaultMainQueueName
	}
	return NewSerial(name, append([]Option{WithShutdownTimeout(cfg.ShutdownTimeout)}, opts...)...)
}
