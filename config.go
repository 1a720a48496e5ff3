package valid

import (
	"github.com/dmitrymomot/valid/pkg/config"
	"github.com/dmitrymomot/valid/pkg/i18n"
	"github.com/dmitrymomot/valid/pkg/logger"
)

// Config holds the engine settings read from the environment.
type Config struct {
	// Locale is the language used for messages when the context carries none.
	Locale string `env:"VALID_LOCALE" envDefault:"en"`
	// MessagesDir is an optional directory of YAML or JSON catalogues
	// layered over the built-in ones.
	MessagesDir string `env:"VALID_MESSAGES_DIR"`
	// ParallelThreshold is the collection size from which elements are
	// validated concurrently. Zero keeps validation sequential.
	ParallelThreshold int `env:"VALID_PARALLEL_THRESHOLD" envDefault:"0"`
	// Workers caps parallel validation goroutines. Zero means GOMAXPROCS.
	Workers int `env:"VALID_WORKERS" envDefault:"0"`

	LogLevel  string `env:"VALID_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VALID_LOG_FORMAT" envDefault:"text"`
	Env       string `env:"VALID_ENV" envDefault:"development"`
	Service   string `env:"VALID_SERVICE" envDefault:"valid"`
}

// DefaultConfig returns the settings used for every field left empty.
func DefaultConfig() Config {
	return Config{
		Locale:    i18n.DefaultLanguage,
		LogLevel:  "info",
		LogFormat: string(logger.FormatText),
		Env:       logger.EnvDevelopment,
		Service:   "valid",
	}
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) withDefaults() (Config, error) {
	if err := config.Merge(&c, DefaultConfig()); err != nil {
		return Config{}, err
	}
	return c, nil
}
