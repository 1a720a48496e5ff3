// Package config provides a type-safe, generic and cached way to load
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `dario.cat/mergo`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct using `env` tags and caches
//     the result per type; Reload and ResetCache drop cached values.
//   - Merge fills the zero fields of a value from a defaults value, which lets
//     callers override only part of an env-loaded configuration.
//
// # Usage
//
//	type Config struct {
//	    Locale    string `env:"VALID_LOCALE" envDefault:"en"`
//	    Threshold int    `env:"VALID_PARALLEL_THRESHOLD" envDefault:"0"`
//	}
//
//	var defaults Config
//	if err := config.Load(&defaults); err != nil {
//	    return err
//	}
//	cfg := Config{Locale: "de"}
//	if err := config.Merge(&cfg, defaults); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures are joined with the package sentinels (ErrParsingConfig,
// ErrLoadingEnvFile, ErrMergingConfig, ErrNilPointer) and can be matched with
// errors.Is.
package config
