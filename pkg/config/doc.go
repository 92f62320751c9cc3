// Package config loads typed configuration from environment variables and
// optional .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into a struct annotated with `env` tags and
//     caches the result per type, so later calls are served from memory.
//   - MustLoad and MustLoadEnv panic on failure, for configuration the
//     process cannot start without.
//   - ResetCache clears the cache, which tests use after changing variables.
//
// # Usage
//
//	type Options struct {
//	    Formatters bool   `env:"BRKIT_FORMATTERS" envDefault:"false"`
//	    Placeholder string `env:"BRKIT_PLACEHOLDER" envDefault:"-"`
//	}
//
//	var opts Options
//	if err := config.Load(&opts); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig   – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile  – a .env file given to LoadEnv could not be read.
//   - ErrConfigNotLoaded – the type is missing from the cache after parsing.
//   - ErrNilPointer      – nil pointer passed to Load or MustLoad.
package config
