// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files (the default .env is loaded once,
//     lazily, and its absence is ignored).
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so each type is parsed once.
//   - MustLoad panics on failure, for settings a process cannot start without.
//   - ResetCache clears the cache between tests.
//
// # Usage
//
//	var cfg dispatch.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors are sentinels comparable with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer. Parser errors are
// joined to ErrParsingConfig so the underlying cause stays inspectable.
package config
