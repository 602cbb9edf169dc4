package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cached struct {
	value any
	err   error
}

var (
	// parsed holds one entry per config type; the first Load wins.
	parsed sync.Map // reflect.Type -> func() cached

	defaultEnvLoaded sync.Once
)

// LoadEnv reads the given .env files into the process environment. Variables
// that are already set are not overridden, so the real environment wins.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the environment into v using `env` struct tags. Each config
// type is parsed once per process; later calls copy the cached result.
// A .env file in the working directory is read on first use when present.
//
//	type Config struct {
//	    LogLevel string `env:"HELPERS_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	once, _ := parsed.LoadOrStore(key, sync.OnceValue(func() cached {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			return cached{err: errors.Join(ErrParsingConfig, err)}
		}
		return cached{value: cfg}
	}))

	res := once.(func() cached)()
	if res.err != nil {
		// Failed parses are retried on the next call.
		parsed.CompareAndDelete(key, once)
		return res.err
	}
	*v = res.value.(T)
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every parsed config. Intended for tests that change
// the environment between loads.
func ResetCache() {
	parsed.Clear()
}
