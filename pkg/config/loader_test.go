package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/helpers/pkg/config"
)

type appConfig struct {
	Name    string   `env:"TEST_HELPERS_NAME" envDefault:"helpers"`
	Workers int      `env:"TEST_HELPERS_WORKERS" envDefault:"2"`
	Debug   bool     `env:"TEST_HELPERS_DEBUG"`
	Tags    []string `env:"TEST_HELPERS_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"TEST_HELPERS_TOKEN,required"`
}

type fileConfig struct {
	FromFile string `env:"TEST_HELPERS_FROM_FILE"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env with defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_HELPERS_WORKERS", "8")
		t.Setenv("TEST_HELPERS_DEBUG", "true")
		t.Setenv("TEST_HELPERS_TAGS", "a,b")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "helpers", cfg.Name)
		assert.Equal(t, 8, cfg.Workers)
		assert.True(t, cfg.Debug)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	})

	t.Run("serves cached value", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_HELPERS_WORKERS", "3")

		var first appConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_HELPERS_WORKERS", "4")
		var second appConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 3, second.Workers)

		config.ResetCache()
		var third appConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, 4, third.Workers)
	})

	t.Run("required value missing is retried", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("TEST_HELPERS_TOKEN")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)

		t.Setenv("TEST_HELPERS_TOKEN", "secret")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "secret", cfg.Token)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[appConfig](nil), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("TEST_HELPERS_TOKEN")
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_HELPERS_FROM_FILE=from file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_HELPERS_FROM_FILE") })

	config.ResetCache()
	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from file", cfg.FromFile)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
	assert.NoError(t, config.LoadEnv())
}
