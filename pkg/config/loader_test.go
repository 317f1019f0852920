package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub/pkg/config"
)

func TestLoad(t *testing.T) {
	type testConfig struct {
		Host string `env:"TEST_CFG_HOST" envDefault:"localhost"`
		Port int    `env:"TEST_CFG_PORT" envDefault:"5432"`
	}

	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
	})

	t.Run("reads environment values and caches per type", func(t *testing.T) {
		type envConfig struct {
			Name string `env:"TEST_CFG_NAME" envDefault:"fallback"`
		}

		t.Setenv("TEST_CFG_NAME", "from-env")

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)

		// Cached value survives environment changes.
		t.Setenv("TEST_CFG_NAME", "changed")

		var again envConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "from-env", again.Name)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("required variable missing", func(t *testing.T) {
		type requiredConfig struct {
			Secret string `env:"TEST_CFG_REQUIRED_SECRET,required"`
		}

		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})
}
