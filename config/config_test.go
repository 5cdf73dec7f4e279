package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memoryConfigYAML = `
env:
  serviceName: booking
  log:
    level: info
http:
  port: 9090
storage:
  driver: memory
fonoapi:
  url: http://lookup.local/getdevice
  token: from-file
`

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfig(t, memoryConfigYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "booking", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "from-file", cfg.FonoAPI.Token)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, memoryConfigYAML)
	t.Setenv("FONOAPI_TOKEN", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.FonoAPI.Token)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Run("memory driver fills gateway defaults", func(t *testing.T) {
		cfg := &Config{Storage: &StorageConfig{Driver: StorageDriverMemory}}

		require.NoError(t, applyDefaults(cfg))
		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, 30*time.Second, cfg.FonoAPI.Timeout)
		assert.False(t, cfg.UsesPostgres())
	})

	t.Run("postgres driver requires postgres section", func(t *testing.T) {
		cfg := &Config{}

		err := applyDefaults(cfg)
		require.Error(t, err)
		assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{Storage: &StorageConfig{Driver: "mongo"}}

		require.Error(t, applyDefaults(cfg))
	})

	t.Run("explicit gateway timeout is kept", func(t *testing.T) {
		cfg := &Config{
			Storage: &StorageConfig{Driver: StorageDriverMemory},
			FonoAPI: &FonoAPIConfig{Timeout: 2 * time.Second},
		}

		require.NoError(t, applyDefaults(cfg))
		assert.Equal(t, 2*time.Second, cfg.FonoAPI.Timeout)
	})
}
