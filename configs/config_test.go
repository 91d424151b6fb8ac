package configs

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"CONSOLE_API_URL", "CONSOLE_API_KEY", "CONSOLE_TIMEOUT", "CONSOLE_LOG_LEVEL"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8090", cfg.API.URL)
	assert.Empty(t, cfg.API.Key)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CONSOLE_API_URL", "https://admin.example.com")
	t.Setenv("CONSOLE_API_KEY", "secret")
	t.Setenv("CONSOLE_TIMEOUT", "3")
	t.Setenv("CONSOLE_LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://admin.example.com", cfg.API.URL)
	assert.Equal(t, "secret", cfg.API.Key)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	for _, value := range []string{"soon", "0", "-2"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("CONSOLE_TIMEOUT", value)

			_, err := Load()

			assert.ErrorContains(t, err, "CONSOLE_TIMEOUT")
		})
	}
}
