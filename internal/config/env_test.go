package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "https://reqres.in", cfg.Directory.SourceURL)
	assert.Equal(t, "/api/users", cfg.Directory.UsersPath)
	assert.Equal(t, 2, cfg.Directory.PageSize)
	assert.Equal(t, time.Duration(0), cfg.Directory.FetchTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Directory.ViewIdleTTL)
	assert.False(t, cfg.Observability.Enabled)
	assert.Equal(t, "userdir", cfg.Observability.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DIRECTORY_PAGE_SIZE", "5")
	t.Setenv("DIRECTORY_FETCH_TIMEOUT", "3s")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5, cfg.Directory.PageSize)
	assert.Equal(t, 3*time.Second, cfg.Directory.FetchTimeout)
	assert.True(t, cfg.Observability.Enabled)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DIRECTORY_API_KEY=secret-key\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DIRECTORY_API_KEY") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.Directory.APIKey)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "page size below one", key: "DIRECTORY_PAGE_SIZE", val: "0"},
		{name: "source not a url", key: "DIRECTORY_SOURCE_URL", val: "not a url"},
		{name: "users path without slash", key: "DIRECTORY_USERS_PATH", val: "api/users"},
		{name: "port out of range", key: "HTTP_PORT", val: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
