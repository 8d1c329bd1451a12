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
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "nanubhai", cfg.SessionCookieName)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, "EcomAdmin", cfg.MetricsNamespace)
	assert.False(t, cfg.DateOrderCheck)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SESSION_SECRET", "s3cret")
	require.NoError(t, os.Unsetenv("API_BASE_URL"))

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_BASE_URL=https://file.example.com\nSESSION_TTL=2h\n"), 0o600))

	t.Setenv("SESSION_SECRET", "s3cret")
	// registered so t.Setenv restores them after godotenv sets them
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SESSION_TTL", "")
	require.NoError(t, os.Unsetenv("API_BASE_URL"))
	require.NoError(t, os.Unsetenv("SESSION_TTL"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.APIBaseURL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)

	_, err = Load(filepath.Join(dir, "missing.env"))
	assert.NoError(t, err)
}
