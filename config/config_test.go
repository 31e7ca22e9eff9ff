package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POLYGLOT_GOOGLE_API_KEY", "google-key")
	t.Setenv("POLYGLOT_FIREBASE_API_KEY", "firebase-key")
}

func TestLoad_FromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLYGLOT_LISTEN_ADDR", ":9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "google-key", cfg.GoogleAPIKey)
	assert.Equal(t, "firebase-key", cfg.FirebaseAPIKey)
	assert.Equal(t, "gemini-1.5-flash-latest", cfg.GeminiModel)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingKeysReportedTogether(t *testing.T) {
	t.Setenv("POLYGLOT_GOOGLE_API_KEY", "")
	t.Setenv("POLYGLOT_FIREBASE_API_KEY", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "google api key is required")
	assert.Contains(t, err.Error(), "firebase api key is required")
}

func TestLoad_SecretsFileOverridesEnv(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "secrets.toml")
	content := "GOOGLE_API_KEY = \"from-secrets\"\nFIREBASE_API_KEY = \"fb-from-secrets\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-secrets", cfg.GoogleAPIKey)
	assert.Equal(t, "fb-from-secrets", cfg.FirebaseAPIKey)
}

func TestLoad_MissingSecretsFile(t *testing.T) {
	setRequiredEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLYGLOT_LOG_LEVEL", "loud")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
