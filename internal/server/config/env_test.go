package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	env := map[string]string{
		EnvHTTPAddr:          ":9000",
		EnvGRPCAddr:          ":9001",
		EnvDatabaseDSN:       "postgres://u:p@db/scriptoria",
		EnvSecretKey:         "k",
		EnvSessionValidity:   "30m",
		EnvGeminiAPIKey:      "g",
		EnvGeminiModel:       "gemini-2.5-flash",
		EnvGenerationTimeout: "45s",
		EnvLogFormat:         "zap",
		EnvS3Bucket:          "exports",
		EnvLogFormat + "_X":  "ignored",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	c := defaults()
	parseEnv(c, lookup)

	assert.Equal(t, ":9000", c.HTTPAddr)
	assert.Equal(t, ":9001", c.GRPCAddr)
	assert.Equal(t, "postgres://u:p@db/scriptoria", c.DatabaseDSN)
	assert.Equal(t, "k", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.SessionValidityDuration)
	assert.Equal(t, "g", c.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", c.GeminiModel)
	assert.Equal(t, 45*time.Second, c.GenerationTimeout)
	assert.Equal(t, "zap", c.LogFormat)
	assert.True(t, c.S3Enabled())
}

func TestParseEnv_BadDurationKeepsValue(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == EnvSessionValidity {
			return "forever", true
		}
		return "", false
	}

	c := defaults()
	parseEnv(c, lookup)
	assert.Equal(t, 24*time.Hour, c.SessionValidityDuration)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCRIPTORIA_TEST_DOTENV=loaded\n"), 0o600))
	t.Setenv("SCRIPTORIA_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("SCRIPTORIA_TEST_DOTENV"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("SCRIPTORIA_TEST_DOTENV"))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCRIPTORIA_TEST_KEEP=file\n"), 0o600))
	t.Setenv("SCRIPTORIA_TEST_KEEP", "process")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "process", os.Getenv("SCRIPTORIA_TEST_KEEP"))
}
