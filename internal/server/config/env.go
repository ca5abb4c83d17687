package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr          = "SCRIPTORIA_HTTP_ADDR"
	EnvGRPCAddr          = "SCRIPTORIA_GRPC_ADDR"
	EnvDatabaseDSN       = "SCRIPTORIA_DATABASE_DSN"
	EnvSecretKey         = "SCRIPTORIA_SECRET_KEY"
	EnvSessionValidity   = "SCRIPTORIA_SESSION_VALIDITY"
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
	EnvGeminiModel       = "SCRIPTORIA_GEMINI_MODEL"
	EnvGenerationTimeout = "SCRIPTORIA_GENERATION_TIMEOUT"
	EnvLogFormat         = "SCRIPTORIA_LOG_FORMAT"
	EnvS3RootUser        = "SCRIPTORIA_S3_ROOT_USER"
	EnvS3RootPassword    = "SCRIPTORIA_S3_ROOT_PASSWORD"
	EnvS3Bucket          = "SCRIPTORIA_S3_BUCKET"
	EnvS3Region          = "SCRIPTORIA_S3_REGION"
	EnvS3BaseEndpoint    = "SCRIPTORIA_S3_BASE_ENDPOINT"
)

// loadDotEnv copies variables from path into the process environment
// without overriding ones that are already set. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays non-empty environment variables. Durations that do not
// parse are ignored and keep the previous value.
func parseEnv(c *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok && v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	str(EnvHTTPAddr, &c.HTTPAddr)
	str(EnvGRPCAddr, &c.GRPCAddr)
	str(EnvDatabaseDSN, &c.DatabaseDSN)
	str(EnvSecretKey, &c.SecretKey)
	dur(EnvSessionValidity, &c.SessionValidityDuration)
	str(EnvGeminiAPIKey, &c.GeminiAPIKey)
	str(EnvGeminiModel, &c.GeminiModel)
	dur(EnvGenerationTimeout, &c.GenerationTimeout)
	str(EnvLogFormat, &c.LogFormat)
	str(EnvS3RootUser, &c.S3RootUser)
	str(EnvS3RootPassword, &c.S3RootPassword)
	str(EnvS3Bucket, &c.S3Bucket)
	str(EnvS3Region, &c.S3Region)
	str(EnvS3BaseEndpoint, &c.S3BaseEndpoint)
}
