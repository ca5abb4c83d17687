// Package config handles configuration for the server component: defaults,
// environment (optionally seeded from a .env file), a JSON or YAML config
// file, and command-line flags, applied in that order.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the Scriptoria server.
//
// Fields:
//   - HTTPAddr / GRPCAddr: bind addresses for the web UI and the gRPC API.
//   - DatabaseDSN: SQLite file DSN by default; a postgres:// DSN selects pgx.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionValidityDuration: lifetime of a login session.
//   - GeminiAPIKey / GeminiModel: generation service credentials and model.
//   - GenerationTimeout: upper bound for one generation call.
//   - LogFormat: json, text or zap.
//   - S3*: optional archive of exported files; disabled while S3Bucket is empty.
type Config struct {
	HTTPAddr                string
	GRPCAddr                string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	GeminiAPIKey            string
	GeminiModel             string
	GenerationTimeout       time.Duration
	LogFormat               string
	S3RootUser              string
	S3RootPassword          string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.GRPCAddr = ":50051"
	c.DatabaseDSN = "file:scriptoria.db"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 24 * time.Hour
	c.GeminiModel = "gemini-2.5-pro"
	c.GenerationTimeout = 2 * time.Minute
	c.LogFormat = "json"
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config from the process environment and os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.LookupEnv)
}

// Load applies defaults, the .env file, environment variables looked up
// through lookup, the -c/-config file and finally short flags from args.
func Load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	parseEnv(cfg, lookup)

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if c.SessionValidityDuration <= 0 {
		return fmt.Errorf("session validity must be positive, got %s", c.SessionValidityDuration)
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("generation timeout must be positive, got %s", c.GenerationTimeout)
	}
	return nil
}

// S3Enabled reports whether exported files are archived to object storage.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}
