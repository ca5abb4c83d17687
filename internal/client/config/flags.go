package config

import (
	"errors"
	"time"

	"github.com/spf13/pflag"
)

// Flags binds the CLI flags to a flag set and resolves them into a Config
// after parsing.
type Flags struct {
	fs *pflag.FlagSet

	file      string
	address   string
	timeout   time.Duration
	exportDir string
}

func RegisterFlags(fs *pflag.FlagSet) *Flags {
	var d Config
	d.LoadDefaults()

	f := &Flags{fs: fs}
	fs.StringVarP(&f.file, "config", "c", "", "JSON or YAML config file")
	fs.StringVarP(&f.address, "address", "a", d.ServerEndpointAddr, "address and port of the Scriptoria gRPC server")
	fs.DurationVarP(&f.timeout, "timeout", "t", d.RequestTimeout, "per-request timeout")
	fs.StringVarP(&f.exportDir, "export-dir", "e", d.ExportDir, "directory for exported files")
	return f
}

// Load applies defaults, the config file and explicitly set flags.
func (f *Flags) Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if f.file != "" {
		if err := loadFile(cfg, f.file); err != nil {
			return nil, err
		}
	}

	if f.fs.Changed("address") {
		cfg.ServerEndpointAddr = f.address
	}
	if f.fs.Changed("timeout") {
		cfg.RequestTimeout = f.timeout
	}
	if f.fs.Changed("export-dir") {
		cfg.ExportDir = f.exportDir
	}

	if cfg.ServerEndpointAddr == "" {
		return nil, errors.New("server address must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("request timeout must be positive")
	}
	return cfg, nil
}
