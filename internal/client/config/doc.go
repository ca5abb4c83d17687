// Package config loads runtime configuration for the Scriptoria CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file named by --config / -c.
//  3. Command-line flags that were set explicitly.
//
// Supported flags
//
//	-a, --address string     host:port of the Scriptoria gRPC endpoint
//	-t, --timeout duration   per-request timeout; generation can take minutes
//	-e, --export-dir string  directory exported files are written to
//	-c, --config string      JSON or YAML config file
//
// # File schema
//
// Durations use timex.Duration, so they may be strings like "3m" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "3m",
//	  "export_dir": "exports"
//	}
package config
