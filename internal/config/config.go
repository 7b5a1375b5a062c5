package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	DatabaseMaxConns   int
	DatabaseProbe      time.Duration
	ShutdownTimeout    time.Duration
	Location           *time.Location
	CORSAllowedOrigins []string
}

const (
	defaultRunAddress      = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultDatabaseProbe   = 15 * time.Second
	defaultTimezone        = "UTC"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		DatabaseMaxConns: getInt(lookup, "DATABASE_MAX_CONNS", 0),
		DatabaseProbe:    getDuration(lookup, "DATABASE_PROBE_INTERVAL", defaultDatabaseProbe),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("userservice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		databaseProbeStr   = cfg.DatabaseProbe.String()
		timezone           = getString(lookup, "TIMEZONE", defaultTimezone)
		corsOrigins        = getString(lookup, "CORS_ALLOWED_ORIGINS", "")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.IntVar(&cfg.DatabaseMaxConns, "db-max-conns", cfg.DatabaseMaxConns, "Maximum pooled database connections (0 keeps driver default)")
	fs.StringVar(&databaseProbeStr, "db-probe-interval", databaseProbeStr, "Interval between background database probes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&timezone, "timezone", timezone, "IANA time zone used to decide what \"today\" is")
	fs.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.DatabaseProbe, err = time.ParseDuration(databaseProbeStr); err != nil {
		return nil, fmt.Errorf("invalid database probe interval: %w", err)
	}

	if cfg.Location, err = time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	cfg.CORSAllowedOrigins = splitList(corsOrigins)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseProbe <= 0 {
		cfg.DatabaseProbe = defaultDatabaseProbe
	}

	if cfg.DatabaseMaxConns < 0 {
		cfg.DatabaseMaxConns = 0
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
