// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the optional Postgres connection string. When empty the
	// embedded airport catalog is used and no database is opened.
	DatabaseURL string

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel slog.Level

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// CacheCapacity bounds the search result cache. Defaults to 100.
	CacheCapacity int

	// EngineSeed is the base seed of every search's random stream.
	EngineSeed int64

	// RateLimitRPS is the per-client request rate on search and export.
	// Zero disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// MaxBodyBytes limits request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// It returns one error naming every variable with an invalid value.
func Load() (Config, error) {
	p := parser{}
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		LogLevel:       p.levelVar("LOG_LEVEL", slog.LevelInfo),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		CacheCapacity:  p.intVar("CACHE_CAPACITY", 100, 1),
		EngineSeed:     p.int64Var("ENGINE_SEED", 0),
		RateLimitRPS:   p.floatVar("RATE_LIMIT_RPS", 20, 0),
		RateLimitBurst: p.intVar("RATE_LIMIT_BURST", 40, 1),
		MaxBodyBytes:   p.int64MinVar("MAX_BODY_BYTES", 64<<10, 1),
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		p.invalid = append(p.invalid, "PORT")
	}

	if len(p.invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(p.invalid, ", "))
	}
	return cfg, nil
}

// parser collects the names of variables that fail to parse.
type parser struct {
	invalid []string
}

func (p *parser) intVar(key string, fallback, minimum int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < minimum {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return n
}

func (p *parser) int64Var(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return n
}

func (p *parser) int64MinVar(key string, fallback, minimum int64) int64 {
	n := p.int64Var(key, fallback)
	if n < minimum {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return n
}

func (p *parser) floatVar(key string, fallback, minimum float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < minimum {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return f
}

func (p *parser) levelVar(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return l
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
