// Package config holds the server settings: defaults, overridden by CHESS_*
// environment variables, overridden by command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr          string
	AllowOrigins  string
	ClockBudget   time.Duration
	MatchInterval time.Duration
	LogLevel      string
	LogFormat     string
}

func Default() Config {
	return Config{
		Addr:          ":3000",
		AllowOrigins:  "http://localhost:5173",
		ClockBudget:   10 * time.Minute,
		MatchInterval: time.Second,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// FromEnv applies CHESS_ADDR, CHESS_ALLOW_ORIGINS, CHESS_CLOCK,
// CHESS_MATCH_INTERVAL, CHESS_LOG_LEVEL and CHESS_LOG_FORMAT on top of c.
func (c Config) FromEnv(getenv func(string) string) (Config, error) {
	if v := getenv("CHESS_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("CHESS_ALLOW_ORIGINS"); v != "" {
		c.AllowOrigins = v
	}
	if v := getenv("CHESS_CLOCK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("CHESS_CLOCK=%q: %v: %w", v, err, ErrInvalidConfig)
		}
		c.ClockBudget = d
	}
	if v := getenv("CHESS_MATCH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("CHESS_MATCH_INTERVAL=%q: %v: %w", v, err, ErrInvalidConfig)
		}
		c.MatchInterval = d
	}
	if v := getenv("CHESS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("CHESS_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return c, nil
}

// RegisterFlags binds flags to c's fields, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.StringVar(&c.AllowOrigins, "allow-origins", c.AllowOrigins, "comma separated CORS origins")
	fs.DurationVar(&c.ClockBudget, "clock", c.ClockBudget, "thinking time per side")
	fs.DurationVar(&c.MatchInterval, "match-interval", c.MatchInterval, "matchmaking poll interval")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("empty listen address: %w", ErrInvalidConfig)
	}
	if c.ClockBudget <= 0 {
		return fmt.Errorf("clock budget %v: %w", c.ClockBudget, ErrInvalidConfig)
	}
	if c.MatchInterval <= 0 {
		return fmt.Errorf("match interval %v: %w", c.MatchInterval, ErrInvalidConfig)
	}
	// The server sends credentials, which CORS forbids for a wildcard origin.
	for _, origin := range strings.Split(c.AllowOrigins, ",") {
		switch strings.TrimSpace(origin) {
		case "*":
			return fmt.Errorf("wildcard origin with credentials: %w", ErrInvalidConfig)
		case "":
			return fmt.Errorf("empty origin in %q: %w", c.AllowOrigins, ErrInvalidConfig)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: %w", c.LogFormat, ErrInvalidConfig)
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return level, fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	return level, nil
}

// Logger builds the process logger writing to stderr.
func (c Config) Logger() *slog.Logger {
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// Load returns the defaults with the environment applied, then parses args.
func Load(args []string) (Config, error) {
	cfg, err := Default().FromEnv(os.Getenv)
	if err != nil {
		return cfg, err
	}
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	return cfg, cfg.Validate()
}
