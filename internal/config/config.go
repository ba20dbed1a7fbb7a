package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/pet-dashboard/internal/app"
	"github.com/atomicstack/pet-dashboard/internal/backend"
	"github.com/atomicstack/pet-dashboard/internal/store"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDBPath     = "PET_DASHBOARD_DB"
	envTickRate   = "PET_DASHBOARD_TICK"
	envWidth      = "PET_DASHBOARD_WIDTH"
	envHeight     = "PET_DASHBOARD_HEIGHT"
	envShowFooter = "PET_DASHBOARD_FOOTER"
	envTrace      = "PET_DASHBOARD_TRACE"
	envLogFile    = "PET_DASHBOARD_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("pet-dashboard", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	db := fs.String("db", envOrDefault(env, envDBPath, store.DefaultPath), "path to the JSON pet database")
	tick := fs.Duration("tick", envOrDuration(env, envTickRate, backend.DefaultTickRate), "interval between redraws when no key is pressed")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show key hints under the copyright line")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			DBPath:     *db,
			TickRate:   *tick,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"db":      *db,
			"tick":    tick.String(),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DBPath) == "" {
		return errors.New("db path must not be empty")
	}
	if cfg.App.TickRate <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", cfg.App.TickRate)
	}
	return nil
}
