package config

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/pet-dashboard/internal/backend"
	"github.com/atomicstack/pet-dashboard/internal/store"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != store.DefaultPath {
		t.Fatalf("expected default db %q, got %q", store.DefaultPath, cfg.App.DBPath)
	}
	if cfg.App.TickRate != backend.DefaultTickRate {
		t.Fatalf("expected default tick %s, got %s", backend.DefaultTickRate, cfg.App.TickRate)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer hints on by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected tracing off by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"-db", "/tmp/pets.json", "-tick", "50ms", "-width", "100", "-height", "30", "-footer=false", "-trace", "-log-file", "/tmp/pd.log"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != "/tmp/pets.json" || cfg.App.TickRate != 50*time.Millisecond {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 || cfg.App.ShowFooter {
		t.Fatalf("unexpected viewport config %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/pd.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["tick"] != "50ms" {
		t.Fatalf("expected tick flag recorded, got %q", cfg.Flags["tick"])
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be retained")
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envDBPath + "=/srv/db.json",
		envTickRate + "=1s",
		envWidth + "=90",
		envTrace + "=true",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != "/srv/db.json" || cfg.App.TickRate != time.Second || cfg.App.Width != 90 {
		t.Fatalf("environment not applied: %#v", cfg.App)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-db", "flag.json"}, []string{envDBPath + "=env.json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != "flag.json" {
		t.Fatalf("expected flag to win, got %q", cfg.App.DBPath)
	}
}

func TestInvalidEnvironmentValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envTickRate + "=soon", envHeight + "=tall", envShowFooter + "=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TickRate != backend.DefaultTickRate || cfg.App.Height != 0 || !cfg.App.ShowFooter {
		t.Fatalf("expected defaults, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil || !strings.Contains(err.Error(), "width") {
		t.Fatalf("expected width error, got %v", err)
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil || !strings.Contains(err.Error(), "height") {
		t.Fatalf("expected height error, got %v", err)
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"-tick", "0s"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected zero tick to be rejected")
	}
	cfg, err = LoadArgs([]string{"-db", " "}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected empty db path to be rejected")
	}
}
