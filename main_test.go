package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/pet-dashboard/internal/app"
	"github.com/atomicstack/pet-dashboard/internal/config"
	"github.com/atomicstack/pet-dashboard/internal/logging"
)

func TestInspectDatabaseMissingFileWillSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "db.json")
	info := inspectDatabase(path)
	if info.Exists || !info.WillSeed {
		t.Fatalf("expected missing file to be seeded, got %#v", info)
	}
	if info.Path != path || info.Abs == "" {
		t.Fatalf("expected path recorded, got %#v", info)
	}
}

func TestInspectDatabaseExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	info := inspectDatabase(path)
	if !info.Exists || info.WillSeed || info.Size != 2 {
		t.Fatalf("expected existing 2 byte file, got %#v", info)
	}
}

func TestInspectTerminalNamesDescriptors(t *testing.T) {
	info := inspectTerminal()
	if info.Input.Name != "stdin" || info.Output.Name != "stdout" {
		t.Fatalf("unexpected probes %#v", info)
	}
}

func TestStartupTracePayload(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pets.json")
	cfg := config.Config{
		App: app.Config{
			DBPath:     dbPath,
			TickRate:   200 * time.Millisecond,
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"db":   dbPath,
			"tick": "200ms",
		},
		Args: []string{"-db", dbPath},
	}

	payload := startupTracePayload(cfg)

	if payload["run"] != logging.RunID() {
		t.Fatalf("expected run id %q, got %v", logging.RunID(), payload["run"])
	}
	if payload["tick"] != "200ms" {
		t.Fatalf("expected tick 200ms, got %v", payload["tick"])
	}
	if payload["trace"] != true || payload["logFile"] != "trace.log" {
		t.Fatalf("expected logging settings, got %v %v", payload["trace"], payload["logFile"])
	}
	flags, ok := payload["flags"].(map[string]string)
	if !ok || flags["db"] != dbPath {
		t.Fatalf("expected flags in payload, got %#v", payload["flags"])
	}
	db, ok := payload["database"].(databaseInfo)
	if !ok {
		t.Fatalf("expected database info in payload")
	}
	if db.Path != dbPath || !db.WillSeed {
		t.Fatalf("unexpected database info %#v", db)
	}
	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal info in payload")
	}
}
