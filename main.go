package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/atomicstack/pet-dashboard/internal/app"
	"github.com/atomicstack/pet-dashboard/internal/config"
	"github.com/atomicstack/pet-dashboard/internal/logging"
	"github.com/atomicstack/pet-dashboard/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg))
	}

	err := app.Run(runtimeCfg.App)
	events.App.Stop(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the dashboard is about to open: the
// database file and the terminal it will take over.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"run":      logging.RunID(),
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"tick":     cfg.App.TickRate.String(),
		"trace":    cfg.Logging.Trace,
		"logFile":  cfg.Logging.FilePath,
		"database": inspectDatabase(cfg.App.DBPath),
		"terminal": inspectTerminal(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type databaseInfo struct {
	Path     string `json:"path"`
	Abs      string `json:"abs,omitempty"`
	Exists   bool   `json:"exists"`
	Size     int64  `json:"size,omitempty"`
	WillSeed bool   `json:"will_seed"`
	Error    string `json:"error,omitempty"`
}

// inspectDatabase reports whether the pet file is already there. A missing
// file is seeded with an empty collection on startup.
func inspectDatabase(path string) databaseInfo {
	info := databaseInfo{Path: path}
	if abs, err := filepath.Abs(path); err == nil {
		info.Abs = abs
	}
	st, err := os.Stat(path)
	switch {
	case err == nil:
		info.Exists = true
		info.Size = st.Size()
	case errors.Is(err, fs.ErrNotExist):
		info.WillSeed = true
	default:
		info.Error = err.Error()
	}
	return info
}

type terminalInfo struct {
	// Input is the descriptor switched to raw mode for key reads.
	Input terminalProbe `json:"input"`
	// Output is where frames are drawn.
	Output terminalProbe `json:"output"`
}

type terminalProbe struct {
	Name   string `json:"name"`
	IsTTY  bool   `json:"is_tty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

func inspectTerminal() terminalInfo {
	return terminalInfo{
		Input:  probeDescriptor("stdin", os.Stdin),
		Output: probeDescriptor("stdout", os.Stdout),
	}
}

func probeDescriptor(name string, f *os.File) terminalProbe {
	probe := terminalProbe{Name: name}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTTY = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}
