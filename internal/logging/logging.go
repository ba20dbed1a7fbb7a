package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultLogFile = "pet-dashboard.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	runID        = uuid.NewString()
)

// RunID identifies this process in every trace entry.
func RunID() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return runID
}

// Error appends err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}

	traceMu.Lock()
	path := logPath
	traceMu.Unlock()

	f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	logger := log.New(f, "", log.LstdFlags)
	logger.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	enabled := traceEnabled
	path := logPath
	run := runID
	traceMu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Run     string      `json:"run"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Run:     run,
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
