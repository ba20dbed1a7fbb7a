package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pet-dashboard/internal/backend"
	"github.com/atomicstack/pet-dashboard/internal/store"
	"github.com/atomicstack/pet-dashboard/internal/terminal"
	"github.com/atomicstack/pet-dashboard/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	DBPath     string
	TickRate   time.Duration
	Width      int
	Height     int
	ShowFooter bool
}

// Run bootstraps and executes the Bubble Tea program. Input is read by the
// multiplexer from a raw-mode terminal; Bubble Tea only draws.
func Run(cfg Config) error {
	records := store.New(cfg.DBPath)
	if err := records.Ensure(); err != nil {
		return fmt.Errorf("prepare store: %w", err)
	}

	tty, err := terminal.Open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	tick := cfg.TickRate
	if tick <= 0 {
		tick = backend.DefaultTickRate
	}
	mux := backend.NewMultiplexer(tty, tick)
	defer mux.Stop()

	model := ui.NewModel(records, mux, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(nil))
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Err()
	}
	return nil
}
