package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pet-dashboard/internal/backend"
	"github.com/atomicstack/pet-dashboard/internal/terminal"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model and runs its Init.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		h.processCmd(model.Init())
	}
	return h
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// SendKey delivers one key press as a multiplexed input event.
func (h *Harness) SendKey(k terminal.Key) {
	h.Send(eventMsg{event: backend.Event{Kind: backend.KindInput, Key: k, At: time.Now()}})
}

// SendKeys delivers each key in order.
func (h *Harness) SendKeys(keys ...terminal.Key) {
	for _, k := range keys {
		h.SendKey(k)
	}
}

// Tick delivers one tick event.
func (h *Harness) Tick() {
	h.Send(eventMsg{event: backend.Event{Kind: backend.KindTick, At: time.Now()}})
}

// Fail delivers an input failure.
func (h *Harness) Fail(err error) {
	h.Send(eventMsg{event: backend.Event{Kind: backend.KindInput, Err: err, At: time.Now()}})
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
