package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pet-dashboard/internal/backend"
)

// EventSource is the ordered stream the model consumes.
type EventSource interface {
	Events() <-chan backend.Event
}

func waitForEvent(src EventSource) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-src.Events()
		if !ok {
			return doneMsg{}
		}
		return eventMsg{event: evt}
	}
}

type eventMsg struct {
	event backend.Event
}

type doneMsg struct{}

func (m *Model) handleEventMsg(msg tea.Msg) tea.Cmd {
	em, ok := msg.(eventMsg)
	if !ok {
		return nil
	}
	if cmd := m.applyEvent(em.event); cmd != nil {
		return cmd
	}
	if m.source == nil {
		return nil
	}
	return waitForEvent(m.source)
}

func (m *Model) handleDoneMsg(tea.Msg) tea.Cmd {
	m.source = nil
	if m.quitting {
		return nil
	}
	m.fatal = errSourceClosed
	m.quitting = true
	return tea.Quit
}

// applyEvent runs one iteration of the loop: transition, snapshot refresh.
// A non-nil command ends the loop.
func (m *Model) applyEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		m.fatal = evt.Err
		m.quitting = true
		return tea.Quit
	}
	res, err := m.dispatcher.Handle(m.dash, evt)
	m.dash = res.State
	switch {
	case err != nil:
		m.setError(err)
	case evt.Kind == backend.KindInput:
		m.setError(nil)
	}
	if res.Info != "" {
		m.setInfo(res.Info)
	}
	if res.Quit {
		m.quitting = true
		return tea.Quit
	}

	m.refresh()
	if evt.Kind == backend.KindTick {
		m.clearInfo()
	}
	return nil
}
