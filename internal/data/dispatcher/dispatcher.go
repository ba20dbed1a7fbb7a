// Package dispatcher applies one multiplexed event to the dashboard state,
// calling into the record store for the commands that need it.
package dispatcher

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/pet-dashboard/internal/backend"
	"github.com/atomicstack/pet-dashboard/internal/logging/events"
	"github.com/atomicstack/pet-dashboard/internal/menu"
	"github.com/atomicstack/pet-dashboard/internal/store"
	uistate "github.com/atomicstack/pet-dashboard/internal/ui/state"
)

// RecordStore is the subset of the store the transitions rely on.
type RecordStore interface {
	LoadAll() ([]store.Pet, error)
	AppendGenerated() ([]store.Pet, error)
	DeleteAt(index int) error
}

// Result is the outcome of handling one event.
type Result struct {
	State uistate.Dashboard
	// Quit asks the loop to stop and tear the terminal down.
	Quit bool
	// Mutated reports that the backing file was rewritten.
	Mutated bool
	// Info is a short human-readable summary of a successful mutation.
	Info string
}

type Dispatcher struct {
	records RecordStore
	keys    menu.KeyMap
}

func New(records RecordStore, keys menu.KeyMap) *Dispatcher {
	return &Dispatcher{records: records, keys: keys}
}

// Handle applies evt to current. On error the returned Result still carries
// current unchanged, so callers can keep rendering.
func (d *Dispatcher) Handle(current uistate.Dashboard, evt backend.Event) (Result, error) {
	res := Result{State: current}
	if evt.Kind != backend.KindInput || evt.Err != nil {
		return res, nil
	}
	k := evt.Key
	switch {
	case key.Matches(k, d.keys.Quit):
		res.Quit = true
	case key.Matches(k, d.keys.Home):
		res.State = current.WithScreen(uistate.ScreenHome)
		events.UI.Screen(res.State.Screen.String())
	case key.Matches(k, d.keys.Pets):
		res.State = current.WithScreen(uistate.ScreenPets)
		events.UI.Screen(res.State.Screen.String())
	case key.Matches(k, d.keys.Add):
		return d.add(current)
	case key.Matches(k, d.keys.Delete):
		return d.delete(current)
	case key.Matches(k, d.keys.Down):
		if current.Screen == uistate.ScreenPets {
			return d.move(current, uistate.Selection.Next)
		}
	case key.Matches(k, d.keys.Up):
		if current.Screen == uistate.ScreenPets {
			return d.move(current, uistate.Selection.Prev)
		}
	}
	return res, nil
}

func (d *Dispatcher) add(current uistate.Dashboard) (Result, error) {
	pets, err := d.records.AppendGenerated()
	if err != nil {
		return Result{State: current}, fmt.Errorf("add pet: %w", err)
	}
	added := pets[len(pets)-1]
	info := fmt.Sprintf("Added %s (%s)", added.Name, added.Category)
	events.Action.Success(info)
	return Result{State: current, Mutated: true, Info: info}, nil
}

func (d *Dispatcher) delete(current uistate.Dashboard) (Result, error) {
	pets, err := d.records.LoadAll()
	if err != nil {
		return Result{State: current}, fmt.Errorf("delete pet: %w", err)
	}
	idx, ok := current.Selection.Index()
	if !ok || len(pets) == 0 {
		return Result{State: current}, nil
	}
	if idx >= len(pets) {
		idx = len(pets) - 1
	}
	removed := pets[idx]
	if err := d.records.DeleteAt(idx); err != nil {
		return Result{State: current}, fmt.Errorf("delete pet: %w", err)
	}
	next := current.WithSelection(uistate.Select(idx).Retreat())
	info := fmt.Sprintf("Deleted %s", removed.Name)
	events.Action.Success(info)
	return Result{State: next, Mutated: true, Info: info}, nil
}

func (d *Dispatcher) move(current uistate.Dashboard, step func(uistate.Selection, int) uistate.Selection) (Result, error) {
	pets, err := d.records.LoadAll()
	if err != nil {
		return Result{State: current}, fmt.Errorf("move cursor: %w", err)
	}
	next := current.WithSelection(step(current.Selection, len(pets)))
	if idx, ok := next.Selection.Index(); ok {
		events.UI.Cursor(idx, len(pets))
	}
	return Result{State: next}, nil
}
