// Package state holds the dashboard's screen and list cursor and the
// arithmetic that keeps the cursor valid as the list grows and shrinks.
package state

import "fmt"

// Screen is the active top-level view.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenPets
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenPets:
		return "pets"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Dashboard is the complete mutable UI state. It is a value: transitions
// return a new Dashboard rather than editing one in place.
type Dashboard struct {
	Screen    Screen
	Selection Selection
}

// NewDashboard returns the startup state: home screen, cursor on the first row.
func NewDashboard() Dashboard {
	return Dashboard{Screen: ScreenHome, Selection: Select(0)}
}

// WithScreen returns a copy of d showing screen.
func (d Dashboard) WithScreen(screen Screen) Dashboard {
	d.Screen = screen
	return d
}

// WithSelection returns a copy of d with sel as its cursor.
func (d Dashboard) WithSelection(sel Selection) Dashboard {
	d.Selection = sel
	return d
}
