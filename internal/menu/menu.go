// Package menu describes the dashboard's tab bar and its key bindings.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/pet-dashboard/internal/ui/state"
)

// Item is one entry in the tab bar.
type Item struct {
	Label   string
	Binding key.Binding
	// Screen is the screen the tab represents; commands that do not switch
	// screens leave it nil.
	Screen *state.Screen
}

// Hotkey returns the prefix of the label that spells the binding's help key,
// shown underlined in the tab bar. It is empty when the label does not start
// with that key.
func (i Item) Hotkey() string {
	k := i.Binding.Help().Key
	if k == "" || !strings.HasPrefix(strings.ToLower(i.Label), strings.ToLower(k)) {
		return ""
	}
	return i.Label[:len(k)]
}

// Tabs returns the tab bar entries in display order.
func Tabs(keys KeyMap) []Item {
	home, pets := state.ScreenHome, state.ScreenPets
	return []Item{
		{Label: "Home", Binding: keys.Home, Screen: &home},
		{Label: "Pets", Binding: keys.Pets, Screen: &pets},
		{Label: "Add", Binding: keys.Add},
		{Label: "Delete", Binding: keys.Delete},
		{Label: "Quit", Binding: keys.Quit},
	}
}

// ActiveTab returns the index of the tab for screen, or -1.
func ActiveTab(items []Item, screen state.Screen) int {
	for i, item := range items {
		if item.Screen != nil && *item.Screen == screen {
			return i
		}
	}
	return -1
}
