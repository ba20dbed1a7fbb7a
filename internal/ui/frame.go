package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/pet-dashboard/internal/menu"
	"github.com/atomicstack/pet-dashboard/internal/store"
	uistate "github.com/atomicstack/pet-dashboard/internal/ui/state"
)

// errInvalidSelection means the state handed to the renderer broke the cursor
// invariant: pets are listed but the cursor does not point at one of them.
var errInvalidSelection = errors.New("selection does not point at a pet")

const (
	appName   = "pet-dashboard"
	copyright = appName + " - all rights reserved"
)

// frame is the declarative widget tree for one draw. Exactly one of home and
// pets is set.
type frame struct {
	tabs   tabBar
	home   *homePanel
	pets   *petsPanel
	footer footerBar
}

type tabBar struct {
	titles []tabTitle
	active int
}

type tabTitle struct {
	hotkey string
	rest   string
}

type homePanel struct {
	lines []homeLine
}

type homeLine struct {
	text  string
	brand bool
}

type petsPanel struct {
	names    []string
	selected int
	// detail is nil when there are no pets.
	detail *store.Pet
}

type footerBar struct {
	text  string
	hints []key.Binding
}

// buildFrame derives the widget tree from state and the current snapshot. It
// does not mutate its inputs.
func buildFrame(dash uistate.Dashboard, pets []store.Pet, keys menu.KeyMap) (frame, error) {
	items := menu.Tabs(keys)
	f := frame{
		tabs:   buildTabs(items, dash.Screen),
		footer: footerBar{text: copyright, hints: keys.ShortHelp()},
	}
	switch dash.Screen {
	case uistate.ScreenHome:
		f.home = buildHome()
	case uistate.ScreenPets:
		panel, err := buildPets(dash.Selection, pets)
		if err != nil {
			return frame{}, err
		}
		f.pets = panel
	default:
		return frame{}, fmt.Errorf("unknown screen %v", dash.Screen)
	}
	return f, nil
}

func buildTabs(items []menu.Item, screen uistate.Screen) tabBar {
	titles := make([]tabTitle, len(items))
	for i, item := range items {
		hot := item.Hotkey()
		titles[i] = tabTitle{hotkey: hot, rest: item.Label[len(hot):]}
	}
	return tabBar{titles: titles, active: menu.ActiveTab(items, screen)}
}

func buildHome() *homePanel {
	return &homePanel{lines: []homeLine{
		{},
		{text: "Welcome"},
		{},
		{text: "to"},
		{},
		{text: appName, brand: true},
		{},
		{text: "Press 'p' to access pets,"},
		{text: "'a' to add random new pets"},
		{text: "and 'd' to delete the currently selected pet."},
	}}
}

func buildPets(sel uistate.Selection, pets []store.Pet) (*petsPanel, error) {
	panel := &petsPanel{names: make([]string, len(pets)), selected: -1}
	for i, p := range pets {
		panel.names[i] = p.Name
	}
	if len(pets) == 0 {
		return panel, nil
	}
	if !sel.ValidFor(len(pets)) {
		idx, ok := sel.Index()
		if !ok {
			return nil, fmt.Errorf("%w: no selection with %d pets", errInvalidSelection, len(pets))
		}
		return nil, fmt.Errorf("%w: index %d with %d pets", errInvalidSelection, idx, len(pets))
	}
	idx, _ := sel.Index()
	detail := pets[idx]
	panel.selected = idx
	panel.detail = &detail
	return panel, nil
}
