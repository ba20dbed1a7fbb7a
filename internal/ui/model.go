package ui

import (
	"errors"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pet-dashboard/internal/data/dispatcher"
	"github.com/atomicstack/pet-dashboard/internal/logging"
	"github.com/atomicstack/pet-dashboard/internal/logging/events"
	"github.com/atomicstack/pet-dashboard/internal/menu"
	"github.com/atomicstack/pet-dashboard/internal/state"
	"github.com/atomicstack/pet-dashboard/internal/theme"
	uistate "github.com/atomicstack/pet-dashboard/internal/ui/state"
)

const infoTTL = 5 * time.Second

var styles = theme.Default()

// errSourceClosed is reported when the event stream ends without a quit.
var errSourceClosed = errors.New("event source closed")

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the pet dashboard.
type Model struct {
	dash       uistate.Dashboard
	pets       state.PetStore
	records    dispatcher.RecordStore
	dispatcher *dispatcher.Dispatcher
	source     EventSource
	keys       menu.KeyMap
	help       help.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	errMsg     string
	loadErr    string
	infoMsg    string
	infoExpire time.Time
	renderErr  string
	fatal      error
	quitting   bool
	now        func() time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the model to its record store and event source. A nil
// source is allowed; events can then be fed in through the harness.
func NewModel(records dispatcher.RecordStore, source EventSource, width, height int, showFooter bool) *Model {
	keys := menu.DefaultKeyMap()
	m := &Model{
		dash:       uistate.NewDashboard(),
		pets:       state.NewPetStore(),
		records:    records,
		dispatcher: dispatcher.New(records, keys),
		source:     source,
		keys:       keys,
		help:       help.New(),
		showFooter: showFooter,
		now:        time.Now,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.refresh()
	if m.source == nil {
		return nil
	}
	return waitForEvent(m.source)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(eventMsg{}):          m.handleEventMsg,
		reflect.TypeOf(doneMsg{}):           m.handleDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// refresh reloads the collection for rendering and pulls a cursor left past
// the end by an outside edit back onto the list.
func (m *Model) refresh() {
	pets, err := m.records.LoadAll()
	if err != nil {
		if msg := err.Error(); msg != m.loadErr {
			logging.Error(err)
			m.loadErr = msg
		}
		return
	}
	m.loadErr = ""
	m.pets.SetEntries(pets)
	m.dash = m.dash.WithSelection(m.dash.Selection.Clamp(len(pets)))
}

func (m *Model) setError(err error) {
	if err == nil {
		m.errMsg = ""
		return
	}
	events.Action.Error(err)
	m.errMsg = err.Error()
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && m.now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

// Err returns the failure that ended the loop, if any.
func (m *Model) Err() error {
	return m.fatal
}

// Dashboard returns the current screen and cursor.
func (m *Model) Dashboard() uistate.Dashboard {
	return m.dash
}
