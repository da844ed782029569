package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tinywave/internal/keymap"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/ui/trackmenu"
)

// defaultWidth is used until the first tea.WindowSizeMsg arrives.
const defaultWidth = 80

// Model is the root application model.
type Model struct {
	Transport Transport
	Keys      *keymap.Resolver
	Help      help.Model
	ShowHelp  bool
	Menu      trackmenu.Model

	// State is the last snapshot received from the transport.
	State playback.PlayerState

	StatusMsg   string
	StatusIsErr bool
	statusSeq   int

	Width  int
	Height int

	sub *playback.Subscription
}

// New creates the application model around a transport.
func New(t Transport) Model {
	state := t.State()
	menu := trackmenu.New(t.Playlist().Tracks())
	menu.SetCurrent(state.Index)
	menu.SetSize(defaultWidth, 0)

	h := help.New()
	h.Width = defaultWidth

	return Model{
		Transport: t,
		Keys:      keymap.NewResolver(keymap.All),
		Help:      h,
		Menu:      menu,
		State:     state,
		Width:     defaultWidth,
		sub:       t.Subscribe(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(WatchTransport(m.sub), WatchStderr())
}

// context returns the keymap context for the current screen.
func (m Model) context() string {
	if m.State.MenuOpen {
		return keymap.ContextMenu
	}
	return keymap.ContextPlayer
}

// refresh pulls a snapshot right after a user action so the next frame does
// not wait for the subscription round trip.
func (m *Model) refresh() {
	m.setState(m.Transport.State())
}

func (m *Model) setState(s playback.PlayerState) {
	m.State = s
	m.Menu.SetCurrent(s.Index)
}

// setStatus shows a message on the status line and schedules its removal.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return StatusTimeoutCmd(m.statusSeq)
}
