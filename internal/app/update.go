package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/ui/playerbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Menu.SetSize(msg.Width, m.menuHeight())
		return m, nil

	case StateChangedMsg:
		m.setState(msg.State)
		return m, WatchTransport(m.sub)

	case TrackChangedMsg:
		zlog.Debug().
			Int("index", msg.Index).
			Str("link", msg.Current.Link).
			Msg("track changed")
		return m, WatchTransport(m.sub)

	case PlaybackErrorMsg:
		// The event error already names the op and link; show only the cause.
		text := errmsg.FormatWith(msg.Operation, msg.Link, errors.UnwrapAll(msg.Err))
		return m, tea.Batch(m.setStatus(text, true), WatchTransport(m.sub))

	case TransportClosedMsg:
		return m, tea.Quit

	case StderrMsg:
		return m, tea.Batch(m.setStatus(msg.Line, false), WatchStderr())

	case StatusExpiredMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// menuHeight is the space left for the track menu below the player bar,
// the status line and the help line.
func (m Model) menuHeight() int {
	if m.Height == 0 {
		return 0
	}
	return max(m.Height-playerbar.Height-2, 0)
}
