package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/keymap"
	"github.com/llehouerou/tinywave/internal/playback"
)

const (
	seekStep     = 5 * time.Second
	seekStepLong = 30 * time.Second
)

// keyResult is the outcome of one key handler.
type keyResult struct {
	handled bool
	cmd     tea.Cmd
}

var notHandled = keyResult{}

func handled(cmd tea.Cmd) keyResult {
	return keyResult{handled: true, cmd: cmd}
}

// chain runs handlers in order until one handles the action.
func chain(action keymap.Action, handlers ...func(keymap.Action) keyResult) tea.Cmd {
	for _, h := range handlers {
		if r := h(action); r.handled {
			return r.cmd
		}
	}
	return nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.Resolve(m.context(), msg.String())
	if action == "" {
		return m, nil
	}

	var handlers []func(keymap.Action) keyResult
	if m.State.MenuOpen {
		handlers = append(handlers, m.handleMenuAction)
	} else {
		handlers = append(handlers, m.handleTransportAction)
	}
	handlers = append(handlers, m.handleGlobalAction)

	cmd := chain(action, handlers...)
	return m, cmd
}

// handleTransportAction handles the player buttons.
func (m *Model) handleTransportAction(action keymap.Action) keyResult {
	t := m.Transport
	var cmd tea.Cmd

	switch action { //nolint:exhaustive // only transport actions
	case keymap.ActionPlayPause:
		cmd = m.report(errmsg.OpPlaybackStart, t.TogglePlayPause())
	case keymap.ActionNextTrack:
		cmd = m.report(errmsg.OpTrackNext, t.Next())
	case keymap.ActionPrevTrack:
		cmd = m.report(errmsg.OpTrackPrev, t.Previous())
	case keymap.ActionCycleRate:
		t.CyclePlaybackRate()
	case keymap.ActionToggleMute:
		t.ToggleMute()
	case keymap.ActionToggleAutoplay:
		t.ToggleAutoplay()
	case keymap.ActionTogglePlayhead:
		t.TogglePlayhead()
	case keymap.ActionToggleMenu:
		if t.ToggleMenu() {
			m.refresh()
			m.Menu.Reveal()
		}
	case keymap.ActionSeekForward:
		t.Seek(seekStep)
	case keymap.ActionSeekBack:
		t.Seek(-seekStep)
	case keymap.ActionSeekForwardLong:
		t.Seek(seekStepLong)
	case keymap.ActionSeekBackLong:
		t.Seek(-seekStepLong)
	default:
		return notHandled
	}

	m.refresh()
	return handled(cmd)
}

// handleMenuAction handles navigation inside the open track menu.
func (m *Model) handleMenuAction(action keymap.Action) keyResult {
	switch action { //nolint:exhaustive // only menu actions
	case keymap.ActionMoveUp, keymap.ActionMoveDown,
		keymap.ActionJumpStart, keymap.ActionJumpEnd,
		keymap.ActionSelect, keymap.ActionCloseMenu:
	default:
		return notHandled
	}

	res := m.Menu.Update(action)
	var cmd tea.Cmd
	switch {
	case res.Selected:
		cmd = m.report(errmsg.OpTrackSelect, m.Transport.SelectFromMenu(res.Index))
	case res.Closed:
		if m.State.MenuOpen {
			m.Transport.ToggleMenu()
		}
	}
	m.refresh()
	return handled(cmd)
}

// handleGlobalAction handles keys that work on every screen.
func (m *Model) handleGlobalAction(action keymap.Action) keyResult {
	switch action { //nolint:exhaustive // only global actions
	case keymap.ActionQuit:
		return handled(tea.Quit)
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		m.Help.ShowAll = m.ShowHelp
		return handled(nil)
	}
	return notHandled
}

// report turns an error returned by a transport call into a status message.
// Boundary rejections are silent since the button is already dimmed, and
// engine failures reach the status line through the subscription.
func (m *Model) report(op errmsg.Op, err error) tea.Cmd {
	if err == nil ||
		errors.Is(err, playback.ErrBoundaryReached) ||
		errors.Is(err, playback.ErrPlayback) {
		return nil
	}
	return m.setStatus(errmsg.Format(op, err), true)
}
