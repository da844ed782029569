package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/stderr"
)

// StatusDuration is how long a status message stays on screen.
const StatusDuration = 4 * time.Second

// StatusTimeoutCmd returns a command that sends StatusExpiredMsg after
// StatusDuration.
func StatusTimeoutCmd(seq int) tea.Cmd {
	return tea.Tick(StatusDuration, func(_ time.Time) tea.Msg {
		return StatusExpiredMsg{Seq: seq}
	})
}

// WatchTransport returns a command that waits for the next controller event
// and converts it to a tea.Msg.
func WatchTransport(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.Error:
			return PlaybackErrorMsg(e)
		case <-sub.Done:
			return TransportClosedMsg{}
		}
	}
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchStderr returns a command that waits for stderr output from C libraries.
func WatchStderr() tea.Cmd {
	return waitForChannel(stderr.Messages, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}
