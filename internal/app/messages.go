// Package app is the bubbletea program around the transport controller.
package app

import (
	"github.com/llehouerou/tinywave/internal/playback"
)

// StateChangedMsg carries a fresh transport snapshot.
type StateChangedMsg struct {
	State playback.PlayerState
}

// TrackChangedMsg is sent when the controller loads another track.
type TrackChangedMsg playback.TrackChange

// PlaybackErrorMsg wraps an engine failure reported by the controller.
type PlaybackErrorMsg playback.ErrorEvent

// TransportClosedMsg is sent once the controller has shut down.
type TransportClosedMsg struct{}

// StderrMsg carries a line written to stderr by the audio backend.
type StderrMsg struct {
	Line string
}

// StatusExpiredMsg clears the status line. Seq ignores expiries of
// messages that were already replaced.
type StatusExpiredMsg struct {
	Seq int
}
