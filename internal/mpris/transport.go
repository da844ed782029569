// Package mpris exposes the transport to desktop media keys and applets
// through the MPRIS D-Bus interface.
package mpris

import (
	"time"

	"github.com/llehouerou/tinywave/internal/playback"
)

// Transport is what MPRIS clients can drive. *playback.Controller
// implements it.
type Transport interface {
	State() playback.PlayerState
	TogglePlayPause() error
	Play() error
	Pause()
	Next() error
	Previous() error
	Seek(delta time.Duration)
	SeekTo(position time.Duration)
	Position() time.Duration
	Duration() time.Duration
	SetPlaybackRate(rate float64) playback.RateStep
	ToggleMute() bool
}

var _ Transport = (*playback.Controller)(nil)
