package app

import (
	"time"

	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/playlist"
)

// Transport is the part of the playback controller the UI drives.
// *playback.Controller implements it.
type Transport interface {
	State() playback.PlayerState
	Playlist() *playlist.Playlist
	Subscribe() *playback.Subscription

	TogglePlayPause() error
	Next() error
	Previous() error
	SelectFromMenu(index int) error
	CyclePlaybackRate() playback.RateStep
	ToggleMute() bool
	ToggleAutoplay() bool
	ToggleMenu() bool
	TogglePlayhead() bool
	Seek(delta time.Duration)
}

var _ Transport = (*playback.Controller)(nil)
