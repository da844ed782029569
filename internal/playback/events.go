package playback

import (
	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/playlist"
)

// StateChange is emitted after every mutation of the player state.
type StateChange struct {
	State PlayerState
}

// TrackChange is emitted when a different track is loaded.
//
// Emitted by:
//   - SelectTrack and SelectFromMenu
//   - Next/Previous, including the automatic advance at the end of a track
//
// It fires when the track is loaded, not when it starts playing: with
// autoplay the deferred play follows PlayDelay later.
type TrackChange struct {
	Previous      playlist.Track
	Current       playlist.Track
	PreviousIndex int
	Index         int
}

// ErrorEvent is emitted when the engine fails.
type ErrorEvent struct {
	Operation errmsg.Op
	Link      string // track link if applicable
	Err       error
}
