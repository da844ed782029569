package playback

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidTrackIndex is returned when a selection addresses no track.
	// The player state is left unchanged.
	ErrInvalidTrackIndex = errors.New("invalid track index")

	// ErrBoundaryReached is returned by Next at the last track and by
	// Previous at the first one.
	ErrBoundaryReached = errors.New("no track in that direction")

	// ErrPlayback marks failures reported by the audio engine.
	ErrPlayback = errors.New("playback failed")
)
