// internal/player/interface.go
package player

import "time"

// Interface is the engine contract the transport controller drives.
// Load prepares a source without starting it; Play and Pause only flip the
// paused flag of the loaded source. Events are stamped with the count of
// Load calls made so far.
type Interface interface {
	Load(uri string) error
	Play() error
	Pause()
	Seek(delta time.Duration)
	SeekTo(position time.Duration)

	SetPlaybackRate(rate float64)
	PlaybackRate() float64
	SetMuted(muted bool)
	Muted() bool

	State() State
	Paused() bool
	Position() time.Duration
	Duration() time.Duration

	// Events delivers engine notifications. The channel is never closed;
	// readers stop on their own context.
	Events() <-chan Event

	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
