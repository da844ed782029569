// internal/player/state.go
package player

// State represents the engine state machine.
//
//	┌──────────┐      load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │◀──┐
//	└──────────┘                 └──────────┘   │
//	                               │     ▲      │ load
//	                          play │     │ pause│ ended
//	                               ▼     │      │
//	                             ┌──────────┐   │
//	                             │  Playing │───┘
//	                             └──────────┘
//
// Valid transitions:
//   - Stopped → Paused  (via Load)
//   - Paused  → Playing (via Play)
//   - Playing → Paused  (via Pause, Load, or the source reaching its end)
//   - any     → Stopped (via Close)
//
// Play while Stopped returns ErrNothingLoaded. Pause while not Playing is a no-op.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if the state allows starting playback.
func (s State) CanPlay() bool {
	return s == Paused
}
