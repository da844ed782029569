package playback

import (
	"math"
	"strconv"

	"github.com/llehouerou/tinywave/internal/playlist"
)

// RateStep is one of the supported playback speeds.
type RateStep int

const (
	Rate1x RateStep = 1
	Rate2x RateStep = 2
	Rate3x RateStep = 3
)

// Next returns the following step in the 1x -> 2x -> 3x -> 1x cycle.
// Anything outside the cycle restarts it at 1x.
func (r RateStep) Next() RateStep {
	switch r {
	case Rate1x:
		return Rate2x
	case Rate2x:
		return Rate3x
	default:
		return Rate1x
	}
}

// Label renders the step the way the rate button shows it ("2.0X").
func (r RateStep) Label() string {
	return strconv.FormatFloat(float64(r), 'f', 1, 64) + "X"
}

// Float returns the speed multiplier handed to the engine.
func (r RateStep) Float() float64 {
	return float64(r)
}

// Valid reports whether r is part of the cycle.
func (r RateStep) Valid() bool {
	return r >= Rate1x && r <= Rate3x
}

// rateStepOf maps an engine rate to a step. Only exact multipliers match.
func rateStepOf(rate float64) (RateStep, bool) {
	switch rate {
	case 1:
		return Rate1x, true
	case 2:
		return Rate2x, true
	case 3:
		return Rate3x, true
	}
	return Rate1x, false
}

// NearestRate snaps an arbitrary rate to the closest step.
func NearestRate(rate float64) RateStep {
	if math.IsNaN(rate) {
		return Rate1x
	}
	step := RateStep(math.Round(rate))
	return min(max(step, Rate1x), Rate3x)
}

// PlayIcon selects the glyph of the play/pause button.
type PlayIcon int

const (
	// IconPlay is shown while paused.
	IconPlay PlayIcon = iota
	// IconPause is shown while playing.
	IconPause
)

func (i PlayIcon) String() string {
	if i == IconPause {
		return "pause"
	}
	return "play"
}

// MuteIcon selects the glyph of the mute button.
type MuteIcon int

const (
	IconAudio MuteIcon = iota
	IconMuted
)

func (i MuteIcon) String() string {
	if i == IconMuted {
		return "muted"
	}
	return "audio"
}

// PlayerState is a snapshot of the transport: everything a view needs to
// render the player without asking the engine.
type PlayerState struct {
	Index       int
	TrackCount  int
	Track       playlist.Track
	PendingPlay bool // a deferred play is scheduled

	Playing         bool // engine is not paused
	Muted           bool
	Autoplay        bool
	Rate            RateStep
	MenuOpen        bool
	PlayheadVisible bool

	Elapsed  string
	Total    string
	Progress float64 // percent, 0..100

	CanGoNext     bool
	CanGoPrevious bool

	PlayIcon  PlayIcon
	MuteIcon  MuteIcon
	RateLabel string
}
