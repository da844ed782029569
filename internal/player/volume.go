package player

import "github.com/gopxl/beep/v2/speaker"

// SetMuted silences the output without touching the paused flag.
// The flag survives Load: the next source starts muted too.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if p.volume != nil {
		speaker.Lock()
		p.volume.Silent = muted
		speaker.Unlock()
	}
}

// Muted returns true if audio is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetPlaybackRate sets the speed multiplier. Non-positive rates reset to 1.
// Like muting, the rate carries over to the next Load.
func (p *Player) SetPlaybackRate(rate float64) {
	if rate <= 0 {
		rate = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rate = rate
	if p.resampler != nil {
		speaker.Lock()
		p.resampler.SetRatio(p.ratioLocked())
		speaker.Unlock()
	}
}

// PlaybackRate returns the speed multiplier.
func (p *Player) PlaybackRate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rate
}

// ratioLocked combines the sample-rate conversion to the speaker with the
// playback rate: a ratio of 2 consumes the source twice as fast.
func (p *Player) ratioLocked() float64 {
	base := 1.0
	if speakerSampleRate > 0 && p.format.SampleRate > 0 {
		base = float64(p.format.SampleRate) / float64(speakerSampleRate)
	}
	return base * p.rate
}
