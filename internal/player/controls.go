package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
	zlog "github.com/rs/zerolog/log"
)

// Position returns the playback position within the loaded source.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded source.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Seek moves the position by delta, clamped to the source bounds.
func (p *Player) Seek(delta time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}
	p.seekLocked(p.positionLocked() + delta)
}

// SeekTo moves the position to an absolute offset.
func (p *Player) SeekTo(position time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}
	p.seekLocked(position)
}

func (p *Player) seekLocked(position time.Duration) {
	n := p.format.SampleRate.N(position)
	n = min(max(n, 0), p.streamer.Len())

	speaker.Lock()
	p.volume.Silent = true
	err := p.streamer.Seek(n)
	p.volume.Silent = p.muted
	speaker.Unlock()
	if err != nil {
		zlog.Warn().Err(err).Str("uri", p.uri).Dur("position", position).Msg("seek failed")
		return
	}

	// The speaker dropped the finished graph; requeue it so Play works
	// after seeking back from the end.
	if p.ended && n < p.streamer.Len() {
		p.ended = false
		p.startLocked()
	}
}
