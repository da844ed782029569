package player

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	zlog "github.com/rs/zerolog/log"
)

// ErrNothingLoaded is returned by Play before any successful Load.
var ErrNothingLoaded = errors.New("no source loaded")

const resampleQuality = 4

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player is the beep-backed engine. The streamer graph is
// source -> resampler (rate) -> ctrl (pause) -> volume (mute) -> speaker.
//
// Lock order is p.mu then speaker.Lock. Beep callbacks run with the speaker
// lock held, so they hand off to a goroutine before touching p.mu.
type Player struct {
	mu sync.Mutex

	state     State
	uri       string
	streamer  beep.StreamSeekCloser
	format    beep.Format
	resampler *beep.Resampler
	ctrl      *beep.Ctrl
	volume    *effects.Volume
	ended     bool
	seq       uint64 // speaker queue generation
	loads     uint64

	rate  float64
	muted bool

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates an engine and starts its time-update ticker.
func New() *Player {
	p := &Player{
		state:  Stopped,
		rate:   1,
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
	}
	go p.tickLoop()
	return p
}

// Load stops the current source and prepares uri, paused at its start.
func (p *Player) Load(uri string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.loads++
	p.unloadLocked()

	path, err := PathFromURI(uri)
	if err != nil {
		return err
	}

	streamer, format, err := openSource(path)
	if err != nil {
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return errors.Wrap(err, "init speaker")
		}
		speakerInitialized = true
	}

	p.uri = uri
	p.streamer = streamer
	p.format = format
	p.resampler = beep.ResampleRatio(resampleQuality, p.ratioLocked(), streamer)
	p.ctrl = &beep.Ctrl{Streamer: p.resampler, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Silent: p.muted}
	p.ended = false
	p.state = Paused
	p.startLocked()

	duration := format.SampleRate.D(streamer.Len())
	zlog.Debug().Str("uri", uri).Dur("duration", duration).Msg("source loaded")
	p.emit(Event{Kind: EventMetadataLoaded, URI: uri, Load: p.loads, Duration: duration})
	return nil
}

// Play resumes the loaded source. A source that already ended restarts
// from the beginning.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case Stopped:
		return ErrNothingLoaded
	case Playing:
		return nil
	case Paused:
	}

	if p.ended {
		speaker.Lock()
		err := p.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			return errors.Wrap(err, "rewind")
		}
		p.ended = false
		p.startLocked()
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
	return nil
}

// Pause pauses the loaded source.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.CanPause() {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// State returns the engine state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Paused mirrors the media-element flag: true unless actively playing.
func (p *Player) Paused() bool {
	return p.State() != Playing
}

// Events returns the notification channel.
func (p *Player) Events() <-chan Event {
	return p.events
}

// Close releases the source and stops the ticker. Safe to call twice.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.mu.Lock()
		p.unloadLocked()
		p.state = Stopped
		p.mu.Unlock()
	})
	return nil
}

// startLocked queues the current graph on the speaker, followed by a
// callback tagged with the load sequence so a stale end is ignored.
func (p *Player) startLocked() {
	p.seq++
	seq := p.seq
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		go p.finished(seq)
	})))
}

func (p *Player) finished(seq uint64) {
	p.mu.Lock()
	if seq != p.seq || p.state == Stopped {
		p.mu.Unlock()
		return
	}
	p.ended = true
	p.state = Paused
	uri, load := p.uri, p.loads
	if err := p.streamer.Err(); err != nil {
		p.mu.Unlock()
		p.emit(Event{Kind: EventError, URI: uri, Load: load, Err: err})
		return
	}
	p.mu.Unlock()
	p.emit(Event{Kind: EventEnded, URI: uri, Load: load})
}

func (p *Player) unloadLocked() {
	if p.streamer == nil {
		return
	}
	speaker.Clear()
	p.seq++
	if err := p.streamer.Close(); err != nil {
		zlog.Warn().Err(err).Str("uri", p.uri).Msg("close source")
	}
	p.streamer = nil
	p.resampler = nil
	p.ctrl = nil
	p.volume = nil
	p.uri = ""
	p.state = Stopped
}

func (p *Player) tickLoop() {
	ticker := time.NewTicker(timeUpdatePeriod)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.state != Playing {
				p.mu.Unlock()
				continue
			}
			ev := Event{Kind: EventTimeUpdate, URI: p.uri, Load: p.loads, Position: p.positionLocked()}
			p.mu.Unlock()
			p.emitLossy(ev)
		}
	}
}

// emit never blocks the caller: Load runs under the controller's lock and
// the controller's event pump needs that lock to drain the channel.
// On a full buffer delivery moves to a goroutine.
func (p *Player) emit(ev Event) {
	select {
	case p.events <- ev:
		return
	default:
	}
	go func() {
		select {
		case p.events <- ev:
		case <-p.done:
		}
	}()
}

// emitLossy drops ev when the buffer is full; time updates are periodic.
func (p *Player) emitLossy(ev Event) {
	select {
	case p.events <- ev:
	default:
	}
}
