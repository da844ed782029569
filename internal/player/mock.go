// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player. Load and Play succeed unless an error
// was injected; events are only sent through Emit.
type Mock struct {
	mu sync.Mutex

	state    State
	uri      string
	position time.Duration
	duration time.Duration
	rate     float64
	muted    bool

	loadErr error
	playErr error

	loads      uint64
	loadCalls  []string
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration

	events chan Event
	closed bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		rate:   1,
		events: make(chan Event, eventBufferSize),
	}
}

func (m *Mock) Load(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	m.loadCalls = append(m.loadCalls, uri)
	if m.loadErr != nil {
		m.state = Stopped
		m.uri = ""
		return m.loadErr
	}
	m.uri = uri
	m.state = Paused
	m.position = 0
	return nil
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.state == Stopped {
		return ErrNothingLoaded
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Seek(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, d)
	m.position = min(max(m.position+d, 0), m.duration)
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = min(max(pos, 0), m.duration)
}

func (m *Mock) SetPlaybackRate(rate float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rate <= 0 {
		rate = 1
	}
	m.rate = rate
}

func (m *Mock) PlaybackRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rate
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Paused() bool { return m.State() != Playing }

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.state = Stopped
	return nil
}

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// SetRawPlaybackRate stores a rate without normalising it, to simulate an
// engine that reports something outside the 1x/2x/3x cycle.
func (m *Mock) SetRawPlaybackRate(rate float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rate = rate
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) URI() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uri
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Loads returns the number of Load calls so far.
func (m *Mock) Loads() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// Emit queues an engine notification. An event without a Load stamp
// belongs to the latest load.
func (m *Mock) Emit(ev Event) {
	if ev.Load == 0 {
		ev.Load = m.Loads()
	}
	m.events <- ev
}

// SimulateEnded marks the source finished and emits EventEnded.
func (m *Mock) SimulateEnded() {
	m.mu.Lock()
	m.state = Paused
	m.position = m.duration
	uri, load := m.uri, m.loads
	m.mu.Unlock()
	m.Emit(Event{Kind: EventEnded, URI: uri, Load: load})
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
