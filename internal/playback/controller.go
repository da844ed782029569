// Package playback implements the transport: which track is loaded, whether
// it plays, and the derived display state.
package playback

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/playlist"
)

// DefaultPlayDelay is the pause between switching track and starting it.
const DefaultPlayDelay = 200 * time.Millisecond

// Options configures a Controller.
type Options struct {
	Autoplay  bool
	PlayDelay time.Duration // negative means DefaultPlayDelay
	Scheduler Scheduler     // nil means RealScheduler
}

// DefaultOptions returns autoplay on with the default delay.
func DefaultOptions() Options {
	return Options{Autoplay: true, PlayDelay: DefaultPlayDelay}
}

// Controller owns the engine and the player state. All methods are safe
// for concurrent use; a single mutex serialises them.
type Controller struct {
	mu sync.Mutex

	engine   player.Interface
	playlist *playlist.Playlist
	sched    Scheduler
	delay    time.Duration

	index           int
	autoplay        bool
	menuOpen        bool
	playheadVisible bool
	muted           bool
	rate            RateStep
	elapsed         string
	total           string
	progress        float64
	playIcon        PlayIcon

	// loads counts engine.Load calls; engine events carry the same count.
	loads uint64

	// pending is the deferred play, if any. gen invalidates tasks that
	// fire after being superseded.
	pending Timer
	gen     uint64

	subs   []*Subscription
	subsMu sync.Mutex

	done   chan struct{}
	closed bool
}

// New creates a controller positioned on the first track. Nothing is
// loaded until SelectTrack is called.
func New(engine player.Interface, pl *playlist.Playlist, opts Options) *Controller {
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	if opts.PlayDelay < 0 {
		opts.PlayDelay = DefaultPlayDelay
	}
	rate, ok := rateStepOf(engine.PlaybackRate())
	if !ok {
		engine.SetPlaybackRate(rate.Float())
	}
	return &Controller{
		engine:   engine,
		playlist: pl,
		sched:    opts.Scheduler,
		delay:    opts.PlayDelay,
		autoplay: opts.Autoplay,
		muted:    engine.Muted(),
		rate:     rate,
		elapsed:  FormatTime(0),
		total:    FormatTime(0),
		playIcon: IconPlay,
		done:     make(chan struct{}),
	}
}

// Playlist returns the playlist the controller walks through.
func (c *Controller) Playlist() *playlist.Playlist {
	return c.playlist
}

// State returns a snapshot of the player state.
func (c *Controller) State() PlayerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SelectTrack loads the track at index without playing it. Any pending
// deferred play is cancelled. An out-of-range index changes nothing.
func (c *Controller) SelectTrack(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.selectLocked(index)
	c.publishLocked()
	return err
}

// LoadedMetadata records the duration of the loaded track.
func (c *Controller) LoadedMetadata(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total = FormatDuration(d)
	c.publishLocked()
}

// TogglePlayPause plays when the engine is paused and pauses otherwise.
// A pending deferred play is cancelled first.
func (c *Controller) TogglePlayPause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()

	var err error
	if c.engine.Paused() {
		err = c.playLocked()
	} else {
		c.engine.Pause()
		c.playIcon = IconPlay
	}
	c.publishLocked()
	return err
}

// Play starts playback if paused.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	var err error
	if c.engine.Paused() {
		err = c.playLocked()
	}
	c.publishLocked()
	return err
}

// Pause pauses playback if playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	if !c.engine.Paused() {
		c.engine.Pause()
	}
	c.playIcon = IconPlay
	c.publishLocked()
}

// Next loads the following track and, with autoplay, schedules its play.
// At the last track it returns ErrBoundaryReached and changes nothing.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.stepLocked(1)
	c.publishLocked()
	return err
}

// Previous loads the preceding track and, with autoplay, schedules its play.
// At the first track it returns ErrBoundaryReached and changes nothing.
func (c *Controller) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.stepLocked(-1)
	c.publishLocked()
	return err
}

// TimeTick refreshes elapsed time and progress from the engine.
func (c *Controller) TimeTick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickLocked()
	c.publishLocked()
}

// CyclePlaybackRate advances the engine rate 1x -> 2x -> 3x -> 1x.
// An engine rate outside the cycle resets to 1x.
func (c *Controller) CyclePlaybackRate() RateStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := Rate1x
	if current, ok := rateStepOf(c.engine.PlaybackRate()); ok {
		next = current.Next()
	}
	c.setRateLocked(next)
	c.publishLocked()
	return next
}

// SetPlaybackRate sets the closest supported rate to rate.
func (c *Controller) SetPlaybackRate(rate float64) RateStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	step := NearestRate(rate)
	c.setRateLocked(step)
	c.publishLocked()
	return step
}

// ToggleMute flips the engine mute flag and returns the new value.
func (c *Controller) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.engine.Muted()
	c.engine.SetMuted(c.muted)
	c.publishLocked()
	return c.muted
}

// ToggleAutoplay flips autoplay and returns the new value.
func (c *Controller) ToggleAutoplay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoplay = !c.autoplay
	zlog.Debug().Bool("autoplay", c.autoplay).Msg("autoplay toggled")
	c.publishLocked()
	return c.autoplay
}

// ToggleMenu flips the track menu visibility and returns the new value.
func (c *Controller) ToggleMenu() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menuOpen = !c.menuOpen
	c.publishLocked()
	return c.menuOpen
}

// TogglePlayhead flips the playhead visibility and returns the new value.
func (c *Controller) TogglePlayhead() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playheadVisible = !c.playheadVisible
	c.publishLocked()
	return c.playheadVisible
}

// OnTrackEnded advances to the next track when autoplay is on and a next
// track exists. Otherwise playback stays on the finished track.
func (c *Controller) OnTrackEnded() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var err error
	if c.autoplay && c.index < c.playlist.Last() {
		err = c.stepLocked(1)
	} else {
		c.playIcon = IconPlay
		c.tickLocked()
	}
	c.publishLocked()
	return err
}

// SelectFromMenu loads the track at index, closes the menu and schedules
// its play regardless of autoplay. An invalid index changes nothing.
func (c *Controller) SelectFromMenu(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playlist.Valid(index) {
		return c.invalidIndex(index)
	}
	c.menuOpen = false
	err := c.selectLocked(index)
	if err == nil {
		c.schedulePlayLocked()
	}
	c.publishLocked()
	return err
}

// Seek moves the position by delta.
func (c *Controller) Seek(delta time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Seek(delta)
	c.tickLocked()
	c.publishLocked()
}

// SeekTo moves the position to an absolute offset.
func (c *Controller) SeekTo(position time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.SeekTo(position)
	c.tickLocked()
	c.publishLocked()
}

// Position returns the engine position.
func (c *Controller) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Position()
}

// Duration returns the length of the loaded track.
func (c *Controller) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Duration()
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.isClosed() {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Run forwards engine notifications to the controller until ctx is done,
// the controller is closed or the engine channel closes.
func (c *Controller) Run(ctx context.Context) error {
	events := c.engine.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.handleEngineEvent(ev)
		}
	}
}

// Close cancels the pending play, closes subscriptions and the engine.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.cancelPendingLocked()
	close(c.done)
	c.mu.Unlock()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return c.engine.Close()
}

func (c *Controller) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Controller) handleEngineEvent(ev player.Event) {
	if c.staleEvent(ev) {
		zlog.Debug().
			Stringer("kind", ev.Kind).
			Str("uri", ev.URI).
			Uint64("load", ev.Load).
			Msg("drop stale engine event")
		return
	}
	switch ev.Kind {
	case player.EventMetadataLoaded:
		c.LoadedMetadata(ev.Duration)
	case player.EventTimeUpdate:
		c.TimeTick()
	case player.EventEnded:
		if err := c.OnTrackEnded(); err != nil {
			zlog.Warn().Err(err).Msg("advance after track end")
		}
	case player.EventError:
		c.mu.Lock()
		c.playIcon = IconPlay
		_ = c.playbackErrorLocked(errmsg.OpPlayback, ev.URI, ev.Err)
		c.publishLocked()
		c.mu.Unlock()
	}
}

// staleEvent reports whether ev comes from a load other than the latest
// one. The same track loaded twice still gives two different loads.
func (c *Controller) staleEvent(ev player.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, _ := c.playlist.At(c.index)
	return ev.Load != c.loads || ev.URI != t.Link
}

func (c *Controller) selectLocked(index int) error {
	if !c.playlist.Valid(index) {
		return c.invalidIndex(index)
	}
	c.cancelPendingLocked()

	prevIndex := c.index
	prev, _ := c.playlist.At(prevIndex)
	track, _ := c.playlist.At(index)

	c.index = index
	c.elapsed = FormatTime(0)
	c.progress = 0
	c.playIcon = IconPlay

	zlog.Debug().Int("index", index).Str("link", track.Link).Msg("select track")
	c.sendTrack(TrackChange{
		Previous:      prev,
		Current:       track,
		PreviousIndex: prevIndex,
		Index:         index,
	})

	c.loads++
	if err := c.engine.Load(track.Link); err != nil {
		return c.playbackErrorLocked(errmsg.OpTrackLoad, track.Link, err)
	}
	return nil
}

func (c *Controller) stepLocked(delta int) error {
	target := c.index + delta
	if !c.playlist.Valid(target) {
		return errors.Wrapf(ErrBoundaryReached, "track %d of %d", c.index+1, c.playlist.Len())
	}
	if err := c.selectLocked(target); err != nil {
		return err
	}
	if c.autoplay {
		c.schedulePlayLocked()
	}
	return nil
}

func (c *Controller) playLocked() error {
	if err := c.engine.Play(); err != nil {
		c.playIcon = IconPlay
		t, _ := c.playlist.At(c.index)
		return c.playbackErrorLocked(errmsg.OpPlaybackStart, t.Link, err)
	}
	c.playIcon = IconPause
	return nil
}

func (c *Controller) tickLocked() {
	pos := c.engine.Position()
	c.elapsed = FormatDuration(pos)
	c.progress = progressPercent(pos, c.engine.Duration())
}

func (c *Controller) setRateLocked(step RateStep) {
	c.engine.SetPlaybackRate(step.Float())
	c.rate = step
	zlog.Debug().Str("rate", step.Label()).Msg("playback rate changed")
}

func (c *Controller) schedulePlayLocked() {
	c.cancelPendingLocked()
	gen := c.gen
	c.pending = c.sched.AfterFunc(c.delay, func() {
		c.deferredPlay(gen)
	})
}

// deferredPlay plays if still paused; it never toggles.
func (c *Controller) deferredPlay(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.closed {
		return
	}
	c.pending = nil
	if c.engine.Paused() {
		if err := c.playLocked(); err != nil {
			zlog.Warn().Err(err).Msg("deferred play")
		}
	}
	c.publishLocked()
}

func (c *Controller) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.gen++
}

func (c *Controller) invalidIndex(index int) error {
	return errors.Wrapf(ErrInvalidTrackIndex, "index %d, playlist has %d tracks", index, c.playlist.Len())
}

// playbackErrorLocked marks err as an engine failure, logs it and
// notifies subscribers.
func (c *Controller) playbackErrorLocked(op errmsg.Op, link string, err error) error {
	wrapped := errors.Mark(errors.Wrapf(err, "%s %s", op, link), ErrPlayback)
	zlog.Warn().Err(err).Str("op", string(op)).Str("link", link).Msg("playback error")
	c.sendError(ErrorEvent{Operation: op, Link: link, Err: wrapped})
	return wrapped
}

func (c *Controller) snapshotLocked() PlayerState {
	track, _ := c.playlist.At(c.index)
	muteIcon := IconAudio
	if c.muted {
		muteIcon = IconMuted
	}
	return PlayerState{
		Index:           c.index,
		TrackCount:      c.playlist.Len(),
		Track:           track,
		PendingPlay:     c.pending != nil,
		Playing:         !c.engine.Paused(),
		Muted:           c.muted,
		Autoplay:        c.autoplay,
		Rate:            c.rate,
		MenuOpen:        c.menuOpen,
		PlayheadVisible: c.playheadVisible,
		Elapsed:         c.elapsed,
		Total:           c.total,
		Progress:        c.progress,
		CanGoNext:       c.index < c.playlist.Last(),
		CanGoPrevious:   c.index > 0,
		PlayIcon:        c.playIcon,
		MuteIcon:        muteIcon,
		RateLabel:       c.rate.Label(),
	}
}

func (c *Controller) publishLocked() {
	e := StateChange{State: c.snapshotLocked()}
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.sendState(e)
	}
}

func (c *Controller) sendTrack(e TrackChange) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.sendTrack(e)
	}
}

func (c *Controller) sendError(e ErrorEvent) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}
