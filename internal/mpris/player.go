//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/tags"
)

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter on top of the
// transport controller.
type playerAdapter struct {
	transport Transport
}

// ignoreBoundary drops ErrBoundaryReached: MPRIS clients are told through
// CanGoNext/CanGoPrevious and expect a silent no-op.
func ignoreBoundary(err error) error {
	if errors.Is(err, playback.ErrBoundaryReached) {
		return nil
	}
	return err
}

func (p *playerAdapter) Next() error {
	return ignoreBoundary(p.transport.Next())
}

func (p *playerAdapter) Previous() error {
	return ignoreBoundary(p.transport.Previous())
}

func (p *playerAdapter) Pause() error {
	p.transport.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	return p.transport.TogglePlayPause()
}

// Stop pauses and rewinds; the transport has no stopped state.
func (p *playerAdapter) Stop() error {
	p.transport.Pause()
	p.transport.SeekTo(0)
	return nil
}

func (p *playerAdapter) Play() error {
	return p.transport.Play()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.transport.Seek(time.Duration(offset) * time.Microsecond)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.transport.SeekTo(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // the playlist is fixed
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.transport.State().Playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return p.transport.State().Rate.Float(), nil
}

// SetRate snaps to the nearest supported step. A zero rate pauses, as the
// MPRIS interface asks.
func (p *playerAdapter) SetRate(rate float64) error {
	if rate <= 0 {
		p.transport.Pause()
		return nil
	}
	p.transport.SetPlaybackRate(rate)
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.transport.State()
	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(s.Track.Link)),
		Length:      types.Microseconds(p.transport.Duration().Microseconds()),
		Title:       s.Track.Name,
		TrackNumber: s.Index + 1,
	}

	path, err := player.PathFromURI(s.Track.Link)
	if err != nil {
		return meta, nil
	}
	if t, err := tags.Read(path); err == nil {
		if t.Title != "" {
			meta.Title = t.Title
		}
		if t.Artist != "" {
			meta.Artist = []string{t.Artist}
		}
		meta.Album = t.Album
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	if p.transport.State().Muted {
		return 0, nil
	}
	return 1.0, nil
}

// SetVolume only knows muted and unmuted.
func (p *playerAdapter) SetVolume(volume float64) error {
	if (volume <= 0) != p.transport.State().Muted {
		p.transport.ToggleMute()
	}
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.transport.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return playback.Rate1x.Float(), nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return playback.Rate3x.Float(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.transport.State().CanGoNext, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.transport.State().CanGoPrevious, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(link string) string {
	h := fnv.New64a()
	h.Write([]byte(link))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
