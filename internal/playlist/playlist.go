// Package playlist holds the fixed, ordered list of tracks the player walks through.
package playlist

import "github.com/cockroachdb/errors"

// ErrEmpty is returned when a playlist would have no tracks.
var ErrEmpty = errors.New("playlist is empty")

// Track is a single entry of the playlist.
type Track struct {
	Link string // file path or file:// URI handed to the engine
	Name string // display name
	Size int64  // bytes, 0 when unknown
}

// Playlist is an immutable ordered collection of tracks.
// Order is playback order.
type Playlist struct {
	tracks []Track
}

// New creates a playlist from tracks. At least one track is required.
func New(tracks ...Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrEmpty
	}
	for i, t := range tracks {
		if t.Link == "" {
			return nil, errors.Newf("track %d has no link", i)
		}
	}
	p := &Playlist{tracks: make([]Track, len(tracks))}
	copy(p.tracks, tracks)
	for i := range p.tracks {
		if p.tracks[i].Name == "" {
			p.tracks[i].Name = nameFromLink(p.tracks[i].Link)
		}
	}
	return p, nil
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Last returns the index of the last track.
func (p *Playlist) Last() int {
	return len(p.tracks) - 1
}

// Valid reports whether index addresses a track.
func (p *Playlist) Valid(index int) bool {
	return index >= 0 && index < len(p.tracks)
}

// At returns the track at index. The second result is false when index
// is out of bounds.
func (p *Playlist) At(index int) (Track, bool) {
	if !p.Valid(index) {
		return Track{}, false
	}
	return p.tracks[index], true
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}
