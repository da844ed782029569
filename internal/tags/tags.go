// Package tags reads the descriptive metadata of music files.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Tag contains the metadata used to name a track.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Date        string // YYYY, empty when unknown
}

// Year derives the year from the Date field.
// Returns 0 if Date is empty or cannot be parsed.
func (t *Tag) Year() int {
	if t.Date == "" {
		return 0
	}
	year := t.Date
	if len(year) > 4 {
		year = year[:4]
	}
	y, _ := strconv.Atoi(year)
	return y
}

// DisplayName returns "Artist - Title", or just the title when the
// artist is unknown.
func (t *Tag) DisplayName() string {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = BaseName(t.Path)
	}
	artist := strings.TrimSpace(t.Artist)
	if artist == "" {
		return title
	}
	return artist + " - " + title
}

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
