package tags

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file.
// Files without a title tag get their base name as title.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read tags of %s", path)
	}

	title := m.Title()
	if title == "" {
		title = BaseName(path)
	}
	track, _ := m.Track()

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      m.Artist(),
		Album:       m.Album(),
		TrackNumber: track,
		Date:        yearToDate(m.Year()),
	}, nil
}

// NameOf returns a display name for path, falling back to the file name
// when the file carries no readable tags.
func NameOf(path string) string {
	t, err := Read(path)
	if err != nil {
		return BaseName(path)
	}
	return t.DisplayName()
}

// yearToDate converts a year integer to a date string.
// Returns empty string for year 0.
func yearToDate(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
