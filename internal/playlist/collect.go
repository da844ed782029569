package playlist

import (
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/tags"
)

// DefaultTracks is the demo playlist used when nothing is configured.
func DefaultTracks() []Track {
	return []Track{
		{Link: "assets/audio/audio_1.mp3", Name: "Light and Dark"},
		{Link: "assets/audio/audio_2.mp3", Name: "Shake Shake"},
		{Link: "assets/audio/audio_3.mp3", Name: "You and I"},
	}
}

// FromPath creates a track from a file path, naming it from its tags.
func FromPath(path string) Track {
	t := Track{
		Link: path,
		Name: tags.NameOf(path),
	}
	if info, err := os.Stat(path); err == nil {
		t.Size = info.Size()
	}
	return t
}

// FromPaths builds tracks from files and directories, in argument order.
// Directories contribute their music files (not recursive), sorted by name.
func FromPaths(paths []string) ([]Track, error) {
	var tracks []Track
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}

		if !info.IsDir() {
			if !player.IsMusicFile(path) {
				return nil, errors.Wrapf(player.ErrUnsupportedFormat, "%s", path)
			}
			tracks = append(tracks, FromPath(path))
			continue
		}

		dirTracks, err := fromDir(path)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, dirTracks...)
	}
	return tracks, nil
}

func fromDir(dir string) ([]Track, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !player.IsMusicFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		zlog.Warn().Str("dir", dir).Msg("no music files found")
	}

	tracks := make([]Track, 0, len(names))
	for _, name := range names {
		tracks = append(tracks, FromPath(filepath.Join(dir, name)))
	}
	return tracks, nil
}

// nameFromLink derives a display name from a path or URI.
func nameFromLink(link string) string {
	if strings.Contains(link, "://") {
		if u, err := url.Parse(link); err == nil && u.Path != "" {
			return tags.BaseName(u.Path)
		}
	}
	return tags.BaseName(link)
}
