package player

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
)

// ErrUnsupportedFormat is returned by Load for files no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported format")

// IsMusicFile reports whether path has an extension the engine can decode.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG:
		return true
	}
	return false
}

// PathFromURI turns a track link into a local file path.
// Plain paths pass through; file:// URIs are unescaped; other schemes are rejected.
func PathFromURI(uri string) (string, error) {
	if !strings.Contains(uri, "://") {
		return uri, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", errors.Wrapf(err, "parse %q", uri)
	}
	if u.Scheme != "file" {
		return "", errors.Newf("unsupported scheme %q", u.Scheme)
	}
	return u.Path, nil
}

// openSource opens and decodes the file at path.
// The returned streamer owns the file and closes it.
func openSource(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsMusicFile(path) {
		return nil, beep.Format{}, errors.Wrap(ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case extMP3:
		streamer, format, err = decodeMP3(f)
	case extFLAC:
		if err = skipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}

// skipID3v2 positions r after a leading ID3v2 tag, if any.
// Some taggers prepend one to FLAC files and the FLAC decoder chokes on it.
func skipID3v2(r io.ReadSeeker) error {
	var header [10]byte
	n, err := io.ReadFull(r, header[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < len(header) || string(header[:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	// Tag size is a 28-bit syncsafe integer.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(int64(len(header))+size, io.SeekStart)
	return err
}
