//go:build linux

package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"
	zlog "github.com/rs/zerolog/log"
)

// busName is the suffix of org.mpris.MediaPlayer2.<busName>.
const busName = "tinywave"

// Adapter exposes the transport to desktop media controls over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(t Transport) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer(busName, &rootAdapter{}, &playerAdapter{transport: t}),
	}

	go func() {
		if err := a.server.Listen(); err != nil {
			zlog.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // the TUI owns its lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "tinywave", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}
