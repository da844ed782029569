package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tinywave/internal/config"
	"github.com/llehouerou/tinywave/internal/notify"
	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/playlist"
)

func TestBuildTracks_DemoWhenNothingConfigured(t *testing.T) {
	tracks, err := buildTracks(&config.Config{}, nil)

	require.NoError(t, err)
	assert.Equal(t, playlist.DefaultTracks(), tracks)
}

func TestBuildTracks_ConfiguredNamesWin(t *testing.T) {
	dir := t.TempDir()
	song := filepath.Join(dir, "song.mp3")
	require.NoError(t, os.WriteFile(song, make([]byte, 64), 0o600))

	cfg := &config.Config{Tracks: []config.TrackConfig{
		{Path: song, Name: "Opening"},
		{Path: filepath.Join(dir, "other.mp3")},
	}}

	tracks, err := buildTracks(cfg, nil)

	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Opening", tracks[0].Name)
	assert.Equal(t, int64(64), tracks[0].Size)
	assert.Equal(t, "other", tracks[1].Name, "unreadable file is named after its base name")
}

func TestBuildTracks_ArgumentsReplaceConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.mp3"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.flac"), nil, 0o600))
	cfg := &config.Config{Tracks: []config.TrackConfig{{Path: "/ignored.mp3"}}}

	tracks, err := buildTracks(cfg, []string{dir})

	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, filepath.Join(dir, "a.flac"), tracks[0].Link)
}

func TestApplyFlags(t *testing.T) {
	prevVerbose, prevAutoplay, prevIcons := *verbose, *noAutoplay, *iconStyle
	t.Cleanup(func() {
		*verbose, *noAutoplay, *iconStyle = prevVerbose, prevAutoplay, prevIcons
	})

	cfg := &config.Config{Icons: "none", Autoplay: true}
	cfg.Log.Level = "info"
	*verbose, *noAutoplay, *iconStyle = true, true, "unicode"

	require.NoError(t, applyFlags(cfg))
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Autoplay)
	assert.Equal(t, "unicode", cfg.Icons)

	*iconStyle = "emoji"
	assert.Error(t, applyFlags(cfg))
}

type notifications struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (n *notifications) Notify(msg notify.Notification) (uint32, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return uint32(len(n.sent)), nil
}

func (n *notifications) Close(uint32) error { return nil }

func (n *notifications) Sent() []notify.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Notification(nil), n.sent...)
}

func TestStartSession_FirstLoadFailureIsNotified(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		pl, err := playlist.New(playlist.DefaultTracks()...)
		require.NoError(t, err)
		engine := player.NewMock()
		engine.SetLoadError(errors.New("no such file"))
		ctrl := playback.New(engine, pl, playback.DefaultOptions())
		cfg := &config.Config{}
		cfg.Integration.Notifications = true
		rec := &notifications{}
		ctx, cancel := context.WithCancel(t.Context())

		model := startSession(ctx, cfg, ctrl, func() (notify.Notifier, error) { return rec, nil })
		synctest.Wait()

		sent := rec.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "Playback error", sent[0].Title)
		assert.Contains(t, sent[0].Body, "assets/audio/audio_1.mp3")
		assert.Equal(t, 0, model.State.Index)
		assert.Equal(t, []string{"assets/audio/audio_1.mp3"}, engine.LoadCalls())

		cancel()
		require.NoError(t, ctrl.Close())
	})
}

func TestStartSession_NotifierUnavailable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		pl, err := playlist.New(playlist.DefaultTracks()...)
		require.NoError(t, err)
		engine := player.NewMock()
		ctrl := playback.New(engine, pl, playback.DefaultOptions())
		cfg := &config.Config{}
		cfg.Integration.Notifications = true
		ctx, cancel := context.WithCancel(t.Context())

		startSession(ctx, cfg, ctrl, func() (notify.Notifier, error) {
			return nil, errors.New("no session bus")
		})
		synctest.Wait()

		assert.Len(t, engine.LoadCalls(), 1, "the player still starts")

		cancel()
		require.NoError(t, ctrl.Close())
	})
}
