package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/tinywave/internal/app"
	"github.com/llehouerou/tinywave/internal/config"
	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/logger"
	"github.com/llehouerou/tinywave/internal/mpris"
	"github.com/llehouerou/tinywave/internal/notify"
	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/playlist"
	"github.com/llehouerou/tinywave/internal/stderr"
)

var (
	cli        = kingpin.New("tinywave", "A tiny terminal audio player")
	configPath = cli.Flag("config", "Path to config file").String()
	verbose    = cli.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = cli.Flag("logfile", "Path to log file (default: $XDG_STATE_HOME/tinywave/tinywave.log)").String()
	noAutoplay = cli.Flag("no-autoplay", "Do not advance to the next track when one ends").Bool()
	iconStyle  = cli.Flag("icons", "Icon style: nerd, unicode or none").String()
	paths      = cli.Arg("paths", "Music files or directories to play, in order").Strings()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(cli.Parse(os.Args[1:]))

	if err := run(); err != nil {
		stderr.Stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if err := applyFlags(cfg); err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logPath := *logfile
	if logPath == "" {
		if logPath, err = cfg.LogFile(); err != nil {
			return errors.New(errmsg.Format(errmsg.OpLoggerInit, err))
		}
	}
	logCloser, err := logger.Init(logger.Config{Level: cfg.Log.Level, File: logPath})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLoggerInit, err))
	}
	defer logCloser.Close()

	icons.Init(cfg.Icons)

	tracks, err := buildTracks(cfg, *paths)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpPlaylistBuild, err))
	}
	pl, err := playlist.New(tracks...)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpPlaylistBuild, err))
	}
	zlog.Info().Int("tracks", pl.Len()).Bool("autoplay", cfg.Autoplay).Msg("starting")

	// The audio backend may write to fd 2 once the device opens.
	if err := stderr.Start(); err != nil {
		zlog.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	ctrl := playback.New(player.New(), pl, playback.Options{
		Autoplay:  cfg.Autoplay,
		PlayDelay: cfg.PlayDelay(),
	})
	defer ctrl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := startSession(ctx, cfg, ctrl, notify.New)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run terminal UI")
	}
	return nil
}

// applyFlags lets command-line flags override the configuration.
func applyFlags(cfg *config.Config) error {
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *noAutoplay {
		cfg.Autoplay = false
	}
	if *iconStyle != "" {
		if !icons.Valid(*iconStyle) {
			return errors.Newf("unknown icon style %q", *iconStyle)
		}
		cfg.Icons = *iconStyle
	}
	return nil
}

// buildTracks picks the playlist source: arguments, then configured tracks,
// then the demo list.
func buildTracks(cfg *config.Config, args []string) ([]playlist.Track, error) {
	if len(args) > 0 {
		return playlist.FromPaths(args)
	}
	if len(cfg.Tracks) == 0 {
		return playlist.DefaultTracks(), nil
	}
	tracks := make([]playlist.Track, 0, len(cfg.Tracks))
	for _, tc := range cfg.Tracks {
		t := playlist.FromPath(tc.Path)
		if tc.Name != "" {
			t.Name = tc.Name
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// startSession subscribes the UI model and the integrations, then loads
// the first track and starts the engine event pump. Everything subscribes
// before the first load so a failing first track reaches the status line
// and the notifications.
func startSession(
	ctx context.Context,
	cfg *config.Config,
	ctrl *playback.Controller,
	newNotifier func() (notify.Notifier, error),
) app.Model {
	model := app.New(ctrl)
	startIntegrations(ctx, cfg, ctrl, newNotifier)

	if err := ctrl.SelectTrack(0); err != nil {
		zlog.Warn().Err(err).Msg("first track did not load")
	}
	go func() {
		if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			zlog.Error().Err(err).Msg("engine event pump stopped")
		}
	}()
	return model
}

// startIntegrations wires desktop media controls and notifications. Both
// are optional: failures are logged and the player runs without them.
func startIntegrations(
	ctx context.Context,
	cfg *config.Config,
	ctrl *playback.Controller,
	newNotifier func() (notify.Notifier, error),
) {
	if cfg.Integration.MPRIS {
		adapter, err := mpris.New(ctrl)
		if err != nil {
			zlog.Warn().Err(err).Msg("mpris unavailable")
		} else {
			go func() {
				<-ctx.Done()
				_ = adapter.Close()
			}()
		}
	}

	if cfg.Integration.Notifications {
		n, err := newNotifier()
		if err != nil {
			zlog.Warn().Err(err).Msg("notifications unavailable")
			return
		}
		go notify.Watch(ctx, ctrl.Subscribe(), n)
	}
}
