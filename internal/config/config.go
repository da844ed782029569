package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "tinywave"

type Config struct {
	Icons       string `koanf:"icons" default:"none" validate:"oneof=nerd unicode none"`
	Autoplay    bool   `koanf:"autoplay" default:"true"`
	PlayDelayMs int    `koanf:"play_delay_ms" default:"200" validate:"gte=0,lte=5000"`

	Log         LogConfig         `koanf:"log"`
	Integration IntegrationConfig `koanf:"integration"`

	// Playlist, in playback order. Empty means the built-in demo list.
	Tracks []TrackConfig `koanf:"tracks" validate:"dive"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level" default:"info" validate:"oneof=debug info warn error"`
	File  string `koanf:"file"` // empty means $XDG_STATE_HOME/tinywave/tinywave.log
}

// IntegrationConfig toggles desktop integration.
type IntegrationConfig struct {
	MPRIS         bool `koanf:"mpris" default:"true"`
	Notifications bool `koanf:"notifications" default:"true"`
}

// TrackConfig is one playlist entry.
type TrackConfig struct {
	Path string `koanf:"path" validate:"required"`
	Name string `koanf:"name"` // empty means read from tags
}

// Load reads the default config locations, then extra (if non-empty).
// Later files override earlier ones.
func Load(extra string) (*Config, error) {
	paths := getConfigPaths()
	if extra != "" {
		if _, err := os.Stat(extra); err != nil {
			return nil, errors.Wrapf(err, "config file %s", extra)
		}
		paths = append(paths, extra)
	}
	return loadFiles(paths)
}

func loadFiles(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "parse %s", path)
			}
		}
	}

	// Defaults go in first: Unmarshal only overwrites keys present in a file,
	// so an explicit "autoplay = false" survives.
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "set defaults")
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	cfg.overrideFromEnv()

	for i := range cfg.Tracks {
		cfg.Tracks[i].Path = expandPath(cfg.Tracks[i].Path)
	}
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// overrideFromEnv applies TINYWAVE_* environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("TINYWAVE_ICONS"); v != "" {
		c.Icons = v
	}
	if v := os.Getenv("TINYWAVE_AUTOPLAY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Autoplay = b
		}
	}
	if v := os.Getenv("TINYWAVE_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// LogFile returns the log file path, defaulting to the XDG state dir.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/tinywave/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// PlayDelay returns the autoplay delay.
func (c *Config) PlayDelay() time.Duration {
	return time.Duration(c.PlayDelayMs) * time.Millisecond
}
