package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play     string
	Pause    string
	Previous string
	Next     string
	Audio    string
	Muted    string
	Autoplay string
	Menu     string
	Track    string
	Current  string
}

var (
	nerdIcons = Icons{
		Play:     "", // nf-fa-play
		Pause:    "", // nf-fa-pause
		Previous: "", // nf-fa-step_backward
		Next:     "", // nf-fa-step_forward
		Audio:    "", // nf-fa-volume_up
		Muted:    "", // nf-fa-volume_off
		Autoplay: "󰑖",      // nf-md-repeat
		Menu:     "󰲸",      // nf-md-playlist_music
		Track:    " ", // nf-fa-music
		Current:  " ", // nf-fa-play
	}

	unicodeIcons = Icons{
		Play:     "▶",
		Pause:    "⏸",
		Previous: "⏮",
		Next:     "⏭",
		Audio:    "🔊",
		Muted:    "🔇",
		Autoplay: "🔁",
		Menu:     "📋",
		Track:    "🎵 ",
		Current:  "▶ ",
	}

	noneIcons = Icons{
		Play:     ">",
		Pause:    "||",
		Previous: "|<",
		Next:     ">|",
		Audio:    "[vol]",
		Muted:    "[mute]",
		Autoplay: "[A]",
		Menu:     "[=]",
		Track:    "",
		Current:  "> ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Valid reports whether style names a known icon set.
func Valid(style string) bool {
	switch Style(style) {
	case StyleNerd, StyleUnicode, StyleNone:
		return true
	}
	return false
}

// Play returns the icon shown while paused (pressing it plays).
func Play() string {
	return current.Play
}

// Pause returns the icon shown while playing.
func Pause() string {
	return current.Pause
}

func Previous() string {
	return current.Previous
}

func Next() string {
	return current.Next
}

// Audio returns the unmuted volume icon.
func Audio() string {
	return current.Audio
}

// Muted returns the muted volume icon.
func Muted() string {
	return current.Muted
}

// Autoplay returns the autoplay indicator.
func Autoplay() string {
	return current.Autoplay
}

// Menu returns the track menu indicator.
func Menu() string {
	return current.Menu
}

// FormatTrack formats a track name for the menu. The current track gets
// a play marker; other tracks get the style's audio prefix.
func FormatTrack(name string, isCurrent bool) string {
	if isCurrent {
		return current.Current + name
	}
	if current == noneIcons {
		return "  " + name
	}
	return current.Track + name
}
