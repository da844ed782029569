package playerbar

import (
	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/ui/styles"
)

// button renders a transport button, dimmed when it cannot act.
func button(icon string, enabled bool) string {
	if !enabled {
		return styles.T().S().Disabled.Render(icon)
	}
	return styles.T().S().Button.Render(icon)
}

// toggle renders an on/off indicator, highlighted while on.
func toggle(icon string, on bool) string {
	if on {
		return styles.T().S().Active.Render(icon)
	}
	return styles.T().S().Disabled.Render(icon)
}

func playIcon(i playback.PlayIcon) string {
	if i == playback.IconPause {
		return icons.Pause()
	}
	return icons.Play()
}

func muteIcon(i playback.MuteIcon) string {
	if i == playback.IconMuted {
		return icons.Muted()
	}
	return icons.Audio()
}
