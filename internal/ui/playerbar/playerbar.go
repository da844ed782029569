// Package playerbar renders the transport: track title, buttons, elapsed and
// total time, progress bar and the rate, mute, autoplay and menu toggles.
package playerbar

import (
	"strconv"
	"strings"

	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/ui"
	"github.com/llehouerou/tinywave/internal/ui/render"
	"github.com/llehouerou/tinywave/internal/ui/styles"
)

// Height is the number of terminal rows Render produces.
const Height = 4 // 2 content rows + 2 border rows

// Render returns the player bar for the given width.
func Render(s playback.PlayerState, width int) string {
	inner := max(width-4, 0) // border + one column of padding each side

	lines := []string{
		renderTitle(s, inner),
		renderControls(s, inner),
	}

	return styles.T().S().Border.
		Padding(0, 1).
		Width(max(width-2, 0)).
		Render(strings.Join(lines, "\n"))
}

func renderTitle(s playback.PlayerState, width int) string {
	st := styles.T().S()

	position := ""
	if s.TrackCount > 0 {
		position = strconv.Itoa(s.Index+1) + "/" + strconv.Itoa(s.TrackCount)
	}

	name := s.Track.Name
	if name == "" {
		name = "Unknown Track"
	}
	name = render.Truncate(name, max(width-render.Width(position)-1, 0))

	titleStyle := st.Title
	if s.Playing {
		titleStyle = st.Playing
	}
	return render.Row(titleStyle.Render(name), st.Muted.Render(position), width)
}

func renderControls(s playback.PlayerState, width int) string {
	st := styles.T().S()

	transport := strings.Join([]string{
		button(icons.Previous(), s.CanGoPrevious),
		button(playIcon(s.PlayIcon), true),
		button(icons.Next(), s.CanGoNext),
	}, " ")

	toggles := strings.Join([]string{
		st.Rate.Render(s.RateLabel),
		button(muteIcon(s.MuteIcon), true),
		toggle(icons.Autoplay(), s.Autoplay),
		toggle(icons.Menu(), s.MenuOpen),
	}, "  ")

	elapsed, total := s.Elapsed, s.Total

	fixed := render.Width(transport) + render.Width(toggles) +
		render.Width(elapsed) + render.Width(total) + 8 // gaps: 3 + 1 + 1 + 3
	barWidth := width - fixed

	var middle string
	if barWidth < ui.MinProgressBarWidth {
		middle = st.Time.Render(elapsed + " / " + total)
	} else {
		middle = st.Time.Render(elapsed) + " " +
			RenderProgressBar(s.Progress, barWidth, s.PlayheadVisible) + " " +
			st.Time.Render(total)
	}

	line := transport + "   " + middle + "   " + toggles
	if render.Width(line) > width {
		return render.TruncateStyled(line, width)
	}
	return render.Row(transport+"   "+middle, toggles, width)
}
