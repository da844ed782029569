package playerbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/playlist"
	"github.com/llehouerou/tinywave/internal/ui/testutil"
)

func playingState() playback.PlayerState {
	return playback.PlayerState{
		Index:         1,
		TrackCount:    3,
		Track:         playlist.Track{Link: "b.mp3", Name: "Shake Shake"},
		Playing:       true,
		Autoplay:      true,
		Rate:          playback.Rate1x,
		Elapsed:       "1:05",
		Total:         "3:20",
		Progress:      50,
		CanGoNext:     true,
		CanGoPrevious: true,
		PlayIcon:      playback.IconPause,
		MuteIcon:      playback.IconAudio,
		RateLabel:     "1.0X",
	}
}

func renderLines(t *testing.T, s playback.PlayerState, width int) []string {
	t.Helper()
	icons.Init(string(icons.StyleNone))
	lines := testutil.SplitLines(Render(s, width))
	require.Len(t, lines, Height)
	for _, l := range lines {
		assert.Equal(t, width, testutil.MeasureWidth(l), "line %q", l)
	}
	return lines
}

func TestRender_Layout(t *testing.T) {
	lines := renderLines(t, playingState(), 80)

	assert.Contains(t, lines[1], "Shake Shake")
	assert.Contains(t, lines[1], "2/3")

	controls := lines[2]
	assert.Contains(t, controls, "|< || >|")
	assert.Contains(t, controls, "1:05")
	assert.Contains(t, controls, "3:20")
	assert.Contains(t, controls, "1.0X")
	assert.Contains(t, controls, "[vol]")
	assert.Contains(t, controls, "[A]")
	assert.Contains(t, controls, "[=]")
	assert.NotContains(t, controls, playhead)

	bar := strings.Count(controls, filledBlock) + strings.Count(controls, emptyBlock)
	assert.Equal(t, 31, bar)
	assert.Equal(t, 15, strings.Count(controls, filledBlock))
}

func TestRender_PausedShowsPlayButton(t *testing.T) {
	s := playingState()
	s.Playing = false
	s.PlayIcon = playback.IconPlay

	lines := renderLines(t, s, 80)

	assert.Contains(t, lines[2], "|< > >|")
}

func TestRender_Muted(t *testing.T) {
	s := playingState()
	s.Muted = true
	s.MuteIcon = playback.IconMuted

	lines := renderLines(t, s, 80)

	assert.Contains(t, lines[2], "[mute]")
	assert.NotContains(t, lines[2], "[vol]")
}

func TestRender_RateLabel(t *testing.T) {
	s := playingState()
	s.Rate = playback.Rate3x
	s.RateLabel = playback.Rate3x.Label()

	lines := renderLines(t, s, 80)

	assert.Contains(t, lines[2], "3.0X")
}

func TestRender_Playhead(t *testing.T) {
	s := playingState()
	s.PlayheadVisible = true

	lines := renderLines(t, s, 80)

	assert.Equal(t, 1, strings.Count(lines[2], playhead))
}

func TestRender_UnknownName(t *testing.T) {
	s := playingState()
	s.Track.Name = ""

	lines := renderLines(t, s, 80)

	assert.Contains(t, lines[1], "Unknown Track")
}

func TestRender_BeforeMetadata(t *testing.T) {
	pl, err := playlist.New(playlist.DefaultTracks()...)
	require.NoError(t, err)
	c := playback.New(player.NewMock(), pl, playback.DefaultOptions())
	require.NoError(t, c.SelectTrack(0))

	lines := renderLines(t, c.State(), 30)

	assert.Contains(t, lines[2], "0:00 / 0:00", "both times read zero until a duration arrives")
}

func TestRender_NarrowDropsBar(t *testing.T) {
	lines := renderLines(t, playingState(), 30)

	assert.Contains(t, lines[2], "1:05 / 3:20")
	assert.NotContains(t, lines[2], filledBlock)
}

func TestRender_LongNameTruncated(t *testing.T) {
	s := playingState()
	s.Track.Name = strings.Repeat("very long title ", 10)

	lines := renderLines(t, s, 50)

	assert.Contains(t, lines[1], "…")
	assert.Contains(t, lines[1], "2/3")
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		width    int
		playhead bool
		want     string
	}{
		{"half", 50, 10, false, "▓▓▓▓▓░░░░░"},
		{"empty", 0, 4, false, "░░░░"},
		{"full", 100, 4, false, "▓▓▓▓"},
		{"over full clamps", 150, 4, false, "▓▓▓▓"},
		{"negative", -5, 4, false, "░░░░"},
		{"half with playhead", 50, 10, true, "▓▓▓▓▓●░░░░"},
		{"start with playhead", 0, 5, true, "●░░░░"},
		{"end with playhead", 100, 5, true, "▓▓▓▓●"},
		{"zero width", 50, 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.StripANSI(RenderProgressBar(tt.percent, tt.width, tt.playhead))
			if got != tt.want {
				t.Errorf("RenderProgressBar(%v, %d, %v) = %q, want %q",
					tt.percent, tt.width, tt.playhead, got, tt.want)
			}
		})
	}
}
