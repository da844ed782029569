package app

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/keymap"
	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/playlist"
	"github.com/llehouerou/tinywave/internal/ui/testutil"
)

// countingScheduler records deferred plays without ever running them.
type countingScheduler struct {
	mu sync.Mutex
	n  int
}

type idleTimer struct{}

func (idleTimer) Stop() bool { return true }

func (s *countingScheduler) AfterFunc(time.Duration, func()) playback.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return idleTimer{}
}

func (s *countingScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

type harness struct {
	model Model
	ctrl  *playback.Controller
	mock  *player.Mock
	sched *countingScheduler
}

func newHarness(t *testing.T, n int) *harness {
	t.Helper()
	icons.Init(string(icons.StyleNone))

	tracks := make([]playlist.Track, n)
	for i := range tracks {
		tracks[i] = playlist.Track{Link: fmt.Sprintf("/music/%d.mp3", i), Name: fmt.Sprintf("Song %d", i)}
	}
	pl, err := playlist.New(tracks...)
	require.NoError(t, err)

	mock := player.NewMock()
	sched := &countingScheduler{}
	opts := playback.DefaultOptions()
	opts.Scheduler = sched
	ctrl := playback.New(mock, pl, opts)
	require.NoError(t, ctrl.SelectTrack(0))
	t.Cleanup(func() { _ = ctrl.Close() })

	return &harness{model: New(ctrl), ctrl: ctrl, mock: mock, sched: sched}
}

// press sends a key through Update and keeps the resulting model.
func (h *harness) press(t *testing.T, key string) tea.Cmd {
	t.Helper()
	return h.send(t, testutil.Key(key))
}

func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := h.model.Update(msg)
	m, ok := updated.(Model)
	require.True(t, ok, "Update should return Model")
	h.model = m
	return cmd
}

func TestNew_StartsOnFirstTrack(t *testing.T) {
	h := newHarness(t, 3)

	assert.Equal(t, 0, h.model.State.Index)
	assert.Equal(t, "Song 0", h.model.State.Track.Name)
	assert.Equal(t, keymap.ContextPlayer, h.model.context())
	assert.NotNil(t, h.model.Init())
}

func TestKeys_PlayPause(t *testing.T) {
	h := newHarness(t, 3)

	h.press(t, " ")
	assert.Equal(t, player.Playing, h.mock.State())
	assert.True(t, h.model.State.Playing)
	assert.Equal(t, playback.IconPause, h.model.State.PlayIcon)

	h.press(t, " ")
	assert.Equal(t, player.Paused, h.mock.State())
	assert.Equal(t, playback.IconPlay, h.model.State.PlayIcon)
}

func TestKeys_NextSchedulesPlay(t *testing.T) {
	h := newHarness(t, 3)

	h.press(t, "n")

	assert.Equal(t, 1, h.model.State.Index)
	assert.Equal(t, "/music/1.mp3", h.mock.URI())
	assert.Equal(t, 1, h.sched.count())
	assert.Zero(t, h.mock.PlayCalls(), "play is deferred, not immediate")
}

func TestKeys_BoundaryIsSilent(t *testing.T) {
	h := newHarness(t, 2)

	cmd := h.press(t, "p")

	assert.Nil(t, cmd)
	assert.Equal(t, 0, h.model.State.Index)
	assert.Empty(t, h.model.StatusMsg)
}

func TestKeys_Toggles(t *testing.T) {
	h := newHarness(t, 3)

	h.press(t, "r")
	assert.Equal(t, "2.0X", h.model.State.RateLabel)
	assert.InDelta(t, 2.0, h.mock.PlaybackRate(), 0.001)

	h.press(t, "m")
	assert.True(t, h.model.State.Muted)
	assert.True(t, h.mock.Muted())

	h.press(t, "a")
	assert.False(t, h.model.State.Autoplay)

	h.press(t, "v")
	assert.True(t, h.model.State.PlayheadVisible)
}

func TestKeys_Seek(t *testing.T) {
	h := newHarness(t, 1)

	h.press(t, "right")
	h.press(t, "ctrl+left")

	assert.Equal(t, []time.Duration{seekStep, -seekStepLong}, h.mock.SeekCalls())
}

func TestMenu_SelectTrack(t *testing.T) {
	h := newHarness(t, 3)

	h.press(t, "l")
	require.True(t, h.model.State.MenuOpen)
	assert.Equal(t, keymap.ContextMenu, h.model.context())
	assert.Contains(t, testutil.StripANSI(h.model.View()), "Song 2")

	h.press(t, "j")
	h.press(t, "j")
	h.press(t, "enter")

	assert.False(t, h.model.State.MenuOpen)
	assert.Equal(t, 2, h.model.State.Index)
	assert.Equal(t, 1, h.sched.count(), "menu selection always schedules play")
}

func TestMenu_EscCloses(t *testing.T) {
	h := newHarness(t, 3)
	h.press(t, "tab")
	require.True(t, h.model.State.MenuOpen)

	h.press(t, "esc")

	assert.False(t, h.model.State.MenuOpen)
	assert.Equal(t, 0, h.model.State.Index)
}

func TestMenu_TransportKeysIgnored(t *testing.T) {
	h := newHarness(t, 3)
	h.press(t, "l")

	h.press(t, "n")

	assert.Equal(t, 0, h.model.State.Index)
	assert.True(t, h.model.State.MenuOpen)
}

func TestKeys_QuitAndHelp(t *testing.T) {
	h := newHarness(t, 1)

	h.press(t, "?")
	assert.True(t, h.model.ShowHelp)
	assert.True(t, h.model.Help.ShowAll)

	cmd := h.press(t, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_StateChanged(t *testing.T) {
	h := newHarness(t, 3)
	s := h.model.State
	s.Index = 2
	s.Elapsed = "1:05"

	cmd := h.send(t, StateChangedMsg{State: s})

	assert.NotNil(t, cmd, "keeps watching the transport")
	assert.Equal(t, "1:05", h.model.State.Elapsed)
	assert.Equal(t, 2, h.model.State.Index)
}

func TestUpdate_PlaybackErrorShowsStatus(t *testing.T) {
	h := newHarness(t, 3)

	h.send(t, PlaybackErrorMsg{
		Operation: errmsg.OpTrackLoad,
		Link:      "/music/1.mp3",
		Err:       errors.New("unsupported format"),
	})

	assert.Equal(t, "Failed to load track '/music/1.mp3': unsupported format", h.model.StatusMsg)
	assert.True(t, h.model.StatusIsErr)
	assert.Contains(t, testutil.StripANSI(h.model.View()), "unsupported format")
}

func TestUpdate_StatusExpiry(t *testing.T) {
	h := newHarness(t, 1)
	h.send(t, StderrMsg{Line: "ALSA lib underrun"})
	first := h.model.statusSeq
	h.send(t, StderrMsg{Line: "ALSA lib again"})

	h.send(t, StatusExpiredMsg{Seq: first})
	assert.Equal(t, "ALSA lib again", h.model.StatusMsg, "stale expiry is ignored")
	assert.False(t, h.model.StatusIsErr)

	h.send(t, StatusExpiredMsg{Seq: h.model.statusSeq})
	assert.Empty(t, h.model.StatusMsg)
}

func TestUpdate_TransportClosedQuits(t *testing.T) {
	h := newHarness(t, 1)

	cmd := h.send(t, TransportClosedMsg{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_WindowSize(t *testing.T) {
	h := newHarness(t, 3)

	h.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, h.model.Width)
	assert.Equal(t, 30, h.model.Height)
	for _, line := range testutil.SplitLines(h.model.View())[:4] {
		assert.Equal(t, 100, testutil.MeasureWidth(line))
	}
}

func TestWatchTransport_DeliversEvents(t *testing.T) {
	h := newHarness(t, 3)
	sub := h.ctrl.Subscribe()

	h.ctrl.ToggleMute()

	msg := WatchTransport(sub)()
	state, ok := msg.(StateChangedMsg)
	require.True(t, ok, "got %T", msg)
	assert.True(t, state.State.Muted)

	require.NoError(t, h.ctrl.Close())
	assert.IsType(t, TransportClosedMsg{}, WatchTransport(sub)())
	assert.Nil(t, WatchTransport(nil))
}
