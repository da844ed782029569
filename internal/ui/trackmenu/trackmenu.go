// Package trackmenu renders the playlist as a scrollable menu and turns menu
// actions into a selection for the transport.
package trackmenu

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/keymap"
	"github.com/llehouerou/tinywave/internal/playlist"
	"github.com/llehouerou/tinywave/internal/ui"
	"github.com/llehouerou/tinywave/internal/ui/render"
	"github.com/llehouerou/tinywave/internal/ui/styles"
)

// Result tells the parent what an action did.
type Result struct {
	Selected bool // the highlighted track should play
	Closed   bool // the menu asked to be closed
	Index    int  // highlighted track, valid when Selected
}

// Model is the track menu. The parent owns visibility; the model only keeps
// the highlighted row and the scroll position.
type Model struct {
	tracks  []playlist.Track
	current int
	cursor  cursor
	width   int
	height  int
}

// New creates a menu over a fixed track list.
func New(tracks []playlist.Track) Model {
	return Model{
		tracks: tracks,
		cursor: newCursor(ui.ScrollMargin),
	}
}

// SetSize sets the space available to the menu, frame included.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.cursor.ensureVisible(len(m.tracks), m.listHeight())
}

// SetCurrent marks the loaded track.
func (m *Model) SetCurrent(index int) {
	m.current = index
}

// Reveal moves the highlight to the loaded track, used when the menu opens.
func (m *Model) Reveal() {
	m.cursor.jump(m.current, len(m.tracks), m.listHeight())
}

// Highlighted returns the index of the highlighted row.
func (m Model) Highlighted() int {
	return m.cursor.pos
}

// Height returns the rows View will use.
func (m Model) Height() int {
	return m.listHeight() + ui.PanelOverhead
}

func (m Model) listHeight() int {
	rows := min(len(m.tracks), ui.MaxMenuRows)
	if m.height > 0 {
		rows = min(rows, m.height-ui.PanelOverhead)
	}
	return max(rows, 1)
}

// Update applies a menu action.
func (m *Model) Update(action keymap.Action) Result {
	n, h := len(m.tracks), m.listHeight()

	switch action {
	case keymap.ActionMoveDown:
		m.cursor.move(1, n, h)
	case keymap.ActionMoveUp:
		m.cursor.move(-1, n, h)
	case keymap.ActionJumpStart:
		m.cursor.jumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.jumpEnd(n, h)
	case keymap.ActionSelect:
		if n > 0 {
			return Result{Selected: true, Index: m.cursor.pos}
		}
	case keymap.ActionCloseMenu:
		return Result{Closed: true}
	}
	return Result{}
}

// View renders the framed menu.
func (m Model) View() string {
	st := styles.T().S()
	inner := max(m.width-4, 0)

	header := render.Row(st.Title.Render(icons.Menu()+" Tracks"),
		st.Muted.Render(humanize.Comma(int64(len(m.tracks)))+" tracks"), inner)

	lines := []string{header, st.Subtle.Render(render.Separator(inner))}

	start, end := m.cursor.visibleRange(len(m.tracks), m.listHeight())
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, inner))
	}

	return st.Border.
		Padding(0, 1).
		Width(max(m.width-2, 0)).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(i, width int) string {
	st := styles.T().S()
	t := m.tracks[i]

	size := ""
	if t.Size > 0 {
		size = humanize.Bytes(uint64(t.Size))
	}
	sizeWidth := 0
	if size != "" {
		sizeWidth = render.Width(size) + 1
	}

	name := icons.FormatTrack(t.Name, i == m.current)
	row := render.Fit(name, max(width-sizeWidth, 0))
	if size != "" {
		row += " " + size
	}

	switch {
	case i == m.cursor.pos:
		return st.Cursor.Render(row)
	case i == m.current:
		return st.Playing.Render(row)
	default:
		return st.Base.Render(row)
	}
}
