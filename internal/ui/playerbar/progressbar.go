package playerbar

import (
	"strings"

	"github.com/llehouerou/tinywave/internal/ui/styles"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"
	playhead    = "●"
)

// RenderProgressBar renders a block-style bar width cells wide for a
// progress percentage. With showPlayhead a marker sits at the current
// position, replacing one cell.
func RenderProgressBar(percent float64, width int, showPlayhead bool) string {
	if width <= 0 {
		return ""
	}
	st := styles.T().S()

	filled := filledCells(percent, width)
	if !showPlayhead {
		return st.Filled.Render(strings.Repeat(filledBlock, filled)) +
			st.Empty.Render(strings.Repeat(emptyBlock, width-filled))
	}

	// The playhead occupies the cell right after the played part and
	// stays on the last cell once the track is done.
	head := min(filled, width-1)
	return st.Filled.Render(strings.Repeat(filledBlock, head)) +
		st.Playhead.Render(playhead) +
		st.Empty.Render(strings.Repeat(emptyBlock, width-head-1))
}

func filledCells(percent float64, width int) int {
	if !(percent > 0) { // also catches NaN
		return 0
	}
	return min(int(float64(width)*percent/100), width)
}
