package trackmenu

// cursor tracks the highlighted row and the scroll offset of the menu.
// The list length and viewport height are passed in because the window can
// be resized at any time.
type cursor struct {
	pos    int
	offset int
	margin int
}

func newCursor(margin int) cursor {
	return cursor{margin: margin}
}

// move shifts the cursor by delta rows, clamped to the list.
func (c *cursor) move(delta, listLen, height int) {
	c.jump(c.pos+delta, listLen, height)
}

// jump puts the cursor on an absolute row, clamped to the list.
func (c *cursor) jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *cursor) jumpStart() {
	c.pos = 0
	c.offset = 0
}

func (c *cursor) jumpEnd(listLen, height int) {
	c.jump(listLen-1, listLen, height)
}

func (c *cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	// Effective margin shrinks on tiny viewports so the cursor can reach
	// every row.
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// visibleRange returns the [start, end) rows to draw.
func (c cursor) visibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
