// Package render provides width-aware text helpers for the player views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks text cut to fit a column.
const Ellipsis = "…"

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and turns non-breaking spaces into plain ones. Track names come from file
// names and tags, and either can carry bytes that break terminal rendering.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0':
			b.WriteByte(' ')
		case r != '\t' && unicode.IsControl(r):
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 && c != '\t' || c == 0x7f {
			return true
		}
		if c >= 0x80 {
			// Non-ASCII: let the slow path decide.
			return true
		}
	}
	return false
}

// Width returns the display width of s, ignoring ANSI escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate shortens plain text to maxWidth cells, cutting on grapheme
// cluster boundaries so emoji and combining marks are never split. An
// ellipsis replaces the last cell when text is cut.
func Truncate(s string, maxWidth int) string {
	s = Sanitize(s)
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}
	limit := maxWidth - runewidth.StringWidth(Ellipsis)
	var b strings.Builder
	used := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > limit {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String() + Ellipsis
}

// TruncateStyled shortens text that already carries ANSI styling.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit truncates plain text if necessary, then pads it to exactly width cells.
func Fit(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row places left and right at the edges of a line of the given width,
// with at least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-Width(left)-Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Center pads s on both sides so it sits in the middle of width cells.
func Center(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
