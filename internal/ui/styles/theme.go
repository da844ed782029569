// Package styles holds the colour palette shared by the player bar and the
// track menu.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Accent colors
	Primary   lipgloss.Color // Purple - active toggles, current track
	Secondary lipgloss.Color // Gold - rate label

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Disabled buttons, empty progress

	BgCursor lipgloss.Color // Menu cursor highlight

	Border lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Playing  lipgloss.Style // Current track
	Cursor   lipgloss.Style // Cursor background highlight
	Button   lipgloss.Style // Enabled transport button
	Disabled lipgloss.Style // Transport button that cannot act
	Active   lipgloss.Style // Toggle that is on (autoplay, menu)
	Rate     lipgloss.Style
	Filled   lipgloss.Style // Played part of the progress bar
	Empty    lipgloss.Style // Remaining part of the progress bar
	Playhead lipgloss.Style
	Time     lipgloss.Style
	Border   lipgloss.Style // Rounded frame around the player
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border: lipgloss.Color("#585858"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Button:   base.Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Active:   lipgloss.NewStyle().Foreground(t.Primary),
		Rate:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Filled:   lipgloss.NewStyle().Foreground(t.Primary),
		Empty:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Playhead: lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
		Time:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
