// Package ui holds layout constants shared by the player views.
package ui

const (
	// ScrollMargin is the number of menu rows kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a rounded frame.
	BorderHeight = 2

	// HeaderHeight is the space for the menu title and its separator.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead of the track menu.
	// listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// MaxMenuRows caps the track menu height on tall terminals.
	MaxMenuRows = 12
)
