package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // ContextGlobal, ContextPlayer or ContextMenu
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},

	// Player
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayer},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", ContextPlayer},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", ContextPlayer},
	{ActionCycleRate, []string{"r"}, "Cycle speed 1x/2x/3x", ContextPlayer},
	{ActionToggleMute, []string{"m"}, "Mute", ContextPlayer},
	{ActionToggleAutoplay, []string{"a"}, "Toggle autoplay", ContextPlayer},
	{ActionToggleMenu, []string{"l", "tab"}, "Track list", ContextPlayer},
	{ActionTogglePlayhead, []string{"v"}, "Toggle playhead", ContextPlayer},
	{ActionSeekForward, []string{"right", "shift+right"}, "Seek +5s", ContextPlayer},
	{ActionSeekBack, []string{"left", "shift+left"}, "Seek -5s", ContextPlayer},
	{ActionSeekForwardLong, []string{"ctrl+right"}, "Seek +30s", ContextPlayer},
	{ActionSeekBackLong, []string{"ctrl+left"}, "Seek -30s", ContextPlayer},

	// Track menu
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextMenu},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextMenu},
	{ActionJumpStart, []string{"g", "home"}, "First track", ContextMenu},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", ContextMenu},
	{ActionSelect, []string{"enter"}, "Play track", ContextMenu},
	{ActionCloseMenu, []string{"esc", "l", "tab"}, "Close list", ContextMenu},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
