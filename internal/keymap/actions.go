// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Transport actions
	ActionPlayPause       Action = "play_pause"
	ActionNextTrack       Action = "next_track"
	ActionPrevTrack       Action = "prev_track"
	ActionCycleRate       Action = "cycle_rate"
	ActionToggleMute      Action = "toggle_mute"
	ActionToggleAutoplay  Action = "toggle_autoplay"
	ActionToggleMenu      Action = "toggle_menu"
	ActionTogglePlayhead  Action = "toggle_playhead"
	ActionSeekForward     Action = "seek_forward"
	ActionSeekBack        Action = "seek_back"
	ActionSeekForwardLong Action = "seek_forward_long"
	ActionSeekBackLong    Action = "seek_back_long"

	// Track menu actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select"     // enter - play highlighted track
	ActionCloseMenu Action = "close_menu" // esc
)

// Contexts
const (
	ContextGlobal = "global"
	ContextPlayer = "player"
	ContextMenu   = "menu"
)
