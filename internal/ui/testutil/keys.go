package testutil

import tea "github.com/charmbracelet/bubbletea"

var namedKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEsc,
	"tab":         tea.KeyTab,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"ctrl+left":   tea.KeyCtrlLeft,
	"ctrl+right":  tea.KeyCtrlRight,
	"home":        tea.KeyHome,
	"end":         tea.KeyEnd,
	"pgup":        tea.KeyPgUp,
	"pgdown":      tea.KeyPgDown,
	"ctrl+c":      tea.KeyCtrlC,
	" ":           tea.KeySpace,
}

// Key builds the tea.KeyMsg whose String() is name, so tests can drive
// models with the same strings the keymap binds.
func Key(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
