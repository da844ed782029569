package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HelpMap adapts bindings of one context to bubbles' help.KeyMap.
type HelpMap struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelpMap builds the help for context. The short view lists the first
// shortCount bindings of context plus quit and help.
func NewHelpMap(context string, shortCount int) HelpMap {
	own := toKeyBindings(ByContext(context))
	global := toKeyBindings(ByContext(ContextGlobal))

	short := own[:min(shortCount, len(own))]
	short = append(short[:len(short):len(short)], global...)

	return HelpMap{
		short: short,
		full:  [][]key.Binding{own, global},
	}
}

// ShortHelp implements help.KeyMap.
func (h HelpMap) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h HelpMap) FullHelp() [][]key.Binding { return h.full }

func toKeyBindings(bindings []Binding) []key.Binding {
	result := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(displayKeys(b.Keys), b.Description),
		))
	}
	return result
}

// displayKeys renders keys for help text: "space" instead of " ".
func displayKeys(keys []string) string {
	shown := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		shown = append(shown, k)
	}
	return strings.Join(shown, "/")
}
