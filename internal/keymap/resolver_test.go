//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		name    string
		context string
		key     string
		want    Action
	}{
		{"space plays", ContextPlayer, " ", ActionPlayPause},
		{"next", ContextPlayer, "n", ActionNextTrack},
		{"previous via pgup", ContextPlayer, "pgup", ActionPrevTrack},
		{"rate", ContextPlayer, "r", ActionCycleRate},
		{"global from player", ContextPlayer, "q", ActionQuit},
		{"global from menu", ContextMenu, "ctrl+c", ActionQuit},
		{"menu move", ContextMenu, "j", ActionMoveDown},
		{"menu shadows player", ContextMenu, "l", ActionCloseMenu},
		{"player opens menu", ContextPlayer, "l", ActionToggleMenu},
		{"enter only in menu", ContextPlayer, "enter", ""},
		{"unbound", ContextPlayer, "z", ""},
		{"unknown context falls back to global", "unknown", "?", ActionHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.context, tt.key); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.context, tt.key, got, tt.want)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionCloseMenu, []string{"esc", "l"}, "Close", ContextMenu},
		{ActionCloseMenu, []string{"l", "tab"}, "Close", "other"},
	}
	r := NewResolver(bindings)

	if got := r.KeysFor(ActionQuit); !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v", got)
	}
	if got := r.KeysFor(ActionCloseMenu); !slices.Equal(got, []string{"esc", "l", "tab"}) {
		t.Errorf("KeysFor(close_menu) = %v, want deduplicated keys", got)
	}
	if got := r.KeysFor(ActionHelp); got != nil {
		t.Errorf("KeysFor(unbound) = %v, want nil", got)
	}
}

func TestHelpMap(t *testing.T) {
	h := NewHelpMap(ContextPlayer, 3)

	short := h.ShortHelp()
	if len(short) != 3+len(ByContext(ContextGlobal)) {
		t.Fatalf("len(ShortHelp()) = %d", len(short))
	}
	if got := short[0].Help().Key; got != "space" {
		t.Errorf("first short help key = %q, want space", got)
	}

	full := h.FullHelp()
	if len(full) != 2 || len(full[0]) != len(ByContext(ContextPlayer)) {
		t.Errorf("FullHelp() shape = %d columns", len(full))
	}
}

func TestDisplayKeys(t *testing.T) {
	if got := displayKeys([]string{" ", "p"}); got != "space/p" {
		t.Errorf("displayKeys() = %q, want space/p", got)
	}
}
