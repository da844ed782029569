package app

import (
	"strings"

	"github.com/llehouerou/tinywave/internal/keymap"
	"github.com/llehouerou/tinywave/internal/ui/playerbar"
	"github.com/llehouerou/tinywave/internal/ui/render"
	"github.com/llehouerou/tinywave/internal/ui/styles"
)

// shortHelpCount is the number of context bindings in the one-line help.
const shortHelpCount = 4

// View renders the application UI.
func (m Model) View() string {
	parts := []string{playerbar.Render(m.State, m.Width)}

	if m.State.MenuOpen {
		parts = append(parts, m.Menu.View())
	}

	parts = append(parts, m.renderStatus())
	parts = append(parts, m.Help.View(keymap.NewHelpMap(m.context(), shortHelpCount)))

	return strings.Join(parts, "\n")
}

func (m Model) renderStatus() string {
	if m.StatusMsg == "" {
		return ""
	}
	st := styles.T().S()
	text := render.Truncate(m.StatusMsg, m.Width)
	if m.StatusIsErr {
		return st.Error.Render(text)
	}
	return st.Warning.Render(text)
}
