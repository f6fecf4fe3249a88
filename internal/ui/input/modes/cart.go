package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopgrip/internal/ui/input/types"
)

// CartMode is active while the cart panel is open
type CartMode struct{}

func NewCartMode() *CartMode {
	return &CartMode{}
}

func (m *CartMode) Name() string {
	return "cart"
}

func (m *CartMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *CartMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *CartMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "c":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "r":
		return []types.Action{types.RefreshAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}
	// The panel is modal
	return nil, true
}
