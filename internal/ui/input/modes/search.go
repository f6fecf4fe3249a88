package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopgrip/internal/ui/input/types"
)

// SearchMode is the predictive search overlay. Typing edits the query,
// up/down move through the results and enter opens the selected one.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "up", "ctrl+p":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.MoveResultAction{Delta: -1}}, true
		}
		return nil, true
	case "down", "ctrl+n", "tab":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.MoveResultAction{Delta: 1}}, true
		}
		return nil, true
	case "enter":
		// Without a result there is nothing to follow; keep the overlay open
		if ctx.ResultCount() == 0 {
			return nil, true
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
