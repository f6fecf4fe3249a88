package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "shopgrip/internal/ui/input/types"
)

// keyMap describes the bindings shown in the footer. Key handling itself
// lives in the input modes.
type keyMap struct {
	mode inputtypes.Mode

	Navigate key.Binding
	Page     key.Binding
	Search   key.Binding
	BuyNow   key.Binding
	Details  key.Binding
	Cart     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding

	Results key.Binding
	Open    key.Binding
	Close   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↑↓→", "move")),
		Page:     key.NewBinding(key.WithKeys("[", "]", "pgup", "pgdown"), key.WithHelp("[ ]", "page")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		BuyNow:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "buy now")),
		Details:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Cart:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Results:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "results")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp returns the bindings of the current mode
func (k keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case inputtypes.ModeSearch:
		return []key.Binding{k.Results, k.Open, k.Close}
	case inputtypes.ModeCart:
		return []key.Binding{k.Navigate, k.Refresh, k.Close, k.Quit}
	default:
		return []key.Binding{k.Navigate, k.Page, k.Search, k.BuyNow, k.Details, k.Cart, k.Help, k.Quit}
	}
}

// FullHelp returns every binding, grouped
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Page, k.Details},
		{k.Search, k.Results, k.Open, k.Close},
		{k.BuyNow, k.Cart, k.Refresh},
		{k.Help, k.Quit},
	}
}
