package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"shopgrip/internal/domain"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CartReader reads the current cart back from the storefront
type CartReader interface {
	Current(ctx context.Context) (*domain.Cart, error)
}

// CartRefreshedMsg reports the outcome of a cart refresh
type CartRefreshedMsg struct {
	Cart *domain.Cart
	Err  error
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
	Ctx   context.Context
}

// RefreshCatalogCommand asks the catalog loader to reload the home page
type RefreshCatalogCommand struct {
	ctx *CommandContext
}

// NewRefreshCatalogCommand creates a new catalog refresh command
func NewRefreshCatalogCommand(ctx *CommandContext) *RefreshCatalogCommand {
	return &RefreshCatalogCommand{ctx: ctx}
}

// Execute marks the page as loading and publishes the request
func (c *RefreshCatalogCommand) Execute() tea.Cmd {
	if c.ctx.State.Loading {
		return nil
	}
	c.ctx.State.Loading = true
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.CatalogRequestedEvent{})
	}
	return nil
}

// RefreshCartCommand reloads the cart shown in the panel
type RefreshCartCommand struct {
	ctx    *CommandContext
	reader CartReader
}

// NewRefreshCartCommand creates a new cart refresh command
func NewRefreshCartCommand(ctx *CommandContext, reader CartReader) *RefreshCartCommand {
	return &RefreshCartCommand{ctx: ctx, reader: reader}
}

// Execute returns a command that reads the cart in the background
func (c *RefreshCartCommand) Execute() tea.Cmd {
	if c.reader == nil {
		return nil
	}
	reader, ctx := c.reader, c.ctx.Ctx
	return func() tea.Msg {
		cart, err := reader.Current(ctx)
		return CartRefreshedMsg{Cart: cart, Err: err}
	}
}
