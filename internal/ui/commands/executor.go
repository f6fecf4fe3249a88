package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"shopgrip/internal/eventbus"
	"shopgrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx    *CommandContext
	reader CartReader
}

// NewExecutor creates a new command executor. reader may be nil.
func NewExecutor(ctx context.Context, state *state.AppState, bus eventbus.EventBus, reader CartReader) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
			Ctx:   ctx,
		},
		reader: reader,
	}
}

// ExecuteRefreshCatalog creates and executes a catalog refresh command
func (e *Executor) ExecuteRefreshCatalog() tea.Cmd {
	cmd := NewRefreshCatalogCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteRefreshCart creates and executes a cart refresh command
func (e *Executor) ExecuteRefreshCart() tea.Cmd {
	cmd := NewRefreshCartCommand(e.ctx, e.reader)
	return cmd.Execute()
}
