package input

import (
	"shopgrip/internal/ui/services/search"
	"shopgrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Search *search.Session
}

// FocusedSection returns the focused home page section
func (c *ModelContext) FocusedSection() string {
	return c.State.FocusedSection()
}

// CurrentIndex returns the cursor in the focused section
func (c *ModelContext) CurrentIndex() int {
	return c.State.FocusedCarousel().GetSelectedIndex()
}

// TotalItems returns the item count of the focused section
func (c *ModelContext) TotalItems() int {
	return c.State.FocusedCarousel().Total()
}

// HasProduct reports whether a product card is under the cursor
func (c *ModelContext) HasProduct() bool {
	_, ok := c.State.SelectedProduct()
	return ok
}

// ResultCount returns how many search results are shown
func (c *ModelContext) ResultCount() int {
	if c.Search == nil {
		return 0
	}
	return c.Search.Results().Len()
}

// SelectedResult returns the highlighted search result
func (c *ModelContext) SelectedResult() int {
	return c.State.SelectedResult
}

// CartLineCount returns the number of lines in the cart panel
func (c *ModelContext) CartLineCount() int {
	if c.State.Cart == nil {
		return 0
	}
	return len(c.State.Cart.Lines)
}
