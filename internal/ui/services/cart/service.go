package cart

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"shopgrip/internal/domain"
	"shopgrip/internal/eventbus"
)

// observation is one (state, data identity) pair seen by the controller
type observation struct {
	state FetcherState
	rev   uint64
}

// Controller turns add-to-cart gestures into fire-and-forget submissions and
// opens the cart panel once each time the shared channel becomes idle with
// fresh cart data.
type Controller struct {
	fetcher   *Fetcher
	submitter Submitter
	opener    PanelOpener
	bus       eventbus.EventBus
	onFailure FailureFunc

	last observation
}

// NewController creates a controller. bus may be nil.
func NewController(submitter Submitter, opener PanelOpener, bus eventbus.EventBus) *Controller {
	return &Controller{
		fetcher:   NewFetcher(),
		submitter: submitter,
		opener:    opener,
		bus:       bus,
	}
}

// SetFailureHook registers fn to be told about failed submissions
func (c *Controller) SetFailureHook(fn FailureFunc) {
	c.onFailure = fn
}

// SetPanelOpener replaces the panel opener
func (c *Controller) SetPanelOpener(opener PanelOpener) {
	c.opener = opener
}

// Fetcher exposes the shared submission channel
func (c *Controller) Fetcher() *Fetcher {
	return c.fetcher
}

// AddToCart submits one line for product. The returned command performs the
// submission and reports a SettledMsg; it is nil when there is nothing to add.
func (c *Controller) AddToCart(ctx context.Context, product domain.Product) tea.Cmd {
	line, ok := LineFor(product)
	if !ok {
		log.Warnf("Add to cart: %s has no variants", product.Handle)
		c.fail(0, ErrNoVariant)
		return nil
	}

	sub, err := NewLinesAddSubmission([]Line{line})
	if err != nil {
		c.fail(0, err)
		return nil
	}

	id := c.fetcher.Submit()
	c.Observe()
	log.Infof("Add to cart #%d: %s (%s)", id, product.Title, line.MerchandiseID)

	submitter := c.submitter
	return func() tea.Msg {
		cart, err := submitter.Submit(ctx, sub)
		return SettledMsg{SubmissionID: id, Cart: cart, Err: err}
	}
}

// Settle records a finished submission and runs the completion observer.
// It reports whether the cart panel was opened.
func (c *Controller) Settle(msg SettledMsg) bool {
	payload := Payload{Cart: msg.Cart, Err: msg.Err}
	if payload.Err == nil && payload.Cart == nil {
		payload.Err = ErrNoCart
	}
	if !c.fetcher.Settle(msg.SubmissionID, payload) {
		return false
	}

	if payload.Err != nil {
		log.Warnf("Add to cart #%d failed: %v", msg.SubmissionID, payload.Err)
		c.fail(msg.SubmissionID, payload.Err)
	} else if c.bus != nil {
		c.bus.Publish(eventbus.CartLinesAddedEvent{
			SubmissionID:  msg.SubmissionID,
			CartID:        payload.Cart.ID,
			TotalQuantity: payload.Cart.TotalQuantity,
		})
	}

	return c.Observe()
}

// Observe compares the channel's (state, data) pair with the one seen last
// and opens the cart panel on a transition into idle with fresh cart data.
// Observing an unchanged pair never opens the panel again.
func (c *Controller) Observe() bool {
	data, rev := c.fetcher.Data()
	now := observation{state: c.fetcher.State(), rev: rev}
	if now == c.last {
		return false
	}
	c.last = now

	if now.state != Idle || data == nil || data.Err != nil || data.Cart == nil {
		return false
	}

	if c.opener != nil {
		c.opener.Open(PanelCart)
	}
	if c.bus != nil {
		c.bus.Publish(eventbus.CartPanelOpenedEvent{Panel: PanelCart})
	}
	return true
}

// LatestCart returns the cart of the latest successful settlement, if the
// latest settlement succeeded
func (c *Controller) LatestCart() *domain.Cart {
	data, _ := c.fetcher.Data()
	if data == nil || data.Err != nil {
		return nil
	}
	return data.Cart
}

func (c *Controller) fail(id uint64, err error) {
	if c.onFailure != nil {
		c.onFailure(id, err)
	}
}
