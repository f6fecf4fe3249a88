// Package cartsession submits cart forms to the storefront, creating the
// cart on first use.
package cartsession

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"shopgrip/internal/domain"
	"shopgrip/internal/logic"
	"shopgrip/internal/storefront"
	"shopgrip/internal/ui/services/cart"
)

// API is the part of the storefront client a session needs
type API interface {
	CartCreate(ctx context.Context, lines []storefront.LineInput) (*domain.Cart, error)
	CartLinesAdd(ctx context.Context, cartID string, lines []storefront.LineInput) (*domain.Cart, error)
	Cart(ctx context.Context, cartID string) (*domain.Cart, error)
}

// ErrUnsupportedAction is returned for cart form actions other than LinesAdd
var ErrUnsupportedAction = errors.New("unsupported cart action")

// Session owns the storefront cart of this process
type Session struct {
	api   API
	store logic.CartStore
	mu    chan struct{} // held while a mutation runs; a channel so waiting honours ctx
}

// New creates a session. store may be nil.
func New(api API, store logic.CartStore) *Session {
	if store == nil {
		store = logic.NewMemoryCartStore()
	}
	return &Session{
		api:   api,
		store: store,
		mu:    make(chan struct{}, 1),
	}
}

// Submit handles a cart form submission
func (s *Session) Submit(ctx context.Context, sub cart.FormSubmission) (*domain.Cart, error) {
	if sub.Method != http.MethodPost || sub.Action != cart.Route {
		return nil, errors.Errorf("cannot handle %s %s", sub.Method, sub.Action)
	}
	in, err := cart.DecodeFormInput(sub)
	if err != nil {
		return nil, err
	}

	switch in.Action {
	case cart.ActionLinesAdd:
		return s.AddLines(ctx, in.Inputs.Lines)
	}
	return nil, errors.Wrap(ErrUnsupportedAction, in.Action)
}

// AddLines adds lines to the cart, creating it first when there is none.
// Mutations are serialized so concurrent gestures share one cart.
func (s *Session) AddLines(ctx context.Context, lines []cart.Line) (*domain.Cart, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	inputs := make([]storefront.LineInput, 0, len(lines))
	for _, l := range lines {
		inputs = append(inputs, storefront.LineInput{MerchandiseID: l.MerchandiseID, Quantity: l.Quantity})
	}

	id := s.store.CartID()
	if id == "" {
		return s.create(ctx, inputs)
	}

	c, err := s.api.CartLinesAdd(ctx, id, inputs)
	if err == nil {
		s.store.SetCart(c)
		return c, nil
	}
	if !errors.Is(err, storefront.ErrUserErrors) {
		return nil, err
	}

	// The cart may have expired on the platform side
	if _, lookupErr := s.api.Cart(ctx, id); errors.Is(lookupErr, storefront.ErrMissingCart) {
		log.Infof("Cart %s no longer exists, creating a new one", id)
		s.store.Clear()
		return s.create(ctx, inputs)
	}
	return nil, err
}

func (s *Session) create(ctx context.Context, inputs []storefront.LineInput) (*domain.Cart, error) {
	c, err := s.api.CartCreate(ctx, inputs)
	if err != nil {
		return nil, err
	}
	log.Infof("Created cart %s", c.ID)
	s.store.SetCart(c)
	return c, nil
}

// Current refreshes and returns the cart; nil when none was created yet
func (s *Session) Current(ctx context.Context) (*domain.Cart, error) {
	id := s.store.CartID()
	if id == "" {
		return nil, nil
	}
	c, err := s.api.Cart(ctx, id)
	if err != nil {
		if errors.Is(err, storefront.ErrMissingCart) {
			s.store.Clear()
			return nil, nil
		}
		return s.store.Cart(), err
	}
	s.store.SetCart(c)
	return c, nil
}

// Cached returns the last known cart without a round trip
func (s *Session) Cached() *domain.Cart {
	return s.store.Cart()
}

func (s *Session) lock(ctx context.Context) error {
	select {
	case s.mu <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) unlock() {
	<-s.mu
}
