package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopgrip/internal/domain"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/ui/state"
)

type stubReader struct {
	cart *domain.Cart
}

func (r stubReader) Current(context.Context) (*domain.Cart, error) {
	return r.cart, nil
}

func TestRefreshCatalogPublishesOnce(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	requested := make(chan struct{}, 2)
	bus.Subscribe(eventbus.EventCatalogRequested, func(eventbus.DomainEvent) { requested <- struct{}{} })

	st := state.NewAppState(4)
	e := NewExecutor(context.Background(), st, bus, nil)

	assert.Nil(t, e.ExecuteRefreshCatalog())
	assert.Nil(t, e.ExecuteRefreshCatalog())
	assert.True(t, st.Loading)

	select {
	case <-requested:
	case <-time.After(time.Second):
		t.Fatal("catalog was not requested")
	}
	select {
	case <-requested:
		t.Fatal("a second request was published while loading")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRefreshCartReadsCurrentCart(t *testing.T) {
	st := state.NewAppState(4)
	e := NewExecutor(context.Background(), st, nil, stubReader{cart: &domain.Cart{ID: "c1"}})

	cmd := e.ExecuteRefreshCart()
	require.NotNil(t, cmd)
	msg, ok := cmd().(CartRefreshedMsg)
	require.True(t, ok)
	assert.Equal(t, "c1", msg.Cart.ID)

	assert.Nil(t, NewExecutor(context.Background(), st, nil, nil).ExecuteRefreshCart())
}
