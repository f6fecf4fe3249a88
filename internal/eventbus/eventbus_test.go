package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventSearchIssued, func(e DomainEvent) { got <- e })

	b.Publish(SearchIssuedEvent{Seq: 3, Query: "shoe"})

	select {
	case e := <-got:
		ev, ok := e.(SearchIssuedEvent)
		require.True(t, ok)
		assert.Equal(t, uint64(3), ev.Seq)
		assert.Equal(t, "shoe", ev.Query)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	first := make(chan DomainEvent, 4)
	second := make(chan DomainEvent, 4)
	unsubscribe := b.Subscribe(EventError, func(e DomainEvent) { first <- e })
	b.Subscribe(EventError, func(e DomainEvent) { second <- e })

	unsubscribe()
	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber did not receive the event")
	}
	select {
	case <-first:
		t.Fatal("unsubscribed handler received an event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan struct{}, 1)
	b.Subscribe(EventCatalogRequested, func(DomainEvent) { panic("handler bug") })
	b.Subscribe(EventCatalogLoaded, func(DomainEvent) { got <- struct{}{} })

	b.Publish(CatalogRequestedEvent{})
	b.Publish(CatalogLoadedEvent{})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("bus stopped dispatching after a handler panic")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	got := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { got <- struct{}{} })
	b.Close()

	assert.NotPanics(t, func() { b.Publish(ErrorEvent{Message: "late"}) })
	select {
	case <-got:
		t.Fatal("event delivered after close")
	case <-time.After(50 * time.Millisecond):
	}
}
