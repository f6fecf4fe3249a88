package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"shopgrip/internal/catalog"
	"shopgrip/internal/domain"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/ui/state"
)

func TestCatalogLoadedSetsPage(t *testing.T) {
	s := state.NewAppState(4)
	s.Loading = true
	h := NewEventHandler(s)

	page := domain.HomePage{BestSellers: []domain.Product{{Handle: "a"}, {Handle: "b"}}}
	_, ok := h.HandleEvent(eventbus.CatalogLoadedEvent{Page: page})

	assert.False(t, ok)
	assert.True(t, s.Loaded)
	assert.False(t, s.Loading)
	assert.Equal(t, 2, s.Carousels[catalog.SectionBestSellers].Total())
}

func TestFailedSectionsReportStatus(t *testing.T) {
	s := state.NewAppState(4)
	h := NewEventHandler(s)

	status, ok := h.HandleEvent(eventbus.CatalogLoadedEvent{Failed: []string{catalog.SectionHero, catalog.SectionCategories}})

	assert.True(t, ok)
	assert.True(t, status.IsError)
	assert.Equal(t, "Some sections could not be loaded: hero, categories", status.Message)
	assert.True(t, s.SectionFailed(catalog.SectionHero))
}

func TestErrorEventStopsLoading(t *testing.T) {
	s := state.NewAppState(4)
	s.Loading = true
	h := NewEventHandler(s)

	status, ok := h.HandleEvent(eventbus.ErrorEvent{Message: "Could not load the home page", Err: errors.New("boom")})

	assert.True(t, ok)
	assert.False(t, s.Loading)
	assert.Equal(t, Status{Message: "Could not load the home page", IsError: true}, status)
}

func TestOtherEventsAreIgnored(t *testing.T) {
	h := NewEventHandler(state.NewAppState(4))

	_, ok := h.HandleEvent(eventbus.SearchIssuedEvent{Seq: 1, Query: "shoe"})
	assert.False(t, ok)
}
