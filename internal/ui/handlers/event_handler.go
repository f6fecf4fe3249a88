package handlers

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"shopgrip/internal/eventbus"
	"shopgrip/internal/ui/state"
)

// Status is a message the UI should show after an event
type Status struct {
	Message string
	IsError bool
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent applies a domain event to the app state. It returns the status
// to show, if any.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) (Status, bool) {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		h.state.SetPage(e.Page, e.Failed)
		if len(e.Failed) > 0 {
			return Status{
				Message: fmt.Sprintf("Some sections could not be loaded: %s", strings.Join(e.Failed, ", ")),
				IsError: true,
			}, true
		}

	case eventbus.ErrorEvent:
		h.state.Loading = false
		if e.Err != nil {
			log.Printf("%s: %v", e.Message, e.Err)
		}
		return Status{Message: e.Message, IsError: true}, true

	case eventbus.CartLinesAddedEvent:
		log.Debugf("Cart %s updated by submission #%d", e.CartID, e.SubmissionID)

	default:
		log.Debugf("Ignoring event %s", event.Type())
	}
	return Status{}, false
}
