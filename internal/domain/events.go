package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogRequested EventType = "CatalogRequested"
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventSearchIssued     EventType = "SearchIssued"
	EventSearchSettled    EventType = "SearchSettled"
	EventCartLinesAdded   EventType = "CartLinesAdded"
	EventCartPanelOpened  EventType = "CartPanelOpened"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogRequestedEvent asks the catalog loader to (re)load the home page
type CatalogRequestedEvent struct{}

func (e CatalogRequestedEvent) Type() EventType { return EventCatalogRequested }

// CatalogLoadedEvent is emitted when the home page sections have been loaded
type CatalogLoadedEvent struct {
	Page   HomePage
	Failed []string // sections that failed and render empty
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// SearchIssuedEvent is emitted when a predictive search lookup is issued
type SearchIssuedEvent struct {
	Seq   uint64
	Query string
}

func (e SearchIssuedEvent) Type() EventType { return EventSearchIssued }

// SearchSettledEvent is emitted when a lookup settles, accepted or not
type SearchSettledEvent struct {
	Seq      uint64
	Query    string
	Results  int
	Accepted bool
	Err      error
}

func (e SearchSettledEvent) Type() EventType { return EventSearchSettled }

// CartLinesAddedEvent is emitted when an add-to-cart submission returned a cart
type CartLinesAddedEvent struct {
	SubmissionID  uint64
	CartID        string
	TotalQuantity int
}

func (e CartLinesAddedEvent) Type() EventType { return EventCartLinesAdded }

// CartPanelOpenedEvent is emitted when a side panel is opened
type CartPanelOpenedEvent struct {
	Panel string
}

func (e CartPanelOpenedEvent) Type() EventType { return EventCartPanelOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
