package search

import (
	"context"

	"shopgrip/internal/domain"
)

// UIState is the visible state of the search overlay
type UIState int

const (
	// Closed means the overlay is hidden
	Closed UIState = iota
	// OpenEmpty means the overlay is open with no usable query
	OpenEmpty
	// OpenLoading means a lookup for the latest query is in flight
	OpenLoading
	// OpenResults means the latest accepted lookup found products
	OpenResults
	// OpenNoMatches means the latest accepted lookup found nothing
	OpenNoMatches
)

func (s UIState) String() string {
	switch s {
	case Closed:
		return "Closed"
	case OpenEmpty:
		return "OpenEmpty"
	case OpenLoading:
		return "OpenLoading"
	case OpenResults:
		return "OpenResults"
	case OpenNoMatches:
		return "OpenNoMatches"
	}
	return "Unknown"
}

// IsOpen reports whether the overlay is visible
func (s UIState) IsOpen() bool {
	return s != Closed
}

// Query is one issued lookup
type Query struct {
	Text string
	Seq  uint64
}

// Provider performs predictive search lookups
type Provider interface {
	Lookup(ctx context.Context, text string) ([]domain.ProductSummary, error)
}

// FailureFunc is told about lookups that failed and were not stale
type FailureFunc func(q Query, err error)

// ResultSet is an accepted set of search results, in provider order
type ResultSet struct {
	items []domain.ProductSummary
	byID  map[string]int
}

// NewResultSet builds a result set; a nil slice gives an empty set
func NewResultSet(items []domain.ProductSummary) *ResultSet {
	rs := &ResultSet{
		items: make([]domain.ProductSummary, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, dup := rs.byID[item.ID]; dup {
			continue
		}
		rs.byID[item.ID] = len(rs.items)
		rs.items = append(rs.items, item)
	}
	return rs
}

// Len returns the number of products
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// Items returns the products in order
func (r *ResultSet) Items() []domain.ProductSummary {
	if r == nil {
		return nil
	}
	return r.items
}

// At returns the i-th product
func (r *ResultSet) At(i int) (domain.ProductSummary, bool) {
	if r == nil || i < 0 || i >= len(r.items) {
		return domain.ProductSummary{}, false
	}
	return r.items[i], true
}

// Get returns a product by ID
func (r *ResultSet) Get(id string) (domain.ProductSummary, bool) {
	if r == nil {
		return domain.ProductSummary{}, false
	}
	i, ok := r.byID[id]
	if !ok {
		return domain.ProductSummary{}, false
	}
	return r.items[i], true
}

// SettledMsg carries the outcome of a lookup back into Update
type SettledMsg struct {
	Query   Query
	Results []domain.ProductSummary
	Err     error
}
