package storefront

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/sirupsen/logrus"

	"shopgrip/internal/domain"
)

// predictiveSearcher is the part of Client the cached search needs
type predictiveSearcher interface {
	PredictiveSearch(ctx context.Context, term string, limit int) ([]domain.ProductSummary, error)
}

// CachedSearch answers predictive search lookups, remembering recent
// successful responses. Failures are never cached.
type CachedSearch struct {
	client predictiveSearcher
	limit  int
	cache  *expirable.LRU[string, []domain.ProductSummary]
}

// NewCachedSearch wraps a client with an expiring LRU of the given size
func NewCachedSearch(client predictiveSearcher, size int, ttl time.Duration, limit int) *CachedSearch {
	if size <= 0 {
		size = 128
	}
	return &CachedSearch{
		client: client,
		limit:  limit,
		cache:  expirable.NewLRU[string, []domain.ProductSummary](size, nil, ttl),
	}
}

// Lookup returns the products matching text
func (s *CachedSearch) Lookup(ctx context.Context, text string) ([]domain.ProductSummary, error) {
	key := normalizeQuery(text)
	if hit, ok := s.cache.Get(key); ok {
		log.Debugf("Search cache hit for %q", key)
		return hit, nil
	}

	results, err := s.client.PredictiveSearch(ctx, text, s.limit)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, results)
	return results, nil
}

// Purge drops every cached response
func (s *CachedSearch) Purge() {
	s.cache.Purge()
}

func normalizeQuery(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
