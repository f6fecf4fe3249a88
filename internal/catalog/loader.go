// Package catalog loads the home page sections from the storefront.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"shopgrip/internal/domain"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/logic"
)

// Section names, as reported in CatalogLoadedEvent.Failed
const (
	SectionHero        = "hero"
	SectionCategories  = "categories"
	SectionBestSellers = "best-sellers"
	SectionFeatured    = "featured"
)

// Source is the part of the storefront client the loader needs
type Source interface {
	HeroSlides(ctx context.Context, first int) ([]domain.HeroSlide, error)
	Categories(ctx context.Context, first int) ([]domain.Collection, error)
	BestSellers(ctx context.Context, first int) ([]domain.Product, error)
	FeaturedCollections(ctx context.Context, first int) ([]domain.Collection, error)
}

// Limits caps how many items each section requests
type Limits struct {
	Hero        int
	Categories  int
	BestSellers int
	Featured    int
}

// DefaultLimits returns the section sizes of the home page
func DefaultLimits() Limits {
	return Limits{Hero: 10, Categories: 20, BestSellers: 12, Featured: 8}
}

// Loader loads the home page
type Loader interface {
	Load(ctx context.Context) (domain.HomePage, error)
	Stop()
}

type loader struct {
	bus    eventbus.EventBus
	src    Source
	store  logic.CatalogStore
	limits Limits

	mu         sync.Mutex
	isLoading  bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoader creates a loader that reloads on CatalogRequested events
func NewLoader(bus eventbus.EventBus, src Source, store logic.CatalogStore, limits Limits) Loader {
	l := &loader{
		bus:    bus,
		src:    src,
		store:  store,
		limits: limits,
	}

	bus.Subscribe(eventbus.EventCatalogRequested, func(e eventbus.DomainEvent) {
		if _, ok := e.(eventbus.CatalogRequestedEvent); ok {
			l.wg.Add(1)
			go func() {
				defer l.wg.Done()
				if _, err := l.Load(context.Background()); err != nil {
					log.Printf("Catalog load failed: %v", err)
				}
			}()
		}
	})

	return l
}

// Load fetches every section in parallel. Hero, categories and best sellers
// are optional: a failure is logged and the section renders empty. Featured
// collections are required and fail the whole load.
func (l *loader) Load(ctx context.Context) (domain.HomePage, error) {
	l.mu.Lock()
	if l.isLoading {
		l.mu.Unlock()
		return domain.HomePage{}, fmt.Errorf("catalog load already in progress")
	}
	l.isLoading = true
	loadCtx, cancel := context.WithCancel(ctx)
	l.cancelFunc = cancel
	l.mu.Unlock()

	defer func() {
		cancel()
		l.mu.Lock()
		l.isLoading = false
		l.cancelFunc = nil
		l.mu.Unlock()
	}()

	start := time.Now()
	var (
		page     domain.HomePage
		failedMu sync.Mutex
		failed   []string
	)
	optional := func(section string, err error) error {
		if err == nil {
			return nil
		}
		if loadCtx.Err() != nil {
			return loadCtx.Err()
		}
		log.Warnf("Catalog section %s failed, rendering it empty: %v", section, err)
		failedMu.Lock()
		failed = append(failed, section)
		failedMu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(loadCtx)
	g.Go(func() error {
		slides, err := l.src.HeroSlides(gctx, l.limits.Hero)
		page.Hero = slides
		return optional(SectionHero, err)
	})
	g.Go(func() error {
		cats, err := l.src.Categories(gctx, l.limits.Categories)
		page.Categories = cats
		return optional(SectionCategories, err)
	})
	g.Go(func() error {
		products, err := l.src.BestSellers(gctx, l.limits.BestSellers)
		page.BestSellers = products
		return optional(SectionBestSellers, err)
	})
	g.Go(func() error {
		featured, err := l.src.FeaturedCollections(gctx, l.limits.Featured)
		if err != nil {
			return errors.Wrap(err, "featured collections")
		}
		page.Featured = featured
		return nil
	})

	if err := g.Wait(); err != nil {
		l.bus.Publish(eventbus.ErrorEvent{Message: "Could not load the home page", Err: err})
		return domain.HomePage{}, err
	}

	sort.Strings(failed)
	log.Printf("Catalog loaded in %v (%d slides, %d categories, %d best sellers, %d featured)",
		time.Since(start), len(page.Hero), len(page.Categories), len(page.BestSellers), len(page.Featured))

	if l.store != nil {
		l.store.SetHomePage(page)
	}
	l.bus.Publish(eventbus.CatalogLoadedEvent{Page: page, Failed: failed})
	return page, nil
}

// Stop cancels a running load and waits for background loads to finish
func (l *loader) Stop() {
	l.mu.Lock()
	if l.cancelFunc != nil {
		l.cancelFunc()
	}
	l.mu.Unlock()

	l.wg.Wait()
}
