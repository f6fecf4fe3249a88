package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopgrip/internal/mockstore"
)

func newTestClient(t *testing.T, store *mockstore.Store, mutate func(*Options)) *Client {
	t.Helper()
	srv := httptest.NewServer(store.Handler())
	t.Cleanup(srv.Close)

	opts := Options{
		Endpoint: srv.URL + "/api/2025-01/graphql.json",
		Country:  "US",
		Language: "EN",
	}
	if mutate != nil {
		mutate(&opts)
	}
	c, err := NewClient(opts)
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient(Options{})
	assert.Error(t, err)
}

func TestEveryOperationHasADocument(t *testing.T) {
	for _, op := range []string{
		OpPredictiveSearch, OpCartCreate, OpCartLinesAdd, OpCart,
		OpHeroSlides, OpCategories, OpBestSellers, OpFeaturedCollections,
	} {
		doc, ok := Document(op)
		assert.True(t, ok, op)
		assert.NotEmpty(t, doc, op)
	}
}

func TestPredictiveSearch(t *testing.T) {
	c := newTestClient(t, mockstore.New(), nil)

	results, err := c.PredictiveSearch(context.Background(), "shoe", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Trail Runner Shoe", results[0].Title)
	assert.Equal(t, "$89.00", results[0].Price.String())
	assert.NotEmpty(t, results[0].ImageURL)
	assert.Equal(t, "Shoe Care Kit", results[1].Title)

	none, err := c.PredictiveSearch(context.Background(), "zzz", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPredictiveSearchHonoursLimit(t *testing.T) {
	c := newTestClient(t, mockstore.New(), nil)

	results, err := c.PredictiveSearch(context.Background(), "e", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestAccessTokenIsSent(t *testing.T) {
	store := mockstore.New(mockstore.WithToken("public-token"))

	anonymous := newTestClient(t, store, nil)
	_, err := anonymous.Categories(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus))

	authed := newTestClient(t, store, func(o *Options) { o.AccessToken = "public-token" })
	cats, err := authed.Categories(context.Background(), 5)
	require.NoError(t, err)
	assert.NotEmpty(t, cats)
}

func TestCartLifecycle(t *testing.T) {
	c := newTestClient(t, mockstore.New(), nil)
	ctx := context.Background()
	line := LineInput{MerchandiseID: "gid://shopify/ProductVariant/2001", Quantity: 1}

	cart, err := c.CartCreate(ctx, []LineInput{line})
	require.NoError(t, err)
	require.NotEmpty(t, cart.ID)
	assert.Equal(t, 1, cart.TotalQuantity)
	assert.NotEmpty(t, cart.CheckoutURL)

	cart, err = c.CartLinesAdd(ctx, cart.ID, []LineInput{line})
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalQuantity)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Trail Runner Shoe", cart.Lines[0].ProductTitle)
	assert.Equal(t, "$178.00", cart.Lines[0].Total.String())
	assert.Equal(t, "$178.00", cart.Subtotal.String())

	fetched, err := c.Cart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart, fetched)
}

func TestCartUserErrors(t *testing.T) {
	c := newTestClient(t, mockstore.New(), nil)
	ctx := context.Background()

	_, err := c.CartCreate(ctx, []LineInput{{MerchandiseID: "gid://shopify/ProductVariant/0", Quantity: 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserErrors))
	assert.Contains(t, err.Error(), "does not exist")

	_, err = c.CartLinesAdd(ctx, "gid://shopify/Cart/missing", []LineInput{{MerchandiseID: "gid://shopify/ProductVariant/2001", Quantity: 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserErrors))

	_, err = c.Cart(ctx, "gid://shopify/Cart/missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingCart))
}

func TestHomePageOperations(t *testing.T) {
	c := newTestClient(t, mockstore.New(), nil)
	ctx := context.Background()

	slides, err := c.HeroSlides(ctx, 10)
	require.NoError(t, err)
	require.Len(t, slides, 2)
	assert.Equal(t, "Spring Drop", slides[0].Heading())
	assert.Equal(t, "/collections/new-arrivals", slides[0].Link())
	assert.NotEmpty(t, slides[0].MediaURL)
	assert.Empty(t, slides[1].MediaURL)

	cats, err := c.Categories(ctx, 10)
	require.NoError(t, err)
	titles := make([]string, 0, len(cats))
	for _, col := range cats {
		titles = append(titles, col.Title)
	}
	assert.Equal(t, []string{"Accessories", "Footwear", "New Arrivals", "Outerwear", "Sale"}, titles)

	featured, err := c.FeaturedCollections(ctx, 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "Footwear", featured[0].Title)

	best, err := c.BestSellers(ctx, 20)
	require.NoError(t, err)
	require.Len(t, best, 8)
	assert.Equal(t, "trail-runner", best[0].Handle)
	assert.Equal(t, "$54.50", best[1].MinPrice.String())
	assert.Empty(t, best[7].Variants)
}

func TestBreakerOpensOnServerErrors(t *testing.T) {
	store := mockstore.New(mockstore.WithFailure("predictiveSearch", http.StatusInternalServerError))
	c := newTestClient(t, store, func(o *Options) { o.BreakerFailures = 2 })
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.PredictiveSearch(ctx, "shoe", 5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStatus))
	}

	_, err := c.PredictiveSearch(ctx, "shoe", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, 2, store.Requests("predictiveSearch"))
}

func TestClientErrorsDoNotTripBreaker(t *testing.T) {
	store := mockstore.New(mockstore.WithFailure("collections", http.StatusBadRequest))
	c := newTestClient(t, store, func(o *Options) { o.BreakerFailures = 1 })

	for i := 0; i < 3; i++ {
		_, err := c.Categories(context.Background(), 5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStatus))
	}
	assert.Equal(t, 3, store.Requests("collections"))
}
