package storefront

import (
	"context"

	"github.com/pkg/errors"

	"shopgrip/internal/domain"
)

// HeroMetaobjectType is the metaobject type backing home page hero slides
const HeroMetaobjectType = "hero_swiper_content"

// PredictiveSearch returns product suggestions for a partial query
func (c *Client) PredictiveSearch(ctx context.Context, term string, limit int) ([]domain.ProductSummary, error) {
	var data predictiveSearchData
	err := c.do(ctx, OpPredictiveSearch, map[string]any{
		"term":  term,
		"limit": limit,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.summaries(), nil
}

// CartCreate creates a cart holding the given lines
func (c *Client) CartCreate(ctx context.Context, lines []LineInput) (*domain.Cart, error) {
	var data cartCreateData
	err := c.do(ctx, OpCartCreate, map[string]any{
		"input": map[string]any{"lines": lines},
	}, &data)
	if err != nil {
		return nil, err
	}
	return mutationCart(OpCartCreate, data.CartCreate)
}

// CartLinesAdd adds lines to an existing cart
func (c *Client) CartLinesAdd(ctx context.Context, cartID string, lines []LineInput) (*domain.Cart, error) {
	var data cartLinesAddData
	err := c.do(ctx, OpCartLinesAdd, map[string]any{
		"cartId": cartID,
		"lines":  lines,
	}, &data)
	if err != nil {
		return nil, err
	}
	return mutationCart(OpCartLinesAdd, data.CartLinesAdd)
}

// Cart fetches a cart by ID
func (c *Client) Cart(ctx context.Context, cartID string) (*domain.Cart, error) {
	var data cartData
	if err := c.do(ctx, OpCart, map[string]any{"cartId": cartID}, &data); err != nil {
		return nil, err
	}
	cart := data.Cart.toDomain()
	if cart == nil {
		return nil, errors.Wrapf(ErrMissingCart, "cart %s", cartID)
	}
	return cart, nil
}

// HeroSlides returns the hero slider content
func (c *Client) HeroSlides(ctx context.Context, first int) ([]domain.HeroSlide, error) {
	var data heroSlidesData
	err := c.do(ctx, OpHeroSlides, map[string]any{
		"type":  HeroMetaobjectType,
		"first": first,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.slides(), nil
}

// Categories returns collections sorted by title
func (c *Client) Categories(ctx context.Context, first int) ([]domain.Collection, error) {
	var data collectionsData
	if err := c.do(ctx, OpCategories, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}
	return data.collections(), nil
}

// BestSellers returns products sorted by best selling
func (c *Client) BestSellers(ctx context.Context, first int) ([]domain.Product, error) {
	var data productsData
	if err := c.do(ctx, OpBestSellers, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}
	return data.products(), nil
}

// FeaturedCollections returns the most recently updated collections
func (c *Client) FeaturedCollections(ctx context.Context, first int) ([]domain.Collection, error) {
	var data collectionsData
	if err := c.do(ctx, OpFeaturedCollections, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}
	return data.collections(), nil
}

func mutationCart(op string, payload *cartMutationPayload) (*domain.Cart, error) {
	if payload == nil {
		return nil, errors.Wrap(ErrMissingCart, op)
	}
	if len(payload.UserErrors) > 0 {
		return nil, errors.Wrap(&userErrorsError{errs: payload.UserErrors}, op)
	}
	cart := payload.Cart.toDomain()
	if cart == nil {
		return nil, errors.Wrap(ErrMissingCart, op)
	}
	return cart, nil
}
