package mockstore

import (
	"github.com/shopspring/decimal"

	"shopgrip/internal/domain"
)

func usd(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), CurrencyCode: "USD"}
}

func variant(id, title, price string, available bool) domain.Variant {
	return domain.Variant{
		ID:               "gid://shopify/ProductVariant/" + id,
		Title:            title,
		AvailableForSale: available,
		Price:            usd(price),
		Image:            &domain.Image{URL: "https://cdn.example.com/variants/" + id + ".jpg"},
	}
}

func product(id, handle, title string, variants ...domain.Variant) domain.Product {
	p := domain.Product{
		ID:            "gid://shopify/Product/" + id,
		Handle:        handle,
		Title:         title,
		FeaturedImage: &domain.Image{URL: "https://cdn.example.com/products/" + handle + ".jpg", AltText: title},
		Variants:      variants,
	}
	if len(variants) > 0 {
		p.MinPrice = variants[0].Price
		for _, v := range variants[1:] {
			if v.Price.Amount.LessThan(p.MinPrice.Amount) {
				p.MinPrice = v.Price
			}
		}
	}
	return p
}

// DefaultProducts is the fixture catalog, in best-selling order
func DefaultProducts() []domain.Product {
	return []domain.Product{
		product("1001", "trail-runner", "Trail Runner Shoe",
			variant("2001", "8", "89.00", true),
			variant("2002", "9", "89.00", true)),
		product("1002", "canvas-sneaker", "Canvas Sneaker",
			variant("2011", "Black", "54.50", false),
			variant("2012", "White", "54.50", true)),
		product("1003", "wool-sock-pack", "Wool Sock Pack",
			variant("2021", "Default Title", "18.00", true)),
		product("1004", "shoe-care-kit", "Shoe Care Kit",
			variant("2031", "Default Title", "24.99", true)),
		product("1005", "rain-shell", "Rain Shell Jacket",
			variant("2041", "M", "129.00", false),
			variant("2042", "L", "129.00", false)),
		product("1006", "leather-boot", "Leather Boot",
			variant("2051", "10", "159.00", true)),
		product("1007", "running-cap", "Running Cap",
			variant("2061", "Default Title", "22.00", true)),
		product("1008", "sold-out-sandal", "Sold Out Sandal"),
	}
}

// DefaultCollections is the fixture collection list, most recently updated first
func DefaultCollections() []domain.Collection {
	return []domain.Collection{
		{ID: "gid://shopify/Collection/3001", Handle: "footwear", Title: "Footwear",
			Image: &domain.Image{URL: "https://cdn.example.com/collections/footwear.jpg"}},
		{ID: "gid://shopify/Collection/3002", Handle: "accessories", Title: "Accessories",
			Image: &domain.Image{URL: "https://cdn.example.com/collections/accessories.jpg"}},
		{ID: "gid://shopify/Collection/3003", Handle: "outerwear", Title: "Outerwear"},
		{ID: "gid://shopify/Collection/3004", Handle: "new-arrivals", Title: "New Arrivals"},
		{ID: "gid://shopify/Collection/3005", Handle: "sale", Title: "Sale"},
	}
}

// DefaultSlides is the fixture hero content
func DefaultSlides() []domain.HeroSlide {
	return []domain.HeroSlide{
		{
			ID:       "gid://shopify/Metaobject/4001",
			Handle:   "spring-drop",
			MediaURL: "https://cdn.example.com/hero/spring.jpg",
			Fields: map[string]string{
				"heading":    "Spring Drop",
				"subheading": "Lightweight runners for longer days",
				"link":       "/collections/new-arrivals",
			},
		},
		{
			ID:     "gid://shopify/Metaobject/4002",
			Handle: "trail-season",
			Fields: map[string]string{
				"heading": "Trail Season",
				"link":    "/collections/footwear",
			},
		},
	}
}
