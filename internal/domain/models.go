package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount in a given currency
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// String formats the amount with two decimals, prefixed by the currency
// symbol when one is known and suffixed by the code otherwise
func (m Money) String() string {
	amount := m.Amount.StringFixed(2)
	if sym, ok := currencySymbols[m.CurrencyCode]; ok {
		return sym + amount
	}
	if m.CurrencyCode == "" {
		return amount
	}
	return fmt.Sprintf("%s %s", amount, m.CurrencyCode)
}

// IsZero reports whether no amount is set
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Image is a hosted image
type Image struct {
	URL     string
	AltText string
}

// Variant is a purchasable variant of a product
type Variant struct {
	ID               string
	Title            string
	AvailableForSale bool
	Price            Money
	Image            *Image
}

// Product represents a catalog product
type Product struct {
	ID            string
	Handle        string
	Title         string
	FeaturedImage *Image
	MinPrice      Money
	Variants      []Variant
}

// FirstAvailableVariant returns the first variant that is available for sale,
// falling back to the first variant when none is
func (p Product) FirstAvailableVariant() (Variant, bool) {
	for _, v := range p.Variants {
		if v.AvailableForSale {
			return v, true
		}
	}
	if len(p.Variants) > 0 {
		return p.Variants[0], true
	}
	return Variant{}, false
}

// Summary returns the displayable search summary of a product
func (p Product) Summary() ProductSummary {
	s := ProductSummary{
		ID:     p.ID,
		Handle: p.Handle,
		Title:  p.Title,
		Price:  p.MinPrice,
	}
	if v, ok := p.FirstAvailableVariant(); ok {
		s.Price = v.Price
		if v.Image != nil {
			s.ImageURL = v.Image.URL
		}
	}
	if s.ImageURL == "" && p.FeaturedImage != nil {
		s.ImageURL = p.FeaturedImage.URL
	}
	return s
}

// ProductSummary is what predictive search returns for one product
type ProductSummary struct {
	ID       string
	Handle   string
	Title    string
	Price    Money
	ImageURL string
}

// Collection is a named group of products
type Collection struct {
	ID     string
	Handle string
	Title  string
	Image  *Image
}

// HeroSlide is one slide of the home page hero, built from a metaobject
type HeroSlide struct {
	ID       string
	Handle   string
	MediaURL string
	Fields   map[string]string // metaobject field key -> value
}

// Heading returns the slide heading
func (s HeroSlide) Heading() string { return s.Fields["heading"] }

// Subheading returns the slide subheading
func (s HeroSlide) Subheading() string { return s.Fields["subheading"] }

// Link returns the slide call-to-action target
func (s HeroSlide) Link() string { return s.Fields["link"] }

// Cart is the platform-owned cart as last returned by the API
type Cart struct {
	ID            string
	CheckoutURL   string
	TotalQuantity int
	Subtotal      Money
	Lines         []CartLineItem
}

// CartLineItem is a line of a cart
type CartLineItem struct {
	ID            string
	Quantity      int
	MerchandiseID string
	ProductTitle  string
	ProductHandle string
	VariantTitle  string
	Total         Money
}

// HomePage holds the sections rendered on the home screen
type HomePage struct {
	Hero        []HeroSlide
	Categories  []Collection
	BestSellers []Product
	Featured    []Collection
}
