package storefront

import (
	"shopgrip/internal/domain"
)

// Wire shapes of Storefront API responses. They are decoded here and turned
// into domain types so nothing above this package sees GraphQL nesting.

type imageNode struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

func (i *imageNode) toDomain() *domain.Image {
	if i == nil || i.URL == "" {
		return nil
	}
	return &domain.Image{URL: i.URL, AltText: i.AltText}
}

type predictiveSearchData struct {
	PredictiveSearch *struct {
		Products []struct {
			ID                             string `json:"id"`
			Handle                         string `json:"handle"`
			Title                          string `json:"title"`
			SelectedOrFirstAvailableVariant *struct {
				ID    string       `json:"id"`
				Image *imageNode   `json:"image"`
				Price domain.Money `json:"price"`
			} `json:"selectedOrFirstAvailableVariant"`
		} `json:"products"`
	} `json:"predictiveSearch"`
}

func (d predictiveSearchData) summaries() []domain.ProductSummary {
	if d.PredictiveSearch == nil {
		return []domain.ProductSummary{}
	}
	out := make([]domain.ProductSummary, 0, len(d.PredictiveSearch.Products))
	for _, p := range d.PredictiveSearch.Products {
		s := domain.ProductSummary{ID: p.ID, Handle: p.Handle, Title: p.Title}
		if v := p.SelectedOrFirstAvailableVariant; v != nil {
			s.Price = v.Price
			if v.Image != nil {
				s.ImageURL = v.Image.URL
			}
		}
		out = append(out, s)
	}
	return out
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type cartNode struct {
	ID            string `json:"id"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
	Cost          struct {
		SubtotalAmount domain.Money `json:"subtotalAmount"`
	} `json:"cost"`
	Lines struct {
		Nodes []struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
			Cost     struct {
				TotalAmount domain.Money `json:"totalAmount"`
			} `json:"cost"`
			Merchandise struct {
				ID      string `json:"id"`
				Title   string `json:"title"`
				Product struct {
					Title  string `json:"title"`
					Handle string `json:"handle"`
				} `json:"product"`
			} `json:"merchandise"`
		} `json:"nodes"`
	} `json:"lines"`
}

func (c *cartNode) toDomain() *domain.Cart {
	if c == nil || c.ID == "" {
		return nil
	}
	cart := &domain.Cart{
		ID:            c.ID,
		CheckoutURL:   c.CheckoutURL,
		TotalQuantity: c.TotalQuantity,
		Subtotal:      c.Cost.SubtotalAmount,
		Lines:         make([]domain.CartLineItem, 0, len(c.Lines.Nodes)),
	}
	for _, l := range c.Lines.Nodes {
		cart.Lines = append(cart.Lines, domain.CartLineItem{
			ID:            l.ID,
			Quantity:      l.Quantity,
			MerchandiseID: l.Merchandise.ID,
			ProductTitle:  l.Merchandise.Product.Title,
			ProductHandle: l.Merchandise.Product.Handle,
			VariantTitle:  l.Merchandise.Title,
			Total:         l.Cost.TotalAmount,
		})
	}
	return cart
}

type cartMutationPayload struct {
	Cart       *cartNode   `json:"cart"`
	UserErrors []userError `json:"userErrors"`
}

type cartCreateData struct {
	CartCreate *cartMutationPayload `json:"cartCreate"`
}

type cartLinesAddData struct {
	CartLinesAdd *cartMutationPayload `json:"cartLinesAdd"`
}

type cartData struct {
	Cart *cartNode `json:"cart"`
}

type heroSlidesData struct {
	Metaobjects struct {
		Nodes []struct {
			ID     string `json:"id"`
			Handle string `json:"handle"`
			Media  *struct {
				Reference *struct {
					Image *imageNode `json:"image"`
				} `json:"reference"`
			} `json:"media"`
			Fields []struct {
				Key   string  `json:"key"`
				Value *string `json:"value"`
			} `json:"fields"`
		} `json:"nodes"`
	} `json:"metaobjects"`
}

// slides flattens metaobject fields into key -> value maps
func (d heroSlidesData) slides() []domain.HeroSlide {
	out := make([]domain.HeroSlide, 0, len(d.Metaobjects.Nodes))
	for _, n := range d.Metaobjects.Nodes {
		s := domain.HeroSlide{
			ID:     n.ID,
			Handle: n.Handle,
			Fields: make(map[string]string, len(n.Fields)),
		}
		for _, f := range n.Fields {
			if f.Value != nil {
				s.Fields[f.Key] = *f.Value
			}
		}
		if n.Media != nil && n.Media.Reference != nil && n.Media.Reference.Image != nil {
			s.MediaURL = n.Media.Reference.Image.URL
		}
		out = append(out, s)
	}
	return out
}

type collectionNode struct {
	ID     string     `json:"id"`
	Handle string     `json:"handle"`
	Title  string     `json:"title"`
	Image  *imageNode `json:"image"`
}

type collectionsData struct {
	Collections struct {
		Nodes []collectionNode `json:"nodes"`
	} `json:"collections"`
}

func (d collectionsData) collections() []domain.Collection {
	out := make([]domain.Collection, 0, len(d.Collections.Nodes))
	for _, c := range d.Collections.Nodes {
		out = append(out, domain.Collection{
			ID:     c.ID,
			Handle: c.Handle,
			Title:  c.Title,
			Image:  c.Image.toDomain(),
		})
	}
	return out
}

type productsData struct {
	Products struct {
		Nodes []struct {
			ID            string     `json:"id"`
			Handle        string     `json:"handle"`
			Title         string     `json:"title"`
			FeaturedImage *imageNode `json:"featuredImage"`
			PriceRange    struct {
				MinVariantPrice domain.Money `json:"minVariantPrice"`
			} `json:"priceRange"`
			Variants struct {
				Nodes []struct {
					ID               string       `json:"id"`
					Title            string       `json:"title"`
					AvailableForSale bool         `json:"availableForSale"`
					Price            domain.Money `json:"price"`
					Image            *imageNode   `json:"image"`
				} `json:"nodes"`
			} `json:"variants"`
		} `json:"nodes"`
	} `json:"products"`
}

func (d productsData) products() []domain.Product {
	out := make([]domain.Product, 0, len(d.Products.Nodes))
	for _, p := range d.Products.Nodes {
		product := domain.Product{
			ID:            p.ID,
			Handle:        p.Handle,
			Title:         p.Title,
			FeaturedImage: p.FeaturedImage.toDomain(),
			MinPrice:      p.PriceRange.MinVariantPrice,
			Variants:      make([]domain.Variant, 0, len(p.Variants.Nodes)),
		}
		for _, v := range p.Variants.Nodes {
			product.Variants = append(product.Variants, domain.Variant{
				ID:               v.ID,
				Title:            v.Title,
				AvailableForSale: v.AvailableForSale,
				Price:            v.Price,
				Image:            v.Image.toDomain(),
			})
		}
		out = append(out, product)
	}
	return out
}
