package mockstore

import (
	"github.com/shopspring/decimal"

	"shopgrip/internal/domain"
)

func moneyJSON(m domain.Money) map[string]any {
	return map[string]any{
		"amount":       m.Amount.String(),
		"currencyCode": m.CurrencyCode,
	}
}

func imageJSON(img *domain.Image) any {
	if img == nil {
		return nil
	}
	return map[string]any{"url": img.URL, "altText": img.AltText}
}

func cartJSON(c *domain.Cart) map[string]any {
	lines := []any{}
	for _, l := range c.Lines {
		lines = append(lines, map[string]any{
			"id":       l.ID,
			"quantity": l.Quantity,
			"cost":     map[string]any{"totalAmount": moneyJSON(l.Total)},
			"merchandise": map[string]any{
				"id":    l.MerchandiseID,
				"title": l.VariantTitle,
				"product": map[string]any{
					"title":  l.ProductTitle,
					"handle": l.ProductHandle,
				},
			},
		})
	}
	return map[string]any{
		"id":            c.ID,
		"checkoutUrl":   c.CheckoutURL,
		"totalQuantity": c.TotalQuantity,
		"cost":          map[string]any{"subtotalAmount": moneyJSON(c.Subtotal)},
		"lines":         map[string]any{"nodes": lines},
	}
}

func userError(field []string, message string) map[string]any {
	return map[string]any{"field": field, "message": message}
}

func reverseCollections(list []domain.Collection) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

// intArg accepts both literal ints and JSON numbers from variables
func intArg(args map[string]any, name string, fallback int) int {
	switch v := args[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

func linesArg(args map[string]any, name string) []lineInput {
	raw, _ := args[name].([]any)
	lines := make([]lineInput, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		lines = append(lines, lineInput{
			merchandiseID: stringArg(m, "merchandiseId"),
			quantity:      intArg(m, "quantity", 1),
		})
	}
	return lines
}
