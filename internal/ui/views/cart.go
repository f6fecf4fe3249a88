package views

import (
	"fmt"
	"strings"
)

// renderCartPanel renders the cart aside
func (r *Renderer) renderCartPanel(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Your cart"))
	b.WriteString("\n")

	inner := cartPanelWidth - 6
	c := state.Cart
	if c == nil || len(c.Lines) == 0 {
		b.WriteString(r.styles.Dim.Render("Your cart is empty"))
	} else {
		for i, line := range c.Lines {
			title := line.ProductTitle
			if line.VariantTitle != "" && line.VariantTitle != "Default Title" {
				title = fmt.Sprintf("%s (%s)", title, line.VariantTitle)
			}
			row := fmt.Sprintf("%dx %s", line.Quantity, truncate(title, inner-14))
			row = fmt.Sprintf("%-*s %s", inner-10, row, r.styles.Price.Render(line.Total.String()))
			if i == state.CartCursor {
				row = r.styles.CartSelected.Render(row)
			} else {
				row = r.styles.CartLine.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Subtotal  %s", r.styles.Price.Render(c.Subtotal.String())))
		if c.CheckoutURL != "" {
			b.WriteString("\n")
			b.WriteString(r.styles.Dim.Render(truncate("Checkout: "+c.CheckoutURL, inner)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render("esc close • r refresh"))

	style := r.styles.CartPanel.Width(cartPanelWidth)
	if state.Height > 0 {
		style = style.Height(state.Height - 2)
	}
	return style.Render(b.String())
}
