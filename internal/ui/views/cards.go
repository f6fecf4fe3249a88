package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopgrip/internal/domain"
)

// CardRenderer renders product, collection and slide cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles: styles,
	}
}

func (c *CardRenderer) frame(selected bool, width int) lipgloss.Style {
	style := c.styles.Card
	if selected {
		style = c.styles.CardSelected
	}
	// Border and padding take four cells
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style
}

// RenderProduct renders a best seller card with its price and Buy Now button
func (c *CardRenderer) RenderProduct(p domain.Product, selected bool, width int, showImage bool) string {
	inner := width - 4
	lines := []string{
		truncate(p.Title, inner),
		c.styles.Price.Render(p.MinPrice.String()),
	}
	if showImage && p.FeaturedImage != nil {
		lines = append(lines, c.styles.Dim.Render(truncate(p.FeaturedImage.URL, inner)))
	}
	switch {
	case len(p.Variants) == 0:
		lines = append(lines, c.styles.Dim.Render("Unavailable"))
	case selected:
		lines = append(lines, c.styles.BuyNow.Render(" Buy Now "))
	default:
		lines = append(lines, c.styles.Dim.Render("[b] Buy Now"))
	}
	return c.frame(selected, width).Render(strings.Join(lines, "\n"))
}

// RenderCollection renders a category or featured collection card
func (c *CardRenderer) RenderCollection(col domain.Collection, selected bool, width int, showImage bool) string {
	inner := width - 4
	lines := []string{truncate(col.Title, inner)}
	if showImage && col.Image != nil {
		lines = append(lines, c.styles.Dim.Render(truncate(col.Image.URL, inner)))
	}
	return c.frame(selected, width).Render(strings.Join(lines, "\n"))
}

// RenderHero renders a hero slide
func (c *CardRenderer) RenderHero(s domain.HeroSlide, width int, showImage bool) string {
	var lines []string
	if h := s.Heading(); h != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(truncate(h, width-6)))
	}
	if sub := s.Subheading(); sub != "" {
		lines = append(lines, truncate(sub, width-6))
	}
	if link := s.Link(); link != "" {
		lines = append(lines, c.styles.Dim.Render("→ "+truncate(link, width-8)))
	}
	if showImage && s.MediaURL != "" {
		lines = append(lines, c.styles.Dim.Render(truncate(s.MediaURL, width-6)))
	}
	if len(lines) == 0 {
		lines = append(lines, c.styles.Dim.Render(s.Handle))
	}
	style := c.styles.Hero
	if width > 6 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}
