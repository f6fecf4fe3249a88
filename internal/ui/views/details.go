package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopgrip/internal/domain"
)

var (
	detailTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	detailKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

func detailLine(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", detailKey.Render(fmt.Sprintf("%-10s", key)), value)
}

// ProductDetails renders a product page for the pager
func ProductDetails(p domain.Product) string {
	var b strings.Builder
	b.WriteString(detailTitle.Render(p.Title))
	b.WriteString("\n\n")
	detailLine(&b, "Handle", "/products/"+p.Handle)
	detailLine(&b, "From", p.MinPrice.String())
	if p.FeaturedImage != nil {
		detailLine(&b, "Image", p.FeaturedImage.URL)
	}

	b.WriteString("\n")
	if len(p.Variants) == 0 {
		b.WriteString("No variants available\n")
		return b.String()
	}
	b.WriteString(detailTitle.Render("Variants"))
	b.WriteString("\n")
	for _, v := range p.Variants {
		availability := "available"
		if !v.AvailableForSale {
			availability = "sold out"
		}
		fmt.Fprintf(&b, "  %-24s %10s  %s\n", v.Title, v.Price.String(), availability)
	}
	return b.String()
}

// SummaryDetails renders a search result for which no full product is known
func SummaryDetails(s domain.ProductSummary) string {
	var b strings.Builder
	b.WriteString(detailTitle.Render(s.Title))
	b.WriteString("\n\n")
	detailLine(&b, "Handle", "/products/"+s.Handle)
	detailLine(&b, "Price", s.Price.String())
	detailLine(&b, "Image", s.ImageURL)
	return b.String()
}

// CollectionDetails renders a collection for the pager
func CollectionDetails(c domain.Collection) string {
	var b strings.Builder
	b.WriteString(detailTitle.Render(c.Title))
	b.WriteString("\n\n")
	detailLine(&b, "Handle", "/collections/"+c.Handle)
	if c.Image != nil {
		detailLine(&b, "Image", c.Image.URL)
		detailLine(&b, "Alt", c.Image.AltText)
	}
	return b.String()
}

// SlideDetails renders a hero slide with all of its fields
func SlideDetails(s domain.HeroSlide) string {
	var b strings.Builder
	title := s.Heading()
	if title == "" {
		title = s.Handle
	}
	b.WriteString(detailTitle.Render(title))
	b.WriteString("\n\n")
	detailLine(&b, "Media", s.MediaURL)

	keys := make([]string, 0, len(s.Fields))
	for k := range s.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		detailLine(&b, k, s.Fields[k])
	}
	return b.String()
}
