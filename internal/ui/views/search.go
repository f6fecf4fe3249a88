package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSearchOverlay renders the search input, its status line and results
func (r *Renderer) renderSearchOverlay(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Section.Render("Search: "))
	b.WriteString(state.SearchInput)

	if state.SearchStatus != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.StatusLoading.Render(state.SearchStatus))
	}

	for i, item := range state.Results {
		b.WriteString("\n")
		title := highlightMatch(truncate(item.Title, 40), state.SearchQuery, r.styles.Highlight)
		line := fmt.Sprintf("%s  %s", title, r.styles.Price.Render(item.Price.String()))
		if i == state.SelectedResult {
			line = r.styles.ResultSelected.Render("▸ " + line)
		} else {
			line = r.styles.Result.Render("  " + line)
		}
		b.WriteString(line)
		if state.ShowImageURLs && item.ImageURL != "" {
			b.WriteString("\n    ")
			b.WriteString(r.styles.Dim.Render(truncate(item.ImageURL, 50)))
		}
	}
	return b.String()
}

// highlightMatch highlights the first case-insensitive match of query in text
func highlightMatch(text, query string, highlightStyle lipgloss.Style) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return text
	}
	index := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if index == -1 {
		return text
	}
	end := index + len(query)
	return text[:index] + highlightStyle.Render(text[index:end]) + text[end:]
}
