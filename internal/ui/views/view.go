package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopgrip/internal/catalog"
	"shopgrip/internal/domain"
	"shopgrip/internal/ui/logic"
)

// cartPanelWidth is the width of the cart aside
const cartPanelWidth = 44

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Page           domain.HomePage
	FailedSections []string
	Loaded         bool
	Loading        bool
	Sections       []string
	FocusedSection string
	Carousels      map[string]*logic.Navigator
	ShowImageURLs  bool

	SearchOpen     bool
	SearchInput    string
	SearchStatus   string
	SearchQuery    string
	Results        []domain.ProductSummary
	SelectedResult int

	CartOpen       bool
	Cart           *domain.Cart
	CartCursor     int
	CartSubmitting bool

	Spinner       string
	StatusMessage string
	StatusIsError bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cards       *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cards:       NewCardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	mainWidth := termWidth - 4 // main container padding
	if state.CartOpen {
		mainWidth -= cartPanelWidth
	}
	if mainWidth < 20 {
		mainWidth = 20
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitle(state, mainWidth))
	content.WriteString("\n")

	switch {
	case !state.Loaded && state.Loading:
		content.WriteString(r.styles.Dim.Render("Loading the home page..."))
	case !state.Loaded:
		content.WriteString(r.styles.Dim.Render("Nothing loaded yet. Press r to retry."))
	default:
		for _, section := range state.Sections {
			content.WriteString(r.renderSection(state, section, mainWidth))
			content.WriteString("\n")
		}
	}

	// Status and help are pinned to the bottom
	footer := r.renderFooter(state)
	used := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if pad := availableLines - used - lipgloss.Height(footer); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main.Width(mainWidth + 4)
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.CartOpen {
		panel := r.renderCartPanel(state)
		finalContent = lipgloss.JoinHorizontal(lipgloss.Top, finalContent, panel)
	}

	if state.SearchOpen {
		overlay := r.renderSearchOverlay(state)
		return r.popupRender.RenderPopupOverlay(finalContent, overlay, 3, termWidth, r.styles.SearchBox)
	}

	return finalContent
}

// renderTitle renders the logo with right-aligned indicators
func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("shopgrip")

	var indicators []string
	if state.Loading {
		indicators = append(indicators, fmt.Sprintf("%s Loading", state.Spinner))
	}
	if state.CartSubmitting {
		indicators = append(indicators, fmt.Sprintf("%s Adding to cart", state.Spinner))
	}
	if state.Cart != nil {
		indicators = append(indicators, fmt.Sprintf("Cart (%d)", state.Cart.TotalQuantity))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := r.styles.Dim.Render(strings.Join(indicators, " | "))
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", padding), right)
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	if state.HelpView != "" {
		lines = append(lines, r.styles.Help.Render(state.HelpView))
	}
	return strings.Join(lines, "\n")
}

// sectionTitles maps section names to their headings
var sectionTitles = map[string]string{
	catalog.SectionHero:        "Featured",
	catalog.SectionCategories:  "Shop by Category",
	catalog.SectionBestSellers: "Best Sellers",
	catalog.SectionFeatured:    "Collections",
}

// renderSection renders one home page section with its carousel
func (r *Renderer) renderSection(state ViewState, section string, width int) string {
	focused := section == state.FocusedSection
	titleStyle := r.styles.Section
	marker := "  "
	if focused {
		titleStyle = r.styles.SectionFocused
		marker = "▸ "
	}
	title := titleStyle.Render(marker + sectionTitles[section])

	nav := state.Carousels[section]
	if nav == nil || nav.Total() == 0 {
		msg := "Nothing to show"
		if containsString(state.FailedSections, section) {
			msg = "Could not load this section"
		}
		return title + "\n" + r.styles.Dim.Render("  "+msg) + "\n"
	}

	selected := -1
	if focused {
		selected = nav.GetSelectedIndex()
	}

	var body string
	switch section {
	case catalog.SectionHero:
		body = r.cards.RenderHero(state.Page.Hero[nav.GetSelectedIndex()], width-6, state.ShowImageURLs)
		body = r.withArrows(body, nav)
		body += "\n" + r.styles.Dim.Render(fmt.Sprintf("  %d / %d", nav.GetSelectedIndex()+1, nav.Total()))
	case catalog.SectionCategories:
		body = r.renderCarousel(nav, width, func(i, w int) string {
			return r.cards.RenderCollection(state.Page.Categories[i], i == selected, w, state.ShowImageURLs)
		})
	case catalog.SectionBestSellers:
		body = r.renderCarousel(nav, width, func(i, w int) string {
			return r.cards.RenderProduct(state.Page.BestSellers[i], i == selected, w, state.ShowImageURLs)
		})
	case catalog.SectionFeatured:
		body = r.renderGrid(len(state.Page.Featured), 4, width, func(i, w int) string {
			return r.cards.RenderCollection(state.Page.Featured[i], i == selected, w, state.ShowImageURLs)
		})
	}
	return title + "\n" + body
}

// renderCarousel renders the visible cards between prev/next arrows
func (r *Renderer) renderCarousel(nav *logic.Navigator, width int, card func(i, w int) string) string {
	start, end := nav.Visible()
	per := nav.PerView()
	if per == 0 {
		return ""
	}
	cardWidth := (width - 6) / per
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, card(i, cardWidth))
	}
	return r.withArrows(lipgloss.JoinHorizontal(lipgloss.Top, cards...), nav)
}

// renderGrid renders all cards in rows of cols
func (r *Renderer) renderGrid(n, cols, width int, card func(i, w int) string) string {
	cardWidth := width / cols
	var rows []string
	for start := 0; start < n; start += cols {
		end := start + cols
		if end > n {
			end = n
		}
		row := make([]string, 0, cols)
		for i := start; i < end; i++ {
			row = append(row, card(i, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) withArrows(body string, nav *logic.Navigator) string {
	prev, next := " ", " "
	if nav.CanPagePrev() || nav.GetSelectedIndex() > 0 {
		prev = "‹"
	}
	if nav.CanPageNext() || nav.GetSelectedIndex() < nav.Total()-1 {
		next = "›"
	}
	h := lipgloss.Height(body)
	arrow := func(s string) string {
		return lipgloss.PlaceVertical(h, lipgloss.Center, r.styles.Arrow.Render(s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, arrow(prev), " ", body, " ", arrow(next))
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
