package state

import (
	"shopgrip/internal/catalog"
	"shopgrip/internal/domain"
	"shopgrip/internal/ui/logic"
)

// Sections lists the home page sections in display order
var Sections = []string{
	catalog.SectionHero,
	catalog.SectionCategories,
	catalog.SectionBestSellers,
	catalog.SectionFeatured,
}

// AppState contains all the application state
type AppState struct {
	// Home page data
	Page           domain.HomePage
	FailedSections []string
	Loaded         bool
	Loading        bool

	// Navigation
	Focus     int                         // index into Sections
	Carousels map[string]*logic.Navigator // section -> cursor

	// Search overlay
	SelectedResult int

	// Cart panel
	Cart       *domain.Cart
	CartOpen   bool
	CartCursor int

	// Status bar
	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state. perView is how many cards a
// carousel shows at once.
func NewAppState(perView int) *AppState {
	return &AppState{
		Carousels: map[string]*logic.Navigator{
			catalog.SectionHero:        logic.NewNavigator(1),
			catalog.SectionCategories:  logic.NewNavigator(perView),
			catalog.SectionBestSellers: logic.NewNavigator(perView),
			catalog.SectionFeatured:    logic.NewNavigator(0),
		},
		Focus: 2, // best sellers
	}
}

// SetPage replaces the home page and resizes the carousels
func (s *AppState) SetPage(page domain.HomePage, failed []string) {
	s.Page = page
	s.FailedSections = failed
	s.Loaded = true
	s.Loading = false

	s.Carousels[catalog.SectionHero].SetTotal(len(page.Hero))
	s.Carousels[catalog.SectionCategories].SetTotal(len(page.Categories))
	s.Carousels[catalog.SectionBestSellers].SetTotal(len(page.BestSellers))
	s.Carousels[catalog.SectionFeatured].SetTotal(len(page.Featured))
}

// FocusedSection returns the name of the focused section
func (s *AppState) FocusedSection() string {
	return Sections[s.Focus]
}

// FocusedCarousel returns the cursor of the focused section
func (s *AppState) FocusedCarousel() *logic.Navigator {
	return s.Carousels[s.FocusedSection()]
}

// MoveFocus moves section focus by delta, clamped to the section list
func (s *AppState) MoveFocus(delta int) {
	s.Focus += delta
	if s.Focus < 0 {
		s.Focus = 0
	}
	if s.Focus >= len(Sections) {
		s.Focus = len(Sections) - 1
	}
}

// SelectedProduct returns the best seller under the cursor, if that section
// is focused
func (s *AppState) SelectedProduct() (domain.Product, bool) {
	if s.FocusedSection() != catalog.SectionBestSellers {
		return domain.Product{}, false
	}
	i := s.FocusedCarousel().GetSelectedIndex()
	if i < 0 || i >= len(s.Page.BestSellers) {
		return domain.Product{}, false
	}
	return s.Page.BestSellers[i], true
}

// SectionFailed reports whether section failed to load
func (s *AppState) SectionFailed(section string) bool {
	for _, f := range s.FailedSections {
		if f == section {
			return true
		}
	}
	return false
}

// SetStatus shows a status bar message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus clears the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// SetCart records the cart shown in the panel
func (s *AppState) SetCart(c *domain.Cart) {
	s.Cart = c
	if c == nil || s.CartCursor >= len(c.Lines) {
		s.CartCursor = 0
	}
}

// MoveCartCursor moves through the cart lines
func (s *AppState) MoveCartCursor(delta int) {
	if s.Cart == nil || len(s.Cart.Lines) == 0 {
		s.CartCursor = 0
		return
	}
	s.CartCursor += delta
	if s.CartCursor < 0 {
		s.CartCursor = 0
	}
	if s.CartCursor >= len(s.Cart.Lines) {
		s.CartCursor = len(s.Cart.Lines) - 1
	}
}
