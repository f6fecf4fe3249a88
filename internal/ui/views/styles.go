package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
	StatusSuccess  lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Section        lipgloss.Style
	SectionFocused lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	Price          lipgloss.Style
	BuyNow         lipgloss.Style
	Arrow          lipgloss.Style
	Hero           lipgloss.Style
	SearchBox      lipgloss.Style
	Result         lipgloss.Style
	ResultSelected lipgloss.Style
	Highlight      lipgloss.Style
	CartPanel      lipgloss.Style
	CartLine       lipgloss.Style
	CartSelected   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		SectionFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		Price:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		BuyNow: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
		Arrow:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Hero: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 2),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1).
			Width(60),
		Result:         lipgloss.NewStyle(),
		ResultSelected: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		CartPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		CartLine:     lipgloss.NewStyle(),
		CartSelected: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}
