package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(minQueryLength int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	entry := func(k, desc string) {
		help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k)), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("shopgrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Browsing"))
	help.WriteString("\n")
	entry("↑/↓, j/k", "Move between sections")
	entry("←/→, h/l", "Move within a carousel")
	entry("[ / ]", "Previous/next page of a carousel")
	entry("gg/G", "First/last item")
	entry("Enter", "Show details")
	entry("r", "Reload the home page")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	entry("/", "Open predictive search")
	entry("↑/↓", "Move through results")
	entry("Enter", "Open the selected result")
	entry("Esc", "Close search")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render(
		fmt.Sprintf("  Lookups start once you pause typing and the query has %d or more characters", minQueryLength)))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Cart"))
	help.WriteString("\n")
	entry("b", "Buy Now: add one of the selected best seller")
	entry("c", "Toggle the cart panel")
	entry("Esc", "Close the cart panel")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	entry("?", "Show this help")
	entry("q", "Quit")

	return help.String()
}

// PagerOps shows long content full screen in ov
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// Show hands the terminal to ov until the user quits it
func (p *PagerOps) Show(content string) error {
	if p == nil || p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit to avoid messing with our screen
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
