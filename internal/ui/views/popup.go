package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup over the main content, top aligned at
// row y and horizontally centered. The main content is greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, y, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturate(mainContent), "\n")
	modal := strings.Split(styledPopup, "\n")
	for len(base) < y+len(modal) {
		base = append(base, "")
	}

	pad := strings.Repeat(" ", x)
	for i, line := range modal {
		base[y+i] = pad + line
	}
	return strings.Join(base, "\n")
}

// desaturate strips ANSI styles and recolors text dim gray
func desaturate(s string) string {
	lines := strings.Split(s, "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = grey.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to width cells, adding an ellipsis when it was cut
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
