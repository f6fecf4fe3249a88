package logic

// Navigator moves a cursor through a horizontal carousel. The viewport shows
// perView items at a time and pages by whole views, the way the storefront's
// swiper does with its prev/next buttons.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	perView        int
	total          int
}

// NewNavigator creates a navigator showing perView items; zero shows all
func NewNavigator(perView int) *Navigator {
	return &Navigator{perView: perView}
}

// SetTotal updates the item count, keeping the cursor in range
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.SetSelectedIndex(n.selectedIndex)
}

// Total returns the item count
func (n *Navigator) Total() int {
	return n.total
}

// PerView returns how many items are visible at once
func (n *Navigator) PerView() int {
	if n.perView <= 0 || n.perView > n.total {
		return n.total
	}
	return n.perView
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the index of the first visible item
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index >= n.total {
		index = n.total - 1
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the cursor by delta items
func (n *Navigator) Move(delta int) {
	n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageNext scrolls one view forward and selects its first item
func (n *Navigator) PageNext() {
	if !n.CanPageNext() {
		n.SetSelectedIndex(n.total - 1)
		return
	}
	n.viewportOffset += n.PerView()
	n.clampOffset()
	n.selectedIndex = n.viewportOffset
}

// PagePrev scrolls one view back and selects its first item
func (n *Navigator) PagePrev() {
	n.viewportOffset -= n.PerView()
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
	n.selectedIndex = n.viewportOffset
}

// Home selects the first item
func (n *Navigator) Home() {
	n.SetSelectedIndex(0)
}

// End selects the last item
func (n *Navigator) End() {
	n.SetSelectedIndex(n.total - 1)
}

// CanPagePrev reports whether items are hidden before the viewport
func (n *Navigator) CanPagePrev() bool {
	return n.viewportOffset > 0
}

// CanPageNext reports whether items are hidden after the viewport
func (n *Navigator) CanPageNext() bool {
	return n.viewportOffset+n.PerView() < n.total
}

// Visible returns the half-open range of visible indices
func (n *Navigator) Visible() (int, int) {
	end := n.viewportOffset + n.PerView()
	if end > n.total {
		end = n.total
	}
	return n.viewportOffset, end
}

func (n *Navigator) ensureSelectedVisible() {
	per := n.PerView()
	if per == 0 {
		n.viewportOffset = 0
		return
	}
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+per {
		n.viewportOffset = n.selectedIndex - per + 1
	}
	n.clampOffset()
}

func (n *Navigator) clampOffset() {
	maxOffset := n.total - n.PerView()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
