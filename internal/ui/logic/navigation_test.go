package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorKeepsCursorVisible(t *testing.T) {
	n := NewNavigator(4)
	n.SetTotal(8)

	for i := 0; i < 5; i++ {
		n.Move(1)
	}
	assert.Equal(t, 5, n.GetSelectedIndex())
	start, end := n.Visible()
	assert.Equal(t, 2, start)
	assert.Equal(t, 6, end)

	n.Move(-5)
	assert.Equal(t, 0, n.GetSelectedIndex())
	assert.Equal(t, 0, n.GetViewportOffset())

	n.Move(-1)
	assert.Equal(t, 0, n.GetSelectedIndex())
}

func TestNavigatorPagesByView(t *testing.T) {
	n := NewNavigator(4)
	n.SetTotal(10)

	assert.False(t, n.CanPagePrev())
	assert.True(t, n.CanPageNext())

	n.PageNext()
	assert.Equal(t, 4, n.GetSelectedIndex())
	assert.Equal(t, 4, n.GetViewportOffset())

	n.PageNext()
	// The last page is clamped so it stays full
	assert.Equal(t, 6, n.GetViewportOffset())
	assert.False(t, n.CanPageNext())

	n.PageNext()
	assert.Equal(t, 9, n.GetSelectedIndex())

	n.PagePrev()
	assert.Equal(t, 2, n.GetViewportOffset())
	n.PagePrev()
	n.PagePrev()
	assert.Equal(t, 0, n.GetViewportOffset())
	assert.Equal(t, 0, n.GetSelectedIndex())
}

func TestNavigatorShrinkingTotalClampsCursor(t *testing.T) {
	n := NewNavigator(4)
	n.SetTotal(8)
	n.End()
	assert.Equal(t, 7, n.GetSelectedIndex())

	n.SetTotal(3)
	assert.Equal(t, 2, n.GetSelectedIndex())
	assert.Equal(t, 0, n.GetViewportOffset())
	assert.Equal(t, 3, n.PerView())

	n.SetTotal(0)
	assert.Equal(t, 0, n.GetSelectedIndex())
	start, end := n.Visible()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestNavigatorZeroPerViewShowsAll(t *testing.T) {
	n := NewNavigator(0)
	n.SetTotal(5)
	n.End()
	start, end := n.Visible()
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
	assert.False(t, n.CanPageNext())
}
