package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeWindows(t *testing.T, c *Context) {
	t.Helper()
	runFrame(t, c, func() {
		c.OpenWindow("A", 0, 300)
		c.CloseWindow()
		c.OpenWindow("B", 50, 250)
		c.CloseWindow()
		c.OpenWindow("C", 100, 200)
		c.CloseWindow()
	})
}

func TestClickPromotesWindow(t *testing.T) {
	c := newTestContext()
	threeWindows(t, c)
	assert.Equal(t, []string{"A", "B", "C"}, texts(drain(c)))

	a := c.FindWindow(Hash("A", 0))
	require.NotNil(t, a)
	assert.Equal(t, 1, a.ZIndex())

	// (20, 200) is only covered by A.
	press(c, 20, 200)
	threeWindows(t, c)

	assert.Equal(t, 4, a.ZIndex())
	ws := c.Windows()
	require.Len(t, ws, 3)
	assert.Same(t, a, ws[2])

	// (150, 100) is covered by all three.
	c.SetPointerPosition(150, 100)
	assert.True(t, c.OverWindow(a))
	assert.False(t, c.OverWindow(c.FindWindow(Hash("C", 0))))

	assert.Equal(t, []string{"B", "C", "A"}, texts(drain(c)))
}

func TestClickOnTopWindowKeepsZIndex(t *testing.T) {
	c := newTestContext()
	threeWindows(t, c)
	press(c, 400, 0)
	threeWindows(t, c)

	cw := c.FindWindow(Hash("C", 0))
	assert.Equal(t, 3, cw.ZIndex())
}

func TestClickOnEmptySpaceChangesNothing(t *testing.T) {
	c := newTestContext()
	threeWindows(t, c)
	press(c, 1000, 1000)
	threeWindows(t, c)

	for i, w := range c.Windows() {
		assert.Equal(t, i+1, w.ZIndex())
	}
}

func TestWindowIsCreatedOnce(t *testing.T) {
	c := newTestContext()
	for range 3 {
		runFrame(t, c, func() {
			c.OpenWindow("W", 10, 400)
			c.CloseWindow()
		})
	}
	assert.Len(t, c.Windows(), 1)
	w := c.Windows()[0]
	assert.Equal(t, Rect{X: 10, Y: 100, W: 360, H: 300}, w.Rect())
	assert.Equal(t, 1, w.ZIndex())
}

func assertTiled(t *testing.T, w *Window, st Style) {
	t.Helper()
	r := w.Rect()
	assert.Equal(t, r.Top(), w.TitleRect().Top())
	assert.Equal(t, w.TitleRect().Y, w.BodyRect().Top())
	assert.Equal(t, r.Y+st.Border, w.BodyRect().Y)
	assert.Equal(t, r.W-2*st.Border, w.BodyRect().W)
	assert.Equal(t, r.W-2*st.Border, w.TitleRect().W)
}

func windowFrame(t *testing.T, c *Context) {
	t.Helper()
	runFrame(t, c, func() {
		c.OpenWindow("W", 0, 300)
		c.CloseWindow()
	})
}

func TestResizeKeepsTopEdge(t *testing.T) {
	c := newTestContext()
	st := c.Style()

	// Resize notch sits at {346, 2, 12, 12}.
	c.SetPointerPosition(350, 5)
	windowFrame(t, c)
	assert.Equal(t, Hash("#resize", Hash("W", 0)), c.Hot())
	press(c, 350, 5)
	windowFrame(t, c)

	c.SetPointerPosition(400, -45)
	windowFrame(t, c)
	w := c.Windows()[0]
	assert.Equal(t, Rect{X: 0, Y: -50, W: 410, H: 350}, w.Rect())
	assertTiled(t, w, st)

	c.SetPointerPosition(-1000, 1000)
	windowFrame(t, c)
	assert.Equal(t, Rect{X: 0, Y: 220, W: st.WindowMinWidth, H: st.WindowMinHeight}, w.Rect())
	assertTiled(t, w, st)

	release(c, -1000, 1000)
	windowFrame(t, c)
	assert.Zero(t, c.Active())
}

func TestTitleDragMovesWindow(t *testing.T) {
	c := newTestContext()
	c.SetPointerPosition(100, 290)
	windowFrame(t, c)
	assert.Equal(t, Hash("W", 0), c.Hot())

	press(c, 100, 290)
	windowFrame(t, c)
	c.SetPointerPosition(150, 250)
	windowFrame(t, c)

	w := c.Windows()[0]
	assert.Equal(t, Rect{X: 50, Y: -40, W: 360, H: 300}, w.Rect())
	assertTiled(t, w, c.Style())
}

func TestWindowTableFull(t *testing.T) {
	c := newTestContext(WithCapacity(Capacity{Windows: 1, Commands: 64, Refs: 8, Text: 64}))
	c.Begin()
	c.OpenWindow("A", 0, 300)
	c.CloseWindow()
	c.OpenWindow("B", 0, 300)
	c.CloseWindow()
	err := c.End()

	assert.ErrorIs(t, err, ErrWindowTableFull)
	assert.True(t, IsCapacityError(err))
	assert.Len(t, c.Windows(), 1)
}

func TestNestedWindowFailsFrame(t *testing.T) {
	c := newTestContext()
	c.Begin()
	c.OpenWindow("A", 0, 300)
	c.OpenWindow("B", 0, 300)
	c.CloseWindow()
	err := c.End()

	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "OpenWindow", uerr.Op)
	assert.ErrorIs(t, err, ErrNestedBlock)
	assert.False(t, IsCapacityError(err))
	assert.Empty(t, drain(c))
}
