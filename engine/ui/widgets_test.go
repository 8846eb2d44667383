package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberSteps(t *testing.T) {
	c := newTestContext()
	v := float32(1.5)
	frame := func() bool {
		var changed bool
		runFrame(t, c, func() {
			c.OpenWindow("W", 0, 300)
			changed = c.Number("n", 0.25, &v)
			c.CloseWindow()
		})
		return changed
	}

	// [-] {7,258,17,17}, field 70px wide, [+] {94,258,17,17}.
	c.SetPointerPosition(100, 265)
	assert.False(t, frame())
	press(c, 100, 265)
	assert.True(t, frame())
	assert.Equal(t, float32(1.75), v)
	assert.Contains(t, texts(drain(c)), "1.75")

	release(c, 100, 265)
	assert.False(t, frame())

	c.SetPointerPosition(10, 265)
	frame()
	press(c, 10, 265)
	assert.True(t, frame())
	assert.Equal(t, float32(1.5), v)
}

func TestTextArenaOverflow(t *testing.T) {
	c := newTestContext(WithCapacity(Capacity{Windows: 4, Commands: 256, Refs: 8, Text: 4}))
	a, b := float32(0), float32(0)
	c.Begin()
	c.OpenWindow("W", 0, 300)
	c.Number("a", 1, &a)
	c.Number("b", 1, &b)
	c.CloseWindow()
	err := c.End()

	assert.ErrorIs(t, err, ErrTextArenaFull)
	assert.True(t, IsCapacityError(err))
	assert.Empty(t, drain(c))
}

func TestSliderClampsReversedBounds(t *testing.T) {
	c := newTestContext()
	for _, tc := range []struct {
		in, want float32
	}{
		{in: 20, want: 10},
		{in: -5, want: 0},
		{in: 4, want: 4},
	} {
		v := tc.in
		runFrame(t, c, func() {
			c.OpenWindow("W", 0, 300)
			c.Slider("s", 10, 0, &v)
			c.CloseWindow()
		})
		assert.Equal(t, tc.want, v)
	}
}

func TestSliderFollowsDrag(t *testing.T) {
	c := newTestContext()
	v := float32(50)
	frame := func() {
		runFrame(t, c, func() {
			c.OpenWindow("W", 0, 300)
			c.Slider("s", 0, 100, &v)
			c.CloseWindow()
		})
	}

	// Track is {7, 258, 105, 17}.
	c.SetPointerPosition(50, 265)
	frame()
	press(c, 50, 265)
	frame()

	c.SetPointerPosition(0, 265)
	frame()
	assert.Equal(t, float32(0), v)

	c.SetPointerPosition(500, 265)
	frame()
	assert.Equal(t, float32(100), v)
}

func TestCheckBoxTogglesOnRelease(t *testing.T) {
	c := newTestContext()
	on := false
	frame := func() bool {
		var changed bool
		runFrame(t, c, func() {
			c.OpenWindow("W", 0, 300)
			changed = c.CheckBox("check", &on)
			c.CloseWindow()
		})
		return changed
	}

	c.SetPointerPosition(10, 265)
	frame()
	press(c, 10, 265)
	assert.False(t, frame())
	assert.False(t, on)

	release(c, 10, 265)
	assert.True(t, frame())
	assert.True(t, on)
}

var movies = []string{"Alien", "Brazil", "Casablanca"}

func dropdownFrame(t *testing.T, c *Context, sel *int) bool {
	t.Helper()
	var changed bool
	runFrame(t, c, func() {
		c.OpenWindow("W", 0, 300)
		changed = c.Dropdown("Movies", movies, sel)
		c.CloseWindow()
	})
	return changed
}

// openDropdown leaves the popup open with the pointer released over the box
// at {7, 258, 200, 17}. The list is {7, 207, 200, 51}.
func openDropdown(t *testing.T, c *Context, sel *int) {
	t.Helper()
	c.SetPointerPosition(50, 265)
	dropdownFrame(t, c, sel)
	press(c, 50, 265)
	dropdownFrame(t, c, sel)
	release(c, 50, 265)
	dropdownFrame(t, c, sel)
}

func TestDropdownPopupDrawsAboveWindow(t *testing.T) {
	c := newTestContext()
	sel := 0
	openDropdown(t, c, &sel)

	owner, ok := c.PopupID()
	require.True(t, ok)
	assert.Equal(t, Hash("Movies", Hash("W", 0)), owner)

	cmds := drain(c)
	require.Greater(t, len(cmds), 9)
	popup := cmds[len(cmds)-9:]
	assert.Equal(t, []Kind{
		CommandRect, CommandPushClip,
		CommandRect, CommandText,
		CommandRect, CommandText,
		CommandRect, CommandText,
		CommandPopClip,
	}, kinds(popup))
	assert.Equal(t, movies, texts(popup))
	assert.Equal(t, Rect{X: 7, Y: 207, W: 200, H: 51}, popup[0].Rect)
	assert.Equal(t, CommandPopClip, cmds[len(cmds)-10].Kind, "window block ends before the popup")
}

func TestDropdownSelectsRow(t *testing.T) {
	c := newTestContext()
	sel := 0
	openDropdown(t, c, &sel)

	// Row 1 is {7, 224, 200, 17}.
	c.SetPointerPosition(50, 230)
	assert.False(t, dropdownFrame(t, c, &sel))
	assert.Equal(t, HashIndex(1, Hash("Movies", Hash("W", 0))), c.Hot())

	press(c, 50, 230)
	assert.True(t, dropdownFrame(t, c, &sel))
	assert.Equal(t, 1, sel)
	_, ok := c.PopupID()
	assert.False(t, ok)

	release(c, 50, 230)
	dropdownFrame(t, c, &sel)
	assert.Zero(t, c.Active())
}

func TestDropdownClosesOnOutsidePress(t *testing.T) {
	c := newTestContext()
	sel := 2
	openDropdown(t, c, &sel)

	press(c, 300, 100)
	assert.False(t, dropdownFrame(t, c, &sel))
	_, ok := c.PopupID()
	assert.False(t, ok)
	assert.Equal(t, 2, sel)
	assert.NotContains(t, texts(drain(c)), "Alien")
}

func TestDropdownOwnerPressToggles(t *testing.T) {
	c := newTestContext()
	sel := 0
	openDropdown(t, c, &sel)

	press(c, 50, 265)
	dropdownFrame(t, c, &sel)
	_, ok := c.PopupID()
	assert.False(t, ok)
}

func TestPopupShadowsWidgetsBelow(t *testing.T) {
	c := newTestContext()
	sel := 0
	openDropdown(t, c, &sel)

	// A button laid out after the dropdown sits under the open list.
	c.SetPointerPosition(40, 225)
	runFrame(t, c, func() {
		c.OpenWindow("W", 0, 300)
		c.Dropdown("Movies", movies, &sel)
		c.Button("under")
		c.CloseWindow()
	})
	assert.Equal(t, HashIndex(1, Hash("Movies", Hash("W", 0))), c.Hot())
}

func TestPopupClosesWhenOwnerIsNotDrawn(t *testing.T) {
	c := newTestContext()
	sel := 0
	openDropdown(t, c, &sel)

	// The dropdown is gone; "OK" at {7, 245, 80, 30} lies under the old list.
	okFrame := func() Interaction {
		var res Interaction
		runFrame(t, c, func() {
			c.OpenWindow("W", 0, 300)
			res = c.Button("OK")
			c.CloseWindow()
		})
		return res
	}
	c.SetPointerPosition(40, 250)
	okFrame()
	_, ok := c.PopupID()
	assert.False(t, ok)

	okFrame()
	assert.Equal(t, Hash("OK", Hash("W", 0)), c.Hot())

	press(c, 40, 250)
	assert.Equal(t, InteractionPress, okFrame())
	assert.Equal(t, Hash("OK", Hash("W", 0)), c.Active())
}

var longList = []string{"i0", "i1", "i2", "i3", "i4", "i5", "i6", "i7", "i8", "i9"}

// longListFrame returns the first visible row, or "" while the list is
// closed. With six 17px rows the list
// is {7, 156, 200, 102}, its scrollbar {197, 156, 10, 102}, and 68px of
// rows overflow.
func longListFrame(t *testing.T, c *Context, sel *int) string {
	t.Helper()
	runFrame(t, c, func() {
		c.OpenWindow("W", 0, 300)
		c.Dropdown("Long", longList, sel)
		c.CloseWindow()
	})
	txt := texts(drain(c))
	// Title and current item come first; the popup replays last.
	if len(txt) < 3 {
		return ""
	}
	return txt[2]
}

func openLongList(t *testing.T, c *Context, sel *int) {
	t.Helper()
	c.SetPointerPosition(50, 265)
	longListFrame(t, c, sel)
	press(c, 50, 265)
	longListFrame(t, c, sel)
	release(c, 50, 265)
	assert.Equal(t, "i0", longListFrame(t, c, sel))
}

func TestDropdownWheelScrollsRows(t *testing.T) {
	c := newTestContext()
	sel := 0
	openLongList(t, c, &sel)

	c.SetPointerPosition(50, 200)
	c.AddScroll(1)
	assert.Equal(t, "i1", longListFrame(t, c, &sel))

	c.AddScroll(100)
	assert.Equal(t, "i4", longListFrame(t, c, &sel), "clamped at 68px of overflow")

	c.AddScroll(-100)
	assert.Equal(t, "i0", longListFrame(t, c, &sel))
}

func TestDropdownScrollbarDrag(t *testing.T) {
	c := newTestContext()
	sel := 0
	openLongList(t, c, &sel)
	barID := Hash("#scrollbar", Hash("Long", Hash("W", 0)))

	c.SetPointerPosition(202, 240)
	longListFrame(t, c, &sel)
	assert.Equal(t, barID, c.Hot())

	press(c, 202, 240)
	longListFrame(t, c, &sel)
	require.Equal(t, barID, c.Active())

	// 40px down a 102px bar over 170px of rows scrolls 66px.
	c.SetPointerPosition(202, 200)
	assert.Equal(t, "i3", longListFrame(t, c, &sel))

	c.SetPointerPosition(202, -500)
	assert.Equal(t, "i4", longListFrame(t, c, &sel))
	_, ok := c.PopupID()
	assert.True(t, ok)
	assert.Equal(t, 0, sel)
}
