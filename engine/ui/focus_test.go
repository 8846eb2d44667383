package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Window "W" at (0, 300) puts its first button at {7, 245, 80, 30}.
func buttonFrame(t *testing.T, c *Context) Interaction {
	t.Helper()
	var res Interaction
	runFrame(t, c, func() {
		c.OpenWindow("W", 0, 300)
		res = c.Button("OK")
		c.CloseWindow()
	})
	return res
}

func okID() ID { return Hash("OK", Hash("W", 0)) }

func TestUntouchedWidgetStaysIdle(t *testing.T) {
	c := newTestContext()
	c.SetPointerPosition(200, 100)
	for range 3 {
		assert.Equal(t, InteractionNone, buttonFrame(t, c))
		assert.Zero(t, c.Hot())
		assert.Zero(t, c.Active())
	}
}

func TestHoverPressRelease(t *testing.T) {
	c := newTestContext()

	c.SetPointerPosition(40, 260)
	assert.Equal(t, InteractionNone, buttonFrame(t, c))
	assert.Equal(t, okID(), c.Hot())

	press(c, 40, 260)
	assert.Equal(t, InteractionPress, buttonFrame(t, c))
	assert.Equal(t, okID(), c.Active())
	assert.Zero(t, c.Hot())

	release(c, 40, 260)
	assert.Equal(t, InteractionPressAndReleased, buttonFrame(t, c))
	assert.Zero(t, c.Active())
	assert.Equal(t, okID(), c.Hot())
}

func TestReleaseOutsideCancels(t *testing.T) {
	c := newTestContext()
	c.SetPointerPosition(40, 260)
	buttonFrame(t, c)
	press(c, 40, 260)
	buttonFrame(t, c)

	release(c, 500, 500)
	assert.Equal(t, InteractionNone, buttonFrame(t, c))
	assert.Zero(t, c.Active())
	assert.Zero(t, c.Hot())
}

func TestPressWithoutHoverDoesNotActivate(t *testing.T) {
	c := newTestContext()
	press(c, 40, 260)
	assert.Equal(t, InteractionNone, buttonFrame(t, c))
	assert.Zero(t, c.Active())
	assert.Equal(t, okID(), c.Hot())
}

func TestActiveDroppedWhenWidgetVanishes(t *testing.T) {
	c := newTestContext()
	c.SetPointerPosition(40, 260)
	buttonFrame(t, c)
	press(c, 40, 260)
	buttonFrame(t, c)
	assert.Equal(t, okID(), c.Active())

	release(c, 40, 260)
	runFrame(t, c, func() {
		c.OpenWindow("W", 0, 300)
		c.CloseWindow()
	})
	assert.Zero(t, c.Active())
}

func TestOtherButtonIgnoredWhileHeld(t *testing.T) {
	c := newTestContext()
	c.SetPointerPosition(40, 260)
	buttonFrame(t, c)
	press(c, 40, 260)
	c.SetPointerButton(40, 260, MouseRight, Released)
	assert.Equal(t, InteractionPress, buttonFrame(t, c))
}

func TestOccludedWidgetIsNotHot(t *testing.T) {
	c := newTestContext()
	c.SetPointerPosition(40, 260)
	// The first frame creates Cover after the button has already claimed hot.
	for range 2 {
		runFrame(t, c, func() {
			c.OpenWindow("W", 0, 300)
			c.Button("OK")
			c.CloseWindow()
			c.OpenWindow("Cover", 0, 300)
			c.CloseWindow()
		})
	}
	assert.Zero(t, c.Hot())
}
