package ui

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseForward
	MouseBackward
	MouseMiddle
)

type Transition int

const (
	Pressed Transition = iota + 1
	Released
)

type buttonEvent struct {
	live       bool // latched during the current frame
	button     MouseButton
	transition Transition
	pos        V2
}

// inputLatch holds what the host fed in before Begin. At most one button
// transition survives per frame.
type inputLatch struct {
	pos, prev V2
	event     buttonEvent
	scroll    int
}

// SetPointerPosition moves the pointer; the old position becomes the
// previous one used for drag deltas.
func (c *Context) SetPointerPosition(x, y int) {
	c.input.prev = c.input.pos
	c.input.pos = V2{X: x, Y: y}
}

// SetPointerButton latches a button transition at (x, y). Transitions of
// other buttons are ignored while one button is held.
func (c *Context) SetPointerButton(x, y int, button MouseButton, t Transition) {
	ev := &c.input.event
	if ev.transition == Pressed && ev.button != button {
		return
	}
	ev.live = true
	ev.button = button
	ev.transition = t
	ev.pos = V2{X: x, Y: y}
}

// AddScroll accumulates wheel units. Positive values move content forward
// (scroll offsets grow).
func (c *Context) AddScroll(delta int) { c.input.scroll += delta }

// Pointer returns the current pointer position.
func (c *Context) Pointer() V2 { return c.input.pos }

// PointInRect reports whether the pointer is inside r.
func (c *Context) PointInRect(r Rect) bool { return r.Contains(c.input.pos) }

// RectWasPressed reports whether a press of button landed inside r this frame.
func (c *Context) RectWasPressed(r Rect, button MouseButton) bool {
	ev := c.input.event
	return ev.live && ev.button == button && ev.transition == Pressed && r.Contains(ev.pos)
}

func (c *Context) released() bool {
	return c.input.event.live && c.input.event.transition == Released
}

func (c *Context) pressed() bool {
	return c.input.event.live && c.input.event.transition == Pressed
}

func (in *inputLatch) delta() V2 {
	return V2{X: in.pos.X - in.prev.X, Y: in.pos.Y - in.prev.Y}
}

// consume clears the one-shot parts of the latch at the end of a frame.
func (in *inputLatch) consume() {
	in.event.live = false
	in.scroll = 0
	in.prev = in.pos
}
