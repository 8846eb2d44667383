package ui

type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionPress
	InteractionPressAndReleased
)

// interact runs the hot/active state machine for the widget id occupying r.
//
//	idle   -> hot     pointer inside, nothing active, not occluded
//	hot    -> active  left press inside r, reports Press
//	active -> idle    release anywhere, reports PressAndReleased if inside r
func (c *Context) interact(r Rect, id ID) Interaction {
	res := InteractionNone
	if c.active == id {
		c.activeSeen = true
		if c.released() {
			c.active = 0
			if r.Contains(c.input.event.pos) {
				res = InteractionPressAndReleased
			}
		}
	} else if c.hot == id {
		if c.RectWasPressed(r, MouseLeft) {
			c.active = id
			c.activeSeen = true
			c.hot = 0
			res = InteractionPress
		}
	}

	if c.active == 0 && r.Contains(c.input.pos) && c.reachable() {
		c.hot = id
		c.somethingIsHot = true
	}
	return res
}

// reachable reports whether the widget being built can receive the pointer.
// A live popup under the pointer shadows every window; otherwise the
// selected window must be the topmost one there.
func (c *Context) reachable() bool {
	inPopup := c.cmds.rev >= 0
	if c.pointerInPopup() {
		return inPopup
	}
	if inPopup {
		return false
	}
	return c.OverWindow(c.selected)
}

func (c *Context) pointerInPopup() bool {
	return c.popup.live && !c.popup.dead && c.popup.rect.Contains(c.input.pos)
}
