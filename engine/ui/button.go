package ui

import "github.com/hubastard/tinyui/engine/colors"

// Button draws a labeled button and reports how it was interacted with this
// frame. Labels are hashed against the window, so they must be unique
// within it.
func (c *Context) Button(label string) Interaction {
	w := c.selected
	if w == nil {
		c.fail("Button", ErrNoWindow)
		return InteractionNone
	}
	if c.err != nil {
		return InteractionNone
	}
	st := c.style
	id := Hash(label, w.id)
	width := max(st.ButtonWidth, c.text.MeasureWidth(label)+2*st.Padding)
	border := c.AdvanceCursor(width, st.ButtonHeight)
	inner := border.Inset(1)

	fill := colors.White
	if c.hot == id {
		fill = colors.Gray1
	} else if c.active == id {
		fill = colors.Gray0
	}
	c.DrawRect(border, colors.White)
	c.DrawRect(inner, fill)
	c.DrawText(label, border, colors.Black, AlignCenter)

	return c.interact(border, id)
}

// CheckBox toggles *value when clicked and reports whether it changed.
func (c *Context) CheckBox(label string, value *bool) bool {
	w := c.selected
	if w == nil {
		c.fail("CheckBox", ErrNoWindow)
		return false
	}
	if c.err != nil {
		return false
	}
	st := c.style
	id := Hash(label, w.id)
	box := c.text.LineHeight() + 4
	tw := c.text.MeasureWidth(label)
	row := c.AdvanceCursor(box+st.Padding+tw, box)

	changed := false
	if c.interact(row, id) == InteractionPressAndReleased {
		*value = !*value
		changed = true
	}

	boxRect := Rect{X: row.X, Y: row.Y, W: box, H: box}
	c.DrawRect(boxRect, colors.White)
	c.DrawRect(boxRect.Inset(1), colors.Black)
	if *value {
		mark := colors.White
		if c.hot == id {
			mark = colors.Gray1
		}
		c.DrawRect(boxRect.Inset(4), mark)
	}
	c.DrawText(label, Rect{X: row.X + box + st.Padding, Y: row.Y, W: tw, H: box}, colors.White, AlignVertCenter)
	return changed
}
