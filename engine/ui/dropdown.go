package ui

import "github.com/hubastard/tinyui/engine/colors"

// popupState is the single popup slot. A popup lives until a press lands
// outside it (or on its owner again), which marks it dead, or until a frame
// ends without its owner drawing it. End clears it in both cases.
type popupState struct {
	id     ID
	rect   Rect
	live   bool
	seen   bool // drawn by its owner this frame
	dead   bool
	scroll int
}

// PopupID returns the owner of the live popup, if any.
func (c *Context) PopupID() (ID, bool) {
	if !c.popup.live || c.popup.dead {
		return 0, false
	}
	return c.popup.id, true
}

func (c *Context) openPopup(id ID) {
	c.popup = popupState{id: id, live: true}
}

// Dropdown shows items[*selected] and, when opened, a popup list above
// every window. Pressing a row stores its index in *selected, closes the
// popup and reports true.
func (c *Context) Dropdown(label string, items []string, selected *int) bool {
	const op = "Dropdown"
	w := c.selected
	if w == nil {
		c.fail(op, ErrNoWindow)
		return false
	}
	if c.err != nil {
		return false
	}
	st := c.style
	id := Hash(label, w.id)
	rowH := c.text.LineHeight() + 4
	box := c.AdvanceCursor(st.DropdownWidth, rowH)

	if c.interact(box, id) == InteractionPress {
		if c.popup.live && c.popup.id == id {
			c.popup.dead = true
		} else {
			c.openPopup(id)
		}
	}

	current := ""
	if *selected >= 0 && *selected < len(items) {
		current = items[*selected]
	}
	c.DrawRect(box, colors.White)
	c.DrawRect(box.Inset(1), colors.Black)
	c.PushClip(box)
	c.DrawText(current, Rect{X: box.X + st.Padding, Y: box.Y, W: box.W - rowH, H: box.H}, colors.White, AlignVertCenter)
	c.PopClip()
	open := c.popup.live && !c.popup.dead && c.popup.id == id
	icon := IconCollapse
	if open {
		icon = IconExpand
	}
	c.DrawIcon(icon, Rect{X: box.Right() - rowH, Y: box.Y, W: rowH, H: rowH}, colors.White)

	if !open {
		return false
	}
	return c.dropdownList(id, box, rowH, items, selected)
}

// dropdownList draws the open list into the popup block, anchored under box.
func (c *Context) dropdownList(id ID, box Rect, rowH int, items []string, selected *int) bool {
	const op = "Dropdown"
	st := c.style
	rows := min(len(items), st.DropdownRows)
	listH := rows * rowH
	rect := Rect{X: box.X, Y: box.Y - listH, W: box.W, H: listH}
	c.popup.rect = rect
	c.popup.seen = true

	overflow := len(items)*rowH - listH
	barID := Hash("#scrollbar", id)
	if rect.Contains(c.input.pos) && c.input.scroll != 0 {
		c.popup.scroll += c.input.scroll * rowH
	}
	rowW := rect.W
	var bar Rect
	if overflow > 0 {
		rowW -= st.ScrollbarWidth
		bar = Rect{X: rect.X + rowW, Y: rect.Y, W: st.ScrollbarWidth, H: rect.H}
	}

	if !c.beginBlock(op, true, popupKey) {
		return false
	}
	if overflow > 0 {
		c.interact(bar, barID)
		if c.active == barID {
			c.popup.scroll -= c.input.delta().Y * len(items) * rowH / listH
		}
	}
	c.popup.scroll = clampInt(c.popup.scroll, 0, max(0, overflow))

	c.DrawRect(rect, colors.Black)
	c.PushClip(rect)
	changed := false
	first := c.popup.scroll / rowH
	top := rect.Top() + c.popup.scroll
	for i := first; i < len(items) && i <= first+rows; i++ {
		row := Rect{X: rect.X, Y: top - (i+1)*rowH, W: rowW, H: rowH}
		rid := HashIndex(i, id)
		res := c.interact(row, rid)

		fill := colors.Gray0
		if c.hot == rid || i == *selected {
			fill = colors.Gray1
		}
		c.DrawRect(row.Inset(1), fill)
		c.DrawText(items[i], Rect{X: row.X + st.Padding, Y: row.Y, W: row.W - st.Padding, H: row.H}, colors.White, AlignVertCenter)

		if res == InteractionPress {
			*selected = i
			changed = true
			c.popup.dead = true
		}
	}
	if overflow > 0 {
		thumbH := max(bar.H*listH/(len(items)*rowH), st.ScrollbarWidth)
		thumbY := bar.Top() - thumbH - c.popup.scroll*(bar.H-thumbH)/overflow
		c.DrawRect(Rect{X: bar.X, Y: thumbY, W: bar.W, H: thumbH}, colors.Gray1)
	}
	c.PopClip()
	c.endBlock(true)
	return changed
}
