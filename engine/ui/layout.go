package ui

import "github.com/hubastard/tinyui/engine/colors"

// AdvanceCursor reserves a w x h slot in the selected window and returns it
// in screen space. Block mode starts a new row after the slot; inline mode
// keeps the row and moves right.
func (c *Context) AdvanceCursor(w, h int) Rect {
	win := c.selected
	if win == nil {
		c.fail("AdvanceCursor", ErrNoWindow)
		return Rect{}
	}
	pad := c.style.Padding
	at := win.cursor
	win.rowHeight = max(win.rowHeight, h)
	if win.inline {
		win.cursor.X += w + pad
	} else {
		win.nextRow(pad)
	}

	// The cursor is relative to the body's top-left corner and grows
	// downward as y decreases; scrolling pushes content up.
	top := win.body.Top() - pad + at.Y + win.scroll
	return Rect{X: win.body.X + pad + at.X, Y: top - h, W: w, H: h}
}

func (w *Window) nextRow(pad int) {
	w.cursor.X = 0
	w.cursor.Y -= w.rowHeight + pad
	w.rowHeight = 0
}

// Inline toggles inline layout for the selected window. Turning it off ends
// the current row.
func (c *Context) Inline() {
	w := c.selected
	if w == nil {
		c.fail("Inline", ErrNoWindow)
		return
	}
	if w.inline {
		w.nextRow(c.style.Padding)
	}
	w.inline = !w.inline
}

// maxScroll is the largest offset that still keeps the body filled.
func (w *Window) maxScroll() int { return max(0, w.content-w.body.H) }

func (w *Window) clampScroll() { w.scroll = clampInt(w.scroll, 0, w.maxScroll()) }

// scrollbar records the content height of w, applies wheel and thumb drag
// input, and draws the bar when the content overflows and the pointer is
// over the window or the bar is being dragged.
func (c *Context) scrollbar(w *Window) {
	st := c.style
	w.content = st.Padding - w.cursor.Y + w.rowHeight

	id := Hash("#scrollbar", w.id)
	over := c.OverWindow(w) && !c.pointerInPopup()
	if over && c.input.scroll != 0 {
		w.scroll += c.input.scroll * st.ScrollStep
	}
	if w.content <= w.body.H || !over && c.active != id {
		w.clampScroll()
		return
	}

	track := Rect{
		X: w.body.Right() - st.ScrollbarWidth,
		Y: w.body.Y + st.ResizeNotch,
		W: st.ScrollbarWidth,
		H: w.body.H - st.ResizeNotch,
	}
	thumbH := max(track.H*w.body.H/w.content, st.ScrollbarWidth)
	c.interact(track, id)
	if c.active == id && track.H > 0 {
		// Thumb follows the pointer: moving down (dy < 0) scrolls forward.
		w.scroll -= c.input.delta().Y * w.content / track.H
	}
	w.clampScroll()

	thumbY := track.Top() - thumbH
	if m := w.maxScroll(); m > 0 {
		thumbY -= w.scroll * (track.H - thumbH) / m
	}
	c.DrawRect(track, colors.Black)
	c.DrawRect(Rect{X: track.X, Y: thumbY, W: track.W, H: thumbH}, colors.Gray1)
}
