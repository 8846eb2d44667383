package ui

import "github.com/hubastard/tinyui/engine/colors"

// Window is created the first time its name is opened and lives for the
// rest of the session. Title bar and body always tile the outer rect.
type Window struct {
	id     ID
	rect   Rect
	title  Rect
	body   Rect
	zIndex int

	scroll  int
	content int

	cursor    V2
	rowHeight int
	inline    bool
}

func (w *Window) ID() ID          { return w.id }
func (w *Window) Rect() Rect      { return w.rect }
func (w *Window) TitleRect() Rect { return w.title }
func (w *Window) BodyRect() Rect  { return w.body }
func (w *Window) ZIndex() int     { return w.zIndex }
func (w *Window) Scroll() int     { return w.scroll }

// ContentHeight is the height laid out during the last close.
func (w *Window) ContentHeight() int { return w.content }

// reshape derives the title bar and body from the outer rect.
func (w *Window) reshape(st Style) {
	r := w.rect
	w.title = Rect{
		X: r.X + st.Border,
		Y: r.Y + r.H - st.TitleBarHeight,
		W: r.W - 2*st.Border,
		H: st.TitleBarHeight,
	}
	w.body = Rect{
		X: r.X + st.Border,
		Y: r.Y + st.Border,
		W: r.W - 2*st.Border,
		H: r.H - st.Border - st.TitleBarHeight,
	}
}

func (w *Window) notch(st Style) Rect {
	return Rect{
		X: w.body.X + w.body.W - st.ResizeNotch,
		Y: w.body.Y,
		W: st.ResizeNotch,
		H: st.ResizeNotch,
	}
}

// resize moves the bottom-right corner by d, keeping the top edge fixed.
func (w *Window) resize(d V2, st Style) {
	top := w.rect.Top()
	w.rect.W = max(w.rect.W+d.X, st.WindowMinWidth)
	w.rect.H = max(w.rect.H-d.Y, st.WindowMinHeight)
	w.rect.Y = top - w.rect.H
	w.reshape(st)
}

func (w *Window) move(d V2, st Style) {
	w.rect.X += d.X
	w.rect.Y += d.Y
	w.reshape(st)
}

// FindWindow returns the window with id, or nil.
func (c *Context) FindWindow(id ID) *Window {
	for i := range c.windows {
		if c.windows[i].id == id {
			return &c.windows[i]
		}
	}
	return nil
}

// Windows returns the depth order, bottom-to-top. The slice is owned by the
// Context.
func (c *Context) Windows() []*Window { return c.depth }

// OpenWindow selects the window called name, creating it with its top-left
// corner at (x, y) on first use. Resize and drag input is applied before the
// window's block is opened. Pair with CloseWindow.
func (c *Context) OpenWindow(name string, x, y int) {
	const op = "OpenWindow"
	if c.err != nil {
		return
	}
	if c.selected != nil {
		c.fail(op, ErrNestedBlock)
		return
	}
	st := c.style
	id := Hash(name, 0)
	w := c.FindWindow(id)
	if w == nil {
		if len(c.windows) == cap(c.windows) {
			c.fail(op, ErrWindowTableFull)
			return
		}
		c.zIndex++
		c.windows = append(c.windows, Window{
			id:     id,
			rect:   Rect{X: x, Y: y - st.WindowHeight, W: st.WindowWidth, H: st.WindowHeight},
			zIndex: c.zIndex,
		})
		w = &c.windows[len(c.windows)-1]
		w.reshape(st)
		c.depth = append(c.depth, w)
		c.logger.Debug("window created", "name", name, "id", uint32(id), "z", w.zIndex)
	}

	c.selected = w
	w.cursor = V2{}
	w.rowHeight = 0
	w.inline = false

	notchID := Hash("#resize", id)
	c.interact(w.notch(st), notchID)
	if c.active == notchID {
		w.resize(c.input.delta(), st)
	}
	c.interact(w.title, id)
	if c.active == id {
		w.move(c.input.delta(), st)
	}

	if !c.beginBlock(op, false, w.zIndex) {
		c.selected = nil
		return
	}
	c.DrawRect(w.rect, colors.Black)
	c.DrawRect(w.body, colors.Gray0)
	c.PushClip(w.title)
	c.DrawText(name, Rect{X: w.title.X + st.Padding, Y: w.title.Y, W: w.title.W - 2*st.Padding, H: w.title.H}, colors.White, AlignVertCenter)
	c.PopClip()
	c.DrawIcon(IconResize, w.notch(st), colors.White)
	c.PushClip(w.body)
}

// CloseWindow finishes the selected window: scrollbar, clip and block.
func (c *Context) CloseWindow() {
	const op = "CloseWindow"
	if c.err != nil {
		return
	}
	w := c.selected
	if w == nil {
		c.fail(op, ErrNoWindow)
		return
	}
	c.scrollbar(w)
	c.PopClip()
	c.endBlock(false)
	c.selected = nil
}

// OverWindow reports whether w is the topmost window under the pointer.
func (c *Context) OverWindow(w *Window) bool {
	if w == nil {
		return false
	}
	for i := len(c.depth) - 1; i >= 0; i-- {
		if c.depth[i].rect.Contains(c.input.pos) {
			return c.depth[i] == w
		}
	}
	return false
}

// promote raises the topmost window under p. Depth order (hit testing) and
// z-index (render order) change together here and nowhere else.
func (c *Context) promote(p V2) {
	for i := len(c.depth) - 1; i >= 0; i-- {
		w := c.depth[i]
		if !w.rect.Contains(p) {
			continue
		}
		if last := len(c.depth) - 1; i != last {
			copy(c.depth[i:], c.depth[i+1:])
			c.depth[last] = w
		}
		if w.zIndex != c.zIndex {
			c.zIndex++
			w.zIndex = c.zIndex
			c.logger.Debug("window promoted", "id", uint32(w.id), "z", w.zIndex)
		}
		return
	}
}
