package ui

import "github.com/hubastard/tinyui/engine/colors"

// Align selects how DrawText places text inside the given rect.
//
//	AlignOrigin:     x, y used; text starts at the rect's origin
//	AlignCenter:     x, y, w, h used
//	AlignVertCenter: x, y, h used
//	AlignHoriCenter: x, y, w used
type Align int

const (
	AlignOrigin Align = iota
	AlignCenter
	AlignVertCenter
	AlignHoriCenter
)

func (c *Context) PushClip(r Rect) {
	c.emit("PushClip", Command{Kind: CommandPushClip, Rect: r})
}

func (c *Context) PopClip() {
	c.emit("PopClip", Command{Kind: CommandPopClip})
}

func (c *Context) DrawRect(r Rect, color colors.Color) {
	c.emit("DrawRect", Command{Kind: CommandRect, Rect: r, Color: color})
}

func (c *Context) DrawIcon(icon Icon, r Rect, color colors.Color) {
	c.emit("DrawIcon", Command{Kind: CommandIcon, Rect: r, Color: color, Icon: icon})
}

// DrawText emits text and returns its bounding box. The string is
// referenced, never copied.
func (c *Context) DrawText(text string, r Rect, color colors.Color, align Align) Rect {
	const op = "DrawText"
	tw := c.text.MeasureWidth(text)
	th := c.text.LineHeight()

	var out Rect
	switch align {
	case AlignOrigin:
		out = Rect{X: r.X, Y: r.Y, W: tw, H: th}
	case AlignCenter:
		out = Rect{X: r.X + (r.W-tw)/2, Y: r.Y + (r.H-th)/2, W: tw, H: th}
	case AlignVertCenter:
		out = Rect{X: r.X, Y: r.Y + (r.H-th)/2, W: tw, H: th}
	case AlignHoriCenter:
		out = Rect{X: r.X + (r.W-tw)/2, Y: r.Y, W: tw, H: th}
	default:
		c.fail(op, ErrInvalidTextAlign)
		return Rect{}
	}
	c.emit(op, Command{Kind: CommandText, Rect: out, Color: color, Text: text})
	return out
}

// formatNumber renders v with two decimals into the text arena.
func (c *Context) formatNumber(op string, v float32) string {
	if c.err != nil {
		return ""
	}
	s, err := c.arena.Float(float64(v), 2)
	if err != nil {
		c.fail(op, ErrTextArenaFull)
		return ""
	}
	return s
}
