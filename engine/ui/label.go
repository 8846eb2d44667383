package ui

import "github.com/hubastard/tinyui/engine/colors"

// Text lays out one line of text in the selected window.
func (c *Context) Text(text string, color colors.Color) {
	if c.err != nil {
		return
	}
	r := c.AdvanceCursor(c.text.MeasureWidth(text), c.text.LineHeight())
	c.DrawText(text, r, color, AlignOrigin)
}
