package ui

import "github.com/hubastard/tinyui/engine/colors"

// Number is a numeric stepper: [-] value [+]. A press on either button
// moves *value by step. It reports whether the value changed.
func (c *Context) Number(name string, step float32, value *float32) bool {
	const op = "Number"
	w := c.selected
	if w == nil {
		c.fail(op, ErrNoWindow)
		return false
	}
	if c.err != nil {
		return false
	}
	id := Hash(name, w.id)
	bw := c.text.LineHeight() + 4
	fieldW := c.text.MeasureWidth("0") * 10
	r := c.AdvanceCursor(2*bw+fieldW, bw)

	dec := Rect{X: r.X, Y: r.Y, W: bw, H: bw}
	field := Rect{X: dec.Right(), Y: r.Y, W: fieldW, H: bw}
	inc := Rect{X: field.Right(), Y: r.Y, W: bw, H: bw}

	old := *value
	if c.interact(dec, Hash("-", id)) == InteractionPress {
		*value -= step
	}
	if c.interact(inc, Hash("+", id)) == InteractionPress {
		*value += step
	}

	c.DrawRect(dec, colors.Black)
	c.DrawText("-", dec, colors.White, AlignCenter)
	c.DrawRect(field, colors.White)
	c.DrawRect(inc, colors.Black)
	c.DrawText("+", inc, colors.White, AlignCenter)
	c.DrawText(c.formatNumber(op, *value), field, colors.Black, AlignCenter)
	return old != *value
}

const sliderKnobWidth = 10

// Slider drags *value between low and high. The bounds may be given in
// either order; the knob position follows the order given. It reports
// whether the value changed.
func (c *Context) Slider(name string, low, high float32, value *float32) bool {
	const op = "Slider"
	w := c.selected
	if w == nil {
		c.fail(op, ErrNoWindow)
		return false
	}
	if c.err != nil {
		return false
	}
	id := Hash(name, w.id)
	trackW := c.text.MeasureWidth("0") * 15
	trackH := c.text.LineHeight() + 4
	track := c.AdvanceCursor(trackW, trackH)

	old := *value
	c.interact(track, id)
	*value = clampf(*value, low, high)
	if c.active == id && track.W > sliderKnobWidth {
		t := (float32(c.input.pos.X) - (float32(track.X) + sliderKnobWidth/2)) / float32(track.W-sliderKnobWidth)
		*value = clampf((1-t)*low+t*high, low, high)
	}

	c.DrawRect(track, colors.Black)
	var t float32
	if high != low {
		t = (*value - low) / (high - low)
	}
	left := float32(track.X + 1)
	right := float32(track.Right() - sliderKnobWidth - 1)
	x := (1-t)*left + t*right
	c.DrawRect(Rect{X: int(x), Y: track.Y + 1, W: sliderKnobWidth, H: trackH - 2}, colors.Red)
	c.DrawText(c.formatNumber(op, *value), track, colors.White, AlignCenter)
	return *value != old
}
