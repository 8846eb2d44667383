package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color as emitted in draw commands.
type Color struct {
	R, G, B, A uint8
}

var (
	White    = Color{255, 255, 255, 255}
	Black    = Color{0, 0, 0, 255}
	Gray0    = Color{78, 78, 78, 255}
	Gray1    = Color{200, 200, 200, 255}
	Red      = Color{255, 0, 0, 255}
	Green    = Color{0, 255, 0, 255}
	Blue     = Color{0, 0, 255, 255}
	Yellow   = Color{255, 255, 0, 255}
	DarkGray = Color{20, 26, 31, 255}
)

func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Floats returns the color normalized to [0..1], the form GL clear calls take.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// NRGBA converts to the image/color value used by the software rasterizer.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA{c.R, c.G, c.B, c.A} }

// ParseHex reads "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok || len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("colors: %q is not #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
