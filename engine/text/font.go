package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font measures and rasterizes single-line text in whole pixels. It
// satisfies ui.TextMeasurer.
type Font struct {
	Face            font.Face
	Ascent, Descent int // pixels; Descent is positive below the baseline

	lineHeight int
	advances   map[rune]fixed.Int26_6
	fallback   fixed.Int26_6 // advance used for runes the face does not cover
	kerning    bool
	closeFace  func()
}

// firstRune..lastRune are measured up front; other runes are measured on
// demand through the face.
const (
	firstRune = rune(32)
	lastRune  = rune(255)
)

// Default returns the built-in 7x13 bitmap font.
func Default() *Font {
	return newFont(basicfont.Face7x13, false, nil)
}

// LoadTTF reads a TrueType/OpenType file and builds a face at sizePx.
func LoadTTF(path string, sizePx float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseTTF(data, sizePx)
}

// ParseTTF builds a face from font file bytes.
func ParseTTF(data []byte, sizePx float64) (*Font, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return newFont(face, true, func() { _ = face.Close() }), nil
}

func newFont(face font.Face, kerning bool, closeFace func()) *Font {
	m := face.Metrics()
	f := &Font{
		Face:       face,
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		lineHeight: m.Height.Ceil(),
		advances:   make(map[rune]fixed.Int26_6, lastRune-firstRune+1),
		kerning:    kerning,
		closeFace:  closeFace,
	}
	for r := firstRune; r <= lastRune; r++ {
		if adv, ok := face.GlyphAdvance(r); ok {
			f.advances[r] = adv
		}
	}
	f.fallback = f.advances[' ']
	if f.lineHeight <= 0 {
		f.lineHeight = f.Ascent + f.Descent
	}
	return f
}

func (f *Font) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

func (f *Font) LineHeight() int { return f.lineHeight }

// MeasureWidth returns the pen advance of s, kerning included, rounded once
// at the end like font.Drawer. Newlines are not special: the engine lays out
// one line per call.
func (f *Font) MeasureWidth(s string) int {
	var w fixed.Int26_6
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 && f.kerning {
			w += f.Face.Kern(prev, r)
		}
		w += f.advance(r)
		prev = r
	}
	return w.Round()
}

func (f *Font) advance(r rune) fixed.Int26_6 {
	if adv, ok := f.advances[r]; ok {
		return adv
	}
	if adv, ok := f.Face.GlyphAdvance(r); ok {
		return adv
	}
	return f.fallback
}
