// Package soft rasterizes the ui command stream into an image.RGBA.
package soft

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"iter"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/hubastard/tinyui/engine/colors"
	"github.com/hubastard/tinyui/engine/text"
	"github.com/hubastard/tinyui/engine/ui"
)

var (
	ErrClipUnderflow = errors.New("soft: pop-clip without push-clip")
	ErrClipUnclosed  = errors.New("soft: push-clip left open")
)

// Stats counts what the last Render drew.
type Stats struct {
	Rects, Texts, Icons, Clips int
}

func (s Stats) Commands() int { return s.Rects + s.Texts + s.Icons + s.Clips }

// Renderer owns the frame and the scratch state needed to draw into it.
// Frame coordinates are y-down; command rects are y-up and are flipped here.
type Renderer struct {
	frame  *image.RGBA
	face   font.Face
	ascent int

	clips []image.Rectangle
	icon  *vector.Rasterizer
	mask  []byte
	src   image.Uniform

	stats Stats
}

func New(f *text.Font, w, h int) *Renderer {
	r := &Renderer{
		face:   f.Face,
		ascent: f.Ascent,
		clips:  make([]image.Rectangle, 0, 16),
		icon:   vector.NewRasterizer(1, 1),
	}
	r.Resize(w, h)
	return r
}

// Resize reallocates the frame when the size changes.
func (r *Renderer) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if r.frame != nil && r.frame.Rect.Dx() == w && r.frame.Rect.Dy() == h {
		return
	}
	r.frame = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (r *Renderer) Frame() *image.RGBA { return r.frame }

func (r *Renderer) Stats() Stats { return r.stats }

func (r *Renderer) Clear(c colors.Color) {
	r.src.C = c.NRGBA()
	draw.Draw(r.frame, r.frame.Rect, &r.src, image.Point{}, draw.Src)
}

// Render draws cmds in order. Clip rects nest: each push intersects with
// the enclosing clip.
func (r *Renderer) Render(cmds iter.Seq[ui.Command]) error {
	r.clips = r.clips[:0]
	r.stats = Stats{}
	for cmd := range cmds {
		switch cmd.Kind {
		case ui.CommandPushClip:
			r.clips = append(r.clips, r.clip().Intersect(r.toImage(cmd.Rect)))
			r.stats.Clips++
		case ui.CommandPopClip:
			if len(r.clips) == 0 {
				return ErrClipUnderflow
			}
			r.clips = r.clips[:len(r.clips)-1]
		case ui.CommandRect:
			r.fill(r.toImage(cmd.Rect), cmd.Color)
			r.stats.Rects++
		case ui.CommandText:
			r.text(cmd)
			r.stats.Texts++
		case ui.CommandIcon:
			r.drawIcon(cmd)
			r.stats.Icons++
		default:
			return fmt.Errorf("soft: unknown command %v", cmd.Kind)
		}
	}
	if len(r.clips) != 0 {
		return ErrClipUnclosed
	}
	return nil
}

func (r *Renderer) clip() image.Rectangle {
	if n := len(r.clips); n > 0 {
		return r.clips[n-1]
	}
	return r.frame.Rect
}

// toImage flips a y-up rect into frame coordinates.
func (r *Renderer) toImage(rc ui.Rect) image.Rectangle {
	h := r.frame.Rect.Dy()
	return image.Rect(rc.X, h-(rc.Y+rc.H), rc.X+rc.W, h-rc.Y)
}

func (r *Renderer) target(dr image.Rectangle) (*image.RGBA, bool) {
	cr := r.clip().Intersect(dr)
	if cr.Empty() {
		return nil, false
	}
	return r.frame.SubImage(cr).(*image.RGBA), true
}

func (r *Renderer) fill(dr image.Rectangle, c colors.Color) {
	dst, ok := r.target(dr)
	if !ok {
		return
	}
	op := draw.Over
	if c.A == 0xff {
		op = draw.Src
	}
	r.src.C = c.NRGBA()
	draw.Draw(dst, dst.Rect, &r.src, image.Point{}, op)
}

func (r *Renderer) text(cmd ui.Command) {
	dr := r.toImage(cmd.Rect)
	dst, ok := r.target(dr)
	if !ok {
		return
	}
	r.src.C = cmd.Color.NRGBA()
	d := font.Drawer{
		Dst:  dst,
		Src:  &r.src,
		Face: r.face,
		Dot:  fixed.P(dr.Min.X, dr.Min.Y+r.ascent),
	}
	d.DrawString(cmd.Text)
}

func (r *Renderer) drawIcon(cmd ui.Command) {
	dr := r.toImage(cmd.Rect)
	dst, ok := r.target(dr)
	if !ok {
		return
	}
	w, h := dr.Dx(), dr.Dy()
	fw, fh := float32(w), float32(h)

	r.icon.Reset(w, h)
	switch cmd.Icon {
	case ui.IconResize:
		// Lower-right half of the box.
		r.icon.MoveTo(fw, 0)
		r.icon.LineTo(fw, fh)
		r.icon.LineTo(0, fh)
	case ui.IconExpand:
		// Downward pointing.
		r.icon.MoveTo(fw*0.25, fh*0.35)
		r.icon.LineTo(fw*0.75, fh*0.35)
		r.icon.LineTo(fw*0.5, fh*0.7)
	case ui.IconCollapse:
		// Right pointing.
		r.icon.MoveTo(fw*0.35, fh*0.25)
		r.icon.LineTo(fw*0.7, fh*0.5)
		r.icon.LineTo(fw*0.35, fh*0.75)
	default:
		return
	}
	r.icon.ClosePath()

	// The rasterizer's fast path ignores Stride: the mask is exactly w wide.
	if cap(r.mask) < w*h {
		r.mask = make([]byte, max(w*h, 32*32))
	}
	mask := &image.Alpha{Pix: r.mask[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}
	clear(mask.Pix)
	r.icon.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	r.src.C = cmd.Color.NRGBA()
	draw.DrawMask(dst, dr, &r.src, image.Point{}, mask, image.Point{}, draw.Over)
}

// RGBA is the premultiplied frame value of c, for comparing pixels.
func RGBA(c colors.Color) color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}
