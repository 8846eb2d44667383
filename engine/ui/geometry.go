package ui

// Coordinates are pixels with the origin at the bottom-left and y growing
// upward. Hosts with y-down windows flip before feeding input.

type V2 struct {
	X, Y int
}

type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p V2) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersect returns the overlap of r and o; disjoint rects yield a zero size.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: max(0, x1-x0), H: max(0, y1-y0)}
}

// Inset shrinks r by n on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

func (r Rect) Top() int   { return r.Y + r.H }
func (r Rect) Right() int { return r.X + r.W }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampf tolerates swapped bounds.
func clampf(v, a, b float32) float32 {
	if a > b {
		a, b = b, a
	}
	return min(max(v, a), b)
}
