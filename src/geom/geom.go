package geom

import "math"

// ---- Point ----

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the euclidean distance between p and q
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ---- Size ----

type Size struct {
	W, H float64
}

func Sz(w, h int) Size {
	return Size{W: float64(w), H: float64(h)}
}

func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// ---- Rect ----

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

func (r Rect) At(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// ContainsStrict reports whether p lies inside r, edges excluded
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Fit scales src uniformly by factor*min(dst.W/src.W, dst.H/src.H) and centers the
// result inside dst.
func Fit(dst, src Size, factor float64) Rect {
	if dst.Empty() || src.Empty() {
		return Rect{}
	}
	scale := factor * math.Min(dst.W/src.W, dst.H/src.H)
	w := scale * src.W
	h := scale * src.H
	return Rect{
		X: dst.W/2 - w/2,
		Y: dst.H/2 - h/2,
		W: w,
		H: h,
	}
}
