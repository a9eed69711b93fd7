package puzzle

import "jigcam/src/geom"

type fakeFrame struct{ w, h int }

func (f fakeFrame) Size() (int, int) { return f.w, f.h }

type drawCall struct {
	op    string
	src   geom.Rect
	dst   geom.Rect
	alpha float64
}

type recordSurface struct {
	alpha float64
	calls []drawCall
}

func newRecordSurface() *recordSurface {
	return &recordSurface{alpha: 1}
}

func (s *recordSurface) Clear()             { s.calls = append(s.calls, drawCall{op: "clear"}) }
func (s *recordSurface) Alpha() float64     { return s.alpha }
func (s *recordSurface) SetAlpha(a float64) { s.alpha = a }
func (s *recordSurface) DrawFrame(_ Frame, src, dst geom.Rect) {
	s.calls = append(s.calls, drawCall{op: "frame", src: src, dst: dst, alpha: s.alpha})
}
func (s *recordSurface) StrokeRect(r geom.Rect) {
	s.calls = append(s.calls, drawCall{op: "stroke", dst: r, alpha: s.alpha})
}

func newTestBoard(rows, cols int) *Board {
	b := NewBoard(rows, cols)
	b.Layout(geom.Size{W: 1000, H: 800}, geom.Size{W: 640, H: 480}, DefaultShrink, rows, cols)
	return b
}
