package puzzle

import (
	"fmt"

	"jigcam/src/geom"
)

// ---- Piece ----

type Piece struct {
	Row, Col int

	// current on-screen position
	X, Y float64
	// fixed until the next layout
	W, H float64
	// target position
	XCorrect, YCorrect float64
	Correct            bool

	rows, cols int
	offset     geom.Point // pointer - position, valid while dragged
}

func newPiece(row, col int, board geom.Rect, rows, cols int) *Piece {
	p := &Piece{
		Row:     row,
		Col:     col,
		X:       board.X + board.W*float64(col)/float64(cols),
		Y:       board.Y + board.H*float64(row)/float64(rows),
		W:       board.W / float64(cols),
		H:       board.H / float64(rows),
		Correct: true,
		rows:    rows,
		cols:    cols,
	}
	p.XCorrect = p.X
	p.YCorrect = p.Y
	return p
}

func (p *Piece) String() string {
	return fmt.Sprintf("piece(%d,%d)", p.Row, p.Col)
}

func (p *Piece) Pos() geom.Point {
	return geom.Pt(p.X, p.Y)
}

func (p *Piece) Target() geom.Point {
	return geom.Pt(p.XCorrect, p.YCorrect)
}

// Bounds is the current on-screen rect.
func (p *Piece) Bounds() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// TargetBounds is the rect the piece occupies once solved.
func (p *Piece) TargetBounds() geom.Rect {
	return geom.Rect{X: p.XCorrect, Y: p.YCorrect, W: p.W, H: p.H}
}

func (p *Piece) MoveTo(pt geom.Point) {
	p.X, p.Y = pt.X, pt.Y
}

// SourceRect is the grid cell of the frame this piece shows.
func (p *Piece) SourceRect(f Frame) geom.Rect {
	fw, fh := f.Size()
	w := float64(fw) / float64(p.cols)
	h := float64(fh) / float64(p.rows)
	return geom.Rect{X: float64(p.Col) * w, Y: float64(p.Row) * h, W: w, H: h}
}

func (p *Piece) Draw(s Surface, f Frame) {
	prev := s.Alpha()
	s.SetAlpha(1)
	defer s.SetAlpha(prev)

	dst := p.Bounds()
	s.DrawFrame(f, p.SourceRect(f), dst)
	s.StrokeRect(dst)
}

// IsClose uses a third of the width as threshold for both axes.
func (p *Piece) IsClose() bool {
	return geom.Distance(p.Pos(), p.Target()) < p.W/3
}

func (p *Piece) Snap() {
	p.X = p.XCorrect
	p.Y = p.YCorrect
	p.Correct = true
}
