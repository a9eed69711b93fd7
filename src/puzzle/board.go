package puzzle

import (
	"math/rand/v2"

	"jigcam/src/geom"
)

// DefaultShrink leaves a margin around the board for scattered pieces.
const DefaultShrink = 0.8

type Board struct {
	Rect       geom.Rect
	Rows, Cols int
	Pieces     RenderList
}

func NewBoard(rows, cols int) *Board {
	return &Board{Rows: rows, Cols: cols}
}

// Layout fits the frame into the viewport and recreates every piece in row-major
// order, solved.
func (b *Board) Layout(viewport, frame geom.Size, shrink float64, rows, cols int) {
	b.Rect = geom.Fit(viewport, frame, shrink)
	b.Rows, b.Cols = rows, cols
	b.Pieces.Reset()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			b.Pieces.Push(newPiece(i, j, b.Rect, rows, cols))
		}
	}
}

// Randomize scatters every piece over the viewport and marks it incorrect.
func (b *Board) Randomize(viewport geom.Size, r *rand.Rand) {
	for _, p := range b.Pieces.Pieces() {
		p.X = r.Float64() * (viewport.W - p.W)
		p.Y = r.Float64() * (viewport.H - p.H)
		p.Correct = false
	}
}

func (b *Board) IsComplete() bool {
	for _, p := range b.Pieces.Pieces() {
		if !p.Correct {
			return false
		}
	}
	return true
}

// Piece returns the piece cut from grid cell (row, col).
func (b *Board) Piece(row, col int) *Piece {
	for _, p := range b.Pieces.Pieces() {
		if p.Row == row && p.Col == col {
			return p
		}
	}
	return nil
}

// CorrectCount is the number of placed pieces.
func (b *Board) CorrectCount() int {
	n := 0
	for _, p := range b.Pieces.Pieces() {
		if p.Correct {
			n++
		}
	}
	return n
}

func (b *Board) Draw(s Surface, f Frame) {
	for _, p := range b.Pieces.Pieces() {
		p.Draw(s, f)
	}
}
