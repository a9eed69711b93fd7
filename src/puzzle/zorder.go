package puzzle

import "jigcam/src/geom"

// RenderList is the authoritative draw order: index 0 is drawn first (bottom-most),
// the last piece is drawn last and is the first to be hit.
type RenderList struct {
	pieces []*Piece
}

func (rl *RenderList) Len() int {
	return len(rl.pieces)
}

func (rl *RenderList) At(i int) *Piece {
	return rl.pieces[i]
}

// Pieces returns the draw order. Callers must not modify the slice.
func (rl *RenderList) Pieces() []*Piece {
	return rl.pieces
}

func (rl *RenderList) Push(p *Piece) {
	rl.pieces = append(rl.pieces, p)
}

func (rl *RenderList) Reset() {
	rl.pieces = nil
}

func (rl *RenderList) Index(p *Piece) int {
	for i, q := range rl.pieces {
		if q == p {
			return i
		}
	}
	return -1
}

// MoveToTop places p last in the draw order.
func (rl *RenderList) MoveToTop(p *Piece) bool {
	i := rl.Index(p)
	if i < 0 {
		return false
	}
	copy(rl.pieces[i:], rl.pieces[i+1:])
	rl.pieces[len(rl.pieces)-1] = p
	return true
}

// MoveToBottom places p first in the draw order.
func (rl *RenderList) MoveToBottom(p *Piece) bool {
	i := rl.Index(p)
	if i < 0 {
		return false
	}
	copy(rl.pieces[1:i+1], rl.pieces[:i])
	rl.pieces[0] = p
	return true
}

// TopmostAt hit-tests from the top of the draw order down.
func (rl *RenderList) TopmostAt(pt geom.Point) *Piece {
	for i := len(rl.pieces) - 1; i >= 0; i-- {
		if rl.pieces[i].Bounds().ContainsStrict(pt) {
			return rl.pieces[i]
		}
	}
	return nil
}
