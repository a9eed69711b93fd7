package puzzle

import (
	"testing"

	"jigcam/src/geom"
)

func order(rl *RenderList) []int {
	out := make([]int, 0, rl.Len())
	for _, p := range rl.Pieces() {
		out = append(out, p.Col)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newRow(n int) (*RenderList, []*Piece) {
	rl := &RenderList{}
	ps := make([]*Piece, n)
	for i := range ps {
		ps[i] = newPiece(0, i, geom.Rect{W: float64(10 * n), H: 10}, 1, n)
		rl.Push(ps[i])
	}
	return rl, ps
}

func TestRenderListMoves(t *testing.T) {
	rl, ps := newRow(4)

	rl.MoveToTop(ps[1])
	if got := order(rl); !equalInts(got, []int{0, 2, 3, 1}) {
		t.Fatalf("after MoveToTop = %v", got)
	}
	rl.MoveToBottom(ps[3])
	if got := order(rl); !equalInts(got, []int{3, 0, 2, 1}) {
		t.Fatalf("after MoveToBottom = %v", got)
	}
	rl.MoveToBottom(ps[3])
	if got := order(rl); !equalInts(got, []int{3, 0, 2, 1}) {
		t.Fatalf("MoveToBottom of first piece changed order: %v", got)
	}
	rl.MoveToTop(ps[1])
	if got := order(rl); !equalInts(got, []int{3, 0, 2, 1}) {
		t.Fatalf("MoveToTop of last piece changed order: %v", got)
	}

	stranger := newPiece(0, 9, geom.Rect{W: 10, H: 10}, 1, 1)
	if rl.MoveToTop(stranger) || rl.MoveToBottom(stranger) {
		t.Fatalf("moving a piece not in the list reported success")
	}
}

func TestTopmostAt(t *testing.T) {
	rl, ps := newRow(3)
	for _, p := range ps {
		p.MoveTo(geom.Pt(0, 0))
	}
	if got := rl.TopmostAt(geom.Pt(5, 5)); got != ps[2] {
		t.Fatalf("TopmostAt = %v, want %v", got, ps[2])
	}
	rl.MoveToTop(ps[0])
	if got := rl.TopmostAt(geom.Pt(5, 5)); got != ps[0] {
		t.Fatalf("TopmostAt after raise = %v, want %v", got, ps[0])
	}
	if got := rl.TopmostAt(geom.Pt(50, 50)); got != nil {
		t.Fatalf("TopmostAt on empty space = %v, want nil", got)
	}
	if got := rl.TopmostAt(geom.Pt(0, 5)); got != nil {
		t.Fatalf("TopmostAt on the edge = %v, want nil", got)
	}
}
