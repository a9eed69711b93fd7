package puzzle

import (
	"testing"

	"jigcam/src/geom"
)

func TestNewPieceStartsSolved(t *testing.T) {
	board := geom.Rect{X: 100, Y: 50, W: 300, H: 150}
	p := newPiece(1, 2, board, 3, 3)
	if p.W != 100 || p.H != 50 {
		t.Fatalf("size = %vx%v, want 100x50", p.W, p.H)
	}
	if p.X != 300 || p.Y != 100 {
		t.Fatalf("position = (%v,%v), want (300,100)", p.X, p.Y)
	}
	if p.Target() != p.Pos() {
		t.Fatalf("target %v != position %v", p.Target(), p.Pos())
	}
	if !p.Correct {
		t.Fatalf("new piece is not correct")
	}
}

func TestIsCloseUsesWidthThird(t *testing.T) {
	p := newPiece(0, 0, geom.Rect{W: 90, H: 900}, 1, 1)
	tests := []struct {
		name string
		dx   float64
		dy   float64
		want bool
	}{
		{"at target", 0, 0, true},
		{"just inside", 29.9, 0, true},
		{"on threshold", 30, 0, false},
		{"vertical uses width too", 0, 31, false},
		{"diagonal", 20, 20, true},
		{"diagonal far", 22, 22, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.MoveTo(geom.Pt(p.XCorrect+tt.dx, p.YCorrect+tt.dy))
			if got := p.IsClose(); got != tt.want {
				t.Errorf("IsClose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	p := newPiece(2, 1, geom.Rect{X: 10, Y: 10, W: 30, H: 30}, 3, 3)
	p.MoveTo(geom.Pt(500, 500))
	p.Correct = false
	p.Snap()
	if p.Pos() != p.Target() || !p.Correct {
		t.Fatalf("after Snap: pos=%v target=%v correct=%v", p.Pos(), p.Target(), p.Correct)
	}
	if !p.IsClose() {
		t.Fatalf("IsClose() false right after Snap")
	}
}

func TestPieceDrawRestoresAlpha(t *testing.T) {
	p := newPiece(1, 1, geom.Rect{X: 0, Y: 0, W: 300, H: 300}, 3, 3)
	p.MoveTo(geom.Pt(7, 9))
	s := newRecordSurface()
	s.SetAlpha(0.25)

	p.Draw(s, fakeFrame{w: 600, h: 300})

	if s.alpha != 0.25 {
		t.Fatalf("alpha after Draw = %v, want 0.25", s.alpha)
	}
	if len(s.calls) != 2 || s.calls[0].op != "frame" || s.calls[1].op != "stroke" {
		t.Fatalf("calls = %+v, want frame then stroke", s.calls)
	}
	wantSrc := geom.Rect{X: 200, Y: 100, W: 200, H: 100}
	if s.calls[0].src != wantSrc {
		t.Errorf("src = %+v, want %+v", s.calls[0].src, wantSrc)
	}
	wantDst := geom.Rect{X: 7, Y: 9, W: 100, H: 100}
	if s.calls[0].dst != wantDst || s.calls[1].dst != wantDst {
		t.Errorf("dst = %+v / %+v, want %+v", s.calls[0].dst, s.calls[1].dst, wantDst)
	}
	if s.calls[0].alpha != 1 {
		t.Errorf("piece drawn with alpha %v, want 1", s.calls[0].alpha)
	}
}
