package session

import (
	"testing"
	"time"

	"jigcam/src/geom"
	"jigcam/src/puzzle"
	"jigcam/src/timing"
)

type fakeDisplay struct {
	elapsed  []string
	menu     bool
	timer    bool
	congrats bool
	final    string
	shown    int // times congrats was shown
}

func (d *fakeDisplay) SetElapsed(text string) { d.elapsed = append(d.elapsed, text) }
func (d *fakeDisplay) ShowMenu(v bool)        { d.menu = v }
func (d *fakeDisplay) ShowTimer(v bool)       { d.timer = v }
func (d *fakeDisplay) ShowCongrats(v bool, final string) {
	d.congrats = v
	d.final = final
	if v {
		d.shown++
	}
}

type fakeFrame struct{ w, h int }

func (f fakeFrame) Size() (int, int) { return f.w, f.h }

type fakeSurface struct {
	alpha  float64
	ops    []string
	alphas []float64
}

func newFakeSurface() *fakeSurface { return &fakeSurface{alpha: 1} }

func (s *fakeSurface) Clear()             { s.ops = append(s.ops, "clear"); s.alphas = append(s.alphas, s.alpha) }
func (s *fakeSurface) Alpha() float64     { return s.alpha }
func (s *fakeSurface) SetAlpha(a float64) { s.alpha = a }
func (s *fakeSurface) DrawFrame(_ puzzle.Frame, _, _ geom.Rect) {
	s.ops = append(s.ops, "frame")
	s.alphas = append(s.alphas, s.alpha)
}
func (s *fakeSurface) StrokeRect(geom.Rect) {
	s.ops = append(s.ops, "stroke")
	s.alphas = append(s.alphas, s.alpha)
}

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Session, *fakeDisplay, *timing.ManualClock) {
	t.Helper()
	d := &fakeDisplay{}
	clock := timing.NewManualClock(t0)
	s := New(d, Options{Difficulty: puzzle.Easy, Seed: 42, Clock: clock})
	s.Attach(640, 480, 1000, 800)
	return s, d, clock
}

// drag moves a piece from wherever it is onto its target.
func drag(s *Session, p *puzzle.Piece) puzzle.Result {
	// scrambled pieces overlap; make sure the press lands on p
	s.Board().Pieces.MoveToTop(p)
	grab := geom.Pt(p.X+p.W/2, p.Y+p.H/2)
	s.Dispatch(puzzle.Press(grab.X, grab.Y))
	to := p.Target().Add(geom.Pt(p.W/2+3, p.H/2-2))
	s.Dispatch(puzzle.Move(to.X, to.Y))
	return s.Dispatch(puzzle.Release())
}

func TestAttachShowsMenu(t *testing.T) {
	s, d, _ := newTestSession(t)
	if !s.Ready() || !d.menu || d.timer || d.congrats {
		t.Fatalf("after Attach: ready=%v menu=%v timer=%v congrats=%v", s.Ready(), d.menu, d.timer, d.congrats)
	}
	if s.Board().Pieces.Len() != 9 || !s.Board().IsComplete() {
		t.Fatalf("board not laid out solved")
	}
	if s.ElapsedText() != "" {
		t.Fatalf("elapsed before start = %q", s.ElapsedText())
	}
}

func TestInertBeforeAttach(t *testing.T) {
	d := &fakeDisplay{}
	s := New(d, Options{})
	s.Restart()
	s.Dispatch(puzzle.Press(1, 1))
	sf := newFakeSurface()
	s.Tick(sf, fakeFrame{640, 480})
	if s.Record().Started() || len(sf.ops) != 0 || s.Board().Pieces.Len() != 0 {
		t.Fatalf("session acted before a frame source was attached")
	}
}

func TestRestartScramblesAndShowsTimer(t *testing.T) {
	s, d, clock := newTestSession(t)
	s.Restart()
	if d.menu || d.congrats || !d.timer {
		t.Fatalf("panels after restart: menu=%v congrats=%v timer=%v", d.menu, d.congrats, d.timer)
	}
	if s.Board().CorrectCount() != 0 {
		t.Fatalf("%d pieces correct after restart", s.Board().CorrectCount())
	}
	clock.Advance(61 * time.Second)
	if got := s.ElapsedText(); got != "00:01:01" {
		t.Fatalf("elapsed = %q, want 00:01:01", got)
	}
}

func TestDragIntoPlace(t *testing.T) {
	s, d, _ := newTestSession(t)
	s.Restart()
	p := s.Board().Piece(0, 0)

	res := drag(s, p)

	if res.Placed != p || !p.Correct {
		t.Fatalf("piece (0,0) not placed")
	}
	if s.Board().Pieces.At(0) != p {
		t.Fatalf("placed piece is not first in draw order")
	}
	if d.congrats {
		t.Fatalf("congrats shown with pieces left")
	}
}

func TestCompleteFreezesTimerOnce(t *testing.T) {
	s, d, clock := newTestSession(t)
	s.Restart()

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			clock.Advance(5 * time.Second)
			drag(s, s.Board().Piece(row, col))
		}
	}

	if !s.Board().IsComplete() {
		t.Fatalf("board not complete after placing all pieces")
	}
	if !s.Record().Finished() || d.shown != 1 {
		t.Fatalf("finished=%v congrats shown %d times", s.Record().Finished(), d.shown)
	}
	if d.final != "00:00:45" || !d.menu || d.timer {
		t.Fatalf("final=%q menu=%v timer=%v", d.final, d.menu, d.timer)
	}
	end := s.Record().EndedAt()

	clock.Advance(time.Minute)
	if s.CheckComplete() {
		t.Fatalf("second completion check reported completion")
	}
	drag(s, s.Board().Piece(1, 1))
	if !s.Record().EndedAt().Equal(end) || d.shown != 1 {
		t.Fatalf("end time changed or congrats repeated")
	}
	if got := s.ElapsedText(); got != "00:00:45" {
		t.Fatalf("elapsed after completion = %q", got)
	}
}

func TestResizeKeepsTiming(t *testing.T) {
	s, _, clock := newTestSession(t)
	s.Restart()
	clock.Advance(10 * time.Second)
	p := s.Board().Piece(0, 0)
	s.Board().Pieces.MoveToTop(p)
	s.Dispatch(puzzle.Press(p.X+1, p.Y+1))
	if s.Controller().State() != puzzle.Dragging {
		t.Fatalf("press did not start a drag")
	}

	s.Resize(800, 600)

	if s.Controller().State() != puzzle.Idle {
		t.Fatalf("selection survived resize")
	}
	if !s.Board().IsComplete() {
		t.Fatalf("resize did not lay the board out again")
	}
	if !s.Record().Started() || s.Record().Finished() {
		t.Fatalf("resize touched the timing record")
	}
	if got := s.ElapsedText(); got != "00:00:10" {
		t.Fatalf("elapsed = %q", got)
	}
	want := geom.Fit(geom.Size{W: 800, H: 600}, geom.Size{W: 640, H: 480}, puzzle.DefaultShrink)
	if s.Board().Rect != want {
		t.Fatalf("board rect = %+v, want %+v", s.Board().Rect, want)
	}
}

func TestSetDifficulty(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.SetDifficulty(puzzle.Insane)
	if s.Board().Pieces.Len() != 40*25 || s.Board().Rows != 40 || s.Board().Cols != 25 {
		t.Fatalf("insane board = %dx%d, %d pieces", s.Board().Rows, s.Board().Cols, s.Board().Pieces.Len())
	}
}

func TestTickDrawsGhostThenPieces(t *testing.T) {
	s, d, clock := newTestSession(t)
	s.Restart()
	clock.Advance(3 * time.Second)
	sf := newFakeSurface()

	s.Tick(sf, fakeFrame{640, 480})

	// clear, ghost, then frame+stroke for each of 9 pieces
	if len(sf.ops) != 2+9*2 || sf.ops[0] != "clear" || sf.ops[1] != "frame" {
		t.Fatalf("ops = %v", sf.ops)
	}
	if sf.alphas[1] != GhostAlpha {
		t.Fatalf("ghost drawn at alpha %v", sf.alphas[1])
	}
	for i := 2; i < len(sf.alphas); i++ {
		if sf.alphas[i] != 1 {
			t.Fatalf("op %d (%s) at alpha %v", i, sf.ops[i], sf.alphas[i])
		}
	}
	if sf.alpha != 1 {
		t.Fatalf("alpha left at %v", sf.alpha)
	}
	if len(d.elapsed) != 1 || d.elapsed[0] != "00:00:03" {
		t.Fatalf("published elapsed = %v", d.elapsed)
	}
}
