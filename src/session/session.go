// Package session owns one puzzle session: the board, its controller, the attempt
// timing and the display that reports on it. All methods are meant to be called
// from the game loop goroutine only.
package session

import (
	"math/rand/v2"
	"time"

	"jigcam/src/geom"
	"jigcam/src/logx"
	"jigcam/src/puzzle"
	"jigcam/src/timing"
)

// Display is the menu / timer / congratulations layer.
type Display interface {
	SetElapsed(text string)
	ShowMenu(visible bool)
	ShowTimer(visible bool)
	ShowCongrats(visible bool, finalTime string)
}

type Options struct {
	Difficulty puzzle.Difficulty
	Shrink     float64
	Seed       uint64 // 0 picks a time based seed
	Clock      timing.Clock
	Logger     logx.Logger
}

type Session struct {
	board   *puzzle.Board
	ctrl    *puzzle.Controller
	record  timing.Record
	display Display

	difficulty puzzle.Difficulty
	shrink     float64
	viewport   geom.Size
	frame      geom.Size
	attached   bool

	clock timing.Clock
	rng   *rand.Rand
	log   logx.Logger
}

func New(d Display, opts Options) *Session {
	if opts.Shrink <= 0 || opts.Shrink > 1 {
		opts.Shrink = puzzle.DefaultShrink
	}
	if opts.Clock == nil {
		opts.Clock = timing.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logx.Nop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rows, cols := opts.Difficulty.Grid()
	b := puzzle.NewBoard(rows, cols)
	return &Session{
		board:      b,
		ctrl:       puzzle.NewController(b),
		display:    d,
		difficulty: opts.Difficulty,
		shrink:     opts.Shrink,
		clock:      opts.Clock,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log:        opts.Logger,
	}
}

func (s *Session) Board() *puzzle.Board {
	return s.board
}

func (s *Session) Controller() *puzzle.Controller {
	return s.ctrl
}

func (s *Session) Record() *timing.Record {
	return &s.record
}

func (s *Session) Difficulty() puzzle.Difficulty {
	return s.difficulty
}

// Ready reports whether a frame source has been attached.
func (s *Session) Ready() bool {
	return s.attached
}

// Attach is called once the frame source delivered its first frame. It lays out
// a solved board and shows the menu.
func (s *Session) Attach(frameW, frameH, viewW, viewH int) {
	s.frame = geom.Sz(frameW, frameH)
	s.viewport = geom.Sz(viewW, viewH)
	s.attached = true
	s.layout()
	s.display.ShowMenu(true)
	s.display.ShowTimer(false)
	s.display.ShowCongrats(false, "")
	s.log.Infof("frame source attached: %dx%d, viewport %dx%d", frameW, frameH, viewW, viewH)
}

// Resize lays the board out again for a new viewport. Piece placement is lost,
// the timing record is kept.
func (s *Session) Resize(viewW, viewH int) {
	vp := geom.Sz(viewW, viewH)
	if vp == s.viewport {
		return
	}
	s.viewport = vp
	if !s.attached {
		return
	}
	s.layout()
	s.log.Debugf("viewport resized to %dx%d", viewW, viewH)
}

// SetFrameSize follows a frame source whose dimensions changed.
func (s *Session) SetFrameSize(frameW, frameH int) {
	fs := geom.Sz(frameW, frameH)
	if fs == s.frame || fs.Empty() {
		return
	}
	s.frame = fs
	if s.attached {
		s.layout()
	}
}

// SetDifficulty switches the grid preset and lays out a solved board.
func (s *Session) SetDifficulty(d puzzle.Difficulty) {
	s.difficulty = d
	if s.attached {
		s.layout()
	}
	s.log.Infof("difficulty set to %s", d)
}

func (s *Session) layout() {
	rows, cols := s.difficulty.Grid()
	s.ctrl.Reset()
	s.board.Layout(s.viewport, s.frame, s.shrink, rows, cols)
}

// Restart starts a new timed attempt on a scrambled board.
func (s *Session) Restart() {
	if !s.attached {
		return
	}
	s.record.Start(s.clock.Now())
	s.ctrl.Reset()
	s.board.Randomize(s.viewport, s.rng)
	s.display.ShowMenu(false)
	s.display.ShowCongrats(false, "")
	s.display.ShowTimer(true)
	s.log.Infof("attempt started: %s, %d pieces", s.difficulty, s.board.Pieces.Len())
}

// Dispatch feeds one input event to the controller and runs the completion check
// after a placement.
func (s *Session) Dispatch(ev puzzle.Event) puzzle.Result {
	if !s.attached {
		return puzzle.Result{}
	}
	res := s.ctrl.Dispatch(ev)
	if res.Placed != nil {
		s.log.Debugf("%s placed, %d/%d", res.Placed, s.board.CorrectCount(), s.board.Pieces.Len())
		s.CheckComplete()
	}
	return res
}

// CheckComplete freezes the timer the first time the board is complete within an
// attempt and reports whether it did so now.
func (s *Session) CheckComplete() bool {
	if !s.board.IsComplete() {
		return false
	}
	if !s.record.Finish(s.clock.Now()) {
		return false
	}
	final := s.ElapsedText()
	s.display.ShowMenu(true)
	s.display.ShowTimer(false)
	s.display.ShowCongrats(true, final)
	s.log.Infof("puzzle complete in %s", final)
	return true
}

// ElapsedText is the formatted attempt time, empty before the first start.
func (s *Session) ElapsedText() string {
	d, ok := s.record.Elapsed(s.clock.Now())
	if !ok {
		return ""
	}
	return timing.FormatDuration(d)
}
