package puzzle

import "jigcam/src/geom"

// ---- Events ----

type EventKind int

const (
	EventPress EventKind = iota
	EventMove
	EventRelease
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	default:
	}
	return "unknown"
}

// Event is a normalized pointer event. At is unused for EventRelease.
type Event struct {
	Kind EventKind
	At   geom.Point
}

func Press(x, y float64) Event {
	return Event{Kind: EventPress, At: geom.Pt(x, y)}
}

func Move(x, y float64) Event {
	return Event{Kind: EventMove, At: geom.Pt(x, y)}
}

func Release() Event {
	return Event{Kind: EventRelease}
}

// ---- Controller ----

type State int

const (
	Idle State = iota
	Dragging
)

// Result describes what a dispatched event changed.
type Result struct {
	Picked *Piece // set on a press that selected a piece
	Placed *Piece // set on a release that snapped the piece into place
}

type Controller struct {
	board    *Board
	selected *Piece
}

func NewController(b *Board) *Controller {
	return &Controller{board: b}
}

func (c *Controller) State() State {
	if c.selected != nil {
		return Dragging
	}
	return Idle
}

func (c *Controller) Selected() *Piece {
	return c.selected
}

// Reset drops any selection, used when the board is laid out again.
func (c *Controller) Reset() {
	c.selected = nil
}

func (c *Controller) Dispatch(ev Event) Result {
	switch ev.Kind {
	case EventPress:
		return c.press(ev.At)
	case EventMove:
		c.move(ev.At)
	case EventRelease:
		return c.release()
	}
	return Result{}
}

func (c *Controller) press(at geom.Point) Result {
	p := c.board.Pieces.TopmostAt(at)
	if p == nil {
		return Result{}
	}
	c.selected = p
	c.board.Pieces.MoveToTop(p)
	p.offset = at.Sub(p.Pos())
	p.Correct = false
	return Result{Picked: p}
}

func (c *Controller) move(at geom.Point) {
	if c.selected == nil {
		return
	}
	c.selected.MoveTo(at.Sub(c.selected.offset))
}

func (c *Controller) release() Result {
	p := c.selected
	c.selected = nil
	if p == nil {
		return Result{}
	}
	p.offset = geom.Point{}
	if !p.IsClose() {
		return Result{}
	}
	p.Snap()
	c.board.Pieces.MoveToBottom(p)
	return Result{Placed: p}
}
