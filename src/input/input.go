// Package input turns polled mouse and touch state into puzzle events.
package input

import (
	"jigcam/src/geom"
	"jigcam/src/puzzle"
)

type Touch struct {
	ID  int
	Pos geom.Point
}

// Snapshot is the pointer state read once per tick.
type Snapshot struct {
	Cursor    geom.Point
	MouseDown bool

	Touches      []Touch // currently held
	JustPressed  []int   // touch ids pressed this tick
	JustReleased []int   // touch ids released this tick
}

func (s Snapshot) touch(id int) (geom.Point, bool) {
	for _, t := range s.Touches {
		if t.ID == id {
			return t.Pos, true
		}
	}
	return geom.Point{}, false
}

const noTouch = -1

// Tracker follows the mouse and one primary touch between ticks.
type Tracker struct {
	prevMouseDown bool
	prevCursor    geom.Point
	primary       int
	primaryPos    geom.Point
}

func NewTracker() *Tracker {
	return &Tracker{primary: noTouch}
}

// Touching reports whether a primary touch is being followed.
func (t *Tracker) Touching() bool {
	return t.primary != noTouch
}

func (t *Tracker) Update(s Snapshot) []puzzle.Event {
	var evs []puzzle.Event
	evs = t.touches(s, evs)
	evs = t.mouse(s, evs)
	return evs
}

func (t *Tracker) touches(s Snapshot, evs []puzzle.Event) []puzzle.Event {
	if t.primary != noTouch {
		for _, id := range s.JustReleased {
			if id == t.primary {
				t.primary = noTouch
				return append(evs, puzzle.Release())
			}
		}
		pos, ok := s.touch(t.primary)
		if !ok {
			// lost without a release notification
			t.primary = noTouch
			return append(evs, puzzle.Release())
		}
		if pos != t.primaryPos {
			t.primaryPos = pos
			evs = append(evs, puzzle.Move(pos.X, pos.Y))
		}
		return evs
	}
	for _, id := range s.JustPressed {
		pos, ok := s.touch(id)
		if !ok {
			continue
		}
		t.primary = id
		t.primaryPos = pos
		return append(evs, puzzle.Press(pos.X, pos.Y))
	}
	return evs
}

func (t *Tracker) mouse(s Snapshot, evs []puzzle.Event) []puzzle.Event {
	justPressed := s.MouseDown && !t.prevMouseDown
	justReleased := !s.MouseDown && t.prevMouseDown
	moved := s.Cursor != t.prevCursor
	t.prevMouseDown = s.MouseDown
	t.prevCursor = s.Cursor

	if t.primary != noTouch {
		return evs
	}
	if justPressed {
		evs = append(evs, puzzle.Press(s.Cursor.X, s.Cursor.Y))
	} else if moved {
		evs = append(evs, puzzle.Move(s.Cursor.X, s.Cursor.Y))
	}
	if justReleased {
		evs = append(evs, puzzle.Release())
	}
	return evs
}
