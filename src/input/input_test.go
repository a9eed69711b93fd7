package input

import (
	"reflect"
	"testing"

	"jigcam/src/geom"
	"jigcam/src/puzzle"
)

func TestMouseSequence(t *testing.T) {
	tr := NewTracker()
	steps := []struct {
		snap Snapshot
		want []puzzle.Event
	}{
		{Snapshot{Cursor: geom.Pt(10, 10)}, []puzzle.Event{puzzle.Move(10, 10)}},
		{Snapshot{Cursor: geom.Pt(10, 10), MouseDown: true}, []puzzle.Event{puzzle.Press(10, 10)}},
		{Snapshot{Cursor: geom.Pt(10, 10), MouseDown: true}, nil},
		{Snapshot{Cursor: geom.Pt(20, 15), MouseDown: true}, []puzzle.Event{puzzle.Move(20, 15)}},
		{Snapshot{Cursor: geom.Pt(20, 15)}, []puzzle.Event{puzzle.Release()}},
	}
	for i, st := range steps {
		got := tr.Update(st.snap)
		if !reflect.DeepEqual(got, st.want) {
			t.Fatalf("step %d: events = %v, want %v", i, got, st.want)
		}
	}
}

func TestPrimaryTouch(t *testing.T) {
	tr := NewTracker()
	press := Snapshot{
		Touches:     []Touch{{ID: 3, Pos: geom.Pt(5, 6)}, {ID: 4, Pos: geom.Pt(50, 60)}},
		JustPressed: []int{3, 4},
	}
	if got := tr.Update(press); !reflect.DeepEqual(got, []puzzle.Event{puzzle.Press(5, 6)}) {
		t.Fatalf("press events = %v", got)
	}
	if !tr.Touching() {
		t.Fatalf("primary touch not tracked")
	}

	move := Snapshot{Touches: []Touch{{ID: 3, Pos: geom.Pt(7, 8)}, {ID: 4, Pos: geom.Pt(99, 99)}}}
	if got := tr.Update(move); !reflect.DeepEqual(got, []puzzle.Event{puzzle.Move(7, 8)}) {
		t.Fatalf("move events = %v", got)
	}

	// secondary touch release is ignored
	other := Snapshot{Touches: []Touch{{ID: 3, Pos: geom.Pt(7, 8)}}, JustReleased: []int{4}}
	if got := tr.Update(other); len(got) != 0 {
		t.Fatalf("secondary release produced %v", got)
	}

	end := Snapshot{JustReleased: []int{3}}
	if got := tr.Update(end); !reflect.DeepEqual(got, []puzzle.Event{puzzle.Release()}) {
		t.Fatalf("release events = %v", got)
	}
	if tr.Touching() {
		t.Fatalf("primary touch still tracked after release")
	}
}

func TestTouchLostWithoutRelease(t *testing.T) {
	tr := NewTracker()
	tr.Update(Snapshot{Touches: []Touch{{ID: 1, Pos: geom.Pt(1, 1)}}, JustPressed: []int{1}})
	if got := tr.Update(Snapshot{}); !reflect.DeepEqual(got, []puzzle.Event{puzzle.Release()}) {
		t.Fatalf("events = %v, want release", got)
	}
}
