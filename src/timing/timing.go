package timing

import (
	"fmt"
	"time"
)

// ---- Clock ----

type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock with its monotonic component.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

func (c *ManualClock) Set(t time.Time) {
	c.now = t
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// ---- Record ----

// Record keeps the start and end of one attempt. The end is written once.
type Record struct {
	start, end time.Time
	started    bool
	finished   bool
}

func (r *Record) Start(now time.Time) {
	r.start = now
	r.started = true
	r.end = time.Time{}
	r.finished = false
}

// Finish stores the end time unless one is already set; it reports whether it did.
func (r *Record) Finish(now time.Time) bool {
	if !r.started || r.finished {
		return false
	}
	r.end = now
	r.finished = true
	return true
}

func (r *Record) Started() bool {
	return r.started
}

func (r *Record) Finished() bool {
	return r.finished
}

func (r *Record) StartedAt() time.Time {
	return r.start
}

func (r *Record) EndedAt() time.Time {
	return r.end
}

// Elapsed is end-start once finished, now-start while running.
func (r *Record) Elapsed(now time.Time) (time.Duration, bool) {
	if !r.started {
		return 0, false
	}
	if r.finished {
		return r.end.Sub(r.start), true
	}
	return now.Sub(r.start), true
}

// ---- Formatting ----

// FormatTime renders milliseconds as HH:MM:SS, hours wrap at 24.
func FormatTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds := ms / 1000
	s := seconds % 60
	m := (seconds % (60 * 60)) / 60
	h := (seconds % (60 * 60 * 24)) / (60 * 60)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func FormatDuration(d time.Duration) string {
	return FormatTime(d.Milliseconds())
}
