// Package gametest provides deterministic collaborators for engine tests.
package gametest

import (
	"sort"
	"time"
)

// Scheduler queues callbacks until the test advances time.
type Scheduler struct {
	now     time.Duration
	seq     int
	pending []task
}

type task struct {
	at  time.Duration
	seq int
	fn  func()
}

// After records fn to run once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, task{at: s.now + d, seq: s.seq, fn: fn})
}

// Pending reports how many callbacks have not fired yet.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Advance moves the clock forward by d, running due callbacks in order.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		sort.SliceStable(s.pending, func(i, j int) bool {
			if s.pending[i].at != s.pending[j].at {
				return s.pending[i].at < s.pending[j].at
			}
			return s.pending[i].seq < s.pending[j].seq
		})
		if len(s.pending) == 0 || s.pending[0].at > target {
			break
		}
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.now = t.at
		t.fn()
	}
	s.now = target
}

// Flush runs every pending callback, including ones scheduled while flushing.
func (s *Scheduler) Flush() {
	for len(s.pending) > 0 {
		s.Advance(time.Hour)
	}
}

// Rand replays scripted values; each IntN(n) returns the next value mod n.
// Once the script runs out it returns 0.
type Rand struct {
	Values []int
}

// Seq returns a Rand that replays values.
func Seq(values ...int) *Rand {
	return &Rand{Values: values}
}

func (r *Rand) IntN(n int) int {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[0]
	r.Values = r.Values[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}
