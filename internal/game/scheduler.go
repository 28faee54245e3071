package game

import (
	"slices"
	"time"
)

// loopScheduler runs repeating jobs from the game loop. Jobs only fire
// when poll is called, so they run on the same goroutine as Update and
// never race with drawing.
type loopScheduler struct {
	now    func() time.Time
	nextID int
	jobs   map[int]*job
}

type job struct {
	every time.Duration
	next  time.Time
	fn    func()
}

func newLoopScheduler(now func() time.Time) *loopScheduler {
	if now == nil {
		now = time.Now
	}
	return &loopScheduler{
		now:  now,
		jobs: map[int]*job{},
	}
}

// Every implements clockface.Scheduler.
func (s *loopScheduler) Every(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.jobs[id] = &job{every: d, next: s.now().Add(d), fn: fn}
	return func() { delete(s.jobs, id) }
}

// poll fires every job that is due. A job that fell behind by more than
// one interval fires once and is rescheduled from now.
func (s *loopScheduler) poll() {
	now := s.now()

	ids := make([]int, 0, len(s.jobs))
	for id := range s.jobs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		j, ok := s.jobs[id]
		if !ok || now.Before(j.next) {
			continue // cancelled by an earlier job, or not due
		}
		j.next = j.next.Add(j.every)
		if !j.next.After(now) {
			j.next = now.Add(j.every)
		}
		j.fn()
	}
}

func (s *loopScheduler) pending() int { return len(s.jobs) }
