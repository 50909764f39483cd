package schedule

import (
	"time"
)

// TimerID identifies a scheduled callback.
type TimerID uint64

// Scheduler runs callbacks after a delay measured on its own clock.
type Scheduler interface {
	// After schedules fn to run once delay has elapsed.
	After(delay time.Duration, fn func()) TimerID
	// Cancel removes a pending callback. It reports whether the callback was pending.
	Cancel(id TimerID) bool
}

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// TickScheduler is a Scheduler whose clock only moves when Advance is called.
// The frame loop advances it by one tick per update; tests advance it directly.
// It is not safe for concurrent use.
type TickScheduler struct {
	now    time.Duration
	nextID TimerID
	timers []*timer
}

var _ Scheduler = &TickScheduler{}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{
		timers: make([]*timer, 0),
	}
}

// Now returns the elapsed time on the scheduler clock.
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

func (s *TickScheduler) After(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.timers = append(s.timers, &timer{
		id:  s.nextID,
		due: s.now + delay,
		fn:  fn,
	})
	return s.nextID
}

func (s *TickScheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of callbacks waiting to run.
func (s *TickScheduler) Pending() int {
	return len(s.timers)
}

// Advance moves the clock forward by dt and runs every callback that falls due,
// in due order (ties in scheduling order). Callbacks scheduled while advancing
// run in the same call if they fall due before the new time.
// It returns the number of callbacks run.
func (s *TickScheduler) Advance(dt time.Duration) int {
	target := s.now + dt
	fired := 0
	for {
		idx := s.nextDue(target)
		if idx < 0 {
			break
		}
		t := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		s.now = t.due
		t.fn()
		fired++
	}
	s.now = target
	return fired
}

// RunUntilIdle advances in steps of step until no callbacks are pending or
// maxSteps steps have elapsed. It returns the number of callbacks run.
func (s *TickScheduler) RunUntilIdle(step time.Duration, maxSteps int) int {
	fired := 0
	for i := 0; i < maxSteps && len(s.timers) > 0; i++ {
		fired += s.Advance(step)
	}
	return fired
}

func (s *TickScheduler) nextDue(target time.Duration) int {
	idx := -1
	for i, t := range s.timers {
		if t.due > target {
			continue
		}
		if idx < 0 || t.due < s.timers[idx].due || (t.due == s.timers[idx].due && t.id < s.timers[idx].id) {
			idx = i
		}
	}
	return idx
}
