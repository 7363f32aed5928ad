package engine

import (
	"time"

	"github.com/lixenwraith/pyramid-smash/core"
)

type scheduledTask struct {
	due time.Duration
	seq uint64
	fn  func()
}

// TaskScheduler runs one-shot tasks keyed by entity after a delay of loop time
// Each key holds at most one task; scheduling again replaces it
// Not safe for concurrent use; tasks run on the goroutine calling Advance
type TaskScheduler struct {
	now   time.Duration
	seq   uint64
	tasks map[core.Entity]*scheduledTask
}

// NewTaskScheduler creates an empty scheduler at time zero
func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{
		tasks: make(map[core.Entity]*scheduledTask),
	}
}

// Schedule arranges fn to run once delay has elapsed, replacing any task for key
func (s *TaskScheduler) Schedule(key core.Entity, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.tasks[key] = &scheduledTask{due: s.now + delay, seq: s.seq, fn: fn}
}

// Cancel drops the task for key, reporting whether one was pending
func (s *TaskScheduler) Cancel(key core.Entity) bool {
	if _, ok := s.tasks[key]; !ok {
		return false
	}
	delete(s.tasks, key)
	return true
}

// CancelAll drops every pending task and returns how many were dropped
func (s *TaskScheduler) CancelAll() int {
	n := len(s.tasks)
	clear(s.tasks)
	return n
}

// Pending reports whether key has a task waiting
func (s *TaskScheduler) Pending(key core.Entity) bool {
	_, ok := s.tasks[key]
	return ok
}

// Len returns the number of pending tasks
func (s *TaskScheduler) Len() int {
	return len(s.tasks)
}

// Now returns the scheduler's elapsed time
func (s *TaskScheduler) Now() time.Duration {
	return s.now
}

// Advance moves time forward by dt and runs every task now due, earliest first
// A task may schedule or cancel others; a cancelled task does not run
func (s *TaskScheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for {
		key, task, ok := s.nextDue()
		if !ok {
			return ran
		}
		delete(s.tasks, key)
		task.fn()
		ran++
	}
}

func (s *TaskScheduler) nextDue() (core.Entity, *scheduledTask, bool) {
	var (
		bestKey core.Entity
		best    *scheduledTask
	)
	for key, t := range s.tasks {
		if t.due > s.now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			bestKey, best = key, t
		}
	}
	return bestKey, best, best != nil
}
