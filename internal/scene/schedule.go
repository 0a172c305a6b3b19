package scene

import "time"

// Task is a repeating callback whose interval is chosen afresh after every run.
type Task struct {
	remaining time.Duration
	next      func() time.Duration
	fn        func()
	canceled  bool
}

func (t *Task) Cancel() { t.canceled = true }

func (t *Task) Canceled() bool { return t.canceled }

// Scheduler runs timers in lockstep with Tick.
type Scheduler struct {
	tasks []*Task
}

// Every runs fn first after `first`, then after each interval returned by next.
// A non-positive interval cancels the task.
func (s *Scheduler) Every(first time.Duration, next func() time.Duration, fn func()) *Task {
	t := &Task{remaining: first, next: next, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock by dt, firing every due task (possibly more than once
// for a long frame) and dropping finished tasks.
func (s *Scheduler) Advance(dt time.Duration) {
	// Callbacks may schedule more work; only the tasks present now run this frame.
	due := s.tasks
	for _, t := range due {
		t.remaining -= dt
		for !t.canceled && t.remaining <= 0 {
			t.fn()
			interval := t.next()
			if interval <= 0 {
				t.canceled = true
				break
			}
			t.remaining += interval
		}
	}
	s.prune()
}

// Stop cancels everything; used when the session freezes.
func (s *Scheduler) Stop() {
	for _, t := range s.tasks {
		t.canceled = true
	}
	s.tasks = nil
}

func (s *Scheduler) Pending() int { return len(s.tasks) }

func (s *Scheduler) prune() {
	tasks := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.canceled {
			tasks = append(tasks, t)
		}
	}
	clear(s.tasks[len(tasks):])
	s.tasks = tasks
}
