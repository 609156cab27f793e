package scheduler

import (
	"sync"
	"time"
)

// Manual is a scheduler driven by Advance. Nothing fires on its own, which
// makes timer behaviour deterministic in tests.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	*task
	seq      uint64
	deadline time.Time
	interval time.Duration
	fn       func()
}

// NewManual creates a manual scheduler starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the simulated time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After runs fn once when the simulated time reaches now+d
func (m *Manual) After(d time.Duration, fn func()) Task {
	return m.add(d, 0, fn)
}

// Every runs fn each time the simulated time crosses another interval
func (m *Manual) Every(interval time.Duration, fn func()) Task {
	return m.add(interval, interval, fn)
}

func (m *Manual) add(d, interval time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{
		task:     &task{periodic: interval > 0},
		seq:      m.seq,
		deadline: m.now.Add(d),
		interval: interval,
		fn:       fn,
	}
	m.tasks = append(m.tasks, t)
	return t.task
}

// Advance moves the simulated time forward by d and runs every callback that
// comes due, in deadline order. Callbacks may schedule or cancel tasks.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}

		m.now = next.deadline
		if next.periodic {
			m.seq++
			next.seq = m.seq
			next.deadline = next.deadline.Add(next.interval)
		}

		m.mu.Unlock()
		if next.claim() {
			next.fn()
		}
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
}

// Pending returns the number of tasks that may still fire
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prune()
	return len(m.tasks)
}

// nextDue returns the earliest live task due at or before target. Ties go to
// the task scheduled first.
func (m *Manual) nextDue(target time.Time) *manualTask {
	m.prune()

	var next *manualTask
	for _, t := range m.tasks {
		if t.deadline.After(target) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) prune() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if t.state.Load() == taskPending {
			live = append(live, t)
		}
	}
	m.tasks = live
}
