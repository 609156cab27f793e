package scheduler

import (
	"sync/atomic"
	"time"
)

// Clock is the time source of the core
type Clock interface {
	Now() time.Time
}

// Task is the handle of one scheduled callback
type Task interface {
	// Cancel stops the task. It returns false if the task already fired
	// (one-shot) or was already cancelled.
	Cancel() bool
	Cancelled() bool
}

// Scheduler runs callbacks after a delay or periodically. Callbacks of one
// scheduler never run concurrently with each other.
type Scheduler interface {
	Clock
	After(d time.Duration, fn func()) Task
	Every(interval time.Duration, fn func()) Task
}

const (
	taskPending int32 = iota
	taskFired
	taskCancelled
)

type task struct {
	state    atomic.Int32
	periodic bool
	stop     func()
}

func (t *task) Cancel() bool {
	if !t.state.CompareAndSwap(taskPending, taskCancelled) {
		return false
	}
	if t.stop != nil {
		t.stop()
	}
	return true
}

func (t *task) Cancelled() bool {
	return t.state.Load() == taskCancelled
}

// claim reports whether the callback may run now
func (t *task) claim() bool {
	if t.periodic {
		return t.state.Load() == taskPending
	}
	return t.state.CompareAndSwap(taskPending, taskFired)
}
