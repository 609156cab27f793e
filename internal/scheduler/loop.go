package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Loop is the real-time scheduler. Timers and cron entries only enqueue
// events; Run executes them one at a time on its own goroutine.
type Loop struct {
	cron   *cron.Cron
	events chan func()
	done   chan struct{}
	logger *slog.Logger
}

// NewLoop creates a scheduler loop with the given event buffer size
func NewLoop(logger *slog.Logger, buffer int) *Loop {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))

	return &Loop{
		cron:   cron.New(cron.WithChain(cron.Recover(cronLogger))),
		events: make(chan func(), buffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Now returns the wall clock time
func (l *Loop) Now() time.Time {
	return time.Now()
}

// After runs fn once, d from now
func (l *Loop) After(d time.Duration, fn func()) Task {
	t := &task{}
	timer := time.AfterFunc(d, func() { l.post(t, fn) })
	t.stop = func() { timer.Stop() }
	return t
}

// Every runs fn every interval until the task is cancelled. The first run is
// one interval from now.
func (l *Loop) Every(interval time.Duration, fn func()) Task {
	t := &task{periodic: true}
	id := l.cron.Schedule(fixedDelay{interval: interval}, cron.FuncJob(func() { l.post(t, fn) }))
	t.stop = func() { l.cron.Remove(id) }
	return t
}

// Run dispatches events until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("starting scheduler loop")
	l.cron.Start()
	defer func() {
		close(l.done)
		<-l.cron.Stop().Done()
		l.logger.Info("scheduler loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-l.events:
			l.dispatch(event)
		}
	}
}

func (l *Loop) post(t *task, fn func()) {
	select {
	case l.events <- func() {
		if t.claim() {
			fn()
		}
	}:
	case <-l.done:
	}
}

func (l *Loop) dispatch(event func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("scheduled callback panicked", slog.Any("panic", r))
		}
	}()
	event()
}

// fixedDelay is a cron schedule that fires every interval without rounding
// to whole seconds
type fixedDelay struct {
	interval time.Duration
}

func (s fixedDelay) Next(t time.Time) time.Time {
	return t.Add(s.interval)
}
