package ui

import (
	"context"
	"time"
)

// Widget is the lifecycle contract every stacked element satisfies.
// Paint renders the widget, Show is called once when the widget reaches the
// stack, Close releases whatever the widget holds. None of the three may be
// called from outside the loop's goroutine.
type Widget interface {
	Paint()
	Show()
	Close()
}

type timedTask struct {
	due time.Time
	fn  func()
}

// Loop is a single-threaded cooperative scheduler with a widget stack.
// All methods must be called from the goroutine that drives RunOnce/Run;
// tasks scheduled during an iteration run in a later iteration, never
// recursively inside the current one.
type Loop struct {
	idle  []func()
	timed []timedTask
	stack []Widget

	dirty     bool
	markDirty func() // repaint-request primitive, transiently overridable
	now       func() time.Time
}

// NewLoop returns an empty loop with nothing scheduled.
func NewLoop() *Loop {
	l := &Loop{now: time.Now}
	l.markDirty = func() { l.dirty = true }
	return l
}

// ScheduleNextIdle queues fn to run on the next idle slot of the loop.
// It never runs fn inline.
func (l *Loop) ScheduleNextIdle(fn func()) {
	if fn == nil {
		return
	}
	l.idle = append(l.idle, fn)
}

// ScheduleAfter queues fn to run once at least d has elapsed.
func (l *Loop) ScheduleAfter(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	l.timed = append(l.timed, timedTask{due: l.now().Add(d), fn: fn})
}

// Show pushes w onto the widget stack, requests a repaint, and calls w.Show.
func (l *Loop) Show(w Widget) {
	if w == nil {
		return
	}
	l.stack = append(l.stack, w)
	l.markDirty()
	w.Show()
}

// CloseWidget removes w from the stack (wherever it sits), calls its Close
// hook, and requests a repaint through the current dirty-marking primitive.
// Unknown widgets are ignored.
func (l *Loop) CloseWidget(w Widget) {
	for i := len(l.stack) - 1; i >= 0; i-- {
		if l.stack[i] == w {
			l.stack = append(l.stack[:i], l.stack[i+1:]...)
			w.Close()
			l.markDirty()
			return
		}
	}
}

// SuppressRepaint runs fn with the dirty-marking primitive replaced by a
// no-op, restoring the original on every exit path including panics. The
// override is scoped to fn; removals performed outside the call are not
// affected.
func (l *Loop) SuppressRepaint(fn func()) {
	prev := l.markDirty
	l.markDirty = func() {}
	defer func() { l.markDirty = prev }()
	fn()
}

// RunOnce executes all currently due timed tasks and the idle tasks queued
// before this call. It returns true if it ran anything. Tasks queued while
// running are left for the next iteration.
func (l *Loop) RunOnce() bool {
	ran := false

	now := l.now()
	remaining := l.timed[:0]
	due := make([]func(), 0, len(l.timed))
	for _, t := range l.timed {
		if !t.due.After(now) {
			due = append(due, t.fn)
		} else {
			remaining = append(remaining, t)
		}
	}
	l.timed = remaining

	batch := l.idle
	l.idle = nil

	for _, fn := range due {
		fn()
		ran = true
	}
	for _, fn := range batch {
		fn()
		ran = true
	}
	return ran
}

// Drain runs iterations until no immediately runnable work remains.
// Timed tasks that are not yet due stay queued.
func (l *Loop) Drain() {
	for l.RunOnce() {
	}
}

// Run drives the loop until ctx is done, sleeping briefly between empty
// iterations. Intended for demos and hosts without their own pump.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !l.RunOnce() {
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// Depth reports the number of stacked widgets.
func (l *Loop) Depth() int { return len(l.stack) }

// Pending reports how many tasks (idle and timed) are queued.
func (l *Loop) Pending() int { return len(l.idle) + len(l.timed) }

// Dirty reports whether a repaint has been requested since the last
// ResetDirty.
func (l *Loop) Dirty() bool { return l.dirty }

// ResetDirty clears the repaint request flag.
func (l *Loop) ResetDirty() { l.dirty = false }
