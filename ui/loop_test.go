package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordWidget struct {
	shown  int
	closed int
}

func (w *recordWidget) Paint() {}
func (w *recordWidget) Show()  { w.shown++ }
func (w *recordWidget) Close() { w.closed++ }

func TestScheduleNextIdleNeverRunsInline(t *testing.T) {
	l := NewLoop()
	ran := false
	l.ScheduleNextIdle(func() { ran = true })
	assert.False(t, ran)

	assert.True(t, l.RunOnce())
	assert.True(t, ran)
}

func TestTasksQueuedDuringRunWaitForNextIteration(t *testing.T) {
	l := NewLoop()
	var order []string
	l.ScheduleNextIdle(func() {
		order = append(order, "first")
		l.ScheduleNextIdle(func() { order = append(order, "second") })
	})

	l.RunOnce()
	assert.Equal(t, []string{"first"}, order)
	l.RunOnce()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestScheduleAfterHonorsDelay(t *testing.T) {
	l := NewLoop()
	clock := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	fired := false
	l.ScheduleAfter(time.Second, func() { fired = true })

	l.RunOnce()
	assert.False(t, fired)

	clock = clock.Add(999 * time.Millisecond)
	l.RunOnce()
	assert.False(t, fired)

	clock = clock.Add(time.Millisecond)
	l.RunOnce()
	assert.True(t, fired)
}

func TestShowPushesAndCallsHook(t *testing.T) {
	l := NewLoop()
	w := &recordWidget{}

	l.Show(w)
	assert.Equal(t, 1, l.Depth())
	assert.Equal(t, 1, w.shown)
	assert.True(t, l.Dirty())
}

func TestCloseWidgetRemovesAndMarksDirty(t *testing.T) {
	l := NewLoop()
	a, b := &recordWidget{}, &recordWidget{}
	l.Show(a)
	l.Show(b)
	l.ResetDirty()

	l.CloseWidget(a)
	assert.Equal(t, 1, l.Depth())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 0, b.closed)
	assert.True(t, l.Dirty())

	// Closing an already-removed widget is a no-op.
	l.CloseWidget(a)
	assert.Equal(t, 1, a.closed)
}

func TestSuppressRepaintScopesTheOverride(t *testing.T) {
	l := NewLoop()
	w := &recordWidget{}
	l.Show(w)
	l.ResetDirty()

	l.SuppressRepaint(func() {
		l.CloseWidget(w)
	})
	assert.Equal(t, 1, w.closed)
	assert.False(t, l.Dirty(), "suppressed close must not mark dirty")

	// The primitive is restored after the scope ends.
	l.Show(&recordWidget{})
	assert.True(t, l.Dirty())
}

func TestSuppressRepaintRestoresAfterPanic(t *testing.T) {
	l := NewLoop()

	require.Panics(t, func() {
		l.SuppressRepaint(func() { panic("inside") })
	})

	l.Show(&recordWidget{})
	assert.True(t, l.Dirty())
}

func TestDrainStopsAtUndueTimers(t *testing.T) {
	l := NewLoop()
	clock := time.Now()
	l.now = func() time.Time { return clock }

	idleRan := false
	l.ScheduleNextIdle(func() { idleRan = true })
	l.ScheduleAfter(time.Minute, func() {})

	l.Drain()
	assert.True(t, idleRan)
	assert.Equal(t, 1, l.Pending(), "future timer stays queued")
}
