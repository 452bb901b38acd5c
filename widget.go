package inkbridge

import "github.com/crafted-tech/inkbridge/platform"

// adapterWidget is the placeholder the bridge hands back to the host's
// construction path. It satisfies the host's widget lifecycle while the real
// interaction happens in the native layer: Paint draws nothing, Show triggers
// the native call, Close releases nothing.
type adapterWidget struct {
	bridge *Bridge
	req    request
	closed bool
}

func newAdapterWidget(b *Bridge, req request) *adapterWidget {
	return &adapterWidget{bridge: b, req: req}
}

// Paint renders nothing. The native layer owns the pixels while the dialog
// is up.
func (w *adapterWidget) Paint() {}

// Show triggers the native interaction. In the default deferred mode the
// blocking call lands on the loop's next idle slot, so the show pass that
// stacked this widget finishes first. Synchronous mode runs it inline for
// hosts whose show path is already an idle task.
func (w *adapterWidget) Show() {
	if w.bridge.syncShow {
		w.run()
		return
	}
	w.bridge.loop.ScheduleNextIdle(w.run)
}

// Close releases nothing; the flag only guards against a second removal.
func (w *adapterWidget) Close() {
	w.closed = true
}

// run performs the native call, dispatches the outcome, and retires the
// widget. It executes on the loop goroutine.
func (w *adapterWidget) run() {
	b := w.bridge
	switch w.req.kind {
	case KindInfo:
		if err := b.invokeMessage(w.req); err != nil {
			b.log.Error("native message failed", "err", err)
		} else {
			// The message auto-dismisses on its own; the dismiss callback
			// fires as soon as the call returns.
			b.dispatch(platform.ResultAffirmative, w.req)
		}
	case KindConfirm:
		result, err := b.invokeDialog(w.req)
		if err != nil {
			b.log.Error("native dialog failed", "err", err)
		} else {
			b.dispatch(result, w.req)
		}
	}
	w.closeSilently()
}

// closeSilently removes the widget from the stack without marking the screen
// dirty. Nothing was ever painted, so a repaint would only flash the
// underlying view. The closed flag guarantees exactly one removal even if a
// callback closed the widget itself.
func (w *adapterWidget) closeSilently() {
	if w.closed {
		return
	}
	w.bridge.loop.SuppressRepaint(func() {
		w.bridge.loop.CloseWidget(w)
	})
}
