package inkbridge

import "fmt"

// dispatch routes a native dialog result to the callback registered for that
// button position. Results arrive 1-based from the SDK; anything outside the
// request's registered buttons is ignored. Each callback runs at most once
// per request because the request itself is discarded after dispatch.
func (b *Bridge) dispatch(result int, req request) {
	idx := result - 1
	if idx < 0 || idx >= len(req.buttons) {
		return
	}
	b.safeCall(req.buttons[idx].fn)
}

// safeCall invokes a caller-supplied callback, containing any panic so that a
// faulty callback cannot stop the widget from being closed.
func (b *Bridge) safeCall(fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("dialog callback panicked", "err", fmt.Sprintf("%v", r))
		}
	}()
	fn()
}
