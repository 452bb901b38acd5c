package inkbridge

import (
	"errors"
	"fmt"

	"github.com/crafted-tech/inkbridge/platform"
)

// ErrNativeCall reports that the native entry point itself faulted. The
// fault is contained here; it never unwinds into the host loop.
var ErrNativeCall = errors.New("native dialog call failed")

// invokeMessage performs the fire-and-forget native message call for an
// informational request.
func (b *Bridge) invokeMessage(req request) (err error) {
	b.state.dialogInFlight = true
	defer func() {
		// Clearing the guard comes before anything else: a failure path
		// that forgets it would permanently disable the bridge.
		b.state.dialogInFlight = false
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrNativeCall, r)
		}
	}()

	b.native.ShowMessage(
		req.icon,
		Sanitize(req.title),
		Sanitize(req.text),
		int(req.timeout.Milliseconds()),
	)
	return nil
}

// invokeDialog performs the blocking native dialog call for a confirmation
// request and returns the 1-based button position the user chose.
func (b *Bridge) invokeDialog(req request) (result int, err error) {
	b.state.dialogInFlight = true
	defer func() {
		b.state.dialogInFlight = false
		if r := recover(); r != nil {
			result = 0
			err = fmt.Errorf("%w: %v", ErrNativeCall, r)
		}
	}()

	result, callErr := b.native.ShowDialog(
		req.icon,
		Sanitize(req.title),
		Sanitize(req.text),
		Sanitize(req.buttons[0].label),
		Sanitize(req.buttons[1].label),
		Sanitize(req.buttons[2].label),
	)
	if callErr != nil {
		return 0, fmt.Errorf("%w: %v", ErrNativeCall, callErr)
	}
	if result < platform.ResultCancel || result > platform.ResultAlternate {
		return 0, fmt.Errorf("%w: result %d out of range", ErrNativeCall, result)
	}
	return result, nil
}
