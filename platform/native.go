package platform

import "errors"

// Icon selects the symbol the native renderer draws next to the text.
// The numeric values are part of the SDK contract and must not change.
type Icon int

const (
	IconInfo     Icon = 1
	IconQuestion Icon = 2
	IconWarning  Icon = 3
	IconError    Icon = 4
)

// Dialog result positions, as returned by ShowDialog.
const (
	ResultCancel      = 1 // negative/cancel screen position
	ResultAffirmative = 2 // affirmative/OK screen position
	ResultAlternate   = 3 // optional third action
)

// ErrUnavailable reports that the native dialog API cannot be bound on this
// device or platform. It is a permanent condition for the process.
var ErrUnavailable = errors.New("native dialog API unavailable")

// Native is the resolved handle set for the device's dialog entry points.
// Both calls run on the caller's thread; ShowDialog blocks until the user
// responds.
type Native interface {
	// ShowMessage displays an auto-dismissing message for timeoutMs
	// milliseconds and returns without waiting for the dismissal.
	ShowMessage(icon Icon, title, body string, timeoutMs int)

	// ShowDialog displays a modal dialog with up to three buttons and
	// blocks until one is chosen. Empty button strings mean the button is
	// absent. The return value is the 1-based button position.
	ShowDialog(icon Icon, title, body, button1, button2, button3 string) (int, error)
}

func clampIcon(icon Icon) Icon {
	if icon < IconInfo || icon > IconError {
		return IconInfo
	}
	return icon
}
