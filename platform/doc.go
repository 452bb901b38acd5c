// Package platform binds the device's native dialog entry points.
//
// The package exposes exactly two operations, with fixed signatures dictated
// by the device SDK:
//
//   - ShowMessage(icon, title, body, timeoutMs): fire-and-forget message that
//     the firmware dismisses on its own after timeoutMs.
//   - ShowDialog(icon, title, body, b1, b2, b3) -> 1..3: modal dialog that
//     blocks the calling thread until the user picks a button. Button 1 is
//     the negative/cancel screen position, button 2 the affirmative one,
//     button 3 an optional alternate; absent buttons are passed empty.
//
// Probe resolves the entry points once at startup. It is fail-soft: when the
// SDK library or its symbols are missing, Probe returns ErrUnavailable and
// the caller is expected to keep using its own rendering path for the rest of
// the process lifetime.
//
// Backends: e-ink devices load libinkview.so through purego (no cgo); Windows
// builds (used for development on the desktop) map the same surface onto
// user32 MessageBoxW and the WScript.Shell Popup automation object. Other
// platforms report ErrUnavailable.
package platform
