// Package ui provides the cooperative event loop and widget lifecycle surface
// of the reader host. The loop runs queued tasks to completion one at a time
// on a single goroutine; widgets are stacked, painted top-down, and removed
// through the loop so repaint bookkeeping stays consistent.
//
// The package also carries the host's own (software-rendered) info and
// confirmation dialog widgets. These are the original construction path that
// the bridge in the root package falls back to whenever the native dialog API
// is unavailable or momentarily unsafe to call.
package ui
