package inkbridge

// bridgeState is the process-wide bookkeeping for one Bridge. It is only
// ever touched from the host loop's goroutine, so no locking is needed,
// just disciplined update ordering around the native call.
type bridgeState struct {
	// available is decided once by the capability probe (and the settings
	// toggle) and never changes afterwards.
	available bool

	// loopReady latches true on the loop's first idle slot after the bridge
	// initializes and never reverts. A blocking native call issued before
	// the loop has completed a pass can reenter half-built loop state.
	loopReady bool

	// dialogInFlight is true exactly while a native call is blocking the
	// loop thread. At most one dialog may be in flight; a request arriving
	// meanwhile must fall back, never queue.
	dialogInFlight bool
}

// safeToInvoke reports whether a native call may be issued right now.
// It must be re-evaluated per request, never cached.
func (s *bridgeState) safeToInvoke() bool {
	return s.available && s.loopReady && !s.dialogInFlight
}
