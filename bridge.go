package inkbridge

import (
	"log/slog"
	"time"

	"github.com/crafted-tech/inkbridge/platform"
	"github.com/crafted-tech/inkbridge/ui"
)

// Bridge owns the native-dialog state machine for one host loop. A single
// Bridge lives for the whole process; all of its methods must be called from
// the loop's goroutine.
type Bridge struct {
	loop           *ui.Loop
	native         platform.Native
	state          bridgeState
	log            *slog.Logger
	syncShow       bool
	defaultTimeout time.Duration
}

// New probes the native dialog API and returns a Bridge bound to loop.
// Probe failure is fail-soft: the returned Bridge simply never intercepts,
// and the condition is logged once. New must be called before the loop
// starts running so the readiness latch lands on the loop's first idle slot.
func New(loop *ui.Loop, opts ...Option) *Bridge {
	cfg := defaultBridgeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	b := &Bridge{
		loop:           loop,
		log:            cfg.logger,
		syncShow:       cfg.syncShow,
		defaultTimeout: cfg.defaultTimeout,
	}

	settings := Settings{}
	if cfg.settings != nil {
		settings = *cfg.settings
	} else {
		settings = LoadSettings()
	}
	if !settings.UseNativeDialogs {
		b.log.Info("native dialogs disabled by settings")
		return b
	}

	native := cfg.native
	if native == nil {
		probed, err := cfg.probe()
		if err != nil {
			// Permanent pass-through for this process run; never retried.
			b.log.Info("native dialogs unavailable", "err", err)
			return b
		}
		native = probed
	}

	b.native = native
	b.state.available = true

	// One-shot readiness latch: a blocking native call is only safe after
	// the cooperative loop has completed at least one iteration.
	loop.ScheduleNextIdle(func() { b.state.loopReady = true })

	return b
}

// Available reports whether the native API was bound at startup.
func (b *Bridge) Available() bool { return b.state.available }

// WrapInfo wraps the host's informational dialog construction path. The
// returned builder redirects to the native API when a request carries
// non-empty text and the bridge is safe to invoke; otherwise it delegates to
// orig unchanged. The outcome is fixed per request at construction time.
func (b *Bridge) WrapInfo(orig ui.InfoBuilder) ui.InfoBuilder {
	return func(l *ui.Loop, o ui.InfoOptions) ui.Widget {
		if o.Text == "" || !b.state.safeToInvoke() {
			b.log.Debug("info dialog falling back to host path",
				"available", b.state.available,
				"loopReady", b.state.loopReady,
				"inFlight", b.state.dialogInFlight)
			return orig(l, o)
		}
		return newAdapterWidget(b, infoRequest(o, b.defaultTimeout))
	}
}

// WrapConfirm wraps the host's confirmation dialog construction path with
// the same per-request decision as WrapInfo. Requests with more than one
// alternate button exceed the native three-button surface and always fall
// back.
func (b *Bridge) WrapConfirm(orig ui.ConfirmBuilder) ui.ConfirmBuilder {
	return func(l *ui.Loop, o ui.ConfirmOptions) ui.Widget {
		if o.Text == "" || len(o.Other) > 1 || !b.state.safeToInvoke() {
			b.log.Debug("confirm dialog falling back to host path",
				"available", b.state.available,
				"loopReady", b.state.loopReady,
				"inFlight", b.state.dialogInFlight,
				"extraButtons", len(o.Other))
			return orig(l, o)
		}
		return newAdapterWidget(b, confirmRequest(o))
	}
}
