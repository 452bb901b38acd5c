package inkbridge

import (
	"log/slog"
	"time"

	"github.com/crafted-tech/inkbridge/platform"
)

// DefaultMessageTimeout is the auto-dismiss delay used for informational
// dialogs whose caller did not specify one.
const DefaultMessageTimeout = 3 * time.Second

// config holds the construction-time configuration for a Bridge.
type config struct {
	logger         *slog.Logger
	native         platform.Native
	probe          func() (platform.Native, error)
	settings       *Settings
	syncShow       bool
	defaultTimeout time.Duration
}

// Option is a function that configures a Bridge.
type Option func(*config)

// WithLogger sets the logger the bridge reports through.
// If not called, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithNative injects an already-resolved native handle set, skipping the
// capability probe. Tests use this to substitute a fake SDK.
func WithNative(n platform.Native) Option {
	return func(c *config) {
		c.native = n
	}
}

// WithProbe replaces the capability probe used to resolve the native handle
// set. Tests use this to script probe failure.
func WithProbe(probe func() (platform.Native, error)) Option {
	return func(c *config) {
		c.probe = probe
	}
}

// WithSettings supplies settings instead of loading them at construction.
func WithSettings(s Settings) Option {
	return func(c *config) {
		c.settings = &s
	}
}

// WithSynchronousShow makes adapter widgets perform the blocking native call
// directly from their show hook instead of deferring it to the loop's next
// idle slot. The deferred default guarantees the loop has yielded at least
// once before the call blocks; keep this fallback for hosts whose show path
// already runs from an idle task.
func WithSynchronousShow() Option {
	return func(c *config) {
		c.syncShow = true
	}
}

// WithDefaultTimeout sets the auto-dismiss delay applied to informational
// dialogs that carry no timeout of their own.
func WithDefaultTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.defaultTimeout = d
		}
	}
}

func defaultBridgeConfig() config {
	return config{
		probe:          platform.Probe,
		defaultTimeout: DefaultMessageTimeout,
	}
}
