//go:build !linux && !windows

package platform

import "fmt"

// Probe reports that no native dialog backend exists for this platform.
func Probe() (Native, error) {
	return nil, fmt.Errorf("%w: no backend for this platform", ErrUnavailable)
}
