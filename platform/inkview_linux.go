//go:build linux

package platform

import (
	"fmt"
	"os"

	"github.com/ebitengine/purego"
)

// InkView entry points resolved at probe time.
type inkview struct {
	message       func(icon int32, title, text string, timeoutMs int32)
	dialogSynchro func(icon int32, title, text, b1, b2, b3 string) int32
}

// libraryPath returns the shared object to load. The environment override
// exists for firmware images that ship the SDK outside the default linker
// path.
func libraryPath() string {
	if p := os.Getenv("INKVIEW_LIB"); p != "" {
		return p
	}
	return "libinkview.so.1"
}

// Probe attempts to bind the InkView dialog entry points. On any failure it
// returns ErrUnavailable wrapped with detail; it never terminates the
// process.
func Probe() (Native, error) {
	path := libraryPath()
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: dlopen %s: %v", ErrUnavailable, path, err)
	}

	iv := &inkview{}
	if err := register(&iv.message, handle, "Message"); err != nil {
		return nil, err
	}
	if err := register(&iv.dialogSynchro, handle, "DialogSynchro"); err != nil {
		return nil, err
	}
	return iv, nil
}

// register binds one symbol. purego panics on a missing symbol, so the panic
// is converted into the fail-soft error the probe contract requires.
func register[T any](fn *T, handle uintptr, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: symbol %s: %v", ErrUnavailable, name, r)
		}
	}()
	purego.RegisterLibFunc(fn, handle, name)
	return nil
}

func (iv *inkview) ShowMessage(icon Icon, title, body string, timeoutMs int) {
	iv.message(int32(clampIcon(icon)), title, body, int32(timeoutMs))
}

func (iv *inkview) ShowDialog(icon Icon, title, body, b1, b2, b3 string) (int, error) {
	r := iv.dialogSynchro(int32(clampIcon(icon)), title, body, b1, b2, b3)
	if r < ResultCancel || r > ResultAlternate {
		return 0, fmt.Errorf("DialogSynchro returned out-of-range result %d", r)
	}
	return int(r), nil
}
