//go:build windows

package platform

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"golang.org/x/sys/windows"
)

// MessageBoxW constants (user32).
const (
	mbOK          = 0x00000000
	mbOKCancel    = 0x00000001
	mbYesNoCancel = 0x00000003
	mbYesNo       = 0x00000004

	mbIconError    = 0x00000010
	mbIconQuestion = 0x00000020
	mbIconWarning  = 0x00000030
	mbIconInfo     = 0x00000040

	idOK     = 1
	idCancel = 2
	idYes    = 6
	idNo     = 7
)

type winDialogs struct {
	messageBox *windows.LazyProc
}

// Probe binds the Windows development backend. MessageBoxW always exists on
// a desktop session, so the only failure mode is resolving user32 itself.
func Probe() (Native, error) {
	user32 := windows.NewLazySystemDLL("user32.dll")
	proc := user32.NewProc("MessageBoxW")
	if err := proc.Find(); err != nil {
		return nil, fmt.Errorf("%w: MessageBoxW: %v", ErrUnavailable, err)
	}
	return &winDialogs{messageBox: proc}, nil
}

func mbIcon(icon Icon) uintptr {
	switch clampIcon(icon) {
	case IconQuestion:
		return mbIconQuestion
	case IconWarning:
		return mbIconWarning
	case IconError:
		return mbIconError
	default:
		return mbIconInfo
	}
}

// ShowMessage uses the WScript.Shell Popup automation object because, unlike
// MessageBoxW, Popup supports the SDK's auto-dismiss timeout directly.
func (w *winDialogs) ShowMessage(icon Icon, title, body string, timeoutMs int) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		if oleErr, ok := err.(*ole.OleError); ok {
			code := oleErr.Code()
			if code != 0 && code != 1 { // S_OK=0, S_FALSE=1
				return
			}
		}
	}
	defer ole.CoUninitialize()

	shellObj, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return
	}
	defer shellObj.Release()

	shell, err := shellObj.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return
	}
	defer shell.Release()

	secs := timeoutMs / 1000
	if secs < 1 {
		secs = 1
	}
	_, _ = oleutil.CallMethod(shell, "Popup", body, secs, title, int(mbIcon(icon)|mbOK))
}

// ShowDialog maps the three-position button contract onto the fixed
// MessageBoxW button sets: one button -> OK, two -> Yes/No, three ->
// Yes/No/Cancel. Labels are not customizable on this backend; positions are.
func (w *winDialogs) ShowDialog(icon Icon, title, body, b1, b2, b3 string) (int, error) {
	var style uintptr
	switch {
	case b3 != "":
		style = mbYesNoCancel
	case b1 != "":
		style = mbYesNo
	default:
		style = mbOK
	}
	style |= mbIcon(icon)

	bodyPtr, err := windows.UTF16PtrFromString(body)
	if err != nil {
		return 0, fmt.Errorf("encode body: %w", err)
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("encode title: %w", err)
	}

	r, _, callErr := w.messageBox.Call(
		0, // no parent window
		uintptr(unsafe.Pointer(bodyPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		style,
	)
	if r == 0 {
		return 0, fmt.Errorf("MessageBoxW failed: %w", callErr)
	}

	switch r {
	case idYes, idOK:
		return ResultAffirmative, nil
	case idNo:
		return ResultCancel, nil
	case idCancel:
		if b3 != "" {
			return ResultAlternate, nil
		}
		return ResultCancel, nil
	default:
		return 0, fmt.Errorf("MessageBoxW returned unexpected id %d", r)
	}
}
