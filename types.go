package inkbridge

import (
	"time"

	"github.com/crafted-tech/inkbridge/platform"
	"github.com/crafted-tech/inkbridge/ui"
)

// Kind distinguishes the two dialog families the bridge intercepts.
type Kind int

const (
	KindInfo    Kind = iota // auto-dismissing message, no buttons
	KindConfirm             // modal question, up to three buttons
)

// button pairs a native label with the caller's callback for one of the
// three fixed screen positions.
type button struct {
	label string
	fn    func()
}

// request is one dialog invocation, built at interception time and discarded
// after dispatch. Button positions are a hard SDK contract: index 0 is the
// negative/cancel position, index 1 the affirmative one, index 2 the
// optional alternate. They must never be permuted.
type request struct {
	kind    Kind
	text    string
	title   string
	icon    platform.Icon
	timeout time.Duration
	buttons [3]button
}

// iconFor maps the caller's logical icon tag to the SDK icon code.
// Unrecognized or absent tags default to Info for informational dialogs and
// Question for confirmations.
func iconFor(tag string, kind Kind) platform.Icon {
	switch tag {
	case "info":
		return platform.IconInfo
	case "question":
		return platform.IconQuestion
	case "warning":
		return platform.IconWarning
	case "error":
		return platform.IconError
	}
	if kind == KindConfirm {
		return platform.IconQuestion
	}
	return platform.IconInfo
}

// infoRequest translates the host's informational options.
func infoRequest(o ui.InfoOptions, defaultTimeout time.Duration) request {
	title := o.Title
	if title == "" {
		title = "Info"
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	req := request{
		kind:    KindInfo,
		text:    o.Text,
		title:   title,
		icon:    iconFor(o.Icon, KindInfo),
		timeout: timeout,
	}
	// The dismiss callback rides in the affirmative slot; info dialogs have
	// no other outcomes.
	req.buttons[1] = button{fn: o.OnDismiss}
	return req
}

// confirmRequest translates the host's confirmation options.
func confirmRequest(o ui.ConfirmOptions) request {
	title := o.Title
	if title == "" {
		title = "Confirm"
	}
	okText := o.OKText
	if okText == "" {
		okText = "OK"
	}
	cancelText := o.CancelText
	if cancelText == "" {
		cancelText = "Cancel"
	}
	req := request{
		kind:  KindConfirm,
		text:  o.Text,
		title: title,
		icon:  iconFor("", KindConfirm),
	}
	req.buttons[0] = button{label: cancelText, fn: o.OnCancel}
	req.buttons[1] = button{label: okText, fn: o.OnOK}
	if len(o.Other) == 1 {
		req.buttons[2] = button{label: o.Other[0].Label, fn: o.Other[0].Fn}
	}
	return req
}
