package ui

import "time"

// DefaultInfoTimeout is how long a host-rendered info dialog stays on screen
// when the caller does not specify a timeout.
const DefaultInfoTimeout = 3 * time.Second

// InfoOptions configures an informational dialog.
type InfoOptions struct {
	Text      string        // Message body (required)
	Title     string        // Window title; empty means the host default
	Icon      string        // Logical icon tag: "info", "question", "warning", "error"
	Timeout   time.Duration // Auto-dismiss delay; 0 means DefaultInfoTimeout
	OnDismiss func()        // Called once when the dialog goes away
}

// ExtraButton is an additional confirmation choice beyond OK/Cancel.
type ExtraButton struct {
	Label string
	Fn    func()
}

// ConfirmOptions configures a confirmation dialog. Confirmations have no
// timeout; they stay up until the user picks a button.
type ConfirmOptions struct {
	Text       string        // Question body (required)
	Title      string        // Window title; empty means the host default
	OKText     string        // Affirmative label; empty means "OK"
	CancelText string        // Negative label; empty means "Cancel"
	Other      []ExtraButton // Optional alternate actions
	OnOK       func()
	OnCancel   func()
}

// InfoBuilder constructs an informational dialog widget for the given loop.
type InfoBuilder func(l *Loop, o InfoOptions) Widget

// ConfirmBuilder constructs a confirmation dialog widget for the given loop.
type ConfirmBuilder func(l *Loop, o ConfirmOptions) Widget

// InfoDialog is the host-rendered informational dialog. It paints through the
// normal pipeline and dismisses itself after its timeout.
type InfoDialog struct {
	loop   *Loop
	opts   InfoOptions
	closed bool
}

// NewInfoDialog builds an InfoDialog; it does nothing until shown via l.Show.
func NewInfoDialog(l *Loop, o InfoOptions) *InfoDialog {
	return &InfoDialog{loop: l, opts: o}
}

func (d *InfoDialog) Paint() {}

// Show arms the auto-dismiss timer.
func (d *InfoDialog) Show() {
	timeout := d.opts.Timeout
	if timeout <= 0 {
		timeout = DefaultInfoTimeout
	}
	d.loop.ScheduleAfter(timeout, func() {
		if !d.closed {
			d.loop.CloseWidget(d)
		}
	})
}

// Close fires the dismiss callback exactly once.
func (d *InfoDialog) Close() {
	if d.closed {
		return
	}
	d.closed = true
	if d.opts.OnDismiss != nil {
		d.opts.OnDismiss()
	}
}

// Text returns the message body the dialog was built with.
func (d *InfoDialog) Text() string { return d.opts.Text }

// ConfirmDialog is the host-rendered confirmation dialog. The host's input
// layer routes the user's pick to Choose.
type ConfirmDialog struct {
	loop   *Loop
	opts   ConfirmOptions
	closed bool
}

// NewConfirmDialog builds a ConfirmDialog; it does nothing until shown.
func NewConfirmDialog(l *Loop, o ConfirmOptions) *ConfirmDialog {
	return &ConfirmDialog{loop: l, opts: o}
}

func (d *ConfirmDialog) Paint() {}

func (d *ConfirmDialog) Show() {}

func (d *ConfirmDialog) Close() { d.closed = true }

// Confirm records an affirmative pick: callback first, then close.
func (d *ConfirmDialog) Confirm() {
	if d.closed {
		return
	}
	if d.opts.OnOK != nil {
		d.opts.OnOK()
	}
	d.loop.CloseWidget(d)
}

// Cancel records a negative pick: callback first, then close.
func (d *ConfirmDialog) Cancel() {
	if d.closed {
		return
	}
	if d.opts.OnCancel != nil {
		d.opts.OnCancel()
	}
	d.loop.CloseWidget(d)
}

// ChooseOther records an alternate pick by index into Other.
func (d *ConfirmDialog) ChooseOther(i int) {
	if d.closed || i < 0 || i >= len(d.opts.Other) {
		return
	}
	if d.opts.Other[i].Fn != nil {
		d.opts.Other[i].Fn()
	}
	d.loop.CloseWidget(d)
}

// Text returns the question body the dialog was built with.
func (d *ConfirmDialog) Text() string { return d.opts.Text }

// BuildInfoDialog is the host's original info construction path.
func BuildInfoDialog(l *Loop, o InfoOptions) Widget { return NewInfoDialog(l, o) }

// BuildConfirmDialog is the host's original confirmation construction path.
func BuildConfirmDialog(l *Loop, o ConfirmOptions) Widget { return NewConfirmDialog(l, o) }
