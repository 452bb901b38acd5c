/*
Package inkbridge redirects the reader host's informational and confirmation
dialogs to the device's native dialog API when one is available, while keeping
the host's cooperative event loop and widget stack none the wiser.

# Basic Usage

Create a Bridge against the host loop, then wrap the host's dialog
construction paths:

	loop := ui.NewLoop()
	bridge := inkbridge.New(loop)

	buildInfo := bridge.WrapInfo(ui.BuildInfoDialog)
	buildConfirm := bridge.WrapConfirm(ui.BuildConfirmDialog)

	loop.Show(buildInfo(loop, ui.InfoOptions{Text: "Saved"}))

	loop.Show(buildConfirm(loop, ui.ConfirmOptions{
		Text:       "Delete bookmark?",
		OKText:     "Yes",
		CancelText: "No",
		OnOK:       func() { deleteBookmark() },
	}))

When the native API is unavailable, the loop has not completed its first
iteration yet, or a native dialog is already on screen, the wrapped builders
delegate unchanged to the originals. The decision is made once per request at
construction time and never revisited.

# Execution Model

The host loop is single-threaded and cooperative; a native dialog call blocks
that thread until the user answers. The bridge therefore schedules the native
invocation on the loop's next idle slot by default, so the call never runs
while the host is mid-way through its own setup, and guards against a second
dialog being issued while one is in flight. WithSynchronousShow switches to
invoking directly from the widget's show hook; it is kept as a documented
fallback and should not normally be used.

# Failure Behavior

No error in this package terminates the host process. A missing SDK library
turns the bridge into a permanent pass-through; a fault inside the native
call or inside a caller-supplied callback is recovered, logged, and the
widget is still closed exactly once.
*/
package inkbridge
