package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInfoDialogAutoDismiss(t *testing.T) {
	l := NewLoop()
	clock := time.Now()
	l.now = func() time.Time { return clock }

	dismissed := 0
	d := NewInfoDialog(l, InfoOptions{
		Text:      "done",
		Timeout:   2 * time.Second,
		OnDismiss: func() { dismissed++ },
	})
	l.Show(d)

	clock = clock.Add(time.Second)
	l.RunOnce()
	assert.Equal(t, 0, dismissed)
	assert.Equal(t, 1, l.Depth())

	clock = clock.Add(time.Second)
	l.RunOnce()
	assert.Equal(t, 1, dismissed)
	assert.Equal(t, 0, l.Depth())
}

func TestInfoDialogDismissFiresOnce(t *testing.T) {
	l := NewLoop()
	clock := time.Now()
	l.now = func() time.Time { return clock }

	dismissed := 0
	d := NewInfoDialog(l, InfoOptions{Text: "x", OnDismiss: func() { dismissed++ }})
	l.Show(d)

	// Closed early by the host; the later timer must not fire it again.
	l.CloseWidget(d)
	clock = clock.Add(DefaultInfoTimeout + time.Second)
	l.Drain()
	assert.Equal(t, 1, dismissed)
}

func TestConfirmDialogOutcomes(t *testing.T) {
	tests := []struct {
		name string
		act  func(d *ConfirmDialog)
		want string
	}{
		{"confirm", func(d *ConfirmDialog) { d.Confirm() }, "ok"},
		{"cancel", func(d *ConfirmDialog) { d.Cancel() }, "cancel"},
		{"other", func(d *ConfirmDialog) { d.ChooseOther(0) }, "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoop()
			var picked string
			d := NewConfirmDialog(l, ConfirmOptions{
				Text:     "sure?",
				OnOK:     func() { picked = "ok" },
				OnCancel: func() { picked = "cancel" },
				Other:    []ExtraButton{{Label: "alt", Fn: func() { picked = "other" }}},
			})
			l.Show(d)

			tt.act(d)
			assert.Equal(t, tt.want, picked)
			assert.Equal(t, 0, l.Depth())

			// A second pick after closing is ignored.
			picked = ""
			tt.act(d)
			assert.Empty(t, picked)
		})
	}
}

func TestConfirmDialogOtherIndexOutOfRange(t *testing.T) {
	l := NewLoop()
	d := NewConfirmDialog(l, ConfirmOptions{Text: "q"})
	l.Show(d)

	d.ChooseOther(0)
	d.ChooseOther(-1)
	assert.Equal(t, 1, l.Depth(), "bad index must not close the dialog")
}
