package inkbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePassesCleanTextThrough(t *testing.T) {
	cases := []string{
		"",
		"Delete 3 files?",
		"Grüße, мир, 世界",
		"tabs\tand\nnewlines survive",
	}
	for _, s := range cases {
		assert.Equal(t, s, Sanitize(s))
	}
}

func TestSanitizeStripsBidiControls(t *testing.T) {
	rlo := string(rune(0x202E))
	lre := string(rune(0x202A))
	pdf := string(rune(0x202C))
	lri := string(rune(0x2066))
	pdi := string(rune(0x2069))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rlo override", "file" + rlo + "txt.exe", "filetxt.exe"},
		{"embedding pair", lre + "abc" + pdf, "abc"},
		{"isolate pair", lri + "x" + pdi, "x"},
		{"only controls", rlo + lre + pdf, ""},
		{"mixed with text", "ok " + rlo + " evil " + lri + " done", "ok  evil  done"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeStripsWholeRanges(t *testing.T) {
	for r := rune(0x202A); r <= 0x202E; r++ {
		assert.Equal(t, "ab", Sanitize("a"+string(r)+"b"))
	}
	for r := rune(0x2066); r <= 0x2069; r++ {
		assert.Equal(t, "ab", Sanitize("a"+string(r)+"b"))
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	in := "a" + string(rune(0x202E)) + "b" + string(rune(0x2066)) + "c"
	once := Sanitize(in)
	assert.Equal(t, "abc", once)
	assert.Equal(t, once, Sanitize(once))
}

func TestSanitizeKeepsNeighboringRunes(t *testing.T) {
	// Code points bordering the stripped ranges must survive.
	for _, r := range []rune{0x2029, 0x202F, 0x2065, 0x206A} {
		in := "x" + string(r) + "y"
		assert.Equal(t, in, Sanitize(in))
	}
}
