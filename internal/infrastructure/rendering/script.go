package rendering

import (
	"html"
	"strings"
	"unicode"
)

// bnRunOpen/bnRunClose wrap maximal Bengali-script runs so per-script font
// rules can target them in both backends. The PDF engine's substitution
// tables handle mixed scripts on their own; the spans are defense in depth.
const (
	bnRunOpen  = `<span class="bnrun">`
	bnRunClose = `</span>`
)

// WrapBengaliRuns HTML-escapes plain text and wraps every maximal run of
// Bengali-script characters in a tagged span. The input must not contain
// markup. Concatenating the emitted run texts reproduces the escaped input
// exactly; no characters are dropped or duplicated.
func WrapBengaliRuns(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 32)

	var run strings.Builder
	inBengali := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if inBengali {
			b.WriteString(bnRunOpen)
			b.WriteString(html.EscapeString(run.String()))
			b.WriteString(bnRunClose)
		} else {
			b.WriteString(html.EscapeString(run.String()))
		}
		run.Reset()
	}

	for _, r := range s {
		bn := unicode.Is(unicode.Bengali, r)
		if bn != inBengali {
			flush()
			inBengali = bn
		}
		run.WriteRune(r)
	}
	flush()

	return b.String()
}

// ContainsBengali reports whether the string has any Bengali-script character
func ContainsBengali(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Bengali, r) {
			return true
		}
	}
	return false
}
