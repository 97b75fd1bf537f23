package rendering

import (
	"strings"
	"unicode"
)

// Sanitize removes characters that often render as "□□" tofu boxes in PDF or
// print output when icon fonts or stray format marks end up in user-entered
// text, then collapses whitespace. It is idempotent and safe to apply before
// inserting text into either rendering backend.
//
// ZWJ (U+200D) and ZWNJ (U+200C) are intentionally kept: stripping them
// breaks Bengali conjunct shaping.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if isStrippable(r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}

// isStrippable reports whether the rune must never reach a rendering surface
func isStrippable(r rune) bool {
	switch r {
	case '\uFEFF': // BOM
		return true
	case '­', '​', '⁠': // soft hyphen, ZWSP, word joiner
		return true
	case '͏': // combining grapheme joiner
		return true
	case '‎', '‏': // LRM/RLM
		return true
	case '�': // replacement character
		return true
	case '□', '■', '◻', '◼', '◽', '◾': // tofu look-alikes
		return true
	}
	// Bidirectional embedding/override and isolate controls
	if (r >= '‪' && r <= '‮') || (r >= '⁦' && r <= '⁩') {
		return true
	}
	// Private Use Areas, BMP and supplementary planes
	if (r >= '' && r <= '') ||
		(r >= 0xF0000 && r <= 0xFFFFD) ||
		(r >= 0x100000 && r <= 0x10FFFD) {
		return true
	}
	// C0 controls except tab/newline/carriage return, plus DEL
	if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
		return true
	}
	return r == 0x7F
}
