package rendering

import (
	"regexp"
	"strings"
)

// Imported customer data often carries the field label inside the value,
// in either script, e.g. "Phone: 017..." or "মোবাইলঃ ০১৭...".
var phoneLabelRe = regexp.MustCompile(`(?i)^\s*(?:phone|mobile|ফোন|মোবাইল)\s*[:ঃ]*\s*`)

// CleanPhone normalizes a stored phone value for display. Invisible and
// private-use characters are stripped, an embedded field label is removed,
// and leading separators are trimmed. A leading "+" is kept.
func CleanPhone(raw string) string {
	s := Sanitize(raw)
	s = phoneLabelRe.ReplaceAllString(s, "")
	s = strings.TrimLeft(s, " -.:;,/")
	return strings.TrimSpace(s)
}
