package gml

import (
	"fmt"
	"strings"
)

// escapeString rewrites s as the body of a string literal: backslash and
// double quote get a leading backslash, the common control characters use
// their short escapes, and any remaining control character below 0x20 is
// written as a \u sequence. Characters at or above 0x20 pass through
// unchanged, so non-ASCII text stays readable.
//
// The output round-trips through any standard string-literal unescaper
// (strconv.Unquote on the quoted form reproduces s exactly).
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '\b':
			b.WriteString(`\b`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
