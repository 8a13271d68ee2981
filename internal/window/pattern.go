package window

import (
	"strings"
	"time"
)

// Layout translates a date-naming pattern using YYYY/MM/DD style tokens
// (the convention daily-note plugins use) into a Go time layout.
// Unrecognised characters pass through literally.
func Layout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		rest := pattern[i:]
		switch {
		case strings.HasPrefix(rest, "YYYY"):
			b.WriteString("2006")
			i += 4
		case strings.HasPrefix(rest, "YY"):
			b.WriteString("06")
			i += 2
		case strings.HasPrefix(rest, "MM"):
			b.WriteString("01")
			i += 2
		case strings.HasPrefix(rest, "M"):
			b.WriteString("1")
			i++
		case strings.HasPrefix(rest, "DD"):
			b.WriteString("02")
			i += 2
		case strings.HasPrefix(rest, "D"):
			b.WriteString("2")
			i++
		default:
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// FormatDay formats t using the given date-naming pattern.
func FormatDay(t time.Time, pattern string) string {
	return t.Format(Layout(pattern))
}
