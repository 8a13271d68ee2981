// Package editor models the cursor-anchored text span the insertion
// controller mutates, plus the editing surfaces it runs against.
package editor

import "strings"

// Position is a zero-based (line, column) location; columns count runes.
type Position struct {
	Line int `json:"line"`
	Ch   int `json:"ch"`
}

// Span is the region one summary invocation owns. It becomes stale if any
// other edit touches the same region; that is not guarded against.
type Span struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Empty reports whether the span covers no text.
func (s Span) Empty() bool {
	return s.From == s.To
}

// Editor is the surface the insertion controller edits against: a cursor
// and a replace-range primitive, nothing more.
type Editor interface {
	Cursor() Position
	ReplaceRange(text string, from, to Position) error
}

// EndOf computes where text inserted at start ends, by walking its line
// breaks: a single-line insert ends on the same line at start column plus
// rune length; a multi-line insert ends on the final line at that line's
// rune length.
func EndOf(start Position, text string) Position {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return Position{Line: start.Line, Ch: start.Ch + len([]rune(text))}
	}
	last := lines[len(lines)-1]
	return Position{
		Line: start.Line + len(lines) - 1,
		Ch:   len([]rune(last)),
	}
}
