package editor

import (
	"fmt"
	"strings"
)

// Buffer is an in-memory line-oriented Editor.
type Buffer struct {
	lines  []string
	cursor Position
}

// NewBuffer builds a buffer over content with the cursor clamped into range.
func NewBuffer(content string, cursor Position) *Buffer {
	b := &Buffer{lines: strings.Split(content, "\n")}
	b.cursor = b.clamp(cursor)
	return b
}

// EndOfContent returns the position just past the last rune of content.
func EndOfContent(content string) Position {
	lines := strings.Split(content, "\n")
	last := lines[len(lines)-1]
	return Position{Line: len(lines) - 1, Ch: len([]rune(last))}
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// String reassembles the buffer content.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// ReplaceRange replaces the text between from and to (inclusive-exclusive,
// like a selection) with text. from must not come after to and both must
// lie inside the buffer.
func (b *Buffer) ReplaceRange(text string, from, to Position) error {
	if err := b.check(from); err != nil {
		return err
	}
	if err := b.check(to); err != nil {
		return err
	}
	if to.Line < from.Line || (to.Line == from.Line && to.Ch < from.Ch) {
		return fmt.Errorf("editor: inverted range %v..%v", from, to)
	}

	prefix := string([]rune(b.lines[from.Line])[:from.Ch])
	suffix := string([]rune(b.lines[to.Line])[to.Ch:])
	spliced := strings.Split(prefix+text+suffix, "\n")

	out := make([]string, 0, from.Line+len(spliced)+len(b.lines)-to.Line-1)
	out = append(out, b.lines[:from.Line]...)
	out = append(out, spliced...)
	out = append(out, b.lines[to.Line+1:]...)
	b.lines = out
	return nil
}

func (b *Buffer) check(p Position) error {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return fmt.Errorf("editor: line %d out of range (0..%d)", p.Line, len(b.lines)-1)
	}
	if p.Ch < 0 || p.Ch > len([]rune(b.lines[p.Line])) {
		return fmt.Errorf("editor: column %d out of range on line %d", p.Ch, p.Line)
	}
	return nil
}

func (b *Buffer) clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if n := len([]rune(b.lines[p.Line])); p.Ch > n {
		p.Ch = n
	}
	if p.Ch < 0 {
		p.Ch = 0
	}
	return p
}
