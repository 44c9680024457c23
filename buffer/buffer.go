package buffer

import "strings"

// Buffer is the authoritative sequence of text lines.
//
// Buffer has no knowledge of the screen. Every mutation keeps LineCount() >= 1.
type Buffer struct {
	lines [][]rune
}

// New splits text on '\n' into lines. Carriage returns are kept as ordinary
// runes.
func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

// Empty returns a buffer holding a single empty line.
func Empty() *Buffer {
	return &Buffer{lines: [][]rune{nil}}
}

// FromLines builds a buffer from already split lines.
func FromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return Empty()
	}
	out := make([][]rune, 0, len(lines))
	for _, s := range lines {
		out = append(out, []rune(s))
	}
	return &Buffer{lines: out}
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) LineLen(row int) int {
	b.checkRow(row)
	return len(b.lines[row])
}

// Line returns the content of row as a string.
func (b *Buffer) Line(row int) string {
	b.checkRow(row)
	return string(b.lines[row])
}

// Lines returns a copy of every line as strings.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, len(b.lines))
	for _, line := range b.lines {
		out = append(out, string(line))
	}
	return out
}

// Text joins all lines with '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// ClampPos clamps p into the current document bounds.
func (b *Buffer) ClampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
