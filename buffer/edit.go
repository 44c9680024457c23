package buffer

import "fmt"

// InsertChar inserts r at col in row. Requires col <= LineLen(row).
func (b *Buffer) InsertChar(row, col int, r rune) {
	b.checkCol(row, col, len(b.lines[row]))

	line := b.lines[row]
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	b.lines[row] = line
}

// RemoveChar removes and returns the rune at col in row.
// Requires col < LineLen(row).
func (b *Buffer) RemoveChar(row, col int) rune {
	b.checkCol(row, col, len(b.lines[row])-1)

	line := b.lines[row]
	r := line[col]
	b.lines[row] = append(line[:col], line[col+1:]...)
	return r
}

// SplitLine replaces row by its prefix [0, col) and inserts the suffix
// [col, end) as row+1.
func (b *Buffer) SplitLine(row, col int) {
	b.checkCol(row, col, len(b.lines[row]))

	line := b.lines[row]
	prefix := append([]rune(nil), line[:col]...)
	suffix := append([]rune(nil), line[col:]...)

	b.lines[row] = prefix
	b.insertLine(row+1, suffix)
}

// JoinWithPrevious appends row to row-1 and removes row. Requires row >= 1.
func (b *Buffer) JoinWithPrevious(row int) {
	b.checkRow(row)
	if row < 1 {
		panic("buffer: join of the first line")
	}

	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
}

// InsertLine inserts a new line holding text before row.
// row == LineCount() appends.
func (b *Buffer) InsertLine(row int, text []rune) {
	if row < 0 || row > len(b.lines) {
		panic(fmt.Sprintf("buffer: line %d out of range [0, %d]", row, len(b.lines)))
	}
	b.insertLine(row, append([]rune(nil), text...))
}

func (b *Buffer) insertLine(row int, line []rune) {
	b.lines = append(b.lines, nil)
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = line
}

func (b *Buffer) checkRow(row int) {
	if row < 0 || row >= len(b.lines) {
		panic(fmt.Sprintf("buffer: row %d out of range [0, %d)", row, len(b.lines)))
	}
}

func (b *Buffer) checkCol(row, col, max int) {
	b.checkRow(row)
	if col < 0 || col > max {
		panic(fmt.Sprintf("buffer: col %d out of range [0, %d] on row %d", col, max, row))
	}
}
