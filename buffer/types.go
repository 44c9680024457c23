package buffer

// Pos is a logical position: Row is the line index and Col the rune offset
// within that line, both 0-based.
type Pos struct {
	Row int
	Col int
}

// ClampPos moves p to the nearest position that exists in a document of
// rowCount lines whose lengths are reported by lineLen. A rowCount below one
// is treated as one, matching the single empty line of an empty document.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	rowCount = max(rowCount, 1)
	row := min(max(p.Row, 0), rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: min(max(p.Col, 0), maxCol)}
}
