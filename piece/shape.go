package piece

import (
	"fmt"
	"iter"
	"strings"
)

// MaxSize bounds both dimensions of a Shape.
const MaxSize = 4

// Shape is an immutable rectangular matrix of occupied/empty cells.
// Shapes are comparable with ==.
type Shape struct {
	cells [MaxSize][MaxSize]bool
	rows  int
	cols  int
}

// Cell addresses one cell of a Shape by row and column.
type Cell struct {
	Row, Col int
}

// ParseShape builds a Shape from rows of '#' (occupied) and '.' (empty).
// It panics on ragged rows, unknown characters, or rows/columns past MaxSize.
func ParseShape(rows ...string) Shape {
	if len(rows) == 0 || len(rows) > MaxSize {
		panic(fmt.Sprintf("piece: shape must have 1..%d rows, got %d", MaxSize, len(rows)))
	}

	var s Shape
	s.rows = len(rows)
	s.cols = len(rows[0])
	if s.cols == 0 || s.cols > MaxSize {
		panic(fmt.Sprintf("piece: shape must have 1..%d columns, got %d", MaxSize, s.cols))
	}

	for r, row := range rows {
		if len(row) != s.cols {
			panic(fmt.Sprintf("piece: ragged shape row %d: %q", r, row))
		}
		for c, ch := range row {
			switch ch {
			case '#':
				s.cells[r][c] = true
			case '.':
			default:
				panic(fmt.Sprintf("piece: unexpected %q in shape row %d", ch, r))
			}
		}
	}

	return s
}

// Rows returns the number of rows in the shape's bounding box.
func (s Shape) Rows() int { return s.rows }

// Cols returns the number of columns in the shape's bounding box.
func (s Shape) Cols() int { return s.cols }

// Filled reports whether the cell at row r, column c is occupied.
// Coordinates outside the bounding box are empty.
func (s Shape) Filled(r, c int) bool {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return false
	}
	return s.cells[r][c]
}

// Cells yields the occupied cells in row-major order.
func (s Shape) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for r := range s.rows {
			for c := range s.cols {
				if s.cells[r][c] && !yield(Cell{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for range s.Cells() {
		n++
	}
	return n
}

// Rotate returns the shape turned 90° clockwise: rows are reversed, then the
// matrix is transposed. Four rotations give back the original shape.
func (s Shape) Rotate() Shape {
	rotated := Shape{rows: s.cols, cols: s.rows}
	for r := range s.rows {
		for c := range s.cols {
			rotated.cells[c][s.rows-1-r] = s.cells[r][c]
		}
	}
	return rotated
}

// String renders the shape in the ParseShape notation, rows joined by '/'.
func (s Shape) String() string {
	var b strings.Builder
	for r := range s.rows {
		if r > 0 {
			b.WriteByte('/')
		}
		for c := range s.cols {
			if s.cells[r][c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
