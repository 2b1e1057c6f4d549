// Package playfield holds the grid of locked blocks: collision testing,
// locking and row clearing.
package playfield

import (
	"fmt"
	"image"
	"image/color"
	"iter"

	"github.com/plus3/colortris/piece"
)

const (
	Width      = 10
	Height     = 22
	HiddenRows = 2
)

// Cell is one grid square. A cell is filled iff it holds a locked block's
// color; both are always written together.
type Cell struct {
	Filled bool
	Color  color.RGBA
}

// Grid is a Height×Width matrix of cells, row 0 at the top.
type Grid struct {
	width  int
	height int
	rows   [][]Cell
}

// New creates an empty grid.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("playfield: invalid size %dx%d", width, height))
	}

	g := &Grid{
		width:  width,
		height: height,
		rows:   make([][]Cell, height),
	}
	for y := range g.rows {
		g.rows[y] = make([]Cell, width)
	}
	return g
}

// NewStandard creates an empty Width×Height grid.
func NewStandard() *Grid {
	return New(Width, Height)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Collides reports whether shape placed with its top-left corner at (x, y)
// leaves the grid through a wall or the floor, or overlaps a filled cell.
// There is no ceiling: cells above row 0 are an invariant violation.
func (g *Grid) Collides(shape piece.Shape, x, y int) bool {
	for cell := range shape.Cells() {
		cx := x + cell.Col
		cy := y + cell.Row

		if cx < 0 || cx >= g.width || cy >= g.height {
			return true
		}
		if cy < 0 {
			panic(fmt.Sprintf("playfield: shape cell at row %d is above the grid", cy))
		}
		if g.rows[cy][cx].Filled {
			return true
		}
	}
	return false
}

// Lock writes every occupied cell of shape at (x, y) into the grid with the
// given color. The caller has already checked the placement.
func (g *Grid) Lock(shape piece.Shape, x, y int, c color.RGBA) {
	for cell := range shape.Cells() {
		g.Place(x+cell.Col, y+cell.Row, c)
	}
}

// Place fills a single cell.
func (g *Grid) Place(x, y int, c color.RGBA) {
	g.checkBounds(x, y)
	g.rows[y][x] = Cell{Filled: true, Color: c}
}

// ClearFullRows removes every completely filled row, shifting the rows above
// them down and adding empty rows at the top. It returns the number of rows
// removed.
func (g *Grid) ClearFullRows() int {
	kept := make([][]Cell, 0, g.height)
	for _, row := range g.rows {
		if !isFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := g.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Cell, 0, g.height)
	for range cleared {
		rows = append(rows, make([]Cell, g.width))
	}
	g.rows = append(rows, kept...)

	return cleared
}

func isFull(row []Cell) bool {
	for _, cell := range row {
		if !cell.Filled {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for _, row := range g.rows {
		clear(row)
	}
}

// Filled reports whether the cell at (x, y) holds a block.
func (g *Grid) Filled(x, y int) bool {
	g.checkBounds(x, y)
	return g.rows[y][x].Filled
}

// Color returns the block color at (x, y) and whether the cell is filled.
func (g *Grid) Color(x, y int) (color.RGBA, bool) {
	g.checkBounds(x, y)
	cell := g.rows[y][x]
	return cell.Color, cell.Filled
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	n := 0
	for range g.Blocks() {
		n++
	}
	return n
}

// Blocks yields the position and color of every filled cell, top row first.
func (g *Grid) Blocks() iter.Seq2[image.Point, color.RGBA] {
	return func(yield func(image.Point, color.RGBA) bool) {
		for y, row := range g.rows {
			for x, cell := range row {
				if cell.Filled && !yield(image.Pt(x, y), cell.Color) {
					return
				}
			}
		}
	}
}

// RowFill returns the number of filled cells in row y.
func (g *Grid) RowFill(y int) int {
	g.checkBounds(0, y)
	n := 0
	for _, cell := range g.rows[y] {
		if cell.Filled {
			n++
		}
	}
	return n
}

func (g *Grid) checkBounds(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("playfield: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
}
