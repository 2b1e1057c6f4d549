package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/plus3/colortris/playfield"
)

// Renderer draws a session onto some target. Rectangles and points are in
// the target's own units, as computed by a Layout.
type Renderer interface {
	DrawCell(cell image.Rectangle, c color.RGBA)
	DrawBorder(r image.Rectangle)
	DrawText(s string, at image.Point)
}

// Layout maps grid coordinates onto a render target.
type Layout struct {
	// Origin is where the top-left of the first visible row is drawn.
	Origin image.Point
	Cell   image.Point
	// Cols and Rows are the visible playfield size in cells.
	Cols, Rows int
	HiddenRows int
	ScoreAt    image.Point
	BannerAt   image.Point
}

// Window geometry.
const (
	WindowWidth  = 800
	WindowHeight = 600
	CellSize     = 24
	FontHeight   = 32
)

// WindowLayout centers the visible playfield in a width×height window with
// square CellSize cells and the score one font height above the border.
func WindowLayout(width, height int) Layout {
	cols := playfield.Width
	rows := playfield.Height - playfield.HiddenRows
	left := width/2 - cols*CellSize/2
	top := height/2 - rows*CellSize/2

	return Layout{
		Origin:     image.Pt(left, top),
		Cell:       image.Pt(CellSize, CellSize),
		Cols:       cols,
		Rows:       rows,
		HiddenRows: playfield.HiddenRows,
		ScoreAt:    image.Pt(left, top-FontHeight),
		BannerAt:   image.Pt(left, height/2),
	}
}

// CellRect returns the target rectangle of grid cell (x, y). Cells in the
// hidden rows are not drawn and report false.
func (l Layout) CellRect(x, y int) (image.Rectangle, bool) {
	if y < l.HiddenRows {
		return image.Rectangle{}, false
	}
	topLeft := l.Origin.Add(image.Pt(x*l.Cell.X, (y-l.HiddenRows)*l.Cell.Y))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(l.Cell)}, true
}

// Border returns the outline of the visible playfield.
func (l Layout) Border() image.Rectangle {
	return image.Rectangle{
		Min: l.Origin,
		Max: l.Origin.Add(image.Pt(l.Cols*l.Cell.X, l.Rows*l.Cell.Y)),
	}
}

// Render draws the session through r: border, locked blocks, the active
// piece and the score.
func (s *Session) Render(r Renderer, l Layout) {
	r.DrawBorder(l.Border())

	for p, c := range s.Field.Blocks() {
		if rect, ok := l.CellRect(p.X, p.Y); ok {
			r.DrawCell(rect, c)
		}
	}

	for cell := range s.Piece.Shape.Cells() {
		if rect, ok := l.CellRect(s.Piece.X+cell.Col, s.Piece.Y+cell.Row); ok {
			r.DrawCell(rect, s.Piece.Color)
		}
	}

	r.DrawText(fmt.Sprintf("SCORE: %d", s.Score), l.ScoreAt)

	if s.State == StateGameOver {
		r.DrawText("GAME OVER", l.BannerAt)
		r.DrawText("PRESS R TO RESTART", l.BannerAt.Add(image.Pt(0, l.Cell.Y)))
	}
}
