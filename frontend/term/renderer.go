package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/colortris/game"
	"github.com/plus3/colortris/playfield"
)

// Layout maps the playfield onto terminal cells. Each block is two columns
// wide so it looks roughly square.
func Layout() game.Layout {
	rows := playfield.Height - playfield.HiddenRows
	origin := image.Pt(2, 2)

	return game.Layout{
		Origin:     origin,
		Cell:       image.Pt(2, 1),
		Cols:       playfield.Width,
		Rows:       rows,
		HiddenRows: playfield.HiddenRows,
		ScoreAt:    image.Pt(origin.X, 0),
		BannerAt:   image.Pt(origin.X, origin.Y+rows/2),
	}
}

// Renderer draws a session onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	border tcell.Style
	text   tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		border: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

func (r *Renderer) DrawCell(cell image.Rectangle, c color.RGBA) {
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawBorder draws a box just outside b.
func (r *Renderer) DrawBorder(b image.Rectangle) {
	left, top := b.Min.X-1, b.Min.Y-1
	right, bottom := b.Max.X, b.Max.Y

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, r.border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, r.border)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, r.border)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, r.border)
	}

	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, r.border)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, r.border)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, r.border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, r.border)
}

func (r *Renderer) DrawText(s string, at image.Point) {
	x := at.X
	for _, ch := range s {
		r.screen.SetContent(x, at.Y, ch, nil, r.text)
		x++
	}
}
