package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	cellInset   = 1
	borderWidth = 2
)

// Renderer draws a session onto an ebiten image.
type Renderer struct {
	screen *ebiten.Image
}

func NewRenderer(screen *ebiten.Image) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) DrawCell(cell image.Rectangle, c color.RGBA) {
	vector.DrawFilledRect(r.screen,
		float32(cell.Min.X+cellInset), float32(cell.Min.Y+cellInset),
		float32(cell.Dx()-2*cellInset), float32(cell.Dy()-2*cellInset),
		c, false)
}

func (r *Renderer) DrawBorder(b image.Rectangle) {
	vector.StrokeRect(r.screen,
		float32(b.Min.X-borderWidth), float32(b.Min.Y-borderWidth),
		float32(b.Dx()+2*borderWidth), float32(b.Dy()+2*borderWidth),
		borderWidth, colornames.White, false)
}

func (r *Renderer) DrawText(s string, at image.Point) {
	ebitenutil.DebugPrintAt(r.screen, s, at.X, at.Y)
}
