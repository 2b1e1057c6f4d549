package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/colortris/game"
)

const miniCell = 10

// PlayfieldPanel draws a miniature of the whole grid, hidden rows included,
// next to a per-row fill bar.
type PlayfieldPanel struct {
	rt *game.Runtime
}

func NewPlayfieldPanel(rt *game.Runtime) *PlayfieldPanel {
	return &PlayfieldPanel{rt: rt}
}

func colorU32(c color.RGBA, alpha float32) uint32 {
	return imgui.ColorU32Vec4(imgui.NewVec4(
		float32(c.R)/255,
		float32(c.G)/255,
		float32(c.B)/255,
		alpha,
	))
}

func (p *PlayfieldPanel) Render() {
	if !imgui.BeginV("Playfield", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := p.rt.Session()
	field := s.Field
	imgui.Text(fmt.Sprintf("Blocks: %d", field.Count()))

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	hidden := p.rt.Layout().HiddenRows

	cellAt := func(x, y int) (imgui.Vec2, imgui.Vec2) {
		minX := origin.X + float32(x*miniCell)
		minY := origin.Y + float32(y*miniCell)
		return imgui.NewVec2(minX, minY), imgui.NewVec2(minX+miniCell-1, minY+miniCell-1)
	}

	for y := range field.Height() {
		alpha := float32(1)
		if y < hidden {
			alpha = 0.4
		}

		for x := range field.Width() {
			lo, hi := cellAt(x, y)
			if c, ok := field.Color(x, y); ok {
				drawList.AddRectFilled(lo, hi, colorU32(c, alpha))
			} else {
				drawList.AddRectFilled(lo, hi, imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.2, 0.2, alpha)))
			}
		}

		fill := float32(field.RowFill(y)) / float32(field.Width()) * 60
		barMin, _ := cellAt(field.Width()+1, y)
		drawList.AddRectFilled(barMin, imgui.NewVec2(barMin.X+fill, barMin.Y+miniCell-1),
			imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6)))
	}

	for cell := range s.Piece.Shape.Cells() {
		lo, hi := cellAt(s.Piece.X+cell.Col, s.Piece.Y+cell.Row)
		drawList.AddRect(lo, hi, colorU32(s.Piece.Color, 1))
	}

	imgui.Dummy(imgui.NewVec2(float32((field.Width()+8)*miniCell), float32(field.Height()*miniCell)))
	imgui.End()
}
