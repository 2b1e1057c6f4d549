// Package piece defines the seven tetromino kinds: their shapes, colors and
// spawn offsets.
package piece

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Kind names one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every kind in catalog order.
var Kinds = [...]Kind{I, O, T, S, Z, J, L}

var kindNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

var shapes = [...]Shape{
	I: ParseShape(
		"....",
		"####",
		"....",
	),
	O: ParseShape(
		"##",
		"##",
	),
	T: ParseShape(
		".#.",
		"###",
		"...",
	),
	S: ParseShape(
		".##",
		"##.",
	),
	Z: ParseShape(
		"##.",
		".##",
	),
	J: ParseShape(
		"#..",
		"###",
		"...",
	),
	L: ParseShape(
		"..#",
		"###",
		"...",
	),
}

// X11 purple. colornames only has the CSS one, (128,0,128).
var x11Purple = color.RGBA{160, 32, 240, 255}

var colors = [...]color.RGBA{
	I: colornames.Cyan,
	O: colornames.Yellow,
	T: x11Purple,
	S: colornames.Lime,
	Z: colornames.Red,
	J: colornames.Blue,
	L: colornames.Orange,
}

// ShapeOf returns the spawn orientation of k.
func ShapeOf(k Kind) Shape {
	return shapes[k]
}

// ColorOf returns the block color of k.
func ColorOf(k Kind) color.RGBA {
	return colors[k]
}

// SpawnOffset returns the grid position of the top-left corner of k's
// bounding box when it enters a playfield of the given width. The I piece
// starts two columns left of center and one row down, since its top row is
// empty; everything else starts one column left of center on row 0.
func SpawnOffset(k Kind, width int) (x, y int) {
	if k == I {
		return width/2 - 2, 1
	}
	return width/2 - 1, 0
}
