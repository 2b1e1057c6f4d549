package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/colortris/game"
)

var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeyArrowUp:    game.KeyRotate,
	ebiten.KeyArrowDown:  game.KeySoftDrop,
	ebiten.KeySpace:      game.KeyHardDrop,
	ebiten.KeyR:          game.KeyRestart,
	ebiten.KeyEscape:     game.KeyQuit,
	ebiten.KeyQ:          game.KeyQuit,
}

// translateKeys turns the keys that went down and up this tick into game
// input, presses first. Unmapped keys are dropped.
func translateKeys(pressed, released []ebiten.Key) []game.Input {
	inputs := make([]game.Input, 0, len(pressed)+len(released))
	for _, k := range pressed {
		if key, ok := keyMap[k]; ok {
			inputs = append(inputs, game.Input{Key: key, Action: game.Press})
		}
	}
	for _, k := range released {
		if key, ok := keyMap[k]; ok {
			inputs = append(inputs, game.Input{Key: key, Action: game.Release})
		}
	}
	return inputs
}
