// Package window runs a session in a desktop window using ebiten.
package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/colortris/debugui"
	debugui_ebiten "github.com/plus3/colortris/debugui/ebiten"
	"github.com/plus3/colortris/game"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"
)

const Title = "Color Tetris"

type Options struct {
	DebugUI bool
	Logger  zerolog.Logger
}

// Game implements ebiten.Game on top of a game.Runtime.
type Game struct {
	rt    *game.Runtime
	imgui *debugui_ebiten.ImguiBackend
	log   zerolog.Logger

	pressed  []ebiten.Key
	released []ebiten.Key
}

// Run opens the window and plays rt until the player quits or the window
// is closed.
func Run(rt *game.Runtime, opts Options) error {
	g := &Game{
		rt:  rt,
		log: opts.Logger.With().Str("component", "window").Logger(),
	}

	if opts.DebugUI {
		g.imgui = debugui_ebiten.New(Title, game.WindowWidth, game.WindowHeight)
		debugui.Install(rt)
	} else {
		ebiten.SetWindowSize(game.WindowWidth, game.WindowHeight)
		ebiten.SetWindowTitle(Title)
	}

	g.log.Info().Bool("debug_ui", opts.DebugUI).Int("tps", ebiten.TPS()).Msg("opening window")

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.Frame(g.update)
	} else {
		g.update()
	}

	if g.rt.Done() {
		g.log.Info().Msg("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) update() {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])

	if !debugui.CapturingKeyboard(g.rt.World) {
		queue := g.rt.Input()
		for _, in := range translateKeys(g.pressed, g.released) {
			if !queue.Push(in) {
				g.log.Warn().Stringer("key", in.Key).Msg("input queue full, dropping key")
			}
		}
	}

	g.rt.Update(time.Second / time.Duration(ebiten.TPS()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.rt.Draw(NewRenderer(screen))

	if g.imgui != nil {
		g.imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return game.WindowWidth, game.WindowHeight
}
