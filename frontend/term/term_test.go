package term

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/colortris/game"
	"github.com/plus3/colortris/piece"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 26)
	t.Cleanup(screen.Fini)
	return screen
}

func newRuntime(kinds ...piece.Kind) *game.Runtime {
	return game.NewRuntime(game.Options{
		Picker: game.SequencePicker(kinds...),
		Logger: zerolog.Nop(),
	}, Layout())
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Key
		ok   bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.KeyLeft, true},
		{"up rotates", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyRotate, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.KeyHardDrop, true},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), game.KeyRestart, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.KeyQuit, true},
		{"unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"unmapped key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTapperTaps(t *testing.T) {
	taps := newTapper(SoftDropHold)
	now := time.Now()

	assert.Equal(t, []game.Input{
		{Key: game.KeyLeft, Action: game.Press},
		{Key: game.KeyLeft, Action: game.Release},
	}, taps.key(game.KeyLeft, now))
	assert.Nil(t, taps.expire(now.Add(time.Second)))
}

func TestTapperHoldsSoftDrop(t *testing.T) {
	taps := newTapper(100 * time.Millisecond)
	start := time.Now()

	assert.Equal(t, []game.Input{{Key: game.KeySoftDrop, Action: game.Press}}, taps.key(game.KeySoftDrop, start))

	// key repeat keeps it held
	assert.Nil(t, taps.key(game.KeySoftDrop, start.Add(50*time.Millisecond)))
	assert.Nil(t, taps.expire(start.Add(120*time.Millisecond)))

	assert.Equal(t, []game.Input{{Key: game.KeySoftDrop, Action: game.Release}},
		taps.expire(start.Add(150*time.Millisecond)))
	assert.Nil(t, taps.expire(start.Add(time.Second)))

	assert.Len(t, taps.key(game.KeySoftDrop, start.Add(2*time.Second)), 1, "pressed again after release")
}

func TestLayout(t *testing.T) {
	l := Layout()
	assert.Equal(t, image.Rect(2, 2, 22, 22), l.Border())

	rect, ok := l.CellRect(3, 2)
	require.True(t, ok)
	assert.Equal(t, image.Rect(8, 2, 10, 3), rect)

	_, ok = l.CellRect(3, 1)
	assert.False(t, ok)
}

func TestRendererDrawsSession(t *testing.T) {
	screen := newScreen(t)
	rt := newRuntime(piece.O)
	rt.Session().HardDrop()

	rt.Draw(NewRenderer(screen))

	mainc, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, tcell.RuneULCorner, mainc)
	mainc, _, _, _ = screen.GetContent(22, 22)
	assert.Equal(t, tcell.RuneLRCorner, mainc)
	mainc, _, _, _ = screen.GetContent(1, 10)
	assert.Equal(t, tcell.RuneVLine, mainc)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorWhite, fg)

	// O rests on the floor at columns 4 and 5, rows 20 and 21
	yellow := piece.ColorOf(piece.O)
	want := tcell.NewRGBColor(int32(yellow.R), int32(yellow.G), int32(yellow.B))
	for _, p := range []image.Point{{10, 20}, {11, 20}, {13, 21}} {
		_, _, style, _ := screen.GetContent(p.X, p.Y)
		_, bg, _ := style.Decompose()
		assert.Equal(t, want, bg, "cell at %v", p)
	}

	_, _, style, _ = screen.GetContent(9, 21)
	_, bg, _ := style.Decompose()
	assert.NotEqual(t, want, bg)

	var score []rune
	for x := 2; x < 10; x++ {
		mainc, _, _, _ := screen.GetContent(x, 0)
		score = append(score, mainc)
	}
	assert.Equal(t, "SCORE: 0", string(score))
}

func TestRunPlaysUntilQuit(t *testing.T) {
	screen := newScreen(t)
	rt := newRuntime(piece.O)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, rt, screen, Options{FrameInterval: time.Millisecond, Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.NoError(t, ctx.Err(), "quit key ends the loop")

	s := rt.Session()
	assert.True(t, s.QuitRequested())
	assert.Equal(t, 5, s.Piece.X)
	assert.False(t, s.Timers.Armed(game.TimerShiftRight), "tap releases the key")
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	rt := newRuntime(piece.T)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, Run(ctx, rt, screen, Options{Logger: zerolog.Nop()}))
	assert.False(t, rt.Done())
}
