package debugui

import (
	"image"
	"testing"
	"time"

	"github.com/plus3/colortris/engine"
	"github.com/plus3/colortris/game"
	"github.com/plus3/colortris/piece"
	"github.com/plus3/colortris/timer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuntime() *game.Runtime {
	return game.NewRuntime(game.Options{
		Picker: game.SequencePicker(piece.T),
		Logger: zerolog.Nop(),
	}, game.WindowLayout(game.WindowWidth, game.WindowHeight))
}

func TestInstall(t *testing.T) {
	rt := newRuntime()
	Install(rt)

	items := engine.Read[ImguiItems](rt.World)
	require.NotNil(t, items)

	var names []string
	for _, item := range items.Items {
		names = append(names, item.Name)
		assert.NotNil(t, item.Render)
	}
	assert.Equal(t, []string{"session", "playfield", "performance"}, names)

	stats := rt.Updates.GetStats()
	assert.Equal(t, "ImguiSystem", stats.Systems[len(stats.Systems)-1].Name)
}

func TestCapturingKeyboard(t *testing.T) {
	rt := newRuntime()
	assert.False(t, CapturingKeyboard(rt.World), "no overlay installed")

	Install(rt)
	assert.False(t, CapturingKeyboard(rt.World))

	engine.Read[ImguiInputState](rt.World).WantCaptureKeyboard = true
	assert.True(t, CapturingKeyboard(rt.World))
}

func TestTimerRows(t *testing.T) {
	rows := timerRows([]timer.Status{
		{ID: game.TimerGravity, Period: 500 * time.Millisecond, Remaining: 120 * time.Millisecond},
		{ID: game.TimerShiftLeft, Period: 80 * time.Millisecond, Remaining: 80 * time.Millisecond},
	})

	assert.Equal(t, []timerRow{
		{Name: "gravity", Period: "500ms", Remaining: "120ms"},
		{Name: "shift-left", Period: "80ms", Remaining: "80ms"},
	}, rows)
}

func TestFieldLines(t *testing.T) {
	type inner struct {
		Depth int
	}
	type sample struct {
		Name    string
		At      image.Point
		Nested  inner
		Elapsed time.Duration
		hidden  int
	}

	lines := fieldLines(&sample{
		Name:    "x",
		At:      image.Pt(1, 2),
		Nested:  inner{Depth: 3},
		Elapsed: 1500 * time.Millisecond,
		hidden:  4,
	})

	assert.Equal(t, []string{
		"Name: x",
		"At: (1,2)",
		"Nested.Depth: 3",
		"Elapsed: 1.5s",
	}, lines)
}

func TestFieldLinesForStats(t *testing.T) {
	lines := fieldLines(game.Stats{Games: 2, Clears: [5]int{0, 1, 0, 0, 1}})

	assert.Contains(t, lines, "Games: 2")
	assert.Contains(t, lines, "Clears: [0 1 0 0 1]")
	assert.Contains(t, lines, "PlayTime: 0s")
}

func TestPerformanceHistory(t *testing.T) {
	ps := NewPerformancePanel(newRuntime(), 4)

	assert.InDelta(t, 4.0, ps.record(0.016), 0.001)
	assert.InDelta(t, 8.0, ps.record(0.016), 0.001)

	for range 4 {
		ps.record(0.010)
	}
	assert.InDelta(t, 10.0, ps.record(0.010), 0.001, "old frames roll out of the window")
}
