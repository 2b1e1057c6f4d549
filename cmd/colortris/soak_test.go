package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/colortris/game"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiming(t *testing.T) {
	var timing Timing
	assert.Equal(t, time.Duration(0), timing.Avg())

	timing.Add(3 * time.Millisecond)
	timing.Add(time.Millisecond)
	timing.Add(5 * time.Millisecond)

	assert.Equal(t, int64(3), timing.Count)
	assert.Equal(t, time.Millisecond, timing.Min)
	assert.Equal(t, 5*time.Millisecond, timing.Max)
	assert.Equal(t, 3*time.Millisecond, timing.Avg())
}

func TestMonkeyNeverQuits(t *testing.T) {
	m := newMonkey(5)
	held := false

	for range 10000 {
		for _, in := range m.inputs() {
			require.NotEqual(t, game.KeyQuit, in.Key)
			require.NotEqual(t, game.KeyRestart, in.Key)
			if in.Key == game.KeySoftDrop {
				require.Equal(t, held, in.Action == game.Release, "soft drop alternates press and release")
				held = in.Action == game.Press
			}
		}
	}
}

func TestRunSoak(t *testing.T) {
	rt := game.NewRuntime(game.Options{Seed: 11, Logger: zerolog.Nop()}, game.WindowLayout(game.WindowWidth, game.WindowHeight))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	stats := runSoak(ctx, rt, 11, 16*time.Millisecond, zerolog.Nop())

	require.Positive(t, stats.UpdateTime.Count)
	assert.Positive(t, stats.Inputs)
	assert.Equal(t, stats.UpdateTime.Count, rt.Session().Stats.Frames)
	assert.False(t, rt.Done())

	report := newReport("run", "soak", 11, time.Now(), rt)
	report.Soak = stats

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "## Soak")
	assert.Contains(t, buf.String(), "**Simulated Frame:** 16ms")
}
