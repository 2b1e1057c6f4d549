package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/colortris/game"
	"github.com/plus3/colortris/piece"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with fake front ends and returns the config handed to
// whichever one ran.
func execute(t *testing.T, args ...string) (config, string) {
	t.Helper()

	var (
		got      config
		frontend string
	)
	a := &app{
		v: viper.New(),
		runWindow: func(_ *cobra.Command, cfg config) error {
			got, frontend = cfg, "window"
			return nil
		},
		runTerm: func(_ *cobra.Command, cfg config) error {
			got, frontend = cfg, "term"
			return nil
		},
	}

	if args == nil {
		// nil would make cobra fall back to os.Args
		args = []string{}
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())
	return got, frontend
}

func TestDefaults(t *testing.T) {
	cfg, frontend := execute(t)

	assert.Equal(t, "window", frontend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.DebugUI)
	assert.False(t, cfg.HoldGameOver)
	assert.False(t, cfg.Report)
	assert.NotZero(t, cfg.Seed, "a zero seed is replaced")
}

func TestFlags(t *testing.T) {
	cfg, frontend := execute(t, "--seed", "7", "--debug-ui", "--hold-game-over", "--log-level", "debug")

	assert.Equal(t, "window", frontend)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.DebugUI)
	assert.True(t, cfg.HoldGameOver)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestTermCommand(t *testing.T) {
	cfg, frontend := execute(t, "term", "--report", "--frame-interval", "20ms", "--seed", "3")

	assert.Equal(t, "term", frontend)
	assert.True(t, cfg.Report)
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, uint64(3), cfg.Seed)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("COLORTRIS_SEED", "42")
	t.Setenv("COLORTRIS_HOLD_GAME_OVER", "true")
	t.Setenv("COLORTRIS_LOG_LEVEL", "warn")

	cfg, _ := execute(t, "term")
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.HoldGameOver)
	assert.Equal(t, "warn", cfg.LogLevel)

	cfg, _ = execute(t, "--log-level", "error")
	assert.Equal(t, "error", cfg.LogLevel, "flags win over the environment")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, _, err := newLogger(config{LogLevel: "loud"}, &bytes.Buffer{}, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"loud"`)
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := newLogger(config{LogLevel: "info"}, &buf, "run-1234")
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "run-1234")
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colortris.log")
	logger, closer, err := newLogger(config{LogLevel: "debug", LogFile: path}, nil, "run-5678")
	require.NoError(t, err)

	logger.Debug().Int("lines", 2).Msg("clear")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "run-5678", entry["run"])
	assert.Equal(t, "clear", entry["message"])
	assert.Equal(t, float64(2), entry["lines"])
}

func TestNewLoggerWithoutConsoleDiscards(t *testing.T) {
	logger, closer, err := newLogger(config{LogLevel: "info"}, nil, "run")
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("nowhere")
}

func TestReport(t *testing.T) {
	rt := game.NewRuntime(game.Options{
		Picker: game.SequencePicker(piece.I),
		Logger: zerolog.Nop(),
	}, game.WindowLayout(game.WindowWidth, game.WindowHeight))

	s := rt.Session()
	for x := range s.Field.Width() {
		if x != 4 {
			s.Field.Place(x, 21, piece.ColorOf(piece.Z))
		}
	}
	in := rt.Input()
	in.Press(game.KeyRotate)
	in.Press(game.KeyHardDrop)
	rt.Update(16 * time.Millisecond)
	rt.Update(game.GravityInterval)
	rt.Draw(nil)

	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report := newReport("run-abcd", "window", 99, started, rt)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "**Run ID:** run-abcd")
	assert.Contains(t, out, "**Seed:** 99")
	assert.Contains(t, out, "**Started:** 2026-01-02 03:04:05")
	assert.Contains(t, out, "**Final Score:** 40")
	assert.Contains(t, out, "**1-line clears:** 1")
	assert.NotContains(t, out, "4-line clears")
	assert.Contains(t, out, "**Update Frames:** 2")
	assert.Contains(t, out, "InputSystem")
	assert.Contains(t, out, "TimerSystem")
	assert.Contains(t, out, "RenderSystem")
}

func TestFinishSkipsReportUnlessAsked(t *testing.T) {
	rt := game.NewRuntime(game.Options{Seed: 1, Logger: zerolog.Nop()}, game.WindowLayout(game.WindowWidth, game.WindowHeight))
	report := newReport("run", "term", 1, time.Now(), rt)

	var buf bytes.Buffer
	require.NoError(t, finish(&buf, config{}, zerolog.Nop(), report, nil))
	assert.Empty(t, buf.String())

	require.NoError(t, finish(&buf, config{Report: true}, zerolog.Nop(), report, nil))
	assert.Contains(t, buf.String(), "Session Report")

	assert.ErrorIs(t, finish(&buf, config{Report: true}, zerolog.Nop(), report, os.ErrClosed), os.ErrClosed)
}
