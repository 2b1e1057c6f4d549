package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/colortris/game"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// SoakStats describes a headless run driven by random input.
type SoakStats struct {
	Frame         time.Duration
	Inputs        int64
	UpdateTime    Timing
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Timing aggregates update durations.
type Timing struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
}

func (t *Timing) Add(d time.Duration) {
	if t.Count == 0 || d < t.Min {
		t.Min = d
	}
	if d > t.Max {
		t.Max = d
	}
	t.Total += d
	t.Count++
}

func (t Timing) Avg() time.Duration {
	if t.Count == 0 {
		return 0
	}
	return t.Total / time.Duration(t.Count)
}

var soakKeys = [...]game.Key{game.KeyLeft, game.KeyRight, game.KeyRotate, game.KeyHardDrop}

// monkey plays randomly: most frames do nothing, some tap a key, and soft
// drop is toggled now and then.
type monkey struct {
	rng      *rand.Rand
	softDrop bool
}

func newMonkey(seed uint64) *monkey {
	return &monkey{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

func (m *monkey) inputs() []game.Input {
	switch roll := m.rng.IntN(20); {
	case roll < 12:
		return nil
	case roll < 19:
		k := soakKeys[m.rng.IntN(len(soakKeys))]
		return []game.Input{{Key: k, Action: game.Press}, {Key: k, Action: game.Release}}
	default:
		m.softDrop = !m.softDrop
		action := game.Release
		if m.softDrop {
			action = game.Press
		}
		return []game.Input{{Key: game.KeySoftDrop, Action: action}}
	}
}

func newSoakCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Play headless with random input and report timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, err := cmd.Flags().GetDuration("duration")
			if err != nil {
				return err
			}
			frame, err := cmd.Flags().GetDuration("frame")
			if err != nil {
				return err
			}

			cfg := a.config()
			runID := uuid.NewString()
			logger, closer, err := newLogger(cfg, cmd.ErrOrStderr(), runID)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), duration)
			defer cancel()

			started := time.Now()
			rt := game.NewRuntime(cfg.options(logger), game.WindowLayout(game.WindowWidth, game.WindowHeight))
			soak := runSoak(ctx, rt, cfg.Seed, frame, logger)

			report := newReport(runID, "soak", cfg.Seed, started, rt)
			report.Soak = soak
			return report.Generate(cmd.OutOrStdout())
		},
	}

	cmd.Flags().Duration("duration", 10*time.Second, "how long to run")
	cmd.Flags().Duration("frame", 16*time.Millisecond, "simulated time per frame")
	return cmd
}

// runSoak updates rt as fast as it can, one simulated frame at a time, until
// ctx is done.
func runSoak(ctx context.Context, rt *game.Runtime, seed uint64, frame time.Duration, logger zerolog.Logger) *SoakStats {
	stats := &SoakStats{Frame: frame}
	player := newMonkey(seed)
	queue := rt.Input()

	runtime.ReadMemStats(&stats.MemStatsStart)
	logger.Info().Dur("frame", frame).Msg("soak started")

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			for _, in := range player.inputs() {
				queue.Push(in)
				stats.Inputs++
			}

			updateStart := time.Now()
			rt.Update(frame)
			stats.UpdateTime.Add(time.Since(updateStart))
		}
	}

	runtime.ReadMemStats(&stats.MemStatsEnd)
	logger.Info().Int64("updates", stats.UpdateTime.Count).Msg("soak finished")
	return stats
}
