package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/colortris/frontend/term"
	"github.com/plus3/colortris/frontend/window"
	"github.com/plus3/colortris/game"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func runWindow(cmd *cobra.Command, cfg config) error {
	runID := uuid.NewString()
	logger, closer, err := newLogger(cfg, cmd.ErrOrStderr(), runID)
	if err != nil {
		return err
	}
	defer closer.Close()

	rt := game.NewRuntime(cfg.options(logger), game.WindowLayout(game.WindowWidth, game.WindowHeight))
	logger.Info().Uint64("seed", cfg.Seed).Msg("starting window session")

	started := time.Now()
	runErr := window.Run(rt, window.Options{DebugUI: cfg.DebugUI, Logger: logger})
	return finish(cmd.OutOrStdout(), cfg, logger, newReport(runID, "window", cfg.Seed, started, rt), runErr)
}

func runTerm(cmd *cobra.Command, cfg config) error {
	runID := uuid.NewString()
	// the terminal belongs to tcell, so console logging is off
	logger, closer, err := newLogger(cfg, nil, runID)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := term.NewScreen()
	if err != nil {
		return err
	}

	rt := game.NewRuntime(cfg.options(logger), term.Layout())
	logger.Info().Uint64("seed", cfg.Seed).Msg("starting terminal session")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	runErr := term.Run(ctx, rt, screen, term.Options{FrameInterval: cfg.FrameInterval, Logger: logger})
	screen.Fini()

	return finish(cmd.OutOrStdout(), cfg, logger, newReport(runID, "term", cfg.Seed, started, rt), runErr)
}

func finish(out io.Writer, cfg config, logger zerolog.Logger, report *Report, runErr error) error {
	logger.Info().
		Int("score", report.Score).
		Int("lines", report.Stats.Lines).
		Dur("elapsed", report.Elapsed).
		Msg("session finished")

	if runErr != nil {
		return runErr
	}
	if !cfg.Report {
		return nil
	}
	return report.Generate(out)
}
