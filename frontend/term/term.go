// Package term runs a session in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/colortris/game"
	"github.com/rs/zerolog"
)

const DefaultFrameInterval = 16 * time.Millisecond

type Options struct {
	FrameInterval time.Duration
	Logger        zerolog.Logger
}

// NewScreen opens and initializes the terminal screen. Callers must Fini it.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// Run plays rt on screen until the player quits or ctx is cancelled. The
// screen must already be initialized; Run does not Fini it.
func Run(ctx context.Context, rt *game.Runtime, screen tcell.Screen, opts Options) error {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	log := opts.Logger.With().Str("component", "term").Logger()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	queue := rt.Input()
	taps := newTapper(SoftDropHold)
	renderer := NewRenderer(screen)
	push := func(inputs []game.Input) {
		for _, in := range inputs {
			if !queue.Push(in) {
				log.Warn().Stringer("key", in.Key).Msg("input queue full, dropping key")
			}
		}
	}

	log.Info().Dur("frame_interval", interval).Msg("starting terminal loop")

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k, ok := translate(ev); ok {
					push(taps.key(k, ev.When()))
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			push(taps.expire(now))
			rt.Update(now.Sub(last))
			last = now

			if rt.Done() {
				log.Info().Msg("quit requested")
				return nil
			}

			screen.Clear()
			rt.Draw(renderer)
			screen.Show()
		}
	}
}
