package main

import (
	"strings"
	"time"

	"github.com/plus3/colortris/frontend/term"
	"github.com/plus3/colortris/game"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "COLORTRIS"

type config struct {
	Seed          uint64
	LogLevel      string
	LogFile       string
	DebugUI       bool
	HoldGameOver  bool
	Report        bool
	FrameInterval time.Duration
}

func (c config) options(logger zerolog.Logger) game.Options {
	return game.Options{
		Seed:         c.Seed,
		Logger:       logger,
		HoldGameOver: c.HoldGameOver,
	}
}

type runFunc func(cmd *cobra.Command, cfg config) error

// app carries the settings store and the front end runners, which tests
// replace.
type app struct {
	v         *viper.Viper
	runWindow runFunc
	runTerm   runFunc
}

func defaultApp() *app {
	return &app{
		v:         viper.New(),
		runWindow: runWindow,
		runTerm:   runTerm,
	}
}

func (a *app) bind(flags *pflag.FlagSet) {
	if err := a.v.BindPFlags(flags); err != nil {
		panic(err)
	}
}

func (a *app) config() config {
	seed := a.v.GetUint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return config{
		Seed:          seed,
		LogLevel:      a.v.GetString("log-level"),
		LogFile:       a.v.GetString("log-file"),
		DebugUI:       a.v.GetBool("debug-ui"),
		HoldGameOver:  a.v.GetBool("hold-game-over"),
		Report:        a.v.GetBool("report"),
		FrameInterval: a.v.GetDuration("frame-interval"),
	}
}

func newRootCmd(a *app) *cobra.Command {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "colortris",
		Short: "A falling-block puzzle game",
		Long: "Color Tetris: a falling-block puzzle game.\n\n" +
			"Every flag can also be set through a " + envPrefix + "_<FLAG> environment variable,\n" +
			"for example " + envPrefix + "_LOG_LEVEL=debug.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWindow(cmd, a.config())
		},
	}

	pf := root.PersistentFlags()
	pf.Uint64("seed", 0, "seed for piece selection; 0 picks one from the clock")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("log-file", "", "write JSON logs to this file instead of stderr")
	pf.Bool("hold-game-over", false, "stop at game over instead of starting a new game")
	pf.Bool("report", false, "print a session report on exit")
	a.bind(pf)

	root.Flags().Bool("debug-ui", false, "show the Dear ImGui debug overlay")
	a.bind(root.Flags())

	root.AddCommand(newTermCmd(a), newSoakCmd(a))
	return root
}

func newTermCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		Long: "Play in the terminal.\n\n" +
			"Terminals report no key releases, so every key acts as a tap. Holding the\n" +
			"down arrow soft drops for as long as the terminal repeats the key.\n" +
			"Logs are discarded unless --log-file is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTerm(cmd, a.config())
		},
	}

	cmd.Flags().Duration("frame-interval", term.DefaultFrameInterval, "time between frames")
	a.bind(cmd.Flags())
	return cmd
}
