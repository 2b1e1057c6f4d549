// Package game holds the rules of colortris: the active piece, the session
// state machine and the systems that drive a session from input events and
// frame ticks.
package game

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/plus3/colortris/piece"
	"github.com/plus3/colortris/playfield"
	"github.com/plus3/colortris/timer"
	"github.com/rs/zerolog"
)

// State is the phase of the session's game loop.
type State int

const (
	StateSpawned State = iota
	StateFalling
	StateLocking
	StateLineClearing
	StateGameOver
)

var stateNames = [...]string{"spawned", "falling", "locking", "line-clearing", "game-over"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Active is the falling piece. X and Y locate the top-left of its shape in
// grid coordinates.
type Active struct {
	Kind     piece.Kind
	Shape    piece.Shape
	Color    color.RGBA
	X, Y     int
	Rotation int
}

// Stats counts what happened over the lifetime of a session, across games.
type Stats struct {
	Games     int
	Restarts  int
	GameOvers int
	Spawned   int
	Locked    int
	HardDrops int
	Lines     int
	// Clears[n] counts locks that cleared n rows.
	Clears    [5]int
	BestScore int
	Frames    int64
	PlayTime  time.Duration
}

// Picker chooses the kind of the next piece.
type Picker func() piece.Kind

// RandomPicker picks uniformly from the catalog using a PCG seeded with seed.
func RandomPicker(seed uint64) Picker {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func() piece.Kind {
		return piece.Kinds[rng.IntN(len(piece.Kinds))]
	}
}

// SequencePicker cycles through kinds in order.
func SequencePicker(kinds ...piece.Kind) Picker {
	if len(kinds) == 0 {
		panic("game: SequencePicker needs at least one kind")
	}
	next := 0
	return func() piece.Kind {
		k := kinds[next]
		next = (next + 1) % len(kinds)
		return k
	}
}

// Options configure a Session.
type Options struct {
	// Seed drives the default random picker.
	Seed uint64
	// Picker overrides the random picker.
	Picker Picker
	// Logger receives session events. The zero value discards them.
	Logger zerolog.Logger
	// HoldGameOver stops on a blocked spawn instead of starting over.
	HoldGameOver bool
}

// Session is one player's game: the playfield, the active piece, the score
// and the timers that move things along. It is not safe for concurrent use;
// every method runs on the frame goroutine.
type Session struct {
	Field  *playfield.Grid
	Piece  Active
	Score  int
	State  State
	Stats  Stats
	Timers *timer.Scheduler

	pick         Picker
	log          zerolog.Logger
	holdGameOver bool
	quit         bool
}

// NewSession creates a session and starts its first game.
func NewSession(opts Options) *Session {
	pick := opts.Picker
	if pick == nil {
		pick = RandomPicker(opts.Seed)
	}

	s := &Session{
		Field:        playfield.NewStandard(),
		Timers:       timer.New(),
		pick:         pick,
		log:          opts.Logger.With().Str("component", "session").Logger(),
		holdGameOver: opts.HoldGameOver,
	}
	s.Start()
	return s
}

// Start clears the playfield, zeroes the score and spawns a fresh piece.
// Shift repeat timers are left alone so a held key keeps repeating into the
// new game.
func (s *Session) Start() {
	s.Field.Reset()
	s.Score = 0
	s.Timers.Disarm(TimerGravity)
	s.Stats.Games++

	s.log.Info().Int("game", s.Stats.Games).Msg("new game")
	s.spawn()
}

// QuitRequested reports whether the player asked to quit.
func (s *Session) QuitRequested() bool {
	return s.quit
}

func (s *Session) spawn() {
	kind := s.pick()
	x, y := piece.SpawnOffset(kind, s.Field.Width())

	s.Piece = Active{
		Kind:  kind,
		Shape: piece.ShapeOf(kind),
		Color: piece.ColorOf(kind),
		X:     x,
		Y:     y,
	}
	s.State = StateSpawned
	s.Stats.Spawned++
	s.Timers.Arm(TimerGravity, GravityInterval)

	s.log.Debug().Stringer("kind", kind).Int("x", x).Int("y", y).Msg("spawn")

	if s.Field.Collides(s.Piece.Shape, x, y+1) {
		s.gameOver()
		return
	}
	s.State = StateFalling
}

func (s *Session) gameOver() {
	s.Stats.GameOvers++
	s.Stats.BestScore = max(s.Stats.BestScore, s.Score)
	s.log.Info().
		Int("score", s.Score).
		Int("blocks", s.Field.Count()).
		Bool("hold", s.holdGameOver).
		Msg("game over")

	if s.holdGameOver {
		s.State = StateGameOver
		s.Timers.Reset()
		return
	}
	s.Start()
}

// HandleInput applies one input event. Restart and quit are honored in any
// state; everything else is ignored once the game is over.
func (s *Session) HandleInput(in Input) {
	if in.Action == Press {
		switch in.Key {
		case KeyQuit:
			s.quit = true
			return
		case KeyRestart:
			s.Stats.Restarts++
			s.Stats.BestScore = max(s.Stats.BestScore, s.Score)
			s.Start()
			return
		}
	}

	if s.State == StateGameOver {
		return
	}

	switch in.Action {
	case Press:
		switch in.Key {
		case KeyLeft:
			s.MoveLeft()
			s.Timers.Arm(TimerShiftLeft, ShiftInterval)
		case KeyRight:
			s.MoveRight()
			s.Timers.Arm(TimerShiftRight, ShiftInterval)
		case KeyRotate:
			s.Rotate()
		case KeySoftDrop:
			s.Timers.Arm(TimerGravity, SoftDropInterval)
		case KeyHardDrop:
			s.HardDrop()
		}
	case Release:
		switch in.Key {
		case KeyLeft:
			s.Timers.Disarm(TimerShiftLeft)
		case KeyRight:
			s.Timers.Disarm(TimerShiftRight)
		case KeySoftDrop:
			s.Timers.Arm(TimerGravity, GravityInterval)
		}
	}
}

// HandleTick reacts to a due timer.
func (s *Session) HandleTick(id timer.ID) {
	if s.State == StateGameOver {
		return
	}

	switch id {
	case TimerGravity:
		s.Step()
	case TimerShiftLeft:
		s.MoveLeft()
	case TimerShiftRight:
		s.MoveRight()
	}
}

// Advance runs the session's timers forward by dt.
func (s *Session) Advance(dt time.Duration) {
	if s.State != StateGameOver {
		s.Stats.PlayTime += dt
	}
	s.Timers.Advance(dt, s.HandleTick)
}

// MoveLeft shifts the piece one column left unless that collides.
func (s *Session) MoveLeft() bool {
	return s.shift(-1)
}

// MoveRight shifts the piece one column right unless that collides.
func (s *Session) MoveRight() bool {
	return s.shift(1)
}

func (s *Session) shift(dx int) bool {
	if s.Field.Collides(s.Piece.Shape, s.Piece.X+dx, s.Piece.Y) {
		return false
	}
	s.Piece.X += dx
	return true
}

// Rotate turns the piece clockwise in place. There are no wall kicks: a
// rotation that collides is rejected.
func (s *Session) Rotate() bool {
	rotated := s.Piece.Shape.Rotate()
	if s.Field.Collides(rotated, s.Piece.X, s.Piece.Y) {
		return false
	}
	s.Piece.Shape = rotated
	s.Piece.Rotation = (s.Piece.Rotation + 1) % 4
	return true
}

// HardDrop moves the piece straight down as far as it goes and returns the
// number of rows it fell. The piece locks on the next gravity tick.
func (s *Session) HardDrop() int {
	rows := 0
	for !s.Field.Collides(s.Piece.Shape, s.Piece.X, s.Piece.Y+1) {
		s.Piece.Y++
		rows++
	}
	s.Stats.HardDrops++
	return rows
}

// Step applies one unit of gravity. It reports whether the piece moved; a
// piece that cannot move is locked and the next piece spawned.
func (s *Session) Step() bool {
	if !s.Field.Collides(s.Piece.Shape, s.Piece.X, s.Piece.Y+1) {
		s.Piece.Y++
		return true
	}
	s.lock()
	return false
}

func (s *Session) lock() {
	s.State = StateLocking
	s.Field.Lock(s.Piece.Shape, s.Piece.X, s.Piece.Y, s.Piece.Color)
	s.Stats.Locked++
	s.log.Debug().Stringer("kind", s.Piece.Kind).Int("x", s.Piece.X).Int("y", s.Piece.Y).Msg("lock")

	s.State = StateLineClearing
	if n := s.Field.ClearFullRows(); n > 0 {
		s.Score += ScoreFor(n)
		s.Stats.Lines += n
		s.Stats.Clears[n]++
		s.log.Debug().Int("lines", n).Int("score", s.Score).Msg("clear")
	}

	s.spawn()
}
