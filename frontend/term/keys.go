package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/colortris/game"
)

// SoftDropHold is how long soft drop stays held after the last down-arrow
// event. Terminal key repeat re-extends it while the key is down.
const SoftDropHold = 120 * time.Millisecond

func translate(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyUp:
		return game.KeyRotate, true
	case tcell.KeyDown:
		return game.KeySoftDrop, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.KeyHardDrop, true
		case 'r', 'R':
			return game.KeyRestart, true
		case 'q', 'Q':
			return game.KeyQuit, true
		}
	}
	return 0, false
}

// tapper turns terminal key events, which have no key-up, into press and
// release pairs. Soft drop is the one held key: it is released once no down
// event has arrived for hold.
type tapper struct {
	hold     time.Duration
	holding  bool
	deadline time.Time
}

func newTapper(hold time.Duration) *tapper {
	return &tapper{hold: hold}
}

func (t *tapper) key(k game.Key, now time.Time) []game.Input {
	if k == game.KeySoftDrop {
		t.deadline = now.Add(t.hold)
		if t.holding {
			return nil
		}
		t.holding = true
		return []game.Input{{Key: k, Action: game.Press}}
	}

	return []game.Input{
		{Key: k, Action: game.Press},
		{Key: k, Action: game.Release},
	}
}

func (t *tapper) expire(now time.Time) []game.Input {
	if !t.holding || now.Before(t.deadline) {
		return nil
	}
	t.holding = false
	return []game.Input{{Key: game.KeySoftDrop, Action: game.Release}}
}
