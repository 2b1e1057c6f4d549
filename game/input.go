package game

import "iter"

// Key is a logical game key, independent of any keyboard layout.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyRotate
	KeySoftDrop
	KeyHardDrop
	KeyRestart
	KeyQuit
)

var keyNames = [...]string{"left", "right", "rotate", "soft-drop", "hard-drop", "restart", "quit"}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

type Action int

const (
	Press Action = iota
	Release
)

func (a Action) String() string {
	if a == Release {
		return "release"
	}
	return "press"
}

// Input is one discrete key event.
type Input struct {
	Key    Key
	Action Action
}

// InputQueue carries input events from a front end to the frame loop. Push
// may be called from any goroutine; events are consumed on the frame
// goroutine only.
type InputQueue struct {
	events chan Input
}

// DefaultQueueSize is enough for several frames of key mashing.
const DefaultQueueSize = 64

// NewInputQueue creates a queue buffering up to size events.
func NewInputQueue(size int) InputQueue {
	return InputQueue{events: make(chan Input, size)}
}

// Push enqueues in without blocking. It reports false when the queue is full
// and the event was dropped.
func (q InputQueue) Push(in Input) bool {
	select {
	case q.events <- in:
		return true
	default:
		return false
	}
}

// Press enqueues a key press.
func (q InputQueue) Press(k Key) bool {
	return q.Push(Input{Key: k, Action: Press})
}

// Release enqueues a key release.
func (q InputQueue) Release(k Key) bool {
	return q.Push(Input{Key: k, Action: Release})
}

// Len returns the number of queued events.
func (q InputQueue) Len() int {
	return len(q.events)
}

// Drain yields the events queued when it starts, oldest first.
func (q InputQueue) Drain() iter.Seq[Input] {
	return func(yield func(Input) bool) {
		for range len(q.events) {
			select {
			case in := <-q.events:
				if !yield(in) {
					return
				}
			default:
				return
			}
		}
	}
}
