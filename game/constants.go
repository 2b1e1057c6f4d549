package game

import (
	"fmt"
	"time"

	"github.com/plus3/colortris/timer"
)

const (
	GravityInterval  = 500 * time.Millisecond
	ShiftInterval    = 80 * time.Millisecond
	SoftDropInterval = 40 * time.Millisecond
)

// Timers driven by the session.
const (
	TimerGravity timer.ID = iota
	TimerShiftLeft
	TimerShiftRight
)

// TimerName returns a display name for the session's timers.
func TimerName(id timer.ID) string {
	switch id {
	case TimerGravity:
		return "gravity"
	case TimerShiftLeft:
		return "shift-left"
	case TimerShiftRight:
		return "shift-right"
	}
	return fmt.Sprintf("timer-%d", int(id))
}

// Classic scoring: points awarded for clearing 1, 2, 3 or 4 lines at once.
var scoreTable = [...]int{0, 40, 100, 300, 1200}

// ScoreFor returns the points for clearing lines rows with one lock.
func ScoreFor(lines int) int {
	if lines < 0 || lines >= len(scoreTable) {
		panic(fmt.Sprintf("game: %d lines cleared by a single lock", lines))
	}
	return scoreTable[lines]
}
