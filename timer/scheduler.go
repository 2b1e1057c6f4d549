// Package timer implements recurring timers on a logical clock that is
// advanced explicitly, once per frame.
package timer

import (
	"fmt"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
)

// ID identifies a timer. Lower IDs fire first when deadlines tie.
type ID int

type entry struct {
	period   time.Duration
	deadline time.Duration
}

// Status describes an armed timer.
type Status struct {
	ID        ID
	Period    time.Duration
	Remaining time.Duration
}

// Scheduler tracks armed timers against its own clock. It is not safe for
// concurrent use.
type Scheduler struct {
	now    time.Duration
	timers *intmap.Map[ID, *entry]
}

// New creates a scheduler with no armed timers and the clock at zero.
func New() *Scheduler {
	return &Scheduler{
		timers: intmap.New[ID, *entry](8),
	}
}

// Now returns the scheduler's clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Arm (re)starts timer id so that it fires every period from now on.
// Arming an armed timer restarts its countdown with the new period.
func (s *Scheduler) Arm(id ID, period time.Duration) {
	if period <= 0 {
		panic(fmt.Sprintf("timer: period for timer %d must be positive, got %s", id, period))
	}

	s.timers.Put(id, &entry{
		period:   period,
		deadline: s.now + period,
	})
}

// Disarm stops timer id. Disarming an unarmed timer does nothing.
func (s *Scheduler) Disarm(id ID) {
	s.timers.Del(id)
}

// Reset disarms every timer. The clock keeps running.
func (s *Scheduler) Reset() {
	s.timers.Clear()
}

// Armed reports whether timer id is armed.
func (s *Scheduler) Armed(id ID) bool {
	return s.timers.Has(id)
}

// Period returns the period of timer id, if armed.
func (s *Scheduler) Period(id ID) (time.Duration, bool) {
	e, ok := s.timers.Get(id)
	if !ok {
		return 0, false
	}
	return e.period, true
}

// Advance moves the clock forward by dt and calls fire once for every tick
// that falls due, in deadline order. While fire runs the clock reads the
// tick's deadline, so timers armed or disarmed from inside fire take effect
// for the remaining ticks of the same call.
func (s *Scheduler) Advance(dt time.Duration, fire func(ID)) {
	if dt < 0 {
		panic(fmt.Sprintf("timer: cannot advance by negative duration %s", dt))
	}

	target := s.now + dt
	for {
		id, e, ok := s.next(target)
		if !ok {
			break
		}

		s.now = e.deadline
		e.deadline += e.period
		fire(id)
	}
	s.now = target
}

// next returns the armed timer with the earliest deadline not after target.
func (s *Scheduler) next(target time.Duration) (ID, *entry, bool) {
	var (
		bestID    ID
		bestEntry *entry
	)

	s.timers.ForEach(func(id ID, e *entry) bool {
		if e.deadline > target {
			return true
		}
		if bestEntry == nil || e.deadline < bestEntry.deadline ||
			(e.deadline == bestEntry.deadline && id < bestID) {
			bestID = id
			bestEntry = e
		}
		return true
	})

	return bestID, bestEntry, bestEntry != nil
}

// Snapshot lists the armed timers ordered by ID.
func (s *Scheduler) Snapshot() []Status {
	statuses := make([]Status, 0, s.timers.Len())
	s.timers.ForEach(func(id ID, e *entry) bool {
		statuses = append(statuses, Status{
			ID:        id,
			Period:    e.period,
			Remaining: e.deadline - s.now,
		})
		return true
	})

	slices.SortFunc(statuses, func(a, b Status) int {
		return int(a.ID - b.ID)
	})
	return statuses
}
