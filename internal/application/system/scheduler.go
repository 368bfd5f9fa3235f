package system

import "sort"

// timerEpsilon absorbs float drift from summing frame deltas.
const timerEpsilon = 1e-9

// Scheduler runs an action once after a delay.
type Scheduler interface {
	ScheduleOnce(delay float64, action func())
}

type timer struct {
	due    float64
	seq    int
	action func()
}

// Timers is a Scheduler driven by an explicit clock. Actions fire from
// Advance, in due order, once the clock has reached their due time.
type Timers struct {
	now     float64
	seq     int
	pending []timer
}

// NewTimers creates an empty timer set at time zero.
func NewTimers() *Timers {
	return &Timers{}
}

// ScheduleOnce queues action to run delay seconds from now.
func (t *Timers) ScheduleOnce(delay float64, action func()) {
	if delay < 0 {
		delay = 0
	}
	t.seq++
	t.pending = append(t.pending, timer{due: t.now + delay, seq: t.seq, action: action})
}

// Advance moves the clock forward and fires every due action. Actions
// scheduled while firing run in the same call if they are already due.
func (t *Timers) Advance(dt float64) {
	t.now += dt

	for {
		due := t.popDue()
		if due == nil {
			return
		}
		due.action()
	}
}

func (t *Timers) popDue() *timer {
	if len(t.pending) == 0 {
		return nil
	}

	sort.SliceStable(t.pending, func(i, j int) bool {
		if t.pending[i].due == t.pending[j].due {
			return t.pending[i].seq < t.pending[j].seq
		}
		return t.pending[i].due < t.pending[j].due
	})

	next := t.pending[0]
	if next.due > t.now+timerEpsilon {
		return nil
	}
	t.pending = t.pending[1:]
	return &next
}

// Now returns the current clock value.
func (t *Timers) Now() float64 { return t.now }

// Pending returns the number of actions not yet fired.
func (t *Timers) Pending() int { return len(t.pending) }
