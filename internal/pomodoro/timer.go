package pomodoro

import (
	"fmt"
	"time"
)

// State is the countdown state of a Timer.
type State int

const (
	Idle State = iota
	Running
	Paused
)

var stateNames = map[State]string{
	Idle:    "IDLE",
	Running: "RUNNING",
	Paused:  "PAUSED",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Timer is a countdown advanced by one second per Tick. It has no clock of
// its own; the caller delivers ticks.
type Timer struct {
	state     State
	duration  time.Duration
	remaining time.Duration
}

func NewTimer(d time.Duration) *Timer {
	return &Timer{state: Idle, duration: d, remaining: d}
}

func (t *Timer) State() State             { return t.state }
func (t *Timer) Duration() time.Duration  { return t.duration }
func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) Running() bool            { return t.state == Running }

// Start begins or resumes the countdown. It reports whether the state
// changed; starting a running timer is a no-op.
func (t *Timer) Start() bool {
	switch t.state {
	case Running:
		return false
	case Idle:
		if t.remaining <= 0 {
			t.remaining = t.duration
		}
	}
	t.state = Running
	return true
}

// Pause stops a running countdown without touching the remaining time.
func (t *Timer) Pause() bool {
	if t.state != Running {
		return false
	}
	t.state = Paused
	return true
}

// Reset returns to Idle with the full configured duration.
func (t *Timer) Reset() {
	t.state = Idle
	t.remaining = t.duration
}

// Tick removes one second from a running countdown and reports whether it
// expired. On expiry the timer is Idle with nothing remaining; the caller
// runs the completion and then calls Reset.
func (t *Timer) Tick() bool {
	if t.state != Running {
		return false
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.state = Idle
	return true
}

// SetDuration changes the configured length. A running countdown keeps its
// remaining time; otherwise the timer is re-armed to d.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
	if t.state != Running {
		t.remaining = d
	}
}

// FormatClock renders d as MM:SS.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
