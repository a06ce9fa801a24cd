package minimax

import "time"

type StopReason int

const (
	StopNone  StopReason = iota // Every branch was searched to a terminal position
	StopDepth                   // Depth limit was reached in at least one branch
)

func (sr StopReason) String() string {
	if sr == StopDepth {
		return "Depth"
	}
	return "None"
}

type LimiterLike interface {
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Time since the last 'Reset' call
	Elapsed() time.Duration
	// Reset the limiter's state, called on search setup
	Reset()
	// Whether a node at given depth must be rated statically instead of expanded
	Cutoff(depth int) bool
	// Get the reason why the search stopped, valid after search ends
	StopReason() StopReason
}

type Limiter struct {
	limits *Limits
	Timer  *_Timer
	reason StopReason
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
	}
}

func (l *Limiter) Reset() {
	l.Timer.Reset()
	l.reason = StopNone
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() time.Duration {
	return l.Timer.Elapsed()
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

func (l *Limiter) Cutoff(depth int) bool {
	if l.limits.Infinite || depth < l.limits.Depth {
		return false
	}
	l.reason = StopDepth
	return true
}
