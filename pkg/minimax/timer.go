package minimax

import (
	"time"
)

type _Timer struct {
	start time.Time
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now()}
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = time.Now()
}

func (t *_Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// In milliseconds, at least 1 so it can be used as a divisor
func (t *_Timer) Deltatime() int {
	return max(int(t.Elapsed().Milliseconds()), 1)
}
