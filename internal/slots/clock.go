package slots

import "github.com/jonboulle/clockwork"

// Clock schedules the per-cell ticks, the settle delay and the auto-spin delays.
// Tests pass a clockwork fake.
type Clock = clockwork.Clock

// Timer is a scheduled callback that can be cancelled
type Timer = clockwork.Timer

// RealClock returns the wall clock
func RealClock() Clock {
	return clockwork.NewRealClock()
}
