package app

import "time"

// Timer is a scheduled task that can be cancelled before it runs.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules on the wall clock.
type ClockScheduler struct{}

func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Timings are the automatic-action delays.
type Timings struct {
	BidDelay   time.Duration
	PlayDelay  time.Duration
	TrickPause time.Duration
}

// DefaultTimings pace AI turns for a human watching the table.
var DefaultTimings = Timings{
	BidDelay:   800 * time.Millisecond,
	PlayDelay:  600 * time.Millisecond,
	TrickPause: 1200 * time.Millisecond,
}
