package playback

import "time"

// Timer is a scheduled task that can be cancelled.
type Timer interface {
	// Stop prevents the task from running. It returns false if the task
	// already ran or was stopped.
	Stop() bool
}

// Scheduler runs a function once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules with time.AfterFunc.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
