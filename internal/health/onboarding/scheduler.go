package onboarding

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs callbacks after a delay and reports the current time.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Timings holds the onboarding delays.
type Timings struct {
	SplashDwell time.Duration
	SplashFade  time.Duration
	Selection   time.Duration
}

// DefaultTimings returns the production onboarding delays.
func DefaultTimings() Timings {
	return Timings{
		SplashDwell: 2500 * time.Millisecond,
		SplashFade:  500 * time.Millisecond,
		Selection:   300 * time.Millisecond,
	}
}

// SplashTotal is the time from start until the language step.
func (t Timings) SplashTotal() time.Duration {
	return t.SplashDwell + t.SplashFade
}

// ClockScheduler schedules callbacks on the runtime timer heap.
type ClockScheduler struct{}

// AfterFunc wraps time.AfterFunc.
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Now wraps time.Now.
func (ClockScheduler) Now() time.Time {
	return time.Now()
}
