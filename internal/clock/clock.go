// Package clock abstracts the source of the current time so that lock-expiry
// computation and retention sweeps can be tested against fixed dates.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by [time.Now].
func System() Clock {
	return systemClock{}
}

// Fixed is a Clock that always reports the same instant. Tests mutate the
// Instant field directly to simulate the passage of time.
type Fixed struct {
	Instant time.Time
}

func (f *Fixed) Now() time.Time { return f.Instant }

// Date truncates t to its calendar date in UTC. Lock expiries are compared
// at date granularity, matching the DATE column they are stored in.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
