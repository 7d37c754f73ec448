package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock implementation backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Fixed is a Clocker pinned to a single instant, useful for exercising
// passcode expiry boundaries deterministically in tests.
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time {
	return f.At
}
