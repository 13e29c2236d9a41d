// Package clock supplies the time used for court versions and admin
// session expiry.
package clock

import "time"

// Clock tells the time
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to a Clock
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time {
	return f()
}

// New returns the system clock. Times are reported in UTC so stored
// snapshots compare equal after a round trip.
func New() Clock {
	return Func(func() time.Time {
		return time.Now().UTC()
	})
}
