package atm

import "time"

// Clock supplies the current time for card expiry checks and transaction
// timestamps. Injectable so sessions are deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }
