package application

import "time"

// Clock abstraction so services are testable with a fixed time
type Clock interface {
	Now() time.Time
}

// SystemClock default implementation using time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Timestamp renders a clock reading the way records store it.
func Timestamp(c Clock) string {
	return c.Now().UTC().Format(time.RFC3339)
}
