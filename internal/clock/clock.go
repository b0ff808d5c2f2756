// Package clock provides the row timestamp source and context-aware sleeping.
package clock

import "time"

// Clock supplies the ingestion timestamp stamped onto persisted rows.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

// Now returns the current UTC time truncated to microseconds, the precision Postgres keeps.
func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Fixed always returns the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
