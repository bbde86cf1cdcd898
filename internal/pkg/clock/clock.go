// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed implements Clock returning a preset time, for tests
type Fixed struct {
	Time time.Time
}

// Now returns the preset time
func (c *Fixed) Now() time.Time {
	return c.Time
}

// NewFixed returns a clock frozen at t
func NewFixed(t time.Time) Clock {
	return &Fixed{Time: t}
}
