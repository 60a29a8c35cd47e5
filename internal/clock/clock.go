package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Used by tests.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) Fixed {
	return Fixed{t: t}
}

func (f Fixed) Now() time.Time {
	return f.t
}
