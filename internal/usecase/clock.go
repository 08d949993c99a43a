package usecase

import "time"

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return func() time.Time { return time.Now().UTC() }
	}
	return c
}
