package domain

import "github.com/jonboulle/clockwork"

// clock stamps ProcessedAt. Tests freeze it with SetClock.
var clock = clockwork.NewRealClock()

// SetClock replaces the processing clock. Pass nil to restore the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
}
