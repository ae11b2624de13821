package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/noobcogs/internal/common/clock Clock

// Clock tells services what time it is so timers, sessions and logs can be tested
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// EmbedTimestamp renders the current time as the ISO 8601 string embed timestamps take
func EmbedTimestamp(c Clock) string {
	return c.Now().UTC().Format(time.RFC3339)
}
