package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"golang.org/x/time/rate"
)

// Cooldown allows one use per period for each key
type Cooldown struct {
	mu       sync.Mutex
	per      time.Duration
	now      func() time.Time
	limiters map[string]*rate.Limiter
}

// NewCooldown creates a cooldown of one use per period; now defaults to time.Now
func NewCooldown(per time.Duration, now func() time.Time) *Cooldown {
	if now == nil {
		now = time.Now
	}
	return &Cooldown{
		per:      per,
		now:      now,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow takes a use for key, or returns how long until the next one
func (c *Cooldown) Allow(key string) (bool, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lim, ok := c.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(c.per), 1)
		c.limiters[key] = lim
	}

	now := c.now()
	res := lim.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}

	return true, 0
}

// cooldownError is the rejection shown while a command cools down
func cooldownError(retry time.Duration) error {
	secs := retry.Truncate(time.Second)
	if secs < retry {
		secs += time.Second
	}
	return HandlerError(fmt.Sprintf("This command is on cooldown. Try again in %s.", format.Duration(secs)))
}
