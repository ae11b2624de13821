package colour

import (
	"math/rand"
	"sync"
	"time"
)

// MaxColour is the largest 24-bit RGB value a role colour can take
const MaxColour = 0xFFFFFF

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/noobcogs/internal/colour Picker

// Picker chooses role colours
type Picker interface {
	// Pick returns a colour in 1..MaxColour that differs from current
	Pick(current int) int
}

// Random provides random colour picking
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the colour picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new colour picker
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Pick returns a random colour. Zero is skipped since Discord treats it as "no colour".
func (r *Random) Pick(current int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		c := r.random.Intn(MaxColour) + 1
		if c != current {
			return c
		}
	}
}
