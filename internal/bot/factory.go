package bot

import (
	"fmt"
	"math/rand"
	"time"
)

// NewBrain creates a new AI brain for the given tier. A nil rng is replaced
// with a time-seeded source.
func NewBrain(level Difficulty, rng *rand.Rand) (Brain, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch level {
	case Beginner:
		return &BeginnerBot{rng: rng}, nil
	case Intermediate:
		return &IntermediateBot{}, nil
	case Advanced:
		return &AdvancedBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
