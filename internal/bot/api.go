package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brentlaster/spades/internal/domain"
)

// Difficulty names an AI skill tier.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists the tiers from weakest to strongest.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// ParseDifficulty accepts a tier name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

var (
	ErrEmptyHand   = errors.New("seat has no cards")
	ErrUnknownSeat = errors.New("seat out of range")
)

// Brain is the interface that all bot strategies must implement.
// Implementations treat the game as read-only.
type Brain interface {
	ChooseBid(game *domain.Game, seat domain.Seat) (int, error)
	ChooseCard(game *domain.Game, seat domain.Seat) (domain.Card, error)
}
