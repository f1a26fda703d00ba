package bot

import (
	"github.com/brentlaster/spades/internal/domain"
)

// Agent represents an autonomous player bound to a seat.
type Agent struct {
	Seat       domain.Seat
	Name       string
	Difficulty Difficulty
	Strategy   Brain
}

// NewAgent builds an agent with a brain for the requested tier.
func NewAgent(seat domain.Seat, name string, level Difficulty, brain Brain) *Agent {
	return &Agent{Seat: seat, Name: name, Difficulty: level, Strategy: brain}
}

// Bid asks the agent for its contract.
func (a *Agent) Bid(game *domain.Game) (int, error) {
	return a.Strategy.ChooseBid(game, a.Seat)
}

// Play asks the agent to calculate its card based on the current game state.
func (a *Agent) Play(game *domain.Game) (domain.Card, error) {
	return a.Strategy.ChooseCard(game, a.Seat)
}
