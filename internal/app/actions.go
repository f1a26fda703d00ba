package app

import "github.com/brentlaster/spades/internal/domain"

// Action is an input to the game state machine.
type Action interface {
	actionKind() string
}

// StartGame deals a fresh game, discarding all scores.
type StartGame struct{}

// PlaceBid submits seat's bid; 0 is nil.
type PlaceBid struct {
	Seat domain.Seat
	Bid  int
}

// PlayCard plays card from seat's hand to the current trick.
type PlayCard struct {
	Seat domain.Seat
	Card domain.Card
}

// ClearTrick ends the pause after a completed trick.
type ClearTrick struct{}

// StartNextRound deals the next round, keeping scores.
type StartNextRound struct{}

func (StartGame) actionKind() string      { return "start_game" }
func (PlaceBid) actionKind() string       { return "place_bid" }
func (PlayCard) actionKind() string       { return "play_card" }
func (ClearTrick) actionKind() string     { return "clear_trick" }
func (StartNextRound) actionKind() string { return "start_next_round" }

// ActionName returns a stable name for logging.
func ActionName(a Action) string {
	if a == nil {
		return "none"
	}
	return a.actionKind()
}
