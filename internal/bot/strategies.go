package bot

import (
	"github.com/brentlaster/spades/internal/domain"
)

// turn is the read-only view every strategy decides from.
type turn struct {
	game  *domain.Game
	seat  domain.Seat
	hand  []domain.Card
	trick domain.Trick
	legal []domain.Card
}

func newTurn(game *domain.Game, seat domain.Seat) (turn, error) {
	if !seat.Valid() {
		return turn{}, ErrUnknownSeat
	}
	hand := game.Players[seat].Hand
	if len(hand) == 0 {
		return turn{}, ErrEmptyHand
	}
	return turn{
		game:  game,
		seat:  seat,
		hand:  hand,
		trick: game.CurrentTrick,
		legal: domain.LegalPlays(hand, game.CurrentTrick, game.SpadesBroken),
	}, nil
}

func (t turn) leading() bool {
	return len(t.trick.Plays) == 0
}

// decide handles the forced single-card case before consulting policy.
func decide(game *domain.Game, seat domain.Seat, policy func(turn) domain.Card) (domain.Card, error) {
	t, err := newTurn(game, seat)
	if err != nil {
		return domain.Card{}, err
	}
	if len(t.legal) == 1 {
		return t.legal[0], nil
	}
	return policy(t), nil
}

func handOf(game *domain.Game, seat domain.Seat) ([]domain.Card, error) {
	if !seat.Valid() {
		return nil, ErrUnknownSeat
	}
	hand := game.Players[seat].Hand
	if len(hand) == 0 {
		return nil, ErrEmptyHand
	}
	return hand, nil
}
