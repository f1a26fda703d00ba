package bot

import (
	"math/rand"

	botinternal "github.com/brentlaster/spades/internal/bot/internal"
	"github.com/brentlaster/spades/internal/domain"
)

// BeginnerBot leads at random and only sometimes takes a trick it could win.
type BeginnerBot struct {
	rng *rand.Rand
}

func (b *BeginnerBot) ChooseBid(game *domain.Game, seat domain.Seat) (int, error) {
	hand, err := handOf(game, seat)
	if err != nil {
		return 0, err
	}
	return Bid(hand, Beginner, b.rng), nil
}

func (b *BeginnerBot) ChooseCard(game *domain.Game, seat domain.Seat) (domain.Card, error) {
	return decide(game, seat, b.play)
}

func (b *BeginnerBot) play(t turn) domain.Card {
	if t.leading() {
		return t.legal[b.rng.Intn(len(t.legal))]
	}

	view := botinternal.AnalyzeTrick(t.trick)
	winners := botinternal.Above(domain.FilterSuit(t.legal, view.LeadSuit), view.HighestOfLead)
	if len(winners) > 0 && b.rng.Float64() > beginnerWinGate {
		return botinternal.Lowest(winners)
	}
	return botinternal.Lowest(t.legal)
}
