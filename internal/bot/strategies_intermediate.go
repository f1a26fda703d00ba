package bot

import (
	botinternal "github.com/brentlaster/spades/internal/bot/internal"
	"github.com/brentlaster/spades/internal/domain"
)

// IntermediateBot leads its strongest side cards, protects a partner who is
// winning, and otherwise plays to win cheaply.
type IntermediateBot struct{}

func (b *IntermediateBot) ChooseBid(game *domain.Game, seat domain.Seat) (int, error) {
	hand, err := handOf(game, seat)
	if err != nil {
		return 0, err
	}
	return Bid(hand, Intermediate, nil), nil
}

func (b *IntermediateBot) ChooseCard(game *domain.Game, seat domain.Seat) (domain.Card, error) {
	return decide(game, seat, b.play)
}

func (b *IntermediateBot) play(t turn) domain.Card {
	if t.leading() {
		return SelectLead(t.legal, t.hand, intermediateLeads...)
	}

	view := botinternal.AnalyzeTrick(t.trick)
	if view.Count >= 2 && view.PartnerWinning(t.seat) {
		return botinternal.LowestNonSpade(t.legal)
	}
	return botinternal.TryToWin(t.legal, t.trick)
}
