package bot

import (
	botinternal "github.com/brentlaster/spades/internal/bot/internal"
	"github.com/brentlaster/spades/internal/domain"
)

// AdvancedBot tracks whether its team still needs tricks for the contract.
// Until the bid is made it leads winners and short suits; afterwards it
// ducks to avoid bags.
type AdvancedBot struct{}

func (b *AdvancedBot) ChooseBid(game *domain.Game, seat domain.Seat) (int, error) {
	hand, err := handOf(game, seat)
	if err != nil {
		return 0, err
	}
	return Bid(hand, Advanced, nil), nil
}

func (b *AdvancedBot) ChooseCard(game *domain.Game, seat domain.Seat) (domain.Card, error) {
	return decide(game, seat, b.play)
}

// needMore reports whether the seat's team is still short of its combined bid.
func needMore(game *domain.Game, seat domain.Seat) bool {
	team := seat.Team()
	return game.TeamTricks(team) < game.TeamBid(team)
}

func (b *AdvancedBot) play(t turn) domain.Card {
	short := needMore(t.game, t.seat)

	if t.leading() {
		if short {
			return SelectLead(t.legal, t.hand, aggressiveLeads...)
		}
		return SelectLead(t.legal, t.hand, safeLeads...)
	}

	view := botinternal.AnalyzeTrick(t.trick)
	if view.Count == 3 {
		if view.PartnerWinning(t.seat) {
			return botinternal.LowestNonSpade(t.legal)
		}
		return botinternal.TryToWin(t.legal, t.trick)
	}
	if view.Count >= 2 && view.PartnerWinning(t.seat) {
		return botinternal.LowestNonSpade(t.legal)
	}
	if short {
		return botinternal.TryToWin(t.legal, t.trick)
	}
	return botinternal.LowestNonSpade(t.legal)
}
