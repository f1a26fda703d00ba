package ports

import (
	"context"
	"strconv"
	"strings"

	"github.com/brentlaster/spades/internal/domain"
)

// Snapshot is the read-only view of one seat's situation handed to advisors.
// It carries copies, so an advisor can never reach back into live state.
type Snapshot struct {
	Phase         domain.Phase
	Hand          []domain.Card
	Trick         []domain.Card
	Bid           int // domain.NoBid before the seat has bid
	TricksWon     int
	TeamScore     int
	OpponentScore int
}

// SnapshotFor captures seat's view of g.
func SnapshotFor(g *domain.Game, seat domain.Seat) Snapshot {
	p := g.Players[seat]
	trick := make([]domain.Card, 0, len(g.CurrentTrick.Plays))
	for _, play := range g.CurrentTrick.Plays {
		trick = append(trick, play.Card)
	}
	team := seat.Team()
	return Snapshot{
		Phase:         g.Phase,
		Hand:          append([]domain.Card(nil), p.Hand...),
		Trick:         trick,
		Bid:           p.Bid,
		TricksWon:     p.TricksWon,
		TeamScore:     g.Scores[team].Total,
		OpponentScore: g.Scores[team.Opponent()].Total,
	}
}

// HandString renders the hand as a comma separated list.
func (s Snapshot) HandString() string {
	return joinCards(s.Hand, "none")
}

// TrickString renders the cards on the table, or "none".
func (s Snapshot) TrickString() string {
	return joinCards(s.Trick, "none")
}

// BidString renders the bid as the player would say it.
func (s Snapshot) BidString() string {
	switch {
	case s.Bid == domain.NoBid:
		return "not yet"
	case s.Bid == domain.NilBid:
		return "nil"
	default:
		return strconv.Itoa(s.Bid)
	}
}

func joinCards(cards []domain.Card, empty string) string {
	if len(cards) == 0 {
		return empty
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// AdvisorPort produces a short coaching tip for a snapshot.
type AdvisorPort interface {
	// Advise returns advice text or an error when the advisor is unavailable.
	// Implementations must honour ctx cancellation.
	Advise(ctx context.Context, snap Snapshot) (string, error)
}
