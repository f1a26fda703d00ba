package bot

import (
	"github.com/brentlaster/spades/internal/domain"
)

func cards(s string) []domain.Card {
	hand := domain.MustParseCards(s)
	domain.SortHand(hand)
	return hand
}

func trickOf(leader domain.Seat, s string) domain.Trick {
	t := domain.Trick{Leader: leader, Winner: domain.NoSeat}
	seat := leader
	for _, c := range domain.MustParseCards(s) {
		t.Plays = append(t.Plays, domain.Play{Seat: seat, Card: c})
		seat = seat.Next()
	}
	return t
}

// gameFor builds a playing-phase game where seat holds hand and faces trick.
func gameFor(seat domain.Seat, hand string, trick domain.Trick, spadesBroken bool) *domain.Game {
	g := domain.NewGame("test", 0)
	g.Phase = domain.PhasePlaying
	for _, s := range domain.Seats {
		g.Players[s].Bid = 3
	}
	g.Players[seat].Hand = cards(hand)
	g.CurrentTrick = trick
	g.CurrentSeat = seat
	g.SpadesBroken = spadesBroken
	return g
}
