package internal

import "github.com/brentlaster/spades/internal/domain"

// TrickView is what a follower needs to know about the trick on the table.
type TrickView struct {
	Count         int
	LeadSuit      domain.Suit
	HighestOfLead domain.Rank // 0 when nothing of the led suit was played
	HasSpade      bool
	HighestSpade  domain.Rank
	Winner        domain.Seat
}

// AnalyzeTrick summarizes an in-progress trick. An empty trick yields a zero
// view with Winner set to NoSeat.
func AnalyzeTrick(trick domain.Trick) TrickView {
	view := TrickView{Count: len(trick.Plays), Winner: domain.NoSeat}
	lead, ok := trick.LeadSuit()
	if !ok {
		return view
	}
	view.LeadSuit = lead
	for _, p := range trick.Plays {
		if p.Card.Suit == lead && p.Card.Rank > view.HighestOfLead {
			view.HighestOfLead = p.Card.Rank
		}
		if p.Card.IsSpade() {
			view.HasSpade = true
			if p.Card.Rank > view.HighestSpade {
				view.HighestSpade = p.Card.Rank
			}
		}
	}
	if best, ok := domain.WinningPlay(trick.Plays); ok {
		view.Winner = best.Seat
	}
	return view
}

// PartnerWinning reports whether seat's partner currently holds the trick.
func (v TrickView) PartnerWinning(seat domain.Seat) bool {
	return v.Count > 0 && v.Winner == seat.Partner()
}
