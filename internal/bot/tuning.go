package bot

import "github.com/brentlaster/spades/internal/domain"

// BidWeights are the per-card and distribution values summed into a trick
// estimate. Values are in tenths of a trick so sums stay exact.
type BidWeights struct {
	SpadeValues map[domain.Rank]int

	LongSpadesFive int // holding 5+ spades
	LongSpadesSix  int // additional, holding 6+ spades

	SideAce         int
	SideKing        int
	SideKingMinLen  int
	SideQueen       int
	SideQueenMinLen int

	// Singleton side suit with enough trumps to ruff it.
	RuffBonus     int
	RuffMinSpades int
	// Side suit absent entirely, with at least one trump.
	VoidBonus int

	// Subtracted from the estimate by the advanced tier before rounding.
	AdvancedBias int

	MinBid int
	MaxBid int
}

// DefaultBidWeights drive every tier's bid.
var DefaultBidWeights = BidWeights{
	SpadeValues: map[domain.Rank]int{
		domain.Ace:   10,
		domain.King:  9,
		domain.Queen: 7,
		domain.Jack:  4,
		domain.Ten:   2,
	},
	LongSpadesFive:  5,
	LongSpadesSix:   10,
	SideAce:         9,
	SideKing:        7,
	SideKingMinLen:  2,
	SideQueen:       4,
	SideQueenMinLen: 3,
	RuffBonus:       5,
	RuffMinSpades:   2,
	VoidBonus:       8,
	AdvancedBias:    2,
	MinBid:          1,
	MaxBid:          domain.MaxBid,
}

// beginnerWinGate is the draw a beginner must exceed to take a trick it can win.
const beginnerWinGate = 0.3
