package bot

import (
	"math/rand"

	botinternal "github.com/brentlaster/spades/internal/bot/internal"
	"github.com/brentlaster/spades/internal/domain"
)

// EstimateTenths returns the number of tricks a hand is expected to take, in
// tenths, before any tier adjustment.
func EstimateTenths(hand []domain.Card) int {
	w := DefaultBidWeights
	profile := botinternal.ProfileHand(hand)
	spades := profile.Spades()

	estimate := 0
	for _, c := range hand {
		if c.IsSpade() {
			estimate += w.SpadeValues[c.Rank]
			continue
		}
		length := profile.Count(c.Suit)
		switch {
		case c.Rank == domain.Ace:
			estimate += w.SideAce
		case c.Rank == domain.King && length >= w.SideKingMinLen:
			estimate += w.SideKing
		case c.Rank == domain.Queen && length >= w.SideQueenMinLen:
			estimate += w.SideQueen
		}
	}

	if spades >= 5 {
		estimate += w.LongSpadesFive
	}
	if spades >= 6 {
		estimate += w.LongSpadesSix
	}
	if spades >= w.RuffMinSpades {
		estimate += w.RuffBonus * len(profile.SideSingletons())
	}
	if spades >= 1 {
		estimate += w.VoidBonus * len(profile.SideVoids())
	}
	return estimate
}

// EstimateTricks returns the real-valued trick estimate.
func EstimateTricks(hand []domain.Card) float64 {
	return float64(EstimateTenths(hand)) / 10
}

// Bid turns a hand into a contract for the given tier. The AI never bids nil.
// rng is only drawn from by the beginner tier.
func Bid(hand []domain.Card, level Difficulty, rng *rand.Rand) int {
	w := DefaultBidWeights
	tenths := EstimateTenths(hand)
	bid := roundTenths(tenths)

	switch level {
	case Beginner:
		if rng.Float64() > 0.5 {
			bid++
		} else {
			bid--
		}
	case Advanced:
		bid = roundTenths(tenths - w.AdvancedBias)
	}

	return max(w.MinBid, min(w.MaxBid, bid))
}

// roundTenths rounds a tenths value to the nearest whole trick, halves up.
func roundTenths(tenths int) int {
	n := tenths + 5
	if n < 0 {
		return (n - 9) / 10
	}
	return n / 10
}
