package internal

import "github.com/brentlaster/spades/internal/domain"

// HandProfile summarizes suit distribution for bidding and lead selection.
type HandProfile struct {
	SuitCounts [4]int
}

// ProfileHand counts the cards held in each suit.
func ProfileHand(hand []domain.Card) HandProfile {
	var profile HandProfile
	for _, c := range hand {
		profile.SuitCounts[c.Suit]++
	}
	return profile
}

// Count returns the number of cards held in suit.
func (p HandProfile) Count(suit domain.Suit) int {
	return p.SuitCounts[suit]
}

// Spades returns the trump length.
func (p HandProfile) Spades() int {
	return p.SuitCounts[domain.Spades]
}

// SideVoids returns the non-spade suits with no cards.
func (p HandProfile) SideVoids() []domain.Suit {
	var out []domain.Suit
	for _, s := range domain.Suits[1:] {
		if p.SuitCounts[s] == 0 {
			out = append(out, s)
		}
	}
	return out
}

// SideSingletons returns the non-spade suits holding exactly one card.
func (p HandProfile) SideSingletons() []domain.Suit {
	var out []domain.Suit
	for _, s := range domain.Suits[1:] {
		if p.SuitCounts[s] == 1 {
			out = append(out, s)
		}
	}
	return out
}
