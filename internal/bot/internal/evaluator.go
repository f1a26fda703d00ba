package internal

import "github.com/brentlaster/spades/internal/domain"

// Card selectors. Inputs are expected in canonical order; on equal ranks the
// earlier card wins, so results never depend on how a hand was dealt.

// Lowest returns the lowest-ranked card.
func Lowest(cards []domain.Card) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < best.Rank {
			best = c
		}
	}
	return best
}

// Highest returns the highest-ranked card.
func Highest(cards []domain.Card) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

// LowestNonSpade sheds the cheapest side card, falling back to the lowest
// card overall when only spades remain.
func LowestNonSpade(cards []domain.Card) domain.Card {
	if side := domain.NonSpades(cards); len(side) > 0 {
		return Lowest(side)
	}
	return Lowest(cards)
}

// Above returns the cards ranked strictly higher than rank.
func Above(cards []domain.Card, rank domain.Rank) []domain.Card {
	var out []domain.Card
	for _, c := range cards {
		if c.Rank > rank {
			out = append(out, c)
		}
	}
	return out
}

// TryToWin picks the cheapest card that takes the trick, or sheds low when
// no card can.
//
// Holding the led suit, it wins only if the trick has not been trumped (or
// spades were led). Void in the led suit, it trumps with the lowest spade
// that beats any spade already played.
func TryToWin(legal []domain.Card, trick domain.Trick) domain.Card {
	view := AnalyzeTrick(trick)

	if follow := domain.FilterSuit(legal, view.LeadSuit); len(follow) > 0 {
		if !view.HasSpade || view.LeadSuit == domain.Spades {
			if winners := Above(follow, view.HighestOfLead); len(winners) > 0 {
				return Lowest(winners)
			}
		}
		return Lowest(follow)
	}

	if spades := domain.FilterSuit(legal, domain.Spades); len(spades) > 0 {
		if !view.HasSpade {
			return Lowest(spades)
		}
		if over := Above(spades, view.HighestSpade); len(over) > 0 {
			return Lowest(over)
		}
	}

	return LowestNonSpade(legal)
}
