package coach

import "github.com/brentlaster/spades/internal/domain"

// PlayHint explains what playing card would do in the current trick.
func PlayHint(card domain.Card, hand []domain.Card, trick domain.Trick, spadesBroken bool) string {
	if !domain.IsLegalPlay(card, hand, trick, spadesBroken) {
		return "You can't play this card right now."
	}

	lead, ok := trick.LeadSuit()
	if !ok {
		switch {
		case card.IsSpade():
			return "Leading with a spade (trump) - good if you want to pull out opponents' spades."
		case card.Rank >= domain.Queen:
			return "Leading with a high card - likely to win the trick if opponents must follow suit."
		default:
			return "Leading with a low card - a safe play to test what opponents have."
		}
	}

	if card.Suit == lead {
		if card.Rank > highestOf(trick, lead) {
			return "This card beats the current highest - you'd take the lead!"
		}
		return "This card won't beat the current winner - you'd be throwing off."
	}

	if card.IsSpade() {
		top := highestOf(trick, domain.Spades)
		switch {
		case top == 0:
			return "Trumping with a spade! This will win unless someone plays a higher spade."
		case card.Rank > top:
			return "Over-trumping with a higher spade - nice play!"
		default:
			return "This spade won't beat the existing spade in the trick."
		}
	}

	return "Throwing off-suit - you can't win this trick."
}

func highestOf(trick domain.Trick, suit domain.Suit) domain.Rank {
	var top domain.Rank
	for _, p := range trick.Plays {
		if p.Card.Suit == suit && p.Card.Rank > top {
			top = p.Card.Rank
		}
	}
	return top
}
