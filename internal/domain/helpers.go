package domain

// RemoveCard returns hand without the first occurrence of card and whether
// it was found. The input slice is not modified.
func RemoveCard(hand []Card, card Card) ([]Card, bool) {
	for i, c := range hand {
		if c == card {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			return append(out, hand[i+1:]...), true
		}
	}
	return hand, false
}

// ContainsCard reports whether hand holds card.
func ContainsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

// CountSuit returns how many cards of suit are in hand.
func CountSuit(hand []Card, suit Suit) int {
	n := 0
	for _, c := range hand {
		if c.Suit == suit {
			n++
		}
	}
	return n
}

// FilterSuit returns the cards of the given suit, preserving order.
func FilterSuit(cards []Card, suit Suit) []Card {
	var out []Card
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// NonSpades returns the cards that are not trumps, preserving order.
func NonSpades(cards []Card) []Card {
	var out []Card
	for _, c := range cards {
		if !c.IsSpade() {
			out = append(out, c)
		}
	}
	return out
}
