package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

var ErrInvalidDeck = errors.New("invalid deck")

// NewDeck returns the 52-card deck in canonical order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := Ace; r >= Two; r-- {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle returns a Fisher-Yates permutation of deck driven by rng.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits a full deck into four sorted 13-card hands, indexed by Seat.
// A deck that is not exactly 52 unique cards is rejected.
func Deal(deck []Card) ([4][]Card, error) {
	var hands [4][]Card
	if len(deck) != DeckSize {
		return hands, fmt.Errorf("%w: %d cards", ErrInvalidDeck, len(deck))
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		if c.Suit < Spades || c.Suit > Clubs || c.Rank < Two || c.Rank > Ace {
			return hands, fmt.Errorf("%w: bad card %v", ErrInvalidDeck, c)
		}
		if seen[c] {
			return hands, fmt.Errorf("%w: duplicate %s", ErrInvalidDeck, c)
		}
		seen[c] = true
	}
	for i := range hands {
		hand := make([]Card, HandSize)
		copy(hand, deck[i*HandSize:(i+1)*HandSize])
		SortHand(hand)
		hands[i] = hand
	}
	return hands, nil
}

// SortHand orders cards by suit (spades, hearts, diamonds, clubs) and then by
// descending rank.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return CanonicalLess(cards[i], cards[j])
	})
}

// CanonicalLess reports whether a precedes b in display order.
func CanonicalLess(a, b Card) bool {
	if a.Suit != b.Suit {
		return a.Suit < b.Suit
	}
	return a.Rank > b.Rank
}
