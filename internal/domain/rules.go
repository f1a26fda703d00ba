package domain

import "errors"

var ErrIncompleteTrick = errors.New("trick does not have four plays")

// LegalPlays returns the cards in hand that may be played to trick, in
// canonical order. The result is never empty for a non-empty hand.
//
// A leader may not lead a spade until spades are broken unless the hand is
// all spades. A follower must follow the led suit when able and may play
// anything otherwise.
func LegalPlays(hand []Card, trick Trick, spadesBroken bool) []Card {
	var legal []Card
	if lead, ok := trick.LeadSuit(); ok {
		legal = FilterSuit(hand, lead)
		if len(legal) == 0 {
			legal = append([]Card(nil), hand...)
		}
	} else {
		if !spadesBroken {
			legal = NonSpades(hand)
		}
		if len(legal) == 0 {
			legal = append([]Card(nil), hand...)
		}
	}
	SortHand(legal)
	return legal
}

// IsLegalPlay reports whether card may be played from hand to trick.
func IsLegalPlay(card Card, hand []Card, trick Trick, spadesBroken bool) bool {
	return ContainsCard(LegalPlays(hand, trick, spadesBroken), card)
}

// Beats reports whether challenger takes the lead from current. A spade
// beats any non-spade; otherwise only a higher card of the same suit wins.
func Beats(challenger, current Card) bool {
	if challenger.IsSpade() && !current.IsSpade() {
		return true
	}
	return challenger.Suit == current.Suit && challenger.Rank > current.Rank
}

// WinningPlay returns the play currently winning a possibly partial trick.
func WinningPlay(plays []Play) (Play, bool) {
	if len(plays) == 0 {
		return Play{}, false
	}
	best := plays[0]
	for _, p := range plays[1:] {
		if Beats(p.Card, best.Card) {
			best = p
		}
	}
	return best, true
}

// TrickWinner resolves a complete trick.
func TrickWinner(t Trick) (Seat, error) {
	if len(t.Plays) != 4 {
		return NoSeat, ErrIncompleteTrick
	}
	best, _ := WinningPlay(t.Plays)
	return best.Seat, nil
}

// IsGameOver reports whether either team has reached target or sunk to the
// losing floor.
func IsGameOver(northSouth, eastWest, target int) bool {
	return northSouth >= target || eastWest >= target ||
		northSouth <= LosingFloor || eastWest <= LosingFloor
}

// Winner names the team with the higher total once the game is over.
// Equal totals, or a game still in progress, yield NoTeam.
func Winner(scores [2]TeamScore, target int) Team {
	ns, ew := scores[NorthSouth].Total, scores[EastWest].Total
	if !IsGameOver(ns, ew, target) {
		return NoTeam
	}
	switch {
	case ns > ew:
		return NorthSouth
	case ew > ns:
		return EastWest
	default:
		return NoTeam
	}
}
