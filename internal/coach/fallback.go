package coach

import (
	"context"

	"github.com/brentlaster/spades/internal/domain"
	"github.com/brentlaster/spades/internal/ports"
)

// TipPhase selects a pool of local tips.
type TipPhase int

const (
	TipBidding TipPhase = iota
	TipPlaying
)

// WelcomeTip is shown when a new game is dealt.
const WelcomeTip = "Welcome! Look at your hand and count your likely tricks. Aces and Kings are strong. Spades are trump and beat all other suits!"

var fallbackTips = map[TipPhase][]string{
	TipBidding: {
		"Count your Aces and Kings carefully. Each Ace is almost guaranteed a trick!",
		"Don't forget about your spades - they can trump any other suit.",
		"A conservative bid is usually safer than an aggressive one.",
	},
	TipPlaying: {
		"If your partner is winning the trick, play your lowest card to save your high ones.",
		"Try to lead with your Aces early to guarantee those tricks.",
		"Watch what suits the opponents are out of - they might trump your winners!",
		"If you've already made your bid, try to avoid winning extra tricks (bags).",
	},
}

// TipPhaseFor maps a game phase to its tip pool. Anything other than bidding
// uses the playing tips.
func TipPhaseFor(p domain.Phase) TipPhase {
	if p == domain.PhaseBidding {
		return TipBidding
	}
	return TipPlaying
}

// Fallback is the local advisor. The same snapshot always yields the same tip.
type Fallback struct{}

var _ ports.AdvisorPort = Fallback{}

func (Fallback) Advise(_ context.Context, snap ports.Snapshot) (string, error) {
	return Tip(snap), nil
}

// Tip picks a tip from the pool for the snapshot's phase.
func Tip(snap ports.Snapshot) string {
	pool := fallbackTips[TipPhaseFor(snap.Phase)]
	return pool[(len(snap.Hand)+snap.TricksWon)%len(pool)]
}
