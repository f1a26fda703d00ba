package bot

import (
	botinternal "github.com/brentlaster/spades/internal/bot/internal"
	"github.com/brentlaster/spades/internal/domain"
)

// LeadContext holds the state for the lead selection pipeline.
type LeadContext struct {
	Legal   []domain.Card
	Profile botinternal.HandProfile
	Chosen  *domain.Card
}

// LeadRule proposes a lead card. Rules run in order and the first one to
// choose wins.
type LeadRule interface {
	Apply(ctx *LeadContext)
}

// SelectLead runs rules against the legal leads. The final fallback is the
// lowest legal card.
func SelectLead(legal, hand []domain.Card, rules ...LeadRule) domain.Card {
	ctx := &LeadContext{Legal: legal, Profile: botinternal.ProfileHand(hand)}
	for _, r := range rules {
		r.Apply(ctx)
		if ctx.Chosen != nil {
			return *ctx.Chosen
		}
	}
	return botinternal.Lowest(legal)
}

func (ctx *LeadContext) choose(c domain.Card) {
	ctx.Chosen = &c
}

// SideAceRule leads the first non-spade ace.
type SideAceRule struct{}

func (r *SideAceRule) Apply(ctx *LeadContext) {
	for _, c := range ctx.Legal {
		if c.Rank == domain.Ace && !c.IsSpade() {
			ctx.choose(c)
			return
		}
	}
}

// ProtectedKingRule leads a non-spade king backed by at least one more card
// of its suit.
type ProtectedKingRule struct{}

func (r *ProtectedKingRule) Apply(ctx *LeadContext) {
	for _, c := range ctx.Legal {
		if c.Rank == domain.King && !c.IsSpade() && ctx.Profile.Count(c.Suit) >= 2 {
			ctx.choose(c)
			return
		}
	}
}

// ShortSuitRule leads from the shortest side suit to work toward a void.
type ShortSuitRule struct{}

func (r *ShortSuitRule) Apply(ctx *LeadContext) {
	var best *domain.Card
	for i, c := range ctx.Legal {
		if c.IsSpade() {
			continue
		}
		if best == nil || ctx.Profile.Count(c.Suit) < ctx.Profile.Count(best.Suit) {
			best = &ctx.Legal[i]
		}
	}
	if best != nil {
		ctx.choose(*best)
	}
}

// HighSideRule leads the highest non-spade.
type HighSideRule struct{}

func (r *HighSideRule) Apply(ctx *LeadContext) {
	if side := domain.NonSpades(ctx.Legal); len(side) > 0 {
		ctx.choose(botinternal.Highest(side))
	}
}

// HighestRule leads the highest legal card.
type HighestRule struct{}

func (r *HighestRule) Apply(ctx *LeadContext) {
	ctx.choose(botinternal.Highest(ctx.Legal))
}

// LowSideRule leads the lowest non-spade to avoid taking extra tricks.
type LowSideRule struct{}

func (r *LowSideRule) Apply(ctx *LeadContext) {
	if side := domain.NonSpades(ctx.Legal); len(side) > 0 {
		ctx.choose(botinternal.Lowest(side))
	}
}

var (
	intermediateLeads = []LeadRule{&SideAceRule{}, &HighSideRule{}, &HighestRule{}}
	aggressiveLeads   = []LeadRule{&SideAceRule{}, &ProtectedKingRule{}, &ShortSuitRule{}}
	safeLeads         = []LeadRule{&LowSideRule{}}
)
