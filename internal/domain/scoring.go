package domain

const (
	// NilValue is won or lost by each nil bidder independently.
	NilValue   = 100
	BagLimit   = 10
	BagPenalty = 100
)

// TeamRoundScore settles one team's round from both partners' bids and
// tricks. Each nil bid is scored on its own; the remaining bids form a
// combined contract worth bid*10 plus one point per overtrick (bag), or
// -bid*10 when set.
func TeamRoundScore(bidA, tricksA, bidB, tricksB int) RoundScore {
	score := 0
	contract, taken := 0, 0
	for _, p := range [2][2]int{{bidA, tricksA}, {bidB, tricksB}} {
		bid, tricks := p[0], p[1]
		if bid == NilBid {
			if tricks == 0 {
				score += NilValue
			} else {
				score -= NilValue
			}
			continue
		}
		contract += bid
		taken += tricks
	}

	bags := 0
	if contract > 0 {
		if taken >= contract {
			bags = taken - contract
			score += contract*10 + bags
		} else {
			score -= contract * 10
		}
	}
	return RoundScore{
		Score:  score,
		Bags:   bags,
		Bid:    bidA + bidB,
		Tricks: tricksA + tricksB,
	}
}

// Settle returns ts with rs applied and the number of bag penalties taken.
// Every full BagLimit of accumulated bags costs BagPenalty points.
func (ts TeamScore) Settle(rs RoundScore) (TeamScore, int) {
	out := TeamScore{
		Total:  ts.Total + rs.Score,
		Bags:   ts.Bags + rs.Bags,
		Rounds: append(append([]RoundScore(nil), ts.Rounds...), rs),
	}
	penalties := 0
	for out.Bags >= BagLimit {
		out.Total -= BagPenalty
		out.Bags -= BagLimit
		penalties++
	}
	return out, penalties
}

// ScoreRound settles both teams from the players' bids and tricks.
func ScoreRound(g *Game) [2]RoundScore {
	var out [2]RoundScore
	for _, t := range []Team{NorthSouth, EastWest} {
		s := t.Seats()
		a, b := g.Players[s[0]], g.Players[s[1]]
		out[t] = TeamRoundScore(a.Bid, a.TricksWon, b.Bid, b.TricksWon)
	}
	return out
}
