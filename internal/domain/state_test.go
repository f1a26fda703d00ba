package domain

import "testing"

func TestNewGame(t *testing.T) {
	g := NewGame("abc", 0)
	if g.TargetScore != DefaultTargetScore || g.Phase != PhaseIdle {
		t.Fatalf("unexpected defaults: %+v", g)
	}
	for _, s := range Seats {
		p := g.Players[s]
		if p.Seat != s || p.Bid != NoBid || p.Name != DefaultNames[s] {
			t.Fatalf("seat %v not initialised: %+v", s, p)
		}
		if p.IsHuman != (s == South) {
			t.Fatalf("seat %v human = %v", s, p.IsHuman)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := NewGame("abc", 300)
	g.Players[South].Hand = MustParseCards("AS KH")
	g.CurrentTrick = trickOf(West, "2D")
	g.CompletedTricks = []Trick{trickOf(South, "AH KH QH JH")}
	g.Scores[NorthSouth].Rounds = []RoundScore{{Score: 50}}

	c := g.Clone()
	c.Players[South].Hand[0] = Card{Clubs, Two}
	c.CurrentTrick.Plays[0].Card = Card{Clubs, Three}
	c.CompletedTricks[0].Plays[0].Card = Card{Clubs, Four}
	c.Scores[NorthSouth].Rounds[0].Score = 0

	if g.Players[South].Hand[0] != (Card{Spades, Ace}) ||
		g.CurrentTrick.Plays[0].Card != (Card{Diamonds, Two}) ||
		g.CompletedTricks[0].Plays[0].Card != (Card{Hearts, Ace}) ||
		g.Scores[NorthSouth].Rounds[0].Score != 50 {
		t.Fatalf("Clone shares state with original")
	}
}

func TestTeamTotals(t *testing.T) {
	g := NewGame("abc", 0)
	g.Players[South].Bid, g.Players[North].Bid = 3, 0
	g.Players[South].TricksWon, g.Players[North].TricksWon = 2, 1
	if g.TeamBid(NorthSouth) != 3 || g.TeamTricks(NorthSouth) != 3 {
		t.Fatalf("unexpected team totals")
	}
	if g.TeamBid(EastWest) != 0 {
		t.Fatalf("unset bids should count as zero")
	}
	if g.AllBid() {
		t.Fatalf("east/west have not bid")
	}
}
