package domain

import (
	"reflect"
	"testing"
)

func TestTeamRoundScore(t *testing.T) {
	tests := []struct {
		name                       string
		bidA, tricksA, bidB, tricksB int
		want                       RoundScore
	}{
		{
			name: "contract made with one bag",
			bidA: 4, tricksA: 5, bidB: 3, tricksB: 3,
			want: RoundScore{Score: 71, Bags: 1, Bid: 7, Tricks: 8},
		},
		{
			name: "nil made plus partner overtrick",
			bidA: 0, tricksA: 0, bidB: 3, tricksB: 4,
			want: RoundScore{Score: 133, Bags: 1, Bid: 3, Tricks: 4},
		},
		{
			name: "contract set",
			bidA: 4, tricksA: 3, bidB: 3, tricksB: 2,
			want: RoundScore{Score: -70, Bags: 0, Bid: 7, Tricks: 5},
		},
		{
			name: "failed nil tricks do not count toward partner",
			bidA: 0, tricksA: 2, bidB: 4, tricksB: 3,
			want: RoundScore{Score: -140, Bags: 0, Bid: 4, Tricks: 5},
		},
		{
			name: "double nil both made",
			bidA: 0, tricksA: 0, bidB: 0, tricksB: 0,
			want: RoundScore{Score: 200, Bags: 0, Bid: 0, Tricks: 0},
		},
		{
			name: "double nil split",
			bidA: 0, tricksA: 0, bidB: 0, tricksB: 3,
			want: RoundScore{Score: 0, Bags: 0, Bid: 0, Tricks: 3},
		},
		{
			name: "exact contract",
			bidA: 6, tricksA: 2, bidB: 1, tricksB: 5,
			want: RoundScore{Score: 70, Bags: 0, Bid: 7, Tricks: 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TeamRoundScore(tt.bidA, tt.tricksA, tt.bidB, tt.tricksB)
			if got != tt.want {
				t.Fatalf("TeamRoundScore() = %+v, want %+v", got, tt.want)
			}
			if again := TeamRoundScore(tt.bidA, tt.tricksA, tt.bidB, tt.tricksB); again != got {
				t.Fatalf("TeamRoundScore() not deterministic: %+v vs %+v", again, got)
			}
		})
	}
}

func TestSettleBagPenalty(t *testing.T) {
	tests := []struct {
		name          string
		start         TeamScore
		round         RoundScore
		wantTotal     int
		wantBags      int
		wantPenalties int
	}{
		{
			name:      "below limit",
			start:     TeamScore{Total: 100, Bags: 3},
			round:     RoundScore{Score: 52, Bags: 2},
			wantTotal: 152, wantBags: 5,
		},
		{
			name:      "crosses limit once",
			start:     TeamScore{Total: 200, Bags: 9},
			round:     RoundScore{Score: 62, Bags: 2},
			wantTotal: 162, wantBags: 1, wantPenalties: 1,
		},
		{
			name:      "repeats while over limit",
			start:     TeamScore{Total: 0, Bags: 9},
			round:     RoundScore{Score: 11, Bags: 11},
			wantTotal: -189, wantBags: 0, wantPenalties: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, penalties := tt.start.Settle(tt.round)
			if got.Total != tt.wantTotal || got.Bags != tt.wantBags || penalties != tt.wantPenalties {
				t.Fatalf("Settle() = total %d bags %d penalties %d, want %d %d %d",
					got.Total, got.Bags, penalties, tt.wantTotal, tt.wantBags, tt.wantPenalties)
			}
			if len(got.Rounds) != len(tt.start.Rounds)+1 {
				t.Fatalf("round record not appended")
			}
		})
	}
}

func TestSettleDoesNotAliasHistory(t *testing.T) {
	base := TeamScore{Rounds: make([]RoundScore, 1, 4)}
	a, _ := base.Settle(RoundScore{Score: 10})
	b, _ := base.Settle(RoundScore{Score: 20})
	if a.Rounds[1].Score != 10 || b.Rounds[1].Score != 20 {
		t.Fatalf("settlements share history: %v %v", a.Rounds, b.Rounds)
	}
}

func TestScoreRound(t *testing.T) {
	g := NewGame("g", 0)
	bids := [4]int{South: 4, West: 0, North: 3, East: 5}
	tricks := [4]int{South: 5, West: 1, North: 3, East: 4}
	for _, s := range Seats {
		g.Players[s].Bid = bids[s]
		g.Players[s].TricksWon = tricks[s]
	}
	got := ScoreRound(g)
	want := [2]RoundScore{
		NorthSouth: {Score: 71, Bags: 1, Bid: 7, Tricks: 8},
		EastWest:   {Score: -150, Bags: 0, Bid: 5, Tricks: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ScoreRound() = %+v, want %+v", got, want)
	}
}
