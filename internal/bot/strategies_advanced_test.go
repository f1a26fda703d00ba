package bot

import (
	"testing"

	"github.com/brentlaster/spades/internal/domain"
)

func TestAdvancedBot_ChooseCard(t *testing.T) {
	S := domain.South
	tests := []struct {
		name string
		hand string
		// team bids and tricks for south/north
		bids   [2]int
		tricks [2]int
		trick  domain.Trick
		want   string
	}{
		{
			name: "needs tricks: side ace first",
			hand: "AS 5H AD 4D 9C", bids: [2]int{4, 3},
			trick: domain.Trick{Leader: S}, want: "AD",
		},
		{
			name: "needs tricks: protected king",
			hand: "AS 5H KD 4D 9C 8C 7C", bids: [2]int{4, 3},
			trick: domain.Trick{Leader: S}, want: "KD",
		},
		{
			name: "needs tricks: bare king is skipped for short suit",
			hand: "AS KH 9D 8D 7D JC 4C", bids: [2]int{4, 3},
			trick: domain.Trick{Leader: S}, want: "KH",
		},
		{
			name: "needs tricks: shortest side suit",
			hand: "KS QH 9D 8D JC 4C 3C", bids: [2]int{4, 3},
			trick: domain.Trick{Leader: S}, want: "QH",
		},
		{
			name: "needs tricks: short suit tie goes to canonical order",
			hand: "KS 9D 8D QC 4C", bids: [2]int{4, 3},
			trick: domain.Trick{Leader: S}, want: "9D",
		},
		{
			name: "bid made: lead lowest side card",
			hand: "AS AH 4D 9C", bids: [2]int{2, 1}, tricks: [2]int{2, 1},
			trick: domain.Trick{Leader: S}, want: "4D",
		},
		{
			name: "last to act ducks under partner",
			hand: "KH 2H", bids: [2]int{4, 3},
			trick: trickOf(domain.West, "5H AH 3H"), want: "2H",
		},
		{
			name: "last to act wins cheaply",
			hand: "KH 10H 2H", bids: [2]int{2, 1}, tricks: [2]int{2, 1},
			trick: trickOf(domain.West, "5H 3H 9H"), want: "10H",
		},
		{
			name: "second seat with bid made sheds",
			hand: "KH 2H", bids: [2]int{2, 1}, tricks: [2]int{2, 1},
			trick: trickOf(domain.West, "5H"), want: "2H",
		},
		{
			name: "second seat still short plays to win",
			hand: "KH 2H", bids: [2]int{4, 3},
			trick: trickOf(domain.West, "5H"), want: "KH",
		},
		{
			name: "third seat protects partner lead",
			hand: "KH 2H", bids: [2]int{4, 3},
			trick: trickOf(domain.North, "AH 3H"), want: "2H",
		},
	}
	bot := &AdvancedBot{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := gameFor(S, tt.hand, tt.trick, false)
			game.Players[domain.South].Bid, game.Players[domain.North].Bid = tt.bids[0], tt.bids[1]
			game.Players[domain.South].TricksWon, game.Players[domain.North].TricksWon = tt.tricks[0], tt.tricks[1]

			got, err := bot.ChooseCard(game, S)
			if err != nil {
				t.Fatalf("ChooseCard failed: %v", err)
			}
			want, _ := domain.ParseCard(tt.want)
			if got != want {
				t.Fatalf("ChooseCard() = %v, want %v", got, want)
			}
		})
	}
}

func TestNeedMore_NilCountsAsZero(t *testing.T) {
	game := gameFor(domain.South, "AH", domain.Trick{}, false)
	game.Players[domain.South].Bid = 0
	game.Players[domain.North].Bid = 2
	game.Players[domain.North].TricksWon = 2
	if needMore(game, domain.South) {
		t.Fatalf("team with nil and made partner should not need more")
	}
	game.Players[domain.North].TricksWon = 1
	if !needMore(game, domain.South) {
		t.Fatalf("team short of partner bid should need more")
	}
}
