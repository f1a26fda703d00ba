package bot

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/brentlaster/spades/internal/domain"
)

func TestLoadLineup_Default(t *testing.T) {
	l, err := LoadLineup("", Intermediate)
	if err != nil {
		t.Fatal(err)
	}
	if l.Names() != domain.DefaultNames {
		t.Fatalf("Names() = %v", l.Names())
	}
	if !l[domain.South].Human || l[domain.West].Human {
		t.Fatalf("unexpected human flags: %+v", l)
	}
}

func TestLoadLineup_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seats.json")
	body := `[
		{"seat": "west", "name": "Riley", "difficulty": "advanced"},
		{"seat": "north", "difficulty": "beginner"}
	]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	l, err := LoadLineup(path, Intermediate)
	if err != nil {
		t.Fatalf("LoadLineup failed: %v", err)
	}
	if l[domain.West].Name != "Riley" || l[domain.West].Difficulty != "advanced" {
		t.Fatalf("west = %+v", l[domain.West])
	}
	if l[domain.North].Name != "Alex" || l[domain.North].Difficulty != "beginner" {
		t.Fatalf("north = %+v", l[domain.North])
	}
	if l[domain.East].Difficulty != "intermediate" {
		t.Fatalf("east = %+v", l[domain.East])
	}

	agents, err := l.Agents(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if agents[domain.South] != nil {
		t.Fatalf("human seat got an agent")
	}
	if _, ok := agents[domain.West].Strategy.(*AdvancedBot); !ok {
		t.Fatalf("west strategy = %T", agents[domain.West].Strategy)
	}
	if _, ok := agents[domain.North].Strategy.(*BeginnerBot); !ok {
		t.Fatalf("north strategy = %T", agents[domain.North].Strategy)
	}
}

func TestLoadLineup_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := map[string]string{
		"seat.json":  `[{"seat": "center"}]`,
		"level.json": `[{"seat": "east", "difficulty": "god"}]`,
		"json.json":  `{`,
	}
	for name, body := range bad {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadLineup(path, Intermediate); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := LoadLineup(filepath.Join(dir, "missing.json"), Intermediate); err == nil {
		t.Errorf("missing file: expected error")
	}
}

func TestAgent_BidAndPlay(t *testing.T) {
	agents, err := DefaultLineup(Advanced).AllBots().Agents(rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	game := gameFor(domain.East, "AS KS 5S AH KH 7H 3H KD 9D 4D 10C 6C 2C", domain.Trick{Leader: domain.East}, false)
	a := agents[domain.East]
	bid, err := a.Bid(game)
	if err != nil || bid != 4 {
		t.Fatalf("Bid() = %d, %v", bid, err)
	}
	card, err := a.Play(game)
	if err != nil {
		t.Fatal(err)
	}
	if card != (domain.Card{Suit: domain.Hearts, Rank: domain.Ace}) {
		t.Fatalf("Play() = %v, want AH", card)
	}
}
