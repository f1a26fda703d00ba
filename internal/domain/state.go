package domain

// Phase represents the lifecycle stage of a Spades game.
type Phase string

const (
	// PhaseIdle is the state before the first deal.
	PhaseIdle Phase = "idle"
	// PhaseBidding is active while seats are still submitting bids.
	PhaseBidding Phase = "bidding"
	// PhasePlaying is the state where cards are played into the current trick.
	PhasePlaying Phase = "playing"
	// PhaseTrickEnd holds a completed trick on the table until it is cleared.
	PhaseTrickEnd Phase = "trick_end"
	// PhaseRoundEnd follows the 13th trick when no team has reached a game-ending score.
	PhaseRoundEnd Phase = "round_end"
	// PhaseGameOver is terminal until a new game is started.
	PhaseGameOver Phase = "game_over"
)

const (
	HandSize           = 13
	TricksPerRound     = 13
	MaxBid             = 13
	NilBid             = 0
	NoBid              = -1
	DefaultTargetScore = 500
	// LosingFloor ends the game when a team sinks to it.
	LosingFloor = -200
)

// DefaultNames are the seat names used when no identity file is configured.
var DefaultNames = [4]string{
	South: "You",
	West:  "Maya",
	North: "Alex",
	East:  "Jordan",
}

// Play is one card contributed to a trick.
type Play struct {
	Seat Seat
	Card Card
}

// Trick is the ordered set of plays for one round of four cards.
type Trick struct {
	Plays    []Play
	Leader   Seat
	Winner   Seat // valid only when Resolved
	Resolved bool
}

// LeadSuit returns the suit of the first play.
func (t Trick) LeadSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// HasSpade reports whether any spade has been played to the trick.
func (t Trick) HasSpade() bool {
	for _, p := range t.Plays {
		if p.Card.IsSpade() {
			return true
		}
	}
	return false
}

// Player holds per-seat state. Bid is NoBid until the seat has bid this round.
type Player struct {
	Seat      Seat
	Name      string
	Hand      []Card
	Bid       int
	TricksWon int
	IsHuman   bool
}

// HasBid reports whether the player has bid this round.
func (p Player) HasBid() bool {
	return p.Bid != NoBid
}

// RoundScore is the settlement record for one team and one round.
type RoundScore struct {
	Score  int
	Bags   int
	Bid    int
	Tricks int
}

// TeamScore accumulates a partnership's results across rounds.
type TeamScore struct {
	Total  int
	Bags   int
	Rounds []RoundScore
}

// Game is the full state of one Spades game.
type Game struct {
	ID              string
	Phase           Phase
	Players         [4]Player
	CurrentTrick    Trick
	CompletedTricks []Trick
	Scores          [2]TeamScore
	CurrentSeat     Seat
	Dealer          Seat
	SpadesBroken    bool
	RoundNumber     int
	TargetScore     int
	LastTrickWinner Seat
	Message         string
}

// NewGame returns an idle game with default seat names and South as the
// only human seat.
func NewGame(id string, targetScore int) *Game {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}
	g := &Game{
		ID:              id,
		Phase:           PhaseIdle,
		CurrentTrick:    Trick{Leader: South, Winner: NoSeat},
		CurrentSeat:     South,
		Dealer:          South,
		TargetScore:     targetScore,
		LastTrickWinner: NoSeat,
	}
	for _, s := range Seats {
		g.Players[s] = Player{
			Seat:    s,
			Name:    DefaultNames[s],
			Bid:     NoBid,
			IsHuman: s == South,
		}
	}
	return g
}

// Player returns a pointer to the player at seat s.
func (g *Game) Player(s Seat) *Player {
	return &g.Players[s]
}

// TeamBid sums both partners' bids, counting an unset bid as zero.
func (g *Game) TeamBid(t Team) int {
	total := 0
	for _, s := range t.Seats() {
		if b := g.Players[s].Bid; b > 0 {
			total += b
		}
	}
	return total
}

// TeamTricks sums both partners' tricks won this round.
func (g *Game) TeamTricks(t Team) int {
	seats := t.Seats()
	return g.Players[seats[0]].TricksWon + g.Players[seats[1]].TricksWon
}

// TricksTaken returns how many tricks have been won this round.
func (g *Game) TricksTaken() int {
	n := 0
	for _, p := range g.Players {
		n += p.TricksWon
	}
	return n
}

// AllBid reports whether every seat has a bid.
func (g *Game) AllBid() bool {
	for _, p := range g.Players {
		if !p.HasBid() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no slices with g.
func (g *Game) Clone() *Game {
	out := *g
	for i := range out.Players {
		out.Players[i].Hand = append([]Card(nil), g.Players[i].Hand...)
	}
	out.CurrentTrick = g.CurrentTrick.clone()
	if g.CompletedTricks != nil {
		out.CompletedTricks = make([]Trick, len(g.CompletedTricks))
		for i, t := range g.CompletedTricks {
			out.CompletedTricks[i] = t.clone()
		}
	}
	for i := range out.Scores {
		out.Scores[i].Rounds = append([]RoundScore(nil), g.Scores[i].Rounds...)
	}
	return &out
}

func (t Trick) clone() Trick {
	t.Plays = append([]Play(nil), t.Plays...)
	return t
}
