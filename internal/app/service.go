package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/brentlaster/spades/internal/domain"
)

// Service contains the Spades state transitions. Every transition is a pure
// function of the game and an action: the input is never modified, and on
// error it is returned unchanged.
type Service struct {
	rng   *rand.Rand
	newID func() string
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, newID: uuid.NewString}
}

var (
	ErrWrongPhase    = errors.New("action not allowed in current phase")
	ErrNotYourTurn   = errors.New("not this seat's turn")
	ErrUnknownSeat   = errors.New("seat not found")
	ErrInvalidBid    = errors.New("bid must be between 0 and 13")
	ErrAlreadyBid    = errors.New("seat has already bid this round")
	ErrCardNotInHand = errors.New("card not in hand")
	ErrIllegalPlay   = errors.New("card may not be played to this trick")
	ErrUnknownAction = errors.New("unknown action")
)

// Apply runs one transition.
func (s *Service) Apply(game *domain.Game, action Action) (*domain.Game, []Event, error) {
	var (
		next   *domain.Game
		events []Event
		err    error
	)
	switch a := action.(type) {
	case StartGame:
		next, events, err = s.StartGame(game)
	case PlaceBid:
		next, events, err = s.PlaceBid(game, a.Seat, a.Bid)
	case PlayCard:
		next, events, err = s.PlayCard(game, a.Seat, a.Card)
	case ClearTrick:
		next, events, err = s.ClearTrick(game)
	case StartNextRound:
		next, events, err = s.StartNextRound(game)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
	if err != nil {
		return game, nil, err
	}
	return next, events, nil
}

// StartGame resets scores and deals the first round. Seat names and human
// flags carry over from game. Allowed from any phase.
func (s *Service) StartGame(game *domain.Game) (*domain.Game, []Event, error) {
	next := domain.NewGame(s.newID(), game.TargetScore)
	for i := range next.Players {
		next.Players[i].Name = game.Players[i].Name
		next.Players[i].IsHuman = game.Players[i].IsHuman
	}
	next.Dealer = domain.South
	next.RoundNumber = 1

	events := []Event{{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{GameID: next.ID, TargetScore: next.TargetScore},
	}}
	dealt, err := s.deal(next)
	if err != nil {
		return game, nil, err
	}
	return next, append(events, dealt...), nil
}

// StartNextRound rotates the dealer and deals, keeping cumulative scores.
func (s *Service) StartNextRound(game *domain.Game) (*domain.Game, []Event, error) {
	if game.Phase != domain.PhaseRoundEnd {
		return game, nil, ErrWrongPhase
	}
	next := game.Clone()
	next.Dealer = game.Dealer.Next()
	next.RoundNumber++
	events, err := s.deal(next)
	if err != nil {
		return game, nil, err
	}
	return next, events, nil
}

// deal resets round-scoped state on g and hands out a shuffled deck.
func (s *Service) deal(g *domain.Game) ([]Event, error) {
	hands, err := domain.Deal(domain.Shuffle(domain.NewDeck(), s.rng))
	if err != nil {
		return nil, err
	}

	first := g.Dealer.Next()
	g.Phase = domain.PhaseBidding
	g.CurrentSeat = first
	g.CurrentTrick = domain.Trick{Leader: first, Winner: domain.NoSeat}
	g.CompletedTricks = nil
	g.SpadesBroken = false
	g.LastTrickWinner = domain.NoSeat

	events := []Event{{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			GameID:      g.ID,
			Round:       g.RoundNumber,
			Dealer:      g.Dealer,
			FirstBidder: first,
		},
	}}
	for _, seat := range domain.Seats {
		pl := g.Player(seat)
		pl.Hand = hands[seat]
		pl.Bid = domain.NoBid
		pl.TricksWon = 0

		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: append([]domain.Card(nil), pl.Hand...)},
			Recipients: []domain.Seat{seat},
		})
	}
	g.Message = fmt.Sprintf("Round %d - Time to bid!", g.RoundNumber)
	return events, nil
}

// PlaceBid records seat's bid and advances the bidding turn. Once all four
// seats have bid, play begins with the seat left of the dealer.
func (s *Service) PlaceBid(game *domain.Game, seat domain.Seat, bid int) (*domain.Game, []Event, error) {
	if game.Phase != domain.PhaseBidding {
		return game, nil, ErrWrongPhase
	}
	if !seat.Valid() {
		return game, nil, ErrUnknownSeat
	}
	if game.Players[seat].HasBid() {
		return game, nil, ErrAlreadyBid
	}
	if game.CurrentSeat != seat {
		return game, nil, ErrNotYourTurn
	}
	if bid < domain.NilBid || bid > domain.MaxBid {
		return game, nil, ErrInvalidBid
	}

	next := game.Clone()
	pl := next.Player(seat)
	pl.Bid = bid

	if next.AllBid() {
		leader := next.Dealer.Next()
		next.Phase = domain.PhasePlaying
		next.CurrentSeat = leader
		next.CurrentTrick = domain.Trick{Leader: leader, Winner: domain.NoSeat}
		next.Message = fmt.Sprintf("All bids placed! %s leads.", next.Players[leader].Name)

		var bids [4]int
		for i, p := range next.Players {
			bids[i] = p.Bid
		}
		return next, []Event{
			{Kind: EventBidPlaced, Payload: BidPlacedPayload{Seat: seat, Bid: bid, NextSeat: leader}},
			{Kind: EventBiddingComplete, Payload: BiddingCompletePayload{Bids: bids, Leader: leader}},
		}, nil
	}

	next.CurrentSeat = seat.Next()
	next.Message = fmt.Sprintf("%s bids %s.", pl.Name, bidLabel(bid))
	return next, []Event{
		{Kind: EventBidPlaced, Payload: BidPlacedPayload{Seat: seat, Bid: bid, NextSeat: next.CurrentSeat}},
	}, nil
}

// PlayCard plays card for seat. Completing a trick resolves it; completing
// the thirteenth trick also settles the round.
func (s *Service) PlayCard(game *domain.Game, seat domain.Seat, card domain.Card) (*domain.Game, []Event, error) {
	if game.Phase != domain.PhasePlaying {
		return game, nil, ErrWrongPhase
	}
	if !seat.Valid() {
		return game, nil, ErrUnknownSeat
	}
	if game.CurrentSeat != seat {
		return game, nil, ErrNotYourTurn
	}
	hand := game.Players[seat].Hand
	if !domain.ContainsCard(hand, card) {
		return game, nil, ErrCardNotInHand
	}
	if !domain.IsLegalPlay(card, hand, game.CurrentTrick, game.SpadesBroken) {
		return game, nil, ErrIllegalPlay
	}

	next := game.Clone()
	pl := next.Player(seat)
	pl.Hand, _ = domain.RemoveCard(pl.Hand, card)
	next.CurrentTrick.Plays = append(next.CurrentTrick.Plays, domain.Play{Seat: seat, Card: card})

	var events []Event
	if card.IsSpade() && !next.SpadesBroken {
		next.SpadesBroken = true
		events = append(events, Event{Kind: EventSpadesBroken, Payload: SpadesBrokenPayload{Seat: seat}})
	}

	if len(next.CurrentTrick.Plays) < 4 {
		next.CurrentSeat = seat.Next()
		next.Message = fmt.Sprintf("%s plays %s. %s's turn.", pl.Name, card, next.Players[next.CurrentSeat].Name)
		return next, append([]Event{{
			Kind:    EventCardPlayed,
			Payload: CardPlayedPayload{Seat: seat, Card: card, NextSeat: next.CurrentSeat},
		}}, events...), nil
	}

	winner, err := domain.TrickWinner(next.CurrentTrick)
	if err != nil {
		return game, nil, err
	}
	events = append([]Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: seat, Card: card, NextSeat: winner},
	}}, events...)

	next.Player(winner).TricksWon++
	next.CurrentTrick.Winner = winner
	next.CurrentTrick.Resolved = true
	next.CompletedTricks = append(next.CompletedTricks, cloneTrick(next.CurrentTrick))
	next.LastTrickWinner = winner
	next.CurrentSeat = winner

	taken := next.TricksTaken()
	events = append(events, Event{
		Kind: EventTrickCompleted,
		Payload: TrickCompletedPayload{
			Trick:       cloneTrick(next.CurrentTrick),
			Winner:      winner,
			TricksTaken: taken,
		},
	})

	if taken < domain.TricksPerRound {
		next.Phase = domain.PhaseTrickEnd
		next.Message = fmt.Sprintf("%s wins the trick!", next.Players[winner].Name)
		return next, events, nil
	}

	next.Message = fmt.Sprintf("%s wins the last trick! Round over.", next.Players[winner].Name)
	return next, append(events, settleRound(next)...), nil
}

// settleRound scores both teams and moves g to round end or game over.
func settleRound(g *domain.Game) []Event {
	rounds := domain.ScoreRound(g)
	var events []Event
	for _, team := range []domain.Team{domain.NorthSouth, domain.EastWest} {
		settled, penalties := g.Scores[team].Settle(rounds[team])
		g.Scores[team] = settled
		if penalties > 0 {
			events = append(events, Event{
				Kind:    EventBagPenalty,
				Payload: BagPenaltyPayload{Team: team, Penalties: penalties, Bags: settled.Bags},
			})
		}
	}

	totals := [2]int{g.Scores[domain.NorthSouth].Total, g.Scores[domain.EastWest].Total}
	events = append([]Event{{
		Kind:    EventRoundScored,
		Payload: RoundScoredPayload{Round: g.RoundNumber, Scores: rounds, Totals: totals},
	}}, events...)

	if domain.IsGameOver(totals[domain.NorthSouth], totals[domain.EastWest], g.TargetScore) {
		g.Phase = domain.PhaseGameOver
		return append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winner: domain.Winner(g.Scores, g.TargetScore), Totals: totals},
		})
	}
	g.Phase = domain.PhaseRoundEnd
	return events
}

// ClearTrick removes the completed trick and hands the lead to its winner.
func (s *Service) ClearTrick(game *domain.Game) (*domain.Game, []Event, error) {
	if game.Phase != domain.PhaseTrickEnd {
		return game, nil, ErrWrongPhase
	}
	next := game.Clone()
	leader := next.LastTrickWinner
	next.Phase = domain.PhasePlaying
	next.CurrentSeat = leader
	next.CurrentTrick = domain.Trick{Leader: leader, Winner: domain.NoSeat}
	next.Message = fmt.Sprintf("%s leads.", next.Players[leader].Name)
	return next, []Event{{Kind: EventTrickCleared, Payload: TrickClearedPayload{Leader: leader}}}, nil
}

func cloneTrick(t domain.Trick) domain.Trick {
	t.Plays = append([]domain.Play(nil), t.Plays...)
	return t
}

func bidLabel(bid int) string {
	if bid == domain.NilBid {
		return "Nil"
	}
	return fmt.Sprintf("%d", bid)
}
