package app

import "github.com/brentlaster/spades/internal/domain"

// EventKind identifies emitted game events.
type EventKind string

const (
	EventGameStarted     EventKind = "game_started"
	EventRoundStarted    EventKind = "round_started"
	EventHandDealt       EventKind = "hand_dealt"
	EventBidPlaced       EventKind = "bid_placed"
	EventBiddingComplete EventKind = "bidding_complete"
	EventCardPlayed      EventKind = "card_played"
	EventSpadesBroken    EventKind = "spades_broken"
	EventTrickCompleted  EventKind = "trick_completed"
	EventTrickCleared    EventKind = "trick_cleared"
	EventRoundScored     EventKind = "round_scored"
	EventBagPenalty      EventKind = "bag_penalty"
	EventGameEnded       EventKind = "game_ended"
	EventAdvice          EventKind = "advice"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Seat // empty means broadcast
}

type GameStartedPayload struct {
	GameID      string
	TargetScore int
}

type RoundStartedPayload struct {
	GameID      string
	Round       int
	Dealer      domain.Seat
	FirstBidder domain.Seat
}

type HandDealtPayload struct {
	Seat domain.Seat
	Hand []domain.Card
}

type BidPlacedPayload struct {
	Seat     domain.Seat
	Bid      int
	NextSeat domain.Seat
}

type BiddingCompletePayload struct {
	Bids   [4]int
	Leader domain.Seat
}

type CardPlayedPayload struct {
	Seat     domain.Seat
	Card     domain.Card
	NextSeat domain.Seat
}

type SpadesBrokenPayload struct {
	Seat domain.Seat
}

type TrickCompletedPayload struct {
	Trick       domain.Trick
	Winner      domain.Seat
	TricksTaken int
}

type TrickClearedPayload struct {
	Leader domain.Seat
}

type RoundScoredPayload struct {
	Round  int
	Scores [2]domain.RoundScore
	Totals [2]int
}

type BagPenaltyPayload struct {
	Team      domain.Team
	Penalties int
	Bags      int
}

type GameEndedPayload struct {
	Winner domain.Team
	Totals [2]int
}

type AdvicePayload struct {
	Seat domain.Seat
	Text string
}
