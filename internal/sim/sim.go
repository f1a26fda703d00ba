// Package sim plays bot-only games to completion without timers. It drives
// the same transitions as a live table and checks the round invariants after
// every step.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/brentlaster/spades/internal/app"
	"github.com/brentlaster/spades/internal/bot"
	"github.com/brentlaster/spades/internal/domain"
)

// DefaultMaxRounds stops a game that fails to reach a result.
const DefaultMaxRounds = 200

var (
	ErrInvariant     = errors.New("invariant violated")
	ErrTooManyRounds = errors.New("game did not finish")
)

// Options configure a batch of games.
type Options struct {
	Games       int
	TargetScore int
	Level       bot.Difficulty
	Lineup      *bot.Lineup // overrides Level when set
	Seed        int64
	Parallel    int
	MaxRounds   int
	Logger      *slog.Logger
}

// Result summarizes one finished game.
type Result struct {
	GameID       string
	Winner       domain.Team
	Totals       [2]int
	Rounds       int
	BagPenalties [2]int
	NilsMade     int
	NilsSet      int
}

// Report aggregates a batch.
type Report struct {
	Games        int
	Wins         [2]int
	Ties         int
	AvgRounds    float64
	BagPenalties [2]int
	NilsMade     int
	NilsSet      int
	Results      []Result
}

// Play runs one game from game's seating to game over. Every seat must have
// an agent.
func Play(ctx context.Context, svc *app.Service, agents [4]*bot.Agent, game *domain.Game, maxRounds int) (Result, error) {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	for _, s := range domain.Seats {
		if agents[s] == nil {
			return Result{}, fmt.Errorf("seat %s has no agent", s)
		}
	}

	g, events, err := svc.Apply(game, app.StartGame{})
	if err != nil {
		return Result{}, err
	}
	res := Result{GameID: g.ID}
	tally(&res, events)

	for g.Phase != domain.PhaseGameOver {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		action, err := next(g, agents)
		if err != nil {
			return res, err
		}
		prev := g
		g, events, err = svc.Apply(g, action)
		if err != nil {
			return res, fmt.Errorf("round %d: %s: %w", prev.RoundNumber, app.ActionName(action), err)
		}
		if err := checkStep(prev, g); err != nil {
			return res, fmt.Errorf("round %d: %w", prev.RoundNumber, err)
		}
		tally(&res, events)
		if g.Phase == domain.PhaseRoundEnd || g.Phase == domain.PhaseGameOver {
			countNils(&res, g)
			if g.Phase == domain.PhaseRoundEnd && g.RoundNumber >= maxRounds {
				return res, ErrTooManyRounds
			}
		}
	}

	res.Rounds = g.RoundNumber
	res.Totals = [2]int{g.Scores[domain.NorthSouth].Total, g.Scores[domain.EastWest].Total}
	res.Winner = domain.Winner(g.Scores, g.TargetScore)
	return res, nil
}

func next(g *domain.Game, agents [4]*bot.Agent) (app.Action, error) {
	switch g.Phase {
	case domain.PhaseBidding:
		bid, err := agents[g.CurrentSeat].Bid(g.Clone())
		return app.PlaceBid{Seat: g.CurrentSeat, Bid: bid}, err
	case domain.PhasePlaying:
		card, err := agents[g.CurrentSeat].Play(g.Clone())
		return app.PlayCard{Seat: g.CurrentSeat, Card: card}, err
	case domain.PhaseTrickEnd:
		return app.ClearTrick{}, nil
	case domain.PhaseRoundEnd:
		return app.StartNextRound{}, nil
	}
	return nil, fmt.Errorf("no action for phase %s", g.Phase)
}

func tally(res *Result, events []app.Event) {
	for _, ev := range events {
		if p, ok := ev.Payload.(app.BagPenaltyPayload); ok {
			res.BagPenalties[p.Team] += p.Penalties
		}
	}
}

func countNils(res *Result, g *domain.Game) {
	for _, p := range g.Players {
		if p.Bid != domain.NilBid {
			continue
		}
		if p.TricksWon == 0 {
			res.NilsMade++
		} else {
			res.NilsSet++
		}
	}
}

// cardsInPlay counts every card of the current round.
func cardsInPlay(g *domain.Game) int {
	n := 4 * len(g.CompletedTricks)
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	if !g.CurrentTrick.Resolved {
		n += len(g.CurrentTrick.Plays)
	}
	return n
}

// checkStep verifies the invariants that must hold across one transition
// within a round.
func checkStep(prev, g *domain.Game) error {
	if n := cardsInPlay(g); n != domain.DeckSize {
		return fmt.Errorf("%w: %d cards in play", ErrInvariant, n)
	}
	if taken := g.TricksTaken(); taken > domain.TricksPerRound || taken != len(g.CompletedTricks) {
		return fmt.Errorf("%w: %d tricks taken, %d completed", ErrInvariant, taken, len(g.CompletedTricks))
	}
	if prev.RoundNumber != g.RoundNumber || prev.ID != g.ID {
		return nil
	}
	if prev.SpadesBroken && !g.SpadesBroken {
		return fmt.Errorf("%w: spades unbroken mid-round", ErrInvariant)
	}
	for i, p := range prev.Players {
		if p.HasBid() && g.Players[i].Bid != p.Bid {
			return fmt.Errorf("%w: %s changed bid from %d to %d", ErrInvariant, p.Seat, p.Bid, g.Players[i].Bid)
		}
	}
	return nil
}

// Run plays opts.Games games, up to opts.Parallel at a time. Game i uses
// seed opts.Seed+i, so a batch is reproducible regardless of scheduling.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Games <= 0 {
		return Report{}, nil
	}
	if opts.Parallel <= 0 {
		opts.Parallel = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	lineup := bot.DefaultLineup(opts.Level).AllBots()
	if opts.Lineup != nil {
		lineup = opts.Lineup.AllBots()
	}

	results := make([]Result, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for i := 0; i < opts.Games; i++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(opts.Seed + int64(i)))
			agents, err := lineup.Agents(rng)
			if err != nil {
				return err
			}
			game := domain.NewGame("", opts.TargetScore)
			for _, s := range domain.Seats {
				game.Players[s].Name = lineup[s].Name
				game.Players[s].IsHuman = false
			}

			res, err := Play(ctx, app.NewService(rng), agents, game, opts.MaxRounds)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			opts.Logger.Debug("sim: game finished",
				"game", res.GameID,
				"winner", res.Winner,
				"rounds", res.Rounds,
				"ns", res.Totals[domain.NorthSouth],
				"ew", res.Totals[domain.EastWest],
			)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return Summarize(results), nil
}

// Summarize aggregates finished games.
func Summarize(results []Result) Report {
	rep := Report{Games: len(results), Results: results}
	rounds := 0
	for _, r := range results {
		switch r.Winner {
		case domain.NorthSouth, domain.EastWest:
			rep.Wins[r.Winner]++
		default:
			rep.Ties++
		}
		rounds += r.Rounds
		rep.BagPenalties[domain.NorthSouth] += r.BagPenalties[domain.NorthSouth]
		rep.BagPenalties[domain.EastWest] += r.BagPenalties[domain.EastWest]
		rep.NilsMade += r.NilsMade
		rep.NilsSet += r.NilsSet
	}
	if len(results) > 0 {
		rep.AvgRounds = float64(rounds) / float64(len(results))
	}
	return rep
}
