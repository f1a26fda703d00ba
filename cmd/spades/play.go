package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/brentlaster/spades/internal/app"
	"github.com/brentlaster/spades/internal/bot"
	"github.com/brentlaster/spades/internal/coach"
	"github.com/brentlaster/spades/internal/config"
	"github.com/brentlaster/spades/internal/domain"
	"github.com/brentlaster/spades/internal/ports"
	"github.com/brentlaster/spades/internal/ports/llm"
)

func runPlay(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.IntVar(&cfg.TargetScore, "target", cfg.TargetScore, "score that ends the game")
	fs.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "bot tier: beginner, intermediate or advanced")
	fs.BoolVar(&cfg.ShowHints, "hints", cfg.ShowHints, "show what each card would do")
	fs.BoolVar(&cfg.CoachEnabled, "coach", cfg.CoachEnabled, "ask a chat model for advice")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed; 0 picks one")
	fs.StringVar(&cfg.SeatsFile, "seats", cfg.SeatsFile, "JSON file with per-seat names and tiers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lineup, err := bot.LoadLineup(cfg.SeatsFile, cfg.Level())
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.ResolveSeed()))
	agents, err := lineup.Agents(rng)
	if err != nil {
		return err
	}

	var advisor ports.AdvisorPort
	if cfg.CoachEnabled {
		advisor = llm.NewAdvisorAdapter(llm.Config{
			BaseURL: cfg.CoachURL,
			APIKey:  cfg.CoachAPIKey,
			Model:   cfg.CoachModel,
		})
	}

	game := domain.NewGame("", cfg.TargetScore)
	for _, s := range domain.Seats {
		game.Players[s].Name = lineup[s].Name
		game.Players[s].IsHuman = lineup[s].Human
	}
	table := app.NewTable(app.NewService(rng), game, app.TableOptions{
		Agents: agents,
		Timings: app.Timings{
			BidDelay:   cfg.AIBidDelay,
			PlayDelay:  cfg.AIPlayDelay,
			TrickPause: cfg.TrickPause,
		},
		Adviser:   coach.New(advisor, cfg.CoachTimeout, logger),
		ShowHints: cfg.ShowHints,
		Logger:    logger,
	})
	defer table.Close()

	changed := make(chan struct{}, 1)
	table.Subscribe(func(ev app.Event) {
		printEvent(table, ev)
		nudge(changed)
	})

	printBanner()
	pterm.Info.Println(coach.WelcomeTip)
	if err := table.Dispatch(app.StartGame{}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
		}

		g, _ := table.Snapshot()
		switch g.Phase {
		case domain.PhaseBidding, domain.PhasePlaying:
			if !g.Players[g.CurrentSeat].IsHuman {
				continue
			}
			before := table.Version()
			if err := humanTurn(table, g); err != nil {
				return err
			}
			if table.Version() == before {
				// Rejected or no choice made: ask again.
				nudge(changed)
			}
		case domain.PhaseRoundEnd:
			printScores(g)
			if !confirm("Deal the next round?") {
				return nil
			}
			if err := table.Dispatch(app.StartNextRound{}); err != nil {
				return err
			}
		case domain.PhaseGameOver:
			printScores(g)
			if !confirm("Play again?") {
				return nil
			}
			if err := table.Dispatch(app.StartGame{}); err != nil {
				return err
			}
		}
	}
}

func humanTurn(table *app.Table, g *domain.Game) error {
	seat := g.CurrentSeat
	printTable(g, seat)

	if g.Phase == domain.PhaseBidding {
		options := make([]string, 0, domain.MaxBid+1)
		for bid := domain.NilBid; bid <= domain.MaxBid; bid++ {
			options = append(options, bidOption(bid))
		}
		choice, err := pterm.DefaultInteractiveSelect.
			WithDefaultText(fmt.Sprintf("%s, your bid", g.Players[seat].Name)).
			WithOptions(options).
			WithDefaultOption(options[3]).
			Show()
		if err != nil {
			return err
		}
		for bid, opt := range options {
			if opt == choice {
				return report(table.Dispatch(app.PlaceBid{Seat: seat, Bid: bid}))
			}
		}
		return nil
	}

	legal := table.LegalPlays(seat)
	if len(legal) == 0 {
		return nil
	}
	options := make([]string, len(legal))
	for i, c := range legal {
		options[i] = c.String()
		if hint, ok := table.Hint(seat, c); ok {
			options[i] += "  " + pterm.Gray(hint)
		}
	}
	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("%s, play a card", g.Players[seat].Name)).
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show()
	if err != nil {
		return err
	}
	for i, opt := range options {
		if opt == choice {
			return report(table.Dispatch(app.PlayCard{Seat: seat, Card: legal[i]}))
		}
	}
	return nil
}

func nudge(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// report shows a rejected action without ending the game.
func report(err error) error {
	if err != nil {
		pterm.Warning.Println(err)
	}
	return nil
}

func confirm(text string) bool {
	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultText(text).WithDefaultValue(true).Show()
	return err == nil && ok
}

func bidOption(bid int) string {
	if bid == domain.NilBid {
		return "Nil (0)"
	}
	return strconv.Itoa(bid)
}
