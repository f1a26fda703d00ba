package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/brentlaster/spades/internal/bot"
	"github.com/brentlaster/spades/internal/config"
	"github.com/brentlaster/spades/internal/domain"
	"github.com/brentlaster/spades/internal/sim"
)

func runSimulate(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	games := fs.Int("games", 100, "number of games to play")
	parallel := fs.Int("parallel", 4, "games played at once")
	target := fs.Int("target", cfg.TargetScore, "score that ends a game")
	difficulty := fs.String("difficulty", cfg.Difficulty, "bot tier: beginner, intermediate or advanced")
	seed := fs.Int64("seed", cfg.Seed, "base seed; 0 picks one")
	seats := fs.String("seats", cfg.SeatsFile, "JSON file with per-seat names and tiers")
	ns := fs.String("ns", "", "tier for North and South, overriding the rest")
	ew := fs.String("ew", "", "tier for East and West, overriding the rest")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := bot.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}
	lineup, err := bot.LoadLineup(*seats, level)
	if err != nil {
		return err
	}
	for team, tier := range map[domain.Team]string{domain.NorthSouth: *ns, domain.EastWest: *ew} {
		if tier == "" {
			continue
		}
		teamLevel, err := bot.ParseDifficulty(tier)
		if err != nil {
			return err
		}
		for _, s := range team.Seats() {
			lineup[s].Difficulty = string(teamLevel)
		}
	}
	cfg.Seed = *seed
	base := cfg.ResolveSeed()

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d games...", *games))
	rep, err := sim.Run(ctx, sim.Options{
		Games:       *games,
		TargetScore: *target,
		Level:       level,
		Lineup:      &lineup,
		Seed:        base,
		Parallel:    *parallel,
		Logger:      logger,
	})
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success(fmt.Sprintf("Played %d games (seed %d)", rep.Games, base))

	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"", teamLabel(domain.NorthSouth, lineup.Names()), teamLabel(domain.EastWest, lineup.Names())},
		{"Tier", teamTiers(lineup, domain.NorthSouth), teamTiers(lineup, domain.EastWest)},
		{"Wins", strconv.Itoa(rep.Wins[domain.NorthSouth]), strconv.Itoa(rep.Wins[domain.EastWest])},
		{"Bag penalties", strconv.Itoa(rep.BagPenalties[domain.NorthSouth]), strconv.Itoa(rep.BagPenalties[domain.EastWest])},
		{"Ties", strconv.Itoa(rep.Ties), ""},
		{"Avg rounds", strconv.FormatFloat(rep.AvgRounds, 'f', 1, 64), ""},
		{"Nils made / set", fmt.Sprintf("%d / %d", rep.NilsMade, rep.NilsSet), ""},
	}).Render()
}
