package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/brentlaster/spades/internal/app"
	"github.com/brentlaster/spades/internal/bot"
	"github.com/brentlaster/spades/internal/domain"
)

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("pades", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func teamLabel(t domain.Team, names [4]string) string {
	s := t.Seats()
	return names[s[0]] + " & " + names[s[1]]
}

func cardText(c domain.Card) string {
	switch c.Suit {
	case domain.Hearts, domain.Diamonds:
		return pterm.LightRed(c.String())
	default:
		return pterm.LightWhite(c.String())
	}
}

func cardsText(cards []domain.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardText(c)
	}
	return strings.Join(parts, " ")
}

func bidText(p domain.Player) string {
	switch {
	case !p.HasBid():
		return "-"
	case p.Bid == domain.NilBid:
		return "Nil"
	default:
		return strconv.Itoa(p.Bid)
	}
}

// printTable shows the seats, the trick in progress and seat's hand.
func printTable(g *domain.Game, seat domain.Seat) {
	data := pterm.TableData{{"Seat", "Player", "Bid", "Tricks", "Played"}}
	for _, s := range domain.Seats {
		p := g.Players[s]
		played := ""
		for _, pl := range g.CurrentTrick.Plays {
			if pl.Seat == s {
				played = cardText(pl.Card)
			}
		}
		data = append(data, []string{s.String(), p.Name, bidText(p), strconv.Itoa(p.TricksWon), played})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()

	pterm.DefaultBox.
		WithTitle(fmt.Sprintf("%s - round %d", g.Players[seat].Name, g.RoundNumber)).
		WithTitleTopLeft().
		Println(cardsText(g.Players[seat].Hand) + "\n" + pterm.Gray(statusLine(g)))
}

// statusLine pairs the game's latest message with the state of trumps.
func statusLine(g *domain.Game) string {
	status := "Spades not broken"
	if g.SpadesBroken {
		status = "Spades broken"
	}
	if g.Message == "" {
		return status
	}
	return g.Message + " | " + status
}

// teamTiers names the bot tier of each partner, once when they match.
func teamTiers(l bot.Lineup, t domain.Team) string {
	s := t.Seats()
	a, b := l[s[0]].Difficulty, l[s[1]].Difficulty
	if a == b {
		return a
	}
	return a + " / " + b
}

func printScores(g *domain.Game) {
	names := [4]string{}
	for i, p := range g.Players {
		names[i] = p.Name
	}
	data := pterm.TableData{{"Team", "Bid", "Tricks", "Round", "Bags", "Total"}}
	for _, t := range []domain.Team{domain.NorthSouth, domain.EastWest} {
		ts := g.Scores[t]
		row := []string{teamLabel(t, names), "", "", "", strconv.Itoa(ts.Bags), strconv.Itoa(ts.Total)}
		if n := len(ts.Rounds); n > 0 {
			last := ts.Rounds[n-1]
			row[1], row[2], row[3] = strconv.Itoa(last.Bid), strconv.Itoa(last.Tricks), strconv.Itoa(last.Score)
		}
		data = append(data, row)
	}
	pterm.DefaultSection.Printfln("Round %d", g.RoundNumber)
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if g.Phase == domain.PhaseGameOver {
		switch w := domain.Winner(g.Scores, g.TargetScore); w {
		case domain.NoTeam:
			pterm.Success.Println("The game ends in a tie.")
		default:
			pterm.Success.Printfln("%s win the game!", teamLabel(w, names))
		}
	}
}

// printEvent narrates table events. Hands are shown at the prompt instead.
func printEvent(table *app.Table, ev app.Event) {
	switch p := ev.Payload.(type) {
	case app.RoundStartedPayload:
		pterm.DefaultSection.Printfln("Round %d", p.Round)
	case app.BidPlacedPayload:
		g, _ := table.Snapshot()
		pterm.Info.Printfln("%s bids %s", g.Players[p.Seat].Name, bidText(domain.Player{Bid: p.Bid}))
	case app.CardPlayedPayload:
		g, _ := table.Snapshot()
		pterm.Println(fmt.Sprintf("  %s plays %s", g.Players[p.Seat].Name, cardText(p.Card)))
	case app.SpadesBrokenPayload:
		pterm.Warning.Println("Spades are broken!")
	case app.TrickCompletedPayload:
		g, _ := table.Snapshot()
		pterm.Success.Printfln("%s wins the trick", g.Players[p.Winner].Name)
	case app.BagPenaltyPayload:
		pterm.Warning.Printfln("Bag penalty for team %s: -%d", p.Team, p.Penalties*domain.BagPenalty)
	case app.AdvicePayload:
		pterm.Info.WithPrefix(pterm.Prefix{Text: "COACH", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}).Println(p.Text)
	}
}
