package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/brentlaster/spades/internal/bot"
	"github.com/brentlaster/spades/internal/coach"
	"github.com/brentlaster/spades/internal/domain"
	"github.com/brentlaster/spades/internal/ports"
)

// Adviser produces a tip for a seat's snapshot. It must not fail.
type Adviser interface {
	Advice(ctx context.Context, snap ports.Snapshot) string
}

// Observer receives events after they are committed.
type Observer func(Event)

// TableOptions configure a Table. Zero values select defaults.
type TableOptions struct {
	Agents    [4]*bot.Agent // nil entries are driven by Dispatch
	Timings   Timings
	Scheduler Scheduler
	Adviser   Adviser
	ShowHints bool
	Logger    *slog.Logger
}

// Table is the single authoritative store for one game. All changes go
// through Dispatch or the table's own scheduled actions, each committed
// atomically with a new version. A scheduled action carries the version it
// was planned for and does nothing if the game has moved on.
type Table struct {
	mu      sync.Mutex
	svc     *Service
	game    *domain.Game
	version uint64

	agents  [4]*bot.Agent
	timings Timings
	sched   Scheduler
	pending Timer

	adviser      Adviser
	advice       string
	cancelAdvice context.CancelFunc

	showHints bool
	observers []Observer
	logger    *slog.Logger
	closed    bool
}

// NewTable seats a game. Nothing is scheduled until the first commit.
func NewTable(svc *Service, game *domain.Game, opts TableOptions) *Table {
	if opts.Timings == (Timings{}) {
		opts.Timings = DefaultTimings
	}
	if opts.Scheduler == nil {
		opts.Scheduler = ClockScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Table{
		svc:       svc,
		game:      game,
		agents:    opts.Agents,
		timings:   opts.Timings,
		sched:     opts.Scheduler,
		adviser:   opts.Adviser,
		showHints: opts.ShowHints,
		logger:    opts.Logger,
	}
}

// Subscribe registers an observer. Observers run outside the table lock and
// may call back into the table.
func (t *Table) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

// Dispatch applies a human or external action. Invalid actions leave the
// game untouched and return the rejection.
func (t *Table) Dispatch(a Action) error {
	t.mu.Lock()
	events, observers, err := t.applyLocked(a)
	t.mu.Unlock()
	if err != nil {
		t.logger.Debug("table: action rejected", "action", ActionName(a), "error", err)
		return err
	}
	notify(observers, events)
	return nil
}

// Snapshot returns a deep copy of the game and its version.
func (t *Table) Snapshot() (*domain.Game, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Clone(), t.version
}

// Version returns the number of committed transitions.
func (t *Table) Version() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.version
}

// Advice returns the latest coaching tip, if any.
func (t *Table) Advice() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.advice
}

// SetShowHints toggles per-card play hints.
func (t *Table) SetShowHints(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.showHints = on
}

// Hint explains what playing card would do for seat. It reports false when
// hints are turned off.
func (t *Table) Hint(seat domain.Seat, card domain.Card) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.showHints || !seat.Valid() {
		return "", false
	}
	g := t.game
	return coach.PlayHint(card, g.Players[seat].Hand, g.CurrentTrick, g.SpadesBroken), true
}

// LegalPlays returns seat's currently legal cards, or nil when seat is not
// to play.
func (t *Table) LegalPlays(seat domain.Seat) []domain.Card {
	t.mu.Lock()
	defer t.mu.Unlock()
	g := t.game
	if g.Phase != domain.PhasePlaying || g.CurrentSeat != seat {
		return nil
	}
	return domain.LegalPlays(g.Players[seat].Hand, g.CurrentTrick, g.SpadesBroken)
}

// Close cancels any scheduled action and in-flight advice.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.version++
	t.cancelPendingLocked()
}

func (t *Table) applyLocked(a Action) ([]Event, []Observer, error) {
	if t.closed {
		return nil, nil, ErrWrongPhase
	}
	next, events, err := t.svc.Apply(t.game, a)
	if err != nil {
		return nil, nil, err
	}
	t.game = next
	t.version++
	t.advice = ""
	t.cancelPendingLocked()
	t.scheduleLocked()
	t.requestAdviceLocked()

	t.logger.Debug("table: committed",
		"game", next.ID,
		"action", ActionName(a),
		"version", t.version,
		"phase", next.Phase,
		"seat", next.CurrentSeat,
	)
	return events, append([]Observer(nil), t.observers...), nil
}

func (t *Table) cancelPendingLocked() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	if t.cancelAdvice != nil {
		t.cancelAdvice()
		t.cancelAdvice = nil
	}
}

// scheduleLocked plans the next automatic action, if any, for the current
// version.
func (t *Table) scheduleLocked() {
	g := t.game
	switch g.Phase {
	case domain.PhaseTrickEnd:
		t.afterLocked(t.timings.TrickPause, func(*domain.Game) (Action, error) {
			return ClearTrick{}, nil
		})
	case domain.PhaseBidding:
		if agent := t.agents[g.CurrentSeat]; agent != nil {
			t.afterLocked(t.timings.BidDelay, func(g *domain.Game) (Action, error) {
				bid, err := agent.Bid(g)
				return PlaceBid{Seat: agent.Seat, Bid: bid}, err
			})
		}
	case domain.PhasePlaying:
		if agent := t.agents[g.CurrentSeat]; agent != nil {
			t.afterLocked(t.timings.PlayDelay, func(g *domain.Game) (Action, error) {
				card, err := agent.Play(g)
				return PlayCard{Seat: agent.Seat, Card: card}, err
			})
		}
	}
}

func (t *Table) afterLocked(d time.Duration, decide func(*domain.Game) (Action, error)) {
	version := t.version
	t.pending = t.sched.AfterFunc(d, func() {
		t.runScheduled(version, decide)
	})
}

func (t *Table) runScheduled(version uint64, decide func(*domain.Game) (Action, error)) {
	t.mu.Lock()
	if version != t.version {
		t.mu.Unlock()
		t.logger.Debug("table: stale task dropped", "planned", version)
		return
	}
	seat := t.game.CurrentSeat
	a, err := decide(t.game.Clone())
	if err != nil {
		t.mu.Unlock()
		t.logger.Error("table: bot failed to decide", "seat", seat, "error", err)
		return
	}
	events, observers, err := t.applyLocked(a)
	t.mu.Unlock()
	if err != nil {
		t.logger.Error("table: scheduled action rejected", "action", ActionName(a), "error", err)
		return
	}
	notify(observers, events)
}

// requestAdviceLocked asks the adviser for a tip when a human seat is to
// bid or play. The result is kept only if no newer commit has happened.
func (t *Table) requestAdviceLocked() {
	g := t.game
	if t.adviser == nil || (g.Phase != domain.PhaseBidding && g.Phase != domain.PhasePlaying) {
		return
	}
	seat := g.CurrentSeat
	if !g.Players[seat].IsHuman {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancelAdvice = cancel
	version := t.version
	snap := ports.SnapshotFor(g, seat)
	adviser := t.adviser

	go func() {
		text := adviser.Advice(ctx, snap)
		t.mu.Lock()
		if version != t.version || ctx.Err() != nil {
			t.mu.Unlock()
			return
		}
		t.advice = text
		observers := append([]Observer(nil), t.observers...)
		t.mu.Unlock()
		notify(observers, []Event{{
			Kind:       EventAdvice,
			Payload:    AdvicePayload{Seat: seat, Text: text},
			Recipients: []domain.Seat{seat},
		}})
	}()
}

func notify(observers []Observer, events []Event) {
	for _, ev := range events {
		for _, o := range observers {
			o(ev)
		}
	}
}
