package goldwatch

import (
	"slices"

	"github.com/civtrack/goldwatch/turns"
)

// Ledger owns the players, the turn clock, and every deal seen so far.
//
// It is a pure in-memory structure mutated only through its ingest methods
// (see ingest.go), which a single dispatch loop is expected to call in the
// order the log source delivered the events. Turn advancement is driven by
// the turn numbers embedded in incoming deals: the clock catches up to each
// deal, closing one turn at a time, and a deal whose turn is behind the
// clock means a new game started underneath the watcher.
type Ledger struct {
	cfg Config

	players  map[int]*Player
	order    []int // slots in first-reference order, for stable iteration
	byRawCiv map[string]*Player

	currentTurn  turns.Turn
	deals        []Deal
	installments []Deal // gold-per-turn deals still in force

	listeners  []listener
	nextListen int
}

type listener struct {
	id int
	fn func()
}

// NewLedger creates an empty ledger starting at turn 1.
func NewLedger(cfg Config) *Ledger {
	return &Ledger{
		cfg:         cfg,
		players:     make(map[int]*Player),
		byRawCiv:    make(map[string]*Player),
		currentTurn: 1,
	}
}

// CurrentTurn returns the turn the clock has advanced to. Turn CurrentTurn-1
// is the latest fully closed turn.
func (l *Ledger) CurrentTurn() turns.Turn { return l.currentTurn }

// Player returns the player at the given slot, materializing a fresh one on
// first reference. It never fails: the logs mention city states and slots
// the watcher has no identity for yet.
func (l *Ledger) Player(slot int) *Player {
	p, ok := l.players[slot]
	if !ok {
		p = newPlayer(slot, l.cfg)
		l.players[slot] = p
		l.order = append(l.order, slot)
	}
	return p
}

// Players returns every known player in first-reference order.
func (l *Ledger) Players() []*Player {
	ps := make([]*Player, 0, len(l.order))
	for _, slot := range l.order {
		ps = append(ps, l.players[slot])
	}
	return ps
}

// Deals returns all committed deals, in the order they were ingested.
func (l *Ledger) Deals() []Deal { return slices.Clone(l.deals) }

// advanceTo closes turns one at a time until the clock reaches 'turn'.
// Within each close, interest ticks on every player's sheets before any
// installment replays, so an installment amount deposited on turn T starts
// compounding at T's close, not the moment it lands.
func (l *Ledger) advanceTo(turn turns.Turn) {
	for l.currentTurn < turn {
		for _, slot := range l.order {
			l.players[slot].closeTurn(l.currentTurn, l.cfg.InterestRate)
		}
		for _, d := range l.installments {
			if d.covers(l.currentTurn) {
				l.applyOneShot(d)
			}
		}
		l.currentTurn++
		l.installments = slices.DeleteFunc(l.installments, func(d Deal) bool {
			return !d.covers(l.currentTurn)
		})
	}
}

// applyOneShot books one deposit of the deal's amount on both sides. A deal
// with From == To double-books the same player's own sheet; upstream data
// races make that possible and the ledger does not police it.
func (l *Ledger) applyOneShot(d Deal) {
	l.Player(d.From).sendGold(d.To, d.Amount)
	l.Player(d.To).receiveGold(d.From, d.Amount)
}

// reset clears every player's sheets and history, and all deals. Names and
// raw civ keys are preserved because those are set async.
func (l *Ledger) reset(turn turns.Turn) {
	for _, p := range l.players {
		p.reset()
	}
	l.deals = nil
	l.installments = nil
	l.currentTurn = turn
}

func (l *Ledger) notify() {
	for _, sub := range l.listeners {
		sub.fn()
	}
}
