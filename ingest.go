package goldwatch

import (
	"fmt"
	"slices"

	"github.com/civtrack/goldwatch/turns"
)

// This file is the Ledger's intake boundary. Everything below is
// deliberately lenient: unknown slots materialize players, gpt for an
// unresolved civ is dropped, and nothing is economically validated. The
// upstream logs race class initialization and mention participants the
// watcher will never identify; rejecting such events would lose real data.
// The inner Player and BalanceSheet types assume the input is valid.

// SlotInfo resolves a slot's identity, parsed from the game core log.
type SlotInfo struct {
	Slot   int
	Name   string
	RawCiv string
}

// Stats is one reported gold-per-turn figure, parsed from the stats CSV.
// The stats feed identifies players by raw civilization key, not by slot.
type Stats struct {
	RawCiv string
	Turn   turns.Turn
	GPT    int
}

// SubmitDeal commits one gold deal:
//
//   - A deal whose turn is behind the clock means the log source restarted
//     with a new game: the whole ledger resets, identities preserved, and
//     the clock jumps to the deal's turn.
//   - The clock then catches up to the deal's turn, closing turns and
//     replaying in-force installments along the way.
//   - One-shot deals book immediately; installment deals book on each of the
//     turn closes they cover instead.
//
// Listeners fire synchronously once the deal is committed.
func (l *Ledger) SubmitDeal(d Deal) {
	if d.Turn < l.currentTurn {
		l.reset(d.Turn)
	}
	l.advanceTo(d.Turn)

	l.deals = append(l.deals, d)
	if d.Duration > 0 {
		l.installments = append(l.installments, d)
	} else {
		l.applyOneShot(d)
	}
	l.notify()
}

// SubmitLuxDeal counts one luxury exchange on both sides. Luxuries carry no
// turn number in the logs and never touch the turn clock or interest.
func (l *Ledger) SubmitLuxDeal(d LuxDeal) {
	l.Player(d.From).sendLux(d.To)
	l.Player(d.To).receiveLux(d.From)
	l.notify()
}

// RecordGPT routes a reported gold-per-turn figure to the player whose raw
// civ key resolved to it. Very often the player won't exist because there
// are city states and initialization race conditions; those reports are
// dropped without error.
func (l *Ledger) RecordGPT(s Stats) {
	p, ok := l.byRawCiv[s.RawCiv]
	if !ok {
		return
	}
	p.recordGPT(s.Turn, s.GPT)
}

// SetPlayerName resolves a slot's identity and fires listeners so renderers
// pick up the new name.
func (l *Ledger) SetPlayerName(info SlotInfo) {
	p := l.Player(info.Slot)
	p.setRawCiv(info.RawCiv)
	l.byRawCiv[info.RawCiv] = p
	p.setName(fmt.Sprintf("[%d] %s", info.Slot, info.Name))
	l.notify()
}

// RegisterListener subscribes fn to every committed mutation. Listeners run
// synchronously in registration order and must not call back into the
// Ledger's mutating methods. The returned function unsubscribes.
func (l *Ledger) RegisterListener(fn func()) (unsubscribe func()) {
	id := l.nextListen
	l.nextListen++
	l.listeners = append(l.listeners, listener{id: id, fn: fn})
	return func() {
		l.listeners = slices.DeleteFunc(l.listeners, func(s listener) bool {
			return s.id == id
		})
	}
}
