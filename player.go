package goldwatch

import (
	"fmt"

	"github.com/civtrack/goldwatch/turns"
)

// TurnRecord is what a Player keeps about one closed turn: the frozen copy
// of its aggregate sheet at that turn's close, the gold-per-turn reported by
// the stats feed for that turn, and the running sum of reported gpt.
type TurnRecord struct {
	Summed        BalanceSheet
	GPT           int
	CumulativeGPT int
}

// Player is one tracked participant, identified by the stable slot index the
// game assigned it. Its display name and raw civilization key resolve
// asynchronously from a different log than the deals, so both start as
// placeholders derived from the slot.
type Player struct {
	slot   int
	name   string
	rawCiv string

	// flows against the rest of the world
	summed BalanceSheet
	// flows against each counterparty slot, materialized on first exchange
	relationships map[int]*BalanceSheet

	history     turns.History[TurnRecord]
	baselineGPT int
}

func newPlayer(slot int, cfg Config) *Player {
	return &Player{
		slot:          slot,
		name:          fmt.Sprintf("%d", slot),
		rawCiv:        fmt.Sprintf("%d_RAW_CIV", slot),
		relationships: make(map[int]*BalanceSheet),
		baselineGPT:   cfg.BaselineGPT,
	}
}

func (p *Player) Slot() int      { return p.slot }
func (p *Player) Name() string   { return p.name }
func (p *Player) RawCiv() string { return p.rawCiv }

// Summed returns the player's aggregate sheet as it stands right now,
// i.e. after the latest closed turn's tick plus any deals since.
func (p *Player) Summed() *BalanceSheet { return &p.summed }

// Relationship returns the pairwise sheet against the given slot,
// materializing an empty one on first use.
func (p *Player) Relationship(slot int) *BalanceSheet {
	r, ok := p.relationships[slot]
	if !ok {
		r = &BalanceSheet{}
		p.relationships[slot] = r
	}
	return r
}

// Record returns the player's record for a closed turn, if it has one.
func (p *Player) Record(on turns.Turn) (TurnRecord, bool) { return p.history.Get(on) }

func (p *Player) setName(name string)     { p.name = name }
func (p *Player) setRawCiv(rawCiv string) { p.rawCiv = rawCiv }

func (p *Player) sendGold(to int, amount Amount) {
	p.summed.recordSend(amount)
	p.Relationship(to).recordSend(amount)
}

func (p *Player) receiveGold(from int, amount Amount) {
	p.summed.recordReceive(amount)
	p.Relationship(from).recordReceive(amount)
}

func (p *Player) sendLux(to int) {
	p.summed.recordLuxSend()
	p.Relationship(to).recordLuxSend()
}

func (p *Player) receiveLux(from int) {
	p.summed.recordLuxReceive()
	p.Relationship(from).recordLuxReceive()
}

// recordGPT sets the reported gold-per-turn for a turn. The cumulative sum
// builds on the immediately preceding turn's record only; when gpt arrives
// out of order the turns in between are not retroactively recomputed. The
// stats feed is an append-only CSV, so in practice rows arrive in turn
// order.
func (p *Player) recordGPT(on turns.Turn, gpt int) {
	rec, ok := p.history.Get(on)
	if !ok {
		rec = TurnRecord{GPT: p.baselineGPT}
	}
	rec.GPT = gpt
	if prev, ok := p.history.Get(on - 1); ok {
		rec.CumulativeGPT = prev.CumulativeGPT + gpt
	} else {
		rec.CumulativeGPT = gpt
	}
	p.history.Set(on, rec)
}

// closeTurn freezes a copy of the aggregate sheet into the turn's record,
// then compounds interest on the aggregate and on every pairwise sheet. The
// Ledger calls this exactly once per turn, for every player, before any
// installment replay for that turn.
func (p *Player) closeTurn(on turns.Turn, rate Amount) {
	rec, ok := p.history.Get(on)
	if !ok {
		rec = TurnRecord{GPT: p.baselineGPT}
	}
	rec.Summed = p.summed
	p.history.Set(on, rec)

	p.summed.applyInterestTick(rate)
	for _, r := range p.relationships {
		r.applyInterestTick(rate)
	}
}

// reset discards every sheet and the whole turn history. Identity (slot,
// name, raw civ) is untouched: those resolve asynchronously and survive a
// new game starting underneath the watcher.
func (p *Player) reset() {
	p.summed = BalanceSheet{}
	p.relationships = make(map[int]*BalanceSheet)
	p.history.Clear()
}
