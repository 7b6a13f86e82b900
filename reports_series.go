package goldwatch

import (
	"iter"

	"github.com/civtrack/goldwatch/turns"
)

// NetSeries is one player's net balance over time, for charting.
type NetSeries struct {
	Name string
	// Points yields (turn, net) for every closed turn the player has a
	// record at, in turn order. The sequence is finite and restartable.
	Points iter.Seq2[turns.Turn, Amount]
}

// NetSeriesReport builds, for every known player, the series of net balances
// for the closed turns before 'turn'. Players come out in first-reference
// order.
func (l *Ledger) NetSeriesReport(turn turns.Turn) []NetSeries {
	series := make([]NetSeries, 0, len(l.order))
	for _, slot := range l.order {
		p := l.players[slot]
		series = append(series, NetSeries{
			Name: p.Name(),
			Points: func(yield func(turns.Turn, Amount) bool) {
				for on := turns.Turn(1); on < turn; on++ {
					rec, ok := p.Record(on)
					if !ok {
						continue
					}
					if !yield(on, rec.Summed.Net()) {
						return
					}
				}
			},
		})
	}
	return series
}

// LatestNetSeriesReport is NetSeriesReport up to the current turn.
func (l *Ledger) LatestNetSeriesReport() []NetSeries {
	return l.NetSeriesReport(l.currentTurn)
}
