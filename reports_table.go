package goldwatch

import "github.com/civtrack/goldwatch/turns"

// TableReport is the point-in-time view of the ledger at the close of one
// turn, one row per player that has a record there. Players with nothing
// recorded at that turn are omitted, not zero-filled.
type TableReport struct {
	Turn turns.Turn
	Rows []TableRow
}

// TableRow is one player's line in a TableReport. The interest-adjusted
// figures are floored, matching what the in-game numbers look like.
type TableRow struct {
	Name string

	LuxesSent     int
	LuxesReceived int
	LuxNet        int

	Sent             Amount
	SentAdjusted     int64
	Received         Amount
	ReceivedAdjusted int64

	GPT           int
	CumulativeGPT int

	Net         Amount
	NetAdjusted int64
}

// Favorable reports whether a figure is conventionally good for the player
// (non-negative), which renderers emphasize. Pure display concern.
func Favorable(v int64) bool { return v >= 0 }

// TableReport builds the tabular view of the ledger as of the given turn.
// Rows come out in first-reference order of the players.
func (l *Ledger) TableReport(turn turns.Turn) *TableReport {
	report := &TableReport{Turn: turn}
	for _, slot := range l.order {
		p := l.players[slot]
		rec, ok := p.Record(turn)
		if !ok {
			continue
		}
		sheet := rec.Summed
		report.Rows = append(report.Rows, TableRow{
			Name:             p.Name(),
			LuxesSent:        sheet.LuxesSent(),
			LuxesReceived:    sheet.LuxesReceived(),
			LuxNet:           sheet.LuxesSent() - sheet.LuxesReceived(),
			Sent:             sheet.Sent(),
			SentAdjusted:     sheet.SentWithInterest().Floor(),
			Received:         sheet.Received(),
			ReceivedAdjusted: sheet.ReceivedWithInterest().Floor(),
			GPT:              rec.GPT,
			CumulativeGPT:    rec.CumulativeGPT,
			Net:              sheet.Net(),
			NetAdjusted:      sheet.NetWithInterest().Floor(),
		})
	}
	return report
}

// LatestTableReport is TableReport for the latest fully closed turn.
func (l *Ledger) LatestTableReport() *TableReport {
	return l.TableReport(l.currentTurn - 1)
}
