package goldwatch

import "github.com/civtrack/goldwatch/turns"

// Deal is one gold transfer enacted in the game. Immutable once recorded.
//
// Duration 0 is a one-shot transfer. Duration d > 0 is a gold-per-turn deal:
// the same amount is applied once per turn for d consecutive turns starting
// at the deal's turn.
type Deal struct {
	From     int
	To       int
	Amount   Amount
	Duration int
	Turn     turns.Turn
}

// covers reports whether an installment deal still deposits on the given
// turn.
func (d Deal) covers(on turns.Turn) bool {
	return d.Turn+turns.Turn(d.Duration) > on
}

// LuxDeal is one luxury resource exchange. Luxuries are counted, never
// valued, and have no effect on the turn clock.
type LuxDeal struct {
	From int
	To   int
}
