package goldwatch

// BalanceSheet tracks the gold and luxuries exchanged between two sides: one
// player and one counterparty, or one player and the rest of the world.
//
// Every gold flow is kept twice: the raw total, and an interest-adjusted
// total that compounds once per closed turn. A newly recorded amount starts
// equal in both and only diverges on subsequent ticks. Luxury counts never
// accrue interest. Totals only ever grow; there is no repayment.
//
// A sheet is mutated only through its owning Player.
type BalanceSheet struct {
	sent                 Amount
	received             Amount
	sentWithInterest     Amount
	receivedWithInterest Amount
	luxesSent            int
	luxesReceived        int
}

func (b *BalanceSheet) Sent() Amount                 { return b.sent }
func (b *BalanceSheet) Received() Amount             { return b.received }
func (b *BalanceSheet) SentWithInterest() Amount     { return b.sentWithInterest }
func (b *BalanceSheet) ReceivedWithInterest() Amount { return b.receivedWithInterest }
func (b *BalanceSheet) LuxesSent() int               { return b.luxesSent }
func (b *BalanceSheet) LuxesReceived() int           { return b.luxesReceived }

// Net returns sent minus received: how much this side is up on the other.
func (b *BalanceSheet) Net() Amount { return b.sent.Sub(b.received) }

// NetWithInterest is Net on the interest-adjusted totals.
func (b *BalanceSheet) NetWithInterest() Amount {
	return b.sentWithInterest.Sub(b.receivedWithInterest)
}

func (b *BalanceSheet) recordSend(amount Amount) {
	b.sent = b.sent.Add(amount)
	b.sentWithInterest = b.sentWithInterest.Add(amount)
}

func (b *BalanceSheet) recordReceive(amount Amount) {
	b.received = b.received.Add(amount)
	b.receivedWithInterest = b.receivedWithInterest.Add(amount)
}

func (b *BalanceSheet) recordLuxSend()    { b.luxesSent++ }
func (b *BalanceSheet) recordLuxReceive() { b.luxesReceived++ }

// applyInterestTick compounds both adjusted totals once. Called exactly once
// per turn close by the owning Player.
func (b *BalanceSheet) applyInterestTick(rate Amount) {
	b.sentWithInterest = b.sentWithInterest.Mul(rate)
	b.receivedWithInterest = b.receivedWithInterest.Mul(rate)
}
