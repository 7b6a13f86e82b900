package goldwatch

// Config holds the immutable parameters of a Ledger. A zero Config is not
// usable; start from DefaultConfig.
type Config struct {
	// InterestRate is the per-turn compounding factor applied to every sent
	// and received total at the close of each turn.
	//
	// 1.014 would make 25 gold on turn one worth 75 gold by turn 80. 1.035
	// doubles in value every 20 turns, which is roughly a builder bought for
	// 2 sheep and 1 horse: it takes 20 turns to pay for itself plus 100 gold
	// of value. 1.036 makes sure it paid itself back and didn't just barely
	// miss.
	InterestRate Amount

	// BaselineGPT is the gold-per-turn assumed for a turn the stats feed
	// never reported on. 5 is the game's default income.
	BaselineGPT int
}

// DefaultConfig returns the configuration the `gw` tool runs with.
func DefaultConfig() Config {
	return Config{
		InterestRate: A(1.036),
		BaselineGPT:  5,
	}
}
