package economy

// Reward tunables. Values match the long-observed production economy;
// BaseReward, DisasterChance and MaxWallet can be overridden via config.
const (
	// DefaultBaseReward is paid for every successful weekly claim.
	DefaultBaseReward = 270

	// StreakBonusAmount is added every StreakBonusEvery-th consecutive claim.
	StreakBonusAmount = 100
	StreakBonusEvery  = 3

	// DisasterPenalty is deducted from the wallet on a disaster roll,
	// floored at zero.
	DisasterPenalty = 150

	// DefaultDisasterChance is the probability of a disaster roll.
	DefaultDisasterChance = 0.05

	// RewardMultiplier scales the payout on a multiplier roll.
	RewardMultiplier = 1.5

	// DefaultMaxWallet caps on-hand currency; excess is discarded, not
	// carried over. Bank balances are uncapped.
	DefaultMaxWallet = 5000

	// StreakContinuationDays is the exact gap between claims that extends
	// a streak. Any other gap resets it.
	StreakContinuationDays = 7
)

// Item drop chances for the claim outcome table.
const (
	SukunaFingerChance = 0.03
	GokumonkyoChance   = 0.02
	MultiplierChance   = 0.05
)
