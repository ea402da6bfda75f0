// Package recorder keeps an append-only audit trail of economy activity.
// The JSON document store only holds the latest balances; the recorder is
// where history goes for later analysis.
package recorder

// ClaimEvent records one weekly reward claim.
type ClaimEvent struct {
	UserID   string
	Username string
	Date     string // claim date, YYYY-MM-DD in service timezone
	Delta    int    // applied wallet change after floor/cap
	Streak   int
	Outcome  string // weighted-outcome label: none, disaster, item kind, multiplier
}

// MatchEvent records one arena match settlement.
type MatchEvent struct {
	WinnerID string
	LoserID  string
	Stake    int
	Payable  int // what the loser actually covered
	Payout   int // what the winner received after the wallet cap
}

// TradeEvent records one item transfer between players.
type TradeEvent struct {
	FromID   string
	ToID     string
	Item     string
	Quantity int
}

// Recorder persists audit events. Implementations must be safe for
// concurrent use; failures are logged by callers, never fatal.
type Recorder interface {
	RecordClaim(evt *ClaimEvent) error
	RecordMatch(evt *MatchEvent) error
	RecordTrade(evt *TradeEvent) error
	Close() error
}
