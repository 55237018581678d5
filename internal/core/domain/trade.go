package domain

import "time"

// Trade types.
const (
	TradeTypeDeposit = "deposit"
	TradeTypeSwap    = "swap"
)

// Trade is the history record of a completed pool operation. It is advisory
// bookkeeping written after the ledger effects have committed, the accounting
// itself never reads it back.
type Trade struct {
	Id       string
	PoolName string
	Type     string
	// User that signed the operation.
	User string
	// Amounts moved into the pool, keyed by asset.
	In map[string]uint64
	// Amounts moved out of the pool (minted claim tokens included for
	// deposits), keyed by asset.
	Out map[string]uint64
	// Fee withheld from the curve input, in the supplied asset. Always zero
	// for deposits.
	Fee       uint64
	Timestamp time.Time
}
