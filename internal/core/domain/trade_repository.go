package domain

import "context"

// TradeRepository is the abstraction for any kind of database intended to
// persist trade history records.
type TradeRepository interface {
	// AddTrade appends a new trade record.
	AddTrade(ctx context.Context, trade *Trade) error
	// GetAllTrades returns all recorded trades.
	GetAllTrades(ctx context.Context) ([]Trade, error)
	// GetTradesByPool returns the trades recorded for the given pool.
	GetTradesByPool(ctx context.Context, poolName string) ([]Trade, error)
}
