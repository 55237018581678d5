package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/tdex-network/ammd/internal/core/domain"
)

// TradeRepositoryImpl represents an in memory storage for trade records.
type TradeRepositoryImpl struct {
	trades map[string]domain.Trade

	lock *sync.RWMutex
}

// NewTradeRepositoryImpl returns a new empty TradeRepositoryImpl.
func NewTradeRepositoryImpl() *TradeRepositoryImpl {
	return &TradeRepositoryImpl{
		trades: map[string]domain.Trade{},
		lock:   &sync.RWMutex{},
	}
}

// AddTrade implements the domain.TradeRepository interface.
func (r *TradeRepositoryImpl) AddTrade(
	_ context.Context, trade *domain.Trade,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.trades[trade.Id] = *trade
	return nil
}

// GetAllTrades implements the domain.TradeRepository interface.
func (r *TradeRepositoryImpl) GetAllTrades(
	_ context.Context,
) ([]domain.Trade, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	trades := make([]domain.Trade, 0, len(r.trades))
	for _, trade := range r.trades {
		trades = append(trades, trade)
	}
	sortByTimestamp(trades)
	return trades, nil
}

// GetTradesByPool implements the domain.TradeRepository interface.
func (r *TradeRepositoryImpl) GetTradesByPool(
	_ context.Context, poolName string,
) ([]domain.Trade, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	trades := make([]domain.Trade, 0)
	for _, trade := range r.trades {
		if trade.PoolName == poolName {
			trades = append(trades, trade)
		}
	}
	sortByTimestamp(trades)
	return trades, nil
}

func sortByTimestamp(trades []domain.Trade) {
	sort.Slice(trades, func(i, j int) bool {
		return trades[i].Timestamp.Before(trades[j].Timestamp)
	})
}
