package dbbadger

import (
	"context"

	"github.com/tdex-network/ammd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type tradeRepositoryImpl struct {
	db *DbManager
}

// NewTradeRepositoryImpl initializes a badger implementation of the
// domain.TradeRepository interface.
func NewTradeRepositoryImpl(db *DbManager) domain.TradeRepository {
	return tradeRepositoryImpl{db: db}
}

func (r tradeRepositoryImpl) AddTrade(
	_ context.Context, trade *domain.Trade,
) error {
	return r.db.TradeStore.Insert(trade.Id, trade)
}

func (r tradeRepositoryImpl) GetAllTrades(
	_ context.Context,
) ([]domain.Trade, error) {
	return r.findTrades(badgerhold.Where("Id").Ne(""))
}

func (r tradeRepositoryImpl) GetTradesByPool(
	_ context.Context, poolName string,
) ([]domain.Trade, error) {
	query := badgerhold.Where("PoolName").Eq(poolName)
	return r.findTrades(query)
}

func (r tradeRepositoryImpl) findTrades(
	query *badgerhold.Query,
) ([]domain.Trade, error) {
	var trades []domain.Trade
	if err := r.db.TradeStore.Find(
		&trades, query.SortBy("Timestamp"),
	); err != nil {
		return nil, err
	}
	return trades, nil
}
