package dbbadger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ammd/internal/core/domain"
)

func TestTradeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTradeRepositoryImpl(newTestDb(t))

	now := time.Now()
	trades := []domain.Trade{
		{
			Id:        uuid.New().String(),
			PoolName:  "aaaaa",
			Type:      domain.TradeTypeSwap,
			User:      "alice",
			In:        map[string]uint64{assetX: 10_000},
			Out:       map[string]uint64{assetY: 19_744},
			Fee:       30,
			Timestamp: now.Add(time.Second),
		},
		{
			Id:        uuid.New().String(),
			PoolName:  "bbbbb",
			Type:      domain.TradeTypeDeposit,
			User:      "bob",
			In:        map[string]uint64{assetX: 100, assetY: 200},
			Out:       map[string]uint64{"claim": 50},
			Timestamp: now,
		},
	}
	for i := range trades {
		require.NoError(t, repo.AddTrade(ctx, &trades[i]))
	}

	all, err := repo.GetAllTrades(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// sorted by timestamp
	require.Equal(t, trades[1].Id, all[0].Id)

	byPool, err := repo.GetTradesByPool(ctx, "aaaaa")
	require.NoError(t, err)
	require.Len(t, byPool, 1)
	require.Equal(t, trades[0].Id, byPool[0].Id)
	require.Equal(t, uint64(19_744), byPool[0].Out[assetY])

	byPool, err = repo.GetTradesByPool(ctx, "ccccc")
	require.NoError(t, err)
	require.Empty(t, byPool)
}
