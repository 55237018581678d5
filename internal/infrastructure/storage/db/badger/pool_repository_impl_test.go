package dbbadger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ammd/internal/core/domain"
)

const (
	assetX = "0000000000000000000000000000000000000000000000000000000000000000"
	assetY = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func newTestDb(t *testing.T) *DbManager {
	t.Helper()

	db, err := NewDbManager(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPoolRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPoolRepositoryImpl(newTestDb(t))

	pool, err := domain.NewPool(42, assetX, assetY, 30, "admin")
	require.NoError(t, err)

	err = repo.AddPool(ctx, pool)
	require.NoError(t, err)

	err = repo.AddPool(ctx, pool)
	require.EqualError(t, err, domain.ErrPoolAlreadyExist.Error())

	found, err := repo.GetPoolByName(ctx, pool.Name)
	require.NoError(t, err)
	require.Equal(t, pool.Address, found.Address)
	require.Equal(t, pool.ClaimAsset, found.ClaimAsset)

	found, err = repo.GetPoolByAssets(ctx, assetX, assetY, 42)
	require.NoError(t, err)
	require.Equal(t, pool.Name, found.Name)

	_, err = repo.GetPoolByAssets(ctx, assetX, assetY, 43)
	require.EqualError(t, err, domain.ErrPoolNotExist.Error())

	pools, err := repo.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 1)

	err = repo.UpdatePool(ctx, pool.Name, func(p *domain.Pool) (*domain.Pool, error) {
		if err := p.Lock("admin"); err != nil {
			return nil, err
		}
		return p, nil
	})
	require.NoError(t, err)

	found, err = repo.GetPoolByName(ctx, pool.Name)
	require.NoError(t, err)
	require.True(t, found.IsLocked())

	_, err = repo.GetPoolByName(ctx, "unknown")
	require.EqualError(t, err, domain.ErrPoolNotExist.Error())
}
