package dbbadger

import (
	"context"

	"github.com/tdex-network/ammd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type poolRepositoryImpl struct {
	db *DbManager
}

// NewPoolRepositoryImpl initializes a badger implementation of the
// domain.PoolRepository interface.
func NewPoolRepositoryImpl(db *DbManager) domain.PoolRepository {
	return poolRepositoryImpl{db: db}
}

func (r poolRepositoryImpl) AddPool(
	_ context.Context, pool *domain.Pool,
) error {
	if err := r.db.PoolStore.Insert(pool.Name, pool); err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrPoolAlreadyExist
		}
		return err
	}
	return nil
}

func (r poolRepositoryImpl) GetPoolByName(
	_ context.Context, name string,
) (*domain.Pool, error) {
	return r.getPool(name)
}

func (r poolRepositoryImpl) GetPoolByAssets(
	_ context.Context, assetX, assetY string, seed uint64,
) (*domain.Pool, error) {
	query := badgerhold.Where("AssetX").Eq(assetX).
		And("AssetY").Eq(assetY).
		And("Seed").Eq(seed)

	var pools []domain.Pool
	if err := r.db.PoolStore.Find(&pools, query); err != nil {
		return nil, err
	}
	if len(pools) == 0 {
		return nil, domain.ErrPoolNotExist
	}
	return &pools[0], nil
}

func (r poolRepositoryImpl) GetAllPools(
	_ context.Context,
) ([]domain.Pool, error) {
	var pools []domain.Pool
	if err := r.db.PoolStore.Find(&pools, nil); err != nil {
		return nil, err
	}
	return pools, nil
}

func (r poolRepositoryImpl) UpdatePool(
	ctx context.Context,
	name string, updateFn func(p *domain.Pool) (*domain.Pool, error),
) error {
	currentPool, err := r.getPool(name)
	if err != nil {
		return err
	}

	updatedPool, err := updateFn(currentPool)
	if err != nil {
		return err
	}

	return r.db.PoolStore.Update(name, updatedPool)
}

func (r poolRepositoryImpl) getPool(name string) (*domain.Pool, error) {
	var pool domain.Pool
	if err := r.db.PoolStore.Get(name, &pool); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrPoolNotExist
		}
		return nil, err
	}
	return &pool, nil
}
