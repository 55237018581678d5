package inmemory

import (
	"context"
	"sync"

	"github.com/tdex-network/ammd/internal/core/domain"
)

// PoolRepositoryImpl represents an in memory storage for pools.
type PoolRepositoryImpl struct {
	pools map[string]domain.Pool

	lock *sync.RWMutex
}

// NewPoolRepositoryImpl returns a new empty PoolRepositoryImpl.
func NewPoolRepositoryImpl() *PoolRepositoryImpl {
	return &PoolRepositoryImpl{
		pools: map[string]domain.Pool{},
		lock:  &sync.RWMutex{},
	}
}

// AddPool implements the domain.PoolRepository interface.
func (r *PoolRepositoryImpl) AddPool(
	_ context.Context, pool *domain.Pool,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.pools[pool.Name]; ok {
		return domain.ErrPoolAlreadyExist
	}

	r.pools[pool.Name] = *pool
	return nil
}

// GetPoolByName implements the domain.PoolRepository interface.
func (r *PoolRepositoryImpl) GetPoolByName(
	_ context.Context, name string,
) (*domain.Pool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.getPool(name)
}

// GetPoolByAssets implements the domain.PoolRepository interface.
func (r *PoolRepositoryImpl) GetPoolByAssets(
	_ context.Context, assetX, assetY string, seed uint64,
) (*domain.Pool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, pool := range r.pools {
		if pool.AssetX == assetX && pool.AssetY == assetY && pool.Seed == seed {
			p := pool
			return &p, nil
		}
	}
	return nil, domain.ErrPoolNotExist
}

// GetAllPools implements the domain.PoolRepository interface.
func (r *PoolRepositoryImpl) GetAllPools(
	_ context.Context,
) ([]domain.Pool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	pools := make([]domain.Pool, 0, len(r.pools))
	for _, pool := range r.pools {
		pools = append(pools, pool)
	}
	return pools, nil
}

// UpdatePool implements the domain.PoolRepository interface.
func (r *PoolRepositoryImpl) UpdatePool(
	_ context.Context,
	name string, updateFn func(p *domain.Pool) (*domain.Pool, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	currentPool, err := r.getPool(name)
	if err != nil {
		return err
	}

	updatedPool, err := updateFn(currentPool)
	if err != nil {
		return err
	}

	r.pools[name] = *updatedPool
	return nil
}

func (r *PoolRepositoryImpl) getPool(name string) (*domain.Pool, error) {
	pool, ok := r.pools[name]
	if !ok {
		return nil, domain.ErrPoolNotExist
	}
	return &pool, nil
}
