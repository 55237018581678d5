package domain

import "context"

// PoolRepository is the abstraction for any kind of database intended to
// persist pool configuration records.
type PoolRepository interface {
	// AddPool adds a new pool to the repository. It fails with
	// ErrPoolAlreadyExist on a duplicate name.
	AddPool(ctx context.Context, pool *Pool) error
	// GetPoolByName returns the pool with the given name, or ErrPoolNotExist.
	GetPoolByName(ctx context.Context, name string) (*Pool, error)
	// GetPoolByAssets returns the pool for the given pair and seed.
	GetPoolByAssets(
		ctx context.Context, assetX, assetY string, seed uint64,
	) (*Pool, error)
	// GetAllPools returns all pools.
	GetAllPools(ctx context.Context) ([]Pool, error)
	// UpdatePool commits the changes made by updateFn to the stored pool in
	// a transactional way.
	UpdatePool(
		ctx context.Context,
		name string, updateFn func(p *Pool) (*Pool, error),
	) error
}
