package domain

import "errors"

var (
	// ErrPoolLocked is thrown when a mutating operation hits a pool whose
	// circuit breaker is set.
	ErrPoolLocked = errors.New("pool is locked")
	// ErrPoolNotLocked ...
	ErrPoolNotLocked = errors.New("pool is not locked")
	// ErrInvalidAmount is thrown when a zero amount is supplied or a computed
	// trade leg rounds down to zero.
	ErrInvalidAmount = errors.New("amount must not be zero")
	// ErrSlippageExceeded is thrown when the required deposit amounts exceed
	// the caller ceilings or the computed swap output falls below the caller
	// floor.
	ErrSlippageExceeded = errors.New("slippage tolerance exceeded")
	// ErrPoolNotExist ...
	ErrPoolNotExist = errors.New("pool does not exist")
	// ErrPoolAlreadyExist signals a duplicate seed and asset pair combination.
	ErrPoolAlreadyExist = errors.New("pool already exists")
	// ErrPoolSeedInUse is thrown when a seed already derives the address of a
	// pool with a different asset pair.
	ErrPoolSeedInUse = errors.New("seed already in use by another pool")
	// ErrPoolUnmanaged is thrown when trying to lock or unlock a pool created
	// without an authority.
	ErrPoolUnmanaged = errors.New("pool has no authority")
	// ErrPoolNotAuthorized ...
	ErrPoolNotAuthorized = errors.New("given authority cannot manage the pool")
	// ErrPoolInvalidAssetX ...
	ErrPoolInvalidAssetX = errors.New("asset x must be a 32-byte asset id in hex format")
	// ErrPoolInvalidAssetY ...
	ErrPoolInvalidAssetY = errors.New("asset y must be a 32-byte asset id in hex format")
	// ErrPoolSameAssetPair ...
	ErrPoolSameAssetPair = errors.New("asset pair must be made of different assets")
	// ErrPoolInvalidFee ...
	ErrPoolInvalidFee = errors.New("fee must be expressed in basis points in range [0, 10000]")
)
