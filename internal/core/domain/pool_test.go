package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ammd/internal/core/domain"
)

const (
	assetX    = "0000000000000000000000000000000000000000000000000000000000000000"
	assetY    = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	authority = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func TestNewPool(t *testing.T) {
	t.Parallel()

	pool, err := domain.NewPool(42, assetX, assetY, 30, authority)
	require.NoError(t, err)
	require.NotNil(t, pool)
	require.Equal(t, uint64(42), pool.Seed)
	require.Equal(t, assetX, pool.AssetX)
	require.Equal(t, assetY, pool.AssetY)
	require.Equal(t, uint16(30), pool.FeeBasisPoints)
	require.False(t, pool.IsLocked())
	require.Len(t, pool.Address, 64)
	require.Len(t, pool.ClaimAsset, 64)
	require.NotEqual(t, pool.Address, pool.ClaimAsset)
	require.Len(t, pool.Name, 40)

	// the derived signer controls the pool address
	require.Equal(t, pool.Address, pool.Signer().Address())

	// same pair, different seed, different identity
	other, err := domain.NewPool(43, assetX, assetY, 30, authority)
	require.NoError(t, err)
	require.NotEqual(t, pool.Address, other.Address)
	require.NotEqual(t, pool.Name, other.Name)
}

func TestFailingNewPool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		assetX        string
		assetY        string
		fee           uint16
		expectedError error
	}{
		{"invalid_asset_x", "", assetY, 30, domain.ErrPoolInvalidAssetX},
		{"invalid_asset_y", assetX, "notanasset", 30, domain.ErrPoolInvalidAssetY},
		{"same_asset_pair", assetX, assetX, 30, domain.ErrPoolSameAssetPair},
		{"fee_too_high", assetX, assetY, 10001, domain.ErrPoolInvalidFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := domain.NewPool(42, tt.assetX, tt.assetY, tt.fee, "")
			require.EqualError(t, err, tt.expectedError.Error())
			require.Nil(t, pool)
		})
	}
}

func TestPoolLockUnlock(t *testing.T) {
	t.Parallel()

	pool, err := domain.NewPool(42, assetX, assetY, 30, authority)
	require.NoError(t, err)

	err = pool.Lock(authority)
	require.NoError(t, err)
	require.True(t, pool.IsLocked())

	err = pool.Lock(authority)
	require.EqualError(t, err, domain.ErrPoolLocked.Error())

	err = pool.Unlock(authority)
	require.NoError(t, err)
	require.False(t, pool.IsLocked())

	err = pool.Unlock(authority)
	require.EqualError(t, err, domain.ErrPoolNotLocked.Error())

	err = pool.Lock("someoneelse")
	require.EqualError(t, err, domain.ErrPoolNotAuthorized.Error())
	require.False(t, pool.IsLocked())
}

func TestUnmanagedPool(t *testing.T) {
	t.Parallel()

	pool, err := domain.NewPool(42, assetX, assetY, 30, "")
	require.NoError(t, err)

	err = pool.Lock(authority)
	require.EqualError(t, err, domain.ErrPoolUnmanaged.Error())
	require.False(t, pool.IsLocked())
}
