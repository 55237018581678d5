package domain

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/tdex-network/ammd/pkg/derivation"
)

// Derivation seed labels. The pool address is derived from the config label
// and the pool seed, the claim asset from the lp label and the pool address.
var (
	configSeed = []byte("config")
	claimSeed  = []byte("lp")
)

// Pool defines the pool configuration record, the durable state of an AMM
// instance. It is created once and, authority permitting, only the Locked
// flag is ever mutated afterwards. Reserve balances and the claim supply live
// in the ledger, not here.
type Pool struct {
	// Seed disambiguates pools created for the same asset pair.
	Seed uint64
	// Short human-readable name of the pool.
	Name string
	// Asset pair in hex format. The order matters, it gives the swap
	// direction its sign.
	AssetX string
	AssetY string
	// Optional privileged party allowed to toggle the Locked flag. Empty
	// means the pool is permanently unmanaged.
	Authority string
	// Swap fee expressed in basis points, fixed at creation.
	FeeBasisPoints uint16
	// Global circuit breaker. While set, deposits and swaps are rejected.
	Locked bool
	// Derived program-owned address of the pool and its nonce.
	Address   string
	PoolNonce uint8
	// Derived asset id of the claim token and its nonce.
	ClaimAsset string
	ClaimNonce uint8
	// Ledger accounts holding the two reserves, owned by Address.
	VaultX string
	VaultY string
}

// NewPool returns a new unlocked pool for the given asset pair with its
// program-owned address and claim asset derived from the seed.
func NewPool(
	seed uint64, assetX, assetY string, feeBasisPoints uint16, authority string,
) (*Pool, error) {
	if !isValidAsset(assetX) {
		return nil, ErrPoolInvalidAssetX
	}
	if !isValidAsset(assetY) {
		return nil, ErrPoolInvalidAssetY
	}
	if assetX == assetY {
		return nil, ErrPoolSameAssetPair
	}
	if feeBasisPoints > 10000 {
		return nil, ErrPoolInvalidFee
	}

	address, poolNonce, err := derivation.Derive(configSeed, seedBytes(seed))
	if err != nil {
		return nil, err
	}
	claimAsset, claimNonce, err := derivation.Derive(claimSeed, []byte(address))
	if err != nil {
		return nil, err
	}

	return &Pool{
		Seed:           seed,
		Name:           makePoolName(assetX, assetY, seed),
		AssetX:         assetX,
		AssetY:         assetY,
		Authority:      authority,
		FeeBasisPoints: feeBasisPoints,
		Address:        address,
		PoolNonce:      poolNonce,
		ClaimAsset:     claimAsset,
		ClaimNonce:     claimNonce,
	}, nil
}

// IsLocked returns whether the pool rejects deposits and swaps.
func (p *Pool) IsLocked() bool {
	return p.Locked
}

// Lock sets the circuit breaker. Only the pool authority may do it.
func (p *Pool) Lock(authority string) error {
	if err := p.checkAuthority(authority); err != nil {
		return err
	}
	if p.Locked {
		return ErrPoolLocked
	}
	p.Locked = true
	return nil
}

// Unlock clears the circuit breaker. Only the pool authority may do it.
func (p *Pool) Unlock(authority string) error {
	if err := p.checkAuthority(authority); err != nil {
		return err
	}
	if !p.Locked {
		return ErrPoolNotLocked
	}
	p.Locked = false
	return nil
}

// Signer returns the signing credential of the pool's derived address, used
// to authorize claim mints and outbound vault transfers.
func (p *Pool) Signer() *derivation.Signer {
	return derivation.NewSigner(p.PoolNonce, configSeed, seedBytes(p.Seed))
}

func (p *Pool) checkAuthority(authority string) error {
	if p.Authority == "" {
		return ErrPoolUnmanaged
	}
	if authority != p.Authority {
		return ErrPoolNotAuthorized
	}
	return nil
}

// makePoolName returns the full Hash160 of the pair and seed in hex format.
// Truncating it would shrink the keyspace enough for distinct pools to
// collide on the repository key.
func makePoolName(assetX, assetY string, seed uint64) string {
	buf, _ := hex.DecodeString(assetX + assetY)
	buf = append(buf, seedBytes(seed)...)
	return hex.EncodeToString(btcutil.Hash160(buf))
}

func seedBytes(seed uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, seed)
	return buf
}

func isValidAsset(asset string) bool {
	buf, err := hex.DecodeString(asset)
	if err != nil {
		return false
	}
	return len(buf) == 32
}
