package ports

import "context"

// Signer is the credential presented to the ledger to authorize moving funds
// out of an account or minting from an asset supply. For end users the outer
// layer has already verified the transaction signature, so the credential
// reduces to the bare address. For program-owned accounts it is a derived
// signing proof, never a stored secret.
type Signer interface {
	Address() string
}

// Ledger is the asset ledger collaborator the pool operations run against.
// Its answers are authoritative, the core never caches balances across
// operations.
type Ledger interface {
	// AccountAddress returns the deterministic address of the token account
	// holding owner's balance of the given asset.
	AccountAddress(owner, asset string) string
	// CreateAccount allocates a zero-balance token account for (owner,
	// asset) and returns its address. Allocating twice is an error.
	CreateAccount(ctx context.Context, owner, asset string) (string, error)
	// CreateMint registers a new asset with its minting authority and
	// decimal precision.
	CreateMint(
		ctx context.Context, asset, authority string, decimals uint,
	) error
	// GetBalance returns the balance of the account with the given address.
	GetBalance(ctx context.Context, account string) (uint64, error)
	// GetSupply returns the circulating supply of the given asset.
	GetSupply(ctx context.Context, asset string) (uint64, error)
	// Transact runs fn against a ledger transaction. All operations issued
	// through the transaction commit atomically when fn returns nil, while
	// any error aborts the whole batch leaving every balance untouched.
	Transact(ctx context.Context, fn func(LedgerTx) error) error
}

// LedgerTx is the set of balance-mutating primitives available inside an
// atomic ledger transaction. Every call validates eagerly and a returned
// error must be treated as fatal for the whole batch.
type LedgerTx interface {
	// Transfer moves amount from one account to the other. It fails on
	// insufficient balance, on an asset mismatch between the two accounts
	// and whenever the signer does not control the source account.
	Transfer(from, to string, amount uint64, signer Signer) error
	// Mint issues amount of the given asset to an account. The signer must
	// control the asset's configured minting authority.
	Mint(asset, to string, amount uint64, signer Signer) error
}

// SignerFromAddress returns the plain credential of an externally verified
// account owner.
func SignerFromAddress(addr string) Signer {
	return addressSigner(addr)
}

type addressSigner string

func (s addressSigner) Address() string {
	return string(s)
}
