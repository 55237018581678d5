package ledgerbadger

import "errors"

var (
	// ErrAccountNotExist ...
	ErrAccountNotExist = errors.New("token account does not exist")
	// ErrAccountAlreadyExist ...
	ErrAccountAlreadyExist = errors.New("token account already exists")
	// ErrMintNotExist ...
	ErrMintNotExist = errors.New("asset mint does not exist")
	// ErrMintAlreadyExist ...
	ErrMintAlreadyExist = errors.New("asset mint already exists")
	// ErrSameAccount ...
	ErrSameAccount = errors.New("source and destination accounts must differ")
	// ErrAssetMismatch ...
	ErrAssetMismatch = errors.New("accounts do not hold the expected asset")
	// ErrInsufficientBalance ...
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidAuthority ...
	ErrInvalidAuthority = errors.New("signer does not control the account or mint")
	// ErrBalanceOverflow ...
	ErrBalanceOverflow = errors.New("balance or supply would overflow")
)
