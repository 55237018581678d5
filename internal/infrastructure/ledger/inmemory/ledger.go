package inmemory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/tdex-network/ammd/internal/core/ports"
)

type tokenAccount struct {
	Address string
	Owner   string
	Asset   string
	Balance uint64
}

type assetMint struct {
	Asset     string
	Authority string
	Decimals  uint
	Supply    uint64
}

// Ledger is an in-process asset ledger holding token accounts and asset
// supplies in memory. Balance mutations only happen inside Transact, which
// stages every change and commits all of them at once, so a failing batch
// leaves the ledger exactly as it was.
type Ledger struct {
	accounts map[string]*tokenAccount
	mints    map[string]*assetMint

	lock *sync.RWMutex
}

// NewLedger returns a new empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: map[string]*tokenAccount{},
		mints:    map[string]*assetMint{},
		lock:     &sync.RWMutex{},
	}
}

// AccountAddress implements the ports.Ledger interface.
func (l *Ledger) AccountAddress(owner, asset string) string {
	h := sha256.New()
	h.Write([]byte("account"))
	h.Write([]byte(owner))
	h.Write([]byte(asset))
	return hex.EncodeToString(h.Sum(nil))
}

// CreateAccount implements the ports.Ledger interface.
func (l *Ledger) CreateAccount(
	_ context.Context, owner, asset string,
) (string, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	addr := l.AccountAddress(owner, asset)
	if _, ok := l.accounts[addr]; ok {
		return "", ErrAccountAlreadyExist
	}

	l.accounts[addr] = &tokenAccount{
		Address: addr,
		Owner:   owner,
		Asset:   asset,
	}
	return addr, nil
}

// CreateMint implements the ports.Ledger interface.
func (l *Ledger) CreateMint(
	_ context.Context, asset, authority string, decimals uint,
) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.mints[asset]; ok {
		return ErrMintAlreadyExist
	}

	l.mints[asset] = &assetMint{
		Asset:     asset,
		Authority: authority,
		Decimals:  decimals,
	}
	return nil
}

// GetBalance implements the ports.Ledger interface.
func (l *Ledger) GetBalance(_ context.Context, account string) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	acc, ok := l.accounts[account]
	if !ok {
		return 0, ErrAccountNotExist
	}
	return acc.Balance, nil
}

// GetSupply implements the ports.Ledger interface.
func (l *Ledger) GetSupply(_ context.Context, asset string) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	mint, ok := l.mints[asset]
	if !ok {
		return 0, ErrMintNotExist
	}
	return mint.Supply, nil
}

// Transact implements the ports.Ledger interface. The staged balances and
// supplies are thrown away if fn returns an error, committed in one go under
// the write lock otherwise.
func (l *Ledger) Transact(_ context.Context, fn func(ports.LedgerTx) error) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	tx := &ledgerTx{
		ledger:   l,
		balances: map[string]uint64{},
		supplies: map[string]uint64{},
	}
	if err := fn(tx); err != nil {
		return err
	}

	for addr, balance := range tx.balances {
		l.accounts[addr].Balance = balance
	}
	for asset, supply := range tx.supplies {
		l.mints[asset].Supply = supply
	}
	return nil
}

type ledgerTx struct {
	ledger *Ledger
	// staged balances by account address and supplies by asset. Reads go
	// through to the committed state on a miss.
	balances map[string]uint64
	supplies map[string]uint64
}

func (tx *ledgerTx) Transfer(
	from, to string, amount uint64, signer ports.Signer,
) error {
	if from == to {
		return ErrSameAccount
	}
	fromAccount, ok := tx.ledger.accounts[from]
	if !ok {
		return ErrAccountNotExist
	}
	toAccount, ok := tx.ledger.accounts[to]
	if !ok {
		return ErrAccountNotExist
	}
	if fromAccount.Asset != toAccount.Asset {
		return ErrAssetMismatch
	}
	if signer == nil || signer.Address() != fromAccount.Owner {
		return ErrInvalidAuthority
	}

	fromBalance := tx.balanceOf(fromAccount)
	if fromBalance < amount {
		return ErrInsufficientBalance
	}
	toBalance := tx.balanceOf(toAccount)
	if toBalance+amount < toBalance {
		return ErrBalanceOverflow
	}

	tx.balances[from] = fromBalance - amount
	tx.balances[to] = toBalance + amount
	return nil
}

func (tx *ledgerTx) Mint(
	asset, to string, amount uint64, signer ports.Signer,
) error {
	mint, ok := tx.ledger.mints[asset]
	if !ok {
		return ErrMintNotExist
	}
	toAccount, ok := tx.ledger.accounts[to]
	if !ok {
		return ErrAccountNotExist
	}
	if toAccount.Asset != asset {
		return ErrAssetMismatch
	}
	if signer == nil || signer.Address() != mint.Authority {
		return ErrInvalidAuthority
	}

	supply := tx.supplyOf(mint)
	if supply+amount < supply {
		return ErrBalanceOverflow
	}
	toBalance := tx.balanceOf(toAccount)
	if toBalance+amount < toBalance {
		return ErrBalanceOverflow
	}

	tx.supplies[asset] = supply + amount
	tx.balances[to] = toBalance + amount
	return nil
}

func (tx *ledgerTx) balanceOf(account *tokenAccount) uint64 {
	if balance, ok := tx.balances[account.Address]; ok {
		return balance
	}
	return account.Balance
}

func (tx *ledgerTx) supplyOf(mint *assetMint) uint64 {
	if supply, ok := tx.supplies[mint.Asset]; ok {
		return supply
	}
	return mint.Supply
}
