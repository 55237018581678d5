package ledgerbadger

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/tdex-network/ammd/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
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

// Ledger is a persistent asset ledger backed by a badger store. Every
// Transact batch runs inside a single badger transaction, the store commits
// all of its balance mutations or none of them.
type Ledger struct {
	store *badgerhold.Store
}

// NewLedger opens (or creates if not exists) the ledger store on disk under
// the given base data dir.
func NewLedger(baseDbDir string, logger badger.Logger) (*Ledger, error) {
	opts := badger.DefaultOptions(baseDbDir + "/ledger")
	opts.Logger = logger

	store, err := badgerhold.Open(badgerhold.Options{
		Encoder:          jsonEncode,
		Decoder:          jsonDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	return &Ledger{store: store}, nil
}

// Close releases the underlying store.
func (l *Ledger) Close() error {
	return l.store.Close()
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
	addr := l.AccountAddress(owner, asset)
	account := tokenAccount{
		Address: addr,
		Owner:   owner,
		Asset:   asset,
	}

	if err := l.store.Insert(addr, &account); err != nil {
		if err == badgerhold.ErrKeyExists {
			return "", ErrAccountAlreadyExist
		}
		return "", err
	}
	return addr, nil
}

// CreateMint implements the ports.Ledger interface.
func (l *Ledger) CreateMint(
	_ context.Context, asset, authority string, decimals uint,
) error {
	mint := assetMint{
		Asset:     asset,
		Authority: authority,
		Decimals:  decimals,
	}

	if err := l.store.Insert(asset, &mint); err != nil {
		if err == badgerhold.ErrKeyExists {
			return ErrMintAlreadyExist
		}
		return err
	}
	return nil
}

// GetBalance implements the ports.Ledger interface.
func (l *Ledger) GetBalance(_ context.Context, account string) (uint64, error) {
	var acc tokenAccount
	if err := l.store.Get(account, &acc); err != nil {
		if err == badgerhold.ErrNotFound {
			return 0, ErrAccountNotExist
		}
		return 0, err
	}
	return acc.Balance, nil
}

// GetSupply implements the ports.Ledger interface.
func (l *Ledger) GetSupply(_ context.Context, asset string) (uint64, error) {
	var mint assetMint
	if err := l.store.Get(asset, &mint); err != nil {
		if err == badgerhold.ErrNotFound {
			return 0, ErrMintNotExist
		}
		return 0, err
	}
	return mint.Supply, nil
}

// Transact implements the ports.Ledger interface.
func (l *Ledger) Transact(_ context.Context, fn func(ports.LedgerTx) error) error {
	txn := l.store.Badger().NewTransaction(true)
	defer txn.Discard()

	tx := &ledgerTx{store: l.store, txn: txn}
	if err := fn(tx); err != nil {
		return err
	}

	return txn.Commit()
}

type ledgerTx struct {
	store *badgerhold.Store
	txn   *badger.Txn
}

func (tx *ledgerTx) Transfer(
	from, to string, amount uint64, signer ports.Signer,
) error {
	if from == to {
		return ErrSameAccount
	}
	fromAccount, err := tx.getAccount(from)
	if err != nil {
		return err
	}
	toAccount, err := tx.getAccount(to)
	if err != nil {
		return err
	}
	if fromAccount.Asset != toAccount.Asset {
		return ErrAssetMismatch
	}
	if signer == nil || signer.Address() != fromAccount.Owner {
		return ErrInvalidAuthority
	}
	if fromAccount.Balance < amount {
		return ErrInsufficientBalance
	}
	if toAccount.Balance+amount < toAccount.Balance {
		return ErrBalanceOverflow
	}

	fromAccount.Balance -= amount
	toAccount.Balance += amount
	if err := tx.store.TxUpdate(tx.txn, from, fromAccount); err != nil {
		return err
	}
	return tx.store.TxUpdate(tx.txn, to, toAccount)
}

func (tx *ledgerTx) Mint(
	asset, to string, amount uint64, signer ports.Signer,
) error {
	var mint assetMint
	if err := tx.store.TxGet(tx.txn, asset, &mint); err != nil {
		if err == badgerhold.ErrNotFound {
			return ErrMintNotExist
		}
		return err
	}
	toAccount, err := tx.getAccount(to)
	if err != nil {
		return err
	}
	if toAccount.Asset != asset {
		return ErrAssetMismatch
	}
	if signer == nil || signer.Address() != mint.Authority {
		return ErrInvalidAuthority
	}
	if mint.Supply+amount < mint.Supply {
		return ErrBalanceOverflow
	}
	if toAccount.Balance+amount < toAccount.Balance {
		return ErrBalanceOverflow
	}

	mint.Supply += amount
	toAccount.Balance += amount
	if err := tx.store.TxUpdate(tx.txn, asset, &mint); err != nil {
		return err
	}
	return tx.store.TxUpdate(tx.txn, to, toAccount)
}

func (tx *ledgerTx) getAccount(addr string) (*tokenAccount, error) {
	var account tokenAccount
	if err := tx.store.TxGet(tx.txn, addr, &account); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, ErrAccountNotExist
		}
		return nil, err
	}
	return &account, nil
}

func jsonEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer
	if err := json.NewEncoder(&buff).Encode(value); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

func jsonDecode(data []byte, value interface{}) error {
	return json.NewDecoder(bytes.NewReader(data)).Decode(value)
}
