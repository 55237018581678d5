package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ammd/internal/core/ports"
)

const testAsset = "0000000000000000000000000000000000000000000000000000000000000000"

func TestTransfer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewLedger()
	require.NoError(t, ledger.CreateMint(ctx, testAsset, "minter", 6))

	alice, err := ledger.CreateAccount(ctx, "alice", testAsset)
	require.NoError(t, err)
	bob, err := ledger.CreateAccount(ctx, "bob", testAsset)
	require.NoError(t, err)

	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Mint(testAsset, alice, 1000, ports.SignerFromAddress("minter"))
	})
	require.NoError(t, err)

	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Transfer(alice, bob, 400, ports.SignerFromAddress("alice"))
	})
	require.NoError(t, err)

	aliceBalance, err := ledger.GetBalance(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(600), aliceBalance)
	bobBalance, err := ledger.GetBalance(ctx, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(400), bobBalance)
	supply, err := ledger.GetSupply(ctx, testAsset)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), supply)
}

func TestFailingTransfer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewLedger()
	require.NoError(t, ledger.CreateMint(ctx, testAsset, "minter", 6))

	alice, err := ledger.CreateAccount(ctx, "alice", testAsset)
	require.NoError(t, err)
	bob, err := ledger.CreateAccount(ctx, "bob", testAsset)
	require.NoError(t, err)

	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Mint(testAsset, alice, 100, ports.SignerFromAddress("minter"))
	})
	require.NoError(t, err)

	// insufficient balance
	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Transfer(alice, bob, 101, ports.SignerFromAddress("alice"))
	})
	require.EqualError(t, err, ErrInsufficientBalance.Error())

	// a signer that does not own the source account
	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Transfer(alice, bob, 10, ports.SignerFromAddress("bob"))
	})
	require.EqualError(t, err, ErrInvalidAuthority.Error())

	// only the mint authority can mint
	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Mint(testAsset, alice, 10, ports.SignerFromAddress("alice"))
	})
	require.EqualError(t, err, ErrInvalidAuthority.Error())

	balance, err := ledger.GetBalance(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(100), balance)
}

// A batch aborting halfway must not leave the effects of its earlier
// operations behind.
func TestTransactRollback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewLedger()
	require.NoError(t, ledger.CreateMint(ctx, testAsset, "minter", 6))

	alice, err := ledger.CreateAccount(ctx, "alice", testAsset)
	require.NoError(t, err)
	bob, err := ledger.CreateAccount(ctx, "bob", testAsset)
	require.NoError(t, err)

	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Mint(testAsset, alice, 100, ports.SignerFromAddress("minter"))
	})
	require.NoError(t, err)

	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		if err := tx.Transfer(
			alice, bob, 50, ports.SignerFromAddress("alice"),
		); err != nil {
			return err
		}
		// second leg exceeds what alice has left after the first one
		return tx.Transfer(alice, bob, 51, ports.SignerFromAddress("alice"))
	})
	require.EqualError(t, err, ErrInsufficientBalance.Error())

	aliceBalance, err := ledger.GetBalance(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(100), aliceBalance)
	bobBalance, err := ledger.GetBalance(ctx, bob)
	require.NoError(t, err)
	require.Zero(t, bobBalance)
}

func TestCreateTwice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewLedger()
	require.NoError(t, ledger.CreateMint(ctx, testAsset, "minter", 6))
	require.EqualError(
		t, ledger.CreateMint(ctx, testAsset, "minter", 6),
		ErrMintAlreadyExist.Error(),
	)

	addr, err := ledger.CreateAccount(ctx, "alice", testAsset)
	require.NoError(t, err)
	require.Equal(t, addr, ledger.AccountAddress("alice", testAsset))

	_, err = ledger.CreateAccount(ctx, "alice", testAsset)
	require.EqualError(t, err, ErrAccountAlreadyExist.Error())
}
