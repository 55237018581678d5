package ledgerbadger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ammd/internal/core/ports"
)

const testAsset = "0000000000000000000000000000000000000000000000000000000000000000"

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	ledger, err := NewLedger(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })
	return ledger
}

func TestTransferAndMint(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)

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

func TestTransactRollback(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)

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

func TestFailingAuthority(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)

	require.NoError(t, ledger.CreateMint(ctx, testAsset, "minter", 6))

	alice, err := ledger.CreateAccount(ctx, "alice", testAsset)
	require.NoError(t, err)
	bob, err := ledger.CreateAccount(ctx, "bob", testAsset)
	require.NoError(t, err)

	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Mint(testAsset, alice, 100, ports.SignerFromAddress("alice"))
	})
	require.EqualError(t, err, ErrInvalidAuthority.Error())

	err = ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		return tx.Transfer(alice, bob, 10, ports.SignerFromAddress("bob"))
	})
	require.EqualError(t, err, ErrInvalidAuthority.Error())
}
