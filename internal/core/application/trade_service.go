package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ammd/internal/core/domain"
	"github.com/tdex-network/ammd/internal/core/ports"
	"github.com/tdex-network/ammd/pkg/curve"
)

// TradeService exposes the trading operations of the pools. Every operation
// validates its preconditions and prices itself against a curve snapshot
// taken at its start, then moves funds through a single atomic ledger
// transaction, so that a failure at any step leaves every balance untouched.
type TradeService interface {
	// Deposit moves paired assets into the pool vaults and mints the
	// requested quantity of claim tokens to the user.
	Deposit(ctx context.Context, args DepositArgs) (*DepositResult, error)
	// Swap supplies one asset and receives the other, priced by the
	// constant-product curve net of the pool fee.
	Swap(ctx context.Context, args SwapArgs) (*SwapResult, error)
	// PreviewSwap prices a swap without moving funds, quoting either the
	// amount received for a given input or the input required for a given
	// output.
	PreviewSwap(ctx context.Context, args PreviewArgs) (*SwapResult, error)
	// GetPoolPrice returns the two fee-less spot prices of a pool.
	GetPoolPrice(ctx context.Context, poolName string) (*PoolPrice, error)
}

type tradeService struct {
	poolRepository  domain.PoolRepository
	tradeRepository domain.TradeRepository
	ledger          ports.Ledger
	poolLocks       sync.Map
}

// NewTradeService returns a TradeService using the given repositories and
// ledger collaborator.
func NewTradeService(
	poolRepository domain.PoolRepository,
	tradeRepository domain.TradeRepository,
	ledger ports.Ledger,
) TradeService {
	return &tradeService{
		poolRepository:  poolRepository,
		tradeRepository: tradeRepository,
		ledger:          ledger,
	}
}

// lockPool serializes fund-moving operations on one pool. They price against
// a snapshot of the reserves, so two of them interleaving between snapshot
// and transfers would both settle on stale reserves.
func (s *tradeService) lockPool(poolName string) func() {
	v, _ := s.poolLocks.LoadOrStore(poolName, &sync.Mutex{})
	lock := v.(*sync.Mutex)
	lock.Lock()
	return lock.Unlock
}

func (s *tradeService) Deposit(
	ctx context.Context, args DepositArgs,
) (*DepositResult, error) {
	defer s.lockPool(args.PoolName)()

	pool, err := s.poolRepository.GetPoolByName(ctx, args.PoolName)
	if err != nil {
		return nil, err
	}
	if pool.IsLocked() {
		return nil, domain.ErrPoolLocked
	}
	if args.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	snapshot, err := s.curveSnapshot(ctx, pool)
	if err != nil {
		return nil, err
	}

	var x, y uint64
	if snapshot.Supply == 0 && snapshot.ReserveX == 0 && snapshot.ReserveY == 0 {
		// bootstrap deposit, the caller fully determines the initial
		// price ratio. Both legs must be funded or the supply would end
		// up backed by an empty reserve.
		if args.MaxX == 0 || args.MaxY == 0 {
			return nil, domain.ErrInvalidAmount
		}
		x, y = args.MaxX, args.MaxY
	} else {
		amounts, err := snapshot.DepositAmountsFromClaim(args.Amount)
		if err != nil {
			return nil, err
		}
		x, y = amounts.X, amounts.Y
	}

	if x > args.MaxX || y > args.MaxY {
		return nil, domain.ErrSlippageExceeded
	}

	userX := s.ledger.AccountAddress(args.User, pool.AssetX)
	userY := s.ledger.AccountAddress(args.User, pool.AssetY)
	userClaim := s.ledger.AccountAddress(args.User, pool.ClaimAsset)
	userSigner := ports.SignerFromAddress(args.User)

	if err := s.ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		if err := tx.Transfer(userX, pool.VaultX, x, userSigner); err != nil {
			return err
		}
		if err := tx.Transfer(userY, pool.VaultY, y, userSigner); err != nil {
			return err
		}
		return tx.Mint(pool.ClaimAsset, userClaim, args.Amount, pool.Signer())
	}); err != nil {
		return nil, err
	}

	s.recordTrade(ctx, &domain.Trade{
		Id:       uuid.New().String(),
		PoolName: pool.Name,
		Type:     domain.TradeTypeDeposit,
		User:     args.User,
		In:       map[string]uint64{pool.AssetX: x, pool.AssetY: y},
		Out:      map[string]uint64{pool.ClaimAsset: args.Amount},
	})

	log.WithFields(log.Fields{
		"pool":  pool.Name,
		"x":     x,
		"y":     y,
		"claim": args.Amount,
	}).Info("deposit completed")

	return &DepositResult{X: x, Y: y, Claim: args.Amount}, nil
}

func (s *tradeService) Swap(
	ctx context.Context, args SwapArgs,
) (*SwapResult, error) {
	defer s.lockPool(args.PoolName)()

	pool, res, err := s.priceSwap(ctx, args)
	if err != nil {
		return nil, err
	}

	vaultIn, vaultOut := pool.VaultX, pool.VaultY
	if !args.SupplyX {
		vaultIn, vaultOut = pool.VaultY, pool.VaultX
	}
	userIn := s.ledger.AccountAddress(args.User, res.AssetIn)
	userOut := s.ledger.AccountAddress(args.User, res.AssetOut)

	if err := s.ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		if err := tx.Transfer(
			userIn, vaultIn, res.AmountIn, ports.SignerFromAddress(args.User),
		); err != nil {
			return err
		}
		return tx.Transfer(vaultOut, userOut, res.AmountOut, pool.Signer())
	}); err != nil {
		return nil, err
	}

	s.recordTrade(ctx, &domain.Trade{
		Id:       uuid.New().String(),
		PoolName: pool.Name,
		Type:     domain.TradeTypeSwap,
		User:     args.User,
		In:       map[string]uint64{res.AssetIn: res.AmountIn},
		Out:      map[string]uint64{res.AssetOut: res.AmountOut},
		Fee:      res.Fee,
	})

	log.WithFields(log.Fields{
		"pool":       pool.Name,
		"asset_in":   res.AssetIn,
		"amount_in":  res.AmountIn,
		"amount_out": res.AmountOut,
		"fee":        res.Fee,
	}).Info("swap completed")

	return res, nil
}

func (s *tradeService) PreviewSwap(
	ctx context.Context, args PreviewArgs,
) (*SwapResult, error) {
	pool, err := s.poolRepository.GetPoolByName(ctx, args.PoolName)
	if err != nil {
		return nil, err
	}
	if args.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	snapshot, err := s.curveSnapshot(ctx, pool)
	if err != nil {
		return nil, err
	}

	pair, assetIn, assetOut := curve.PairX, pool.AssetX, pool.AssetY
	if !args.SupplyX {
		pair, assetIn, assetOut = curve.PairY, pool.AssetY, pool.AssetX
	}

	quote := snapshot.SwapOutput
	if args.AmountIsOut {
		quote = snapshot.SwapInput
	}
	res, err := quote(pair, args.Amount)
	if err != nil {
		if errors.Is(err, curve.ErrAmountTooLow) {
			return nil, domain.ErrInvalidAmount
		}
		return nil, err
	}

	return &SwapResult{
		AssetIn:   assetIn,
		AssetOut:  assetOut,
		AmountIn:  res.Deposit,
		AmountOut: res.Withdraw,
		Fee:       res.Fee,
	}, nil
}

func (s *tradeService) GetPoolPrice(
	ctx context.Context, poolName string,
) (*PoolPrice, error) {
	pool, err := s.poolRepository.GetPoolByName(ctx, poolName)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.curveSnapshot(ctx, pool)
	if err != nil {
		return nil, err
	}

	priceX, err := snapshot.SpotPrice(curve.PairX)
	if err != nil {
		return nil, err
	}
	priceY, err := snapshot.SpotPrice(curve.PairY)
	if err != nil {
		return nil, err
	}

	return &PoolPrice{
		PriceX: priceX.String(),
		PriceY: priceY.String(),
	}, nil
}

// priceSwap runs all validation and pricing of a swap up to, but excluding,
// the transfers. Both legs of the result are guaranteed nonzero and above the
// caller floor.
func (s *tradeService) priceSwap(
	ctx context.Context, args SwapArgs,
) (*domain.Pool, *SwapResult, error) {
	pool, err := s.poolRepository.GetPoolByName(ctx, args.PoolName)
	if err != nil {
		return nil, nil, err
	}
	if pool.IsLocked() {
		return nil, nil, domain.ErrPoolLocked
	}
	if args.AmountIn == 0 {
		return nil, nil, domain.ErrInvalidAmount
	}

	snapshot, err := s.curveSnapshot(ctx, pool)
	if err != nil {
		return nil, nil, err
	}

	pair, assetIn, assetOut := curve.PairX, pool.AssetX, pool.AssetY
	if !args.SupplyX {
		pair, assetIn, assetOut = curve.PairY, pool.AssetY, pool.AssetX
	}

	res, err := snapshot.SwapOutput(pair, args.AmountIn)
	if err != nil {
		// a trade rounding down to zero on either leg would silently do
		// nothing while still charging a transfer, reject it upfront.
		if errors.Is(err, curve.ErrAmountTooLow) {
			return nil, nil, domain.ErrInvalidAmount
		}
		return nil, nil, err
	}
	if res.Deposit == 0 || res.Withdraw == 0 {
		return nil, nil, domain.ErrInvalidAmount
	}
	if res.Withdraw < args.MinOut {
		return nil, nil, domain.ErrSlippageExceeded
	}

	return pool, &SwapResult{
		AssetIn:   assetIn,
		AssetOut:  assetOut,
		AmountIn:  res.Deposit,
		AmountOut: res.Withdraw,
		Fee:       res.Fee,
	}, nil
}

func (s *tradeService) curveSnapshot(
	ctx context.Context, pool *domain.Pool,
) (*curve.ConstantProduct, error) {
	balanceX, err := s.ledger.GetBalance(ctx, pool.VaultX)
	if err != nil {
		return nil, err
	}
	balanceY, err := s.ledger.GetBalance(ctx, pool.VaultY)
	if err != nil {
		return nil, err
	}
	supply, err := s.ledger.GetSupply(ctx, pool.ClaimAsset)
	if err != nil {
		return nil, err
	}

	return curve.New(
		balanceX, balanceY, supply, pool.FeeBasisPoints, curve.ClaimDecimals,
	)
}

// recordTrade appends the history record of a completed operation. History
// is advisory, a failure here must not undo ledger effects that already
// committed.
func (s *tradeService) recordTrade(ctx context.Context, trade *domain.Trade) {
	trade.Timestamp = time.Now()
	if err := s.tradeRepository.AddTrade(ctx, trade); err != nil {
		log.WithError(err).WithField("pool", trade.PoolName).
			Warn("failed to record trade")
	}
}
