package application

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ammd/internal/core/domain"
	"github.com/tdex-network/ammd/internal/core/ports"
	"github.com/tdex-network/ammd/pkg/curve"
)

// OperatorService exposes the management operations of the pools.
type OperatorService interface {
	// CreatePool writes the configuration record of a new pool and
	// establishes its empty vaults and claim token supply.
	CreatePool(ctx context.Context, args CreatePoolArgs) (*PoolInfo, error)
	// LockPool sets the circuit breaker of a pool.
	LockPool(ctx context.Context, poolName, authority string) error
	// UnlockPool clears the circuit breaker of a pool.
	UnlockPool(ctx context.Context, poolName, authority string) error
	// GetPoolInfo returns the read model of a pool with its live balances.
	GetPoolInfo(ctx context.Context, poolName string) (*PoolInfo, error)
	// ListPools returns the read models of all pools.
	ListPools(ctx context.Context) ([]PoolInfo, error)
	// ListTrades returns the trade history of a pool.
	ListTrades(ctx context.Context, poolName string) ([]domain.Trade, error)
}

type operatorService struct {
	poolRepository  domain.PoolRepository
	tradeRepository domain.TradeRepository
	ledger          ports.Ledger
}

// NewOperatorService returns an OperatorService using the given repositories
// and ledger collaborator.
func NewOperatorService(
	poolRepository domain.PoolRepository,
	tradeRepository domain.TradeRepository,
	ledger ports.Ledger,
) OperatorService {
	return &operatorService{
		poolRepository:  poolRepository,
		tradeRepository: tradeRepository,
		ledger:          ledger,
	}
}

func (s *operatorService) CreatePool(
	ctx context.Context, args CreatePoolArgs,
) (*PoolInfo, error) {
	pool, err := domain.NewPool(
		args.Seed, args.AssetX, args.AssetY, args.FeeBasisPoints,
		args.Authority,
	)
	if err != nil {
		return nil, err
	}

	if _, err := s.poolRepository.GetPoolByAssets(
		ctx, args.AssetX, args.AssetY, args.Seed,
	); err == nil {
		return nil, domain.ErrPoolAlreadyExist
	}
	// The derived address depends on the seed only, a seed reused with
	// another pair would collide with the existing pool's mint and vaults.
	pools, err := s.poolRepository.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pools {
		if pools[i].Address == pool.Address {
			return nil, domain.ErrPoolSeedInUse
		}
	}

	// The ledger allocations come before persisting the record. If a past
	// creation was interrupted in between, the mint or vaults may already
	// exist; no persisted pool owns them at this point, so creation resumes
	// over the leftovers instead of failing forever.
	if _, err := s.ledger.GetSupply(ctx, pool.ClaimAsset); err != nil {
		if err := s.ledger.CreateMint(
			ctx, pool.ClaimAsset, pool.Address, curve.ClaimDecimals,
		); err != nil {
			return nil, err
		}
	}
	pool.VaultX, err = s.allocateVault(ctx, pool.Address, pool.AssetX)
	if err != nil {
		return nil, err
	}
	pool.VaultY, err = s.allocateVault(ctx, pool.Address, pool.AssetY)
	if err != nil {
		return nil, err
	}

	if err := s.poolRepository.AddPool(ctx, pool); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"pool":    pool.Name,
		"address": pool.Address,
		"fee_bps": pool.FeeBasisPoints,
	}).Info("pool created")

	return s.poolInfo(ctx, pool)
}

func (s *operatorService) LockPool(
	ctx context.Context, poolName, authority string,
) error {
	if err := s.poolRepository.UpdatePool(
		ctx, poolName, func(p *domain.Pool) (*domain.Pool, error) {
			if err := p.Lock(authority); err != nil {
				return nil, err
			}
			return p, nil
		},
	); err != nil {
		return err
	}

	log.WithField("pool", poolName).Info("pool locked")
	return nil
}

func (s *operatorService) UnlockPool(
	ctx context.Context, poolName, authority string,
) error {
	if err := s.poolRepository.UpdatePool(
		ctx, poolName, func(p *domain.Pool) (*domain.Pool, error) {
			if err := p.Unlock(authority); err != nil {
				return nil, err
			}
			return p, nil
		},
	); err != nil {
		return err
	}

	log.WithField("pool", poolName).Info("pool unlocked")
	return nil
}

func (s *operatorService) GetPoolInfo(
	ctx context.Context, poolName string,
) (*PoolInfo, error) {
	pool, err := s.poolRepository.GetPoolByName(ctx, poolName)
	if err != nil {
		return nil, err
	}
	return s.poolInfo(ctx, pool)
}

func (s *operatorService) ListPools(ctx context.Context) ([]PoolInfo, error) {
	pools, err := s.poolRepository.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}

	infoList := make([]PoolInfo, 0, len(pools))
	for i := range pools {
		info, err := s.poolInfo(ctx, &pools[i])
		if err != nil {
			return nil, err
		}
		infoList = append(infoList, *info)
	}
	return infoList, nil
}

func (s *operatorService) ListTrades(
	ctx context.Context, poolName string,
) ([]domain.Trade, error) {
	if _, err := s.poolRepository.GetPoolByName(ctx, poolName); err != nil {
		return nil, err
	}
	return s.tradeRepository.GetTradesByPool(ctx, poolName)
}

func (s *operatorService) allocateVault(
	ctx context.Context, owner, asset string,
) (string, error) {
	addr := s.ledger.AccountAddress(owner, asset)
	if _, err := s.ledger.GetBalance(ctx, addr); err == nil {
		return addr, nil
	}
	return s.ledger.CreateAccount(ctx, owner, asset)
}

func (s *operatorService) poolInfo(
	ctx context.Context, pool *domain.Pool,
) (*PoolInfo, error) {
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

	return &PoolInfo{
		Name:           pool.Name,
		AssetX:         pool.AssetX,
		AssetY:         pool.AssetY,
		FeeBasisPoints: pool.FeeBasisPoints,
		Locked:         pool.IsLocked(),
		Address:        pool.Address,
		ClaimAsset:     pool.ClaimAsset,
		BalanceX:       balanceX,
		BalanceY:       balanceY,
		ClaimSupply:    supply,
	}, nil
}
