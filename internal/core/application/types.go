package application

// CreatePoolArgs bundles the one-time parameters of a new pool.
type CreatePoolArgs struct {
	Seed           uint64
	AssetX         string
	AssetY         string
	FeeBasisPoints uint16
	// Optional address allowed to lock and unlock the pool. Leaving it
	// empty makes the pool permanently unmanaged.
	Authority string
}

// PoolInfo is the read model of a pool returned by the services.
type PoolInfo struct {
	Name           string
	AssetX         string
	AssetY         string
	FeeBasisPoints uint16
	Locked         bool
	Address        string
	ClaimAsset     string
	BalanceX       uint64
	BalanceY       uint64
	ClaimSupply    uint64
}

// PoolPrice holds the two spot prices of a pool, without fees.
type PoolPrice struct {
	// how much 1 unit of asset x is valued in asset y.
	PriceX string
	// how much 1 unit of asset y is valued in asset x.
	PriceY string
}

// DepositArgs bundles the parameters of a deposit. Amount is the desired
// quantity of claim tokens, MaxX and MaxY the slippage ceilings on the two
// reserve contributions.
type DepositArgs struct {
	PoolName string
	User     string
	Amount   uint64
	MaxX     uint64
	MaxY     uint64
}

// DepositResult reports the reserve amounts actually moved in and the claim
// tokens issued.
type DepositResult struct {
	X     uint64
	Y     uint64
	Claim uint64
}

// SwapArgs bundles the parameters of a swap. SupplyX selects which asset is
// being supplied, MinOut is the slippage floor on the received amount.
type SwapArgs struct {
	PoolName string
	User     string
	SupplyX  bool
	AmountIn uint64
	MinOut   uint64
}

// PreviewArgs bundles the parameters of a swap preview. SupplyX selects which
// asset would be supplied.
type PreviewArgs struct {
	PoolName string
	SupplyX  bool
	Amount   uint64
	// AmountIsOut interprets Amount as the desired received amount and
	// makes the preview quote the required gross input instead.
	AmountIsOut bool
}

// SwapResult reports the two legs of an executed or previewed swap.
type SwapResult struct {
	AssetIn   string
	AssetOut  string
	AmountIn  uint64
	AmountOut uint64
	Fee       uint64
}
