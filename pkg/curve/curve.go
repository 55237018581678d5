// Package curve implements the constant-product pricing formula consumed by
// the pool operations. All accounting math is carried out on unsigned
// integers, intermediate products are widened so that they never wrap around.
// Quotients are floored everywhere except for the deposit requirements, which
// are ceiled so that rounding never favours the depositor.
package curve

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/ammd/pkg/mathutil"
)

// ClaimDecimals is the fixed decimal precision of the liquidity claim token.
const ClaimDecimals = uint(6)

var (
	// ErrBalanceTooLow ...
	ErrBalanceTooLow = errors.New("reserve balance amount is too low")
	// ErrAmountTooLow ...
	ErrAmountTooLow = errors.New("provided amount is too low")
	// ErrAmountTooBig ...
	ErrAmountTooBig = errors.New("provided amount is too big")
	// ErrSupplyTooLow ...
	ErrSupplyTooLow = errors.New("claim supply is too low")
	// ErrInvalidPrecision ...
	ErrInvalidPrecision = errors.New("precision must be in range [0, 12]")
)

// Pair selects one of the two reserves of a pool.
type Pair int

const (
	// PairX selects the first reserve asset.
	PairX Pair = iota
	// PairY selects the second one.
	PairY
)

// SwapResult holds the two legs of a priced trade. Deposit is the gross
// amount charged to the trader, Withdraw the amount paid out of the opposite
// reserve and Fee the portion of Deposit withheld from the curve input.
type SwapResult struct {
	Deposit  uint64
	Withdraw uint64
	Fee      uint64
}

// DepositAmounts holds the reserve contributions required to issue a given
// quantity of claim tokens.
type DepositAmounts struct {
	X uint64
	Y uint64
}

// ConstantProduct is a snapshot of a pool's live state, taken once at the
// beginning of an operation and used for every computation within it.
type ConstantProduct struct {
	ReserveX  uint64
	ReserveY  uint64
	Supply    uint64
	FeeBps    uint16
	Precision uint
}

// New returns a curve snapshot for the given reserves, claim supply and fee.
func New(
	reserveX, reserveY, supply uint64, feeBps uint16, precision uint,
) (*ConstantProduct, error) {
	if feeBps > uint16(mathutil.TenThousands) {
		return nil, ErrAmountTooBig
	}
	if precision > 12 {
		return nil, ErrInvalidPrecision
	}

	return &ConstantProduct{
		ReserveX:  reserveX,
		ReserveY:  reserveY,
		Supply:    supply,
		FeeBps:    feeBps,
		Precision: precision,
	}, nil
}

// SwapOutput prices a trade supplying amountIn of the pair's asset and
// receiving the opposite one. The fee is subtracted from the input before
// applying the invariant, so that the product of the reserves never decreases
// across the trade.
func (c *ConstantProduct) SwapOutput(p Pair, amountIn uint64) (*SwapResult, error) {
	reserveIn, reserveOut := c.reserves(p)
	if reserveIn == 0 || reserveOut == 0 {
		return nil, ErrBalanceTooLow
	}
	if amountIn == 0 {
		return nil, ErrAmountTooLow
	}

	effectiveIn, fee := mathutil.LessFee(amountIn, c.FeeBps)
	if effectiveIn == 0 {
		return nil, ErrAmountTooLow
	}

	newReserveIn, err := mathutil.Add(reserveIn, effectiveIn)
	if err != nil {
		return nil, err
	}
	// k / (reserveIn + effectiveIn), floored: the truncated part stays in
	// the outgoing reserve and keeps the invariant non-decreasing.
	keptOut, err := mathutil.MulDiv(reserveIn, reserveOut, newReserveIn)
	if err != nil {
		return nil, err
	}
	amountOut := reserveOut - keptOut
	if amountOut == 0 {
		return nil, ErrAmountTooLow
	}
	if amountOut >= reserveOut {
		return nil, ErrAmountTooBig
	}

	return &SwapResult{
		Deposit:  amountIn,
		Withdraw: amountOut,
		Fee:      fee,
	}, nil
}

// SwapInput prices a trade the other way around: it returns the gross input
// required to receive amountOut of the opposite asset of the given pair. It
// is the preview dual of SwapOutput and is never used to move funds.
func (c *ConstantProduct) SwapInput(p Pair, amountOut uint64) (*SwapResult, error) {
	reserveIn, reserveOut := c.reserves(p)
	if reserveIn == 0 || reserveOut == 0 {
		return nil, ErrBalanceTooLow
	}
	if amountOut == 0 {
		return nil, ErrAmountTooLow
	}
	if amountOut >= reserveOut {
		return nil, ErrAmountTooBig
	}

	effectiveIn, err := mathutil.MulDivCeil(reserveIn, amountOut, reserveOut-amountOut)
	if err != nil {
		return nil, err
	}
	amountIn, fee, err := mathutil.PlusFee(effectiveIn, c.FeeBps)
	if err != nil {
		return nil, err
	}
	if amountIn == 0 {
		return nil, ErrAmountTooLow
	}

	return &SwapResult{
		Deposit:  amountIn,
		Withdraw: amountOut,
		Fee:      fee,
	}, nil
}

// DepositAmountsFromClaim returns the reserve amounts required to issue the
// given quantity of claim tokens while preserving the reserve/supply ratios.
// Both requirements are rounded up.
func (c *ConstantProduct) DepositAmountsFromClaim(claimAmount uint64) (*DepositAmounts, error) {
	if claimAmount == 0 {
		return nil, ErrAmountTooLow
	}
	if c.Supply == 0 {
		return nil, ErrSupplyTooLow
	}
	if c.ReserveX == 0 || c.ReserveY == 0 {
		return nil, ErrBalanceTooLow
	}

	x, err := mathutil.MulDivCeil(claimAmount, c.ReserveX, c.Supply)
	if err != nil {
		return nil, err
	}
	y, err := mathutil.MulDivCeil(claimAmount, c.ReserveY, c.Supply)
	if err != nil {
		return nil, err
	}

	return &DepositAmounts{X: x, Y: y}, nil
}

// SpotPrice returns how much one unit of the pair's asset is valued in the
// opposite one, without fees. The result is scaled by the snapshot precision
// and only meant for reporting, nothing in the accounting path consumes it.
func (c *ConstantProduct) SpotPrice(p Pair) (decimal.Decimal, error) {
	reserveIn, reserveOut := c.reserves(p)
	if reserveIn == 0 || reserveOut == 0 {
		return decimal.Zero, ErrBalanceTooLow
	}

	price := newDecimalFromUint(reserveOut).
		DivRound(newDecimalFromUint(reserveIn), int32(c.Precision))
	return price, nil
}

func (c *ConstantProduct) reserves(p Pair) (reserveIn, reserveOut uint64) {
	if p == PairX {
		return c.ReserveX, c.ReserveY
	}
	return c.ReserveY, c.ReserveX
}

func newDecimalFromUint(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
