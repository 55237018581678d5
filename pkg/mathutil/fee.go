package mathutil

// TenThousands ...
const TenThousands = uint64(10000)

// LessFee calculates an amount with a fee subtracted, given an amount and a
// fee expressed in basis point (ie. 0.25% = 25). The division is a floor
// division, the fee is always rounded in favour of the collector.
func LessFee(amount uint64, feeAsBasisPoint uint16) (withFee, calculatedFee uint64) {
	keptBasisPoint := TenThousands - uint64(feeAsBasisPoint)
	if amount > 1<<49 {
		// amount * 10000 would overflow 64 bits, widen through big.Int.
		// The quotient always fits back since keptBasisPoint <= 10000.
		withFee, _ = MulDiv(amount, keptBasisPoint, TenThousands)
	} else {
		withFee = amount * keptBasisPoint / TenThousands
	}
	calculatedFee = amount - withFee
	return
}

// PlusFee calculates an amount with a fee added, given an amount and a fee
// expressed in basis point. It is the dual of LessFee and is used to size the
// input of a trade when the desired output is known.
func PlusFee(amount uint64, feeAsBasisPoint uint16) (withFee, calculatedFee uint64, err error) {
	if feeAsBasisPoint >= uint16(TenThousands) {
		return 0, 0, ErrDivisionByZero
	}
	withFee, err = MulDivCeil(amount, TenThousands, TenThousands-uint64(feeAsBasisPoint))
	if err != nil {
		return 0, 0, err
	}
	calculatedFee = withFee - amount
	return
}
