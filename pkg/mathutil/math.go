package mathutil

import (
	"errors"
	"math/big"
)

var (
	// ErrOverflow is thrown when a result does not fit into an uint64
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrDivisionByZero is thrown when the divisor of a quotient is zero
	ErrDivisionByZero = errors.New("division by zero")
)

var one = big.NewInt(1)

// MulDiv returns floor(x * y / z). The product is computed on big
// integers so that it never wraps around before the division narrows
// it back to an uint64.
func MulDiv(x, y, z uint64) (uint64, error) {
	if z == 0 {
		return 0, ErrDivisionByZero
	}

	X, Y := new(big.Int).SetUint64(x), new(big.Int).SetUint64(y)
	Z := new(big.Int).SetUint64(z)

	q := new(big.Int).Mul(X, Y)
	q.Div(q, Z)
	if !q.IsUint64() {
		return 0, ErrOverflow
	}
	return q.Uint64(), nil
}

// MulDivCeil returns ceil(x * y / z) with the same widening as MulDiv.
func MulDivCeil(x, y, z uint64) (uint64, error) {
	if z == 0 {
		return 0, ErrDivisionByZero
	}

	X, Y := new(big.Int).SetUint64(x), new(big.Int).SetUint64(y)
	Z := new(big.Int).SetUint64(z)

	q := new(big.Int).Mul(X, Y)
	q.Add(q, new(big.Int).Sub(Z, one))
	q.Div(q, Z)
	if !q.IsUint64() {
		return 0, ErrOverflow
	}
	return q.Uint64(), nil
}

// Add returns x + y or ErrOverflow if the sum wraps around.
func Add(x, y uint64) (uint64, error) {
	z := x + y
	if z < x {
		return 0, ErrOverflow
	}
	return z, nil
}

// Sub returns x - y or ErrOverflow if y is greater than x.
func Sub(x, y uint64) (uint64, error) {
	if y > x {
		return 0, ErrOverflow
	}
	return x - y, nil
}
