// Package bignum implements arbitrary precision helpers on top of math/big.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.SetRat(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float but is %T", x))
	}

	return
}

// Log returns ln(x) computed with prec bits of precision.
// x must be strictly positive.
func Log(x *big.Float, prec uint) (ln *big.Float) {
	return bigfloat.Log(new(big.Float).SetPrec(prec).Set(x))
}

// Exp returns exp(x) computed with prec bits of precision.
func Exp(x *big.Float, prec uint) (exp *big.Float) {
	return bigfloat.Exp(new(big.Float).SetPrec(prec).Set(x))
}

// Sqrt returns the square root of x computed with prec bits of precision.
func Sqrt(x *big.Float, prec uint) (sqrt *big.Float) {
	return new(big.Float).SetPrec(prec).Sqrt(x)
}

// ULP returns 2^(e-prec) where e is the binary exponent of x,
// such that |x| < 2^e. It returns zero if x is zero.
// The result bounds the distance between x and its two
// neighbours at prec bits of precision.
func ULP(x *big.Float, prec uint) (ulp *big.Float) {
	ulp = new(big.Float)
	if x.Sign() == 0 || x.IsInf() {
		return
	}
	return ulp.SetMantExp(big.NewFloat(1), x.MantExp(nil)-int(prec))
}

// ToRat returns the exact rational value of a finite x.
func ToRat(x *big.Float) (r *big.Rat) {
	if x.IsInf() {
		panic(fmt.Errorf("cannot ToRat: x is infinite"))
	}
	r, _ = x.Rat(nil)
	return
}
