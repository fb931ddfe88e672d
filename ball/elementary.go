package ball

import (
	"math"
	"math/big"

	"github.com/arbpoly/arbpoly/utils"
	"github.com/arbpoly/arbpoly/utils/bignum"
)

// big.Float.Sqrt does not report its accuracy, lower bounds on square
// roots are scaled down by this factor.
var sqrtSafety = big.NewFloat(1 - 0x1p-50)

// Sqrt sets z to the square root of x and returns z.
// If x is not strictly positive (or the exact zero), z is set to the
// indeterminate ball.
func (z *Ball) Sqrt(x *Ball, prec uint) *Ball {

	if x.IsZero() {
		z.mid, z.rad = nil, nil
		return z
	}

	if !x.IsPositive() {
		return z.setIndeterminate()
	}

	m := newMid(prec).Set(bignum.Sqrt(x.m(), prec+GuardBits))
	r := bignum.ULP(m, prec)

	// |sqrt(x) - sqrt(xm)| <= xr / sqrt(xm - xr)
	if x.r().Sign() != 0 {
		r = radAdd(r, newRad().Quo(x.r(), sqrtLower(lower(x))))
	}

	z.mid, z.rad = m, r
	return z
}

// Rsqrt sets z to the reciprocal square root of x and returns z.
// If x is not strictly positive, z is set to the indeterminate ball.
func (z *Ball) Rsqrt(x *Ball, prec uint) *Ball {

	if !x.IsPositive() {
		return z.setIndeterminate()
	}

	wp := prec + GuardBits
	s := bignum.Sqrt(x.m(), wp)
	m := newMid(prec).Set(newMid(wp).Quo(fone, s))
	r := bignum.ULP(m, prec)

	// |x^-1/2 - xm^-1/2| <= xr / (2 * l * sqrt(l)) with l = xm - xr
	if x.r().Sign() != 0 {
		l := lower(x)
		den := newLower().Mul(l, sqrtLower(l))
		den.SetMantExp(den, 1)
		r = radAdd(r, newRad().Quo(x.r(), den))
	}

	z.mid, z.rad = m, r
	return z
}

// Exp sets z to exp(x) and returns z.
func (z *Ball) Exp(x *Ball, prec uint) *Ball {

	if !x.IsFinite() {
		return z.setIndeterminate()
	}

	if x.IsZero() {
		z.mid, z.rad = fone, nil
		return z
	}

	// argument magnitude is lost to cancellation in the reduction
	guard := GuardBits + uint(utils.Max(x.m().MantExp(nil), 0))

	m := newMid(prec).Set(bignum.Exp(x.m(), prec+guard))
	r := bignum.ULP(m, prec)

	// |exp(xm+e) - exp(xm)| <= exp(xm) * (exp(xr) - 1)
	if x.r().Sign() != 0 {
		upper := radAdd(radAbs(m), r)
		r = radAdd(r, radMul(upper, expm1Upper(x.r())))
	}

	z.mid, z.rad = m, r
	return z
}

// Log sets z to the natural logarithm of x and returns z.
// If x is not strictly positive, z is set to the indeterminate ball.
func (z *Ball) Log(x *Ball, prec uint) *Ball {

	if !x.IsPositive() {
		return z.setIndeterminate()
	}

	if x.IsOne() {
		z.mid, z.rad = nil, nil
		return z
	}

	m := newMid(prec).Set(bignum.Log(x.m(), prec+GuardBits))

	// the error of the logarithm is absolute near 1
	r := radAdd(bignum.ULP(m, prec), new(big.Float).SetMantExp(fone, -int(prec)))

	// |log(x) - log(xm)| <= xr / (xm - xr)
	if x.r().Sign() != 0 {
		r = radAdd(r, newRad().Quo(x.r(), lower(x)))
	}

	z.mid, z.rad = m, r
	return z
}

// lower returns a lower bound of xm - xr.
func lower(x *Ball) *big.Float {
	return newLower().Sub(x.m(), x.r())
}

// sqrtLower returns a lower bound of sqrt(l) for l > 0.
func sqrtLower(l *big.Float) *big.Float {
	s := newLower().Sqrt(l)
	return newLower().Mul(s, sqrtSafety)
}

// expm1Upper returns an upper bound of exp(r) - 1 for r >= 0.
func expm1Upper(r *big.Float) *big.Float {

	// exp(r) - 1 <= r + r^2 for r <= 1
	if r.Cmp(fone) <= 0 {
		return radAdd(r, radMul(r, r))
	}

	f, _ := r.Float64()
	f = math.Nextafter(f, math.Inf(1))
	v := math.Expm1(f) * (1 + 0x1p-40)

	if math.IsInf(v, 1) || math.IsNaN(v) {
		return posInf
	}

	return newRad().SetFloat64(v)
}
