// Package ball implements arbitrary precision ball arithmetic.
//
// A Ball is a midpoint together with a nonnegative radius and represents the
// closed interval [mid-rad, mid+rad]. Every operation returns a ball that
// contains the exact result of the operation applied to any values of the
// operands: the midpoint is rounded to nearest at the working precision and
// the rounding error is added to the radius, which is itself computed with
// upward rounding on RadPrec bits.
//
// Balls are values: operations never modify a big.Float in place, they install
// fresh ones in the receiver. Copying a Ball is therefore always safe and the
// receiver of every operation may alias any of its operands.
package ball

import (
	"fmt"
	"math"
	"math/big"

	"github.com/arbpoly/arbpoly/utils"
	"github.com/arbpoly/arbpoly/utils/bignum"
)

// RadPrec is the precision in bits of the radii.
const RadPrec = 30

const lowerPrec = 64

// GuardBits is the number of extra bits used to evaluate transcendental midpoints.
const GuardBits = 32

var (
	fzero  = new(big.Float)
	fone   = big.NewFloat(1)
	posInf = new(big.Float).SetInf(false)
)

// Ball is a midpoint-radius enclosure of a real number.
// The zero value is the exact zero.
type Ball struct {
	mid *big.Float
	rad *big.Float
}

// NewInt returns the exact ball v.
func NewInt(v int64) Ball {
	return Ball{mid: new(big.Float).SetInt64(v)}
}

// NewUint returns the exact ball v.
func NewUint(v uint64) Ball {
	return Ball{mid: new(big.Float).SetUint64(v)}
}

// NewBigInt returns the exact ball v.
func NewBigInt(v *big.Int) Ball {
	return Ball{mid: new(big.Float).SetInt(v)}
}

// NewFloat64 returns the exact ball v.
// An infinite v returns the indeterminate ball.
func NewFloat64(v float64) Ball {

	if math.IsNaN(v) {
		panic(fmt.Errorf("cannot NewFloat64: v is NaN"))
	}

	if math.IsInf(v, 0) {
		return Indeterminate()
	}

	return Ball{mid: new(big.Float).SetFloat64(v)}
}

// NewFloat returns the exact ball v. The precision of v is preserved.
// An infinite v returns the indeterminate ball.
func NewFloat(v *big.Float) Ball {

	if v.IsInf() {
		return Indeterminate()
	}

	return Ball{mid: new(big.Float).Set(v)}
}

// NewRat returns the ball enclosing q with a midpoint of prec bits.
func NewRat(q *big.Rat, prec uint) Ball {
	m := newMid(prec).SetRat(q)
	return Ball{mid: m, rad: addRoundErr(fzero, m)}
}

// NewWithRadius returns the ball [mid +/- rad].
// The midpoint is copied exactly and the radius is rounded upward.
// It panics if rad is negative.
func NewWithRadius(mid, rad *big.Float) Ball {

	if rad.Sign() < 0 {
		panic(fmt.Errorf("cannot NewWithRadius: rad is negative"))
	}

	if mid.IsInf() || rad.IsInf() {
		return Indeterminate()
	}

	return Ball{mid: new(big.Float).Set(mid), rad: newRad().Set(rad)}
}

// Zero returns the exact ball 0.
func Zero() Ball {
	return Ball{}
}

// One returns the exact ball 1.
func One() Ball {
	return Ball{mid: fone}
}

// Indeterminate returns the ball of infinite radius centered at 0.
func Indeterminate() Ball {
	return Ball{rad: posInf}
}

// Mid returns a copy of the midpoint of x.
func (x *Ball) Mid() *big.Float {
	return new(big.Float).Set(x.m())
}

// Rad returns a copy of the radius of x.
func (x *Ball) Rad() *big.Float {
	return new(big.Float).Set(x.r())
}

// Prec returns the precision of the midpoint of x.
func (x *Ball) Prec() uint {
	return x.m().Prec()
}

// IsZero returns true if x is the exact zero.
func (x *Ball) IsZero() bool {
	return x.m().Sign() == 0 && x.r().Sign() == 0
}

// IsOne returns true if x is the exact one.
func (x *Ball) IsOne() bool {
	return x.r().Sign() == 0 && x.m().Cmp(fone) == 0
}

// IsExact returns true if the radius of x is zero.
func (x *Ball) IsExact() bool {
	return x.r().Sign() == 0
}

// IsFinite returns true if the radius of x is finite.
func (x *Ball) IsFinite() bool {
	return !x.r().IsInf()
}

// ContainsZero returns true if 0 belongs to x.
func (x *Ball) ContainsZero() bool {
	return !x.IsFinite() || new(big.Float).Abs(x.m()).Cmp(x.r()) <= 0
}

// IsPositive returns true if every element of x is strictly positive.
func (x *Ball) IsPositive() bool {
	return x.IsFinite() && x.m().Cmp(x.r()) > 0
}

// IsNegative returns true if every element of x is strictly negative.
func (x *Ball) IsNegative() bool {
	return x.IsFinite() && new(big.Float).Neg(x.m()).Cmp(x.r()) > 0
}

// IsNonZero returns true if 0 does not belong to x.
func (x *Ball) IsNonZero() bool {
	return !x.ContainsZero()
}

// RelAccuracyBits returns an estimate of the number of correct bits of x
// relative to its magnitude. Exact balls return math.MaxInt and balls whose
// radius is infinite or whose midpoint is zero return math.MinInt.
func (x *Ball) RelAccuracyBits() int {

	if x.IsExact() {
		return math.MaxInt
	}

	if !x.IsFinite() || x.m().Sign() == 0 {
		return math.MinInt
	}

	return x.m().MantExp(nil) - x.r().MantExp(nil)
}

// Set sets z to x and returns z.
func (z *Ball) Set(x *Ball) *Ball {
	z.mid, z.rad = x.mid, x.rad
	return z
}

// CopyNew returns a copy of x.
func (x *Ball) CopyNew() *Ball {
	return &Ball{mid: x.mid, rad: x.rad}
}

// String returns a debug representation [mid +/- rad] of x.
func (x *Ball) String() string {

	if !x.IsFinite() {
		return "[+/- inf]"
	}

	digits := int(float64(utils.Max(x.m().Prec(), 53))*math.Log10(2)) + 1

	if x.IsExact() {
		return x.m().Text('g', digits)
	}

	return fmt.Sprintf("[%s +/- %s]", x.m().Text('g', digits), x.r().Text('e', 3))
}

func (x *Ball) m() *big.Float {
	if x.mid == nil {
		return fzero
	}
	return x.mid
}

func (x *Ball) r() *big.Float {
	if x.rad == nil {
		return fzero
	}
	return x.rad
}

func (z *Ball) setIndeterminate() *Ball {
	z.mid, z.rad = nil, posInf
	return z
}

func newMid(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

func newRad() *big.Float {
	return new(big.Float).SetPrec(RadPrec).SetMode(big.ToPositiveInf)
}

// newLower returns a float used to hold lower bounds.
func newLower() *big.Float {
	return new(big.Float).SetPrec(lowerPrec).SetMode(big.ToNegativeInf)
}

func radAdd(a, b *big.Float) *big.Float {
	return newRad().Add(a, b)
}

func radMul(a, b *big.Float) *big.Float {
	return newRad().Mul(a, b)
}

func radAbs(a *big.Float) *big.Float {
	return newRad().Abs(a)
}

// addRoundErr returns r plus the rounding error committed on m.
func addRoundErr(r, m *big.Float) *big.Float {
	if m.Acc() == big.Exact {
		return r
	}
	return radAdd(r, bignum.ULP(m, m.Prec()))
}
