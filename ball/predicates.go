package ball

import (
	"math/big"

	"github.com/arbpoly/arbpoly/utils/bignum"
)

// Contains returns true if every element of y belongs to x.
// The comparison is exact.
func (x *Ball) Contains(y *Ball) bool {

	if !x.IsFinite() {
		return true
	}

	if !y.IsFinite() {
		return false
	}

	// |xm - ym| + yr <= xr
	d := distance(x.m(), y.m())
	d.Add(d, bignum.ToRat(y.r()))

	return d.Cmp(bignum.ToRat(x.r())) <= 0
}

// ContainsRat returns true if q belongs to x.
// The comparison is exact.
func (x *Ball) ContainsRat(q *big.Rat) bool {

	if !x.IsFinite() {
		return true
	}

	d := new(big.Rat).Sub(bignum.ToRat(x.m()), q)
	d.Abs(d)

	return d.Cmp(bignum.ToRat(x.r())) <= 0
}

// ContainsInt returns true if v belongs to x.
func (x *Ball) ContainsInt(v int64) bool {
	return x.ContainsRat(new(big.Rat).SetInt64(v))
}

// Overlaps returns true if x and y have a nonempty intersection.
// The comparison is exact.
func (x *Ball) Overlaps(y *Ball) bool {

	if !x.IsFinite() || !y.IsFinite() {
		return true
	}

	// |xm - ym| <= xr + yr
	r := new(big.Rat).Add(bignum.ToRat(x.r()), bignum.ToRat(y.r()))

	return distance(x.m(), y.m()).Cmp(r) <= 0
}

// Equal returns true if x and y have identical midpoints and radii.
// This is not mathematical equality: two distinct balls may represent
// the same real number.
func (x *Ball) Equal(y *Ball) bool {
	return x.m().Cmp(y.m()) == 0 && x.r().Cmp(y.r()) == 0
}

// distance returns |a - b|.
func distance(a, b *big.Float) *big.Rat {
	d := new(big.Rat).Sub(bignum.ToRat(a), bignum.ToRat(b))
	return d.Abs(d)
}
