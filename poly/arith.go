package poly

import (
	"fmt"
	"math/bits"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils"
)

// Add sets r to p + q and returns r.
func (r *Poly) Add(p, q *Poly, prec uint) *Poly {

	pc, qc := p.coeffs, q.coeffs

	if len(pc) < len(qc) {
		pc, qc = qc, pc
	}

	n := len(pc)
	r.fitLength(n)
	c := r.coeffs[:n]

	for i := range qc {
		c[i].Add(&pc[i], &qc[i], prec)
	}

	for i := len(qc); i < n; i++ {
		c[i].SetRound(&pc[i], prec)
	}

	r.setCoeffs(c)
	return r
}

// Sub sets r to p - q and returns r.
func (r *Poly) Sub(p, q *Poly, prec uint) *Poly {

	pc, qc := p.coeffs, q.coeffs

	n := utils.Max(len(pc), len(qc))
	r.fitLength(n)
	c := r.coeffs[:n]

	for i := range c {
		switch {
		case i < len(pc) && i < len(qc):
			c[i].Sub(&pc[i], &qc[i], prec)
		case i < len(pc):
			c[i].SetRound(&pc[i], prec)
		default:
			c[i].Neg(&qc[i])
			c[i].SetRound(&c[i], prec)
		}
	}

	r.setCoeffs(c)
	return r
}

// Neg sets r to -p and returns r.
func (r *Poly) Neg(p *Poly) *Poly {
	pc := p.coeffs
	n := len(pc)
	r.fitLength(n)
	c := r.coeffs[:n]
	for i := range c {
		c[i].Neg(&pc[i])
	}
	r.setCoeffs(c)
	return r
}

// ScalarMul sets r to x * p and returns r.
func (r *Poly) ScalarMul(p *Poly, x *ball.Ball, prec uint) *Poly {
	xc := *x
	pc := p.coeffs
	n := len(pc)
	r.fitLength(n)
	c := r.coeffs[:n]
	for i := range c {
		c[i].Mul(&pc[i], &xc, prec)
	}
	r.setCoeffs(c)
	return r
}

// ScalarDiv sets r to p / x and returns r.
func (r *Poly) ScalarDiv(p *Poly, x *ball.Ball, prec uint) *Poly {
	xc := *x
	pc := p.coeffs
	n := len(pc)
	r.fitLength(n)
	c := r.coeffs[:n]
	for i := range c {
		c[i].Div(&pc[i], &xc, prec)
	}
	r.setCoeffs(c)
	return r
}

// ScalarMulTwoExp sets r to p * 2^e and returns r. The operation is exact.
func (r *Poly) ScalarMulTwoExp(p *Poly, e int) *Poly {
	pc := p.coeffs
	n := len(pc)
	r.fitLength(n)
	c := r.coeffs[:n]
	for i := range c {
		c[i].MulTwoExp(&pc[i], e)
	}
	r.setCoeffs(c)
	return r
}

// ShiftLeft sets r to p * x^n and returns r.
func (r *Poly) ShiftLeft(p *Poly, n int) *Poly {

	if n < 0 {
		panic(fmt.Errorf("cannot ShiftLeft: n cannot be negative"))
	}

	pc := p.coeffs
	lp := len(pc)

	if lp == 0 {
		return r.Zero()
	}

	if n == 0 {
		return r.Set(p)
	}

	r.fitLength(lp + n)
	c := r.coeffs[:lp+n]

	// high to low, p may share its buffer with r
	for i := lp - 1; i >= 0; i-- {
		c[i+n] = pc[i]
	}

	clear(c[:n])

	r.setCoeffs(c)
	return r
}

// ShiftRight sets r to p / x^n, dropping the n lowest coefficients, and returns r.
// If n is not smaller than the length of p, r is set to zero.
func (r *Poly) ShiftRight(p *Poly, n int) *Poly {

	if n < 0 {
		panic(fmt.Errorf("cannot ShiftRight: n cannot be negative"))
	}

	pc := p.coeffs
	lp := len(pc)

	if n >= lp {
		return r.Zero()
	}

	if n == 0 {
		return r.Set(p)
	}

	m := lp - n

	r.fitLength(m)
	c := r.coeffs[:m]

	// low to high, p may share its buffer with r
	for i := range c {
		c[i] = pc[i+n]
	}

	r.setCoeffs(c)
	return r
}

// Mul sets r to p * q and returns r.
func (r *Poly) Mul(p, q *Poly, prec uint) *Poly {
	r.setCoeffs(vecMul(p.coeffs, q.coeffs, prec))
	return r
}

// MulLow sets r to p * q mod x^n and returns r.
func (r *Poly) MulLow(p, q *Poly, n int, prec uint) *Poly {

	if n < 0 {
		panic(fmt.Errorf("cannot MulLow: n cannot be negative"))
	}

	lp, lq := p.Len(), q.Len()

	if lp == 0 || lq == 0 || n == 0 {
		return r.Zero()
	}

	n = utils.Min(n, lp+lq-1)

	r.setCoeffs(vecMulLow(p.coeffs, q.coeffs, n, prec))
	return r
}

// PowUint sets r to p^e and returns r. p^0 is 1.
func (r *Poly) PowUint(p *Poly, e uint, prec uint) *Poly {

	if e == 0 {
		return r.One()
	}

	if p.Len() == 0 {
		return r.Zero()
	}

	return r.PowTrunc(p, e, int(e)*(p.Len()-1)+1, prec)
}

// PowTrunc sets r to p^e mod x^n and returns r.
func (r *Poly) PowTrunc(p *Poly, e uint, n int, prec uint) *Poly {

	if n < 0 {
		panic(fmt.Errorf("cannot PowTrunc: n cannot be negative"))
	}

	if n == 0 {
		return r.Zero()
	}

	if e == 0 {
		return r.One()
	}

	if p.Len() == 0 {
		return r.Zero()
	}

	base := p.coeffs
	if len(base) > n {
		base = base[:n]
	}

	// left-to-right binary exponentiation
	var acc []ball.Ball
	for i := bits.Len(e) - 1; i >= 0; i-- {
		if acc == nil {
			acc = base
		} else {
			acc = vecMulLow(acc, acc, utils.Min(n, 2*len(acc)-1), prec)
			if e>>uint(i)&1 == 1 {
				acc = vecMulLow(acc, base, utils.Min(n, len(acc)+len(base)-1), prec)
			}
		}
	}

	// e == 1 leaves acc sharing the buffer of p
	if &acc[0] == &base[0] {
		acc = append([]ball.Ball(nil), acc...)
	}

	r.setCoeffs(acc)
	return r
}
