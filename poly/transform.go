package poly

import (
	"math/big"

	"github.com/arbpoly/arbpoly/ball"
)

// Derivative sets r to the derivative of p and returns r.
func (r *Poly) Derivative(p *Poly, prec uint) *Poly {

	pc := p.coeffs

	if len(pc) <= 1 {
		return r.Zero()
	}

	n := len(pc) - 1
	r.fitLength(n)
	c := r.coeffs[:n]

	// low to high, p may share its buffer with r
	for i := range c {
		c[i].MulInt(&pc[i+1], int64(i+1), prec)
	}

	r.setCoeffs(c)
	return r
}

// Integral sets r to the antiderivative of p with constant term zero and returns r.
func (r *Poly) Integral(p *Poly, prec uint) *Poly {

	pc := p.coeffs

	if len(pc) == 0 {
		return r.Zero()
	}

	n := len(pc) + 1
	r.fitLength(n)
	c := r.coeffs[:n]

	// high to low, p may share its buffer with r
	for i := n - 1; i >= 1; i-- {
		c[i].DivInt(&pc[i-1], int64(i), prec)
	}

	c[0] = ball.Zero()

	r.setCoeffs(c)
	return r
}

// BorelTransform sets r to the polynomial with coefficients p_k / k! and returns r.
func (r *Poly) BorelTransform(p *Poly, prec uint) *Poly {
	return r.factorialScale(p, prec, true)
}

// InvBorelTransform sets r to the polynomial with coefficients p_k * k! and returns r.
func (r *Poly) InvBorelTransform(p *Poly, prec uint) *Poly {
	return r.factorialScale(p, prec, false)
}

func (r *Poly) factorialScale(p *Poly, prec uint, divide bool) *Poly {

	pc := p.coeffs
	n := len(pc)
	r.fitLength(n)
	c := r.coeffs[:n]

	fact := big.NewInt(1)

	for i := range c {

		if i > 1 {
			fact.Mul(fact, big.NewInt(int64(i)))
		}

		f := ball.NewBigInt(fact)

		if divide {
			c[i].Div(&pc[i], &f, prec)
		} else {
			c[i].Mul(&pc[i], &f, prec)
		}
	}

	r.setCoeffs(c)
	return r
}
