package poly

import (
	"errors"
	"fmt"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils"
)

// ErrComposeSeriesConstant is returned by ComposeSeries when the constant
// term of the inner series is not the exact zero.
var ErrComposeSeriesConstant = errors.New("inner series must have an exactly zero constant term")

// ComposeHorner sets r to p(q(x)) computed with Horner's scheme and returns r.
func (r *Poly) ComposeHorner(p, q *Poly, prec uint) *Poly {

	if done := r.composeDegenerate(p, q, prec); done {
		return r
	}

	r.setCoeffs(composeHorner(p.coeffs, q.coeffs, prec))
	return r
}

// ComposeDivConquer sets r to p(q(x)) and returns r.
//
// The coefficients of p are paired into h_i = p_{2i} + p_{2i+1} q, then
// pairs of partial results are repeatedly merged as h_i = h_{2i} + q^(2^k) h_{2i+1},
// the power q^(2^k) being squared after each round.
// The result has length (len(p)-1)(len(q)-1)+1 when both are nonconstant.
func (r *Poly) ComposeDivConquer(p, q *Poly, prec uint) *Poly {

	if done := r.composeDegenerate(p, q, prec); done {
		return r
	}

	if p.Len() == 2 {
		r.setCoeffs(composeHorner(p.coeffs, q.coeffs, prec))
		return r
	}

	r.setCoeffs(composeDivConquer(p.coeffs, q.coeffs, prec))
	return r
}

// composeDegenerate handles constant p and q and returns true if it did.
func (r *Poly) composeDegenerate(p, q *Poly, prec uint) bool {

	len1, len2 := p.Len(), q.Len()

	switch {
	case len1 == 0:
		r.Zero()
	case len1 == 1 || len2 == 0:
		c := p.Coeff(0)
		r.setLength(1)
		r.coeffs[0].SetRound(&c, prec)
		r.normalize()
	case len2 == 1:
		c := vecHorner(p.coeffs, &q.coeffs[0], prec)
		r.setLength(1)
		r.coeffs[0] = c
		r.normalize()
	default:
		return false
	}

	return true
}

func composeHorner(p, q []ball.Ball, prec uint) (res []ball.Ball) {

	res = []ball.Ball{p[len(p)-1]}

	for i := len(p) - 2; i >= 0; i-- {
		res = vecMul(res, q, prec)
		res[0].Add(&res[0], &p[i], prec)
	}

	return
}

func composeDivConquer(p, q []ball.Ball, prec uint) []ball.Ball {

	len1 := len(p)
	hlen := (len1 + 1) / 2

	h := make([][]ball.Ball, hlen)

	// h_i = p_{2i} + p_{2i+1} q
	for i := 0; i < len1/2; i++ {

		if p[2*i+1].IsZero() {
			h[i] = vecNormalize([]ball.Ball{p[2*i]})
			continue
		}

		hi := make([]ball.Ball, len(q))
		for j := range q {
			hi[j].Mul(&q[j], &p[2*i+1], prec)
		}
		hi[0].Add(&hi[0], &p[2*i], prec)
		h[i] = hi
	}

	if len1&1 == 1 {
		h[hlen-1] = vecNormalize([]ball.Ball{p[len1-1]})
	}

	pow := vecMul(q, q, prec)

	for n := hlen; n > 2; n = (n + 1) / 2 {

		for i := 0; i < n/2; i++ {
			h[i] = vecAdd(h[2*i], vecMul(pow, h[2*i+1], prec), prec)
		}

		if n&1 == 1 {
			h[n/2] = h[n-1]
		}

		pow = vecMul(pow, pow, prec)
	}

	return vecAdd(h[0], vecMul(pow, h[1], prec), prec)
}

// ComposeSeries sets r to p(q(x)) mod x^n and returns r.
// The constant term of q must be the exact zero.
func (r *Poly) ComposeSeries(p, q *Poly, n int, prec uint) (*Poly, error) {

	if n < 0 {
		panic(fmt.Errorf("cannot ComposeSeries: n cannot be negative"))
	}

	if q.Len() != 0 && !q.coeffs[0].IsZero() {
		return r, fmt.Errorf("cannot ComposeSeries: %w", ErrComposeSeriesConstant)
	}

	if n == 0 || p.Len() == 0 {
		return r.Zero(), nil
	}

	pc, qc := p.coeffs, q.coeffs
	if len(qc) > n {
		qc = qc[:n]
	}

	if len(qc) == 0 {
		c := pc[0]
		r.setLength(1)
		r.coeffs[0].SetRound(&c, prec)
		r.normalize()
		return r, nil
	}

	res := []ball.Ball{pc[len(pc)-1]}

	for i := len(pc) - 2; i >= 0; i-- {
		res = vecMulLow(res, qc, utils.Min(n, len(res)+len(qc)-1), prec)
		res[0].Add(&res[0], &pc[i], prec)
	}

	r.setCoeffs(res)
	return r, nil
}
