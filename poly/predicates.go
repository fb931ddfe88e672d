package poly

import (
	"math/big"

	"github.com/arbpoly/arbpoly/utils"
)

// Equal returns true if p and q have the same length and identical
// coefficients (see ball.Ball.Equal).
func (p *Poly) Equal(q *Poly) bool {

	if len(p.coeffs) != len(q.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if !p.coeffs[i].Equal(&q.coeffs[i]) {
			return false
		}
	}

	return true
}

// Contains returns true if every coefficient of p contains the
// corresponding coefficient of q. Missing coefficients are exact zeros.
func (p *Poly) Contains(q *Poly) bool {

	for i := 0; i < utils.Max(p.Len(), q.Len()); i++ {
		pi, qi := p.Coeff(i), q.Coeff(i)
		if !pi.Contains(&qi) {
			return false
		}
	}

	return true
}

// ContainsRats returns true if the coefficients of p contain the rational
// coefficients qs. Missing coefficients are exact zeros.
func (p *Poly) ContainsRats(qs []*big.Rat) bool {

	zero := new(big.Rat)

	for i := 0; i < utils.Max(p.Len(), len(qs)); i++ {

		q := zero
		if i < len(qs) {
			q = qs[i]
		}

		pi := p.Coeff(i)
		if !pi.ContainsRat(q) {
			return false
		}
	}

	return true
}

// Overlaps returns true if every coefficient of p overlaps the
// corresponding coefficient of q. The coefficients of the longer
// polynomial beyond the length of the shorter one must contain zero.
func (p *Poly) Overlaps(q *Poly) bool {

	for i := 0; i < utils.Max(p.Len(), q.Len()); i++ {
		pi, qi := p.Coeff(i), q.Coeff(i)
		if !pi.Overlaps(&qi) {
			return false
		}
	}

	return true
}
