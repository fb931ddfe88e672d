// Package poly implements polynomials and truncated power series with ball
// coefficients: arithmetic, subproduct trees, multipoint evaluation,
// interpolation, composition and Newton iterations on power series.
//
// Every operation takes an explicit working precision in bits and returns
// coefficients that enclose the exact result. The receiver of a method is its
// destination and may alias any of the operands.
package poly

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils"
)

// Poly is a polynomial with ball coefficients, stored from the constant
// term upward. The top coefficient is never the exact zero and the zero
// polynomial has length 0.
//
// A Poly is not safe for concurrent mutation.
type Poly struct {
	coeffs []ball.Ball
}

// NewPoly allocates a new zero polynomial able to hold capacity coefficients.
func NewPoly(capacity int) *Poly {
	if capacity < 0 {
		panic(fmt.Errorf("cannot NewPoly: capacity cannot be negative"))
	}
	return &Poly{coeffs: make([]ball.Ball, 0, capacity)}
}

// NewPolyFromBalls returns the polynomial with coefficients c.
// The slice is copied.
func NewPolyFromBalls(c []ball.Ball) *Poly {
	p := &Poly{coeffs: make([]ball.Ball, len(c))}
	copy(p.coeffs, c)
	p.normalize()
	return p
}

// NewPolyFromInt64s returns the polynomial with exact coefficients c.
func NewPolyFromInt64s(c ...int64) *Poly {
	p := &Poly{coeffs: make([]ball.Ball, len(c))}
	for i := range c {
		p.coeffs[i] = ball.NewInt(c[i])
	}
	p.normalize()
	return p
}

// NewPolyFromRats returns the polynomial whose coefficients enclose qs
// with midpoints rounded to prec bits.
func NewPolyFromRats(qs []*big.Rat, prec uint) *Poly {
	p := &Poly{coeffs: make([]ball.Ball, len(qs))}
	for i := range qs {
		p.coeffs[i] = ball.NewRat(qs[i], prec)
	}
	p.normalize()
	return p
}

// Len returns the number of coefficients of p.
func (p *Poly) Len() int {
	return len(p.coeffs)
}

// Degree returns the degree of p, -1 for the zero polynomial.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of degree i of p.
// Coefficients beyond the length of p are the exact zero.
func (p *Poly) Coeff(i int) ball.Ball {
	if i < 0 {
		panic(fmt.Errorf("cannot Coeff: index cannot be negative"))
	}
	if i >= len(p.coeffs) {
		return ball.Zero()
	}
	return p.coeffs[i]
}

// SetCoeff sets the coefficient of degree i of p to c.
// The polynomial grows if i is beyond its length.
func (p *Poly) SetCoeff(i int, c *ball.Ball) {

	if i < 0 {
		panic(fmt.Errorf("cannot SetCoeff: index cannot be negative"))
	}

	if i >= len(p.coeffs) {
		if c.IsZero() {
			return
		}
		p.setLength(i + 1)
	}

	p.coeffs[i].Set(c)
	p.normalize()
}

// Coeffs returns a copy of the coefficients of p.
func (p *Poly) Coeffs() []ball.Ball {
	c := make([]ball.Ball, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Zero sets p to the zero polynomial and returns p.
func (p *Poly) Zero() *Poly {
	p.setLength(0)
	return p
}

// One sets p to the constant polynomial 1 and returns p.
func (p *Poly) One() *Poly {
	p.setLength(1)
	p.coeffs[0] = ball.One()
	return p
}

// Set sets p to q and returns p.
func (p *Poly) Set(q *Poly) *Poly {
	if p != q {
		p.setLength(len(q.coeffs))
		copy(p.coeffs, q.coeffs)
	}
	return p
}

// SetRound sets p to q with every coefficient rounded to prec bits and returns p.
func (p *Poly) SetRound(q *Poly, prec uint) *Poly {
	qc := q.coeffs
	n := len(qc)
	p.fitLength(n)
	c := p.coeffs[:n]
	for i := range c {
		c[i].SetRound(&qc[i], prec)
	}
	p.setCoeffs(c)
	return p
}

// Swap exchanges the coefficients of p and q.
func (p *Poly) Swap(q *Poly) {
	p.coeffs, q.coeffs = q.coeffs, p.coeffs
}

// CopyNew returns a deep copy of p.
func (p *Poly) CopyNew() *Poly {
	return NewPolyFromBalls(p.coeffs)
}

// Truncate sets p to p mod x^n and returns p.
func (p *Poly) Truncate(n int) *Poly {

	if n < 0 {
		panic(fmt.Errorf("cannot Truncate: n cannot be negative"))
	}

	if n < len(p.coeffs) {
		p.setLength(n)
		p.normalize()
	}

	return p
}

// String returns a debug representation of p.
func (p *Poly) String() string {
	parts := make([]string, len(p.coeffs))
	for i := range p.coeffs {
		parts[i] = p.coeffs[i].String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// fitLength ensures p can hold n coefficients without reallocation.
// The length and the coefficients of p are preserved.
func (p *Poly) fitLength(n int) {
	if cap(p.coeffs) < n {
		c := make([]ball.Ball, len(p.coeffs), utils.Max(n, 2*cap(p.coeffs)))
		copy(c, p.coeffs)
		p.coeffs = c
	}
}

// setLength sets the length of p to n. Coefficients added or dropped
// are set to the exact zero. The result is not normalized.
func (p *Poly) setLength(n int) {

	old := len(p.coeffs)

	p.fitLength(n)

	if n > old {
		p.coeffs = p.coeffs[:n]
		clear(p.coeffs[old:])
	} else {
		clear(p.coeffs[n:old])
		p.coeffs = p.coeffs[:n]
	}
}

// normalize shrinks p while its top coefficient is the exact zero.
func (p *Poly) normalize() {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].IsZero() {
		n--
	}
	p.setLength(n)
}

// setCoeffs installs c as the coefficients of p and normalizes p.
// c is either a fresh slice or a reslice of p.coeffs.
func (p *Poly) setCoeffs(c []ball.Ball) {
	if utils.Alias1D(c, p.coeffs) && len(c) < len(p.coeffs) {
		clear(p.coeffs[len(c):])
	}
	p.coeffs = c
	p.normalize()
}
