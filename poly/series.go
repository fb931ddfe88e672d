package poly

import (
	"fmt"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils"
)

// newtonSteps returns the increasing sequence of lengths 1 = l_0 < l_1 < ... < l_k = n
// with l_{i} = ceil(l_{i+1}/2) used by Newton iterations on power series.
func newtonSteps(n int) (steps []int) {

	for m := n; ; m = (m + 1) / 2 {
		steps = append(steps, m)
		if m <= 1 {
			break
		}
	}

	utils.ReverseSliceInPlace(steps)

	return
}

// truncated returns the n lowest coefficients of a, or a if it is shorter.
func truncated(a []ball.Ball, n int) []ball.Ball {
	if len(a) > n {
		return a[:n]
	}
	return a
}

func checkSeriesLength(op string, n int) {
	if n < 0 {
		panic(fmt.Errorf("cannot %s: n cannot be negative", op))
	}
}

// InvSeries sets r to the power series inverse of a mod x^n and returns r.
// If the constant term of a contains zero, the coefficients are indeterminate.
func (r *Poly) InvSeries(a *Poly, n int, prec uint) *Poly {

	checkSeriesLength("InvSeries", n)

	if n == 0 {
		return r.Zero()
	}

	r.setCoeffs(invSeries(a.coeffs, n, prec))
	return r
}

// invSeries applies the Newton iteration B_{2k} = B_k (2 - A B_k) mod x^{2k}.
func invSeries(a []ball.Ball, n int, prec uint) (b []ball.Ball) {

	var a0 ball.Ball
	if len(a) > 0 {
		a0 = a[0]
	}

	b = make([]ball.Ball, 1, n)
	b[0].Inv(&a0, prec)

	two := ball.NewInt(2)

	steps := newtonSteps(n)
	for _, m := range steps[1:] {

		// e = 2 - A B mod x^m
		e := vecMulLow(truncated(a, m), b, m, prec)
		e[0].Sub(&two, &e[0], prec)
		for j := 1; j < m; j++ {
			e[j].Neg(&e[j])
		}

		b = vecMulLow(b, e, m, prec)
	}

	return
}

// RsqrtSeries sets r to the power series reciprocal square root of a mod x^n
// and returns r. If the constant term of a is not strictly positive, the
// coefficients are indeterminate.
func (r *Poly) RsqrtSeries(a *Poly, n int, prec uint) *Poly {

	checkSeriesLength("RsqrtSeries", n)

	if n == 0 {
		return r.Zero()
	}

	r.setCoeffs(rsqrtSeries(a.coeffs, n, prec))
	return r
}

// rsqrtSeries applies the Newton iteration B_{2k} = B_k (3 - A B_k^2) / 2 mod x^{2k}.
func rsqrtSeries(a []ball.Ball, n int, prec uint) (b []ball.Ball) {

	var a0 ball.Ball
	if len(a) > 0 {
		a0 = a[0]
	}

	b = make([]ball.Ball, 1, n)
	b[0].Rsqrt(&a0, prec)

	three := ball.NewInt(3)

	steps := newtonSteps(n)
	for _, m := range steps[1:] {

		// e = (3 - A B^2) / 2 mod x^m
		e := vecMulLow(b, b, m, prec)
		e = vecMulLow(truncated(a, m), e, m, prec)
		e[0].Sub(&three, &e[0], prec)
		e[0].MulTwoExp(&e[0], -1)
		for j := 1; j < m; j++ {
			e[j].Neg(&e[j])
			e[j].MulTwoExp(&e[j], -1)
		}

		b = vecMulLow(b, e, m, prec)
	}

	return
}

// SqrtSeries sets r to the power series square root of a mod x^n, computed
// as a * rsqrt(a), and returns r.
func (r *Poly) SqrtSeries(a *Poly, n int, prec uint) *Poly {

	checkSeriesLength("SqrtSeries", n)

	if n == 0 {
		return r.Zero()
	}

	b := rsqrtSeries(a.coeffs, n, prec)
	r.setCoeffs(vecMulLow(truncated(a.coeffs, n), b, n, prec))
	return r
}

// DivSeries sets r to a / b mod x^n and returns r.
// If the constant term of b contains zero, the coefficients are indeterminate.
func (r *Poly) DivSeries(a, b *Poly, n int, prec uint) *Poly {

	checkSeriesLength("DivSeries", n)

	if n == 0 {
		return r.Zero()
	}

	r.setCoeffs(divSeries(a.coeffs, b.coeffs, n, prec))
	return r
}

func divSeries(a, b []ball.Ball, n int, prec uint) []ball.Ball {
	return vecMulLow(truncated(a, n), invSeries(b, n, prec), n, prec)
}

// LogSeries sets r to log(a) mod x^n, computed as log(a_0) plus the
// integral of a'/a, and returns r.
// If the constant term of a is not strictly positive, the coefficients are
// indeterminate.
func (r *Poly) LogSeries(a *Poly, n int, prec uint) *Poly {

	checkSeriesLength("LogSeries", n)

	if n == 0 {
		return r.Zero()
	}

	r.setCoeffs(logSeries(a.coeffs, n, prec))
	return r
}

func logSeries(a []ball.Ball, n int, prec uint) (c []ball.Ball) {

	var a0 ball.Ball
	if len(a) > 0 {
		a0 = a[0]
	}

	c = make([]ball.Ball, n)
	c[0].Log(&a0, prec)

	if n == 1 {
		return
	}

	// a' mod x^(n-1)
	a = truncated(a, n)
	da := make([]ball.Ball, utils.Max(len(a)-1, 0))
	for i := range da {
		da[i].MulInt(&a[i+1], int64(i+1), prec)
	}

	q := divSeries(da, a, n-1, prec)

	for i := 1; i < n; i++ {
		c[i].DivInt(&q[i-1], int64(i), prec)
	}

	if !c[0].IsFinite() {
		for i := range c {
			c[i] = ball.Indeterminate()
		}
	}

	return
}

// ExpSeries sets r to exp(a) mod x^n and returns r.
// It applies the Newton iteration B_{2k} = B_k (1 + A - log(B_k)) mod x^{2k}.
func (r *Poly) ExpSeries(a *Poly, n int, prec uint) *Poly {

	checkSeriesLength("ExpSeries", n)

	if n == 0 {
		return r.Zero()
	}

	ac := a.coeffs

	var a0 ball.Ball
	if len(ac) > 0 {
		a0 = ac[0]
	}

	b := make([]ball.Ball, 1, n)
	b[0].Exp(&a0, prec)

	one := ball.One()

	steps := newtonSteps(n)
	for _, m := range steps[1:] {

		// e = 1 + A - log(B) mod x^m
		l := logSeries(b, m, prec)
		at := truncated(ac, m)

		e := make([]ball.Ball, m)
		for j := range e {
			if j < len(at) {
				e[j].Sub(&at[j], &l[j], prec)
			} else {
				e[j].Neg(&l[j])
			}
		}
		e[0].Add(&e[0], &one, prec)

		b = vecMulLow(b, e, m, prec)
	}

	r.setCoeffs(b)
	return r
}
