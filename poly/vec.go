package poly

import (
	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils"
)

// vecAdd returns a + b, the shorter operand being padded with zeros.
func vecAdd(a, b []ball.Ball, prec uint) (c []ball.Ball) {

	if len(a) < len(b) {
		a, b = b, a
	}

	c = make([]ball.Ball, len(a))

	for i := range b {
		c[i].Add(&a[i], &b[i], prec)
	}

	for i := len(b); i < len(a); i++ {
		c[i].SetRound(&a[i], prec)
	}

	return
}

// vecMulLow returns the n lowest coefficients of a * b.
// Coefficients beyond len(a)+len(b)-1 are exact zeros.
func vecMulLow(a, b []ball.Ball, n int, prec uint) (c []ball.Ball) {

	c = make([]ball.Ball, n)

	la, lb := len(a), len(b)

	if la == 0 || lb == 0 {
		return
	}

	for i := range c {
		lo := utils.Max(0, i-lb+1)
		hi := utils.Min(i, la-1)
		for j := lo; j <= hi; j++ {
			c[i].AddMul(&a[j], &b[i-j], prec)
		}
	}

	return
}

// vecMul returns a * b.
func vecMul(a, b []ball.Ball, prec uint) []ball.Ball {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	return vecMulLow(a, b, len(a)+len(b)-1, prec)
}

// vecMulMonic returns a * b where a and b are monic. The leading
// coefficient of the result is set to the exact one.
func vecMulMonic(a, b []ball.Ball, prec uint) (c []ball.Ball) {
	n := len(a) + len(b) - 1
	c = vecMulLow(a[:len(a)-1], b, n-1, prec)
	c = append(c, ball.One())
	// the low part of a times the leading one of b is already counted,
	// add the low part of b times the leading one of a
	for i := 0; i < len(b)-1; i++ {
		c[len(a)-1+i].Add(&c[len(a)-1+i], &b[i], prec)
	}
	return
}

// vecRemMonic returns a mod m where m is monic of degree d = len(m)-1.
// The result has exactly d coefficients.
func vecRemMonic(a, m []ball.Ball, prec uint) (r []ball.Ball) {

	d := len(m) - 1

	r = make([]ball.Ball, utils.Max(len(a), d))
	copy(r, a)

	var q ball.Ball
	for i := len(a) - 1; i >= d; i-- {
		q.Set(&r[i])
		if q.IsZero() {
			continue
		}
		for j := 0; j < d; j++ {
			r[i-d+j].SubMul(&q, &m[j], prec)
		}
	}

	return r[:d]
}

// vecNormalize drops the top exact zero coefficients of a.
func vecNormalize(a []ball.Ball) []ball.Ball {
	n := len(a)
	for n > 0 && a[n-1].IsZero() {
		n--
	}
	return a[:n]
}

// vecHorner returns a(x).
func vecHorner(a []ball.Ball, x *ball.Ball, prec uint) (y ball.Ball) {

	if len(a) == 0 {
		return
	}

	xc := *x

	y.Set(&a[len(a)-1])
	for i := len(a) - 2; i >= 0; i-- {
		y.Mul(&y, &xc, prec)
		y.Add(&y, &a[i], prec)
	}

	return
}
