package ball

import (
	"math/big"
)

// SetRound sets z to x rounded to prec bits and returns z.
func (z *Ball) SetRound(x *Ball, prec uint) *Ball {

	if !x.IsFinite() {
		return z.setIndeterminate()
	}

	m := newMid(prec).Set(x.m())
	z.mid, z.rad = m, addRoundErr(x.r(), m)
	return z
}

// Neg sets z to -x and returns z.
func (z *Ball) Neg(x *Ball) *Ball {
	z.mid, z.rad = new(big.Float).Neg(x.m()), x.rad
	return z
}

// Abs sets z to a ball containing |x| and returns z.
func (z *Ball) Abs(x *Ball) *Ball {
	z.mid, z.rad = new(big.Float).Abs(x.m()), x.rad
	return z
}

// Add sets z to x + y and returns z.
func (z *Ball) Add(x, y *Ball, prec uint) *Ball {

	if !x.IsFinite() || !y.IsFinite() {
		return z.setIndeterminate()
	}

	m := newMid(prec).Add(x.m(), y.m())
	z.mid, z.rad = m, addRoundErr(radAdd(x.r(), y.r()), m)
	return z
}

// Sub sets z to x - y and returns z.
func (z *Ball) Sub(x, y *Ball, prec uint) *Ball {

	if !x.IsFinite() || !y.IsFinite() {
		return z.setIndeterminate()
	}

	m := newMid(prec).Sub(x.m(), y.m())
	z.mid, z.rad = m, addRoundErr(radAdd(x.r(), y.r()), m)
	return z
}

// Mul sets z to x * y and returns z.
func (z *Ball) Mul(x, y *Ball, prec uint) *Ball {

	if !x.IsFinite() || !y.IsFinite() {
		return z.setIndeterminate()
	}

	xm, xr := x.m(), x.r()
	ym, yr := y.m(), y.r()

	m := newMid(prec).Mul(xm, ym)

	// |xm|yr + |ym|xr + xr*yr
	r := fzero
	if yr.Sign() != 0 {
		r = radAdd(r, radMul(radAbs(xm), yr))
	}

	if xr.Sign() != 0 {
		r = radAdd(r, radMul(radAbs(ym), xr))
		if yr.Sign() != 0 {
			r = radAdd(r, radMul(xr, yr))
		}
	}

	z.mid, z.rad = m, addRoundErr(r, m)
	return z
}

// MulInt sets z to x * v and returns z.
func (z *Ball) MulInt(x *Ball, v int64, prec uint) *Ball {
	y := NewInt(v)
	return z.Mul(x, &y, prec)
}

// Div sets z to x / y and returns z.
// If y contains zero, z is set to the indeterminate ball.
func (z *Ball) Div(x, y *Ball, prec uint) *Ball {

	if !x.IsFinite() || !y.IsNonZero() {
		return z.setIndeterminate()
	}

	xm, xr := x.m(), x.r()
	ym, yr := y.m(), y.r()

	m := newMid(prec).Quo(xm, ym)

	r := fzero
	if xr.Sign() != 0 || yr.Sign() != 0 {

		// (|xm|yr + |ym|xr) / (|ym|(|ym|-yr)) with the denominator rounded down
		num := radAdd(radMul(radAbs(xm), yr), radMul(radAbs(ym), xr))

		ymAbs := new(big.Float).Abs(ym)
		den := newLower().Sub(ymAbs, yr)
		den = newLower().Mul(den, ymAbs)

		if den.Sign() <= 0 {
			return z.setIndeterminate()
		}

		r = newRad().Quo(num, den)
	}

	z.mid, z.rad = m, addRoundErr(r, m)
	return z
}

// DivInt sets z to x / v and returns z.
func (z *Ball) DivInt(x *Ball, v int64, prec uint) *Ball {
	y := NewInt(v)
	return z.Div(x, &y, prec)
}

// Inv sets z to 1 / x and returns z.
func (z *Ball) Inv(x *Ball, prec uint) *Ball {
	one := One()
	return z.Div(&one, x, prec)
}

// MulTwoExp sets z to x * 2^e and returns z. The operation is exact.
func (z *Ball) MulTwoExp(x *Ball, e int) *Ball {

	if !x.IsFinite() {
		return z.setIndeterminate()
	}

	z.mid, z.rad = new(big.Float).SetMantExp(x.m(), e), newRad().SetMantExp(x.r(), e)
	return z
}

// AddError sets z to x with its radius increased by |e| and returns z.
func (z *Ball) AddError(x *Ball, e *big.Float) *Ball {

	if e.IsInf() || !x.IsFinite() {
		return z.setIndeterminate()
	}

	z.mid, z.rad = x.mid, radAdd(x.r(), radAbs(e))
	return z
}

// AddMul sets z to z + x * y and returns z.
func (z *Ball) AddMul(x, y *Ball, prec uint) *Ball {
	var t Ball
	t.Mul(x, y, prec)
	return z.Add(z, &t, prec)
}

// SubMul sets z to z - x * y and returns z.
func (z *Ball) SubMul(x, y *Ball, prec uint) *Ball {
	var t Ball
	t.Mul(x, y, prec)
	return z.Sub(z, &t, prec)
}
