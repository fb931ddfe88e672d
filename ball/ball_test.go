package ball

import (
	"flag"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbpoly/arbpoly/utils/bignum"
	"github.com/arbpoly/arbpoly/utils/sampling"
)

var flagLongTest = flag.Bool("long", false, "run the long test suite.")

var testPrecs = []uint{53, 128, 300}

func testString(opname string, prec uint) string {
	return fmt.Sprintf("%s/prec=%d", opname, prec)
}

func iterations() int {
	if *flagLongTest {
		return 512
	}
	return 32
}

func newTestSampler(t *testing.T) *Sampler {
	return NewSampler(sampling.NewKeyedPRNGFromLabel(t.Name()))
}

// endpoints returns mid - rad, mid and mid + rad as exact rationals.
func endpoints(x *Ball) []*big.Rat {
	m := bignum.ToRat(x.m())
	r := bignum.ToRat(x.r())
	return []*big.Rat{new(big.Rat).Sub(m, r), m, new(big.Rat).Add(m, r)}
}

func TestBall(t *testing.T) {
	for _, prec := range testPrecs {
		testConstructors(prec, t)
		testArithmetic(prec, t)
		testAliasing(prec, t)
		testElementary(prec, t)
	}
	testPredicates(t)
	testCodec(t)
	testSampler(t)
}

func testConstructors(prec uint, t *testing.T) {

	t.Run(testString("Constructors", prec), func(t *testing.T) {

		var z Ball
		require.True(t, z.IsZero())
		require.True(t, z.IsExact())
		require.True(t, z.ContainsZero())
		require.Equal(t, "0", z.String())

		x := NewInt(-3)
		require.True(t, x.IsExact())
		require.True(t, x.IsNegative())
		require.True(t, x.ContainsInt(-3))
		require.False(t, x.ContainsInt(3))
		require.Equal(t, "-3", x.String())

		one := One()
		require.True(t, one.IsOne())

		u := NewUint(math.MaxUint64)
		require.True(t, u.IsExact())
		require.True(t, u.IsPositive())
		require.True(t, u.ContainsRat(new(big.Rat).SetUint64(math.MaxUint64)))
		require.False(t, u.ContainsInt(math.MaxInt64))

		third := NewRat(big.NewRat(1, 3), prec)
		require.False(t, third.IsExact())
		require.True(t, third.ContainsRat(big.NewRat(1, 3)))
		require.GreaterOrEqual(t, third.RelAccuracyBits(), int(prec)-2)

		half := NewRat(big.NewRat(1, 2), prec)
		require.True(t, half.IsExact())

		inf := NewFloat64(math.Inf(1))
		require.False(t, inf.IsFinite())
		require.Panics(t, func() { NewWithRadius(big.NewFloat(1), big.NewFloat(-1)) })

		w := NewWithRadius(big.NewFloat(1), big.NewFloat(0.25))
		require.True(t, w.ContainsRat(big.NewRat(5, 4)))
		require.False(t, w.ContainsRat(big.NewRat(13, 10)))
	})
}

func testArithmetic(prec uint, t *testing.T) {

	t.Run(testString("Arithmetic/Rational", prec), func(t *testing.T) {

		s := newTestSampler(t)

		for i := 0; i < iterations(); i++ {

			p := s.ReadRat(80)
			q := s.ReadRatNonZero(80)

			x := NewRat(p, prec)
			y := NewRat(q, prec)

			var z Ball

			z.Add(&x, &y, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Add(p, q)))

			z.Sub(&x, &y, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Sub(p, q)))

			z.Mul(&x, &y, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Mul(p, q)))

			z.Div(&x, &y, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Quo(p, q)))

			z.MulInt(&x, -7, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Mul(p, big.NewRat(-7, 1))))

			z.DivInt(&x, 3, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Quo(p, big.NewRat(3, 1))))

			z.Inv(&y, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Inv(q)))

			z.Set(&x)
			z.AddMul(&x, &y, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Add(p, new(big.Rat).Mul(p, q))))

			z.Set(&x)
			z.SubMul(&x, &y, prec)
			require.True(t, z.ContainsRat(new(big.Rat).Sub(p, new(big.Rat).Mul(p, q))))
		}
	})

	t.Run(testString("Arithmetic/Endpoints", prec), func(t *testing.T) {

		s := newTestSampler(t)

		for i := 0; i < iterations(); i++ {

			x := s.Read(prec, 16)
			y := s.Read(prec, 16)

			var add, sub, mul, div Ball
			add.Add(&x, &y, prec)
			sub.Sub(&x, &y, prec)
			mul.Mul(&x, &y, prec)
			div.Div(&x, &y, prec)

			for _, a := range endpoints(&x) {
				for _, b := range endpoints(&y) {
					require.True(t, add.ContainsRat(new(big.Rat).Add(a, b)))
					require.True(t, sub.ContainsRat(new(big.Rat).Sub(a, b)))
					require.True(t, mul.ContainsRat(new(big.Rat).Mul(a, b)))
					if y.IsNonZero() {
						require.True(t, div.ContainsRat(new(big.Rat).Quo(a, b)))
					}
				}
			}
		}
	})

	t.Run(testString("Arithmetic/Exact", prec), func(t *testing.T) {
		x := NewInt(6)
		y := NewInt(-4)
		var z Ball
		z.Mul(&x, &y, prec)
		require.True(t, z.IsExact())
		require.True(t, z.ContainsInt(-24))

		z.MulTwoExp(&x, -3)
		require.True(t, z.IsExact())
		require.True(t, z.ContainsRat(big.NewRat(3, 4)))

		z.Neg(&y)
		require.True(t, z.Equal(&Ball{mid: big.NewFloat(4)}))
		z.Abs(&y)
		require.True(t, z.ContainsInt(4))
	})

	t.Run(testString("Arithmetic/Indeterminate", prec), func(t *testing.T) {
		x := NewInt(1)
		y := NewWithRadius(big.NewFloat(1), big.NewFloat(2))
		var z Ball
		z.Div(&x, &y, prec)
		require.False(t, z.IsFinite())
		require.True(t, z.ContainsInt(12345))

		z.Add(&z, &x, prec)
		require.False(t, z.IsFinite())

		zero := Zero()
		z.Inv(&zero, prec)
		require.False(t, z.IsFinite())
	})

	t.Run(testString("Arithmetic/AddError", prec), func(t *testing.T) {
		x := NewInt(1)
		var z Ball
		z.AddError(&x, big.NewFloat(-0.5))
		require.True(t, z.ContainsRat(big.NewRat(1, 2)))
		require.True(t, z.ContainsRat(big.NewRat(3, 2)))
		require.False(t, z.ContainsInt(2))
	})

	t.Run(testString("Arithmetic/SetRound", prec), func(t *testing.T) {
		x := NewRat(big.NewRat(1, 3), prec+64)
		var z Ball
		z.SetRound(&x, prec)
		require.Equal(t, prec, z.Prec())
		require.True(t, z.ContainsRat(big.NewRat(1, 3)))
		require.True(t, z.Contains(&x))
	})
}

func testAliasing(prec uint, t *testing.T) {

	t.Run(testString("Aliasing", prec), func(t *testing.T) {

		s := newTestSampler(t)

		x := s.Read(prec, 8)
		y := s.Read(prec, 8)

		ops := map[string]func(z, x, y *Ball){
			"Add": func(z, x, y *Ball) { z.Add(x, y, prec) },
			"Sub": func(z, x, y *Ball) { z.Sub(x, y, prec) },
			"Mul": func(z, x, y *Ball) { z.Mul(x, y, prec) },
			"Div": func(z, x, y *Ball) { z.Div(x, y, prec) },
		}

		for name, op := range ops {

			var want Ball
			op(&want, &x, &y)

			z := x
			op(&z, &z, &y)
			require.True(t, want.Equal(&z), name)

			z = y
			op(&z, &x, &z)
			require.True(t, want.Equal(&z), name)

			// operands are left untouched
			var again Ball
			op(&again, &x, &y)
			require.True(t, want.Equal(&again), name)
		}

		var want Ball
		want.Mul(&x, &x, prec)
		z := x
		z.Mul(&z, &z, prec)
		require.True(t, want.Equal(&z))
	})
}

func testElementary(prec uint, t *testing.T) {

	ref := prec + 256

	check := func(t *testing.T, f func(z, x *Ball, prec uint) *Ball, x Ball) {
		var z, zRef Ball
		f(&z, &x, prec)
		f(&zRef, &x, ref)
		require.True(t, z.IsFinite())
		require.True(t, z.Overlaps(&zRef))
		require.True(t, z.ContainsRat(bignum.ToRat(zRef.m())), "%s does not contain %s", z.String(), zRef.String())
		require.GreaterOrEqual(t, z.RelAccuracyBits(), int(prec)-8)
	}

	t.Run(testString("Sqrt", prec), func(t *testing.T) {
		check(t, (*Ball).Sqrt, NewInt(2))
		check(t, (*Ball).Sqrt, NewRat(big.NewRat(1, 7), prec))
		var z Ball
		x := NewInt(9)
		z.Sqrt(&x, prec)
		require.True(t, z.ContainsInt(3))
		m := NewInt(-1)
		z.Sqrt(&m, prec)
		require.False(t, z.IsFinite())
		zero := Zero()
		z.Sqrt(&zero, prec)
		require.True(t, z.IsZero())
	})

	t.Run(testString("Rsqrt", prec), func(t *testing.T) {
		check(t, (*Ball).Rsqrt, NewInt(3))
		check(t, (*Ball).Rsqrt, NewRat(big.NewRat(5, 11), prec))
		var z Ball
		x := NewInt(4)
		z.Rsqrt(&x, prec)
		require.True(t, z.ContainsRat(big.NewRat(1, 2)))
		zero := Zero()
		z.Rsqrt(&zero, prec)
		require.False(t, z.IsFinite())
	})

	t.Run(testString("Exp", prec), func(t *testing.T) {
		check(t, (*Ball).Exp, NewRat(big.NewRat(1, 2), prec))
		check(t, (*Ball).Exp, NewRat(big.NewRat(-17, 3), prec))
		check(t, (*Ball).Exp, NewInt(20))
		var z Ball
		zero := Zero()
		z.Exp(&zero, prec)
		require.True(t, z.IsOne())
	})

	t.Run(testString("Log", prec), func(t *testing.T) {
		check(t, (*Ball).Log, NewInt(3))
		check(t, (*Ball).Log, NewRat(big.NewRat(1, 100), prec))
		var z Ball
		one := One()
		z.Log(&one, prec)
		require.True(t, z.IsZero())
		zero := Zero()
		z.Log(&zero, prec)
		require.False(t, z.IsFinite())
	})

	t.Run(testString("ExpLog", prec), func(t *testing.T) {
		s := newTestSampler(t)
		for i := 0; i < iterations(); i++ {
			q := s.ReadRatNonZero(32)
			q.Abs(q)
			x := NewRat(q, prec)
			var z Ball
			z.Log(&x, prec)
			z.Exp(&z, prec)
			require.True(t, z.ContainsRat(q))
		}
	})

	t.Run(testString("Sqrt/Inexact", prec), func(t *testing.T) {
		x := NewWithRadius(big.NewFloat(2), big.NewFloat(0.5))
		var z Ball
		z.Sqrt(&x, prec)
		for _, v := range []*big.Rat{big.NewRat(3, 2), big.NewRat(2, 1), big.NewRat(5, 2)} {
			y := NewRat(v, ref)
			y.Sqrt(&y, ref)
			require.True(t, z.Overlaps(&y))
		}
	})
}

func testPredicates(t *testing.T) {

	t.Run("Predicates", func(t *testing.T) {

		a := NewWithRadius(big.NewFloat(1), big.NewFloat(1))
		b := NewWithRadius(big.NewFloat(1), big.NewFloat(0.5))
		c := NewWithRadius(big.NewFloat(3), big.NewFloat(0.5))
		d := NewWithRadius(big.NewFloat(2.5), big.NewFloat(0.5))

		require.True(t, a.ContainsZero())
		require.False(t, b.ContainsZero())
		require.True(t, b.IsPositive())
		require.True(t, b.IsNonZero())
		require.False(t, a.IsPositive())

		require.True(t, a.Contains(&b))
		require.False(t, b.Contains(&a))
		require.False(t, a.Contains(&c))

		require.False(t, a.Overlaps(&c))
		require.True(t, a.Overlaps(&d))
		require.True(t, d.Overlaps(&c))

		inf := Indeterminate()
		require.True(t, inf.Contains(&a))
		require.False(t, a.Contains(&inf))
		require.True(t, inf.Overlaps(&a))
		require.True(t, inf.ContainsZero())
		require.False(t, inf.IsNonZero())

		x := NewInt(1)
		y := NewFloat(big.NewFloat(1).SetPrec(200))
		require.True(t, x.Equal(&y))
		require.False(t, x.Equal(&b))
	})
}

func testCodec(t *testing.T) {

	t.Run("Codec", func(t *testing.T) {

		s := newTestSampler(t)

		balls := []Ball{Zero(), One(), Indeterminate(), NewRat(big.NewRat(-2, 3), 100), s.Read(256, 64)}

		for i := range balls {
			data, err := balls[i].MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, balls[i].BinarySize(), len(data))

			var x Ball
			require.NoError(t, x.UnmarshalBinary(data))
			require.True(t, balls[i].Equal(&x), balls[i].String())
			require.Equal(t, balls[i].Prec(), x.Prec())
		}

		var x Ball
		require.Error(t, x.UnmarshalBinary([]byte{1, 2, 3}))
	})
}

func testSampler(t *testing.T) {

	t.Run("Sampler", func(t *testing.T) {

		s0 := newTestSampler(t)
		s1 := newTestSampler(t)

		for i := 0; i < iterations(); i++ {

			x := s0.Read(64, 10)
			y := s1.Read(64, 10)
			require.True(t, x.Equal(&y))

			if !x.IsZero() {
				e := x.m().MantExp(nil)
				require.GreaterOrEqual(t, e, -10)
				require.LessOrEqual(t, e, 10)
				require.LessOrEqual(t, x.m().MinPrec(), uint(64))
			}

			q := s0.ReadRat(16)
			s1.ReadRat(16)
			require.Less(t, new(big.Int).Abs(q.Num()).BitLen(), 17)

			require.NotEqual(t, 0, s0.ReadRatNonZero(4).Sign())
			s1.ReadRatNonZero(4)
		}
	})
}
