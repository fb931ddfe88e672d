package ball

import (
	"fmt"
	"io"
	"math/big"

	"github.com/arbpoly/arbpoly/utils/bignum"
	"github.com/arbpoly/arbpoly/utils/sampling"
)

// Sampler draws random balls and rationals from a source of random bytes.
// With a sampling.KeyedPRNG as source the generated sequence is reproducible.
type Sampler struct {
	prng io.Reader
}

// NewSampler creates a new Sampler reading from prng.
func NewSampler(prng io.Reader) *Sampler {
	return &Sampler{prng: prng}
}

// ReadIntn returns a uniform value in [0, n).
func (s *Sampler) ReadIntn(n int) int {
	return sampling.RandIntn(s.prng, n)
}

// ReadInt returns a uniform signed integer of magnitude smaller than 2^bits.
func (s *Sampler) ReadInt(bits int) *big.Int {

	if bits <= 0 {
		panic(fmt.Errorf("cannot ReadInt: bits must be strictly positive but is %d", bits))
	}

	b := make([]byte, (bits+7)/8+1)
	if _, err := io.ReadFull(s.prng, b); err != nil {
		panic(fmt.Errorf("cannot ReadInt: %w", err))
	}

	// the extra first byte holds the sign
	sign := b[0] & 1
	b = b[1:]
	b[0] &= byte(0xff >> (uint(len(b)*8 - bits)))

	v := new(big.Int).SetBytes(b)
	if sign == 1 {
		v.Neg(v)
	}

	return v
}

// ReadRat returns a random rational p/q with |p| < 2^bits and 0 < q <= 2^bits.
func (s *Sampler) ReadRat(bits int) *big.Rat {
	p := s.ReadInt(bits)
	q := s.ReadInt(bits)
	q.Abs(q)
	q.Add(q, big.NewInt(1))
	return new(big.Rat).SetFrac(p, q)
}

// ReadRatNonZero returns a random nonzero rational as ReadRat.
func (s *Sampler) ReadRatNonZero(bits int) *big.Rat {
	for {
		if q := s.ReadRat(bits); q.Sign() != 0 {
			return q
		}
	}
}

// ReadExact returns a random exact ball whose midpoint has prec bits of
// mantissa and a binary exponent in [-magBits, magBits].
func (s *Sampler) ReadExact(prec uint, magBits int) Ball {

	mant := s.ReadInt(int(prec))
	e := s.ReadIntn(2*magBits+1) - magBits

	m := bignum.NewFloat(mant, prec)
	if m.Sign() != 0 {
		m.SetMantExp(m, e-m.MantExp(nil))
	}

	return Ball{mid: m}
}

// Read returns a random ball as ReadExact with a radius of up to
// 2^4 units in the last place of its midpoint.
func (s *Sampler) Read(prec uint, magBits int) Ball {

	x := s.ReadExact(prec, magBits)

	if x.m().Sign() == 0 {
		return x
	}

	r := newRad().SetInt64(int64(s.ReadIntn(16) + 1))
	x.rad = radMul(r, bignum.ULP(x.m(), prec))

	return x
}
