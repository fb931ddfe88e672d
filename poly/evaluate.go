package poly

import (
	"math"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils"
)

// Evaluate returns p(x) computed with Horner's scheme.
func (p *Poly) Evaluate(x *ball.Ball, prec uint) ball.Ball {
	return vecHorner(p.coeffs, x, prec)
}

// EvaluateRectangular returns p(x) computed by rectangular splitting:
// the coefficients are cut in blocks of m ~ sqrt(len(p)), each block is
// evaluated against the table x^0, ..., x^(m-1) and the blocks are combined
// with Horner's scheme in x^m. It performs O(sqrt(len(p))) nonscalar
// multiplications.
func (p *Poly) EvaluateRectangular(x *ball.Ball, prec uint) (y ball.Ball) {

	pc := p.coeffs
	n := len(pc)

	if n <= 2 {
		return vecHorner(pc, x, prec)
	}

	m := int(math.Ceil(math.Sqrt(float64(n))))

	xpow := make([]ball.Ball, m+1)
	xpow[0] = ball.One()
	xpow[1] = *x
	for i := 2; i <= m; i++ {
		xpow[i].Mul(&xpow[i-1], x, prec)
	}

	var block ball.Ball
	for k := (n - 1) / m; k >= 0; k-- {

		block.Set(&pc[k*m])
		for j := 1; j < m && k*m+j < n; j++ {
			block.AddMul(&pc[k*m+j], &xpow[j], prec)
		}

		if k == (n-1)/m {
			y = block
		} else {
			y.Mul(&y, &xpow[m], prec)
			y.Add(&y, &block, prec)
		}
	}

	return
}

// EvaluateVecIter returns p evaluated at every point of xs, each one
// independently with Horner's scheme.
func EvaluateVecIter(p *Poly, xs []ball.Ball, prec uint) (ys []ball.Ball) {
	ys = make([]ball.Ball, len(xs))
	for i := range xs {
		ys[i] = vecHorner(p.coeffs, &xs[i], prec)
	}
	return
}

// EvaluateVecFast returns p evaluated at every point of xs using a
// subproduct tree built over xs.
func EvaluateVecFast(p *Poly, xs []ball.Ball, prec uint) []ball.Ball {
	tree := NewTree(xs, prec)
	defer tree.Free()
	return EvaluateVecFastPrecomp(p, tree, prec)
}

// EvaluateVecFastPrecomp returns p evaluated at the roots of tree.
// p is first reduced modulo the product of all roots, then each remainder
// is reduced modulo the two halves of its block, from the top of the tree
// down to the single roots where the remainders are the values.
func EvaluateVecFastPrecomp(p *Poly, tree *Tree, prec uint) []ball.Ball {

	n := tree.Len()

	if n == 0 {
		return nil
	}

	height := tree.Height()

	// the remainder of a block of c roots occupies c consecutive entries
	rems := vecRemMonic(p.coeffs, tree.Block(height-1, 0), prec)

	for level := height - 2; level >= 0; level-- {

		pow := 1 << level
		next := make([]ball.Ball, n)

		for start := 0; start < n; start += 2 * pow {

			end := utils.Min(start+2*pow, n)

			// unpaired block carried forward
			if end-start <= pow {
				copy(next[start:end], rems[start:end])
				continue
			}

			left := tree.Block(level, start/pow)
			right := tree.Block(level, start/pow+1)

			copy(next[start:start+pow], vecRemMonic(rems[start:end], left, prec))
			copy(next[start+pow:end], vecRemMonic(rems[start:end], right, prec))
		}

		rems = next
	}

	return rems
}
