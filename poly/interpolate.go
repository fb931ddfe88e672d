package poly

import (
	"errors"
	"fmt"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils"
	"github.com/arbpoly/arbpoly/utils/bignum"
)

var (
	// ErrLengthMismatch is returned when the nodes and the values of an
	// interpolation problem do not have the same length.
	ErrLengthMismatch = errors.New("nodes and values have different lengths")

	// ErrDuplicateNodes is returned when two interpolation nodes are the
	// same exact ball.
	ErrDuplicateNodes = errors.New("duplicate interpolation nodes")
)

// checkNodes returns an error if xs and ys have different lengths or if
// xs contains the same exact ball twice. Distinct but overlapping inexact
// nodes are not detected: they yield indeterminate coefficients.
func checkNodes(xs, ys []ball.Ball) error {

	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d nodes but %d values", ErrLengthMismatch, len(xs), len(ys))
	}

	seen := make(map[string]int, len(xs))

	for i := range xs {

		if !xs[i].IsExact() {
			continue
		}

		key := bignum.ToRat(xs[i].Mid()).RatString()

		if j, ok := seen[key]; ok {
			return fmt.Errorf("%w: x[%d] = x[%d] = %s", ErrDuplicateNodes, j, i, key)
		}

		seen[key] = i
	}

	return nil
}

// InterpolateNewton returns the polynomial of degree < len(xs) taking the
// values ys at the nodes xs, computed with divided differences.
func InterpolateNewton(xs, ys []ball.Ball, prec uint) (p *Poly, err error) {

	if err = checkNodes(xs, ys); err != nil {
		return nil, fmt.Errorf("cannot InterpolateNewton: %w", err)
	}

	n := len(xs)

	if n == 0 {
		return NewPoly(0), nil
	}

	// d[j] = f[x_0, ..., x_j] once the column of step i has been absorbed
	d := make([]ball.Ball, n)
	copy(d, ys)

	var num, den ball.Ball
	for i := 1; i < n; i++ {
		for j := n - 1; j >= i; j-- {
			num.Sub(&d[j], &d[j-1], prec)
			den.Sub(&xs[j], &xs[j-i], prec)
			d[j].Div(&num, &den, prec)
		}
	}

	// Newton form to monomial form: P = d_{n-1}; P = P * (x - x_k) + d_k
	c := make([]ball.Ball, n)
	c[0] = d[n-1]

	var t ball.Ball
	for k, deg := n-2, 0; k >= 0; k, deg = k-1, deg+1 {

		c[deg+1] = c[deg]

		for i := deg; i >= 1; i-- {
			t.Mul(&xs[k], &c[i], prec)
			c[i].Sub(&c[i-1], &t, prec)
		}

		t.Mul(&xs[k], &c[0], prec)
		c[0].Sub(&d[k], &t, prec)
	}

	p = &Poly{}
	p.setCoeffs(c)

	return
}

// InterpolateBarycentric returns the polynomial of degree < len(xs) taking
// the values ys at the nodes xs, computed as the sum over i of
// y_i * w_i * M(x) / (x - x_i) with M the product of the (x - x_j) and
// w_i = 1 / M'(x_i).
func InterpolateBarycentric(xs, ys []ball.Ball, prec uint) (p *Poly, err error) {

	if err = checkNodes(xs, ys); err != nil {
		return nil, fmt.Errorf("cannot InterpolateBarycentric: %w", err)
	}

	n := len(xs)

	if n == 0 {
		return NewPoly(0), nil
	}

	tree := NewTree(xs, prec)
	defer tree.Free()

	m := tree.Block(tree.Height()-1, 0)

	c := make([]ball.Ball, n)
	q := make([]ball.Ball, n)

	var w, t ball.Ball
	for i := 0; i < n; i++ {

		// w_i = 1 / prod_{j != i} (x_i - x_j)
		w = ball.One()
		for j := 0; j < n; j++ {
			if j != i {
				t.Sub(&xs[i], &xs[j], prec)
				w.Mul(&w, &t, prec)
			}
		}
		w.Div(&ys[i], &w, prec)

		// q = M / (x - x_i) by synthetic division
		q[n-1] = m[n]
		for k := n - 1; k >= 1; k-- {
			q[k-1].Mul(&xs[i], &q[k], prec)
			q[k-1].Add(&q[k-1], &m[k], prec)
		}

		for k := range c {
			c[k].AddMul(&w, &q[k], prec)
		}
	}

	p = &Poly{}
	p.setCoeffs(c)

	return
}

// InterpolationWeights returns the barycentric weights 1 / M'(r_i) of the
// roots of tree, where M is the product of the (x - r_i).
func InterpolationWeights(tree *Tree, prec uint) (w []ball.Ball) {

	if tree.Len() == 0 {
		return nil
	}

	dm := new(Poly).Derivative(tree.Product(), prec)

	w = EvaluateVecFastPrecomp(dm, tree, prec)

	for i := range w {
		w[i].Inv(&w[i], prec)
	}

	return
}

// InterpolateFast returns the polynomial of degree < len(xs) taking the
// values ys at the nodes xs, using a subproduct tree built over xs.
func InterpolateFast(xs, ys []ball.Ball, prec uint) (p *Poly, err error) {

	if err = checkNodes(xs, ys); err != nil {
		return nil, fmt.Errorf("cannot InterpolateFast: %w", err)
	}

	tree := NewTree(xs, prec)
	defer tree.Free()

	return InterpolateFastPrecomp(ys, tree, InterpolationWeights(tree, prec), prec)
}

// InterpolateFastPrecomp returns the polynomial taking the values ys at the
// roots of tree, given the weights returned by InterpolationWeights.
// The linear combination sum_i y_i w_i M(x) / (x - r_i) is accumulated from
// the leaves of the tree upward: two sibling blocks with partial sums L and R
// and products ML and MR merge into L * MR + R * ML.
func InterpolateFastPrecomp(ys []ball.Ball, tree *Tree, weights []ball.Ball, prec uint) (p *Poly, err error) {

	n := tree.Len()

	if len(ys) != n || len(weights) != n {
		return nil, fmt.Errorf("cannot InterpolateFastPrecomp: %w: %d nodes, %d values, %d weights", ErrLengthMismatch, n, len(ys), len(weights))
	}

	if n == 0 {
		return NewPoly(0), nil
	}

	// the partial sum of a block of c roots occupies c consecutive entries
	cur := make([]ball.Ball, n)
	for i := range cur {
		cur[i].Mul(&ys[i], &weights[i], prec)
	}

	for level := 0; level+1 < tree.Height(); level++ {

		pow := 1 << level
		next := make([]ball.Ball, n)

		for start := 0; start < n; start += 2 * pow {

			end := utils.Min(start+2*pow, n)

			if end-start <= pow {
				copy(next[start:end], cur[start:end])
				continue
			}

			ml := tree.Block(level, start/pow)
			mr := tree.Block(level, start/pow+1)

			a := vecMulLow(cur[start:start+pow], mr, end-start, prec)
			b := vecMulLow(cur[start+pow:end], ml, end-start, prec)

			for k := range a {
				next[start+k].Add(&a[k], &b[k], prec)
			}
		}

		cur = next
	}

	p = &Poly{}
	p.setCoeffs(cur)

	return
}
