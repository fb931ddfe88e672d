package poly

import (
	"fmt"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils"
)

// Tree is a subproduct tree over a set of roots r_0, ..., r_{n-1}.
//
// Level i stores, in one contiguous slice, the monic products of
// consecutive blocks of 2^i roots, each block taking 2^i+1 entries with
// the leading one included. When n is not a multiple of 2^i the last
// block holds the remaining roots. The top level holds the product of
// all the roots.
//
// A Tree is read-only once built and can be shared between evaluation
// and interpolation over the same roots.
type Tree struct {
	levels [][]ball.Ball
	n      int
}

// NewTree builds the subproduct tree over roots.
func NewTree(roots []ball.Ball, prec uint) (t *Tree) {

	n := len(roots)

	t = &Tree{n: n}

	if n == 0 {
		return
	}

	height := utils.CLog2(n) + 1

	t.levels = make([][]ball.Ball, height)
	for i := range t.levels {
		t.levels[i] = make([]ball.Ball, 0, n+(n>>i)+1)
	}

	// level 0: x - r_i
	for i := range roots {
		var neg ball.Ball
		neg.Neg(&roots[i])
		t.levels[0] = append(t.levels[0], neg, ball.One())
	}

	if height == 1 {
		return
	}

	// level 1: (x - a)(x - b) = x^2 - (a + b)x + ab
	for i := 0; i+1 < n; i += 2 {
		var c0, c1 ball.Ball
		c0.Mul(&roots[i], &roots[i+1], prec)
		c1.Add(&roots[i], &roots[i+1], prec)
		c1.Neg(&c1)
		t.levels[1] = append(t.levels[1], c0, c1, ball.One())
	}

	if n&1 == 1 {
		t.levels[1] = append(t.levels[1], t.levels[0][2*(n-1):]...)
	}

	for i := 1; i+1 < height; i++ {

		pow := 1 << i
		cur := t.levels[i]

		for start := 0; start < n; start += 2 * pow {

			end := utils.Min(start+2*pow, n)

			if end-start <= pow {
				t.levels[i+1] = append(t.levels[i+1], t.block(cur, pow, start/pow)...)
				continue
			}

			left := t.block(cur, pow, start/pow)
			right := t.block(cur, pow, start/pow+1)

			t.levels[i+1] = append(t.levels[i+1], vecMulMonic(left, right, prec)...)
		}
	}

	return
}

// Len returns the number of roots of the tree.
func (t *Tree) Len() int {
	return t.n
}

// Height returns the number of levels of the tree.
func (t *Tree) Height() int {
	return len(t.levels)
}

// Block returns the j-th block of the given level: the monic product of
// the roots r_{j*2^level}, ..., r_{min((j+1)*2^level, n)-1}.
// The returned slice must not be modified.
func (t *Tree) Block(level, j int) []ball.Ball {

	if level < 0 || level >= len(t.levels) {
		panic(fmt.Errorf("cannot Block: level %d out of range [0, %d)", level, len(t.levels)))
	}

	pow := 1 << level

	if j < 0 || j*pow >= t.n {
		panic(fmt.Errorf("cannot Block: block %d out of range at level %d", j, level))
	}

	return t.block(t.levels[level], pow, j)
}

func (t *Tree) block(level []ball.Ball, pow, j int) []ball.Ball {
	start := j * (pow + 1)
	roots := utils.Min(pow, t.n-j*pow)
	return level[start : start+roots+1 : start+roots+1]
}

// Product returns the product of (x - r_i) over all the roots.
// The product over no roots is 1.
func (t *Tree) Product() *Poly {
	if t.n == 0 {
		return NewPolyFromInt64s(1)
	}
	return NewPolyFromBalls(t.Block(len(t.levels)-1, 0))
}

// Free releases the levels of the tree.
func (t *Tree) Free() {
	t.levels = nil
	t.n = 0
}
