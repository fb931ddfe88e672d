package poly

import (
	"fmt"

	"github.com/arbpoly/arbpoly/ball"
)

// Evaluator dispatches composition, multipoint evaluation and interpolation
// to the algorithm its Parameters select for the size of the operands.
// An Evaluator holds no scratch state and is safe for concurrent use.
type Evaluator struct {
	parameters Parameters
}

// NewEvaluator instantiates a new Evaluator from the given Parameters.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{parameters: params}
}

// GetParameters returns a pointer to the underlying Parameters.
func (eval Evaluator) GetParameters() *Parameters {
	return &eval.parameters
}

// WithParameters returns a new Evaluator using the given Parameters.
func (eval Evaluator) WithParameters(params Parameters) *Evaluator {
	return NewEvaluator(params)
}

// Compose sets r to p(q(x)) and returns r.
func (eval Evaluator) Compose(r, p, q *Poly, prec uint) *Poly {
	switch eval.parameters.ComposeStrategy(p.Len(), q.Len(), prec) {
	case ComposeDivConquerAlgorithm:
		return r.ComposeDivConquer(p, q, prec)
	default:
		return r.ComposeHorner(p, q, prec)
	}
}

// EvaluateVec returns p evaluated at every point of xs.
func (eval Evaluator) EvaluateVec(p *Poly, xs []ball.Ball, prec uint) []ball.Ball {
	switch eval.parameters.EvaluateVecStrategy(len(xs), p.Len()) {
	case EvaluateVecFastAlgorithm:
		return EvaluateVecFast(p, xs, prec)
	default:
		return EvaluateVecIter(p, xs, prec)
	}
}

// Interpolate returns the polynomial of degree < len(xs) taking the values
// ys at the nodes xs.
func (eval Evaluator) Interpolate(xs, ys []ball.Ball, prec uint) (p *Poly, err error) {

	switch eval.parameters.InterpolateStrategy(len(xs)) {
	case InterpolateFastAlgorithm:
		p, err = InterpolateFast(xs, ys, prec)
	default:
		p, err = InterpolateNewton(xs, ys, prec)
	}

	if err != nil {
		return nil, fmt.Errorf("cannot Interpolate: %w", err)
	}

	return
}
