package poly

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Default size thresholds used when a ParametersLiteral field is left to zero.
const (
	DefaultComposeDivConquerMinLen1 = 8
	DefaultComposeDivConquerMinLen2 = 2
	DefaultComposePrecRatio         = 4096
	DefaultEvaluateVecFastMinPoints = 32
	DefaultEvaluateVecFastMinLen    = 32
	DefaultInterpolateFastMinPoints = 64
)

// ComposeAlgorithm is a tag selecting a composition algorithm.
type ComposeAlgorithm int

const (
	ComposeHornerAlgorithm = ComposeAlgorithm(iota)
	ComposeDivConquerAlgorithm
)

func (a ComposeAlgorithm) String() string {
	switch a {
	case ComposeHornerAlgorithm:
		return "horner"
	case ComposeDivConquerAlgorithm:
		return "divconquer"
	default:
		return fmt.Sprintf("ComposeAlgorithm(%d)", int(a))
	}
}

// EvaluateVecAlgorithm is a tag selecting a multipoint evaluation algorithm.
type EvaluateVecAlgorithm int

const (
	EvaluateVecIterAlgorithm = EvaluateVecAlgorithm(iota)
	EvaluateVecFastAlgorithm
)

func (a EvaluateVecAlgorithm) String() string {
	switch a {
	case EvaluateVecIterAlgorithm:
		return "iter"
	case EvaluateVecFastAlgorithm:
		return "fast"
	default:
		return fmt.Sprintf("EvaluateVecAlgorithm(%d)", int(a))
	}
}

// InterpolateAlgorithm is a tag selecting an interpolation algorithm.
type InterpolateAlgorithm int

const (
	InterpolateNewtonAlgorithm = InterpolateAlgorithm(iota)
	InterpolateFastAlgorithm
)

func (a InterpolateAlgorithm) String() string {
	switch a {
	case InterpolateNewtonAlgorithm:
		return "newton"
	case InterpolateFastAlgorithm:
		return "fast"
	default:
		return fmt.Sprintf("InterpolateAlgorithm(%d)", int(a))
	}
}

// ParametersLiteral is a literal representation of the size thresholds
// driving the Evaluator. It is meant to be passed to NewParametersFromLiteral,
// which fills the zero fields with their default value.
//
// ComposeDivConquerMinLen1: minimum length of the outer polynomial for the divide-and-conquer composition.
// ComposeDivConquerMinLen2: minimum length of the inner polynomial for the divide-and-conquer composition.
// ComposePrecRatio: the divide-and-conquer composition is used only if prec <= ComposePrecRatio * len1.
// EvaluateVecFastMinPoints: minimum number of points for the subproduct-tree evaluation.
// EvaluateVecFastMinLen: minimum polynomial length for the subproduct-tree evaluation.
// InterpolateFastMinPoints: minimum number of nodes for the subproduct-tree interpolation.
type ParametersLiteral struct {
	ComposeDivConquerMinLen1 int
	ComposeDivConquerMinLen2 int
	ComposePrecRatio         int
	EvaluateVecFastMinPoints int
	EvaluateVecFastMinLen    int
	InterpolateFastMinPoints int
}

// DefaultParametersLiteral is the literal of the default parameters.
var DefaultParametersLiteral = ParametersLiteral{
	ComposeDivConquerMinLen1: DefaultComposeDivConquerMinLen1,
	ComposeDivConquerMinLen2: DefaultComposeDivConquerMinLen2,
	ComposePrecRatio:         DefaultComposePrecRatio,
	EvaluateVecFastMinPoints: DefaultEvaluateVecFastMinPoints,
	EvaluateVecFastMinLen:    DefaultEvaluateVecFastMinLen,
	InterpolateFastMinPoints: DefaultInterpolateFastMinPoints,
}

// Parameters is an immutable set of size thresholds selecting between
// asymptotically fast and schoolbook algorithms. Thresholds only affect
// running time: every strategy returns an enclosure of the same exact result.
type Parameters struct {
	composeMinLen1    int
	composeMinLen2    int
	composePrecRatio  int
	evalFastMinPoints int
	evalFastMinLen    int
	interpFastMin     int
}

// NewParametersFromLiteral instantiates a set of Parameters from a ParametersLiteral.
// Zero fields are replaced by their default value. It returns an error if a field is negative.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	fields := []struct {
		name string
		val  int
		def  int
		dst  *int
	}{
		{"ComposeDivConquerMinLen1", pl.ComposeDivConquerMinLen1, DefaultComposeDivConquerMinLen1, &params.composeMinLen1},
		{"ComposeDivConquerMinLen2", pl.ComposeDivConquerMinLen2, DefaultComposeDivConquerMinLen2, &params.composeMinLen2},
		{"ComposePrecRatio", pl.ComposePrecRatio, DefaultComposePrecRatio, &params.composePrecRatio},
		{"EvaluateVecFastMinPoints", pl.EvaluateVecFastMinPoints, DefaultEvaluateVecFastMinPoints, &params.evalFastMinPoints},
		{"EvaluateVecFastMinLen", pl.EvaluateVecFastMinLen, DefaultEvaluateVecFastMinLen, &params.evalFastMinLen},
		{"InterpolateFastMinPoints", pl.InterpolateFastMinPoints, DefaultInterpolateFastMinPoints, &params.interpFastMin},
	}

	for _, f := range fields {
		switch {
		case f.val < 0:
			return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %s must be non-negative but is %d", f.name, f.val)
		case f.val == 0:
			*f.dst = f.def
		default:
			*f.dst = f.val
		}
	}

	return
}

// DefaultParameters returns the parameters instantiated from DefaultParametersLiteral.
func DefaultParameters() Parameters {
	params, err := NewParametersFromLiteral(DefaultParametersLiteral)
	if err != nil {
		// sanity check
		panic(err)
	}
	return params
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		ComposeDivConquerMinLen1: p.composeMinLen1,
		ComposeDivConquerMinLen2: p.composeMinLen2,
		ComposePrecRatio:         p.composePrecRatio,
		EvaluateVecFastMinPoints: p.evalFastMinPoints,
		EvaluateVecFastMinLen:    p.evalFastMinLen,
		InterpolateFastMinPoints: p.interpFastMin,
	}
}

// ComposeDivConquerMinLen1 returns the minimum outer length of the divide-and-conquer composition.
func (p Parameters) ComposeDivConquerMinLen1() int {
	return p.composeMinLen1
}

// ComposeDivConquerMinLen2 returns the minimum inner length of the divide-and-conquer composition.
func (p Parameters) ComposeDivConquerMinLen2() int {
	return p.composeMinLen2
}

// ComposePrecRatio returns the precision to length ratio above which Horner composition is preferred.
func (p Parameters) ComposePrecRatio() int {
	return p.composePrecRatio
}

// EvaluateVecFastMinPoints returns the minimum number of points of the subproduct-tree evaluation.
func (p Parameters) EvaluateVecFastMinPoints() int {
	return p.evalFastMinPoints
}

// EvaluateVecFastMinLen returns the minimum polynomial length of the subproduct-tree evaluation.
func (p Parameters) EvaluateVecFastMinLen() int {
	return p.evalFastMinLen
}

// InterpolateFastMinPoints returns the minimum number of nodes of the subproduct-tree interpolation.
func (p Parameters) InterpolateFastMinPoints() int {
	return p.interpFastMin
}

// ComposeStrategy returns the composition algorithm to use for an outer
// polynomial of length len1, an inner polynomial of length len2 and the
// working precision prec.
func (p Parameters) ComposeStrategy(len1, len2 int, prec uint) ComposeAlgorithm {
	if len1 >= p.composeMinLen1 && len2 >= p.composeMinLen2 && uint64(prec) <= uint64(p.composePrecRatio)*uint64(len1) {
		return ComposeDivConquerAlgorithm
	}
	return ComposeHornerAlgorithm
}

// EvaluateVecStrategy returns the multipoint evaluation algorithm to use for
// n points and a polynomial of length plen.
func (p Parameters) EvaluateVecStrategy(n, plen int) EvaluateVecAlgorithm {
	if n >= p.evalFastMinPoints && plen >= p.evalFastMinLen {
		return EvaluateVecFastAlgorithm
	}
	return EvaluateVecIterAlgorithm
}

// InterpolateStrategy returns the interpolation algorithm to use for n nodes.
func (p Parameters) InterpolateStrategy(n int) InterpolateAlgorithm {
	if n >= p.interpFastMin {
		return InterpolateFastAlgorithm
	}
	return InterpolateNewtonAlgorithm
}

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalBinary returns a []byte representation of the parameter set.
// This representation corresponds to the MarshalJSON representation.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a []byte into a parameter set struct.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
