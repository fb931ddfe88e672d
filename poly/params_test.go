package poly

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arbpoly/arbpoly/ball"
)

func TestParameters(t *testing.T) {

	t.Run("Literal", func(t *testing.T) {

		params, err := NewParametersFromLiteral(ParametersLiteral{})
		require.NoError(t, err)
		require.True(t, cmp.Equal(DefaultParametersLiteral, params.ParametersLiteral()))

		def := DefaultParameters()
		require.True(t, params.Equal(&def))

		params, err = NewParametersFromLiteral(ParametersLiteral{ComposePrecRatio: 17})
		require.NoError(t, err)
		require.Equal(t, 17, params.ComposePrecRatio())
		require.Equal(t, DefaultComposeDivConquerMinLen1, params.ComposeDivConquerMinLen1())
		require.False(t, params.Equal(&def))

		_, err = NewParametersFromLiteral(ParametersLiteral{EvaluateVecFastMinLen: -1})
		require.Error(t, err)
	})

	t.Run("Marshalling", func(t *testing.T) {

		params, err := NewParametersFromLiteral(ParametersLiteral{
			ComposeDivConquerMinLen1: 3,
			ComposeDivConquerMinLen2: 4,
			ComposePrecRatio:         5,
			EvaluateVecFastMinPoints: 6,
			EvaluateVecFastMinLen:    7,
			InterpolateFastMinPoints: 8,
		})
		require.NoError(t, err)

		data, err := params.MarshalBinary()
		require.NoError(t, err)

		var paramsNew Parameters
		require.NoError(t, paramsNew.UnmarshalBinary(data))
		require.True(t, params.Equal(&paramsNew))

		data, err = json.Marshal(params)
		require.NoError(t, err)

		var paramsJSON Parameters
		require.NoError(t, json.Unmarshal(data, &paramsJSON))
		require.True(t, params.Equal(&paramsJSON))

		// missing fields take their default value
		var paramsPartial Parameters
		require.NoError(t, json.Unmarshal([]byte(`{"InterpolateFastMinPoints": 12}`), &paramsPartial))
		require.Equal(t, 12, paramsPartial.InterpolateFastMinPoints())
		require.Equal(t, DefaultEvaluateVecFastMinPoints, paramsPartial.EvaluateVecFastMinPoints())

		require.Error(t, paramsPartial.UnmarshalJSON([]byte(`{"ComposePrecRatio": -3}`)))
	})

	t.Run("Strategy", func(t *testing.T) {

		params := DefaultParameters()

		require.Equal(t, ComposeDivConquerAlgorithm, params.ComposeStrategy(8, 2, 53))
		require.Equal(t, ComposeHornerAlgorithm, params.ComposeStrategy(7, 2, 53))
		require.Equal(t, ComposeHornerAlgorithm, params.ComposeStrategy(8, 1, 53))
		require.Equal(t, ComposeDivConquerAlgorithm, params.ComposeStrategy(8, 2, 8*DefaultComposePrecRatio))
		require.Equal(t, ComposeHornerAlgorithm, params.ComposeStrategy(8, 2, 8*DefaultComposePrecRatio+1))

		require.Equal(t, EvaluateVecFastAlgorithm, params.EvaluateVecStrategy(32, 32))
		require.Equal(t, EvaluateVecIterAlgorithm, params.EvaluateVecStrategy(31, 32))
		require.Equal(t, EvaluateVecIterAlgorithm, params.EvaluateVecStrategy(32, 31))

		require.Equal(t, InterpolateFastAlgorithm, params.InterpolateStrategy(64))
		require.Equal(t, InterpolateNewtonAlgorithm, params.InterpolateStrategy(63))

		require.Equal(t, "divconquer", ComposeDivConquerAlgorithm.String())
		require.Equal(t, "iter", EvaluateVecIterAlgorithm.String())
		require.Equal(t, "newton", InterpolateNewtonAlgorithm.String())
	})
}

func TestEvaluator(t *testing.T) {

	// thresholds of one select the subproduct-tree and divide-and-conquer algorithms
	fast, err := NewParametersFromLiteral(ParametersLiteral{
		ComposeDivConquerMinLen1: 1,
		ComposeDivConquerMinLen2: 1,
		EvaluateVecFastMinPoints: 1,
		EvaluateVecFastMinLen:    1,
		InterpolateFastMinPoints: 1,
	})
	require.NoError(t, err)

	for _, params := range []Parameters{DefaultParameters(), fast} {

		eval := NewEvaluator(params)
		require.True(t, eval.GetParameters().Equal(&params))

		for _, prec := range testPrecs {

			t.Run(testString("Evaluator", prec), func(t *testing.T) {

				s := newTestSampler(t)

				n := 40

				p, pq := randIntPoly(s, n, 12)
				q, qq := randIntPoly(s, 3, 12)

				require.True(t, eval.Compose(new(Poly), p, q, prec).ContainsRats(ratCompose(pq, qq)))

				xs := make([]ball.Ball, n)
				ys := make([]ball.Ball, n)
				for i := range xs {
					x := big.NewRat(int64(i-n/2), 1)
					xs[i] = ball.NewInt(int64(i - n/2))
					ys[i] = ball.NewBigInt(ratEval(pq, x).Num())
				}

				values := eval.EvaluateVec(p, xs, prec)
				for i := range values {
					require.True(t, values[i].Contains(&ys[i]))
				}

				res, err := eval.Interpolate(xs, ys, prec)
				require.NoError(t, err)
				require.True(t, res.ContainsRats(pq))

				xs[1] = xs[0]
				_, err = eval.Interpolate(xs, ys, prec)
				require.True(t, errors.Is(err, ErrDuplicateNodes))
			})
		}
	}

	eval := NewEvaluator(DefaultParameters()).WithParameters(fast)
	require.True(t, eval.GetParameters().Equal(&fast))
}
