package predictor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

func Test_Newton_Reference(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{1_000_000, 15484035},
		{1_234_567, 19395201},
	}
	for _, tc := range cases {
		n := big.NewInt(tc.n)
		ctx, xerr := prec.ForMagnitude(n, false)
		require.Nil(t, xerr)

		est := NewNewtonEstimator(DefaultSeriesK, DefaultMaxIterations, DefaultTolerance)
		res, xerr := est.Estimate(n, ctx)
		require.Nil(t, xerr)
		require.True(t, res.Converged, "n=%d", tc.n)
		require.Equal(t, MethodNewton, res.Method)
		require.GreaterOrEqual(t, res.Iterations, 3, "n=%d", tc.n)
		require.LessOrEqual(t, res.Iterations, 8, "n=%d", tc.n)
		require.Equal(t, tc.want, roundHalfUp(res.Value).Int64(), "n=%d", tc.n)
	}
}

func Test_Newton_SeedDomain(t *testing.T) {
	ctx := prec.New(320)
	est := NewNewtonEstimator(DefaultSeriesK, DefaultMaxIterations, DefaultTolerance)

	_, xerr := est.Estimate(big.NewInt(1), ctx)
	require.NotNil(t, xerr)
	require.True(t, xerr.Contains(xerrors.ErrNumericDomain))
}

func Test_Newton_DerivativeZero(t *testing.T) {
	ctx := prec.New(320)
	est := NewNewtonEstimator(DefaultSeriesK, DefaultMaxIterations, DefaultTolerance)
	est.RPrime = func(x *big.Float, K int, pc prec.Context) (*big.Float, xerrors.XError) {
		return pc.NewFloat(), nil
	}

	_, xerr := est.Estimate(big.NewInt(1000), ctx)
	require.NotNil(t, xerr)
	require.True(t, xerr.Contains(xerrors.ErrDerivativeZero))
}

func Test_Newton_NonConvergence(t *testing.T) {
	// one iteration cannot reach a 1e-50 relative gap from the seed
	ctx := prec.New(320)
	est := NewNewtonEstimator(DefaultSeriesK, 1, DefaultTolerance)

	res, xerr := est.Estimate(big.NewInt(1_000_000), ctx)
	require.Nil(t, xerr)
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
}

func Test_DusartSeed_NearTruth(t *testing.T) {
	// the 3-term seed should land within 0.1% of the exact prime at 1e6
	n := big.NewInt(1_000_000)
	ctx, xerr := prec.ForMagnitude(n, false)
	require.Nil(t, xerr)

	seed, xerr := dusartSeed(n, ctx)
	require.Nil(t, xerr)

	truth := new(big.Float).SetPrec(ctx.Bits()).SetInt64(15485863)
	gap := new(big.Float).Sub(seed, truth)
	gap.Abs(gap).Quo(gap, truth)
	bound := new(big.Float).SetFloat64(1e-3)
	require.True(t, gap.Cmp(bound) < 0, "relative gap %s", gap.Text('g', 5))
}
