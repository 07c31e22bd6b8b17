package predictor

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/z5dlabs/z5d-go/libs/prec"
)

func closedFormEstimate(t *testing.T, n *big.Int) *big.Int {
	t.Helper()
	ctx, xerr := prec.ForMagnitude(n, false)
	require.Nil(t, xerr)

	est := &ClosedFormEstimator{C: DefaultCalibC, Kappa: DefaultCalibKappa}
	res, xerr := est.Estimate(n, ctx)
	require.Nil(t, xerr)
	require.True(t, res.Converged)
	require.Equal(t, MethodClosedForm, res.Method)
	return roundHalfUp(res.Value)
}

func Test_ClosedForm_Reference(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{2, 2},
		{5, 1},
		{17, 44},
		{100, 507},
		{1_000, 7856},
		{10_000, 104689},
		{123_456, 1633541},
		{1_000_000, 15490400},
		{1_234_567, 19402960},
		{1_000_000_000_000, 29996141811804},
	}
	for _, tc := range cases {
		got := closedFormEstimate(t, big.NewInt(tc.n))
		require.Equal(t, tc.want, got.Int64(), "n=%d", tc.n)
	}
}

func Test_ClosedForm_SmallIndices(t *testing.T) {
	// below the wheel the estimator pins to 2
	got := closedFormEstimate(t, big.NewInt(1))
	require.EqualValues(t, 2, got.Int64())
}

func Test_ClosedForm_RelativeAccuracy(t *testing.T) {
	// the calibrated pair stays within 200 ppm of the benchmark primes at
	// and beyond 1e8
	for _, s := range KnownGrid(100_000_000, 1_000_000_000_000_000_000) {
		got := closedFormEstimate(t, s.N)
		ppm := RelErrPPM(got, s.P).Abs()
		require.True(t, ppm.LessThan(decimal.NewFromInt(200)),
			"n=%s est=%s truth=%s ppm=%s", s.N, got, s.P, ppm)
	}
}

func Test_ClosedForm_EstimateMonotone(t *testing.T) {
	var prev *big.Int
	for _, n := range []int64{100, 1_000, 10_000, 123_456, 1_000_000, 1_234_567} {
		got := closedFormEstimate(t, big.NewInt(n))
		if prev != nil {
			require.True(t, got.Cmp(prev) > 0, "estimate not increasing at n=%d", n)
		}
		prev = got
	}
}

func Test_ClosedForm_BadCoefficients(t *testing.T) {
	ctx := prec.New(320)
	est := &ClosedFormEstimator{C: "not-a-number", Kappa: DefaultCalibKappa}
	_, xerr := est.Estimate(big.NewInt(1000), ctx)
	require.NotNil(t, xerr)
}
