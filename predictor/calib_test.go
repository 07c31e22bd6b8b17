package predictor

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/z5dlabs/z5d-go/types/xerrors"
)

func Test_EvalPair_DefaultCoefficients(t *testing.T) {
	grid := KnownGrid(100_000_000, 1_000_000_000_000_000_000)
	require.Len(t, grid, 11)

	score, xerr := EvalPair(DefaultCalibC, DefaultCalibKappa, grid)
	require.Nil(t, xerr)
	require.True(t, score.MaxPPM.LessThan(decimal.NewFromInt(200)),
		"max ppm %s", score.MaxPPM)
	require.True(t, score.RMSPPM.LessThanOrEqual(score.MaxPPM))
	require.True(t, score.RMSPPM.GreaterThan(decimal.Zero))
}

func Test_EvalPair_RejectsNonMonotone(t *testing.T) {
	// a wildly negative c drags large estimates below small ones
	grid := []Sample{
		{N: big.NewInt(1_000_000), P: big.NewInt(15485863)},
		{N: big.NewInt(2_000_000), P: big.NewInt(32452843)},
	}

	_, xerr := EvalPair("-9.9", "0.065", grid)
	require.NotNil(t, xerr)
	require.True(t, xerr.Contains(xerrors.ErrInvalidConfig))
}

func Test_EvalPair_EmptyGrid(t *testing.T) {
	_, xerr := EvalPair(DefaultCalibC, DefaultCalibKappa, nil)
	require.NotNil(t, xerr)
	require.True(t, xerr.Contains(xerrors.ErrInvalidConfig))
}

func Test_RelErrPPM(t *testing.T) {
	ppm := RelErrPPM(big.NewInt(1_000_100), big.NewInt(1_000_000))
	require.True(t, ppm.Equal(decimal.NewFromInt(100)))

	ppm = RelErrPPM(big.NewInt(999_900), big.NewInt(1_000_000))
	require.True(t, ppm.Equal(decimal.NewFromInt(-100)))
}

func Test_KnownGrid_Bounds(t *testing.T) {
	full := KnownGrid(1, 1_000_000_000_000_000_000)
	require.Len(t, full, 19)
	for i := 1; i < len(full); i++ {
		require.True(t, full[i].N.Cmp(full[i-1].N) > 0)
		require.True(t, full[i].P.Cmp(full[i-1].P) > 0)
	}

	one := KnownGrid(1_000_000, 1_000_000)
	require.Len(t, one, 1)
	require.EqualValues(t, 15485863, one[0].P.Int64())

	require.Empty(t, KnownGrid(2, 9))
}
