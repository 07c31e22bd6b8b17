package predictor

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// Sample is one ground-truth pair (index, exact nth prime) used to score
// calibration coefficients.
type Sample struct {
	N *big.Int
	P *big.Int
}

// PairScore summarizes the closed-form error of one coefficient pair over a
// ground-truth grid, in parts per million.
type PairScore struct {
	MaxPPM decimal.Decimal
	RMSPPM decimal.Decimal
}

var ppmScale = decimal.NewFromInt(1_000_000)

// RelErrPPM returns (est - truth)/truth scaled to parts per million.
func RelErrPPM(est, truth *big.Int) decimal.Decimal {
	e := decimal.NewFromBigInt(est, 0)
	tr := decimal.NewFromBigInt(truth, 0)
	return e.Sub(tr).Div(tr).Mul(ppmScale)
}

// EvalPair scores a (c, kappa) coefficient pair against a ground-truth grid.
// Pairs whose estimates are not monotone over increasing indices are
// rejected; the grid must be sorted by N ascending.
func EvalPair(c, kappa string, grid []Sample) (*PairScore, xerrors.XError) {
	if len(grid) == 0 {
		return nil, xerrors.ErrInvalidConfig.Wrapf("empty calibration grid")
	}

	est := &ClosedFormEstimator{C: c, Kappa: kappa}

	maxAbs := decimal.Zero
	sumSq := decimal.Zero
	var prevEst *big.Int
	for _, s := range grid {
		ctx, xerr := prec.ForMagnitude(s.N, false)
		if xerr != nil {
			return nil, xerr
		}
		res, xerr := est.Estimate(s.N, ctx)
		if xerr != nil {
			return nil, xerr
		}
		val := roundHalfUp(res.Value)

		if prevEst != nil && val.Cmp(prevEst) < 0 {
			return nil, xerrors.ErrInvalidConfig.Wrapf(
				"coefficients (%s, %s) break estimate monotonicity at n=%s", c, kappa, s.N)
		}
		prevEst = val

		ppm := RelErrPPM(val, s.P).Abs()
		if ppm.GreaterThan(maxAbs) {
			maxAbs = ppm
		}
		sumSq = sumSq.Add(ppm.Mul(ppm))
	}

	count := decimal.NewFromInt(int64(len(grid)))
	rms := sumSq.Div(count)
	// decimal has no square root; go through a precision context.
	pctx := prec.New(prec.FloorBits)
	rmsF, xerr := pctx.Parse(rms.String())
	if xerr != nil {
		return nil, xerr
	}
	rmsD, err := decimal.NewFromString(pctx.Sqrt(rmsF).Text('f', 12))
	if err != nil {
		return nil, xerrors.From(err)
	}

	return &PairScore{MaxPPM: maxAbs, RMSPPM: rmsD}, nil
}

// KnownGrid returns the canonical ground-truth samples with indices in
// [lo, hi], sorted ascending. Useful as an EvalPair grid.
func KnownGrid(lo, hi uint64) []Sample {
	var out []Sample
	n := uint64(1)
	for k := 0; k < 19; k++ {
		if n >= lo && n <= hi {
			out = append(out, Sample{
				N: new(big.Int).SetUint64(n),
				P: new(big.Int).Set(knownPrimes[n]),
			})
		}
		n *= 10
	}
	return out
}
