package predictor

import (
	"math/big"

	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// EstimateResult is a continuous estimate of p_n tagged with the estimator
// variant that produced it.
type EstimateResult struct {
	Value      *big.Float
	Method     string
	Iterations int
	Converged  bool
}

// Estimator produces a continuous estimate of the nth prime under an
// explicit precision context. Implementations must be stateless across
// calls.
type Estimator interface {
	Estimate(n *big.Int, ctx prec.Context) (*EstimateResult, xerrors.XError)
}

func newEstimator(opts Options) (Estimator, xerrors.XError) {
	switch opts.Method {
	case MethodClosedForm:
		return &ClosedFormEstimator{C: opts.CalibC, Kappa: opts.CalibKappa}, nil
	case MethodNewton:
		return NewNewtonEstimator(opts.SeriesK, opts.MaxIterations, opts.Tolerance), nil
	default:
		return nil, xerrors.ErrInvalidConfig.Wrapf("unknown method %q", opts.Method)
	}
}

// roundHalfUp converts a non-negative continuous value to the nearest
// integer, rounding .5 upward.
func roundHalfUp(x *big.Float) *big.Int {
	half := new(big.Float).SetPrec(x.Prec()).SetFloat64(0.5)
	shifted := new(big.Float).SetPrec(x.Prec()).Add(x, half)
	z, _ := shifted.Int(nil)
	return z
}
