package predictor

import (
	"math/big"
	"time"

	"github.com/z5dlabs/z5d-go/types/xerrors"
)

const (
	MethodLookup     = "lookup"
	MethodClosedForm = "closed_form"
	MethodNewton     = "newton"
)

// Calibration constants for the closed-form d/e correction terms, fitted
// against the reference prime table. The alternative legacy pair
// (c=-0.00247, kappa=0.04449) drifts past 1000 ppm above 1e12 and is not
// used.
const (
	DefaultCalibC     = "-0.00016667"
	DefaultCalibKappa = "0.06500"
)

const (
	DefaultSeriesK       = 10
	DefaultMaxIterations = 10
	DefaultTolerance     = "1e-50"
	DefaultMaxScanSteps  = 1 << 20
)

// Options configures a Predictor. The zero value is not usable, start from
// DefaultOptions.
type Options struct {
	// Method selects the estimator: MethodClosedForm or MethodNewton.
	Method string

	// Precision overrides the derived working precision (bits). 0 = derive
	// from magnitude.
	Precision uint

	// AllowClamp clamps the working precision to the supported cap instead
	// of failing when the magnitude is beyond the band table.
	AllowClamp bool

	// SeriesK is the number of terms of the R(x) series (Newton only).
	SeriesK int

	// MaxIterations bounds the Newton iteration count.
	MaxIterations int

	// Tolerance is the relative Newton stop tolerance, as a decimal string.
	Tolerance string

	// CalibC and CalibKappa are the closed-form correction coefficients.
	CalibC     string
	CalibKappa string

	// WindowOverride replaces the derived refinement window size when > 0.
	WindowOverride int

	// MaxScanSteps bounds the forward fallback scan after the window is
	// exhausted. 0 disables the fallback entirely.
	MaxScanSteps int
}

func DefaultOptions() Options {
	return Options{
		Method:        MethodClosedForm,
		SeriesK:       DefaultSeriesK,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		CalibC:        DefaultCalibC,
		CalibKappa:    DefaultCalibKappa,
		MaxScanSteps:  DefaultMaxScanSteps,
	}
}

// Validate checks opts for use with New.
func (opts Options) Validate() xerrors.XError {
	switch opts.Method {
	case MethodClosedForm, MethodNewton:
	default:
		return xerrors.ErrInvalidConfig.Wrapf("unknown method %q", opts.Method)
	}
	if opts.SeriesK < 1 {
		return xerrors.ErrInvalidConfig.Wrapf("series depth K must be >= 1, got %d", opts.SeriesK)
	}
	if opts.MaxIterations < 1 {
		return xerrors.ErrInvalidConfig.Wrapf("max iterations must be >= 1, got %d", opts.MaxIterations)
	}
	if opts.MaxScanSteps < 0 {
		return xerrors.ErrInvalidConfig.Wrapf("scan step cap must be >= 0, got %d", opts.MaxScanSteps)
	}
	return nil
}

// Result is the outcome of a single prediction.
type Result struct {
	// Prime is the predicted probable prime.
	Prime *big.Int

	// Estimate is the rounded continuous estimate the refinement started
	// from. Equal to Prime on the lookup path.
	Estimate *big.Int

	// Iterations is the estimator iteration count (0 on the lookup path).
	Iterations int

	// Converged reports whether the estimator met its stop condition.
	// False is a soft signal, not an error.
	Converged bool

	// Method is one of MethodLookup, MethodClosedForm, MethodNewton.
	Method string

	// Elapsed is the wall time of the whole call.
	Elapsed time.Duration

	// CandidatesTested counts primality candidates examined during
	// refinement.
	CandidatesTested int

	// Offset is Prime - Estimate.
	Offset *big.Int
}
