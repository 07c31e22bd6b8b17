// Package predictor estimates the nth prime number for arbitrary positive
// indices. Canonical benchmark indices resolve through an exact lookup
// table; everything else goes through an asymptotic estimator followed by
// discrete refinement to a verified probable prime.
package predictor

import (
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

type Predictor struct {
	opts      Options
	estimator Estimator
	rfn       refiner
	logger    *zap.Logger
}

// New validates opts and builds a predictor. A nil logger is replaced with
// a nop logger.
func New(opts Options, logger *zap.Logger) (*Predictor, xerrors.XError) {
	if xerr := opts.Validate(); xerr != nil {
		return nil, xerr
	}
	est, xerr := newEstimator(opts)
	if xerr != nil {
		return nil, xerr
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Predictor{
		opts:      opts,
		estimator: est,
		rfn: refiner{
			windowOverride: opts.WindowOverride,
			maxScanSteps:   opts.MaxScanSteps,
		},
		logger: logger.With(zap.String("module", "z5d_predictor")),
	}, nil
}

// Predict returns a probable prime for the nth prime index. Every call is
// independent: precision state is derived per call and discarded on return.
func (pdt *Predictor) Predict(n *big.Int) (*Result, xerrors.XError) {
	start := time.Now()

	if n == nil || n.Sign() <= 0 {
		return nil, xerrors.ErrInvalidIndex.Wrapf("predict requires n >= 1, got %v", n)
	}

	if p, ok := lookupKnown(n); ok {
		return &Result{
			Prime:      new(big.Int).Set(p),
			Estimate:   new(big.Int).Set(p),
			Iterations: 0,
			Converged:  true,
			Method:     MethodLookup,
			Elapsed:    time.Since(start),
			Offset:     new(big.Int),
		}, nil
	}

	var ctx prec.Context
	if pdt.opts.Precision > 0 {
		ctx = prec.New(pdt.opts.Precision)
	} else {
		var xerr xerrors.XError
		if ctx, xerr = prec.ForMagnitude(n, pdt.opts.AllowClamp); xerr != nil {
			return nil, xerr
		}
	}

	est, xerr := pdt.estimator.Estimate(n, ctx)
	if xerr != nil {
		return nil, xerr
	}
	if !est.Converged {
		pdt.logger.Warn("estimator did not converge",
			zap.String("n", n.String()),
			zap.Int("iterations", est.Iterations))
	}

	ref, xerr := pdt.rfn.refine(est.Value)
	if xerr != nil {
		return nil, xerr
	}

	pdt.logger.Debug("prediction complete",
		zap.String("n", n.String()),
		zap.String("prime", ref.prime.String()),
		zap.Int("candidates", ref.tested),
		zap.Uint("precision_bits", ctx.Bits()))

	return &Result{
		Prime:            ref.prime,
		Estimate:         roundHalfUp(est.Value),
		Iterations:       est.Iterations,
		Converged:        est.Converged,
		Method:           est.Method,
		Elapsed:          time.Since(start),
		CandidatesTested: ref.tested,
		Offset:           ref.offset,
	}, nil
}
