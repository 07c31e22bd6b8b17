package predictor

import (
	"math/big"

	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/libs/specfun"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// RFunc evaluates a prime-counting approximation (or its derivative) at x
// with series depth K.
type RFunc func(x *big.Float, K int, ctx prec.Context) (*big.Float, xerrors.XError)

// NewtonEstimator inverts R(x) = n by Newton-Raphson iteration, seeded with
// the 3-term Dusart/Cipolla expansion. The R and R' evaluators are fields so
// degenerate behavior can be substituted in tests.
type NewtonEstimator struct {
	K             int
	MaxIterations int
	Tolerance     string

	R      RFunc
	RPrime RFunc
}

func NewNewtonEstimator(k, maxIterations int, tolerance string) *NewtonEstimator {
	return &NewtonEstimator{
		K:             k,
		MaxIterations: maxIterations,
		Tolerance:     tolerance,
		R:             specfun.RiemannR,
		RPrime:        specfun.RiemannRPrime,
	}
}

// dusartSeed computes the 3-term initializer
//
//	x0 = n·(L + L2 - 1 + (L2-2)/L - (L2²-6·L2+11)/(2·L²))
//
// with L = ln n, L2 = ln ln n. Requires n >= 2.
func dusartSeed(n *big.Int, ctx prec.Context) (*big.Float, xerrors.XError) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return nil, xerrors.ErrNumericDomain.Wrapf("Dusart initializer requires n >= 2, got %s", n)
	}

	dn := ctx.FromInt(n)
	lnN := ctx.Log(dn)
	lnLnN := ctx.Log(lnN)

	lnNSq := ctx.NewFloat().Mul(lnN, lnN)
	lnLnNSq := ctx.NewFloat().Mul(lnLnN, lnLnN)

	// L + L2 - 1
	sum := ctx.NewFloat().Add(lnN, lnLnN)
	sum.Sub(sum, ctx.FromInt64(1))

	// (L2 - 2)/L
	term2 := ctx.NewFloat().Sub(lnLnN, ctx.FromInt64(2))
	term2.Quo(term2, lnN)
	sum.Add(sum, term2)

	// -(L2^2 - 6*L2 + 11)/(2*L^2)
	num := ctx.NewFloat().Mul(ctx.FromInt64(6), lnLnN)
	num.Sub(lnLnNSq, num)
	num.Add(num, ctx.FromInt64(11))
	den := ctx.NewFloat().Mul(ctx.FromInt64(2), lnNSq)
	term3 := ctx.NewFloat().Quo(num, den)
	sum.Sub(sum, term3)

	return sum.Mul(dn, sum), nil
}

func (est *NewtonEstimator) Estimate(n *big.Int, ctx prec.Context) (*EstimateResult, xerrors.XError) {
	x, xerr := dusartSeed(n, ctx)
	if xerr != nil {
		return nil, xerr
	}

	tol, xerr := ctx.Parse(est.Tolerance)
	if xerr != nil {
		return nil, xerr
	}

	target := ctx.FromInt(n)
	iterations := 0
	converged := false
	for i := 0; i < est.MaxIterations; i++ {
		iterations++

		rx, xerr := est.R(x, est.K, ctx)
		if xerr != nil {
			return nil, xerr
		}
		rpx, xerr := est.RPrime(x, est.K, ctx)
		if xerr != nil {
			return nil, xerr
		}
		if rpx.Sign() == 0 {
			return nil, xerrors.ErrDerivativeZero.Wrapf("R'(x)=0 at x=%s", x.Text('g', 20))
		}

		// x_{i+1} = x_i - (R(x)-n)/R'(x)
		delta := ctx.NewFloat().Sub(rx, target)
		delta.Quo(delta, rpx)
		next := ctx.NewFloat().Sub(x, delta)

		// relative stop condition |x_{i+1}-x_i| < tol*|x_{i+1}|
		gap := ctx.NewFloat().Sub(next, x)
		gap.Abs(gap)
		bound := ctx.NewFloat().Abs(next)
		bound.Mul(bound, tol)

		x = next
		if gap.Cmp(bound) < 0 {
			converged = true
			break
		}
	}

	return &EstimateResult{
		Value:      x,
		Method:     MethodNewton,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}
