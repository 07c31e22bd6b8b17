package specfun

import (
	"math/big"

	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// RiemannR computes the Riemann prime-counting approximation
//
//	R(x) = Σ_{k=1..K} μ(k)/k · li(x^{1/k})
//
// for x > 1 and K ≥ 1, skipping terms with μ(k) = 0.
func RiemannR(x *big.Float, K int, ctx prec.Context) (*big.Float, xerrors.XError) {
	if x == nil || x.Cmp(ctx.FromInt64(1)) <= 0 {
		return nil, xerrors.ErrNumericDomain.Wrapf("riemannR requires x > 1")
	}
	if K < 1 {
		return nil, xerrors.ErrInvalidConfig.Wrapf("riemannR requires K >= 1, got %d", K)
	}

	sum := ctx.NewFloat()
	for k := 1; k <= K; k++ {
		mu := Mobius(k)
		if mu == 0 {
			continue
		}

		// x^(1/k)
		exponent := ctx.NewFloat().Quo(ctx.FromInt64(1), ctx.FromInt64(int64(k)))
		root := ctx.Pow(x, exponent)

		liVal, xerr := Li(root, ctx)
		if xerr != nil {
			return nil, xerr
		}

		term := ctx.NewFloat().Quo(ctx.FromInt64(int64(mu)), ctx.FromInt64(int64(k)))
		term.Mul(term, liVal)
		sum.Add(sum, term)
	}
	return sum, nil
}

// RiemannRPrime computes the derivative
//
//	R'(x) = (1/ln x) · Σ_{k=1..K} μ(k)/k · x^{1/k-1}
//
// used by the Newton solver when inverting R(x) = n.
func RiemannRPrime(x *big.Float, K int, ctx prec.Context) (*big.Float, xerrors.XError) {
	if x == nil || x.Cmp(ctx.FromInt64(1)) <= 0 {
		return nil, xerrors.ErrNumericDomain.Wrapf("riemannR' requires x > 1")
	}
	if K < 1 {
		return nil, xerrors.ErrInvalidConfig.Wrapf("riemannR' requires K >= 1, got %d", K)
	}

	lnx := ctx.Log(x)
	sum := ctx.NewFloat()
	for k := 1; k <= K; k++ {
		mu := Mobius(k)
		if mu == 0 {
			continue
		}

		// x^(1/k - 1)
		exponent := ctx.NewFloat().Quo(ctx.FromInt64(1), ctx.FromInt64(int64(k)))
		exponent.Sub(exponent, ctx.FromInt64(1))
		pow := ctx.Pow(x, exponent)

		term := ctx.NewFloat().Quo(ctx.FromInt64(int64(mu)), ctx.FromInt64(int64(k)))
		term.Mul(term, pow)
		sum.Add(sum, term)
	}
	return sum.Quo(sum, lnx), nil
}
