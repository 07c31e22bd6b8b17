package specfun

import (
	"math/big"

	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// Li computes the logarithmic integral li(x) for x > 1 via the convergent
// series
//
//	li(x) = ln(ln x) + γ + Σ_{j≥1} (ln x)^j / (j·j!)
//
// truncated once the term magnitude falls below the context tolerance
// 10^-(digits-5).
func Li(x *big.Float, ctx prec.Context) (*big.Float, xerrors.XError) {
	one := ctx.FromInt64(1)
	if x == nil || x.Cmp(one) <= 0 {
		return nil, xerrors.ErrNumericDomain.Wrapf("li(x) requires x > 1")
	}

	lnx := ctx.Log(x)
	sum := ctx.NewFloat().Add(ctx.Log(lnx), ctx.Gamma())

	tol := ctx.Tolerance()
	maxTerms := 64 + 20*ctx.Digits()

	factorial := ctx.FromInt64(1)
	power := ctx.NewFloat().Set(lnx)
	term := ctx.NewFloat()
	for j := 1; j <= maxTerms; j++ {
		if j > 1 {
			power.Mul(power, lnx)
			factorial.Mul(factorial, ctx.FromInt64(int64(j)))
		}

		term.Quo(power, new(big.Float).Mul(ctx.FromInt64(int64(j)), factorial))
		sum.Add(sum, term)

		if new(big.Float).Abs(term).Cmp(tol) < 0 {
			return sum, nil
		}
	}
	return nil, xerrors.ErrNumericDomain.Wrapf("li series did not converge within %d terms", maxTerms)
}
