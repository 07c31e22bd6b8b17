package predictor

import (
	"math/big"

	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// ClosedFormEstimator evaluates the calibrated closed-form expansion
//
//	pnt    = n·(L + L2 - 1 + (L2-2)/L)         L = ln n, L2 = ln ln n
//	d_term = ((ln pnt)/e^4)^2 · pnt · c
//	e_term = pnt^(-1/3) · pnt · κ*
//
// and returns pnt + d_term + e_term. The correction coefficients (c, κ*)
// are decimal strings so they parse exactly at any working precision.
type ClosedFormEstimator struct {
	C     string
	Kappa string
}

func (est *ClosedFormEstimator) Estimate(n *big.Int, ctx prec.Context) (*EstimateResult, xerrors.XError) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return &EstimateResult{
			Value:      ctx.FromInt64(2),
			Method:     MethodClosedForm,
			Iterations: 1,
			Converged:  true,
		}, nil
	}

	c, xerr := ctx.Parse(est.C)
	if xerr != nil {
		return nil, xerr
	}
	kappa, xerr := ctx.Parse(est.Kappa)
	if xerr != nil {
		return nil, xerr
	}

	dn := ctx.FromInt(n)
	lnN := ctx.Log(dn)
	lnLnN := ctx.Log(lnN)
	one := ctx.FromInt64(1)
	two := ctx.FromInt64(2)

	// pnt = n*(L + L2 - 1 + (L2-2)/L)
	bracket := ctx.NewFloat().Add(lnN, lnLnN)
	bracket.Sub(bracket, one)
	corr := ctx.NewFloat().Sub(lnLnN, two)
	corr.Quo(corr, lnN)
	bracket.Add(bracket, corr)
	pnt := ctx.NewFloat().Mul(dn, bracket)
	if pnt.Sign() <= 0 {
		pnt.Set(dn)
	}

	eFourth := ctx.Exp(ctx.FromInt64(4))

	// d_term = ((ln pnt)/e^4)^2 * pnt * c, only defined for ln pnt > 0
	dTerm := ctx.NewFloat()
	lnPnt := ctx.Log(pnt)
	if lnPnt.Sign() > 0 {
		ratio := ctx.NewFloat().Quo(lnPnt, eFourth)
		dTerm.Mul(ratio, ratio)
		dTerm.Mul(dTerm, pnt)
		dTerm.Mul(dTerm, c)
	}

	// e_term = pnt^(-1/3) * pnt * kappa
	eTerm := ctx.NewFloat()
	if pnt.Sign() > 0 {
		exponent := ctx.NewFloat().Quo(ctx.FromInt64(-1), ctx.FromInt64(3))
		eTerm.Set(ctx.Pow(pnt, exponent))
		eTerm.Mul(eTerm, pnt)
		eTerm.Mul(eTerm, kappa)
	}

	val := ctx.NewFloat().Add(pnt, dTerm)
	val.Add(val, eTerm)
	if val.Sign() <= 0 {
		val.Set(pnt)
	}

	return &EstimateResult{
		Value:      val,
		Method:     MethodClosedForm,
		Iterations: 1,
		Converged:  true,
	}, nil
}
