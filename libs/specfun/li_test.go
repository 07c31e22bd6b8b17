package specfun

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/z5dlabs/z5d-go/libs/prec"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

func floatNear(t *testing.T, got *big.Float, want string, tol string, ctx prec.Context) {
	t.Helper()
	w, xerr := ctx.Parse(want)
	require.Nil(t, xerr)
	b, xerr := ctx.Parse(tol)
	require.Nil(t, xerr)

	diff := new(big.Float).Sub(got, w)
	diff.Abs(diff)
	require.True(t, diff.Cmp(b) < 0, "got %s, want %s +- %s", got.Text('g', 30), want, tol)
}

func Test_Li_KnownValues(t *testing.T) {
	ctx := prec.New(prec.FloorBits)

	li2, xerr := Li(ctx.FromInt64(2), ctx)
	require.Nil(t, xerr)
	floatNear(t, li2, "1.04516378011749278484458888919", "1e-25", ctx)

	li10, xerr := Li(ctx.FromInt64(10), ctx)
	require.Nil(t, xerr)
	floatNear(t, li10, "6.16559950478729793752298175266", "1e-25", ctx)
}

func Test_Li_Monotone(t *testing.T) {
	ctx := prec.New(prec.FloorBits)

	prev, xerr := Li(ctx.FromInt64(2), ctx)
	require.Nil(t, xerr)
	for _, v := range []int64{10, 100, 10_000, 1_000_000} {
		cur, xerr := Li(ctx.FromInt64(v), ctx)
		require.Nil(t, xerr)
		require.True(t, cur.Cmp(prev) > 0, "li not increasing at %d", v)
		prev = cur
	}
}

func Test_Li_Domain(t *testing.T) {
	ctx := prec.New(prec.FloorBits)

	for _, v := range []int64{-3, 0, 1} {
		_, xerr := Li(ctx.FromInt64(v), ctx)
		require.NotNil(t, xerr)
		require.True(t, xerr.Equal(xerrors.ErrNumericDomain))
	}
	_, xerr := Li(nil, ctx)
	require.NotNil(t, xerr)
}
