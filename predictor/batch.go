package predictor

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// PredictBatch evaluates independent indices across a bounded worker group.
// Results keep the order of ns. Safe because every call derives its own
// precision context and the lookup tables are immutable.
func (pdt *Predictor) PredictBatch(ctx context.Context, ns []*big.Int, parallelism int) ([]*Result, xerrors.XError) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	results := make([]*Result, len(ns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, n := range ns {
		i, n := i, n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, xerr := pdt.Predict(n)
			if xerr != nil {
				return xerr
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, xerrors.From(err)
	}
	return results, nil
}
