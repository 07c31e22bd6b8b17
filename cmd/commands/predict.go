package commands

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/z5dlabs/z5d-go/libs/jsonx"
	"github.com/z5dlabs/z5d-go/predictor"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

var asJson bool

func NewPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict <index> [<index> ...]",
		Short: "Predict the nth prime for one or more indices",
		Long: `Predict the nth prime for one or more indices.

Indices are decimal integers and may use the power form a^b, e.g.

  z5d predict 1000000
  z5d predict 10^12 10^15`,
		Args: cobra.MinimumNArgs(1),
		RunE: handlePredict,
	}

	cmd.Flags().BoolVar(&asJson, "json", false, "emit results as a JSON array")
	return cmd
}

// predictOutput is the wire form of one prediction. Integers are strings so
// arbitrary magnitudes survive any JSON consumer.
type predictOutput struct {
	N          string `json:"n"`
	Prime      string `json:"prime"`
	Estimate   string `json:"estimate"`
	Method     string `json:"method"`
	Iterations int    `json:"iterations"`
	Converged  bool   `json:"converged"`
	Candidates int    `json:"candidates"`
	Offset     string `json:"offset"`
	ElapsedMs  int64  `json:"elapsed_ms"`
}

func handlePredict(cmd *cobra.Command, args []string) error {
	ns := make([]*big.Int, len(args))
	for i, arg := range args {
		n, xerr := parseIndex(arg)
		if xerr != nil {
			return xerr
		}
		ns[i] = n
	}

	pdt, xerr := predictor.New(rootConfig.PredictorOptions(), rootLogger)
	if xerr != nil {
		return xerr
	}

	results, xerr := pdt.PredictBatch(cmd.Context(), ns, rootConfig.Parallelism)
	if xerr != nil {
		return xerr
	}

	outs := make([]predictOutput, len(results))
	for i, res := range results {
		outs[i] = predictOutput{
			N:          ns[i].String(),
			Prime:      res.Prime.String(),
			Estimate:   res.Estimate.String(),
			Method:     res.Method,
			Iterations: res.Iterations,
			Converged:  res.Converged,
			Candidates: res.CandidatesTested,
			Offset:     res.Offset.String(),
			ElapsedMs:  res.Elapsed.Milliseconds(),
		}
	}

	if asJson {
		bz, err := jsonx.MarshalIndent(outs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(bz))
		return nil
	}

	for _, out := range outs {
		fmt.Fprintf(os.Stdout, "p(%s) = %s  (%s, estimate %s, offset %s, %d candidates)\n",
			out.N, out.Prime, out.Method, out.Estimate, out.Offset, out.Candidates)
	}
	return nil
}

// parseIndex parses a decimal index, accepting the power form a^b.
func parseIndex(s string) (*big.Int, xerrors.XError) {
	if base, exp, found := strings.Cut(s, "^"); found {
		b, ok := new(big.Int).SetString(base, 10)
		if !ok {
			return nil, xerrors.ErrInvalidIndex.Wrapf("invalid base %q in %q", base, s)
		}
		e, ok := new(big.Int).SetString(exp, 10)
		if !ok || e.Sign() < 0 || !e.IsInt64() || e.Int64() > 10_000 {
			return nil, xerrors.ErrInvalidIndex.Wrapf("invalid exponent %q in %q", exp, s)
		}
		if b.Sign() <= 0 {
			return nil, xerrors.ErrInvalidIndex.Wrapf("base must be positive in %q", s)
		}
		return new(big.Int).Exp(b, e, nil), nil
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, xerrors.ErrInvalidIndex.Wrapf("invalid index %q", s)
	}
	if n.Sign() <= 0 {
		return nil, xerrors.ErrInvalidIndex.Wrapf("index must be >= 1, got %q", s)
	}
	return n, nil
}
