package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/z5dlabs/z5d-go/libs/jsonx"
	"github.com/z5dlabs/z5d-go/predictor"
)

var (
	calibLo uint64
	calibHi uint64
)

func NewCalibCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calib",
		Short: "Score the correction coefficients against the reference primes",
		RunE:  handleCalib,
	}

	cmd.Flags().Uint64Var(&calibLo, "lo", 100_000_000, "lowest reference index to score")
	cmd.Flags().Uint64Var(&calibHi, "hi", 1_000_000_000_000_000_000, "highest reference index to score")
	cmd.Flags().BoolVar(&asJson, "json", false, "emit the score as JSON")
	return cmd
}

type calibOutput struct {
	C      string `json:"c"`
	Kappa  string `json:"kappa"`
	Grid   int    `json:"grid"`
	MaxPPM string `json:"max_ppm"`
	RMSPPM string `json:"rms_ppm"`
}

func handleCalib(cmd *cobra.Command, args []string) error {
	grid := predictor.KnownGrid(calibLo, calibHi)
	score, xerr := predictor.EvalPair(rootConfig.CalibC, rootConfig.CalibKappa, grid)
	if xerr != nil {
		return xerr
	}

	out := calibOutput{
		C:      rootConfig.CalibC,
		Kappa:  rootConfig.CalibKappa,
		Grid:   len(grid),
		MaxPPM: score.MaxPPM.StringFixed(4),
		RMSPPM: score.RMSPPM.StringFixed(4),
	}

	if asJson {
		bz, err := jsonx.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(bz))
		return nil
	}

	fmt.Fprintf(os.Stdout, "c=%s kappa=%s over %d reference primes: max %s ppm, rms %s ppm\n",
		out.C, out.Kappa, out.Grid, out.MaxPPM, out.RMSPPM)
	return nil
}
