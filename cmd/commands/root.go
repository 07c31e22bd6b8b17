package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cfg "github.com/z5dlabs/z5d-go/cmd/config"
)

var (
	rootConfig = cfg.DefaultConfig()
	rootLogger = zap.NewNop()

	configFile string
)

var RootCmd = &cobra.Command{
	Use:   "z5d",
	Short: "Estimate and verify the nth prime number",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		v.SetEnvPrefix("Z5D")
		v.AutomaticEnv()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		c, xerr := cfg.Load(v, configFile)
		if xerr != nil {
			return xerr
		}
		rootConfig = c

		logger, err := newLogger(c.LogLevel)
		if err != nil {
			return err
		}
		rootLogger = logger
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (toml/yaml/json)")
	RootCmd.PersistentFlags().String("method", rootConfig.Method, "estimator: closed_form or newton")
	RootCmd.PersistentFlags().Uint("precision", rootConfig.Precision, "working precision in bits (0 = derive from magnitude)")
	RootCmd.PersistentFlags().Bool("allow_clamp", rootConfig.AllowClamp, "clamp precision to the supported cap instead of failing")
	RootCmd.PersistentFlags().Int("series_k", rootConfig.SeriesK, "series depth of the prime-counting approximation")
	RootCmd.PersistentFlags().Int("max_iterations", rootConfig.MaxIterations, "newton iteration cap")
	RootCmd.PersistentFlags().String("tolerance", rootConfig.Tolerance, "relative newton stop tolerance")
	RootCmd.PersistentFlags().String("calib_c", rootConfig.CalibC, "closed-form d-term coefficient")
	RootCmd.PersistentFlags().String("calib_kappa", rootConfig.CalibKappa, "closed-form e-term coefficient")
	RootCmd.PersistentFlags().Int("max_scan_steps", rootConfig.MaxScanSteps, "forward scan cap after the refinement window")
	RootCmd.PersistentFlags().String("log_level", rootConfig.LogLevel, "debug, info, warn or error")
	RootCmd.PersistentFlags().Int("parallelism", rootConfig.Parallelism, "batch worker count (0 = NumCPU)")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
