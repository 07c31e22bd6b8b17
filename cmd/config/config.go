package config

import (
	"github.com/spf13/viper"

	"github.com/z5dlabs/z5d-go/predictor"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// Config carries the CLI-facing predictor settings. Values resolve in the
// usual order: defaults, then config file, then environment, then flags.
type Config struct {
	Method        string `mapstructure:"method"`
	Precision     uint   `mapstructure:"precision"`
	AllowClamp    bool   `mapstructure:"allow_clamp"`
	SeriesK       int    `mapstructure:"series_k"`
	MaxIterations int    `mapstructure:"max_iterations"`
	Tolerance     string `mapstructure:"tolerance"`
	CalibC        string `mapstructure:"calib_c"`
	CalibKappa    string `mapstructure:"calib_kappa"`
	MaxScanSteps  int    `mapstructure:"max_scan_steps"`

	LogLevel    string `mapstructure:"log_level"`
	Parallelism int    `mapstructure:"parallelism"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:        predictor.MethodClosedForm,
		SeriesK:       predictor.DefaultSeriesK,
		MaxIterations: predictor.DefaultMaxIterations,
		Tolerance:     predictor.DefaultTolerance,
		CalibC:        predictor.DefaultCalibC,
		CalibKappa:    predictor.DefaultCalibKappa,
		MaxScanSteps:  predictor.DefaultMaxScanSteps,
		LogLevel:      "info",
	}
}

// SetDefaults registers the default values on v so partial config files and
// environment overrides merge cleanly.
func (c *Config) SetDefaults(v *viper.Viper) {
	v.SetDefault("method", c.Method)
	v.SetDefault("precision", c.Precision)
	v.SetDefault("allow_clamp", c.AllowClamp)
	v.SetDefault("series_k", c.SeriesK)
	v.SetDefault("max_iterations", c.MaxIterations)
	v.SetDefault("tolerance", c.Tolerance)
	v.SetDefault("calib_c", c.CalibC)
	v.SetDefault("calib_kappa", c.CalibKappa)
	v.SetDefault("max_scan_steps", c.MaxScanSteps)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("parallelism", c.Parallelism)
}

// Load resolves the final configuration from v, optionally merging the file
// at path first.
func Load(v *viper.Viper, path string) (*Config, xerrors.XError) {
	cfg := DefaultConfig()
	cfg.SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, xerrors.ErrInvalidConfig.Wrap(err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, xerrors.ErrInvalidConfig.Wrap(err)
	}
	return cfg, nil
}

// PredictorOptions converts the CLI config into engine options.
func (c *Config) PredictorOptions() predictor.Options {
	return predictor.Options{
		Method:        c.Method,
		Precision:     c.Precision,
		AllowClamp:    c.AllowClamp,
		SeriesK:       c.SeriesK,
		MaxIterations: c.MaxIterations,
		Tolerance:     c.Tolerance,
		CalibC:        c.CalibC,
		CalibKappa:    c.CalibKappa,
		MaxScanSteps:  c.MaxScanSteps,
	}
}
