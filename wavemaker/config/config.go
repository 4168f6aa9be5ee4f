package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/RyanBlaney/jonswap/algorithms/common"
)

// Config is the complete configuration of one spectrum-to-stroke run
type Config struct {
	Spectrum    SpectrumConfig    `mapstructure:"spectrum" json:"spectrum" yaml:"spectrum"`
	Bins        BinsConfig        `mapstructure:"bins" json:"bins" yaml:"bins"`
	Integration IntegrationConfig `mapstructure:"integration" json:"integration" yaml:"integration"`
	Paddle      PaddleConfig      `mapstructure:"paddle" json:"paddle" yaml:"paddle"`
	Output      OutputConfig      `mapstructure:"output" json:"output" yaml:"output"`
	Logging     LoggingConfig     `mapstructure:"logging" json:"logging" yaml:"logging"`
}

// SpectrumMode selects how the spectrum parameters are obtained
type SpectrumMode string

const (
	ModeExplicit  SpectrumMode = "explicit"
	ModeWindFetch SpectrumMode = "wind_fetch"
)

// SpectrumConfig selects and parameterizes the spectrum
type SpectrumConfig struct {
	Mode SpectrumMode `mapstructure:"mode" json:"mode" yaml:"mode"`

	// explicit mode
	Alpha          float64 `mapstructure:"alpha" json:"alpha" yaml:"alpha"`
	PeakFrequency  float64 `mapstructure:"peak_frequency" json:"peak_frequency" yaml:"peak_frequency"` // rad/s
	MaxFrequency   float64 `mapstructure:"max_frequency" json:"max_frequency" yaml:"max_frequency"`    // rad/s
	PeakSharpening float64 `mapstructure:"peak_sharpening" json:"peak_sharpening" yaml:"peak_sharpening"`
	SigmaLow       float64 `mapstructure:"sigma_low" json:"sigma_low" yaml:"sigma_low"`
	SigmaHigh      float64 `mapstructure:"sigma_high" json:"sigma_high" yaml:"sigma_high"`

	// wind_fetch mode
	WindSpeed10m float64 `mapstructure:"wind_speed_10m" json:"wind_speed_10m" yaml:"wind_speed_10m"` // m/s
	Fetch        float64 `mapstructure:"fetch" json:"fetch" yaml:"fetch"`                            // m
}

// BinsConfig controls how many bins are generated and by which strategy
type BinsConfig struct {
	Count          int     `mapstructure:"count" json:"count" yaml:"count"`
	Strategy       string  `mapstructure:"strategy" json:"strategy" yaml:"strategy"` // "random", "deterministic"
	Spread         string  `mapstructure:"spread" json:"spread" yaml:"spread"`       // "wide", "narrow"
	Band           string  `mapstructure:"band" json:"band" yaml:"band"`             // "full", "peak"
	Seed           uint64  `mapstructure:"seed" json:"seed" yaml:"seed"`
	MaxDraws       int     `mapstructure:"max_draws" json:"max_draws" yaml:"max_draws"`
	JitterFraction float64 `mapstructure:"jitter_fraction" json:"jitter_fraction" yaml:"jitter_fraction"`
}

// IntegrationConfig sets the quadrature step and per-bin policy
type IntegrationConfig struct {
	Step   float64 `mapstructure:"step" json:"step" yaml:"step"`
	Policy string  `mapstructure:"policy" json:"policy" yaml:"policy"` // "raw", "width_normalized"
}

// PaddleConfig describes the wavemaker and the stroke conversion
type PaddleConfig struct {
	Depth         float64 `mapstructure:"depth" json:"depth" yaml:"depth"`                         // m
	Kinematics    string  `mapstructure:"kinematics" json:"kinematics" yaml:"kinematics"`          // "piston", "flap"
	Method        string  `mapstructure:"method" json:"method" yaml:"method"`                      // "transfer", "energy_share"
	Normalization string  `mapstructure:"normalization" json:"normalization" yaml:"normalization"` // "none", "max", "sum"
	MaxStroke     float64 `mapstructure:"max_stroke" json:"max_stroke" yaml:"max_stroke"`          // m
}

// OutputConfig controls the sampled (ω, density) table; an empty TablePath skips it
type OutputConfig struct {
	TablePath   string  `mapstructure:"table_path" json:"table_path" yaml:"table_path"`
	SampleStart float64 `mapstructure:"sample_start" json:"sample_start" yaml:"sample_start"`
	SampleStop  float64 `mapstructure:"sample_stop" json:"sample_stop" yaml:"sample_stop"`
	SampleStep  float64 `mapstructure:"sample_step" json:"sample_step" yaml:"sample_step"`
}

// LoggingConfig holds the minimum log level name
type LoggingConfig struct {
	Level string `mapstructure:"level" json:"level" yaml:"level"`
}

// DefaultConfig returns the reference run: the explicit North Sea spectrum,
// ten random bins, dx = 0.01 and a 0.75 m flap stroke budget
func DefaultConfig() *Config {
	return &Config{
		Spectrum: SpectrumConfig{
			Mode:           ModeExplicit,
			Alpha:          0.0081,
			PeakFrequency:  0.8,
			MaxFrequency:   3.0,
			PeakSharpening: 3.3,
			SigmaLow:       0.07,
			SigmaHigh:      0.09,
		},
		Bins: BinsConfig{
			Count:          10,
			Strategy:       "random",
			Spread:         "wide",
			Band:           "peak",
			Seed:           1,
			MaxDraws:       1_000_000,
			JitterFraction: 0.025,
		},
		Integration: IntegrationConfig{
			Step:   0.01,
			Policy: "raw",
		},
		Paddle: PaddleConfig{
			Depth:         1.0,
			Kinematics:    "flap",
			Method:        "energy_share",
			Normalization: "none",
			MaxStroke:     0.75,
		},
		Output: OutputConfig{
			SampleStart: 0,
			SampleStop:  3,
			SampleStep:  0.001,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file and JONSWAP_* environment
// variables on top of DefaultConfig, then validates it
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix("JONSWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so environment overrides apply even without a file
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("spectrum.mode", string(d.Spectrum.Mode))
	v.SetDefault("spectrum.alpha", d.Spectrum.Alpha)
	v.SetDefault("spectrum.peak_frequency", d.Spectrum.PeakFrequency)
	v.SetDefault("spectrum.max_frequency", d.Spectrum.MaxFrequency)
	v.SetDefault("spectrum.peak_sharpening", d.Spectrum.PeakSharpening)
	v.SetDefault("spectrum.sigma_low", d.Spectrum.SigmaLow)
	v.SetDefault("spectrum.sigma_high", d.Spectrum.SigmaHigh)
	v.SetDefault("spectrum.wind_speed_10m", d.Spectrum.WindSpeed10m)
	v.SetDefault("spectrum.fetch", d.Spectrum.Fetch)

	v.SetDefault("bins.count", d.Bins.Count)
	v.SetDefault("bins.strategy", d.Bins.Strategy)
	v.SetDefault("bins.spread", d.Bins.Spread)
	v.SetDefault("bins.band", d.Bins.Band)
	v.SetDefault("bins.seed", d.Bins.Seed)
	v.SetDefault("bins.max_draws", d.Bins.MaxDraws)
	v.SetDefault("bins.jitter_fraction", d.Bins.JitterFraction)

	v.SetDefault("integration.step", d.Integration.Step)
	v.SetDefault("integration.policy", d.Integration.Policy)

	v.SetDefault("paddle.depth", d.Paddle.Depth)
	v.SetDefault("paddle.kinematics", d.Paddle.Kinematics)
	v.SetDefault("paddle.method", d.Paddle.Method)
	v.SetDefault("paddle.normalization", d.Paddle.Normalization)
	v.SetDefault("paddle.max_stroke", d.Paddle.MaxStroke)

	v.SetDefault("output.table_path", d.Output.TablePath)
	v.SetDefault("output.sample_start", d.Output.SampleStart)
	v.SetDefault("output.sample_stop", d.Output.SampleStop)
	v.SetDefault("output.sample_step", d.Output.SampleStep)

	v.SetDefault("logging.level", d.Logging.Level)
}

// Validate checks the choices and counts; numeric ranges are checked by the pipeline stages
func (c *Config) Validate() error {
	switch c.Spectrum.Mode {
	case ModeExplicit, ModeWindFetch:
	default:
		return fmt.Errorf("%w: spectrum.mode must be %q or %q, got %q", common.ErrInvalidParameter, ModeExplicit, ModeWindFetch, c.Spectrum.Mode)
	}

	if c.Bins.Count < 1 {
		return fmt.Errorf("%w: bins.count must be at least 1", common.ErrInvalidParameter)
	}

	choices := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"bins.strategy", c.Bins.Strategy, []string{"random", "deterministic"}},
		{"bins.spread", c.Bins.Spread, []string{"wide", "narrow"}},
		{"bins.band", c.Bins.Band, []string{"full", "peak"}},
		{"integration.policy", c.Integration.Policy, []string{"raw", "width_normalized"}},
		{"paddle.kinematics", c.Paddle.Kinematics, []string{"piston", "flap"}},
		{"paddle.method", c.Paddle.Method, []string{"transfer", "energy_share"}},
		{"paddle.normalization", c.Paddle.Normalization, []string{"none", "max", "sum"}},
	}
	for _, ch := range choices {
		if !contains(ch.allowed, ch.value) {
			return fmt.Errorf("%w: %s must be one of %v, got %q", common.ErrInvalidParameter, ch.key, ch.allowed, ch.value)
		}
	}

	if c.Integration.Step <= 0 {
		return fmt.Errorf("%w: integration.step must be positive", common.ErrInvalidParameter)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
