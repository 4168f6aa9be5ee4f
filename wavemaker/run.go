package wavemaker

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/RyanBlaney/jonswap/algorithms/binning"
	"github.com/RyanBlaney/jonswap/algorithms/common"
	"github.com/RyanBlaney/jonswap/algorithms/integration"
	"github.com/RyanBlaney/jonswap/algorithms/paddle"
	"github.com/RyanBlaney/jonswap/logging"
	"github.com/RyanBlaney/jonswap/wavemaker/config"
)

// NewFromConfig builds the spectrum described by cfg.Spectrum
func NewFromConfig(cfg config.SpectrumConfig) (*Spectrum, error) {
	switch cfg.Mode {
	case config.ModeExplicit:
		return New(cfg.Alpha, cfg.PeakFrequency, cfg.MaxFrequency, cfg.PeakSharpening, cfg.SigmaLow, cfg.SigmaHigh)
	case config.ModeWindFetch:
		return NewFromWindFetch(cfg.WindSpeed10m, cfg.Fetch)
	default:
		return nil, fmt.Errorf("%w: spectrum mode %q", common.ErrInvalidParameter, cfg.Mode)
	}
}

// StrategyFromConfig builds the boundary strategy described by cfg.
// The random strategy draws from a PCG source seeded with cfg.Seed.
func StrategyFromConfig(cfg config.BinsConfig) (binning.Strategy, error) {
	switch cfg.Strategy {
	case "random":
		rs := binning.NewRandomStrategy(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
		if cfg.Spread == "narrow" {
			rs.Spread = binning.SpreadNarrow
		}
		if cfg.Band == "peak" {
			rs.Band = binning.BandPeak
		}
		if cfg.MaxDraws > 0 {
			rs.MaxDraws = cfg.MaxDraws
		}
		return rs, nil
	case "deterministic":
		return &binning.DeterministicStrategy{JitterFraction: cfg.JitterFraction}, nil
	default:
		return nil, fmt.Errorf("%w: bin strategy %q", common.ErrInvalidParameter, cfg.Strategy)
	}
}

// PolicyFromConfig maps the configured integration policy name
func PolicyFromConfig(cfg config.IntegrationConfig) (integration.Policy, error) {
	switch cfg.Policy {
	case "raw":
		return integration.Raw, nil
	case "width_normalized":
		return integration.WidthNormalized, nil
	default:
		return 0, fmt.Errorf("%w: integration policy %q", common.ErrInvalidParameter, cfg.Policy)
	}
}

// PaddleFromConfig maps the configured paddle names onto a paddle.Config
func PaddleFromConfig(cfg config.PaddleConfig) (paddle.Config, error) {
	out := paddle.Config{Depth: cfg.Depth, MaxStroke: cfg.MaxStroke}

	switch cfg.Kinematics {
	case "piston":
		out.Kinematics = paddle.Piston
	case "flap":
		out.Kinematics = paddle.Flap
	default:
		return out, fmt.Errorf("%w: paddle kinematics %q", common.ErrInvalidParameter, cfg.Kinematics)
	}

	switch cfg.Method {
	case "transfer":
		out.Method = paddle.TransferFunction
	case "energy_share":
		out.Method = paddle.EnergyShare
	default:
		return out, fmt.Errorf("%w: paddle method %q", common.ErrInvalidParameter, cfg.Method)
	}

	switch cfg.Normalization {
	case "none":
		out.Normalization = paddle.NormalizeNone
	case "max":
		out.Normalization = paddle.NormalizeMax
	case "sum":
		out.Normalization = paddle.NormalizeSum
	default:
		return out, fmt.Errorf("%w: paddle normalization %q", common.ErrInvalidParameter, cfg.Normalization)
	}
	return out, nil
}

// Run executes every stage described by cfg and returns the populated spectrum.
// Stage logs carry the fields attached to ctx with logging.ContextWithFields;
// a cancelled ctx stops the run between stages.
func Run(ctx context.Context, cfg *config.Config) (*Spectrum, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s, err := NewFromConfig(cfg.Spectrum)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	s.logger = s.logger.WithContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strategy, err := StrategyFromConfig(cfg.Bins)
	if err != nil {
		return nil, err
	}
	if _, err := s.GenerateBins(cfg.Bins.Count, strategy); err != nil {
		return nil, fmt.Errorf("bins: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	policy, err := PolicyFromConfig(cfg.Integration)
	if err != nil {
		return nil, err
	}
	if _, err := s.IntegrateBins(cfg.Integration.Step, policy); err != nil {
		return nil, fmt.Errorf("integration: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pc, err := PaddleFromConfig(cfg.Paddle)
	if err != nil {
		return nil, err
	}
	if _, err := s.ComputePaddleAmplitudes(pc); err != nil {
		return nil, fmt.Errorf("paddle: %w", err)
	}

	s.logger.Info("Run completed", logging.Fields{
		"bins":       s.bins.NumBins(),
		"total_area": s.energies.TotalArea,
		"hs":         s.energies.SignificantWaveHeight(),
	})
	return s, nil
}
