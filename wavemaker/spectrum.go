// Package wavemaker runs the JONSWAP pipeline: spectrum parameters, frequency
// bins, per-bin energies and finally wavemaker paddle stroke amplitudes.
package wavemaker

import (
	"fmt"

	"github.com/RyanBlaney/jonswap/algorithms/binning"
	"github.com/RyanBlaney/jonswap/algorithms/common"
	"github.com/RyanBlaney/jonswap/algorithms/integration"
	"github.com/RyanBlaney/jonswap/algorithms/paddle"
	"github.com/RyanBlaney/jonswap/algorithms/spectral"
	"github.com/RyanBlaney/jonswap/logging"
)

// Spectrum holds immutable spectrum parameters and the outputs derived from
// the current bin set. Generating new bins discards energies and amplitudes.
type Spectrum struct {
	params     *spectral.Parameters
	bins       *binning.BinSet
	energies   *integration.Result
	amplitudes []float64
	logger     logging.Logger
}

// New creates a spectrum from explicit parameters
func New(alpha, peakFrequency, maxFrequency, peakSharpening, sigmaLow, sigmaHigh float64) (*Spectrum, error) {
	p, err := spectral.New(alpha, peakFrequency, maxFrequency, peakSharpening, sigmaLow, sigmaHigh)
	if err != nil {
		return nil, err
	}
	return NewFromParameters(p), nil
}

// NewFromWindFetch creates a spectrum derived from wind speed at 10 m and fetch
func NewFromWindFetch(windSpeed10m, fetch float64) (*Spectrum, error) {
	p, err := spectral.FromWindFetch(windSpeed10m, fetch)
	if err != nil {
		return nil, err
	}
	return NewFromParameters(p), nil
}

// NewFromParameters wraps already validated parameters
func NewFromParameters(p *spectral.Parameters) *Spectrum {
	logger := logging.WithFields(logging.Fields{
		"component": "wavemaker_spectrum",
	})

	logger.Debug("Spectrum parameters", logging.Fields{
		"alpha":           p.Alpha(),
		"peak_frequency":  p.PeakFrequency(),
		"max_frequency":   p.MaxFrequency(),
		"peak_sharpening": p.PeakSharpening(),
		"from_wind":       p.FromWind(),
	})

	return &Spectrum{params: p, logger: logger}
}

// Parameters returns the spectrum parameters
func (s *Spectrum) Parameters() *spectral.Parameters {
	return s.params
}

// MaxFrequency returns ω_max
func (s *Spectrum) MaxFrequency() float64 {
	return s.params.MaxFrequency()
}

// Density evaluates the spectral density at w
func (s *Spectrum) Density(w float64) (float64, error) {
	return s.params.Density(w)
}

// DensityBatch evaluates the spectral density for every frequency in ws
func (s *Spectrum) DensityBatch(ws []float64) ([]float64, error) {
	return s.params.DensityBatch(ws)
}

// GenerateBins replaces the current bin set with numberOfBins bins from strategy
func (s *Spectrum) GenerateBins(numberOfBins int, strategy binning.Strategy) (*binning.BinSet, error) {
	bins, err := binning.Generate(numberOfBins, s.params, strategy)
	if err != nil {
		s.logger.Error(err, "Bin generation failed", logging.Fields{
			"number_of_bins": numberOfBins,
		})
		return nil, err
	}

	s.bins = bins
	s.energies = nil
	s.amplitudes = nil

	s.logger.Debug("Bins generated", logging.Fields{
		"number_of_bins": bins.NumBins(),
		"boundaries":     bins.Boundaries(),
	})
	return bins, nil
}

// Bins returns the current bin set, or nil before GenerateBins
func (s *Spectrum) Bins() *binning.BinSet {
	return s.bins
}

// Centers returns the current bin center frequencies
func (s *Spectrum) Centers() []float64 {
	if s.bins == nil {
		return nil
	}
	return s.bins.Centers()
}

// IntegrateBins computes the per-bin energies of the current bin set
func (s *Spectrum) IntegrateBins(dx float64, policy integration.Policy) (*integration.Result, error) {
	if s.bins == nil {
		return nil, fmt.Errorf("%w: bins have not been generated", common.ErrInvalidParameter)
	}

	res, err := integration.Integrate(s.params, s.bins, dx, policy)
	if err != nil {
		s.logger.Error(err, "Bin integration failed", logging.Fields{
			"step":   dx,
			"policy": policy.String(),
		})
		return nil, err
	}

	s.energies = res
	s.amplitudes = nil

	s.logger.Debug("Bins integrated", logging.Fields{
		"step":       dx,
		"policy":     policy.String(),
		"total_area": res.TotalArea,
		"hs":         res.SignificantWaveHeight(),
	})
	return res.Clone(), nil
}

// Energies returns a copy of the last integration result, or nil before IntegrateBins
func (s *Spectrum) Energies() *integration.Result {
	return s.energies.Clone()
}

// ComputePaddleAmplitudes converts the last integration result to stroke amplitudes
func (s *Spectrum) ComputePaddleAmplitudes(cfg paddle.Config) ([]float64, error) {
	if s.energies == nil {
		return nil, fmt.Errorf("%w: bins have not been integrated", common.ErrInvalidParameter)
	}

	amps, err := paddle.Amplitudes(s.energies.Energies, s.energies.Widths, s.energies.Centers, cfg)
	if err != nil {
		s.logger.Error(err, "Paddle conversion failed", logging.Fields{
			"depth":      cfg.Depth,
			"kinematics": cfg.Kinematics.String(),
			"method":     cfg.Method.String(),
		})
		return nil, err
	}

	s.amplitudes = amps
	s.logger.Debug("Paddle amplitudes computed", logging.Fields{
		"kinematics":    cfg.Kinematics.String(),
		"method":        cfg.Method.String(),
		"normalization": cfg.Normalization.String(),
		"bins":          len(amps),
	})

	out := make([]float64, len(amps))
	copy(out, amps)
	return out, nil
}

// Amplitudes returns a copy of the last computed stroke amplitudes
func (s *Spectrum) Amplitudes() []float64 {
	if s.amplitudes == nil {
		return nil
	}
	out := make([]float64, len(s.amplitudes))
	copy(out, s.amplitudes)
	return out
}
