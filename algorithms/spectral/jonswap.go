package spectral

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/jonswap/algorithms/common"
)

// Gravity is the gravitational acceleration in m/s² used by every formula in this module
const Gravity = 9.81

// Defaults used by the wind/fetch derivation
const (
	DefaultPeakSharpening = 3.3
	DefaultSigmaLow       = 0.07
	DefaultSigmaHigh      = 0.09
)

// Parameters is an immutable set of JONSWAP spectrum parameters.
// Construct it with New or FromWindFetch; the zero value is not valid.
type Parameters struct {
	alpha          float64
	peakFrequency  float64
	maxFrequency   float64
	peakSharpening float64
	sigmaLow       float64
	sigmaHigh      float64

	// only set when derived from wind and fetch
	windSpeed10m float64
	fetch        float64
}

// New creates spectrum parameters from explicit values.
// alpha: energy scale, peakFrequency: ω_p in rad/s, maxFrequency: upper integration bound,
// peakSharpening: γ, sigmaLow/sigmaHigh: shape widths for ω ≤ ω_p and ω > ω_p
func New(alpha, peakFrequency, maxFrequency, peakSharpening, sigmaLow, sigmaHigh float64) (*Parameters, error) {
	checks := []struct {
		name  string
		value float64
	}{
		{"alpha", alpha},
		{"peak frequency", peakFrequency},
		{"max frequency", maxFrequency},
		{"peak sharpening", peakSharpening},
		{"sigma low", sigmaLow},
		{"sigma high", sigmaHigh},
	}
	for _, c := range checks {
		if err := common.RequirePositive(c.name, c.value); err != nil {
			return nil, err
		}
	}

	return &Parameters{
		alpha:          alpha,
		peakFrequency:  peakFrequency,
		maxFrequency:   maxFrequency,
		peakSharpening: peakSharpening,
		sigmaLow:       sigmaLow,
		sigmaHigh:      sigmaHigh,
	}, nil
}

// FromWindFetch derives alpha, ω_p and ω_max from the wind speed at 10 m (m/s) and the fetch (m).
// γ, sigmaLow and sigmaHigh take the standard JONSWAP defaults.
func FromWindFetch(windSpeed10m, fetch float64) (*Parameters, error) {
	if err := common.RequirePositive("wind speed", windSpeed10m); err != nil {
		return nil, err
	}
	if err := common.RequirePositive("fetch", fetch); err != nil {
		return nil, err
	}

	wp := PeakFrequency(windSpeed10m, fetch)
	p, err := New(Alpha(windSpeed10m, fetch), wp, MaxFrequency(wp),
		DefaultPeakSharpening, DefaultSigmaLow, DefaultSigmaHigh)
	if err != nil {
		return nil, fmt.Errorf("derived parameters: %w", err)
	}

	p.windSpeed10m = windSpeed10m
	p.fetch = fetch
	return p, nil
}

// Alpha computes the energy scale 0.076·(U²/(F·g))^0.22
func Alpha(windSpeed10m, fetch float64) float64 {
	return 0.076 * math.Pow(windSpeed10m*windSpeed10m/(fetch*Gravity), 0.22)
}

// PeakFrequency computes ω_p = 22·(g²/(U·F))^(1/3)
func PeakFrequency(windSpeed10m, fetch float64) float64 {
	return 22 * math.Cbrt(Gravity*Gravity/(windSpeed10m*fetch))
}

// MaxFrequency returns the bounding frequency 33·ω_p/(2π)
func MaxFrequency(peakFrequency float64) float64 {
	return 33 * peakFrequency / (2 * math.Pi)
}

// underflowExponent bounds -1.2·(ω_p/ω)⁴ so its exponential stays a normal float64
const underflowExponent = 708

// MinFrequency returns ω_p·(1.2/708)^(1/4). Above it the density is a positive
// float64; below it the low-frequency cutoff underflows and Density returns 0 or a subnormal.
func (p *Parameters) MinFrequency() float64 {
	return p.peakFrequency * math.Pow(1.2/underflowExponent, 0.25)
}

// Density evaluates the JONSWAP spectral density at angular frequency w.
// Returns ErrSingularEvaluation for w ≤ 0; see MinFrequency for the representable domain.
func (p *Parameters) Density(w float64) (float64, error) {
	if !common.IsFinite(w) || w <= 0 {
		return 0, fmt.Errorf("%w: density at w=%g", common.ErrSingularEvaluation, w)
	}
	return p.density(w), nil
}

func (p *Parameters) density(w float64) float64 {
	sigma := p.sigmaLow
	if w > p.peakFrequency {
		sigma = p.sigmaHigh
	}

	dw := w - p.peakFrequency
	width := sigma * p.peakFrequency
	r := math.Exp(-(dw * dw) / (2 * width * width))

	ratio := p.peakFrequency / w
	ratio2 := ratio * ratio
	pm := p.alpha * Gravity * Gravity * math.Pow(w, -5) * math.Exp(-1.2*ratio2*ratio2)

	return pm * math.Pow(p.peakSharpening, r)
}

// DensityBatch evaluates Density for every frequency, preserving length and order.
// Fails on the first non-positive frequency without returning partial results.
func (p *Parameters) DensityBatch(ws []float64) ([]float64, error) {
	out := make([]float64, len(ws))
	for i, w := range ws {
		d, err := p.Density(w)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// Alpha returns the energy scale
func (p *Parameters) Alpha() float64 { return p.alpha }

// PeakFrequency returns ω_p
func (p *Parameters) PeakFrequency() float64 { return p.peakFrequency }

// MaxFrequency returns ω_max
func (p *Parameters) MaxFrequency() float64 { return p.maxFrequency }

// PeakSharpening returns γ
func (p *Parameters) PeakSharpening() float64 { return p.peakSharpening }

// SigmaLow returns the shape width for ω ≤ ω_p
func (p *Parameters) SigmaLow() float64 { return p.sigmaLow }

// SigmaHigh returns the shape width for ω > ω_p
func (p *Parameters) SigmaHigh() float64 { return p.sigmaHigh }

// WindSpeed10m returns the source wind speed, or 0 for explicit parameters
func (p *Parameters) WindSpeed10m() float64 { return p.windSpeed10m }

// Fetch returns the source fetch, or 0 for explicit parameters
func (p *Parameters) Fetch() float64 { return p.fetch }

// FromWind reports whether the parameters were derived from wind speed and fetch
func (p *Parameters) FromWind() bool { return p.windSpeed10m > 0 && p.fetch > 0 }
