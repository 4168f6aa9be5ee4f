package binning

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/RyanBlaney/jonswap/algorithms/common"
)

// Spectrum is the part of the spectrum parameters the boundary generators need
type Spectrum interface {
	PeakFrequency() float64
	MaxFrequency() float64
}

// Strategy produces numberOfBins-1 interior boundaries for a spectrum.
// The result need not be sorted; Generate sorts and validates it.
type Strategy interface {
	Boundaries(numberOfBins int, spectrum Spectrum) ([]float64, error)
}

// Generate builds a BinSet of numberOfBins bins using the given strategy
func Generate(numberOfBins int, spectrum Spectrum, strategy Strategy) (*BinSet, error) {
	if numberOfBins < 1 {
		return nil, fmt.Errorf("%w: number of bins must be at least 1, got %d", common.ErrInvalidParameter, numberOfBins)
	}
	if strategy == nil {
		return nil, fmt.Errorf("%w: nil boundary strategy", common.ErrInvalidParameter)
	}

	boundaries, err := strategy.Boundaries(numberOfBins, spectrum)
	if err != nil {
		return nil, err
	}
	if len(boundaries) != numberOfBins-1 {
		return nil, fmt.Errorf("%w: strategy returned %d boundaries, want %d",
			common.ErrInvalidParameter, len(boundaries), numberOfBins-1)
	}

	return NewBinSet(boundaries, spectrum.MaxFrequency())
}

// Spread selects the standard deviation of the random draws relative to ω_p
type Spread int

const (
	// SpreadWide draws with σ = ω_p/2
	SpreadWide Spread = iota
	// SpreadNarrow draws with σ = ω_p/4
	SpreadNarrow
)

func (s Spread) divisor() float64 {
	if s == SpreadNarrow {
		return 4
	}
	return 2
}

// Band selects the interval random draws must fall into
type Band int

const (
	// BandFull accepts draws in (0, ω_max)
	BandFull Band = iota
	// BandPeak accepts draws in (ω_p/4, 4·ω_p), clipped to (0, ω_max)
	BandPeak
)

// DefaultMaxDraws bounds the number of normal draws a RandomStrategy makes
const DefaultMaxDraws = 1_000_000

// RandomStrategy draws boundaries from a normal distribution centered on ω_p,
// rejecting out-of-band and duplicate values until enough distinct ones are collected.
type RandomStrategy struct {
	Src      rand.Source
	Spread   Spread
	Band     Band
	MaxDraws int
}

// NewRandomStrategy returns a wide, full-band strategy over src
func NewRandomStrategy(src rand.Source) *RandomStrategy {
	return &RandomStrategy{
		Src:      src,
		Spread:   SpreadWide,
		Band:     BandFull,
		MaxDraws: DefaultMaxDraws,
	}
}

// interval returns the open acceptance interval for draws
func (rs *RandomStrategy) interval(spectrum Spectrum) (lo, hi float64) {
	wp, wmax := spectrum.PeakFrequency(), spectrum.MaxFrequency()
	if rs.Band == BandPeak {
		return wp / 4, math.Min(wp*4, wmax)
	}
	return 0, wmax
}

// Boundaries implements Strategy
func (rs *RandomStrategy) Boundaries(numberOfBins int, spectrum Spectrum) ([]float64, error) {
	if rs.Src == nil {
		return nil, fmt.Errorf("%w: random strategy needs a random source", common.ErrInvalidParameter)
	}
	wp := spectrum.PeakFrequency()
	if err := common.RequirePositive("peak frequency", wp); err != nil {
		return nil, err
	}

	lo, hi := rs.interval(spectrum)
	if !(hi > lo) {
		return nil, fmt.Errorf("%w: empty band (%g, %g)", common.ErrNonTerminatingGeneration, lo, hi)
	}

	maxDraws := rs.MaxDraws
	if maxDraws <= 0 {
		maxDraws = DefaultMaxDraws
	}

	want := numberOfBins - 1
	dist := distuv.Normal{Mu: wp, Sigma: wp / rs.Spread.divisor(), Src: rs.Src}
	seen := make(map[float64]struct{}, want)
	boundaries := make([]float64, 0, want)

	for draws := 0; len(boundaries) < want; draws++ {
		if draws >= maxDraws {
			return nil, fmt.Errorf("%w: collected %d of %d boundaries in (%g, %g) after %d draws",
				common.ErrNonTerminatingGeneration, len(boundaries), want, lo, hi, maxDraws)
		}
		b := dist.Rand()
		if b <= lo || b >= hi {
			continue
		}
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		boundaries = append(boundaries, b)
	}

	return boundaries, nil
}

// DefaultJitterFraction perturbs each grid boundary by at most 2.5% of a bin width
const DefaultJitterFraction = 0.025

// goldenRatio drives the jitter sequence frac(i·φ)
var goldenRatio = (1 + math.Sqrt(5)) / 2

// DeterministicStrategy places boundary i at i·ω_max/n plus a bounded,
// reproducible jitter of JitterFraction bin widths
type DeterministicStrategy struct {
	JitterFraction float64
}

// NewDeterministicStrategy returns a strategy using DefaultJitterFraction
func NewDeterministicStrategy() *DeterministicStrategy {
	return &DeterministicStrategy{JitterFraction: DefaultJitterFraction}
}

// Boundaries implements Strategy
func (ds *DeterministicStrategy) Boundaries(numberOfBins int, spectrum Spectrum) ([]float64, error) {
	// fractions of half a width or more could reorder neighbours
	if ds.JitterFraction < 0 || ds.JitterFraction >= 0.5 {
		return nil, fmt.Errorf("%w: jitter fraction must be in [0, 0.5), got %g",
			common.ErrInvalidParameter, ds.JitterFraction)
	}
	wmax := spectrum.MaxFrequency()
	if err := common.RequirePositive("max frequency", wmax); err != nil {
		return nil, err
	}

	width := wmax / float64(numberOfBins)
	boundaries := make([]float64, 0, numberOfBins-1)
	for i := 1; i < numberOfBins; i++ {
		jitter := (2*common.Frac(float64(i)*goldenRatio) - 1) * ds.JitterFraction * width
		boundaries = append(boundaries, float64(i)*width+jitter)
	}
	return boundaries, nil
}
