package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/jonswap/algorithms/common"
)

// SamplePoint is one (ω, density) pair of a sampled spectrum
type SamplePoint struct {
	Frequency float64
	Density   float64
}

// Sample evaluates the spectrum on start, start+step, ... while below stop.
// Frequencies at or below MinFrequency are skipped: the density is singular at 0
// and underflows below the cutoff, so every returned row has a positive density.
func (p *Parameters) Sample(start, stop, step float64) ([]SamplePoint, error) {
	if err := common.RequirePositive("sample step", step); err != nil {
		return nil, err
	}
	if !common.IsFinite(start) || !common.IsFinite(stop) || stop <= start {
		return nil, fmt.Errorf("%w: sample range [%g, %g) is empty", common.ErrInvalidParameter, start, stop)
	}

	n := int(math.Ceil((stop - start) / step))
	// ceil can land one point on stop through rounding
	if start+float64(n-1)*step >= stop {
		n--
	}
	if n < 1 {
		n = 1
	}

	grid := make([]float64, n)
	if n == 1 {
		grid[0] = start
	} else {
		floats.Span(grid, start, start+float64(n-1)*step)
	}

	minW := p.MinFrequency()
	points := make([]SamplePoint, 0, n)
	for _, w := range grid {
		if w <= minW {
			continue
		}
		points = append(points, SamplePoint{Frequency: w, Density: p.density(w)})
	}
	return points, nil
}
