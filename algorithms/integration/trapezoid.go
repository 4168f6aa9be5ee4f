package integration

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/RyanBlaney/jonswap/algorithms/binning"
	"github.com/RyanBlaney/jonswap/algorithms/common"
)

// Density is a spectral density that can be evaluated on a grid of frequencies
type Density interface {
	DensityBatch(ws []float64) ([]float64, error)
}

// Policy selects what Integrate reports per bin
type Policy int

const (
	// Raw reports the integrated area of each bin
	Raw Policy = iota
	// WidthNormalized reports the area divided by the bin width (mean density)
	WidthNormalized
)

func (p Policy) String() string {
	switch p {
	case Raw:
		return "raw"
	case WidthNormalized:
		return "width_normalized"
	default:
		return "unknown"
	}
}

// Result holds the per-bin output of Integrate, aligned with the BinSet centers
type Result struct {
	Energies  []float64
	Widths    []float64
	Centers   []float64
	Policy    Policy
	TotalArea float64 // sum of the raw bin areas regardless of Policy
}

// SignificantWaveHeight returns Hs = 4·sqrt(m0) with m0 the total area
func (r *Result) SignificantWaveHeight() float64 {
	return 4 * math.Sqrt(r.TotalArea)
}

// Clone returns a deep copy; nil stays nil
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.Energies = append([]float64(nil), r.Energies...)
	out.Widths = append([]float64(nil), r.Widths...)
	out.Centers = append([]float64(nil), r.Centers...)
	return &out
}

// Integrate computes each bin's area under the density with composite
// trapezoidal quadrature of step dx. The first bin starts at dx to avoid ω = 0,
// and every bin's last step is clipped to its upper edge so bins tile exactly.
func Integrate(density Density, bins *binning.BinSet, dx float64, policy Policy) (*Result, error) {
	if err := common.RequirePositive("integration step", dx); err != nil {
		return nil, err
	}
	if bins == nil || bins.NumBins() < 1 {
		return nil, fmt.Errorf("%w: no bins to integrate", common.ErrInvalidParameter)
	}
	if policy != Raw && policy != WidthNormalized {
		return nil, fmt.Errorf("%w: unknown integration policy %d", common.ErrInvalidParameter, policy)
	}

	edges := bins.Edges()
	if dx >= edges[0].High {
		return nil, fmt.Errorf("%w: integration step %g does not fit the first bin (0, %g)",
			common.ErrInvalidParameter, dx, edges[0].High)
	}

	areas := make([]float64, len(edges))
	widths := bins.Widths()
	for i, e := range edges {
		low := e.Low
		if i == 0 {
			low = dx
		}
		area, err := binArea(density, low, e.High, dx)
		if err != nil {
			return nil, fmt.Errorf("bin %d [%g, %g): %w", i, e.Low, e.High, err)
		}
		areas[i] = area
	}

	res := &Result{
		Widths:    widths,
		Centers:   bins.Centers(),
		Policy:    policy,
		TotalArea: floats.Sum(areas),
	}

	res.Energies = areas
	if policy == WidthNormalized {
		res.Energies = make([]float64, len(areas))
		floats.DivTo(res.Energies, areas, widths)
	}

	return res, nil
}

// binArea integrates density over [low, high] on the grid low, low+dx, ..., high
func binArea(density Density, low, high, dx float64) (float64, error) {
	grid := Grid(low, high, dx)
	fs, err := density.DensityBatch(grid)
	if err != nil {
		return 0, err
	}
	return integrate.Trapezoidal(grid, fs), nil
}

// Grid returns low, low+dx, ... with the last point clipped to high.
// Interior points closer than a billionth of dx to high are merged into it,
// so the grid always holds at least low and high.
func Grid(low, high, dx float64) []float64 {
	n := int(math.Ceil((high - low) / dx))
	if n < 1 {
		n = 1
	}

	grid := make([]float64, 1, n+1)
	grid[0] = low
	for i := 1; i < n; i++ {
		x := low + float64(i)*dx
		if high-x <= dx*1e-9 {
			break
		}
		grid = append(grid, x)
	}
	return append(grid, high)
}
