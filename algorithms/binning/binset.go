package binning

import (
	"fmt"
	"sort"

	"github.com/RyanBlaney/jonswap/algorithms/common"
)

// Edge is the [Low, High) frequency range of one bin
type Edge struct {
	Low  float64
	High float64
}

// BinSet partitions [0, maxFrequency] into len(boundaries)+1 bins.
// Boundaries are strictly increasing inside (0, maxFrequency).
type BinSet struct {
	boundaries   []float64
	centers      []float64
	maxFrequency float64
}

// NewBinSet sorts the interior boundaries, verifies they are distinct and
// inside (0, maxFrequency) and derives the bin center frequencies.
func NewBinSet(boundaries []float64, maxFrequency float64) (*BinSet, error) {
	if err := common.RequirePositive("max frequency", maxFrequency); err != nil {
		return nil, err
	}

	sorted := make([]float64, len(boundaries))
	copy(sorted, boundaries)
	sort.Float64s(sorted)

	for i, b := range sorted {
		if !common.IsFinite(b) || b <= 0 || b >= maxFrequency {
			return nil, fmt.Errorf("%w: boundary %g outside (0, %g)", common.ErrInvalidParameter, b, maxFrequency)
		}
		if i > 0 && b <= sorted[i-1] {
			return nil, fmt.Errorf("%w: duplicate boundary %g", common.ErrInvalidParameter, b)
		}
	}

	return &BinSet{
		boundaries:   sorted,
		centers:      Centers(sorted, maxFrequency),
		maxFrequency: maxFrequency,
	}, nil
}

// Centers returns the midpoint of every bin for sorted interior boundaries:
// b1/2 for the first bin, (b_i+b_i+1)/2 for interior bins and (b_k+max)/2 for the last.
// The result always has len(boundaries)+1 entries.
func Centers(boundaries []float64, maxFrequency float64) []float64 {
	centers := make([]float64, 0, len(boundaries)+1)
	low := 0.0
	for _, b := range boundaries {
		centers = append(centers, (low+b)/2)
		low = b
	}
	return append(centers, (low+maxFrequency)/2)
}

// NumBins returns the number of bins
func (bs *BinSet) NumBins() int {
	return len(bs.boundaries) + 1
}

// MaxFrequency returns the upper edge of the last bin
func (bs *BinSet) MaxFrequency() float64 {
	return bs.maxFrequency
}

// Boundaries returns a copy of the interior boundaries
func (bs *BinSet) Boundaries() []float64 {
	out := make([]float64, len(bs.boundaries))
	copy(out, bs.boundaries)
	return out
}

// Centers returns a copy of the bin center frequencies
func (bs *BinSet) Centers() []float64 {
	out := make([]float64, len(bs.centers))
	copy(out, bs.centers)
	return out
}

// Edges returns the [low, high) range of every bin, aligned with Centers
func (bs *BinSet) Edges() []Edge {
	edges := make([]Edge, 0, bs.NumBins())
	low := 0.0
	for _, b := range bs.boundaries {
		edges = append(edges, Edge{Low: low, High: b})
		low = b
	}
	return append(edges, Edge{Low: low, High: bs.maxFrequency})
}

// Widths returns High-Low for every bin, aligned with Centers
func (bs *BinSet) Widths() []float64 {
	edges := bs.Edges()
	widths := make([]float64, len(edges))
	for i, e := range edges {
		widths[i] = e.High - e.Low
	}
	return widths
}
