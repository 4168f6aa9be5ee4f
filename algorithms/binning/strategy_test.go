package binning_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/jonswap/algorithms/binning"
	"github.com/RyanBlaney/jonswap/algorithms/common"
)

type stubSpectrum struct {
	wp, wmax float64
}

func (s stubSpectrum) PeakFrequency() float64 { return s.wp }
func (s stubSpectrum) MaxFrequency() float64  { return s.wmax }

var northSea = stubSpectrum{wp: 0.8, wmax: 3.0}

func assertStrictlyInside(t *testing.T, bs *binning.BinSet, lo, hi float64) {
	t.Helper()
	b := bs.Boundaries()
	for i, v := range b {
		assert.Greater(t, v, lo)
		assert.Less(t, v, hi)
		if i > 0 {
			assert.Greater(t, v, b[i-1])
		}
	}
	assert.Len(t, bs.Centers(), len(b)+1)
}

func TestGenerate_Deterministic(t *testing.T) {
	bs, err := binning.Generate(5, northSea, binning.NewDeterministicStrategy())
	require.NoError(t, err)

	b := bs.Boundaries()
	require.Len(t, b, 4)
	assert.Len(t, bs.Centers(), 5)
	assertStrictlyInside(t, bs, 0, 3.0)

	width := 3.0 / 5
	for i, v := range b {
		grid := float64(i+1) * width
		assert.InDelta(t, grid, v, binning.DefaultJitterFraction*width+1e-12)
		assert.NotEqual(t, grid, v, "boundary %d sits on the grid", i)
	}

	again, err := binning.Generate(5, northSea, binning.NewDeterministicStrategy())
	require.NoError(t, err)
	assert.Equal(t, b, again.Boundaries())
}

func TestGenerate_DeterministicNoJitter(t *testing.T) {
	bs, err := binning.Generate(4, northSea, &binning.DeterministicStrategy{})
	require.NoError(t, err)
	b := bs.Boundaries()
	require.Len(t, b, 3)
	assert.InDelta(t, 0.75, b[0], 1e-12)
	assert.InDelta(t, 1.5, b[1], 1e-12)
	assert.InDelta(t, 2.25, b[2], 1e-12)
}

func TestGenerate_DeterministicManyBins(t *testing.T) {
	bs, err := binning.Generate(500, northSea, &binning.DeterministicStrategy{JitterFraction: 0.45})
	require.NoError(t, err)
	assert.Equal(t, 500, bs.NumBins())
	assertStrictlyInside(t, bs, 0, 3.0)
}

func TestGenerate_DeterministicBadJitter(t *testing.T) {
	for _, f := range []float64{-0.1, 0.5, 1} {
		_, err := binning.Generate(5, northSea, &binning.DeterministicStrategy{JitterFraction: f})
		assert.ErrorIs(t, err, common.ErrInvalidParameter, "fraction %g", f)
	}
}

func TestGenerate_SingleBin(t *testing.T) {
	for _, s := range []binning.Strategy{
		binning.NewDeterministicStrategy(),
		binning.NewRandomStrategy(rand.NewPCG(1, 2)),
	} {
		bs, err := binning.Generate(1, northSea, s)
		require.NoError(t, err)
		assert.Empty(t, bs.Boundaries())
		assert.Equal(t, []float64{1.5}, bs.Centers())
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		bs, err := binning.Generate(n, northSea, binning.NewDeterministicStrategy())
		assert.ErrorIs(t, err, common.ErrInvalidParameter)
		assert.Nil(t, bs)
	}
	_, err := binning.Generate(3, northSea, nil)
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestRandomStrategy_Seeded(t *testing.T) {
	gen := func(seed uint64) []float64 {
		bs, err := binning.Generate(10, northSea, binning.NewRandomStrategy(rand.NewPCG(seed, 7)))
		require.NoError(t, err)
		assertStrictlyInside(t, bs, 0, 3.0)
		return bs.Boundaries()
	}

	a := gen(42)
	assert.Len(t, a, 9)
	assert.Equal(t, a, gen(42))
	assert.NotEqual(t, a, gen(43))
}

func TestRandomStrategy_PeakBand(t *testing.T) {
	rs := binning.NewRandomStrategy(rand.NewPCG(3, 4))
	rs.Band = binning.BandPeak
	rs.Spread = binning.SpreadNarrow

	bs, err := binning.Generate(40, northSea, rs)
	require.NoError(t, err)
	assert.Equal(t, 40, bs.NumBins())
	assertStrictlyInside(t, bs, 0.8/4, 3.0)
}

func TestRandomStrategy_PeakBandClippedToMax(t *testing.T) {
	rs := binning.NewRandomStrategy(rand.NewPCG(5, 6))
	rs.Band = binning.BandPeak

	clipped := stubSpectrum{wp: 1, wmax: 1.5}
	bs, err := binning.Generate(30, clipped, rs)
	require.NoError(t, err)
	assertStrictlyInside(t, bs, 0.25, 1.5)
}

func TestRandomStrategy_EmptyBand(t *testing.T) {
	rs := binning.NewRandomStrategy(rand.NewPCG(1, 1))
	rs.Band = binning.BandPeak

	_, err := binning.Generate(5, stubSpectrum{wp: 1, wmax: 0.2}, rs)
	assert.ErrorIs(t, err, common.ErrNonTerminatingGeneration)
}

func TestRandomStrategy_DrawBudget(t *testing.T) {
	rs := binning.NewRandomStrategy(rand.NewPCG(1, 1))
	rs.MaxDraws = 3

	bs, err := binning.Generate(100, northSea, rs)
	assert.ErrorIs(t, err, common.ErrNonTerminatingGeneration)
	assert.Nil(t, bs)
}

func TestRandomStrategy_NilSource(t *testing.T) {
	_, err := binning.Generate(5, northSea, &binning.RandomStrategy{})
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}
