package paddle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/jonswap/algorithms/common"
	"github.com/RyanBlaney/jonswap/algorithms/paddle"
)

var (
	energies = []float64{0.01, 0.2, 0.35, 0.05}
	widths   = []float64{0.6, 0.4, 0.5, 1.5}
	centers  = []float64{0.3, 0.8, 1.25, 2.25}
)

func TestAmplitudes_TransferFunction(t *testing.T) {
	cfg := paddle.Config{Depth: 1, Kinematics: paddle.Flap, Method: paddle.TransferFunction}

	got, err := paddle.Amplitudes([]float64{0.5}, []float64{0.2}, []float64{1}, cfg)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 2.746525381333572, got[0], 1e-9)

	kh, err := paddle.RelativeDepth(1, 1)
	require.NoError(t, err)
	ratio, err := paddle.TransferRatio(paddle.Flap, kh)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2*0.5*0.2)/ratio, got[0], 1e-12)
}

func TestAmplitudes_PistonNeedsLessStrokeThanFlap(t *testing.T) {
	piston, err := paddle.Amplitudes(energies, widths, centers,
		paddle.Config{Depth: 1, Kinematics: paddle.Piston, Method: paddle.TransferFunction})
	require.NoError(t, err)
	flap, err := paddle.Amplitudes(energies, widths, centers,
		paddle.Config{Depth: 1, Kinematics: paddle.Flap, Method: paddle.TransferFunction})
	require.NoError(t, err)

	for i := range piston {
		assert.Less(t, piston[i], flap[i], "bin %d", i)
	}
}

func TestAmplitudes_EnergyShare(t *testing.T) {
	cfg := paddle.Config{Method: paddle.EnergyShare, MaxStroke: 0.75}

	got, err := paddle.Amplitudes(energies, widths, centers, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, floats.Sum(got), 1e-12)

	total := floats.Sum(energies)
	for i, e := range energies {
		assert.InDelta(t, e/total*0.75, got[i], 1e-12)
	}
	// input is not modified
	assert.Equal(t, 0.01, energies[0])
}

func TestAmplitudes_Normalization(t *testing.T) {
	cases := []struct {
		name string
		mode paddle.Normalization
		ref  func([]float64) float64
	}{
		{"Max", paddle.NormalizeMax, floats.Max},
		{"Sum", paddle.NormalizeSum, floats.Sum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := paddle.Config{Depth: 2, Kinematics: paddle.Piston, Method: paddle.TransferFunction,
				Normalization: tc.mode, MaxStroke: 0.4}
			got, err := paddle.Amplitudes(energies, widths, centers, cfg)
			require.NoError(t, err)
			assert.InDelta(t, 0.4, tc.ref(got), 1e-12)

			raw, err := paddle.Amplitudes(energies, widths, centers,
				paddle.Config{Depth: 2, Kinematics: paddle.Piston, Method: paddle.TransferFunction})
			require.NoError(t, err)
			// shape is preserved
			assert.InDelta(t, raw[1]/raw[2], got[1]/got[2], 1e-12)
		})
	}
}

func TestAmplitudes_Errors(t *testing.T) {
	transfer := paddle.Config{Depth: 1, Kinematics: paddle.Flap, Method: paddle.TransferFunction}

	cases := []struct {
		name     string
		energies []float64
		widths   []float64
		centers  []float64
		cfg      paddle.Config
		err      error
	}{
		{"Empty", nil, nil, nil, transfer, common.ErrInvalidParameter},
		{"Misaligned", energies, widths[:2], centers, transfer, common.ErrInvalidParameter},
		{"NegativeEnergy", []float64{-1}, []float64{1}, []float64{1}, transfer, common.ErrInvalidParameter},
		{"ZeroDepth", energies, widths, centers, paddle.Config{Method: paddle.TransferFunction}, common.ErrInvalidParameter},
		{"ShallowSingular", energies, widths, centers,
			paddle.Config{Depth: 1e-12, Kinematics: paddle.Flap, Method: paddle.TransferFunction}, common.ErrSingularEvaluation},
		{"ShareWithoutStroke", energies, widths, centers, paddle.Config{Method: paddle.EnergyShare}, common.ErrInvalidParameter},
		{"ShareZeroEnergy", []float64{0, 0}, []float64{1, 1}, []float64{1, 2},
			paddle.Config{Method: paddle.EnergyShare, MaxStroke: 1}, common.ErrSingularEvaluation},
		{"NormalizeWithoutStroke", energies, widths, centers,
			paddle.Config{Depth: 1, Method: paddle.TransferFunction, Normalization: paddle.NormalizeMax}, common.ErrInvalidParameter},
		{"UnknownMethod", energies, widths, centers, paddle.Config{Method: paddle.Method(4)}, common.ErrInvalidParameter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paddle.Amplitudes(tc.energies, tc.widths, tc.centers, tc.cfg)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, got)
		})
	}
}
