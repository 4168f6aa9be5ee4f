package wavemaker_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/jonswap/algorithms/binning"
	"github.com/RyanBlaney/jonswap/algorithms/common"
	"github.com/RyanBlaney/jonswap/algorithms/integration"
	"github.com/RyanBlaney/jonswap/algorithms/paddle"
	"github.com/RyanBlaney/jonswap/logging"
	"github.com/RyanBlaney/jonswap/wavemaker"
	"github.com/RyanBlaney/jonswap/wavemaker/config"
)

func TestRun_Default(t *testing.T) {
	s, err := wavemaker.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 10, s.Bins().NumBins())
	assert.InDelta(t, 0.75, floats.Sum(s.Amplitudes()), 1e-12)

	again, err := wavemaker.Run(context.Background(), config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, s.Bins().Boundaries(), again.Bins().Boundaries())
}

func TestRun_WindFetchTransfer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spectrum = config.SpectrumConfig{Mode: config.ModeWindFetch, WindSpeed10m: 10, Fetch: 100000}
	cfg.Bins.Strategy = "deterministic"
	cfg.Bins.Count = 8
	cfg.Integration.Policy = "width_normalized"
	cfg.Paddle = config.PaddleConfig{Depth: 3, Kinematics: "piston", Method: "transfer", Normalization: "sum", MaxStroke: 0.5}

	s, err := wavemaker.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, integration.WidthNormalized, s.Energies().Policy)
	assert.InDelta(t, 0.5, floats.Sum(s.Amplitudes()), 1e-12)
}

func TestRun_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spectrum.Alpha = -1
	_, err := wavemaker.Run(context.Background(), cfg)
	assert.ErrorIs(t, err, common.ErrInvalidParameter)

	cfg = config.DefaultConfig()
	cfg.Bins.Band = "peak"
	cfg.Spectrum.MaxFrequency = 0.1
	_, err = wavemaker.Run(context.Background(), cfg)
	assert.ErrorIs(t, err, common.ErrNonTerminatingGeneration)
}

func TestFromConfigMappings(t *testing.T) {
	st, err := wavemaker.StrategyFromConfig(config.BinsConfig{Strategy: "random", Spread: "narrow", Band: "peak", MaxDraws: 10})
	require.NoError(t, err)
	rs, ok := st.(*binning.RandomStrategy)
	require.True(t, ok)
	assert.Equal(t, binning.SpreadNarrow, rs.Spread)
	assert.Equal(t, binning.BandPeak, rs.Band)
	assert.Equal(t, 10, rs.MaxDraws)

	_, err = wavemaker.StrategyFromConfig(config.BinsConfig{Strategy: "grid"})
	assert.ErrorIs(t, err, common.ErrInvalidParameter)

	pol, err := wavemaker.PolicyFromConfig(config.IntegrationConfig{Policy: "width_normalized"})
	require.NoError(t, err)
	assert.Equal(t, integration.WidthNormalized, pol)

	pc, err := wavemaker.PaddleFromConfig(config.PaddleConfig{Kinematics: "flap", Method: "transfer", Normalization: "max", Depth: 2, MaxStroke: 0.2})
	require.NoError(t, err)
	assert.Equal(t, paddle.Config{Depth: 2, Kinematics: paddle.Flap, Method: paddle.TransferFunction, Normalization: paddle.NormalizeMax, MaxStroke: 0.2}, pc)

	_, err = wavemaker.PaddleFromConfig(config.PaddleConfig{Kinematics: "flap", Method: "transfer", Normalization: "rms"})
	assert.ErrorIs(t, err, common.ErrInvalidParameter)

	_, err = wavemaker.NewFromConfig(config.SpectrumConfig{Mode: "buoy"})
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestRun_LogsContextFields(t *testing.T) {
	prev := logging.GetGlobalLogger()
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })

	var out bytes.Buffer
	logging.SetGlobalLogger(logging.NewWriterLogger(&out, &out))

	ctx := logging.ContextWithFields(context.Background(), logging.Fields{"run": "north-sea"})
	_, err := wavemaker.Run(ctx, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[INFO] Run completed")
	assert.Contains(t, out.String(), "run=north-sea")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := wavemaker.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s)
}
