package paddle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/jonswap/algorithms/common"
)

// Method selects how bin energies become stroke amplitudes
type Method int

const (
	// TransferFunction divides each bin's wave amplitude sqrt(2·E·Δω) by the kinematic transfer ratio
	TransferFunction Method = iota
	// EnergyShare gives each bin MaxStroke times its share of the total energy
	EnergyShare
)

func (m Method) String() string {
	switch m {
	case TransferFunction:
		return "transfer"
	case EnergyShare:
		return "energy_share"
	default:
		return "unknown"
	}
}

// Normalization rescales TransferFunction output to MaxStroke
type Normalization int

const (
	// NormalizeNone leaves TransferFunction amplitudes unscaled
	NormalizeNone Normalization = iota
	// NormalizeMax scales so the largest amplitude equals MaxStroke
	NormalizeMax
	// NormalizeSum scales so the amplitudes add up to MaxStroke
	NormalizeSum
)

func (n Normalization) String() string {
	switch n {
	case NormalizeNone:
		return "none"
	case NormalizeMax:
		return "max"
	case NormalizeSum:
		return "sum"
	default:
		return "unknown"
	}
}

// Config configures the energy to stroke conversion
type Config struct {
	Depth         float64 // water depth h in m, used by TransferFunction
	Kinematics    Kinematics
	Method        Method
	Normalization Normalization
	MaxStroke     float64 // required by EnergyShare and by any normalization
}

// DefaultConfig returns a flap wavemaker in 1 m of water without normalization
func DefaultConfig() Config {
	return Config{
		Depth:         1.0,
		Kinematics:    Flap,
		Method:        TransferFunction,
		Normalization: NormalizeNone,
		MaxStroke:     0.75,
	}
}

// Amplitudes converts per-bin energies into paddle stroke amplitudes.
// energies, widths and centers must be aligned by bin index.
func Amplitudes(energies, widths, centers []float64, cfg Config) ([]float64, error) {
	n := len(energies)
	if n == 0 {
		return nil, fmt.Errorf("%w: no bin energies", common.ErrInvalidParameter)
	}
	if len(widths) != n || len(centers) != n {
		return nil, fmt.Errorf("%w: %d energies, %d widths, %d centers",
			common.ErrInvalidParameter, n, len(widths), len(centers))
	}
	for i, e := range energies {
		if !common.IsFinite(e) || e < 0 {
			return nil, fmt.Errorf("%w: bin %d energy %g", common.ErrInvalidParameter, i, e)
		}
	}

	switch cfg.Method {
	case EnergyShare:
		return energyShare(energies, cfg.MaxStroke)
	case TransferFunction:
		amps, err := transfer(energies, widths, centers, cfg)
		if err != nil {
			return nil, err
		}
		return normalize(amps, cfg.Normalization, cfg.MaxStroke)
	default:
		return nil, fmt.Errorf("%w: unknown method %d", common.ErrInvalidParameter, cfg.Method)
	}
}

func transfer(energies, widths, centers []float64, cfg Config) ([]float64, error) {
	if err := common.RequirePositive("water depth", cfg.Depth); err != nil {
		return nil, err
	}

	amps := make([]float64, len(energies))
	for i := range energies {
		if err := common.RequirePositive("bin width", widths[i]); err != nil {
			return nil, fmt.Errorf("bin %d: %w", i, err)
		}
		kh, err := RelativeDepth(centers[i], cfg.Depth)
		if err != nil {
			return nil, fmt.Errorf("bin %d: %w", i, err)
		}
		ratio, err := TransferRatio(cfg.Kinematics, kh)
		if err != nil {
			return nil, fmt.Errorf("bin %d at w=%g: %w", i, centers[i], err)
		}
		amps[i] = math.Sqrt(2*energies[i]*widths[i]) / ratio
	}
	return amps, nil
}

func energyShare(energies []float64, maxStroke float64) ([]float64, error) {
	if err := common.RequirePositive("max stroke", maxStroke); err != nil {
		return nil, err
	}
	total := floats.Sum(energies)
	if total <= 0 {
		return nil, fmt.Errorf("%w: total energy is zero", common.ErrSingularEvaluation)
	}

	amps := make([]float64, len(energies))
	copy(amps, energies)
	floats.Scale(maxStroke/total, amps)
	return amps, nil
}

func normalize(amps []float64, mode Normalization, maxStroke float64) ([]float64, error) {
	var ref float64
	switch mode {
	case NormalizeNone:
		return amps, nil
	case NormalizeMax:
		ref = floats.Max(amps)
	case NormalizeSum:
		ref = floats.Sum(amps)
	default:
		return nil, fmt.Errorf("%w: unknown normalization %d", common.ErrInvalidParameter, mode)
	}

	if err := common.RequirePositive("max stroke", maxStroke); err != nil {
		return nil, err
	}
	if ref <= 0 {
		return nil, fmt.Errorf("%w: cannot normalize all-zero amplitudes", common.ErrSingularEvaluation)
	}
	floats.Scale(maxStroke/ref, amps)
	return amps, nil
}
