package paddle

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/jonswap/algorithms/common"
	"github.com/RyanBlaney/jonswap/algorithms/spectral"
)

// Kinematics is the wavemaker actuation geometry
type Kinematics int

const (
	// Piston translates the paddle uniformly over the full depth
	Piston Kinematics = iota
	// Flap hinges the paddle at the bottom
	Flap
)

func (k Kinematics) String() string {
	switch k {
	case Piston:
		return "piston"
	case Flap:
		return "flap"
	default:
		return "unknown"
	}
}

// MinKH is the smallest relative depth kh the transfer functions are evaluated at.
// Below it the flap expression loses all precision to cancellation.
const MinKH = 1e-4

// deepKH is where cosh(2kh) approaches overflow; both ratios use their deep-water limits beyond it
const deepKH = 350

// RelativeDepth returns kh for angular frequency omega at water depth h using the
// explicit dispersion approximation kh = k0h·(1 - exp(-(k0h)^1.25))^-0.4, k0 = ω²/g
func RelativeDepth(omega, depth float64) (float64, error) {
	if err := common.RequirePositive("angular frequency", omega); err != nil {
		return 0, err
	}
	if err := common.RequirePositive("water depth", depth); err != nil {
		return 0, err
	}

	k0h := omega * omega / spectral.Gravity * depth
	kh := k0h * math.Pow(-math.Expm1(-math.Pow(k0h, 1.25)), -0.4)
	if !common.IsFinite(kh) || kh <= 0 {
		return 0, fmt.Errorf("%w: kh=%g for w=%g, h=%g", common.ErrSingularEvaluation, kh, omega, depth)
	}
	return kh, nil
}

// TransferRatio returns the wave-height to stroke ratio of linear wavemaker theory at kh
func TransferRatio(kinematics Kinematics, kh float64) (float64, error) {
	if !common.IsFinite(kh) || kh < MinKH {
		return 0, fmt.Errorf("%w: kh=%g below %g", common.ErrSingularEvaluation, kh, MinKH)
	}

	var ratio float64
	switch kinematics {
	case Piston:
		if kh > deepKH {
			ratio = 2
		} else {
			ratio = 2 * (math.Cosh(2*kh) - 1) / (math.Sinh(2*kh) + 2*kh)
		}
	case Flap:
		if kh > deepKH {
			ratio = 2 - 2/kh
		} else {
			sh := math.Sinh(kh)
			ratio = 4 * (sh / kh) * (kh*sh - math.Cosh(kh) + 1) / (math.Sinh(2*kh) + 2*kh)
		}
	default:
		return 0, fmt.Errorf("%w: unknown kinematics %d", common.ErrInvalidParameter, kinematics)
	}

	if !common.IsFinite(ratio) || ratio <= 0 {
		return 0, fmt.Errorf("%w: %s ratio %g at kh=%g", common.ErrSingularEvaluation, kinematics, ratio, kh)
	}
	return ratio, nil
}
