package common

import (
	"fmt"
	"math"
)

// Numeric helpers shared by the spectrum, binning, integration and paddle packages

// IsFinite reports whether v is neither NaN nor an infinity
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RequirePositive returns an ErrInvalidParameter wrap when v is not a finite positive number
func RequirePositive(name string, v float64) error {
	if !IsFinite(v) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidParameter, name, v)
	}
	return nil
}

// Frac returns the fractional part of v in [0, 1)
func Frac(v float64) float64 {
	return v - math.Floor(v)
}
