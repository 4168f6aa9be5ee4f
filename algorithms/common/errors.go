package common

import "errors"

var (
	// ErrInvalidParameter indicates a non-positive or non-finite input where a positive value is required.
	ErrInvalidParameter = errors.New("jonswap: invalid parameter")
	// ErrSingularEvaluation indicates an evaluation at a point where the formula has no finite value.
	ErrSingularEvaluation = errors.New("jonswap: singular evaluation")
	// ErrNonTerminatingGeneration indicates the random boundary search cannot collect enough distinct values.
	ErrNonTerminatingGeneration = errors.New("jonswap: boundary generation does not terminate")
)
