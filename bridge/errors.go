package bridge

import (
	"errors"

	"github.com/meghashyamc/fingerblaster/geometry"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnknownFunction = errors.New("unknown function")
	// ErrNonFiniteResult reports a result holding NaN or ±Inf, which JSON cannot carry.
	ErrNonFiniteResult = errors.New("non-finite result")
)

const (
	kindInvalidRequest  = "invalid_request"
	kindUnknownFunction = "unknown_function"
	kindInvalidArgument = "invalid_argument"
	kindDegenerateRange = "degenerate_range"
	kindNonFiniteResult = "non_finite_result"
	kindInternal        = "internal"
)

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return kindInvalidRequest
	case errors.Is(err, ErrUnknownFunction):
		return kindUnknownFunction
	case errors.Is(err, geometry.ErrInvalidArgument):
		return kindInvalidArgument
	case errors.Is(err, geometry.ErrDegenerateRange):
		return kindDegenerateRange
	case errors.Is(err, ErrNonFiniteResult):
		return kindNonFiniteResult
	default:
		return kindInternal
	}
}
