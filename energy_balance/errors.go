package energy_balance

import (
	std_errors "errors"

	"github.com/pkg/errors"
)

// Failure classes reported by the calculators. Every returned error wraps
// exactly one of these sentinels and names the offending physical quantity.
var (
	// A non-physical input value (negative mass, efficiency outside (0,1],
	// zero density and so on).
	ErrInvalidInput = std_errors.New("invalid input")

	// The property table could not resolve the requested saturation state,
	// or returned a non-finite or non-positive value.
	ErrPropertyLookupFailure = std_errors.New("property lookup failure")

	// The closed-form two-phase solve was asked for a state whose total
	// specific volume lies outside the saturation envelope.
	ErrPhaseAssumptionViolated = std_errors.New("two-phase assumption violated")
)

/*
Build an invalid-input error naming the offending quantity.

	Args:
	    quantity: name of the input, with its unit
	    value: the rejected value
*/
func invalid_input(quantity string, value float64) error {
	return errors.Wrapf(ErrInvalidInput, "%s = %g", quantity, value)
}

func IsInvalidInput(err error) bool {
	return std_errors.Is(err, ErrInvalidInput)
}

func IsPropertyLookupFailure(err error) bool {
	return std_errors.Is(err, ErrPropertyLookupFailure)
}

func IsPhaseAssumptionViolated(err error) bool {
	return std_errors.Is(err, ErrPhaseAssumptionViolated)
}
