package energy_balance

import (
	"math"

	"github.com/pkg/errors"
)

// Phase selects which side of the saturation curve a lookup refers to.
type Phase string

const (
	PhaseSaturatedLiquid Phase = "saturated_liquid"
	PhaseSaturatedVapor  Phase = "saturated_vapor"
)

// SaturationState holds the properties of water on the saturation curve at
// one pressure, for one phase. Queried from a PropertyTable, never mutated.
type SaturationState struct {
	SpecificVolume         float64 // m3/kg
	SpecificInternalEnergy float64 // kJ/kg
	Temperature            float64 // degree C
}

// PropertyTable is the external property-correlation collaborator. The
// calculators treat its answers as authoritative and do no interpolation or
// correlation fitting of their own.
type PropertyTable interface {
	/*
		Look up the saturation state of water.

		    Args:
		        pressure: absolute pressure, bar
		        phase: saturated_liquid or saturated_vapor

		    Returns:
		        saturation state (specific volume m3/kg, specific internal
		        energy kJ/kg, saturation temperature degree C)
	*/
	Lookup(pressure float64, phase Phase) (SaturationState, error)
}

/*
Query the property table and verify the returned state is physical.

A table answer with a non-finite or non-positive specific volume, or a
non-finite internal energy or temperature, is a property-table fault, not a
logic fault of the calculator.

	Args:
	    table: property table
	    pressure: absolute pressure, bar
	    phase: saturated_liquid or saturated_vapor
*/
func lookup_saturation(table PropertyTable, pressure float64, phase Phase) (SaturationState, error) {
	s, err := table.Lookup(pressure, phase)
	if err != nil {
		return SaturationState{}, err
	}

	if !is_finite(s.SpecificVolume) || s.SpecificVolume <= 0.0 {
		return SaturationState{}, errors.Wrapf(ErrPropertyLookupFailure,
			"specific volume %g m3/kg for %s at %g bar", s.SpecificVolume, phase, pressure)
	}
	if !is_finite(s.SpecificInternalEnergy) {
		return SaturationState{}, errors.Wrapf(ErrPropertyLookupFailure,
			"specific internal energy %g kJ/kg for %s at %g bar", s.SpecificInternalEnergy, phase, pressure)
	}
	if !is_finite(s.Temperature) {
		return SaturationState{}, errors.Wrapf(ErrPropertyLookupFailure,
			"saturation temperature %g degree C for %s at %g bar", s.Temperature, phase, pressure)
	}

	return s, nil
}

func is_finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
