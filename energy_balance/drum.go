package energy_balance

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance for the volume-fraction sum invariant. The fractions are
// computed from the same masses and specific volumes that satisfied the
// volume constraint, so any disagreement beyond rounding signals a
// computation or property-table fault.
const volume_fraction_tol = 1e-9

// MixtureState describes a saturated vapor/liquid water mixture filling a
// drum at one pressure. Constructed once per problem stage, never mutated.
type MixtureState struct {
	Pressure             float64 // bar
	Temperature          float64 // saturation temperature, degree C
	LiquidMass           float64 // kg
	VaporMass            float64 // kg
	InternalEnergy       float64 // total internal energy, kJ
	LiquidVolumeFraction float64 // liquid volume / drum volume
	VaporVolumeFraction  float64 // vapor volume / drum volume
}

// DrumHeatingInput describes a sealed drum of fixed volume holding a
// two-phase water mixture, heated from one saturation pressure to another.
type DrumHeatingInput struct {
	TotalVolume                 float64 // L
	InitialPressure             float64 // bar
	InitialLiquidVolumeFraction float64 // liquid volume / drum volume at the initial state
	FinalPressure               float64 // bar
}

// DrumHeatingResult is the evaluated constant-volume energy balance.
type DrumHeatingResult struct {
	Initial   MixtureState
	Final     MixtureState
	TotalMass float64 // kg, conserved between the two states
	Heat      float64 // heat added, kJ
}

/*
Compute the final state of a sealed drum heated between saturation pressures.

Stage 1 splits the drum contents into liquid and vapor masses from the
initial liquid volume fraction. Stage 2 re-splits the same total mass into
the same total volume at the final pressure by solving

	m_liq*v_liq + m_vap*v_vap = V_total
	m_liq + m_vap             = m_total

which requires the final state to be genuinely two-phase: the total specific
volume V_total/m_total must lie strictly inside the saturation envelope at
the final pressure. The heat added is U_final - U_initial; there is no work
term because volume and mass are fixed and nothing flows in or out.

	Args:
	    in: drum geometry and pressures
	    table: property table

	Returns:
	    per-stage mixture states, total mass and heat duty
*/
func CalcDrumHeating(in DrumHeatingInput, table PropertyTable) (*DrumHeatingResult, error) {
	if !is_finite(in.TotalVolume) || in.TotalVolume <= 0.0 {
		return nil, invalid_input("drum volume, L", in.TotalVolume)
	}
	if !is_finite(in.InitialLiquidVolumeFraction) ||
		in.InitialLiquidVolumeFraction < 0.0 || in.InitialLiquidVolumeFraction > 1.0 {
		return nil, invalid_input("initial liquid volume fraction", in.InitialLiquidVolumeFraction)
	}
	if !is_finite(in.InitialPressure) || in.InitialPressure <= 0.0 {
		return nil, invalid_input("initial pressure, bar", in.InitialPressure)
	}
	if !is_finite(in.FinalPressure) || in.FinalPressure <= 0.0 {
		return nil, invalid_input("final pressure, bar", in.FinalPressure)
	}

	// Drum volume, m3
	v_total := l_to_m3(in.TotalVolume)

	// ---- stage 1: initial mass split from the liquid level ----

	liq1, err := lookup_saturation(table, in.InitialPressure, PhaseSaturatedLiquid)
	if err != nil {
		return nil, err
	}
	vap1, err := lookup_saturation(table, in.InitialPressure, PhaseSaturatedVapor)
	if err != nil {
		return nil, err
	}

	// Liquid and vapor masses, kg
	m_liq1 := in.InitialLiquidVolumeFraction * v_total / liq1.SpecificVolume
	m_vap1 := (1.0 - in.InitialLiquidVolumeFraction) * v_total / vap1.SpecificVolume

	initial, err := new_mixture_state(in.InitialPressure, v_total, m_liq1, m_vap1, liq1, vap1)
	if err != nil {
		return nil, err
	}

	// The drum is sealed: total mass is conserved for the rest of the
	// calculation.
	m_total := m_liq1 + m_vap1

	// ---- stage 2: re-split the same mass and volume at the final pressure ----

	liq2, err := lookup_saturation(table, in.FinalPressure, PhaseSaturatedLiquid)
	if err != nil {
		return nil, err
	}
	vap2, err := lookup_saturation(table, in.FinalPressure, PhaseSaturatedVapor)
	if err != nil {
		return nil, err
	}

	// Total specific volume, m3/kg. The closed-form split only exists for a
	// two-phase final state, so it must sit strictly inside the envelope.
	v_spec := v_total / m_total
	if v_spec <= liq2.SpecificVolume {
		return nil, errors.Wrapf(ErrPhaseAssumptionViolated,
			"total specific volume %g m3/kg at %g bar is at or below saturated liquid %g m3/kg: final state is compressed liquid, a pressure+volume temperature lookup is required",
			v_spec, in.FinalPressure, liq2.SpecificVolume)
	}
	if v_spec >= vap2.SpecificVolume {
		return nil, errors.Wrapf(ErrPhaseAssumptionViolated,
			"total specific volume %g m3/kg at %g bar is at or above saturated vapor %g m3/kg: final state is superheated vapor, a pressure+volume temperature lookup is required",
			v_spec, in.FinalPressure, vap2.SpecificVolume)
	}

	// Liquid mass from the volume and mass constraints, kg
	m_liq2 := (m_total*vap2.SpecificVolume - v_total) / (vap2.SpecificVolume - liq2.SpecificVolume)
	m_vap2 := m_total - m_liq2

	final, err := new_mixture_state(in.FinalPressure, v_total, m_liq2, m_vap2, liq2, vap2)
	if err != nil {
		return nil, err
	}

	return &DrumHeatingResult{
		Initial:   initial,
		Final:     final,
		TotalMass: m_total,
		Heat:      final.InternalEnergy - initial.InternalEnergy,
	}, nil
}

/*
Assemble the mixture state of one problem stage.

	Args:
	    pressure: stage pressure, bar
	    v_total: drum volume, m3
	    m_liq: liquid mass, kg
	    m_vap: vapor mass, kg
	    liq: saturated liquid state at the stage pressure
	    vap: saturated vapor state at the stage pressure
*/
func new_mixture_state(pressure, v_total, m_liq, m_vap float64, liq, vap SaturationState) (MixtureState, error) {
	// Volume fractions must close the volume balance.
	f_liq := m_liq * liq.SpecificVolume / v_total
	f_vap := m_vap * vap.SpecificVolume / v_total
	if !scalar.EqualWithinAbs(f_liq+f_vap, 1.0, volume_fraction_tol) {
		return MixtureState{}, errors.Wrapf(ErrPropertyLookupFailure,
			"volume fractions at %g bar sum to %g, want 1", pressure, f_liq+f_vap)
	}

	return MixtureState{
		Pressure:             pressure,
		Temperature:          vap.Temperature,
		LiquidMass:           m_liq,
		VaporMass:            m_vap,
		InternalEnergy:       m_liq*liq.SpecificInternalEnergy + m_vap*vap.SpecificInternalEnergy,
		LiquidVolumeFraction: f_liq,
		VaporVolumeFraction:  f_vap,
	}, nil
}
