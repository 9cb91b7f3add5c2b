package energy_balance

// TanklessHeaterInput holds the operating point of an electric tankless
// water heater. Temperatures are in degree F as read off the unit's
// nameplate; everything is converted to SI before the balance is evaluated.
type TanklessHeaterInput struct {
	InletTemperature  float64 // degree F
	OutletTemperature float64 // degree F
	FlowRate          float64 // gal/min
	Density           float64 // kg/L
	HeatCapacity      float64 // kJ/(kg K), constant-pressure
	Efficiency        float64 // thermal efficiency, (0, 1]
}

// TanklessHeaterResult is the evaluated steady-state energy balance.
type TanklessHeaterResult struct {
	DeltaT   float64 // temperature rise, degree C
	MassFlow float64 // kg/s
	HeatDuty float64 // heat absorbed by the water, kW
	Power    float64 // electrical power input, kW
}

/*
Compute the steady-state electrical power of a tankless water heater.

The water is treated as an incompressible ideal liquid with constant Cp, so
the enthalpy rise is Cp * dT and

	power = m_dot * Cp * dT / efficiency

	Args:
	    in: operating point

	Returns:
	    evaluated balance, or an invalid-input error naming the offending
	    quantity
*/
func CalcTanklessHeater(in TanklessHeaterInput) (*TanklessHeaterResult, error) {
	if !is_finite(in.Efficiency) || in.Efficiency <= 0.0 || in.Efficiency > 1.0 {
		return nil, invalid_input("efficiency (must be in (0, 1])", in.Efficiency)
	}
	if !is_finite(in.FlowRate) || in.FlowRate < 0.0 {
		return nil, invalid_input("flow rate, gal/min", in.FlowRate)
	}
	if !is_finite(in.Density) || in.Density <= 0.0 {
		return nil, invalid_input("density, kg/L", in.Density)
	}
	if !is_finite(in.HeatCapacity) || in.HeatCapacity <= 0.0 {
		return nil, invalid_input("heat capacity, kJ/(kg K)", in.HeatCapacity)
	}
	// A heater cannot cool; a negative rise would yield negative power.
	if !is_finite(in.InletTemperature) || !is_finite(in.OutletTemperature) ||
		in.OutletTemperature < in.InletTemperature {
		return nil, invalid_input("temperature rise, degree F", in.OutletTemperature-in.InletTemperature)
	}

	// Temperature rise, degree C
	dt := delta_t_f_to_c(in.OutletTemperature - in.InletTemperature)

	// Mass flow rate, kg/s
	m_dot := mass_flow_kg_s(gal_to_l(in.FlowRate), in.Density)

	// Heat absorbed by the water, kW (kJ/s)
	q_dot := m_dot * in.HeatCapacity * dt

	return &TanklessHeaterResult{
		DeltaT:   dt,
		MassFlow: m_dot,
		HeatDuty: q_dot,
		Power:    q_dot / in.Efficiency,
	}, nil
}
