package energy_balance

// Unit conversion factors used by the calculators. Formulas always work in
// degree C, kg, m3, bar and kJ; every input in another unit is converted
// through one of these helpers before it enters a balance equation.

const (
	// 1 US gallon, L
	litersPerGallon = 3.785411784
)

/*
Convert a temperature difference from degree F to degree C.

	Args:
	    dt_f: temperature difference, degree F

	Returns:
	    temperature difference, degree C
*/
func delta_t_f_to_c(dt_f float64) float64 {
	return dt_f / 1.8
}

/*
Convert an absolute temperature from degree F to degree C.

	Args:
	    t_f: temperature, degree F

	Returns:
	    temperature, degree C
*/
func t_f_to_c(t_f float64) float64 {
	return (t_f - 32.0) / 1.8
}

/*
Convert a volume from US gallons to liters.

	Args:
	    v_gal: volume, gal

	Returns:
	    volume, L
*/
func gal_to_l(v_gal float64) float64 {
	return v_gal * litersPerGallon
}

/*
Convert a volume from liters to cubic meters.

	Args:
	    v_l: volume, L

	Returns:
	    volume, m3
*/
func l_to_m3(v_l float64) float64 {
	return v_l / 1000.0
}

/*
Convert a volume from cubic meters to liters.

	Args:
	    v_m3: volume, m3

	Returns:
	    volume, L
*/
func m3_to_l(v_m3 float64) float64 {
	return v_m3 * 1000.0
}

/*
Convert a pressure from bar to MPa.

	Args:
	    p_bar: pressure, bar

	Returns:
	    pressure, MPa
*/
func bar_to_mpa(p_bar float64) float64 {
	return p_bar * 0.1
}

/*
Convert a pressure from MPa to bar.

	Args:
	    p_mpa: pressure, MPa

	Returns:
	    pressure, bar
*/
func mpa_to_bar(p_mpa float64) float64 {
	return p_mpa * 10.0
}

/*
Convert a volumetric flow rate to a mass flow rate.

	Args:
	    flow_l_min: volumetric flow rate, L/min
	    rho_kg_l: fluid density, kg/L

	Returns:
	    mass flow rate, kg/s
*/
func mass_flow_kg_s(flow_l_min, rho_kg_l float64) float64 {
	return flow_l_min * rho_kg_l / 60.0
}
