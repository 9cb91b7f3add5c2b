package energy_balance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteamTableExactRows(t *testing.T) {
	st, err := NewSteamTable()
	require.NoError(t, err)

	// tabulated pressures return published values verbatim
	liq, err := st.Lookup(1.0, PhaseSaturatedLiquid)
	require.NoError(t, err)
	assert.Equal(t, 0.00104315, liq.SpecificVolume)
	assert.Equal(t, 417.33, liq.SpecificInternalEnergy)
	assert.Equal(t, 99.606, liq.Temperature)

	vap, err := st.Lookup(10.0, PhaseSaturatedVapor)
	require.NoError(t, err)
	assert.Equal(t, 0.194349, vap.SpecificVolume)
	assert.Equal(t, 2582.75, vap.SpecificInternalEnergy)
	assert.Equal(t, 179.886, vap.Temperature)
}

func TestSteamTableInterpolation(t *testing.T) {
	st, err := NewSteamTable()
	require.NoError(t, err)

	// between the 1.0 and 1.5 bar rows every property must fall between the
	// bracketing row values
	liq_lo, _ := st.Lookup(1.0, PhaseSaturatedLiquid)
	liq_hi, _ := st.Lookup(1.5, PhaseSaturatedLiquid)
	liq, err := st.Lookup(1.25, PhaseSaturatedLiquid)
	require.NoError(t, err)
	assert.Greater(t, liq.SpecificVolume, liq_lo.SpecificVolume)
	assert.Less(t, liq.SpecificVolume, liq_hi.SpecificVolume)
	assert.Greater(t, liq.Temperature, liq_lo.Temperature)
	assert.Less(t, liq.Temperature, liq_hi.Temperature)

	vap_lo, _ := st.Lookup(1.0, PhaseSaturatedVapor)
	vap_hi, _ := st.Lookup(1.5, PhaseSaturatedVapor)
	vap, err := st.Lookup(1.25, PhaseSaturatedVapor)
	require.NoError(t, err)
	assert.Less(t, vap.SpecificVolume, vap_lo.SpecificVolume)
	assert.Greater(t, vap.SpecificVolume, vap_hi.SpecificVolume)

	// midpoint of a linear interpolant is the row average
	assert.InDelta(t, (liq_lo.Temperature+liq_hi.Temperature)/2.0, liq.Temperature, 1e-9)
}

func TestSteamTableRange(t *testing.T) {
	st, err := NewSteamTable()
	require.NoError(t, err)

	assert.Equal(t, 0.5, st.MinPressure())
	assert.Equal(t, 20.0, st.MaxPressure())

	for _, p := range []float64{0.3, 25.0, -1.0} {
		_, err := st.Lookup(p, PhaseSaturatedLiquid)
		require.Error(t, err, "pressure %g bar", p)
		assert.True(t, IsPropertyLookupFailure(err))
	}

	_, err = st.Lookup(1.0, Phase("supercritical"))
	require.Error(t, err)
	assert.True(t, IsPropertyLookupFailure(err))
}

func TestSteamTableFromCSV(t *testing.T) {
	header := "pressure_bar,t_sat_c,v_liq_m3_kg,v_vap_m3_kg,u_liq_kj_kg,u_vap_kj_kg\n"

	t.Run("valid", func(t *testing.T) {
		csv := header +
			"1.0,100.0,0.001,1.6,400.0,2500.0\n" +
			"10.0,180.0,0.00125,0.2,760.0,2580.0\n"
		st, err := NewSteamTableFromCSV(strings.NewReader(csv))
		require.NoError(t, err)
		liq, err := st.Lookup(1.0, PhaseSaturatedLiquid)
		require.NoError(t, err)
		assert.Equal(t, 0.001, liq.SpecificVolume)
	})

	t.Run("too few rows", func(t *testing.T) {
		csv := header + "1.0,100.0,0.001,1.6,400.0,2500.0\n"
		_, err := NewSteamTableFromCSV(strings.NewReader(csv))
		require.Error(t, err)
	})

	t.Run("non-increasing pressure", func(t *testing.T) {
		csv := header +
			"10.0,180.0,0.00125,0.2,760.0,2580.0\n" +
			"1.0,100.0,0.001,1.6,400.0,2500.0\n"
		_, err := NewSteamTableFromCSV(strings.NewReader(csv))
		require.Error(t, err)
	})

	t.Run("vapor volume below liquid volume", func(t *testing.T) {
		csv := header +
			"1.0,100.0,0.001,0.0005,400.0,2500.0\n" +
			"10.0,180.0,0.00125,0.2,760.0,2580.0\n"
		_, err := NewSteamTableFromCSV(strings.NewReader(csv))
		require.Error(t, err)
	})
}

func TestSteamTableDrumConsistency(t *testing.T) {
	// the embedded data itself must satisfy the envelope ordering everywhere
	st, err := NewSteamTable()
	require.NoError(t, err)

	for _, p := range st.pressures {
		liq, err := st.Lookup(p, PhaseSaturatedLiquid)
		require.NoError(t, err)
		vap, err := st.Lookup(p, PhaseSaturatedVapor)
		require.NoError(t, err)

		assert.Less(t, liq.SpecificVolume, vap.SpecificVolume, "at %g bar", p)
		assert.Less(t, liq.SpecificInternalEnergy, vap.SpecificInternalEnergy, "at %g bar", p)
		assert.Equal(t, liq.Temperature, vap.Temperature, "at %g bar", p)
	}
}
