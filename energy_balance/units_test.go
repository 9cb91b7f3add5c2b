package energy_balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTemperatureConversions(t *testing.T) {
	assert.InDelta(t, 33.3333, delta_t_f_to_c(105.0-45.0), 1e-4)
	assert.InDelta(t, 100.0, t_f_to_c(212.0), 1e-12)
	assert.InDelta(t, 0.0, t_f_to_c(32.0), 1e-12)
}

func TestVolumeConversions(t *testing.T) {
	assert.InDelta(t, 3.785411784, gal_to_l(1.0), 1e-12)
	assert.InDelta(t, 0.1, l_to_m3(100.0), 1e-12)
	assert.InDelta(t, 100.0, m3_to_l(0.1), 1e-12)

	// round trip
	assert.True(t, scalar.EqualWithinAbs(m3_to_l(l_to_m3(42.5)), 42.5, 1e-12))
}

func TestPressureConversions(t *testing.T) {
	assert.InDelta(t, 1.0, bar_to_mpa(10.0), 1e-12)
	assert.InDelta(t, 10.0, mpa_to_bar(1.0), 1e-12)
}

func TestMassFlow(t *testing.T) {
	// 2.5 gal/min of water at 1 kg/L
	got := mass_flow_kg_s(gal_to_l(2.5), 1.0)
	assert.True(t, scalar.EqualWithinAbsOrRel(got, 0.15773, 1e-5, 1e-4))
}
