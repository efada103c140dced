package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueObjectNames(t *testing.T) {
	m := New()

	f1 := NewFanVariableVolume(m, "VAV Fan")
	f2 := NewFanVariableVolume(m, "VAV Fan")
	f3 := NewFanVariableVolume(m, "VAV Fan")

	assert.Equal(t, "VAV Fan", f1.Name)
	assert.Equal(t, "VAV Fan 1", f2.Name)
	assert.Equal(t, "VAV Fan 2", f3.Name)
	assert.NotEqual(t, f1.Handle, f2.Handle)
}

func TestEmptyNameFallsBackToType(t *testing.T) {
	m := New()
	b := NewBoilerHotWater(m, "")
	assert.Equal(t, "Boiler:HotWater", b.Name)
}

func TestModelRegistriesAndLookups(t *testing.T) {
	m := New()

	zone := NewThermalZone(m, "Zone 1")
	loop := NewPlantLoop(m, "Hot Water Loop")
	air := NewAirLoop(m, "VAV")

	require.Len(t, m.Zones, 1)
	require.Len(t, m.PlantLoops, 1)
	require.Len(t, m.AirLoops, 1)

	assert.Equal(t, zone, m.GetZoneByName("Zone 1"))
	assert.Equal(t, loop, m.GetPlantLoopByName("Hot Water Loop"))
	assert.Equal(t, air, m.GetAirLoopByName("VAV"))
	assert.Nil(t, m.GetPlantLoopByName("Chilled Water Loop"))

	tower := NewCoolingTowerSingleSpeed(m, "Tower")
	assert.Equal(t, tower, m.GetObjectByName("Tower"))
	assert.Nil(t, m.GetObjectByName("Missing"))

	counts := m.ObjectCounts()
	assert.Equal(t, 1, counts["ThermalZone"])
	assert.Equal(t, 1, counts["PlantLoop"])
	assert.Equal(t, 1, counts["AirLoopHVAC"])
}

func TestPlantLoopComponentOrder(t *testing.T) {
	m := New()
	loop := NewPlantLoop(m, "Loop")

	pump := NewPumpVariableSpeed(m, "Pump")
	boiler := NewBoilerHotWater(m, "Boiler")
	loop.AddSupplyComponent(pump)
	loop.AddSupplyComponent(boiler)

	assert.Equal(t, []string{"Pump", "Boiler"}, loop.SupplyComponentNames())
	assert.Len(t, loop.SupplyComponentsOfType("Boiler:HotWater"), 1)
}

func TestWaterCoilAttachesToLoopDemandSide(t *testing.T) {
	m := New()
	loop := NewPlantLoop(m, "Hot Water Loop")

	coil := NewCoilHeatingWater(m, "Heating Coil", loop)

	require.Len(t, loop.DemandComponents, 1)
	assert.Equal(t, "Hot Water Loop", coil.PlantLoopName)
}

func TestWaterCoilWithNilLoopStaysUnattached(t *testing.T) {
	m := New()
	coil := NewCoilCoolingWater(m, "Cooling Coil", nil)
	assert.Empty(t, coil.PlantLoopName)
}

func TestAttachTerminalWiresZoneAndLoop(t *testing.T) {
	m := New()
	zone := NewThermalZone(m, "Zone 1")
	air := NewAirLoop(m, "VAV")
	terminal := NewTerminalVAVNoReheat(m, "Zone 1 Terminal")

	air.AttachTerminal(zone, terminal)

	assert.Equal(t, terminal, air.Terminals["Zone 1"])
	assert.Equal(t, []string{"Zone 1 Terminal"}, zone.EquipmentNames())
}

func TestCurveEvaluation(t *testing.T) {
	m := New()

	quad := NewCurveQuadratic(m, "quad")
	quad.C1, quad.C2, quad.C3 = 1.0, 2.0, 3.0
	assert.InDelta(t, 1.0, quad.Evaluate(0), 1e-9)
	assert.InDelta(t, 6.0, quad.Evaluate(1), 1e-9)
	assert.InDelta(t, 17.0, quad.Evaluate(2), 1e-9)

	cubic := NewCurveCubic(m, "cubic")
	cubic.C1, cubic.C2, cubic.C3, cubic.C4 = 0, 0, 0, 1
	assert.InDelta(t, 8.0, cubic.Evaluate(2), 1e-9)

	biq := NewCurveBiquadratic(m, "biq")
	biq.SetCoefficients([6]float64{1, 1, 0, 1, 0, 1})
	// 1 + x + y + xy at (2,3)
	assert.InDelta(t, 12.0, biq.Evaluate(2, 3), 1e-9)

	lin := NewCurveLinear(m, "lin")
	lin.C1, lin.C2 = 0.5, 2.0
	assert.InDelta(t, 4.5, lin.Evaluate(2), 1e-9)

	exp := NewCurveExponent(m, "exp")
	exp.C1, exp.C2, exp.C3 = 0.0, 1.0, 2.5
	assert.InDelta(t, 5.656854, exp.Evaluate(2), 1e-6)

	bic := NewCurveBicubic(m, "bic")
	bic.C1, bic.C7, bic.C10 = 1.0, 1.0, 1.0
	// 1 + x^3 + x*y^2 at (2,3)
	assert.InDelta(t, 27.0, bic.Evaluate(2, 3), 1e-9)
}

func TestCurveClampsToLimits(t *testing.T) {
	m := New()
	quad := NewCurveQuadratic(m, "quad")
	quad.C1, quad.C2 = 0.0, 1.0
	quad.MinX, quad.MaxX = 0.5, 1.0

	assert.InDelta(t, 0.5, quad.Evaluate(0.1), 1e-9)
	assert.InDelta(t, 1.0, quad.Evaluate(5.0), 1e-9)
}
