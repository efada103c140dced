package plantloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlubun/openstudio-standards/internal/model"
)

func TestAddHotWaterLoopGasBoiler(t *testing.T) {
	m := model.New()

	loop := AddHotWaterLoop(m, model.FuelNaturalGas)
	require.NotNil(t, loop)

	assert.Equal(t, "Heating", loop.Sizing.LoopType)
	assert.InDelta(t, 82.22, loop.Sizing.DesignLoopExitTempC, 0.01)
	assert.InDelta(t, 11.11, loop.Sizing.LoopDesignDeltaTC, 0.01)

	boilers := loop.SupplyComponentsOfType("Boiler:HotWater")
	require.Len(t, boilers, 1)
	assert.Equal(t, model.FuelNaturalGas, boilers[0].(*model.BoilerHotWater).FuelType)

	pumps := loop.SupplyComponentsOfType("Pump:VariableSpeed")
	require.Len(t, pumps, 1)
	assert.InDelta(t, 179344.0, pumps[0].(*model.PumpVariableSpeed).RatedHeadPa, 1.0)

	spm, ok := loop.SetpointManager.(*model.SetpointManagerOutdoorAirReset)
	require.True(t, ok)
	assert.InDelta(t, 82.22, spm.SetpointAtOutdoorLowC, 0.01)
	assert.InDelta(t, 65.56, spm.SetpointAtOutdoorHighC, 0.01)
}

func TestAddHotWaterLoopDistrict(t *testing.T) {
	m := model.New()

	loop := AddHotWaterLoop(m, model.FuelDistrict)
	require.NotNil(t, loop)

	assert.Empty(t, loop.SupplyComponentsOfType("Boiler:HotWater"))
	assert.Len(t, loop.SupplyComponentsOfType("DistrictHeating"), 1)
}

func TestAddChilledWaterLoopWaterCooled(t *testing.T) {
	m := model.New()
	cwLoop := AddCondenserWaterLoop(m)
	require.NotNil(t, cwLoop)

	chwLoop := AddChilledWaterLoop(m, cwLoop, "Centrifugal")
	require.NotNil(t, chwLoop)

	assert.InDelta(t, 6.67, chwLoop.Sizing.DesignLoopExitTempC, 0.01)

	chillers := chwLoop.SupplyComponentsOfType("Chiller:Electric:EIR")
	require.Len(t, chillers, 1)
	chiller := chillers[0].(*model.ChillerElectricEIR)
	assert.Equal(t, "WaterCooled", chiller.CondenserType)
	assert.Equal(t, "Centrifugal", chiller.CompressorType)

	// chiller condenser hangs on the condenser loop demand side
	require.Len(t, cwLoop.DemandComponents, 1)
	assert.Equal(t, chiller.Name, cwLoop.DemandComponents[0].ObjectName())

	// primary constant + secondary variable pumping
	assert.Len(t, chwLoop.SupplyComponentsOfType("Pump:ConstantSpeed"), 1)
	assert.Len(t, chwLoop.SupplyComponentsOfType("Pump:VariableSpeed"), 1)
}

func TestAddChilledWaterLoopAirCooled(t *testing.T) {
	m := model.New()

	chwLoop := AddChilledWaterLoop(m, nil, "Scroll")
	require.NotNil(t, chwLoop)

	chiller := chwLoop.SupplyComponentsOfType("Chiller:Electric:EIR")[0].(*model.ChillerElectricEIR)
	assert.Equal(t, "AirCooled", chiller.CondenserType)
}

func TestAddChilledWaterLoopDistrict(t *testing.T) {
	m := model.New()

	chwLoop := AddChilledWaterLoop(m, nil, ChillerDistrict)
	require.NotNil(t, chwLoop)

	assert.Empty(t, chwLoop.SupplyComponentsOfType("Chiller:Electric:EIR"))
	require.Len(t, chwLoop.SupplyComponentsOfType("DistrictCooling"), 1)

	district, ok := m.GetObjectByName("District Cooling").(*model.DistrictCooling)
	require.True(t, ok)
	assert.Nil(t, district.NominalCapacityW)
}

func TestAddCondenserWaterLoop(t *testing.T) {
	m := model.New()

	loop := AddCondenserWaterLoop(m)
	require.NotNil(t, loop)

	assert.Equal(t, "Condenser", loop.Sizing.LoopType)
	assert.Len(t, loop.SupplyComponentsOfType("CoolingTower:VariableSpeed"), 1)

	spm, ok := loop.SetpointManager.(*model.SetpointManagerFollowOutdoorAirTemperature)
	require.True(t, ok)
	assert.Equal(t, "OutdoorAirWetBulb", spm.ReferenceTemperatureType)
	assert.InDelta(t, 3.89, spm.OffsetC, 0.01)
}

func TestAddHeatPumpLoop(t *testing.T) {
	m := model.New()

	loop := AddHeatPumpLoop(m)
	require.NotNil(t, loop)

	assert.Len(t, loop.SupplyComponentsOfType("EvaporativeFluidCooler:SingleSpeed"), 1)
	assert.Len(t, loop.SupplyComponentsOfType("Boiler:HotWater"), 1)

	spm, ok := loop.SetpointManager.(*model.SetpointManagerScheduledDualSetpoint)
	require.True(t, ok)
	require.NotNil(t, spm.HighSchedule)
	require.NotNil(t, spm.LowSchedule)
	assert.InDelta(t, 30.0, spm.HighSchedule.DefaultValue, 0.01)
	assert.InDelta(t, 20.0, spm.LowSchedule.DefaultValue, 0.01)
}

func TestAddServiceWaterHeatingLoop(t *testing.T) {
	m := model.New()

	loop := AddServiceWaterHeatingLoop(m, model.FuelNaturalGas, 0.757, 58600)
	require.NotNil(t, loop)

	heaters := loop.SupplyComponentsOfType("WaterHeater:Mixed")
	require.Len(t, heaters, 1)
	heater := heaters[0].(*model.WaterHeaterMixed)
	require.NotNil(t, heater.TankVolumeM3)
	assert.InDelta(t, 0.757, *heater.TankVolumeM3, 0.001)
	require.NotNil(t, heater.SetpointSchedule)
	assert.InDelta(t, 60.0, heater.SetpointSchedule.DefaultValue, 0.01)
}

func TestAddServiceWaterHeatingLoopRejectsZeroVolume(t *testing.T) {
	m := model.New()
	assert.Nil(t, AddServiceWaterHeatingLoop(m, model.FuelNaturalGas, 0, 58600))
}
