package auxiliary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlubun/openstudio-standards/internal/model"
)

func TestAddElevators(t *testing.T) {
	m := model.New()
	zone := model.NewThermalZone(m, "Machine Room")

	load := AddElevators(m, zone, 2, 20370.0)
	require.NotNil(t, load)

	assert.Equal(t, "Machine Room", load.ZoneName)
	assert.InDelta(t, 40740.0, load.DesignLevelW, 0.01)
	assert.Equal(t, "Elevators", load.EndUse)
	require.NotNil(t, load.Schedule)
}

func TestAddElevatorsRejectsBadInput(t *testing.T) {
	m := model.New()
	zone := model.NewThermalZone(m, "Machine Room")

	assert.Nil(t, AddElevators(m, nil, 2, 20370.0))
	assert.Nil(t, AddElevators(m, zone, 0, 20370.0))
}

func TestAddExhaustFan(t *testing.T) {
	m := model.New()
	zone := model.NewThermalZone(m, "Kitchen")

	fan := AddExhaustFan(m, zone, 0.5)
	require.NotNil(t, fan)

	require.NotNil(t, fan.MaximumFlowM3s)
	assert.InDelta(t, 0.5, *fan.MaximumFlowM3s, 1e-9)
	assert.Contains(t, zone.EquipmentNames(), fan.Name)

	require.NotNil(t, fan.AvailabilitySchedule)
	assert.InDelta(t, 1.0, fan.AvailabilitySchedule.Value, 1e-9)
	assert.Equal(t, fan.AvailabilitySchedule.Name, fan.AvailabilityScheduleName)
}

func TestAddDataCenterHumidification(t *testing.T) {
	m := model.New()
	airLoop := model.NewAirLoop(m, "CRAH")

	humidifier := AddDataCenterHumidification(m, airLoop)
	require.NotNil(t, humidifier)

	assert.Equal(t, "CRAH", humidifier.AirLoopName)
	require.NotNil(t, humidifier.MinHumiditySchedule)
	assert.InDelta(t, 45.0, humidifier.MinHumiditySchedule.DefaultValue, 0.01)
	assert.Contains(t, airLoop.SupplyComponentNames(), humidifier.Name)

	assert.Nil(t, AddDataCenterHumidification(m, nil))
}

func TestAddRefrigerationRack(t *testing.T) {
	m := model.New()
	zone := model.NewThermalZone(m, "Sales")

	system := AddRefrigerationRack(m, zone, 3, 8.0)
	require.NotNil(t, system)

	require.Len(t, system.Cases, 3)
	assert.Equal(t, "Sales", system.Cases[0].ZoneName)
	assert.InDelta(t, 8.0, system.Cases[0].LengthM, 1e-9)

	// 3 cases * 8 m * 734 W/m = 17616 W of case load -> two compressors
	require.Len(t, system.Compressors, 2)
	require.NotNil(t, system.Condenser)
	assert.InDelta(t, 880.8, system.Condenser.RatedFanPowerW, 0.1)

	assert.Nil(t, AddRefrigerationRack(m, nil, 3, 8.0))
	assert.Nil(t, AddRefrigerationRack(m, zone, 0, 8.0))
}
