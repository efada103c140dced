package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/plantloop"
)

func TestSnapshotRoundTrip(t *testing.T) {
	dbConn, err := Open(":memory:")
	require.NoError(t, err)
	defer dbConn.Close()

	m := model.New()
	zone := model.NewThermalZone(m, "Core")
	hwLoop := plantloop.AddHotWaterLoop(m, model.FuelNaturalGas)
	require.NotNil(t, hwLoop)
	coil := model.NewCoilHeatingWater(m, "Core Reheat Coil", hwLoop)
	terminal := model.NewTerminalVAVReheat(m, "Core Terminal", coil)
	zone.AddEquipment(terminal)

	snapshotID, err := Snapshot(dbConn, m, "MediumOffice", "ASHRAE 169-2006-5A")
	require.NoError(t, err)
	require.Greater(t, snapshotID, int64(0))

	counts, err := CountObjectsByType(dbConn, snapshotID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["ThermalZone"])
	assert.Equal(t, 1, counts["PlantLoop"])
	assert.Equal(t, 1, counts["Boiler:HotWater"])
	assert.Equal(t, 1, counts["AirTerminal:SingleDuct:VAV:Reheat"])

	supply, err := GetLoopComponents(dbConn, snapshotID, "Hot Water Loop", "supply")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hot Water Loop Pump", "Hot Water Loop Boiler"}, supply)

	demand, err := GetLoopComponents(dbConn, snapshotID, "Hot Water Loop", "demand")
	require.NoError(t, err)
	assert.Equal(t, []string{"Core Reheat Coil"}, demand)

	equipment, err := GetZoneEquipment(dbConn, snapshotID, "Core")
	require.NoError(t, err)
	assert.Equal(t, []string{"Core Terminal"}, equipment)
}

func TestSnapshotStoresAttributes(t *testing.T) {
	dbConn, err := Open(":memory:")
	require.NoError(t, err)
	defer dbConn.Close()

	m := model.New()
	model.NewThermalZone(m, "Core")
	boiler := model.NewBoilerHotWater(m, "Boiler")
	boiler.ThermalEfficiency = 0.82

	snapshotID, err := Snapshot(dbConn, m, "MediumOffice", "ASHRAE 169-2006-5A")
	require.NoError(t, err)

	attrs, err := GetObjectAttributes(dbConn, snapshotID, "Boiler")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(attrs), &decoded))
	assert.InDelta(t, 0.82, decoded["thermal_efficiency"].(float64), 0.001)
	assert.Equal(t, model.FuelNaturalGas, decoded["fuel_type"])
}

func TestMultipleSnapshotsStayIsolated(t *testing.T) {
	dbConn, err := Open(":memory:")
	require.NoError(t, err)
	defer dbConn.Close()

	m1 := model.New()
	model.NewThermalZone(m1, "Core")
	id1, err := Snapshot(dbConn, m1, "SmallOffice", "5A")
	require.NoError(t, err)

	m2 := model.New()
	model.NewThermalZone(m2, "Core")
	model.NewThermalZone(m2, "Perimeter")
	id2, err := Snapshot(dbConn, m2, "MediumOffice", "5A")
	require.NoError(t, err)

	c1, err := CountObjectsByType(dbConn, id1)
	require.NoError(t, err)
	c2, err := CountObjectsByType(dbConn, id2)
	require.NoError(t, err)

	assert.Equal(t, 1, c1["ThermalZone"])
	assert.Equal(t, 2, c2["ThermalZone"])
}
