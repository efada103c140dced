package standards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

func TestApplyBoilerEfficiency(t *testing.T) {
	tests := []struct {
		name     string
		fuel     string
		capBtuH  float64
		wantEff  float64
	}{
		{"small gas boiler rated AFUE 80", model.FuelNaturalGas, 200000, 0.680},
		{"medium gas boiler Et 80", model.FuelNaturalGas, 1000000, 0.800},
		{"large gas boiler Et 82", model.FuelNaturalGas, 3000000, 0.820},
		{"small oil boiler rated AFUE 83", model.FuelFuelOil, 200000, 0.702},
		{"large oil boiler Et 83", model.FuelFuelOil, 3000000, 0.830},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.New()
			boiler := model.NewBoilerHotWater(m, "Boiler")
			boiler.FuelType = tt.fuel
			boiler.NominalCapacityW = model.Float(units.BtuHToWatts(tt.capBtuH))

			require.NoError(t, ApplyBoilerEfficiency(m, boiler))
			assert.InDelta(t, tt.wantEff, boiler.ThermalEfficiency, 0.001)
			require.NotNil(t, boiler.EfficiencyCurve)
			assert.Equal(t, boiler.EfficiencyCurve.Name, boiler.EfficiencyCurveName)
		})
	}
}

func TestApplyBoilerEfficiencyElectric(t *testing.T) {
	m := model.New()
	boiler := model.NewBoilerHotWater(m, "Boiler")
	boiler.FuelType = model.FuelElectricity
	boiler.NominalCapacityW = model.Float(100000)

	require.NoError(t, ApplyBoilerEfficiency(m, boiler))
	assert.Equal(t, 1.0, boiler.ThermalEfficiency)
}

func TestApplyBoilerEfficiencyUnsized(t *testing.T) {
	m := model.New()
	boiler := model.NewBoilerHotWater(m, "Boiler")

	err := ApplyBoilerEfficiency(m, boiler)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSized)
}

func TestApplyChillerEfficiency(t *testing.T) {
	tests := []struct {
		name           string
		compressorType string
		condenserType  string
		capTons        float64
		wantKWPerTon   float64
	}{
		{"small centrifugal", "Centrifugal", "WaterCooled", 100, 0.703},
		{"medium centrifugal", "Centrifugal", "WaterCooled", 200, 0.634},
		{"large centrifugal", "Centrifugal", "WaterCooled", 500, 0.576},
		{"small screw", "Screw", "WaterCooled", 50, 0.790},
		{"large screw", "Screw", "WaterCooled", 400, 0.620},
		{"air cooled scroll", "Scroll", "AirCooled", 100, 1.256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.New()
			chiller := model.NewChillerElectricEIR(m, "Chiller")
			chiller.CompressorType = tt.compressorType
			chiller.CondenserType = tt.condenserType
			chiller.ReferenceCapacityW = model.Float(units.TonsToWatts(tt.capTons))

			require.NoError(t, ApplyChillerEfficiency(m, chiller))
			assert.InDelta(t, units.KWPerTonToCOP(tt.wantKWPerTon), chiller.ReferenceCOP, 0.001)
			require.NotNil(t, chiller.CapFT)
			require.NotNil(t, chiller.EIRFT)
			require.NotNil(t, chiller.EIRFPLR)
		})
	}
}

func TestApplyChillerEfficiencyUnsized(t *testing.T) {
	m := model.New()
	chiller := model.NewChillerElectricEIR(m, "Chiller")
	assert.ErrorIs(t, ApplyChillerEfficiency(m, chiller), ErrNotSized)
}

func TestChillerCurveSanityAtReference(t *testing.T) {
	m := model.New()
	chiller := model.NewChillerElectricEIR(m, "Chiller")
	chiller.ReferenceCapacityW = model.Float(units.TonsToWatts(200))

	require.NoError(t, ApplyChillerEfficiency(m, chiller))

	// near 1.0 at the 6.7C/29.4C rating point
	assert.InDelta(t, 1.0, chiller.CapFT.Evaluate(6.7, 29.4), 0.05)
	assert.InDelta(t, 1.0, chiller.EIRFPLR.Evaluate(1.0), 0.01)
}

func TestApplyDXCoolingEfficiency(t *testing.T) {
	tests := []struct {
		name    string
		capBtuH float64
		wantCOP float64
	}{
		{"residential scale uses SEER 13", 36000, seerToCOP(13.0)},
		{"light commercial uses EER 11", 90000, eerToCOP(11.0)},
		{"mid commercial uses EER 10.8", 180000, eerToCOP(10.8)},
		{"large commercial uses EER 9.8", 400000, eerToCOP(9.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.New()
			coil := model.NewCoilCoolingDXSingleSpeed(m, "DX Coil")
			coil.RatedCapacityW = model.Float(units.BtuHToWatts(tt.capBtuH))

			require.NoError(t, ApplyDXCoolingEfficiency(m, coil))
			assert.InDelta(t, tt.wantCOP, coil.RatedCOP, 0.001)
			require.NotNil(t, coil.CapFT)
			require.NotNil(t, coil.PLF)
		})
	}
}

func TestSEERAndEERConversions(t *testing.T) {
	// SEER 13 is just shy of COP 3.7 without fan power
	assert.InDelta(t, 3.65, seerToCOP(13.0), 0.01)
	// EER 11 with the 0.12 fan fraction backed out comes to about 3.8
	assert.InDelta(t, 3.80, eerToCOP(11.0), 0.01)
	// HSPF 7.7 lands near COP 3.3
	assert.InDelta(t, 3.29, hspfToCOP(7.7), 0.01)
}

func TestApplyDXTwoSpeedCoolingEfficiency(t *testing.T) {
	m := model.New()
	coil := model.NewCoilCoolingDXTwoSpeed(m, "DX 2spd Coil")
	coil.RatedCapacityW = model.Float(units.BtuHToWatts(200000))

	require.NoError(t, ApplyDXTwoSpeedCoolingEfficiency(m, coil))
	assert.InDelta(t, coil.RatedHighSpeedCOP*0.85, coil.RatedLowSpeedCOP, 0.001)
}

func TestApplyDXHeatingEfficiency(t *testing.T) {
	tests := []struct {
		name    string
		capBtuH float64
		wantCOP float64
	}{
		{"small heat pump uses HSPF 7.7", 40000, hspfToCOP(7.7)},
		{"large heat pump uses COP 3.3", 100000, 3.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.New()
			coil := model.NewCoilHeatingDXSingleSpeed(m, "HP Coil")
			coil.RatedCapacityW = model.Float(units.BtuHToWatts(tt.capBtuH))

			require.NoError(t, ApplyDXHeatingEfficiency(m, coil))
			assert.InDelta(t, tt.wantCOP, coil.RatedCOP, 0.001)
		})
	}
}

func TestApplyWaterHeaterEfficiencyGas(t *testing.T) {
	m := model.New()
	heater := model.NewWaterHeaterMixed(m, "Water Heater")
	heater.FuelType = model.FuelNaturalGas
	heater.TankVolumeM3 = model.Float(units.GallonsToM3(100))
	heater.HeaterCapacityW = model.Float(units.BtuHToWatts(199000))

	require.NoError(t, ApplyWaterHeaterEfficiency(heater))
	assert.InDelta(t, 0.80, heater.ThermalEfficiency, 0.001)

	// SL = 199000/800 + 110*sqrt(100) = 1348.75 Btu/h over a 27.78K delta
	wantUA := units.BtuHToWatts(1348.75) / (50.0 / 1.8)
	assert.InDelta(t, wantUA, heater.OffCycleLossCoefficientWPerK, 0.01)
	assert.Equal(t, heater.OffCycleLossCoefficientWPerK, heater.OnCycleLossCoefficientWPerK)
}

func TestApplyWaterHeaterEfficiencyElectric(t *testing.T) {
	m := model.New()
	heater := model.NewWaterHeaterMixed(m, "Water Heater")
	heater.FuelType = model.FuelElectricity
	heater.TankVolumeM3 = model.Float(units.GallonsToM3(50))
	heater.HeaterCapacityW = model.Float(4500)

	require.NoError(t, ApplyWaterHeaterEfficiency(heater))
	assert.Equal(t, 1.0, heater.ThermalEfficiency)
	assert.Greater(t, heater.OffCycleLossCoefficientWPerK, 0.0)
}

func TestApplyWaterHeaterEfficiencyUnsized(t *testing.T) {
	m := model.New()
	heater := model.NewWaterHeaterMixed(m, "Water Heater")
	assert.ErrorIs(t, ApplyWaterHeaterEfficiency(heater), ErrNotSized)
}

func TestMotorEfficiencyTiers(t *testing.T) {
	tests := []struct {
		bhp  float64
		want float64
	}{
		{0.5, 0.855},
		{1.2, 0.865},
		{4.0, 0.895},
		{9.0, 0.917},
		{45.0, 0.945},
		{500.0, 0.962},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, motorEfficiencyForBHP(tt.bhp), "bhp=%v", tt.bhp)
	}
}

func TestApplyFanMotorEfficiency(t *testing.T) {
	m := model.New()
	fan := model.NewFanVariableVolume(m, "Fan")
	fan.PressureRisePa = 1000.0
	fan.MaximumFlowM3s = model.Float(10.0)

	require.NoError(t, ApplyFanMotorEfficiency(fan))
	// 10 m3/s * 1000 Pa / 0.6045 = 16.5 kW, about 22 bhp
	assert.Equal(t, 0.936, fan.MotorEfficiency)

	unsized := model.NewFanVariableVolume(m, "Unsized Fan")
	assert.ErrorIs(t, ApplyFanMotorEfficiency(unsized), ErrNotSized)
}

func TestApplyPumpMotorEfficiency(t *testing.T) {
	m := model.New()
	pump := model.NewPumpVariableSpeed(m, "Pump")
	pump.RatedHeadPa = units.FtH2OToPascals(60)
	pump.RatedFlowM3s = model.Float(0.01)

	require.NoError(t, ApplyPumpMotorEfficiency(pump))
	// 0.01 m3/s * 179 kPa / 0.78 = 2.3 kW, about 3 bhp
	assert.Equal(t, 0.895, pump.MotorEfficiency)
}

func TestApplyCoolingTowerPerformance(t *testing.T) {
	m := model.New()
	tower := model.NewCoolingTowerVariableSpeed(m, "Tower")
	tower.DesignWaterFlowM3s = model.Float(units.GPMToM3s(764))

	require.NoError(t, ApplyCoolingTowerPerformance(tower))
	require.NotNil(t, tower.FanPowerW)
	// 764 gpm / 38.2 gpm/hp = 20 hp
	assert.InDelta(t, units.HPToWatts(20), *tower.FanPowerW, 1.0)

	unsized := model.NewCoolingTowerVariableSpeed(m, "Unsized Tower")
	assert.ErrorIs(t, ApplyCoolingTowerPerformance(unsized), ErrNotSized)
}
