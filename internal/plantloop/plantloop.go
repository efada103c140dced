// Package plantloop builds the hydronic loop templates: hot water, chilled
// water, condenser water, the ambient heat pump loop, and service water
// heating. Each builder constructs the loop, its pump and primary equipment,
// and the setpoint manager, and returns the loop for downstream builders to
// attach coils to.
package plantloop

import (
	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// AddHotWaterLoop builds a 180F/20F delta-T hot water loop with a variable
// speed pump and one boiler of the requested fuel. A district fuel type swaps
// the boiler for a district heating connection.
func AddHotWaterLoop(m *model.Model, fuelType string) *model.PlantLoop {
	log.Info().Str("fuel", fuelType).Msg("Adding hot water loop")

	loop := model.NewPlantLoop(m, "Hot Water Loop")
	loop.MinimumLoopTempC = 10.0
	loop.MaximumLoopTempC = 100.0
	loop.Sizing = model.SizingPlant{
		LoopType:            "Heating",
		DesignLoopExitTempC: units.FToC(180),
		LoopDesignDeltaTC:   units.DeltaFToC(20),
	}

	pump := model.NewPumpVariableSpeed(m, "Hot Water Loop Pump")
	pump.RatedHeadPa = units.FtH2OToPascals(60)
	pump.Coeff1 = 0.0
	pump.Coeff2 = 3.2485
	pump.Coeff3 = -4.7443
	pump.Coeff4 = 2.5294
	loop.AddSupplyComponent(pump)

	if fuelType == model.FuelDistrict {
		district := model.NewDistrictHeating(m, "District Heating")
		loop.AddSupplyComponent(district)
	} else {
		boiler := model.NewBoilerHotWater(m, "Hot Water Loop Boiler")
		boiler.FuelType = fuelType
		boiler.DesignOutletTempC = units.FToC(180)
		loop.AddSupplyComponent(boiler)
	}

	spm := model.NewSetpointManagerOutdoorAirReset(m, "Hot Water Loop Setpoint Manager")
	spm.SetpointAtOutdoorLowC = units.FToC(180)
	spm.OutdoorLowC = units.FToC(20)
	spm.SetpointAtOutdoorHighC = units.FToC(150)
	spm.OutdoorHighC = units.FToC(50)
	loop.SetpointManager = spm

	return loop
}

// ChillerDistrict selects a purchased cooling connection in place of a
// chiller on the chilled water loop.
const ChillerDistrict = "District"

// AddChilledWaterLoop builds a primary/secondary 44F chilled water loop. When
// a condenser water loop is supplied the chiller is water cooled and its
// condenser side is attached to that loop's demand side. The district chiller
// type swaps the chiller for a district cooling connection.
func AddChilledWaterLoop(m *model.Model, condenserLoop *model.PlantLoop, chillerType string) *model.PlantLoop {
	log.Info().Str("chiller_type", chillerType).Msg("Adding chilled water loop")

	loop := model.NewPlantLoop(m, "Chilled Water Loop")
	loop.MinimumLoopTempC = 1.0
	loop.MaximumLoopTempC = 40.0
	loop.Sizing = model.SizingPlant{
		LoopType:            "Cooling",
		DesignLoopExitTempC: units.FToC(44),
		LoopDesignDeltaTC:   units.DeltaFToC(12),
	}

	primary := model.NewPumpConstantSpeed(m, "Chilled Water Loop Primary Pump")
	primary.RatedHeadPa = units.FtH2OToPascals(15)
	loop.AddSupplyComponent(primary)

	secondary := model.NewPumpVariableSpeed(m, "Chilled Water Loop Secondary Pump")
	secondary.RatedHeadPa = units.FtH2OToPascals(45)
	secondary.Coeff1 = 0.0
	secondary.Coeff2 = 3.2485
	secondary.Coeff3 = -4.7443
	secondary.Coeff4 = 2.5294
	loop.AddSupplyComponent(secondary)

	if chillerType == ChillerDistrict {
		district := model.NewDistrictCooling(m, "District Cooling")
		loop.AddSupplyComponent(district)
	} else {
		chiller := model.NewChillerElectricEIR(m, "Chilled Water Loop Chiller")
		chiller.CompressorType = chillerType
		chiller.LeavingWaterTempC = units.FToC(44)
		if condenserLoop != nil {
			chiller.CondenserType = "WaterCooled"
			condenserLoop.AddDemandComponent(chiller)
		} else {
			chiller.CondenserType = "AirCooled"
		}
		loop.AddSupplyComponent(chiller)
	}

	spm := model.NewSetpointManagerOutdoorAirReset(m, "Chilled Water Loop Setpoint Manager")
	spm.SetpointAtOutdoorLowC = units.FToC(54)
	spm.OutdoorLowC = units.FToC(60)
	spm.SetpointAtOutdoorHighC = units.FToC(44)
	spm.OutdoorHighC = units.FToC(80)
	loop.SetpointManager = spm

	return loop
}

// AddCondenserWaterLoop builds the tower loop serving water cooled chillers.
func AddCondenserWaterLoop(m *model.Model) *model.PlantLoop {
	log.Info().Msg("Adding condenser water loop")

	loop := model.NewPlantLoop(m, "Condenser Water Loop")
	loop.MinimumLoopTempC = 5.0
	loop.MaximumLoopTempC = 80.0
	loop.Sizing = model.SizingPlant{
		LoopType:            "Condenser",
		DesignLoopExitTempC: units.FToC(85),
		LoopDesignDeltaTC:   units.DeltaFToC(10),
	}

	pump := model.NewPumpConstantSpeed(m, "Condenser Water Loop Pump")
	pump.RatedHeadPa = units.FtH2OToPascals(49.7)
	loop.AddSupplyComponent(pump)

	tower := model.NewCoolingTowerVariableSpeed(m, "Condenser Water Loop Cooling Tower")
	tower.DesignRangeC = units.DeltaFToC(10)
	tower.DesignApproachC = units.DeltaFToC(7)
	loop.AddSupplyComponent(tower)

	spm := model.NewSetpointManagerFollowOutdoorAirTemperature(m, "Condenser Water Loop Setpoint Manager")
	spm.OffsetC = units.DeltaFToC(7)
	spm.MaximumSetpointC = units.FToC(85)
	spm.MinimumSetpointC = units.FToC(70)
	loop.SetpointManager = spm

	return loop
}

// AddHeatPumpLoop builds the ambient loop water-to-air heat pumps reject to
// and draw from: a fluid cooler and a boiler hold the loop in a 68F to 86F
// band.
func AddHeatPumpLoop(m *model.Model) *model.PlantLoop {
	log.Info().Msg("Adding heat pump loop")

	loop := model.NewPlantLoop(m, "Heat Pump Loop")
	loop.MinimumLoopTempC = 5.0
	loop.MaximumLoopTempC = 80.0
	loop.Sizing = model.SizingPlant{
		LoopType:            "Heating",
		DesignLoopExitTempC: units.FToC(86),
		LoopDesignDeltaTC:   units.DeltaFToC(10),
	}

	pump := model.NewPumpConstantSpeed(m, "Heat Pump Loop Pump")
	pump.RatedHeadPa = units.FtH2OToPascals(60)
	loop.AddSupplyComponent(pump)

	cooler := model.NewEvaporativeFluidCoolerSingleSpeed(m, "Heat Pump Loop Fluid Cooler")
	loop.AddSupplyComponent(cooler)

	boiler := model.NewBoilerHotWater(m, "Heat Pump Loop Boiler")
	boiler.DesignOutletTempC = units.FToC(86)
	loop.AddSupplyComponent(boiler)

	high := model.NewScheduleRuleset(m, "Heat Pump Loop High Temp Schedule", units.FToC(86))
	low := model.NewScheduleRuleset(m, "Heat Pump Loop Low Temp Schedule", units.FToC(68))
	loop.SetpointManager = model.NewSetpointManagerScheduledDualSetpoint(m, "Heat Pump Loop Setpoint Manager", high, low)

	return loop
}

// AddServiceWaterHeatingLoop builds the domestic hot water loop. Volume is in
// m3 and capacity in W; both land on the water heater for the efficiency
// standards to read back.
func AddServiceWaterHeatingLoop(m *model.Model, fuelType string, volumeM3, capacityW float64) *model.PlantLoop {
	if volumeM3 <= 0 {
		log.Error().Float64("volume_m3", volumeM3).Msg("Service water heating loop requires a tank volume")
		return nil
	}
	log.Info().Str("fuel", fuelType).Float64("volume_m3", volumeM3).Msg("Adding service water heating loop")

	loop := model.NewPlantLoop(m, "Service Water Loop")
	loop.MinimumLoopTempC = 10.0
	loop.MaximumLoopTempC = 60.0
	loop.Sizing = model.SizingPlant{
		LoopType:            "Heating",
		DesignLoopExitTempC: units.FToC(140),
		LoopDesignDeltaTC:   units.DeltaFToC(9),
	}

	pump := model.NewPumpConstantSpeed(m, "Service Water Loop Pump")
	pump.RatedHeadPa = units.FtH2OToPascals(0.2)
	loop.AddSupplyComponent(pump)

	heater := model.NewWaterHeaterMixed(m, "Service Water Heater")
	heater.FuelType = fuelType
	heater.TankVolumeM3 = model.Float(volumeM3)
	heater.HeaterCapacityW = model.Float(capacityW)
	sched := model.NewScheduleRuleset(m, "Service Water Temp Schedule", units.FToC(140))
	heater.SetSetpointSchedule(sched)
	loop.AddSupplyComponent(heater)

	loop.SetpointManager = model.NewSetpointManagerScheduled(m, "Service Water Loop Setpoint Manager", sched)

	return loop
}
