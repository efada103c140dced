package airsystem

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
)

// AddPTAC builds a packaged terminal air conditioner in every zone. The
// heating selector picks gas, electric, or hot water coils; water heating
// requires the hot water loop.
func AddPTAC(m *model.Model, zones []*model.ThermalZone, fanType, heatingType string, hotWaterLoop *model.PlantLoop) []*model.PTAC {
	if len(zones) == 0 {
		log.Warn().Msg("PTAC requested with no zones")
		return nil
	}
	if heatingType == HeatingWater && hotWaterLoop == nil {
		log.Error().Msg("PTAC with water heating requires a hot water loop")
		return nil
	}
	log.Info().Int("zones", len(zones)).Str("heating_type", heatingType).Msg("Adding PTACs")

	ptacs := make([]*model.PTAC, 0, len(zones))
	for _, zone := range zones {
		var fan model.ModelObject
		if fanType == FanConstantVolume {
			f := model.NewFanConstantVolume(m, fmt.Sprintf("%s PTAC Fan", zone.Name))
			f.PressureRisePa = 300.0
			fan = f
		} else {
			f := model.NewFanOnOff(m, fmt.Sprintf("%s PTAC Fan", zone.Name))
			f.PressureRisePa = 300.0
			fan = f
		}

		var heatingCoil model.ModelObject
		switch heatingType {
		case HeatingWater:
			heatingCoil = model.NewCoilHeatingWater(m, fmt.Sprintf("%s PTAC Heating Coil", zone.Name), hotWaterLoop)
		case HeatingElectric:
			heatingCoil = model.NewCoilHeatingElectric(m, fmt.Sprintf("%s PTAC Heating Coil", zone.Name))
		default:
			heatingCoil = model.NewCoilHeatingGas(m, fmt.Sprintf("%s PTAC Heating Coil", zone.Name))
		}

		coolingCoil := model.NewCoilCoolingDXSingleSpeed(m, fmt.Sprintf("%s PTAC 1spd DX Cooling Coil", zone.Name))

		ptac := model.NewPTAC(m, fmt.Sprintf("%s PTAC", zone.Name), fan, heatingCoil, coolingCoil)
		ptac.ZoneName = zone.Name
		ptac.ContinuousFan = fanType == FanConstantVolume
		zone.AddEquipment(ptac)
		ptacs = append(ptacs, ptac)
	}

	return ptacs
}

// AddPTHP builds a packaged terminal heat pump with an electric supplemental
// coil in every zone.
func AddPTHP(m *model.Model, zones []*model.ThermalZone) []*model.PTHP {
	if len(zones) == 0 {
		log.Warn().Msg("PTHP requested with no zones")
		return nil
	}
	log.Info().Int("zones", len(zones)).Msg("Adding PTHPs")

	pthps := make([]*model.PTHP, 0, len(zones))
	for _, zone := range zones {
		fan := model.NewFanOnOff(m, fmt.Sprintf("%s PTHP Fan", zone.Name))
		fan.PressureRisePa = 300.0
		heatingCoil := model.NewCoilHeatingDXSingleSpeed(m, fmt.Sprintf("%s PTHP Heating Coil", zone.Name))
		coolingCoil := model.NewCoilCoolingDXSingleSpeed(m, fmt.Sprintf("%s PTHP 1spd DX Cooling Coil", zone.Name))
		supplemental := model.NewCoilHeatingElectric(m, fmt.Sprintf("%s PTHP Supplemental Coil", zone.Name))

		pthp := model.NewPTHP(m, fmt.Sprintf("%s PTHP", zone.Name), fan, heatingCoil, coolingCoil, supplemental)
		pthp.ZoneName = zone.Name
		zone.AddEquipment(pthp)
		pthps = append(pthps, pthp)
	}

	return pthps
}

// AddUnitHeaters builds a unit heater per zone, gas fired unless the fuel
// selector says electric or hot water.
func AddUnitHeaters(m *model.Model, zones []*model.ThermalZone, fuelType string, hotWaterLoop *model.PlantLoop) []*model.UnitHeater {
	if len(zones) == 0 {
		log.Warn().Msg("Unit heaters requested with no zones")
		return nil
	}
	if fuelType == HeatingWater && hotWaterLoop == nil {
		log.Error().Msg("Hot water unit heaters require a hot water loop")
		return nil
	}
	log.Info().Int("zones", len(zones)).Str("fuel", fuelType).Msg("Adding unit heaters")

	heaters := make([]*model.UnitHeater, 0, len(zones))
	for _, zone := range zones {
		fan := model.NewFanConstantVolume(m, fmt.Sprintf("%s Unit Heater Fan", zone.Name))
		fan.PressureRisePa = 250.0

		var coil model.ModelObject
		switch fuelType {
		case model.FuelElectricity:
			coil = model.NewCoilHeatingElectric(m, fmt.Sprintf("%s Unit Heater Coil", zone.Name))
		case HeatingWater:
			coil = model.NewCoilHeatingWater(m, fmt.Sprintf("%s Unit Heater Coil", zone.Name), hotWaterLoop)
		default:
			coil = model.NewCoilHeatingGas(m, fmt.Sprintf("%s Unit Heater Coil", zone.Name))
		}

		heater := model.NewUnitHeater(m, fmt.Sprintf("%s Unit Heater", zone.Name), fan, coil)
		heater.ZoneName = zone.Name
		zone.AddEquipment(heater)
		heaters = append(heaters, heater)
	}

	return heaters
}

// AddHighTempRadiant builds a high temperature radiant heater per zone.
func AddHighTempRadiant(m *model.Model, zones []*model.ThermalZone, fuelType, controlType string) []*model.HighTempRadiant {
	if len(zones) == 0 {
		log.Warn().Msg("Radiant heaters requested with no zones")
		return nil
	}
	log.Info().Int("zones", len(zones)).Str("fuel", fuelType).Msg("Adding high temp radiant heaters")

	radiants := make([]*model.HighTempRadiant, 0, len(zones))
	for _, zone := range zones {
		radiant := model.NewHighTempRadiant(m, fmt.Sprintf("%s Radiant Heater", zone.Name))
		radiant.ZoneName = zone.Name
		radiant.FuelType = fuelType
		if controlType != "" {
			radiant.ControlType = controlType
		}
		zone.AddEquipment(radiant)
		radiants = append(radiants, radiant)
	}

	return radiants
}

// AddWSHPs builds a water-to-air heat pump in every zone, with both coils on
// the ambient heat pump loop.
func AddWSHPs(m *model.Model, zones []*model.ThermalZone, heatPumpLoop *model.PlantLoop) []*model.ZoneWaterToAirHeatPump {
	if len(zones) == 0 {
		log.Warn().Msg("WSHPs requested with no zones")
		return nil
	}
	if heatPumpLoop == nil {
		log.Error().Msg("WSHPs require a heat pump loop")
		return nil
	}
	log.Info().Int("zones", len(zones)).Msg("Adding water-to-air heat pumps")

	wshps := make([]*model.ZoneWaterToAirHeatPump, 0, len(zones))
	for _, zone := range zones {
		fan := model.NewFanOnOff(m, fmt.Sprintf("%s WSHP Fan", zone.Name))
		fan.PressureRisePa = 300.0
		heatingCoil := model.NewCoilHeatingWaterToAirHeatPump(m, fmt.Sprintf("%s WSHP Heating Coil", zone.Name), heatPumpLoop)
		coolingCoil := model.NewCoilCoolingWaterToAirHeatPump(m, fmt.Sprintf("%s WSHP Cooling Coil", zone.Name), heatPumpLoop)
		supplemental := model.NewCoilHeatingElectric(m, fmt.Sprintf("%s WSHP Supplemental Coil", zone.Name))

		wshp := model.NewZoneWaterToAirHeatPump(m, fmt.Sprintf("%s WSHP", zone.Name), fan, heatingCoil, coolingCoil, supplemental)
		wshp.ZoneName = zone.Name
		zone.AddEquipment(wshp)
		wshps = append(wshps, wshp)
	}

	return wshps
}
