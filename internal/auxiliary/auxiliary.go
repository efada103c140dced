// Package auxiliary builds the non-HVAC equipment templates: elevator loads,
// zone exhaust fans, data center humidification, and refrigeration racks.
package auxiliary

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
)

// AddElevators places the elevator motor load in the machine room zone.
func AddElevators(m *model.Model, zone *model.ThermalZone, count int, motorPowerW float64) *model.ElectricLoad {
	if zone == nil {
		log.Error().Msg("Elevators require a machine room zone")
		return nil
	}
	if count <= 0 {
		log.Warn().Int("count", count).Msg("Elevator count must be positive")
		return nil
	}
	log.Info().Str("zone", zone.Name).Int("count", count).Msg("Adding elevators")

	load := model.NewElectricLoad(m, fmt.Sprintf("%s Elevator Load", zone.Name))
	load.ZoneName = zone.Name
	load.DesignLevelW = float64(count) * motorPowerW
	load.EndUse = "Elevators"
	load.SetSchedule(model.NewScheduleRuleset(m, "Elevator Operation Schedule", 0.3))
	return load
}

// AddExhaustFan hangs a zone exhaust fan with the given design flow.
func AddExhaustFan(m *model.Model, zone *model.ThermalZone, flowM3s float64) *model.FanZoneExhaust {
	if zone == nil {
		log.Error().Msg("Exhaust fan requires a zone")
		return nil
	}
	log.Info().Str("zone", zone.Name).Float64("flow_m3s", flowM3s).Msg("Adding exhaust fan")

	fan := model.NewFanZoneExhaust(m, fmt.Sprintf("%s Exhaust Fan", zone.Name))
	fan.ZoneName = zone.Name
	fan.MaximumFlowM3s = model.Float(flowM3s)
	fan.PressureRisePa = 125.0
	fan.SetAvailabilitySchedule(model.NewScheduleConstant(m, fmt.Sprintf("%s Exhaust Fan Schedule", zone.Name), 1.0))
	zone.AddEquipment(fan)
	return fan
}

// AddDataCenterHumidification puts an electric steam humidifier on the air
// loop with a 45% minimum relative humidity schedule.
func AddDataCenterHumidification(m *model.Model, airLoop *model.AirLoop) *model.HumidifierSteamElectric {
	if airLoop == nil {
		log.Error().Msg("Humidification requires an air loop")
		return nil
	}
	log.Info().Str("air_loop", airLoop.Name).Msg("Adding data center humidification")

	humidifier := model.NewHumidifierSteamElectric(m, fmt.Sprintf("%s Humidifier", airLoop.Name))
	humidifier.AirLoopName = airLoop.Name
	sched := model.NewScheduleRuleset(m, fmt.Sprintf("%s Min Humidity Schedule", airLoop.Name), 45.0)
	humidifier.MinHumiditySchedule = sched
	humidifier.MinHumidityScheduleName = sched.Name
	airLoop.AddSupplyComponent(humidifier)
	return humidifier
}

// AddRefrigerationRack builds a refrigeration system: display cases in the
// zone, a compressor rack sized to the case load, and an air cooled condenser.
func AddRefrigerationRack(m *model.Model, zone *model.ThermalZone, caseCount int, caseLengthM float64) *model.RefrigerationSystem {
	if zone == nil {
		log.Error().Msg("Refrigeration rack requires a zone")
		return nil
	}
	if caseCount <= 0 {
		log.Warn().Int("case_count", caseCount).Msg("Refrigeration rack needs at least one case")
		return nil
	}
	log.Info().Str("zone", zone.Name).Int("cases", caseCount).Msg("Adding refrigeration rack")

	system := model.NewRefrigerationSystem(m, fmt.Sprintf("%s Refrigeration Rack", zone.Name))

	totalLoadW := 0.0
	for i := 0; i < caseCount; i++ {
		rcase := model.NewRefrigerationCase(m, fmt.Sprintf("%s Display Case %d", zone.Name, i+1))
		rcase.ZoneName = zone.Name
		rcase.LengthM = caseLengthM
		system.AddCase(rcase)
		totalLoadW += rcase.RatedCapacityWPerM * caseLengthM
	}

	// one compressor per 10 kW of case load, minimum one
	compressorCount := int(totalLoadW/10000.0) + 1
	for i := 0; i < compressorCount; i++ {
		comp := model.NewRefrigerationCompressor(m, fmt.Sprintf("%s Compressor %d", zone.Name, i+1))
		comp.RatedPowerW = totalLoadW / float64(compressorCount) * 0.4
		system.AddCompressor(comp)
	}

	condenser := model.NewRefrigerationCondenserAirCooled(m, fmt.Sprintf("%s Condenser", zone.Name))
	condenser.RatedFanPowerW = totalLoadW * 0.05
	system.SetCondenser(condenser)

	return system
}
