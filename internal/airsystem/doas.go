package airsystem

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// AddDOASFanCoils builds a neutral-air dedicated outdoor air system plus a
// four pipe fan coil in every zone. The DOAS handles ventilation only; the
// fan coils carry the zone loads.
func AddDOASFanCoils(m *model.Model, zones []*model.ThermalZone, hotWaterLoop, chilledWaterLoop *model.PlantLoop) *model.AirLoop {
	if len(zones) == 0 {
		log.Warn().Msg("DOAS requested with no zones")
		return nil
	}
	if hotWaterLoop == nil || chilledWaterLoop == nil {
		log.Error().
			Bool("hot_water_loop", hotWaterLoop != nil).
			Bool("chilled_water_loop", chilledWaterLoop != nil).
			Msg("DOAS with fan coils requires hot and chilled water loops")
		return nil
	}
	log.Info().Int("zones", len(zones)).Msg("Adding DOAS with fan coils")

	loop := model.NewAirLoop(m, "DOAS")
	loop.SystemType = "DOAS"
	loop.Sizing = model.SizingSystem{
		TypeOfLoad:             "VentilationRequirement",
		CentralCoolingSupplyC:  units.FToC(70),
		CentralHeatingSupplyC:  units.FToC(70),
		AllOutdoorAirInCooling: true,
		AllOutdoorAirInHeating: true,
	}

	oa := model.NewOutdoorAirSystem(m, "DOAS OA System")
	oa.MaximumOAFraction = 1.0
	loop.AddSupplyComponent(oa)

	coolingCoil := model.NewCoilCoolingWater(m, "DOAS Cooling Coil", chilledWaterLoop)
	loop.AddSupplyComponent(coolingCoil)

	heatingCoil := model.NewCoilHeatingWater(m, "DOAS Heating Coil", hotWaterLoop)
	loop.AddSupplyComponent(heatingCoil)

	fan := model.NewFanConstantVolume(m, "DOAS Fan")
	fan.PressureRisePa = 1000.0
	loop.AddSupplyComponent(fan)

	sched := model.NewScheduleRuleset(m, "DOAS Supply Temp Schedule", units.FToC(70))
	loop.SetpointManager = model.NewSetpointManagerScheduled(m, "DOAS Supply Setpoint Manager", sched)

	for _, zone := range zones {
		terminal := model.NewTerminalConstantVolume(m, fmt.Sprintf("%s DOAS Diffuser", zone.Name))
		terminal.ZoneName = zone.Name
		loop.AttachTerminal(zone, terminal)

		fcFan := model.NewFanOnOff(m, fmt.Sprintf("%s Fan Coil Fan", zone.Name))
		fcFan.PressureRisePa = 270.0
		fcHeating := model.NewCoilHeatingWater(m, fmt.Sprintf("%s Fan Coil Heating Coil", zone.Name), hotWaterLoop)
		fcCooling := model.NewCoilCoolingWater(m, fmt.Sprintf("%s Fan Coil Cooling Coil", zone.Name), chilledWaterLoop)
		fc := model.NewFourPipeFanCoil(m, fmt.Sprintf("%s Fan Coil", zone.Name), fcFan, fcHeating, fcCooling)
		fc.ZoneName = zone.Name
		zone.AddEquipment(fc)
	}

	return loop
}
