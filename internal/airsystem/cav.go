package airsystem

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// AddCAV builds a constant air volume system with hot and chilled water coils
// and a plain diffuser per zone.
func AddCAV(m *model.Model, zones []*model.ThermalZone, hotWaterLoop, chilledWaterLoop *model.PlantLoop) *model.AirLoop {
	if len(zones) == 0 {
		log.Warn().Msg("CAV requested with no zones")
		return nil
	}
	if hotWaterLoop == nil || chilledWaterLoop == nil {
		log.Error().
			Bool("hot_water_loop", hotWaterLoop != nil).
			Bool("chilled_water_loop", chilledWaterLoop != nil).
			Msg("CAV requires hot and chilled water loops")
		return nil
	}
	log.Info().Int("zones", len(zones)).Msg("Adding CAV system")

	loop := model.NewAirLoop(m, "CAV")
	loop.SystemType = "CAV"
	loop.NightCycleControl = "CycleOnAny"
	loop.Sizing = model.SizingSystem{
		TypeOfLoad:                "Sensible",
		CentralCoolingSupplyC:     units.FToC(55),
		CentralHeatingSupplyC:     units.FToC(104),
		MinimumSystemAirFlowRatio: 1.0,
	}

	oa := model.NewOutdoorAirSystem(m, "CAV OA System")
	oa.EconomizerControlType = "DifferentialDryBulb"
	loop.AddSupplyComponent(oa)

	coolingCoil := model.NewCoilCoolingWater(m, "CAV Cooling Coil", chilledWaterLoop)
	loop.AddSupplyComponent(coolingCoil)

	heatingCoil := model.NewCoilHeatingWater(m, "CAV Heating Coil", hotWaterLoop)
	loop.AddSupplyComponent(heatingCoil)

	fan := model.NewFanConstantVolume(m, "CAV Fan")
	fan.PressureRisePa = 500.0
	loop.AddSupplyComponent(fan)

	sched := model.NewScheduleRuleset(m, "CAV Supply Temp Schedule", units.FToC(55))
	loop.SetpointManager = model.NewSetpointManagerScheduled(m, "CAV Supply Setpoint Manager", sched)

	for _, zone := range zones {
		terminal := model.NewTerminalConstantVolume(m, fmt.Sprintf("%s CAV Terminal", zone.Name))
		terminal.ZoneName = zone.Name
		loop.AttachTerminal(zone, terminal)
	}

	return loop
}
