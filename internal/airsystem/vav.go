// Package airsystem builds the air-side HVAC archetypes: VAV and CAV central
// systems, packaged single zone units, dedicated outdoor air systems, and the
// zone-level packaged equipment families. Builders wire one terminal or unit
// per served zone and return the constructed loop(s). A missing collaborator
// (no zones, absent plant loop for a water coil) is logged and yields a nil or
// empty result.
package airsystem

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// Fan and coil selector strings accepted by the builders.
const (
	FanConstantVolume = "ConstantVolume"
	FanCycling        = "Cycling"

	HeatingGas      = "Gas"
	HeatingElectric = "Electric"
	HeatingWater    = "Water"
	HeatingHeatPump = "SingleSpeedHeatPump"

	CoolingDXSingleSpeed = "SingleSpeedDX"
	CoolingDXTwoSpeed    = "TwoSpeedDX"
	CoolingWater         = "Water"
)

// AddVAVReheat builds a central VAV system with hot and chilled water coils
// and a hot water reheat terminal per zone.
func AddVAVReheat(m *model.Model, zones []*model.ThermalZone, hotWaterLoop, chilledWaterLoop *model.PlantLoop) *model.AirLoop {
	if len(zones) == 0 {
		log.Warn().Msg("VAV reheat requested with no zones")
		return nil
	}
	if hotWaterLoop == nil || chilledWaterLoop == nil {
		log.Error().
			Bool("hot_water_loop", hotWaterLoop != nil).
			Bool("chilled_water_loop", chilledWaterLoop != nil).
			Msg("VAV reheat requires hot and chilled water loops")
		return nil
	}
	log.Info().Int("zones", len(zones)).Msg("Adding VAV reheat system")

	loop := model.NewAirLoop(m, "VAV with Reheat")
	loop.SystemType = "VAV"
	loop.NightCycleControl = "CycleOnAny"
	loop.Sizing = model.SizingSystem{
		TypeOfLoad:                "Sensible",
		CentralCoolingSupplyC:     units.FToC(55),
		CentralHeatingSupplyC:     units.FToC(62),
		MinimumSystemAirFlowRatio: 0.3,
	}

	oa := model.NewOutdoorAirSystem(m, "VAV OA System")
	oa.EconomizerControlType = "DifferentialDryBulb"
	loop.AddSupplyComponent(oa)

	coolingCoil := model.NewCoilCoolingWater(m, "VAV Cooling Coil", chilledWaterLoop)
	loop.AddSupplyComponent(coolingCoil)

	heatingCoil := model.NewCoilHeatingWater(m, "VAV Heating Coil", hotWaterLoop)
	heatingCoil.InletWaterTempC = units.FToC(180)
	heatingCoil.OutletWaterTempC = units.FToC(160)
	loop.AddSupplyComponent(heatingCoil)

	fan := model.NewFanVariableVolume(m, "VAV Fan")
	fan.PressureRisePa = 1000.0
	loop.AddSupplyComponent(fan)

	sched := model.NewScheduleRuleset(m, "VAV Supply Temp Schedule", units.FToC(55))
	loop.SetpointManager = model.NewSetpointManagerScheduled(m, "VAV Supply Setpoint Manager", sched)

	for _, zone := range zones {
		reheat := model.NewCoilHeatingWater(m, fmt.Sprintf("%s Reheat Coil", zone.Name), hotWaterLoop)
		terminal := model.NewTerminalVAVReheat(m, fmt.Sprintf("%s VAV Terminal", zone.Name), reheat)
		terminal.ZoneName = zone.Name
		terminal.MinimumFlowFraction = 0.3
		loop.AttachTerminal(zone, terminal)
	}

	return loop
}

// AddVAVPFPBoxes builds a VAV system with electric reheat and parallel
// fan-powered box terminals, the data-center and lab archetype.
func AddVAVPFPBoxes(m *model.Model, zones []*model.ThermalZone, chilledWaterLoop *model.PlantLoop) *model.AirLoop {
	if len(zones) == 0 {
		log.Warn().Msg("VAV PFP boxes requested with no zones")
		return nil
	}
	if chilledWaterLoop == nil {
		log.Error().Msg("VAV PFP boxes requires a chilled water loop")
		return nil
	}
	log.Info().Int("zones", len(zones)).Msg("Adding VAV PFP boxes system")

	loop := model.NewAirLoop(m, "VAV with PFP Boxes")
	loop.SystemType = "VAV"
	loop.Sizing = model.SizingSystem{
		TypeOfLoad:                "Sensible",
		CentralCoolingSupplyC:     units.FToC(55),
		CentralHeatingSupplyC:     units.FToC(62),
		MinimumSystemAirFlowRatio: 0.3,
	}

	oa := model.NewOutdoorAirSystem(m, "PFP OA System")
	loop.AddSupplyComponent(oa)

	coolingCoil := model.NewCoilCoolingWater(m, "PFP Cooling Coil", chilledWaterLoop)
	loop.AddSupplyComponent(coolingCoil)

	heatingCoil := model.NewCoilHeatingElectric(m, "PFP Heating Coil")
	loop.AddSupplyComponent(heatingCoil)

	fan := model.NewFanVariableVolume(m, "PFP Fan")
	fan.PressureRisePa = 1000.0
	loop.AddSupplyComponent(fan)

	sched := model.NewScheduleRuleset(m, "PFP Supply Temp Schedule", units.FToC(55))
	loop.SetpointManager = model.NewSetpointManagerScheduled(m, "PFP Supply Setpoint Manager", sched)

	for _, zone := range zones {
		secondaryFan := model.NewFanConstantVolume(m, fmt.Sprintf("%s PFP Fan", zone.Name))
		secondaryFan.PressureRisePa = 300.0
		reheat := model.NewCoilHeatingElectric(m, fmt.Sprintf("%s PFP Reheat Coil", zone.Name))
		terminal := model.NewTerminalParallelFanPoweredBox(m, fmt.Sprintf("%s PFP Terminal", zone.Name), secondaryFan, reheat)
		terminal.ZoneName = zone.Name
		loop.AttachTerminal(zone, terminal)
	}

	return loop
}

// AddPVAV builds a packaged VAV: two speed DX cooling with gas or electric
// central heating and reheat terminals.
func AddPVAV(m *model.Model, zones []*model.ThermalZone, electricReheat bool) *model.AirLoop {
	if len(zones) == 0 {
		log.Warn().Msg("PVAV requested with no zones")
		return nil
	}
	log.Info().Int("zones", len(zones)).Bool("electric_reheat", electricReheat).Msg("Adding packaged VAV system")

	loop := model.NewAirLoop(m, "Packaged VAV")
	loop.SystemType = "PVAV"
	loop.NightCycleControl = "CycleOnAny"
	loop.Sizing = model.SizingSystem{
		TypeOfLoad:                "Sensible",
		CentralCoolingSupplyC:     units.FToC(55),
		CentralHeatingSupplyC:     units.FToC(62),
		MinimumSystemAirFlowRatio: 0.3,
	}

	oa := model.NewOutdoorAirSystem(m, "PVAV OA System")
	oa.EconomizerControlType = "DifferentialDryBulb"
	loop.AddSupplyComponent(oa)

	coolingCoil := model.NewCoilCoolingDXTwoSpeed(m, "PVAV 2spd DX Cooling Coil")
	loop.AddSupplyComponent(coolingCoil)

	if electricReheat {
		loop.AddSupplyComponent(model.NewCoilHeatingElectric(m, "PVAV Heating Coil"))
	} else {
		loop.AddSupplyComponent(model.NewCoilHeatingGas(m, "PVAV Heating Coil"))
	}

	fan := model.NewFanVariableVolume(m, "PVAV Fan")
	fan.PressureRisePa = 1000.0
	loop.AddSupplyComponent(fan)

	sched := model.NewScheduleRuleset(m, "PVAV Supply Temp Schedule", units.FToC(55))
	loop.SetpointManager = model.NewSetpointManagerScheduled(m, "PVAV Supply Setpoint Manager", sched)

	for _, zone := range zones {
		var reheat model.ModelObject
		if electricReheat {
			reheat = model.NewCoilHeatingElectric(m, fmt.Sprintf("%s Reheat Coil", zone.Name))
		} else {
			reheat = model.NewCoilHeatingGas(m, fmt.Sprintf("%s Reheat Coil", zone.Name))
		}
		terminal := model.NewTerminalVAVReheat(m, fmt.Sprintf("%s PVAV Terminal", zone.Name), reheat)
		terminal.ZoneName = zone.Name
		loop.AttachTerminal(zone, terminal)
	}

	return loop
}
