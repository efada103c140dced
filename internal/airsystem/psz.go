package airsystem

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// AddPSZAC builds one packaged single zone air loop per zone. Heating and
// cooling selectors choose the coils; water selections require the matching
// plant loop. The fan type selects constant volume versus cycling operation.
func AddPSZAC(m *model.Model, zones []*model.ThermalZone, fanType, heatingType, coolingType string,
	hotWaterLoop, chilledWaterLoop *model.PlantLoop) []*model.AirLoop {

	if len(zones) == 0 {
		log.Warn().Msg("PSZ-AC requested with no zones")
		return nil
	}
	if heatingType == HeatingWater && hotWaterLoop == nil {
		log.Error().Msg("PSZ-AC with water heating requires a hot water loop")
		return nil
	}
	if coolingType == CoolingWater && chilledWaterLoop == nil {
		log.Error().Msg("PSZ-AC with water cooling requires a chilled water loop")
		return nil
	}
	log.Info().
		Int("zones", len(zones)).
		Str("fan_type", fanType).
		Str("heating_type", heatingType).
		Str("cooling_type", coolingType).
		Msg("Adding PSZ-AC systems")

	loops := make([]*model.AirLoop, 0, len(zones))
	for _, zone := range zones {
		loop := model.NewAirLoop(m, fmt.Sprintf("%s PSZ-AC", zone.Name))
		loop.SystemType = "PSZ-AC"
		loop.NightCycleControl = "CycleOnAny"
		loop.Sizing = model.SizingSystem{
			TypeOfLoad:                "Sensible",
			CentralCoolingSupplyC:     units.FToC(55),
			CentralHeatingSupplyC:     units.FToC(104),
			MinimumSystemAirFlowRatio: 1.0,
		}

		oa := model.NewOutdoorAirSystem(m, fmt.Sprintf("%s PSZ-AC OA System", zone.Name))
		loop.AddSupplyComponent(oa)

		switch coolingType {
		case CoolingWater:
			loop.AddSupplyComponent(model.NewCoilCoolingWater(m, fmt.Sprintf("%s PSZ-AC Cooling Coil", zone.Name), chilledWaterLoop))
		default:
			loop.AddSupplyComponent(model.NewCoilCoolingDXSingleSpeed(m, fmt.Sprintf("%s PSZ-AC 1spd DX Cooling Coil", zone.Name)))
		}

		switch heatingType {
		case HeatingWater:
			loop.AddSupplyComponent(model.NewCoilHeatingWater(m, fmt.Sprintf("%s PSZ-AC Heating Coil", zone.Name), hotWaterLoop))
		case HeatingElectric:
			loop.AddSupplyComponent(model.NewCoilHeatingElectric(m, fmt.Sprintf("%s PSZ-AC Heating Coil", zone.Name)))
		case HeatingHeatPump:
			dx := model.NewCoilHeatingDXSingleSpeed(m, fmt.Sprintf("%s PSZ-AC HP Heating Coil", zone.Name))
			loop.AddSupplyComponent(dx)
			loop.AddSupplyComponent(model.NewCoilHeatingElectric(m, fmt.Sprintf("%s PSZ-AC Supplemental Coil", zone.Name)))
		default:
			loop.AddSupplyComponent(model.NewCoilHeatingGas(m, fmt.Sprintf("%s PSZ-AC Heating Coil", zone.Name)))
		}

		if fanType == FanCycling {
			fan := model.NewFanOnOff(m, fmt.Sprintf("%s PSZ-AC Fan", zone.Name))
			fan.PressureRisePa = 622.0
			loop.AddSupplyComponent(fan)
		} else {
			fan := model.NewFanConstantVolume(m, fmt.Sprintf("%s PSZ-AC Fan", zone.Name))
			fan.PressureRisePa = 622.0
			loop.AddSupplyComponent(fan)
		}

		spm := model.NewSetpointManagerSingleZoneReheat(m, fmt.Sprintf("%s PSZ-AC Setpoint Manager", zone.Name))
		spm.MinimumSupplyAirTempC = units.FToC(55)
		spm.MaximumSupplyAirTempC = units.FToC(104)
		spm.ControlZoneName = zone.Name
		loop.SetpointManager = spm

		terminal := model.NewTerminalConstantVolume(m, fmt.Sprintf("%s PSZ-AC Diffuser", zone.Name))
		terminal.ZoneName = zone.Name
		loop.AttachTerminal(zone, terminal)

		loops = append(loops, loop)
	}

	return loops
}
