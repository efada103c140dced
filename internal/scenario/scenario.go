// Package scenario turns a building scenario config into a built model: zones
// first, then the central plant, then one air system per configured block,
// and finally the efficiency standards pass over everything with a capacity.
package scenario

import (
	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/airsystem"
	"github.com/mlubun/openstudio-standards/internal/auxiliary"
	"github.com/mlubun/openstudio-standards/internal/config"
	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/plantloop"
	"github.com/mlubun/openstudio-standards/internal/standards"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// Plant holds the central loops a scenario built, for the air systems to
// draw on.
type Plant struct {
	HotWater       *model.PlantLoop
	ChilledWater   *model.PlantLoop
	CondenserWater *model.PlantLoop
	HeatPump       *model.PlantLoop
	ServiceWater   *model.PlantLoop
}

// Build assembles the whole model described by the config.
func Build(cfg *config.Config) *model.Model {
	log.Info().
		Str("building_type", cfg.BuildingType).
		Str("climate_zone", cfg.ClimateZone).
		Int("zones", len(cfg.Zones)).
		Int("systems", len(cfg.Systems)).
		Msg("Building model from scenario")

	m := model.New()
	hydrateZones(m, cfg)
	plant := buildPlant(m, cfg)

	for _, sys := range cfg.Systems {
		buildSystem(m, sys, plant)
	}

	ApplyStandards(m)
	return m
}

func hydrateZones(m *model.Model, cfg *config.Config) {
	for _, z := range cfg.Zones {
		zone := model.NewThermalZone(m, z.Name)
		if z.HeatingSetpointC != 0 {
			zone.HeatingSetpointC = z.HeatingSetpointC
		}
		if z.CoolingSetpointC != 0 {
			zone.CoolingSetpointC = z.CoolingSetpointC
		}
	}
}

func buildPlant(m *model.Model, cfg *config.Config) Plant {
	var plant Plant

	if cfg.Plant.HotWaterFuel != "" {
		plant.HotWater = plantloop.AddHotWaterLoop(m, cfg.Plant.HotWaterFuel)
	}
	if cfg.Plant.CondenserWater {
		plant.CondenserWater = plantloop.AddCondenserWaterLoop(m)
	}
	if cfg.Plant.ChillerType != "" {
		plant.ChilledWater = plantloop.AddChilledWaterLoop(m, plant.CondenserWater, cfg.Plant.ChillerType)
	}
	if cfg.Plant.HeatPumpLoop {
		plant.HeatPump = plantloop.AddHeatPumpLoop(m)
	}
	if sw := cfg.Plant.ServiceWater; sw != nil {
		plant.ServiceWater = plantloop.AddServiceWaterHeatingLoop(m, sw.FuelType,
			units.GallonsToM3(sw.VolumeGal), units.BtuHToWatts(sw.CapacityBtuH))
	}

	return plant
}

func buildSystem(m *model.Model, sys config.System, plant Plant) {
	zones := make([]*model.ThermalZone, 0, len(sys.Zones))
	for _, name := range sys.Zones {
		if zone := m.GetZoneByName(name); zone != nil {
			zones = append(zones, zone)
		}
	}

	switch sys.Type {
	case "vav_reheat":
		airsystem.AddVAVReheat(m, zones, plant.HotWater, plant.ChilledWater)
	case "vav_pfp":
		loop := airsystem.AddVAVPFPBoxes(m, zones, plant.ChilledWater)
		if sys.Humidification && loop != nil {
			auxiliary.AddDataCenterHumidification(m, loop)
		}
	case "pvav":
		airsystem.AddPVAV(m, zones, sys.ElectricReheat)
	case "cav":
		airsystem.AddCAV(m, zones, plant.HotWater, plant.ChilledWater)
	case "psz_ac":
		airsystem.AddPSZAC(m, zones, sys.FanType, sys.HeatingType, sys.CoolingType, plant.HotWater, plant.ChilledWater)
	case "doas_fan_coils":
		airsystem.AddDOASFanCoils(m, zones, plant.HotWater, plant.ChilledWater)
	case "ptac":
		airsystem.AddPTAC(m, zones, sys.FanType, sys.HeatingType, plant.HotWater)
	case "pthp":
		airsystem.AddPTHP(m, zones)
	case "unit_heaters":
		airsystem.AddUnitHeaters(m, zones, sys.FuelType, plant.HotWater)
	case "high_temp_radiant":
		airsystem.AddHighTempRadiant(m, zones, sys.FuelType, sys.ControlType)
	case "wshp":
		airsystem.AddWSHPs(m, zones, plant.HeatPump)
	default:
		log.Error().Str("type", sys.Type).Msg("Unknown system type")
	}
}

// ApplyStandards runs the efficiency pass over every component that already
// has a capacity. Components still waiting on sizing are skipped with a
// debug log; that is the normal state for a freshly built model.
func ApplyStandards(m *model.Model) {
	applied := 0
	skipped := 0

	note := func(err error) {
		if err == nil {
			applied++
			return
		}
		skipped++
		log.Debug().Err(err).Msg("Skipping standards for unsized component")
	}

	for _, o := range m.Objects() {
		switch v := o.(type) {
		case *model.BoilerHotWater:
			note(standards.ApplyBoilerEfficiency(m, v))
		case *model.ChillerElectricEIR:
			note(standards.ApplyChillerEfficiency(m, v))
		case *model.CoolingTowerVariableSpeed:
			note(standards.ApplyCoolingTowerPerformance(v))
		case *model.CoilCoolingDXSingleSpeed:
			note(standards.ApplyDXCoolingEfficiency(m, v))
		case *model.CoilCoolingDXTwoSpeed:
			note(standards.ApplyDXTwoSpeedCoolingEfficiency(m, v))
		case *model.CoilHeatingDXSingleSpeed:
			note(standards.ApplyDXHeatingEfficiency(m, v))
		case *model.WaterHeaterMixed:
			note(standards.ApplyWaterHeaterEfficiency(v))
		case *model.FanVariableVolume:
			note(standards.ApplyFanMotorEfficiency(v))
		case *model.FanConstantVolume:
			note(standards.ApplyConstantFanMotorEfficiency(v))
		case *model.PumpVariableSpeed:
			note(standards.ApplyPumpMotorEfficiency(v))
		case *model.PumpConstantSpeed:
			note(standards.ApplyConstantPumpMotorEfficiency(v))
		}
	}

	log.Info().Int("applied", applied).Int("skipped", skipped).Msg("Efficiency standards pass complete")
}
