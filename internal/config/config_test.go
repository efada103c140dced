package config

import (
	"testing"
)

func validConfig() Config {
	return Config{
		BuildingType: "MediumOffice",
		ClimateZone:  "ASHRAE 169-2006-5A",
		Zones: []Zone{
			{Name: "Core", HeatingSetpointC: 21, CoolingSetpointC: 24},
			{Name: "Perimeter", HeatingSetpointC: 21, CoolingSetpointC: 24},
		},
		Plant: Plant{
			HotWaterFuel: "NaturalGas",
			ChillerType:  "Screw",
		},
		Systems: []System{
			{Type: "vav_reheat", Zones: []string{"Core", "Perimeter"}},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	cfg.validate() // should not panic
}

func TestValidate_NoZones(t *testing.T) {
	cfg := validConfig()
	cfg.Zones = nil
	cfg.Systems = nil

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for scenario with no zones, but got none")
		}
	}()

	cfg.validate()
}

func TestValidate_DuplicateZone(t *testing.T) {
	cfg := validConfig()
	cfg.Zones = append(cfg.Zones, Zone{Name: "Core"})

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for duplicate zone, but got none")
		}
	}()

	cfg.validate()
}

func TestValidate_UnknownSystemType(t *testing.T) {
	cfg := validConfig()
	cfg.Systems[0].Type = "chilled_beams"

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for unknown system type, but got none")
		}
	}()

	cfg.validate()
}

func TestValidate_UndeclaredZoneRef(t *testing.T) {
	cfg := validConfig()
	cfg.Systems[0].Zones = []string{"Core", "Attic"}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for undeclared zone reference, but got none")
		}
	}()

	cfg.validate()
}

func TestValidate_ServiceWaterVolume(t *testing.T) {
	cfg := validConfig()
	cfg.Plant.ServiceWater = &ServiceWater{FuelType: "NaturalGas", VolumeGal: 0}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for zero service water volume, but got none")
		}
	}()

	cfg.validate()
}
