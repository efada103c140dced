package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Zone declares a thermal zone in the building scenario.
type Zone struct {
	Name             string  `json:"name"`
	HeatingSetpointC float64 `json:"heating_setpoint_c"`
	CoolingSetpointC float64 `json:"cooling_setpoint_c"`
}

// System is one air-side archetype block, keyed by type string.
type System struct {
	Type           string   `json:"type"` // vav_reheat, vav_pfp, pvav, cav, psz_ac, doas_fan_coils, ptac, pthp, unit_heaters, high_temp_radiant, wshp
	Zones          []string `json:"zones"`
	FanType        string   `json:"fan_type"`
	HeatingType    string   `json:"heating_type"`
	CoolingType    string   `json:"cooling_type"`
	FuelType       string   `json:"fuel_type"`
	ControlType    string   `json:"control_type"`
	ElectricReheat bool     `json:"electric_reheat"`
	Humidification bool     `json:"humidification"`
}

// ServiceWater sizes the domestic hot water loop.
type ServiceWater struct {
	FuelType     string  `json:"fuel_type"`
	VolumeGal    float64 `json:"volume_gal"`
	CapacityBtuH float64 `json:"capacity_btuh"`
}

// Plant picks which central loops get built.
type Plant struct {
	HotWaterFuel   string        `json:"hot_water_fuel"` // empty means no hot water loop
	ChillerType    string        `json:"chiller_type"`   // empty means no chilled water loop
	CondenserWater bool          `json:"condenser_water"`
	HeatPumpLoop   bool          `json:"heat_pump_loop"`
	ServiceWater   *ServiceWater `json:"service_water"`
}

type Config struct {
	ScenarioFile string
	SnapshotFile string
	LogLevel     zerolog.Level

	BuildingType string   `json:"building_type"`
	ClimateZone  string   `json:"climate_zone"`
	Zones        []Zone   `json:"zones"`
	Plant        Plant    `json:"plant"`
	Systems      []System `json:"systems"`

	EnableDatadog bool     `json:"enable_datadog"`
	DDAgentAddr   string   `json:"dd_agent_addr"`
	DDNamespace   string   `json:"dd_namespace"`
	DDTags        []string `json:"dd_tags"`
}

var systemTypes = map[string]bool{
	"vav_reheat":        true,
	"vav_pfp":           true,
	"pvav":              true,
	"cav":               true,
	"psz_ac":            true,
	"doas_fan_coils":    true,
	"ptac":              true,
	"pthp":              true,
	"unit_heaters":      true,
	"high_temp_radiant": true,
	"wshp":              true,
}

func Load() Config {
	var cfg Config
	var logLevel string

	flag.StringVar(&cfg.ScenarioFile, "scenario-file", "scenario.json", "Path to building scenario file")
	flag.StringVar(&cfg.SnapshotFile, "snapshot-file", "data/model.db", "Path to model snapshot database")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg.LogLevel = parseLogLevel(logLevel)

	file, err := os.Open(cfg.ScenarioFile)
	if err != nil {
		panic("Failed to load scenario file: " + err.Error())
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		panic("Failed to parse scenario file: " + err.Error())
	}

	if cfg.DDNamespace == "" {
		cfg.DDNamespace = "openstudio_standards."
	}

	cfg.validate()
	return cfg
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (cfg *Config) validate() {
	var problems []string

	if len(cfg.Zones) == 0 {
		problems = append(problems, "no zones declared")
	}

	declared := map[string]bool{}
	for _, z := range cfg.Zones {
		if z.Name == "" {
			problems = append(problems, "zone with empty name")
			continue
		}
		if declared[z.Name] {
			problems = append(problems, fmt.Sprintf("duplicate zone %q", z.Name))
		}
		declared[z.Name] = true
	}

	for i, s := range cfg.Systems {
		if !systemTypes[s.Type] {
			problems = append(problems, fmt.Sprintf("systems[%d]: unknown type %q", i, s.Type))
		}
		if len(s.Zones) == 0 {
			problems = append(problems, fmt.Sprintf("systems[%d] (%s): no zones", i, s.Type))
		}
		for _, zoneName := range s.Zones {
			if !declared[zoneName] {
				problems = append(problems, fmt.Sprintf("systems[%d] (%s): undeclared zone %q", i, s.Type, zoneName))
			}
		}
	}

	if sw := cfg.Plant.ServiceWater; sw != nil && sw.VolumeGal <= 0 {
		problems = append(problems, "service water volume must be positive")
	}

	if len(problems) > 0 {
		panic("Invalid scenario: " + strings.Join(problems, "; "))
	}
}
