package standards

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// ApplyWaterHeaterEfficiency derives the thermal efficiency and tank loss
// coefficients from the code standby loss formulas. Gas heaters use the
// Q/800 + 110*sqrt(V) Btu/h allowance; electric heaters use the
// 0.3 + 27/V percent-per-hour allowance. Both are converted to a UA loss
// coefficient against the 70F test room.
func ApplyWaterHeaterEfficiency(heater *model.WaterHeaterMixed) error {
	if heater.TankVolumeM3 == nil {
		return fmt.Errorf("water heater %s: tank volume: %w", heater.Name, ErrNotSized)
	}
	if heater.HeaterCapacityW == nil {
		return fmt.Errorf("water heater %s: heater capacity: %w", heater.Name, ErrNotSized)
	}

	volGal := units.M3ToGallons(*heater.TankVolumeM3)
	capBtuH := units.WattsToBtuH(*heater.HeaterCapacityW)

	// 70F maintained tank against the 120F setpoint, delta 50F = 27.78K
	const testDeltaK = 50.0 / 1.8

	var ua float64
	switch heater.FuelType {
	case model.FuelElectricity:
		// standby loss in %/h of stored energy
		slPctPerHour := 0.3 + 27.0/volGal
		storedBtu := volGal * 8.25 * 50.0 // lb water per gal * delta F
		slBtuH := slPctPerHour / 100.0 * storedBtu
		ua = units.BtuHToWatts(slBtuH) / testDeltaK
		heater.ThermalEfficiency = 1.0
	default:
		slBtuH := capBtuH/800.0 + 110.0*math.Sqrt(volGal)
		ua = units.BtuHToWatts(slBtuH) / testDeltaK
		heater.ThermalEfficiency = 0.80
	}

	heater.OffCycleLossCoefficientWPerK = units.Round(ua, 3)
	heater.OnCycleLossCoefficientWPerK = units.Round(ua, 3)

	log.Info().
		Str("water_heater", heater.Name).
		Str("fuel", heater.FuelType).
		Float64("volume_gal", units.Round(volGal, 1)).
		Float64("ua_w_per_k", heater.OffCycleLossCoefficientWPerK).
		Float64("thermal_efficiency", heater.ThermalEfficiency).
		Msg("Applied water heater efficiency")
	return nil
}
