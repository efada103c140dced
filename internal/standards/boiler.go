package standards

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// boilerTier is one row of the minimum efficiency table. Capacities are in
// Btu/h. Ratings below 300 kBtu/h are published as AFUE, larger ones as
// thermal efficiency Et.
type boilerTier struct {
	fuelType   string
	minCapBtuH float64
	maxCapBtuH float64
	afue       float64
	thermalEff float64
}

var boilerTiers = []boilerTier{
	{model.FuelNaturalGas, 0, 300000, 0.80, 0},
	{model.FuelNaturalGas, 300000, 2500000, 0, 0.80},
	{model.FuelNaturalGas, 2500000, 1e12, 0, 0.82},
	{model.FuelFuelOil, 0, 300000, 0.83, 0},
	{model.FuelFuelOil, 300000, 2500000, 0, 0.83},
	{model.FuelFuelOil, 2500000, 1e12, 0, 0.83},
}

// afueToThermalEfficiency converts an AFUE rating to thermal efficiency with
// the published linear fit Et = 0.1 + 0.725 * AFUE.
func afueToThermalEfficiency(afue float64) float64 {
	return 0.1 + 0.725*afue
}

// ApplyBoilerEfficiency looks up the minimum efficiency for the boiler's fuel
// and capacity tier and stamps the thermal efficiency and the normalized
// efficiency curve.
func ApplyBoilerEfficiency(m *model.Model, boiler *model.BoilerHotWater) error {
	if boiler.NominalCapacityW == nil {
		return fmt.Errorf("boiler %s: %w", boiler.Name, ErrNotSized)
	}
	if boiler.FuelType == model.FuelElectricity {
		boiler.ThermalEfficiency = 1.0
		log.Info().Str("boiler", boiler.Name).Msg("Electric boiler, thermal efficiency 1.0")
		return nil
	}

	capBtuH := units.WattsToBtuH(*boiler.NominalCapacityW)
	for _, tier := range boilerTiers {
		if tier.fuelType != boiler.FuelType {
			continue
		}
		if capBtuH < tier.minCapBtuH || capBtuH >= tier.maxCapBtuH {
			continue
		}
		eff := tier.thermalEff
		if tier.afue > 0 {
			eff = afueToThermalEfficiency(tier.afue)
		}
		boiler.ThermalEfficiency = units.Round(eff, 3)
		boiler.SetEfficiencyCurve(boilerEfficiencyCurve(m, boiler.Name))
		boiler.EfficiencyCurveVariable = "LeavingBoiler"

		log.Info().
			Str("boiler", boiler.Name).
			Str("fuel", boiler.FuelType).
			Float64("capacity_btuh", units.Round(capBtuH, 0)).
			Float64("thermal_efficiency", boiler.ThermalEfficiency).
			Msg("Applied boiler efficiency")
		return nil
	}

	return fmt.Errorf("boiler %s: no efficiency tier for fuel %s", boiler.Name, boiler.FuelType)
}

// boilerEfficiencyCurve is the normalized non-condensing boiler curve,
// f(PLR, Twater).
func boilerEfficiencyCurve(m *model.Model, boilerName string) *model.CurveBiquadratic {
	c := model.NewCurveBiquadratic(m, boilerName+" Efficiency Curve")
	c.SetCoefficients([6]float64{1.111720116, 0.078614078, -0.400425756, 0.0, -0.000156783, 0.009384599})
	c.MinX, c.MaxX = 0.1, 1.0
	c.MinY, c.MaxY = 20.0, 80.0
	return c
}
