package standards

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// chillerTier is one row of the minimum full load efficiency table,
// capacities in tons, ratings in kW/ton.
type chillerTier struct {
	compressorType string
	condenserType  string
	minCapTons     float64
	maxCapTons     float64
	kwPerTon       float64
}

var chillerTiers = []chillerTier{
	{"Reciprocating", "WaterCooled", 0, 1e9, 0.840},
	{"Scroll", "WaterCooled", 0, 75, 0.790},
	{"Scroll", "WaterCooled", 75, 150, 0.775},
	{"Scroll", "WaterCooled", 150, 1e9, 0.680},
	{"Screw", "WaterCooled", 0, 75, 0.790},
	{"Screw", "WaterCooled", 75, 150, 0.775},
	{"Screw", "WaterCooled", 150, 300, 0.680},
	{"Screw", "WaterCooled", 300, 1e9, 0.620},
	{"Centrifugal", "WaterCooled", 0, 150, 0.703},
	{"Centrifugal", "WaterCooled", 150, 300, 0.634},
	{"Centrifugal", "WaterCooled", 300, 1e9, 0.576},
	// air cooled ratings are full load EER expressed here as kW/ton
	{"Scroll", "AirCooled", 0, 150, 1.256},
	{"Scroll", "AirCooled", 150, 1e9, 1.256},
	{"Screw", "AirCooled", 0, 150, 1.256},
	{"Screw", "AirCooled", 150, 1e9, 1.256},
	{"Reciprocating", "AirCooled", 0, 1e9, 1.256},
}

// ApplyChillerEfficiency looks up the kW/ton tier for the chiller's
// compressor and condenser type, converts it to COP, and stamps the standard
// performance curve set.
func ApplyChillerEfficiency(m *model.Model, chiller *model.ChillerElectricEIR) error {
	if chiller.ReferenceCapacityW == nil {
		return fmt.Errorf("chiller %s: %w", chiller.Name, ErrNotSized)
	}

	capTons := units.WattsToTons(*chiller.ReferenceCapacityW)
	for _, tier := range chillerTiers {
		if tier.compressorType != chiller.CompressorType || tier.condenserType != chiller.CondenserType {
			continue
		}
		if capTons < tier.minCapTons || capTons >= tier.maxCapTons {
			continue
		}
		chiller.ReferenceCOP = units.Round(units.KWPerTonToCOP(tier.kwPerTon), 3)
		applyChillerCurves(m, chiller)

		log.Info().
			Str("chiller", chiller.Name).
			Str("compressor_type", chiller.CompressorType).
			Str("condenser_type", chiller.CondenserType).
			Float64("capacity_tons", units.Round(capTons, 1)).
			Float64("kw_per_ton", tier.kwPerTon).
			Float64("cop", chiller.ReferenceCOP).
			Msg("Applied chiller efficiency")
		return nil
	}

	return fmt.Errorf("chiller %s: no efficiency tier for %s/%s",
		chiller.Name, chiller.CompressorType, chiller.CondenserType)
}

// applyChillerCurves stamps the standard electric EIR chiller curve set:
// capacity and EIR as biquadratic functions of leaving chilled water and
// entering condenser temperature, EIR as a quadratic of part load ratio.
func applyChillerCurves(m *model.Model, chiller *model.ChillerElectricEIR) {
	capFT := model.NewCurveBiquadratic(m, chiller.Name+" CapFT")
	capFT.SetCoefficients([6]float64{0.9061150, 0.0292277, -0.0003647, -0.0009709, -0.0000905, 0.0002527})
	capFT.MinX, capFT.MaxX = 4.0, 10.0
	capFT.MinY, capFT.MaxY = 21.0, 35.0

	eirFT := model.NewCurveBiquadratic(m, chiller.Name+" EIRFT")
	eirFT.SetCoefficients([6]float64{0.3617105, -0.0229833, -0.0009519, 0.0131889, 0.0003752, -0.0007059})
	eirFT.MinX, eirFT.MaxX = 4.0, 10.0
	eirFT.MinY, eirFT.MaxY = 21.0, 35.0

	eirFPLR := model.NewCurveQuadratic(m, chiller.Name+" EIRFPLR")
	eirFPLR.C1 = 0.0360720
	eirFPLR.C2 = 0.6854160
	eirFPLR.C3 = 0.2783160
	eirFPLR.MinX, eirFPLR.MaxX = 0.0, 1.0

	chiller.SetCurves(capFT, eirFT, eirFPLR)
}
