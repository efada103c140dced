package standards

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// dxCoolingTier is one row of the unitary AC minimum efficiency table,
// capacities in Btu/h. Units under 65 kBtu/h are rated in SEER, larger ones
// in EER.
type dxCoolingTier struct {
	minCapBtuH float64
	maxCapBtuH float64
	seer       float64
	eer        float64
}

var dxCoolingTiers = []dxCoolingTier{
	{0, 65000, 13.0, 0},
	{65000, 135000, 0, 11.0},
	{135000, 240000, 0, 10.8},
	{240000, 760000, 0, 9.8},
	{760000, 1e12, 0, 9.5},
}

// dxHeatingTier is the heat pump heating table: HSPF below 65 kBtu/h, COP at
// 47F above.
type dxHeatingTier struct {
	minCapBtuH float64
	maxCapBtuH float64
	hspf       float64
	cop        float64
}

var dxHeatingTiers = []dxHeatingTier{
	{0, 65000, 7.7, 0},
	{65000, 135000, 0, 3.3},
	{135000, 1e12, 0, 3.2},
}

// seerToCOP converts a SEER rating to an energy input ratio COP, excluding
// supply fan power, with the published quadratic fit.
func seerToCOP(seer float64) float64 {
	return -0.0076*seer*seer + 0.3796*seer
}

// eerToCOP converts an EER rating excluding fan power; R is the ratio of
// supply fan power to total unit power.
func eerToCOP(eer float64) float64 {
	const r = 0.12
	return (eer/3.413 + r) / (1 - r)
}

// hspfToCOP converts an HSPF heating rating with the published fit.
func hspfToCOP(hspf float64) float64 {
	return -0.0255*hspf*hspf + 0.6239*hspf
}

// ApplyDXCoolingEfficiency stamps the code COP and the packaged single speed
// curve set on the coil.
func ApplyDXCoolingEfficiency(m *model.Model, coil *model.CoilCoolingDXSingleSpeed) error {
	if coil.RatedCapacityW == nil {
		return fmt.Errorf("dx cooling coil %s: %w", coil.Name, ErrNotSized)
	}

	capBtuH := units.WattsToBtuH(*coil.RatedCapacityW)
	for _, tier := range dxCoolingTiers {
		if capBtuH < tier.minCapBtuH || capBtuH >= tier.maxCapBtuH {
			continue
		}
		var cop float64
		if tier.seer > 0 {
			cop = seerToCOP(tier.seer)
		} else {
			cop = eerToCOP(tier.eer)
		}
		coil.RatedCOP = units.Round(cop, 3)
		applyDXCoolingCurves(m, coil)

		log.Info().
			Str("coil", coil.Name).
			Float64("capacity_btuh", units.Round(capBtuH, 0)).
			Float64("seer", tier.seer).
			Float64("eer", tier.eer).
			Float64("cop", coil.RatedCOP).
			Msg("Applied DX cooling efficiency")
		return nil
	}

	return fmt.Errorf("dx cooling coil %s: no efficiency tier for capacity", coil.Name)
}

// ApplyDXTwoSpeedCoolingEfficiency applies the same table to a two speed
// coil, derating the low speed by the standard 15%.
func ApplyDXTwoSpeedCoolingEfficiency(m *model.Model, coil *model.CoilCoolingDXTwoSpeed) error {
	if coil.RatedCapacityW == nil {
		return fmt.Errorf("dx two speed coil %s: %w", coil.Name, ErrNotSized)
	}

	capBtuH := units.WattsToBtuH(*coil.RatedCapacityW)
	for _, tier := range dxCoolingTiers {
		if capBtuH < tier.minCapBtuH || capBtuH >= tier.maxCapBtuH {
			continue
		}
		var cop float64
		if tier.seer > 0 {
			cop = seerToCOP(tier.seer)
		} else {
			cop = eerToCOP(tier.eer)
		}
		coil.RatedHighSpeedCOP = units.Round(cop, 3)
		coil.RatedLowSpeedCOP = units.Round(cop*0.85, 3)

		capFT := model.NewCurveBiquadratic(m, coil.Name+" CapFT")
		capFT.SetCoefficients(dxCapFTCoeffs)
		capFT.MinX, capFT.MaxX = 12.8, 23.9
		capFT.MinY, capFT.MaxY = 18.0, 46.1
		eirFT := model.NewCurveBiquadratic(m, coil.Name+" EIRFT")
		eirFT.SetCoefficients(dxEIRFTCoeffs)
		eirFT.MinX, eirFT.MaxX = 12.8, 23.9
		eirFT.MinY, eirFT.MaxY = 18.0, 46.1
		plf := newDXPLFCurve(m, coil.Name)
		coil.SetCurves(capFT, eirFT, plf)

		log.Info().
			Str("coil", coil.Name).
			Float64("capacity_btuh", units.Round(capBtuH, 0)).
			Float64("high_speed_cop", coil.RatedHighSpeedCOP).
			Float64("low_speed_cop", coil.RatedLowSpeedCOP).
			Msg("Applied DX two speed cooling efficiency")
		return nil
	}

	return fmt.Errorf("dx two speed coil %s: no efficiency tier for capacity", coil.Name)
}

// ApplyDXHeatingEfficiency stamps the heat pump heating COP and curve set.
func ApplyDXHeatingEfficiency(m *model.Model, coil *model.CoilHeatingDXSingleSpeed) error {
	if coil.RatedCapacityW == nil {
		return fmt.Errorf("dx heating coil %s: %w", coil.Name, ErrNotSized)
	}

	capBtuH := units.WattsToBtuH(*coil.RatedCapacityW)
	for _, tier := range dxHeatingTiers {
		if capBtuH < tier.minCapBtuH || capBtuH >= tier.maxCapBtuH {
			continue
		}
		cop := tier.cop
		if tier.hspf > 0 {
			cop = hspfToCOP(tier.hspf)
		}
		coil.RatedCOP = units.Round(cop, 3)

		capFT := model.NewCurveBiquadratic(m, coil.Name+" CapFT")
		capFT.SetCoefficients([6]float64{0.876825, -0.002955, -0.000058, 0.025335, 0.000196, -0.000043})
		capFT.MinX, capFT.MaxX = 18.3, 23.9
		capFT.MinY, capFT.MaxY = -13.9, 17.2
		eirFT := model.NewCurveBiquadratic(m, coil.Name+" EIRFT")
		eirFT.SetCoefficients([6]float64{0.704658, 0.008767, 0.000625, -0.009037, 0.000738, -0.001025})
		eirFT.MinX, eirFT.MaxX = 18.3, 23.9
		eirFT.MinY, eirFT.MaxY = -13.9, 17.2
		plf := newDXPLFCurve(m, coil.Name)
		coil.SetCurves(capFT, eirFT, plf)

		log.Info().
			Str("coil", coil.Name).
			Float64("capacity_btuh", units.Round(capBtuH, 0)).
			Float64("hspf", tier.hspf).
			Float64("cop", coil.RatedCOP).
			Msg("Applied DX heating efficiency")
		return nil
	}

	return fmt.Errorf("dx heating coil %s: no efficiency tier for capacity", coil.Name)
}

// Standard packaged single speed curve coefficients.
var (
	dxCapFTCoeffs    = [6]float64{0.942587793, 0.009543347, 0.000683770, -0.011042676, 0.000005249, -0.000009720}
	dxEIRFTCoeffs    = [6]float64{0.342414409, 0.034885008, -0.000623700, 0.004977216, 0.000437951, -0.000728028}
	dxCapFFlowCoeffs = [3]float64{0.8, 0.2, 0.0}
	dxEIRFFlowCoeffs = [3]float64{1.1552, -0.1808, 0.0256}
)

// ApplyDXSingleSpeedCurves stamps the standard curve set without touching the
// COP, for coils whose efficiency is set elsewhere.
func ApplyDXSingleSpeedCurves(m *model.Model, coil *model.CoilCoolingDXSingleSpeed) {
	applyDXCoolingCurves(m, coil)
}

func applyDXCoolingCurves(m *model.Model, coil *model.CoilCoolingDXSingleSpeed) {
	capFT := model.NewCurveBiquadratic(m, coil.Name+" CapFT")
	capFT.SetCoefficients(dxCapFTCoeffs)
	capFT.MinX, capFT.MaxX = 12.8, 23.9
	capFT.MinY, capFT.MaxY = 18.0, 46.1

	capFFlow := model.NewCurveQuadratic(m, coil.Name+" CapFFlow")
	capFFlow.C1, capFFlow.C2, capFFlow.C3 = dxCapFFlowCoeffs[0], dxCapFFlowCoeffs[1], dxCapFFlowCoeffs[2]
	capFFlow.MinX, capFFlow.MaxX = 0.5, 1.5

	eirFT := model.NewCurveBiquadratic(m, coil.Name+" EIRFT")
	eirFT.SetCoefficients(dxEIRFTCoeffs)
	eirFT.MinX, eirFT.MaxX = 12.8, 23.9
	eirFT.MinY, eirFT.MaxY = 18.0, 46.1

	eirFFlow := model.NewCurveQuadratic(m, coil.Name+" EIRFFlow")
	eirFFlow.C1, eirFFlow.C2, eirFFlow.C3 = dxEIRFFlowCoeffs[0], dxEIRFFlowCoeffs[1], dxEIRFFlowCoeffs[2]
	eirFFlow.MinX, eirFFlow.MaxX = 0.5, 1.5

	plf := newDXPLFCurve(m, coil.Name)

	coil.SetCurves(capFT, capFFlow, eirFT, eirFFlow, plf)
}

func newDXPLFCurve(m *model.Model, coilName string) *model.CurveQuadratic {
	plf := model.NewCurveQuadratic(m, coilName+" PLF")
	plf.C1 = 0.85
	plf.C2 = 0.15
	plf.C3 = 0.0
	plf.MinX, plf.MaxX = 0.0, 1.0
	return plf
}
