package standards

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// motorTier maps a maximum brake horsepower to the NEMA premium efficiency
// for a 4-pole enclosed motor.
type motorTier struct {
	maxBHP     float64
	efficiency float64
}

var motorTiers = []motorTier{
	{1, 0.855},
	{1.5, 0.865},
	{2, 0.865},
	{3, 0.895},
	{5, 0.895},
	{7.5, 0.917},
	{10, 0.917},
	{15, 0.924},
	{20, 0.930},
	{25, 0.936},
	{30, 0.936},
	{40, 0.941},
	{50, 0.945},
	{60, 0.950},
	{75, 0.954},
	{100, 0.954},
	{125, 0.954},
	{150, 0.958},
	{200, 0.962},
	{1e9, 0.962},
}

func motorEfficiencyForBHP(bhp float64) float64 {
	for _, tier := range motorTiers {
		if bhp <= tier.maxBHP {
			return tier.efficiency
		}
	}
	return motorTiers[len(motorTiers)-1].efficiency
}

// fanBrakeHP derives brake horsepower from the fan's design flow and
// pressure rise.
func fanBrakeHP(flowM3s, pressurePa, fanEff float64) float64 {
	return units.WattsToHP(flowM3s * pressurePa / fanEff)
}

// ApplyFanMotorEfficiency sizes the fan motor from the design flow and
// pressure rise and stamps the premium efficiency tier.
func ApplyFanMotorEfficiency(fan *model.FanVariableVolume) error {
	if fan.MaximumFlowM3s == nil {
		return fmt.Errorf("fan %s: %w", fan.Name, ErrNotSized)
	}
	bhp := fanBrakeHP(*fan.MaximumFlowM3s, fan.PressureRisePa, fan.FanEfficiency)
	fan.MotorEfficiency = motorEfficiencyForBHP(bhp)

	log.Info().
		Str("fan", fan.Name).
		Float64("brake_hp", units.Round(bhp, 2)).
		Float64("motor_efficiency", fan.MotorEfficiency).
		Msg("Applied fan motor efficiency")
	return nil
}

// ApplyConstantFanMotorEfficiency is the constant volume variant.
func ApplyConstantFanMotorEfficiency(fan *model.FanConstantVolume) error {
	if fan.MaximumFlowM3s == nil {
		return fmt.Errorf("fan %s: %w", fan.Name, ErrNotSized)
	}
	bhp := fanBrakeHP(*fan.MaximumFlowM3s, fan.PressureRisePa, fan.FanEfficiency)
	fan.MotorEfficiency = motorEfficiencyForBHP(bhp)

	log.Info().
		Str("fan", fan.Name).
		Float64("brake_hp", units.Round(bhp, 2)).
		Float64("motor_efficiency", fan.MotorEfficiency).
		Msg("Applied fan motor efficiency")
	return nil
}

// ApplyPumpMotorEfficiency sizes the pump motor from the rated flow and head
// and stamps the premium efficiency tier.
func ApplyPumpMotorEfficiency(pump *model.PumpVariableSpeed) error {
	if pump.RatedFlowM3s == nil {
		return fmt.Errorf("pump %s: %w", pump.Name, ErrNotSized)
	}
	bhp := units.WattsToHP(*pump.RatedFlowM3s * pump.RatedHeadPa / pump.PumpEfficiency)
	pump.MotorEfficiency = motorEfficiencyForBHP(bhp)

	log.Info().
		Str("pump", pump.Name).
		Float64("brake_hp", units.Round(bhp, 2)).
		Float64("motor_efficiency", pump.MotorEfficiency).
		Msg("Applied pump motor efficiency")
	return nil
}

// ApplyConstantPumpMotorEfficiency is the constant speed variant.
func ApplyConstantPumpMotorEfficiency(pump *model.PumpConstantSpeed) error {
	if pump.RatedFlowM3s == nil {
		return fmt.Errorf("pump %s: %w", pump.Name, ErrNotSized)
	}
	bhp := units.WattsToHP(*pump.RatedFlowM3s * pump.RatedHeadPa / pump.PumpEfficiency)
	pump.MotorEfficiency = motorEfficiencyForBHP(bhp)

	log.Info().
		Str("pump", pump.Name).
		Float64("brake_hp", units.Round(bhp, 2)).
		Float64("motor_efficiency", pump.MotorEfficiency).
		Msg("Applied pump motor efficiency")
	return nil
}
