package standards

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/internal/model"
	"github.com/mlubun/openstudio-standards/internal/units"
)

// Open axial towers must move at least 38.2 gpm per fan hp at design
// conditions; the fan power cap follows from the design water flow.
const minGPMPerHP = 38.2

// ApplyCoolingTowerPerformance sizes the tower fan power from the design
// water flow at the code minimum efficiency.
func ApplyCoolingTowerPerformance(tower *model.CoolingTowerVariableSpeed) error {
	if tower.DesignWaterFlowM3s == nil {
		return fmt.Errorf("cooling tower %s: %w", tower.Name, ErrNotSized)
	}

	gpm := units.M3sToGPM(*tower.DesignWaterFlowM3s)
	fanHP := gpm / minGPMPerHP
	tower.FanPowerW = model.Float(units.Round(units.HPToWatts(fanHP), 1))

	log.Info().
		Str("tower", tower.Name).
		Float64("design_flow_gpm", units.Round(gpm, 1)).
		Float64("fan_hp", units.Round(fanHP, 2)).
		Float64("fan_power_w", *tower.FanPowerW).
		Msg("Applied cooling tower performance")
	return nil
}
