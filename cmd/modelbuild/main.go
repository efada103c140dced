package main

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mlubun/openstudio-standards/db"
	"github.com/mlubun/openstudio-standards/internal/config"
	"github.com/mlubun/openstudio-standards/internal/datadog"
	"github.com/mlubun/openstudio-standards/internal/logging"
	"github.com/mlubun/openstudio-standards/internal/scenario"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel)
	datadog.InitMetrics(&cfg)

	log.Info().
		Str("scenario_file", cfg.ScenarioFile).
		Str("snapshot_file", cfg.SnapshotFile).
		Msg("Starting model build")

	start := time.Now()
	m := scenario.Build(&cfg)
	datadog.Gauge("model.build_seconds", time.Since(start).Seconds(), "building_type:"+cfg.BuildingType)

	dbConn, err := db.Open(cfg.SnapshotFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open snapshot database")
	}
	defer dbConn.Close()

	snapshotID, err := db.Snapshot(dbConn, m, cfg.BuildingType, cfg.ClimateZone)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to snapshot model")
	}

	counts := m.ObjectCounts()
	total := 0
	for objType, n := range counts {
		total += n
		datadog.Gauge("model.objects", float64(n), "type:"+objType)
	}
	datadog.Count("model.builds", 1, "building_type:"+cfg.BuildingType)

	log.Info().
		Int64("snapshot_id", snapshotID).
		Int("objects", total).
		Int("plant_loops", len(m.PlantLoops)).
		Int("air_loops", len(m.AirLoops)).
		Msg("Model build complete")
}
