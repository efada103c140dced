// Package db persists a snapshot of the built model to SQLite: one row per
// object with its attributes as JSON, plus the loop membership tables that
// make connectivity queryable.
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mlubun/openstudio-standards/internal/model"
)

func Open(path string) (*sql.DB, error) {
	dbConn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := createSchema(dbConn); err != nil {
		dbConn.Close()
		return nil, err
	}
	return dbConn, nil
}

func createSchema(dbConn *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS snapshots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    building_type TEXT NOT NULL,
    climate_zone TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS objects (
    handle TEXT PRIMARY KEY,
    snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
    object_type TEXT NOT NULL,
    name TEXT NOT NULL,
    attributes TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS loop_components (
    snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
    loop_name TEXT NOT NULL,
    loop_kind TEXT NOT NULL,
    side TEXT NOT NULL,
    position INTEGER NOT NULL,
    component_name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS zone_equipment (
    snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
    zone_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    equipment_name TEXT NOT NULL
);`
	if _, err := dbConn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Snapshot writes the whole model under a new snapshot id and returns it.
func Snapshot(dbConn *sql.DB, m *model.Model, buildingType, climateZone string) (int64, error) {
	tx, err := dbConn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO snapshots (building_type, climate_zone) VALUES (?, ?)`,
		buildingType, climateZone)
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot: %w", err)
	}
	snapshotID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot id: %w", err)
	}

	for _, o := range m.Objects() {
		attrs, err := json.Marshal(o)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal %s: %w", o.ObjectName(), err)
		}
		_, err = tx.Exec(`INSERT INTO objects (handle, snapshot_id, object_type, name, attributes) VALUES (?, ?, ?, ?, ?)`,
			o.ObjectHandle().String(), snapshotID, o.ObjectType(), o.ObjectName(), string(attrs))
		if err != nil {
			return 0, fmt.Errorf("failed to insert object %s: %w", o.ObjectName(), err)
		}
	}

	for _, loop := range m.PlantLoops {
		if err := insertLoopComponents(tx, snapshotID, loop.Name, "plant", "supply", loop.SupplyComponents); err != nil {
			return 0, err
		}
		if err := insertLoopComponents(tx, snapshotID, loop.Name, "plant", "demand", loop.DemandComponents); err != nil {
			return 0, err
		}
	}
	for _, loop := range m.AirLoops {
		if err := insertLoopComponents(tx, snapshotID, loop.Name, "air", "supply", loop.SupplyComponents); err != nil {
			return 0, err
		}
	}

	for _, zone := range m.Zones {
		for i, eq := range zone.Equipment {
			_, err := tx.Exec(`INSERT INTO zone_equipment (snapshot_id, zone_name, position, equipment_name) VALUES (?, ?, ?, ?)`,
				snapshotID, zone.Name, i, eq.ObjectName())
			if err != nil {
				return 0, fmt.Errorf("failed to insert zone equipment for %s: %w", zone.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return snapshotID, nil
}

func insertLoopComponents(tx *sql.Tx, snapshotID int64, loopName, kind, side string, components []model.ModelObject) error {
	for i, c := range components {
		_, err := tx.Exec(`INSERT INTO loop_components (snapshot_id, loop_name, loop_kind, side, position, component_name) VALUES (?, ?, ?, ?, ?, ?)`,
			snapshotID, loopName, kind, side, i, c.ObjectName())
		if err != nil {
			return fmt.Errorf("failed to insert component %s on loop %s: %w", c.ObjectName(), loopName, err)
		}
	}
	return nil
}
