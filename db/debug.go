package db

import "database/sql"

// SnapshotInfo is one row of the snapshots table, for the inspection CLI.
type SnapshotInfo struct {
	ID           int64
	BuildingType string
	ClimateZone  string
	CreatedAt    string
}

// ListSnapshotsCLI opens the database at dbPath and returns every snapshot,
// newest first.
func ListSnapshotsCLI(dbPath string) ([]SnapshotInfo, error) {
	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	defer dbConn.Close()

	rows, err := dbConn.Query(`SELECT id, building_type, climate_zone, created_at FROM snapshots ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []SnapshotInfo
	for rows.Next() {
		var s SnapshotInfo
		if err := rows.Scan(&s.ID, &s.BuildingType, &s.ClimateZone, &s.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// CountObjectsCLI opens the database at dbPath and returns the per-type
// object counts for one snapshot.
func CountObjectsCLI(dbPath string, snapshotID int64) (map[string]int, error) {
	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	defer dbConn.Close()
	return CountObjectsByType(dbConn, snapshotID)
}

// LoopComponentsCLI opens the database at dbPath and returns one side of a
// loop in topological order.
func LoopComponentsCLI(dbPath string, snapshotID int64, loopName, side string) ([]string, error) {
	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	defer dbConn.Close()
	return GetLoopComponents(dbConn, snapshotID, loopName, side)
}

// ZoneEquipmentCLI opens the database at dbPath and returns a zone's
// equipment list.
func ZoneEquipmentCLI(dbPath string, snapshotID int64, zoneName string) ([]string, error) {
	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	defer dbConn.Close()
	return GetZoneEquipment(dbConn, snapshotID, zoneName)
}

// ObjectAttributesCLI opens the database at dbPath and returns one object's
// attribute JSON.
func ObjectAttributesCLI(dbPath string, snapshotID int64, name string) (string, error) {
	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return "", err
	}
	defer dbConn.Close()
	return GetObjectAttributes(dbConn, snapshotID, name)
}
