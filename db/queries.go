package db

import (
	"database/sql"
	"fmt"
)

// CountObjectsByType returns object counts for a snapshot, keyed by type.
func CountObjectsByType(dbConn *sql.DB, snapshotID int64) (map[string]int, error) {
	rows, err := dbConn.Query(`SELECT object_type, COUNT(*) FROM objects WHERE snapshot_id = ? GROUP BY object_type`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query object counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var objType string
		var n int
		if err := rows.Scan(&objType, &n); err != nil {
			return nil, fmt.Errorf("failed to scan object count: %w", err)
		}
		counts[objType] = n
	}
	return counts, rows.Err()
}

// GetLoopComponents returns component names for one side of a loop in wiring
// order.
func GetLoopComponents(dbConn *sql.DB, snapshotID int64, loopName, side string) ([]string, error) {
	rows, err := dbConn.Query(
		`SELECT component_name FROM loop_components WHERE snapshot_id = ? AND loop_name = ? AND side = ? ORDER BY position`,
		snapshotID, loopName, side)
	if err != nil {
		return nil, fmt.Errorf("failed to query loop components: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan component: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetZoneEquipment returns equipment names attached to a zone in priority
// order.
func GetZoneEquipment(dbConn *sql.DB, snapshotID int64, zoneName string) ([]string, error) {
	rows, err := dbConn.Query(
		`SELECT equipment_name FROM zone_equipment WHERE snapshot_id = ? AND zone_name = ? ORDER BY position`,
		snapshotID, zoneName)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone equipment: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetObjectAttributes returns the stored JSON attributes of a named object.
func GetObjectAttributes(dbConn *sql.DB, snapshotID int64, name string) (string, error) {
	var attrs string
	err := dbConn.QueryRow(`SELECT attributes FROM objects WHERE snapshot_id = ? AND name = ?`, snapshotID, name).Scan(&attrs)
	if err != nil {
		return "", fmt.Errorf("failed to get object %s: %w", name, err)
	}
	return attrs, nil
}
