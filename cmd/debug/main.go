package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/mlubun/openstudio-standards/db"
)

func main() {
	DebugCLI()
}

func DebugCLI() {
	var dbPath, command, loopName, side, zoneName, objectName string
	var snapshotID int64
	flag.StringVar(&dbPath, "db", "data/model.db", "Path to the SQLite snapshot database")
	flag.StringVar(&command, "cmd", "", "Command to run: list-snapshots, counts, loop, zone, object")
	flag.Int64Var(&snapshotID, "snapshot", 0, "Snapshot ID (defaults to the newest)")
	flag.StringVar(&loopName, "loop", "", "Loop name for the loop command")
	flag.StringVar(&side, "side", "supply", "Loop side: supply or demand")
	flag.StringVar(&zoneName, "zone", "", "Zone name for the zone command")
	flag.StringVar(&objectName, "object", "", "Object name for the object command")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help || command == "" {
		fmt.Println("\nUsage of model-debug:")
		fmt.Println("  -db string\tPath to the SQLite snapshot database (default 'data/model.db')")
		fmt.Println("  -cmd string\tCommand to run: list-snapshots, counts, loop, zone, object")
		fmt.Println("  -snapshot int\tSnapshot ID (defaults to the newest)")
		fmt.Println("  -loop string\tLoop name for the loop command")
		fmt.Println("  -side string\tLoop side: supply or demand")
		fmt.Println("  -zone string\tZone name for the zone command")
		fmt.Println("  -object string\tObject name for the object command")
		fmt.Println("  -help\tShow this help message")
		os.Exit(0)
	}

	if command != "list-snapshots" && snapshotID == 0 {
		snapshots, err := db.ListSnapshotsCLI(dbPath)
		if err != nil || len(snapshots) == 0 {
			fmt.Println("Error: no snapshots found")
			os.Exit(1)
		}
		snapshotID = snapshots[0].ID
	}

	var err error
	switch command {
	case "list-snapshots":
		var snapshots []db.SnapshotInfo
		snapshots, err = db.ListSnapshotsCLI(dbPath)
		for _, s := range snapshots {
			fmt.Printf("%d\t%s\t%s\t%s\n", s.ID, s.BuildingType, s.ClimateZone, s.CreatedAt)
		}
	case "counts":
		var counts map[string]int
		counts, err = db.CountObjectsCLI(dbPath, snapshotID)
		types := make([]string, 0, len(counts))
		for t := range counts {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("%5d  %s\n", counts[t], t)
		}
	case "loop":
		if loopName == "" {
			fmt.Println("Error: loop name is required")
			os.Exit(1)
		}
		var components []string
		components, err = db.LoopComponentsCLI(dbPath, snapshotID, loopName, side)
		for i, c := range components {
			fmt.Printf("%d. %s\n", i+1, c)
		}
	case "zone":
		if zoneName == "" {
			fmt.Println("Error: zone name is required")
			os.Exit(1)
		}
		var equipment []string
		equipment, err = db.ZoneEquipmentCLI(dbPath, snapshotID, zoneName)
		for _, e := range equipment {
			fmt.Println(e)
		}
	case "object":
		if objectName == "" {
			fmt.Println("Error: object name is required")
			os.Exit(1)
		}
		var attrs string
		attrs, err = db.ObjectAttributesCLI(dbPath, snapshotID, objectName)
		fmt.Println(attrs)
	default:
		fmt.Println("Invalid command")
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Command %s failed: %v\n", command, err)
		os.Exit(1)
	}
}
