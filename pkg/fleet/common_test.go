package fleet

import (
	"bufio"
	"encoding/json"
	"io"

	"edureality.xyz/vr-fleet-service/pkg/db"
)

func GetTestFleetWithMemorySqlite() *Fleet {
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	fleetInstance := &Fleet{Db: *dbInstance}

	fleetInstance.WithServices(ServiceOpts{
		Catalog:  fleetInstance.GetICatalog(),
		Relation: fleetInstance.GetIRelation(),
		Program:  fleetInstance.GetIProgram(),
		Conflict: fleetInstance.GetIConflict(),
		Schedule: fleetInstance.GetISchedule(),
	})

	return fleetInstance
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
