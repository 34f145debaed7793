package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var fleetSize int = 1000
var programCount int = 50
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	deviceIDs := provisionFleet(fleetSize)
	fmt.Printf("provisioned %v devices\n", len(deviceIDs))

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	programIDs := make([]string, programCount)
	wg := sync.WaitGroup{}
	for i := range programCount {
		wg.Add(1)
		go func() {
			programIDs[i] = createProgram(i)
			fmt.Printf("\rcreated program %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v programs: used time=%v seconds, throughput=%v action/second\n",
		programCount, usedTime.Seconds(), float64(programCount)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range programCount {
		wg.Add(1)
		go func() {
			doAction(programIDs[i], deviceIDs)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v programs: used time=%v seconds, throughput=%v action/second\n",
		programCount, usedTime.Seconds(), float64(programCount*3)/usedTime.Seconds(),
	)
}

func postJSON(path string, payload any) map[string]any {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var decoded map[string]any
	json.Unmarshal(body, &decoded)
	return decoded
}

func provisionFleet(count int) []string {
	jsonData, _ := json.Marshal(map[string]int{"count": count})
	resp, err := http.Post(fmt.Sprintf("http://%s/devices/provision", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var devices []map[string]any
	if err := json.Unmarshal(body, &devices); err != nil {
		panic(err)
	}

	deviceIDs := make([]string, len(devices))
	for i, device := range devices {
		deviceIDs[i] = device["id"].(string)
	}
	return deviceIDs
}

func createProgram(index int) string {
	decoded := postJSON("/programs", map[string]any{
		"title": fmt.Sprintf("Load program %v", index),
	})
	return decoded["id"].(string)
}

func pickDevices(deviceIDs []string, n int) []string {
	picked := make([]string, n)
	for i := range n {
		picked[i] = deviceIDs[rnd.Intn(len(deviceIDs))]
	}
	return picked
}

func doAction(programID string, deviceIDs []string) {
	actions := []func(){
		genAssignDevicesAction(programID, deviceIDs),
		genScheduleAction(programID, deviceIDs),
		genPreviewConflictsAction(deviceIDs),
	}
	actionNames := []string{
		"AssignDevices",
		"ScheduleEntries",
		"PreviewConflicts",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for program %v", actionNames[index], programID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genAssignDevicesAction(programID string, deviceIDs []string) func() {
	return func() {
		jsonData, _ := json.Marshal(map[string]any{
			"device_ids": pickDevices(deviceIDs, 1+rnd.Intn(5)),
		})
		req, _ := http.NewRequest(http.MethodPut,
			fmt.Sprintf("http://%s/programs/%s/devices", httpHostPort, programID),
			bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		resp.Body.Close()
	}
}

func genScheduleAction(programID string, deviceIDs []string) func() {
	return func() {
		day := time.Now().AddDate(0, 0, 1+rnd.Intn(60))
		postJSON("/schedule-entries", map[string]any{
			"program_id":        programID,
			"device_ids":        pickDevices(deviceIDs, 1+rnd.Intn(3)),
			"dates":             []string{day.Format("2006-01-02")},
			"start_time":        fmt.Sprintf("%02d:00", 8+rnd.Intn(10)),
			"duration_hours":    float64(1 + rnd.Intn(3)),
			"location":          fmt.Sprintf("Room %v", 1+rnd.Intn(20)),
			"confirm_conflicts": true,
		})
	}
}

func genPreviewConflictsAction(deviceIDs []string) func() {
	return func() {
		start := time.Now().AddDate(0, 0, 1+rnd.Intn(60))
		postJSON("/schedule-entries/preview-conflicts", map[string]any{
			"device_ids": pickDevices(deviceIDs, 1+rnd.Intn(5)),
			"start":      start.Format(time.RFC3339),
			"end":        start.Add(2 * time.Hour).Format(time.RFC3339),
		})
	}
}
