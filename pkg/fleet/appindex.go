package fleet

import "edureality.xyz/vr-fleet-service/pkg/models"

// BuildAppToDevices indexes the flat relation list to answer "which devices
// carry app X". Single O(N) pass.
func BuildAppToDevices(relations []models.DeviceAppRelation) map[string]map[string]bool {
	index := make(map[string]map[string]bool)
	for _, rel := range relations {
		if rel.AppID == "" || rel.DeviceID == "" {
			continue
		}
		devices, ok := index[rel.AppID]
		if !ok {
			devices = make(map[string]bool)
			index[rel.AppID] = devices
		}
		devices[rel.DeviceID] = true
	}
	return index
}

// BuildDeviceToApps is the inverse index: "which apps does device Y have".
func BuildDeviceToApps(relations []models.DeviceAppRelation) map[string]map[string]bool {
	index := make(map[string]map[string]bool)
	for _, rel := range relations {
		if rel.AppID == "" || rel.DeviceID == "" {
			continue
		}
		apps, ok := index[rel.DeviceID]
		if !ok {
			apps = make(map[string]bool)
			index[rel.DeviceID] = apps
		}
		apps[rel.AppID] = true
	}
	return index
}
