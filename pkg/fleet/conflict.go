package fleet

import (
	"time"

	"go.uber.org/zap"
	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

// ConflictQuery asks which of the candidate devices are already booked in the
// [Start, End) window. ExcludeEntryID skips one entry, used when an existing
// entry is edited against itself. OwnedDeviceIDs are devices already assigned
// to the asking program; overlapping one's own assignment is not a conflict.
type ConflictQuery struct {
	DeviceIDs      []string
	Start          time.Time
	End            time.Time
	ExcludeEntryID string
	OwnedDeviceIDs []string
}

// Conflict annotates one double-booked device with the competing entry's
// program and window. Conflicts are advisory: the detector reports, the
// caller decides whether to proceed.
type Conflict struct {
	DeviceID  string    `json:"device_id"`
	EntryID   string    `json:"entry_id"`
	ProgramID string    `json:"program_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// Overlaps is the half-open interval test. Strict inequalities: windows that
// merely touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func (f *Fleet) findConflicts(q ConflictQuery) ([]Conflict, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryConflict),
	)

	var entries []models.ScheduleEntry
	if err := f.Db.Conn.
		Where("status <> ?", models.EntryStatusCancelled).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	candidate := common.SetOf(q.DeviceIDs)
	owned := common.SetOf(q.OwnedDeviceIDs)

	var conflicts []Conflict
	for _, entry := range entries {
		if q.ExcludeEntryID != "" && entry.ID == q.ExcludeEntryID {
			continue
		}
		if !Overlaps(q.Start, q.End, entry.StartDatetime, entry.EndDatetime) {
			continue
		}
		// every overlapping entry is reported per device, no deduplication
		for _, deviceID := range entry.DeviceIDs {
			if candidate[deviceID] && !owned[deviceID] {
				conflicts = append(conflicts, Conflict{
					DeviceID:  deviceID,
					EntryID:   entry.ID,
					ProgramID: entry.ProgramID,
					Start:     entry.StartDatetime,
					End:       entry.EndDatetime,
				})
			}
		}
	}

	if len(conflicts) > 0 {
		logger.Info("Found schedule conflicts",
			zap.Int("count", len(conflicts)),
			zap.Time("window_start", q.Start),
			zap.Time("window_end", q.End))
	}

	return conflicts, nil
}

type IConflictImpl struct {
	fleet *Fleet
}

func (ic *IConflictImpl) FindConflicts(q ConflictQuery) ([]Conflict, error) {
	return ic.fleet.findConflicts(q)
}

func (f *Fleet) GetIConflict() IConflict {
	return &IConflictImpl{fleet: f}
}
