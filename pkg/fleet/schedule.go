package fleet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

func scheduleLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategorySchedule),
	)
}

// CreateEntriesRequest describes one scheduling action. Dates carries the
// multi-selected target days; when Recurrence is set the first date is the
// expansion anchor instead.
type CreateEntriesRequest struct {
	ProgramID         string
	DeviceIDs         []string
	Dates             []time.Time
	Recurrence        *RecurrenceRule
	TimeOfDay         string
	DurationHours     float64
	Location          string
	Notes             string
	InstitutionID     string
	AssignedTeacherID string

	// ConfirmConflicts acknowledges previously reported conflicts and lets
	// the batch proceed anyway. Conflicts never hard-block.
	ConfirmConflicts bool
}

// CreateEntriesResult distinguishes the three outcomes a scheduling action
// can mix: entries written, conflicts reported, and per-date failures of a
// partially completed batch.
type CreateEntriesResult struct {
	Created   []models.ScheduleEntry `json:"created"`
	Conflicts []Conflict             `json:"conflicts"`
	Succeeded int                    `json:"succeeded"`
	Failures  []BatchFailure         `json:"failures"`
}

// EntryPatch updates a single schedule entry. Nil fields stay unchanged.
type EntryPatch struct {
	DeviceIDs         []string
	StartDatetime     *time.Time
	EndDatetime       *time.Time
	Status            *models.EntryStatus
	Location          *string
	Notes             *string
	AssignedTeacherID *string
}

func (f *Fleet) validateCreateRequest(req CreateEntriesRequest) (ValidationErrors, error) {
	var violations ValidationErrors

	if req.ProgramID == "" {
		violations = append(violations, "program is required")
	} else if f.Program == nil {
		return nil, fmt.Errorf("program service not available")
	} else if _, err := f.Program.GetProgram(req.ProgramID); err != nil {
		if IsNotFound(err) {
			// the primary target of the operation is gone, that is fatal
			return nil, err
		}
		return nil, err
	}

	if len(req.DeviceIDs) == 0 {
		violations = append(violations, "at least one device is required")
	}
	if len(req.Dates) == 0 {
		violations = append(violations, "at least one target date is required")
	}
	if _, _, ok := ParseTimeOfDay(req.TimeOfDay); !ok {
		violations = append(violations, "start time must be HH:MM with hour 0-23 and minute 0-59")
	}
	if req.DurationHours <= 0 {
		violations = append(violations, "duration must be positive")
	}
	if req.Location == "" {
		violations = append(violations, "location is required")
	}

	if req.Recurrence != nil {
		if req.Recurrence.Type == RecurrenceWeekly && len(req.Recurrence.Weekdays) == 0 {
			violations = append(violations, "weekly recurrence needs at least one weekday")
		}
		if req.Recurrence.End.Type == RecurrenceEndDate && req.Recurrence.End.Date.IsZero() {
			violations = append(violations, "recurrence end date is required")
		}
	}

	return violations, nil
}

func (f *Fleet) expandOccurrences(req CreateEntriesRequest) []Occurrence {
	if req.Recurrence != nil {
		return ExpandRecurrence(req.Dates[0], req.TimeOfDay, req.DurationHours, *req.Recurrence)
	}

	hour, minute, ok := ParseTimeOfDay(req.TimeOfDay)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var out []Occurrence
	for _, day := range req.Dates {
		key := day.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, OccurrenceAt(day, hour, minute, req.DurationHours))
	}
	return out
}

// createEntries validates, reports conflicts, and only then writes one
// independent entry per target date. All violations are accumulated before
// anything is written; conflicts are advisory and require ConfirmConflicts
// to proceed. The batch is sequential and paced, and a partial failure is
// reported with both the created entries and the failure list.
func (f *Fleet) createEntries(ctx context.Context, req CreateEntriesRequest) (*CreateEntriesResult, error) {
	logger := scheduleLogger()

	violations, err := f.validateCreateRequest(req)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, violations
	}

	occurrences := f.expandOccurrences(req)
	if len(occurrences) == 0 {
		return nil, ValidationErrors{"the recurrence rule produces no occurrences"}
	}

	if f.Conflict == nil {
		return nil, fmt.Errorf("conflict service not available")
	}

	// snapshot re-check right before the writes; the store offers no
	// read-modify-write locking, so a concurrent scheduler can still win the
	// race and the conflict surfaces as a warning on the next load
	var conflicts []Conflict
	for _, occ := range occurrences {
		found, err := f.Conflict.FindConflicts(ConflictQuery{
			DeviceIDs: req.DeviceIDs,
			Start:     occ.Start,
			End:       occ.End,
		})
		if err != nil {
			return nil, err
		}
		conflicts = append(conflicts, found...)
	}

	if len(conflicts) > 0 && !req.ConfirmConflicts {
		logger.Info("Conflicts reported, awaiting confirmation",
			zap.String("program_id", req.ProgramID),
			zap.Int("conflict_count", len(conflicts)))
		return &CreateEntriesResult{Conflicts: conflicts}, nil
	}

	result := &CreateEntriesResult{Conflicts: conflicts}
	total := len(occurrences)

	for i, occ := range occurrences {
		if err := ctx.Err(); err != nil {
			logger.Warn("Entry batch cancelled",
				zap.String("program_id", req.ProgramID),
				zap.Int("current", i),
				zap.Int("total", total))
			return result, err
		}

		if err := f.pace(ctx, PacerKeyScheduleBatch); err != nil {
			return result, err
		}

		entry := models.ScheduleEntry{
			ID:                uuid.NewString(),
			ProgramID:         req.ProgramID,
			DeviceIDs:         req.DeviceIDs,
			StartDatetime:     occ.Start,
			EndDatetime:       occ.End,
			Status:            models.EntryStatusPlanned,
			InstitutionID:     req.InstitutionID,
			Location:          req.Location,
			Notes:             req.Notes,
			AssignedTeacherID: req.AssignedTeacherID,
		}

		if err := f.retryDo(ctx, func() error {
			return f.Db.Conn.Create(&entry).Error
		}); err != nil {
			logger.Warn("Entry creation failed",
				zap.String("program_id", req.ProgramID),
				zap.Time("start", occ.Start),
				zap.Error(err))
			result.Failures = append(result.Failures, BatchFailure{
				Index:  i,
				Target: occ.Start.Format(time.RFC3339),
				Err:    err,
			})
			continue
		}

		result.Created = append(result.Created, entry)
		result.Succeeded++
	}

	logger.Info("Schedule entries created",
		zap.String("program_id", req.ProgramID),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", len(result.Failures)))

	return result, nil
}

func statusTransitionAllowed(from, to models.EntryStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case models.EntryStatusPlanned:
		return to == models.EntryStatusActive || to == models.EntryStatusCancelled
	case models.EntryStatusActive:
		return to == models.EntryStatusEnded || to == models.EntryStatusCancelled
	}
	return false
}

func (f *Fleet) getEntry(entryID string) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	err := f.Db.Conn.First(&entry, "id = ?", entryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "schedule entry", ID: entryID}
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// updateEntry touches exactly one record. Recurrence siblings created in the
// same action are independent entries and are never updated alongside.
func (f *Fleet) updateEntry(entryID string, patch EntryPatch) (*models.ScheduleEntry, error) {
	logger := scheduleLogger()

	entry, err := f.getEntry(entryID)
	if err != nil {
		return nil, err
	}

	var violations ValidationErrors

	if patch.Status != nil && !statusTransitionAllowed(entry.Status, *patch.Status) {
		violations = append(violations, fmt.Sprintf(
			"status cannot change from %q to %q", entry.Status, *patch.Status))
	}
	if patch.Location != nil && *patch.Location == "" {
		violations = append(violations, "location is required")
	}
	if patch.DeviceIDs != nil && len(patch.DeviceIDs) == 0 {
		violations = append(violations, "at least one device is required")
	}

	start := entry.StartDatetime
	end := entry.EndDatetime
	if patch.StartDatetime != nil {
		start = *patch.StartDatetime
	}
	if patch.EndDatetime != nil {
		end = *patch.EndDatetime
	}
	if !end.After(start) {
		violations = append(violations, "end must be after start")
	}

	if len(violations) > 0 {
		return nil, violations
	}

	entry.StartDatetime = start
	entry.EndDatetime = end
	if patch.Status != nil {
		entry.Status = *patch.Status
	}
	if patch.DeviceIDs != nil {
		entry.DeviceIDs = patch.DeviceIDs
	}
	if patch.Location != nil {
		entry.Location = *patch.Location
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}
	if patch.AssignedTeacherID != nil {
		entry.AssignedTeacherID = *patch.AssignedTeacherID
	}

	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Save(entry).Error
	}); err != nil {
		return nil, err
	}

	logger.Info("Updated schedule entry", zap.String("entry_id", entryID))
	return entry, nil
}

func (f *Fleet) cancelEntry(entryID string) error {
	logger := scheduleLogger()

	entry, err := f.getEntry(entryID)
	if err != nil {
		return err
	}

	if entry.Status == models.EntryStatusCancelled {
		return nil
	}
	if entry.Status == models.EntryStatusEnded {
		return ValidationErrors{"an ended entry cannot be cancelled"}
	}

	entry.Status = models.EntryStatusCancelled
	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Save(entry).Error
	}); err != nil {
		return err
	}

	logger.Info("Cancelled schedule entry", zap.String("entry_id", entryID))
	return nil
}

type IScheduleImpl struct {
	fleet *Fleet
}

func (is *IScheduleImpl) CreateEntries(ctx context.Context, req CreateEntriesRequest) (*CreateEntriesResult, error) {
	return is.fleet.createEntries(ctx, req)
}

func (is *IScheduleImpl) UpdateEntry(entryID string, patch EntryPatch) (*models.ScheduleEntry, error) {
	return is.fleet.updateEntry(entryID, patch)
}

func (is *IScheduleImpl) CancelEntry(entryID string) error {
	return is.fleet.cancelEntry(entryID)
}

func (f *Fleet) GetISchedule() ISchedule {
	return &IScheduleImpl{fleet: f}
}
