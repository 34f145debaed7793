package fleet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/models"
	_ "edureality.xyz/vr-fleet-service/pkg/testing"
)

func seedProgram(t *testing.T, f *Fleet) *models.Program {
	t.Helper()
	program, err := f.Program.CreateProgram(models.Program{
		Title: "Scheduling test " + uuid.NewString(),
	})
	require.NoError(t, err)
	return program
}

func validCreateRequest(programID string, deviceIDs []string, day time.Time) CreateEntriesRequest {
	return CreateEntriesRequest{
		ProgramID:     programID,
		DeviceIDs:     deviceIDs,
		Dates:         []time.Time{day},
		TimeOfDay:     "09:00",
		DurationHours: 2,
		Location:      "Room 12",
	}
}

func TestCreateEntries_AccumulatesAllViolations(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program := seedProgram(t, f)

	// no devices, no dates, bad time, bad duration, no location
	_, err := f.Schedule.CreateEntries(context.Background(), CreateEntriesRequest{
		ProgramID:     program.ID,
		TimeOfDay:     "25:00",
		DurationHours: 0,
	})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 5)
}

func TestCreateEntries_UnknownProgramIsFatal(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	day := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)
	_, err := f.Schedule.CreateEntries(context.Background(),
		validCreateRequest(uuid.NewString(), []string{"dev-1"}, day))
	assert.True(t, IsNotFound(err))
}

func TestCreateEntries_OneEntryPerDate(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program := seedProgram(t, f)
	deviceID := uuid.NewString()

	day1 := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 2)

	req := validCreateRequest(program.ID, []string{deviceID}, day1)
	req.Dates = []time.Time{day1, day2, day1} // duplicate day collapses

	result, err := f.Schedule.CreateEntries(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result.Created, 2)
	assert.Equal(t, 2, result.Succeeded)
	assert.Empty(t, result.Conflicts)

	first := result.Created[0]
	assert.Equal(t, models.EntryStatusPlanned, first.Status)
	assert.Equal(t, 9, first.StartDatetime.Hour())
	assert.Equal(t, 11, first.EndDatetime.Hour())
	assert.Equal(t, program.ID, first.ProgramID)

	// each date produced an independent record
	assert.NotEqual(t, result.Created[0].ID, result.Created[1].ID)
}

func TestCreateEntries_RecurrenceExpandsFromAnchor(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program := seedProgram(t, f)

	anchor := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)
	req := validCreateRequest(program.ID, []string{uuid.NewString()}, anchor)
	req.Recurrence = &RecurrenceRule{
		Type:     RecurrenceDaily,
		Interval: 1,
		End:      RecurrenceEnd{Type: RecurrenceEndCount, Count: 4},
	}

	result, err := f.Schedule.CreateEntries(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result.Created, 4)
	for i, entry := range result.Created {
		expected := anchor.AddDate(0, 0, i)
		assert.Equal(t, expected.Day(), entry.StartDatetime.Day())
	}
}

func TestCreateEntries_WeeklyWithoutWeekdaysRejected(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program := seedProgram(t, f)

	day := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)
	req := validCreateRequest(program.ID, []string{uuid.NewString()}, day)
	req.Recurrence = &RecurrenceRule{
		Type:     RecurrenceWeekly,
		Interval: 1,
		End:      RecurrenceEnd{Type: RecurrenceEndCount, Count: 3},
	}

	var verrs ValidationErrors
	_, err := f.Schedule.CreateEntries(context.Background(), req)
	require.ErrorAs(t, err, &verrs)
}

func TestCreateEntries_ConflictsAreAdvisory(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program := seedProgram(t, f)
	deviceID := uuid.NewString()

	day := time.Date(2024, time.April, 8, 0, 0, 0, 0, time.Local)
	seedEntry(t, f, uuid.NewString(),
		[]string{deviceID}, day.Add(8*time.Hour), day.Add(10*time.Hour), models.EntryStatusPlanned)

	// first attempt reports the conflict and writes nothing
	req := validCreateRequest(program.ID, []string{deviceID}, day)
	result, err := f.Schedule.CreateEntries(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, deviceID, result.Conflicts[0].DeviceID)
	assert.Empty(t, result.Created)
	assert.Equal(t, 0, result.Succeeded)

	var count int64
	require.NoError(t, f.Db.Conn.Model(&models.ScheduleEntry{}).
		Where("program_id = ?", program.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// confirming lets the overlapping entry through
	req.ConfirmConflicts = true
	result, err = f.Schedule.CreateEntries(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result.Created, 1)
	assert.Len(t, result.Conflicts, 1)
}

func TestCreateEntries_CancelledContextReportsPartialBatch(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program := seedProgram(t, f)

	day := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.Local)
	req := validCreateRequest(program.ID, []string{uuid.NewString()}, day)
	req.Dates = []time.Time{day, day.AddDate(0, 0, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := f.Schedule.CreateEntries(ctx, req)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Empty(t, result.Created)
}

func TestCreateEntries_EmptyProgramNeverSchedulesDeviceless(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	// no materials, no sessions, no explicit assignment
	program := seedProgram(t, f)

	resolved, err := f.Program.ResolveDevices(program.ID)
	require.NoError(t, err)
	require.Empty(t, resolved)

	day := time.Date(2024, time.April, 22, 0, 0, 0, 0, time.Local)
	req := validCreateRequest(program.ID, nil, day)

	var verrs ValidationErrors
	_, err = f.Schedule.CreateEntries(context.Background(), req)
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "at least one device is required")

	var count int64
	require.NoError(t, f.Db.Conn.Model(&models.ScheduleEntry{}).
		Where("program_id = ?", program.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateEntry_SingleRecordOnly(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program := seedProgram(t, f)
	anchor := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.Local)
	req := validCreateRequest(program.ID, []string{uuid.NewString()}, anchor)
	req.Recurrence = &RecurrenceRule{
		Type:     RecurrenceDaily,
		Interval: 1,
		End:      RecurrenceEnd{Type: RecurrenceEndCount, Count: 3},
	}

	result, err := f.Schedule.CreateEntries(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Created, 3)

	location := "Auditorium"
	updated, err := f.Schedule.UpdateEntry(result.Created[1].ID, EntryPatch{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Auditorium", updated.Location)

	// recurrence siblings stay untouched
	for _, siblingID := range []string{result.Created[0].ID, result.Created[2].ID} {
		sibling, err := f.getEntry(siblingID)
		require.NoError(t, err)
		assert.Equal(t, "Room 12", sibling.Location)
	}
}

func TestUpdateEntry_AccumulatesViolations(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	day := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.Local)
	entry := seedEntry(t, f, uuid.NewString(),
		[]string{uuid.NewString()}, day.Add(9*time.Hour), day.Add(11*time.Hour), models.EntryStatusPlanned)

	badStatus := models.EntryStatusEnded // planned cannot jump to ended
	badEnd := day.Add(8 * time.Hour)     // before the existing start
	emptyLocation := ""

	_, err := f.Schedule.UpdateEntry(entry.ID, EntryPatch{
		Status:      &badStatus,
		EndDatetime: &badEnd,
		Location:    &emptyLocation,
	})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestStatusTransitionAllowed(t *testing.T) {
	assert.True(t, statusTransitionAllowed(models.EntryStatusPlanned, models.EntryStatusActive))
	assert.True(t, statusTransitionAllowed(models.EntryStatusPlanned, models.EntryStatusCancelled))
	assert.True(t, statusTransitionAllowed(models.EntryStatusActive, models.EntryStatusEnded))
	assert.True(t, statusTransitionAllowed(models.EntryStatusActive, models.EntryStatusCancelled))
	assert.True(t, statusTransitionAllowed(models.EntryStatusActive, models.EntryStatusActive))

	assert.False(t, statusTransitionAllowed(models.EntryStatusPlanned, models.EntryStatusEnded))
	assert.False(t, statusTransitionAllowed(models.EntryStatusEnded, models.EntryStatusActive))
	assert.False(t, statusTransitionAllowed(models.EntryStatusCancelled, models.EntryStatusPlanned))
}

func TestCancelEntry(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	day := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.Local)
	entry := seedEntry(t, f, uuid.NewString(),
		[]string{uuid.NewString()}, day.Add(9*time.Hour), day.Add(11*time.Hour), models.EntryStatusPlanned)

	require.NoError(t, f.Schedule.CancelEntry(entry.ID))

	reloaded, err := f.getEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusCancelled, reloaded.Status)

	// cancelling again is a no-op
	require.NoError(t, f.Schedule.CancelEntry(entry.ID))
}

func TestCancelEntry_EndedRejected(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	day := time.Date(2024, time.May, 21, 0, 0, 0, 0, time.Local)
	entry := seedEntry(t, f, uuid.NewString(),
		[]string{uuid.NewString()}, day.Add(9*time.Hour), day.Add(11*time.Hour), models.EntryStatusEnded)

	var verrs ValidationErrors
	err := f.Schedule.CancelEntry(entry.ID)
	require.ErrorAs(t, err, &verrs)
}

func TestCancelEntry_NotFound(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	assert.True(t, IsNotFound(f.Schedule.CancelEntry(uuid.NewString())))
}

func TestCancelledEntryFreesDevices(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program := seedProgram(t, f)
	deviceID := uuid.NewString()

	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local)
	blocking := seedEntry(t, f, uuid.NewString(),
		[]string{deviceID}, day.Add(9*time.Hour), day.Add(11*time.Hour), models.EntryStatusPlanned)

	require.NoError(t, f.Schedule.CancelEntry(blocking.ID))

	result, err := f.Schedule.CreateEntries(context.Background(),
		validCreateRequest(program.ID, []string{deviceID}, day))
	require.NoError(t, err)

	assert.Empty(t, result.Conflicts)
	require.Len(t, result.Created, 1)
}
