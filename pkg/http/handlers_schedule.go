package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"edureality.xyz/vr-fleet-service/pkg/fleet"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

const dateLayout = "2006-01-02"

func (rs *RestfulServer) GetEntries(c *gin.Context) {
	entries, err := rs.Fleet.ListEntries(c.Query("program_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

type RecurrenceEndPayload struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type RecurrencePayload struct {
	Type     string               `json:"type"`
	Interval int                  `json:"interval"`
	Weekdays []int                `json:"weekdays"`
	End      RecurrenceEndPayload `json:"end"`
}

type CreateEntriesPayload struct {
	ProgramID         string             `json:"program_id"`
	DeviceIDs         []string           `json:"device_ids"`
	Dates             []string           `json:"dates"`
	Recurrence        *RecurrencePayload `json:"recurrence"`
	StartTime         string             `json:"start_time"`
	DurationHours     float64            `json:"duration_hours"`
	Location          string             `json:"location"`
	Notes             string             `json:"notes"`
	InstitutionID     string             `json:"institution_id"`
	AssignedTeacherID string             `json:"assigned_teacher_id"`
	ConfirmConflicts  bool               `json:"confirm_conflicts"`
}

func (p *CreateEntriesPayload) toRequest() (fleet.CreateEntriesRequest, fleet.ValidationErrors) {
	var violations fleet.ValidationErrors

	req := fleet.CreateEntriesRequest{
		ProgramID:         p.ProgramID,
		DeviceIDs:         p.DeviceIDs,
		TimeOfDay:         p.StartTime,
		DurationHours:     p.DurationHours,
		Location:          p.Location,
		Notes:             p.Notes,
		InstitutionID:     p.InstitutionID,
		AssignedTeacherID: p.AssignedTeacherID,
		ConfirmConflicts:  p.ConfirmConflicts,
	}

	for _, raw := range p.Dates {
		day, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			violations = append(violations, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw))
			continue
		}
		req.Dates = append(req.Dates, day)
	}

	if p.Recurrence != nil {
		rule := fleet.RecurrenceRule{
			Type:     fleet.RecurrenceType(p.Recurrence.Type),
			Interval: p.Recurrence.Interval,
			Weekdays: make(map[time.Weekday]bool),
			End: fleet.RecurrenceEnd{
				Type:  fleet.RecurrenceEndType(p.Recurrence.End.Type),
				Count: p.Recurrence.End.Count,
			},
		}
		for _, weekday := range p.Recurrence.Weekdays {
			if weekday < 0 || weekday > 6 {
				violations = append(violations, fmt.Sprintf("invalid weekday %d, expected 0-6", weekday))
				continue
			}
			rule.Weekdays[time.Weekday(weekday)] = true
		}
		if p.Recurrence.End.Date != "" {
			endDate, err := time.ParseInLocation(dateLayout, p.Recurrence.End.Date, time.Local)
			if err != nil {
				violations = append(violations, fmt.Sprintf(
					"invalid recurrence end date %q, expected YYYY-MM-DD", p.Recurrence.End.Date))
			} else {
				rule.End.Date = endDate
			}
		}
		req.Recurrence = &rule
	}

	return req, violations
}

func (rs *RestfulServer) PostEntries(c *gin.Context) {
	var payload CreateEntriesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, violations := payload.toRequest()
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string(violations)})
		return
	}

	result, err := rs.Fleet.Schedule.CreateEntries(c.Request.Context(), req)
	if err != nil {
		if result != nil {
			// cancelled or aborted mid-batch, surface partial completion
			c.JSON(http.StatusOK, gin.H{
				"created":   result.Created,
				"succeeded": result.Succeeded,
				"failed":    len(result.Failures),
				"failures":  toFailureResponses(result.Failures),
				"cancelled": true,
			})
			return
		}
		renderError(c, err)
		return
	}

	if len(result.Created) == 0 && len(result.Conflicts) > 0 {
		// advisory: confirm and re-submit with confirm_conflicts
		c.JSON(http.StatusConflict, gin.H{"conflicts": result.Conflicts})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"created":   result.Created,
		"conflicts": result.Conflicts,
		"succeeded": result.Succeeded,
		"failed":    len(result.Failures),
		"failures":  toFailureResponses(result.Failures),
	})
}

type PreviewConflictsRequest struct {
	DeviceIDs      []string  `json:"device_ids"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	ExcludeEntryID string    `json:"exclude_entry_id"`
	OwnedDeviceIDs []string  `json:"owned_device_ids"`
}

func (rs *RestfulServer) PreviewConflicts(c *gin.Context) {
	var req PreviewConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conflicts, err := rs.Fleet.Conflict.FindConflicts(fleet.ConflictQuery{
		DeviceIDs:      req.DeviceIDs,
		Start:          req.Start,
		End:            req.End,
		ExcludeEntryID: req.ExcludeEntryID,
		OwnedDeviceIDs: req.OwnedDeviceIDs,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	if conflicts == nil {
		conflicts = []fleet.Conflict{}
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": conflicts})
}

type EntryPatchPayload struct {
	DeviceIDs         []string   `json:"device_ids"`
	StartDatetime     *time.Time `json:"start_datetime"`
	EndDatetime       *time.Time `json:"end_datetime"`
	Status            *string    `json:"status"`
	Location          *string    `json:"location"`
	Notes             *string    `json:"notes"`
	AssignedTeacherID *string    `json:"assigned_teacher_id"`
}

func (rs *RestfulServer) PatchEntry(c *gin.Context) {
	entryID := c.Param("entry_id")

	var payload EntryPatchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := fleet.EntryPatch{
		DeviceIDs:         payload.DeviceIDs,
		StartDatetime:     payload.StartDatetime,
		EndDatetime:       payload.EndDatetime,
		Location:          payload.Location,
		Notes:             payload.Notes,
		AssignedTeacherID: payload.AssignedTeacherID,
	}
	if payload.Status != nil {
		status := models.EntryStatus(*payload.Status)
		patch.Status = &status
	}

	entry, err := rs.Fleet.Schedule.UpdateEntry(entryID, patch)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (rs *RestfulServer) CancelEntry(c *gin.Context) {
	if err := rs.Fleet.Schedule.CancelEntry(c.Param("entry_id")); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
