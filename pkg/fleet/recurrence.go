package fleet

import (
	"strconv"
	"strings"
	"time"
)

type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

type RecurrenceEndType string

const (
	RecurrenceEndNever RecurrenceEndType = "never"
	RecurrenceEndDate  RecurrenceEndType = "date"
	RecurrenceEndCount RecurrenceEndType = "count"
)

type RecurrenceEnd struct {
	Type  RecurrenceEndType
	Date  time.Time
	Count int
}

// RecurrenceRule is a creation-time generator only. It is expanded once into
// independent schedule entries and never persisted; there is no standing
// parent/child relationship between the instances it produces.
type RecurrenceRule struct {
	Type     RecurrenceType
	Interval int
	Weekdays map[time.Weekday]bool // weekly only
	End      RecurrenceEnd
}

type Occurrence struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

const (
	// hard termination guard, applies before any end condition
	maxExpansionIterations = 1000
	// occurrence ceiling for open-ended rules
	maxOpenEndedOccurrences = 365
)

// ParseTimeOfDay parses "HH:MM" with hour 0-23 and minute 0-59.
func ParseTimeOfDay(s string) (hour int, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	for _, part := range parts {
		if len(part) < 1 || len(part) > 2 {
			return 0, 0, false
		}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// OccurrenceAt combines a calendar day with a start time and a duration in
// hours (fractional allowed). The end may roll past midnight into the next
// day.
func OccurrenceAt(day time.Time, hour int, minute int, durationHours float64) Occurrence {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	end := start.Add(time.Duration(durationHours * float64(time.Hour)))
	return Occurrence{Start: start, End: end}
}

// ExpandRecurrence turns a rule into the concrete ordered occurrence list.
// Deterministic and side-effect free.
//
// Daily rules step by the interval in days. Weekly rules walk day by day so
// weekday membership is tested on every date, with interval counted in week
// blocks from the anchor. Monthly rules require a day-of-month match: a month
// without the anchor day is skipped, never clamped to month end.
//
// A malformed time string or a non-positive duration yields an empty result.
// This is the validation boundary for half-typed input, not silent data loss:
// ScheduleEntryService reports the violation before expansion is relied on.
func ExpandRecurrence(baseDate time.Time, timeOfDay string, durationHours float64, rule RecurrenceRule) []Occurrence {
	hour, minute, ok := ParseTimeOfDay(timeOfDay)
	if !ok || durationHours <= 0 {
		return nil
	}
	if rule.End.Type == RecurrenceEndDate && rule.End.Date.IsZero() {
		return nil
	}
	if rule.End.Type == RecurrenceEndCount && rule.End.Count <= 0 {
		return nil
	}

	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	loc := baseDate.Location()
	anchor := time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), 0, 0, 0, 0, loc)

	var endDay time.Time
	if rule.End.Type == RecurrenceEndDate {
		endDay = time.Date(
			rule.End.Date.Year(), rule.End.Date.Month(), rule.End.Date.Day(), 0, 0, 0, 0, loc)
	}

	var out []Occurrence
	seen := make(map[string]bool)

	for iter := 0; iter < maxExpansionIterations; iter++ {
		var day time.Time
		include := false

		switch rule.Type {
		case RecurrenceDaily:
			day = anchor.AddDate(0, 0, iter*interval)
			include = true
		case RecurrenceWeekly:
			day = anchor.AddDate(0, 0, iter)
			if rule.Weekdays[day.Weekday()] && (iter/7)%interval == 0 {
				include = true
			}
		case RecurrenceMonthly:
			day = time.Date(anchor.Year(), anchor.Month()+time.Month(iter*interval), anchor.Day(), 0, 0, 0, 0, loc)
			// time.Date normalizes Feb 31 into March; a shifted day means the
			// month lacks the anchor day, so the month is skipped
			include = day.Day() == anchor.Day()
		default:
			return out
		}

		if rule.End.Type == RecurrenceEndDate && day.After(endDay) {
			break
		}
		if !include {
			continue
		}

		key := day.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, OccurrenceAt(day, hour, minute, durationHours))

		if rule.End.Type == RecurrenceEndCount && len(out) >= rule.End.Count {
			break
		}
		if (rule.End.Type == RecurrenceEndNever || rule.End.Type == "") &&
			len(out) >= maxOpenEndedOccurrences {
			break
		}
	}

	return out
}
