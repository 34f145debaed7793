package models

import "time"

type EntryStatus string

const (
	EntryStatusPlanned   EntryStatus = "planned"
	EntryStatusActive    EntryStatus = "active"
	EntryStatusEnded     EntryStatus = "ended"
	EntryStatusCancelled EntryStatus = "cancelled"
)

// Device is one physical VR headset ("binocular"). BinocularNumber is the
// human-facing sequential unit number printed on the device.
type Device struct {
	ID              string `gorm:"primaryKey"`
	BinocularNumber int    `gorm:"uniqueIndex"`
	IsDisabled      bool
	DisableReason   string
	CreatedAt       time.Time
}

type Application struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"index"`
	CreatedAt time.Time
}

// DeviceAppRelation records "app is installed on device", one row per pair.
type DeviceAppRelation struct {
	ID       uint   `gorm:"primaryKey"`
	DeviceID string `gorm:"index"`
	AppID    string `gorm:"index"`
}

type MaterialItem struct {
	AppIDs      []string `json:"app_ids"`
	Experiences []string `json:"experiences"`
}

type SessionItem struct {
	AppIDs        []string `json:"app_ids"`
	ExperienceIDs []string `json:"experience_ids"`
}

// Program is a schedulable syllabus instance. Its app set is always derived
// from the material and session payloads at read time, never stored.
// AssignedDeviceIDs, when non-empty, is a manual fleet assignment that takes
// precedence over app-derived device resolution.
type Program struct {
	ID                  string `gorm:"primaryKey"`
	Title               string
	CourseTopic         string
	Subject             string
	InstitutionID       string         `gorm:"index"`
	AssignedDeviceIDs   []string       `gorm:"serializer:json"`
	TeachingMaterials   []MaterialItem `gorm:"serializer:json"`
	EnrichmentMaterials []MaterialItem `gorm:"serializer:json"`
	Sessions            []SessionItem  `gorm:"serializer:json"`
	CreatedAt           time.Time
}

// ScheduleEntry is one concrete time-boxed booking of devices to a program.
// Lifecycle: planned -> active -> ended, or -> cancelled from planned/active.
type ScheduleEntry struct {
	ID                string    `gorm:"primaryKey"`
	ProgramID         string    `gorm:"index"`
	DeviceIDs         []string  `gorm:"serializer:json"`
	StartDatetime     time.Time `gorm:"index"`
	EndDatetime       time.Time
	Status            EntryStatus `gorm:"type:varchar(20);check:status IN ('planned','active','ended','cancelled')"`
	InstitutionID     string
	Location          string
	Notes             string
	AssignedTeacherID string
	CreatedAt         time.Time
}

type Institution struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	CreatedAt time.Time
}

type Teacher struct {
	ID            string `gorm:"primaryKey"`
	FullName      string
	InstitutionID string `gorm:"index"`
	CreatedAt     time.Time
}
