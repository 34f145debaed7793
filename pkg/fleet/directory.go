package fleet

import (
	"context"

	"github.com/google/uuid"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

// Institutions and teachers are plain metadata targets for schedule entries.
// They stay on the Fleet directly; nothing in the core branches on them.

func (f *Fleet) ListInstitutions() ([]models.Institution, error) {
	var institutions []models.Institution
	err := f.Db.Conn.Order("name asc").Find(&institutions).Error
	return institutions, err
}

func (f *Fleet) CreateInstitution(name string) (*models.Institution, error) {
	if name == "" {
		return nil, ValidationErrors{"institution name is required"}
	}
	institution := models.Institution{ID: uuid.NewString(), Name: name}
	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Create(&institution).Error
	}); err != nil {
		return nil, err
	}
	return &institution, nil
}

func (f *Fleet) ListTeachers() ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := f.Db.Conn.Order("full_name asc").Find(&teachers).Error
	return teachers, err
}

func (f *Fleet) CreateTeacher(fullName string, institutionID string) (*models.Teacher, error) {
	if fullName == "" {
		return nil, ValidationErrors{"teacher name is required"}
	}
	teacher := models.Teacher{ID: uuid.NewString(), FullName: fullName, InstitutionID: institutionID}
	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Create(&teacher).Error
	}); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListEntries returns schedule entries ordered by start time, optionally
// narrowed to one program.
func (f *Fleet) ListEntries(programID string) ([]models.ScheduleEntry, error) {
	query := f.Db.Conn.Order("start_datetime asc")
	if programID != "" {
		query = query.Where("program_id = ?", programID)
	}
	var entries []models.ScheduleEntry
	err := query.Find(&entries).Error
	return entries, err
}
