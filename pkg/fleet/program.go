package fleet

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

func programLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryProgram),
	)
}

// ResolveAppIDs walks the program's teaching materials, enrichment materials
// and sessions and returns the union of every application reference. Missing
// collections are treated as empty; the set is recomputed on every call.
func ResolveAppIDs(program *models.Program) map[string]bool {
	set := make(map[string]bool)
	if program == nil {
		return set
	}

	collect := func(ids []string) {
		for _, id := range ids {
			if id != "" {
				set[id] = true
			}
		}
	}

	for _, material := range program.TeachingMaterials {
		collect(material.AppIDs)
		collect(material.Experiences)
	}
	for _, material := range program.EnrichmentMaterials {
		collect(material.AppIDs)
		collect(material.Experiences)
	}
	for _, session := range program.Sessions {
		collect(session.AppIDs)
		collect(session.ExperienceIDs)
	}

	return set
}

type SelectionKind string

const (
	SelectionExplicit SelectionKind = "explicit"
	SelectionDerived  SelectionKind = "derived"
)

// DeviceSelection is the tagged form of the assignment duality: an explicit
// manual device list always wins over the app-derived set, even when the
// derived set would be non-empty and the explicit list points at stale ids.
type DeviceSelection struct {
	Kind      SelectionKind
	DeviceIDs []string        // explicit only
	AppIDs    map[string]bool // derived only
}

func SelectionFor(program *models.Program) DeviceSelection {
	if program != nil && len(program.AssignedDeviceIDs) > 0 {
		return DeviceSelection{Kind: SelectionExplicit, DeviceIDs: program.AssignedDeviceIDs}
	}
	return DeviceSelection{Kind: SelectionDerived, AppIDs: ResolveAppIDs(program)}
}

// DisplayTitle normalizes the duck-typed program name. Fallback order:
// title, course_topic, subject.
func DisplayTitle(program *models.Program) string {
	if program == nil {
		return ""
	}
	if program.Title != "" {
		return program.Title
	}
	if program.CourseTopic != "" {
		return program.CourseTopic
	}
	if program.Subject != "" {
		return program.Subject
	}
	return fmt.Sprintf("Program %s", program.ID)
}

func (f *Fleet) listPrograms() ([]models.Program, error) {
	var programs []models.Program
	err := f.Db.Conn.Order("created_at asc").Find(&programs).Error
	return programs, err
}

func (f *Fleet) createProgram(program models.Program) (*models.Program, error) {
	if program.Title == "" && program.CourseTopic == "" && program.Subject == "" {
		return nil, ValidationErrors{"a program needs a title, course topic or subject"}
	}
	if program.ID == "" {
		program.ID = uuid.NewString()
	}

	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Create(&program).Error
	}); err != nil {
		return nil, err
	}

	programLogger().Info("Created program",
		zap.String("program_id", program.ID),
		zap.String("display_title", DisplayTitle(&program)))
	return &program, nil
}

func (f *Fleet) getProgram(programID string) (*models.Program, error) {
	var program models.Program
	err := f.Db.Conn.First(&program, "id = ?", programID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "program", ID: programID}
	}
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// resolveDevices computes the program's eligible devices from current store
// reads, never from cached state. Output is sorted by binocular number so
// conflict reports and device lists stay reproducible.
func (f *Fleet) resolveDevices(programID string) ([]models.Device, error) {
	logger := programLogger()

	program, err := f.getProgram(programID)
	if err != nil {
		return nil, err
	}

	if f.Catalog == nil {
		return nil, fmt.Errorf("catalog service not available")
	}
	allDevices, err := f.Catalog.ListDevices()
	if err != nil {
		return nil, err
	}

	selection := SelectionFor(program)
	var resolved []models.Device

	switch selection.Kind {
	case SelectionExplicit:
		byID := make(map[string]models.Device, len(allDevices))
		for _, device := range allDevices {
			byID[device.ID] = device
		}
		for _, deviceID := range selection.DeviceIDs {
			device, ok := byID[deviceID]
			if !ok {
				// stale reference, skip and keep going
				logger.Warn("Assigned device no longer exists, skipping",
					zap.String("program_id", programID),
					zap.String("device_id", deviceID))
				continue
			}
			resolved = append(resolved, device)
		}

	case SelectionDerived:
		if len(selection.AppIDs) == 0 {
			return []models.Device{}, nil
		}

		if f.Relation == nil {
			return nil, fmt.Errorf("relation service not available")
		}
		relations, err := f.Relation.ListRelations()
		if err != nil {
			return nil, err
		}

		deviceToApps := BuildDeviceToApps(relations)
		for _, device := range allDevices {
			apps := deviceToApps[device.ID]
			for appID := range selection.AppIDs {
				if apps[appID] {
					resolved = append(resolved, device)
					break
				}
			}
		}
	}

	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].BinocularNumber < resolved[j].BinocularNumber
	})

	return resolved, nil
}

func (f *Fleet) assignDevices(programID string, deviceIDs []string) error {
	logger := programLogger()

	program, err := f.getProgram(programID)
	if err != nil {
		return err
	}

	program.AssignedDeviceIDs = deviceIDs
	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Save(program).Error
	}); err != nil {
		return err
	}

	logger.Info("Updated program device assignment",
		zap.String("program_id", programID),
		zap.Int("device_count", len(deviceIDs)))

	return nil
}

type IProgramImpl struct {
	fleet *Fleet
}

func (ip *IProgramImpl) ListPrograms() ([]models.Program, error) {
	return ip.fleet.listPrograms()
}

func (ip *IProgramImpl) GetProgram(programID string) (*models.Program, error) {
	return ip.fleet.getProgram(programID)
}

func (ip *IProgramImpl) CreateProgram(program models.Program) (*models.Program, error) {
	return ip.fleet.createProgram(program)
}

func (ip *IProgramImpl) ResolveDevices(programID string) ([]models.Device, error) {
	return ip.fleet.resolveDevices(programID)
}

func (ip *IProgramImpl) AssignDevices(programID string, deviceIDs []string) error {
	return ip.fleet.assignDevices(programID, deviceIDs)
}

func (f *Fleet) GetIProgram() IProgram {
	return &IProgramImpl{fleet: f}
}
