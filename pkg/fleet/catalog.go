package fleet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

func catalogLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryCatalog),
	)
}

func (f *Fleet) listDevices() ([]models.Device, error) {
	var devices []models.Device
	err := f.Db.Conn.Order("binocular_number asc").Find(&devices).Error
	return devices, err
}

func (f *Fleet) getDevice(deviceID string) (*models.Device, error) {
	var device models.Device
	err := f.Db.Conn.First(&device, "id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "device", ID: deviceID}
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// provisionDevices bulk-creates count new binoculars, continuing the
// human-facing number sequence from the current maximum.
func (f *Fleet) provisionDevices(count int) ([]models.Device, error) {
	logger := catalogLogger()

	if count <= 0 {
		return nil, ValidationErrors{"provision count must be positive"}
	}

	var maxNumber int
	err := f.Db.Conn.Model(&models.Device{}).
		Select("coalesce(max(binocular_number), 0)").
		Scan(&maxNumber).Error
	if err != nil {
		return nil, err
	}

	devices := make([]models.Device, count)
	for i := range count {
		devices[i] = models.Device{
			ID:              uuid.NewString(),
			BinocularNumber: maxNumber + 1 + i,
		}
	}

	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Create(&devices).Error
	}); err != nil {
		return nil, err
	}

	logger.Info("Provisioned devices",
		zap.Int("count", count),
		zap.Int("first_number", maxNumber+1))

	return devices, nil
}

func (f *Fleet) setDisabled(deviceID string, disabled bool, reason string) error {
	logger := catalogLogger()

	device, err := f.getDevice(deviceID)
	if err != nil {
		return err
	}

	device.IsDisabled = disabled
	if disabled {
		device.DisableReason = reason
	} else {
		device.DisableReason = ""
	}

	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Save(device).Error
	}); err != nil {
		return err
	}

	logger.Info("Updated device disabled flag",
		zap.String("device_id", deviceID),
		zap.Bool("is_disabled", disabled),
		zap.String("reason", device.DisableReason))

	return nil
}

// deleteDevice removes a device and its app relations. Deletion is blocked
// while any non-cancelled schedule entry still references the device.
func (f *Fleet) deleteDevice(deviceID string) error {
	logger := catalogLogger()

	if _, err := f.getDevice(deviceID); err != nil {
		return err
	}

	var entries []models.ScheduleEntry
	if err := f.Db.Conn.
		Where("status <> ?", models.EntryStatusCancelled).
		Find(&entries).Error; err != nil {
		return err
	}

	var referencedBy []string
	for _, entry := range entries {
		for _, id := range entry.DeviceIDs {
			if id == deviceID {
				referencedBy = append(referencedBy, entry.ID)
				break
			}
		}
	}
	if len(referencedBy) > 0 {
		return ValidationErrors{fmt.Sprintf(
			"device is referenced by %d schedule entries: %v", len(referencedBy), referencedBy)}
	}

	if err := f.retryDo(context.Background(), func() error {
		if err := f.Db.Conn.Where("device_id = ?", deviceID).
			Delete(&models.DeviceAppRelation{}).Error; err != nil {
			return err
		}
		return f.Db.Conn.Delete(&models.Device{}, "id = ?", deviceID).Error
	}); err != nil {
		return err
	}

	logger.Info("Deleted device", zap.String("device_id", deviceID))
	return nil
}

type ICatalogImpl struct {
	fleet *Fleet
}

func (ic *ICatalogImpl) ListDevices() ([]models.Device, error) {
	return ic.fleet.listDevices()
}

func (ic *ICatalogImpl) GetDevice(deviceID string) (*models.Device, error) {
	return ic.fleet.getDevice(deviceID)
}

func (ic *ICatalogImpl) ProvisionDevices(count int) ([]models.Device, error) {
	return ic.fleet.provisionDevices(count)
}

func (ic *ICatalogImpl) SetDisabled(deviceID string, disabled bool, reason string) error {
	return ic.fleet.setDisabled(deviceID, disabled, reason)
}

func (ic *ICatalogImpl) DeleteDevice(deviceID string) error {
	return ic.fleet.deleteDevice(deviceID)
}

func (f *Fleet) GetICatalog() ICatalog {
	return &ICatalogImpl{fleet: f}
}
