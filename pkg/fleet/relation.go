package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

func relationLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryRelation),
	)
}

func (f *Fleet) listRelations() ([]models.DeviceAppRelation, error) {
	var relations []models.DeviceAppRelation
	err := f.Db.Conn.Find(&relations).Error
	return relations, err
}

// installApp records "app is installed on device". Installing an already
// installed app is a no-op, so retried batches stay idempotent.
func (f *Fleet) installApp(deviceID string, appID string) error {
	if _, err := f.getDevice(deviceID); err != nil {
		return err
	}

	var existing models.DeviceAppRelation
	err := f.Db.Conn.
		Where("device_id = ? AND app_id = ?", deviceID, appID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	relation := models.DeviceAppRelation{DeviceID: deviceID, AppID: appID}
	return f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Create(&relation).Error
	})
}

func (f *Fleet) uninstallApp(deviceID string, appID string) error {
	return f.retryDo(context.Background(), func() error {
		return f.Db.Conn.
			Where("device_id = ? AND app_id = ?", deviceID, appID).
			Delete(&models.DeviceAppRelation{}).Error
	})
}

func (f *Fleet) listApplications() ([]models.Application, error) {
	var apps []models.Application
	err := f.Db.Conn.Order("name asc").Find(&apps).Error
	return apps, err
}

// createApplication enforces case-insensitive name uniqueness at the service
// layer, matching how the catalog UI treats "Anatomy" and "anatomy" as the
// same application.
func (f *Fleet) createApplication(name string) (*models.Application, error) {
	if name == "" {
		return nil, ValidationErrors{"application name is required"}
	}

	var existing models.Application
	err := f.Db.Conn.Where("lower(name) = lower(?)", name).First(&existing).Error
	if err == nil {
		return nil, ValidationErrors{"an application with this name already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	app := models.Application{ID: uuid.NewString(), Name: name}
	if err := f.retryDo(context.Background(), func() error {
		return f.Db.Conn.Create(&app).Error
	}); err != nil {
		return nil, err
	}

	relationLogger().Info("Created application",
		zap.String("app_id", app.ID), zap.String("name", app.Name))
	return &app, nil
}

func (f *Fleet) getApplication(appID string) (*models.Application, error) {
	var app models.Application
	err := f.Db.Conn.First(&app, "id = ?", appID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "application", ID: appID}
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// bulkApply runs one relation operation per device, paced by the shared
// limiter instead of fixed sleeps. The batch stops on ctx cancellation and
// always reports how far it got; a stale device id becomes a visible failure
// entry, not a batch abort.
func (f *Fleet) bulkApply(
	ctx context.Context,
	appID string,
	deviceIDs []string,
	pacerKey string,
	onProgress ProgressFunc,
	op func(deviceID string) error,
) (*BatchResult, error) {
	logger := relationLogger()

	if _, err := f.getApplication(appID); err != nil {
		return nil, err
	}

	result := &BatchResult{}
	total := len(deviceIDs)

	for i, deviceID := range deviceIDs {
		if err := ctx.Err(); err != nil {
			logger.Warn("Bulk operation cancelled",
				zap.String("app_id", appID),
				zap.Int("current", i),
				zap.Int("total", total))
			return result, err
		}

		if err := f.pace(ctx, pacerKey); err != nil {
			return result, err
		}

		if err := op(deviceID); err != nil {
			logger.Warn("Bulk operation item failed",
				zap.String("app_id", appID),
				zap.String("device_id", deviceID),
				zap.Error(err))
			result.Failures = append(result.Failures, BatchFailure{
				Index:  i,
				Target: deviceID,
				Err:    err,
			})
		} else {
			result.Succeeded++
		}

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	logger.Info("Bulk operation finished",
		zap.String("app_id", appID),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed()))

	return result, nil
}

func (f *Fleet) bulkInstall(ctx context.Context, appID string, deviceIDs []string, onProgress ProgressFunc) (*BatchResult, error) {
	return f.bulkApply(ctx, appID, deviceIDs, PacerKeyBulkInstall, onProgress, func(deviceID string) error {
		return f.installApp(deviceID, appID)
	})
}

func (f *Fleet) bulkUninstall(ctx context.Context, appID string, deviceIDs []string, onProgress ProgressFunc) (*BatchResult, error) {
	return f.bulkApply(ctx, appID, deviceIDs, PacerKeyBulkUninstall, onProgress, func(deviceID string) error {
		return f.uninstallApp(deviceID, appID)
	})
}

type IRelationImpl struct {
	fleet *Fleet
}

func (ir *IRelationImpl) ListApplications() ([]models.Application, error) {
	return ir.fleet.listApplications()
}

func (ir *IRelationImpl) CreateApplication(name string) (*models.Application, error) {
	return ir.fleet.createApplication(name)
}

func (ir *IRelationImpl) ListRelations() ([]models.DeviceAppRelation, error) {
	return ir.fleet.listRelations()
}

func (ir *IRelationImpl) InstallApp(deviceID string, appID string) error {
	return ir.fleet.installApp(deviceID, appID)
}

func (ir *IRelationImpl) UninstallApp(deviceID string, appID string) error {
	return ir.fleet.uninstallApp(deviceID, appID)
}

func (ir *IRelationImpl) BulkInstall(ctx context.Context, appID string, deviceIDs []string, onProgress ProgressFunc) (*BatchResult, error) {
	return ir.fleet.bulkInstall(ctx, appID, deviceIDs, onProgress)
}

func (ir *IRelationImpl) BulkUninstall(ctx context.Context, appID string, deviceIDs []string, onProgress ProgressFunc) (*BatchResult, error) {
	return ir.fleet.bulkUninstall(ctx, appID, deviceIDs, onProgress)
}

func (f *Fleet) GetIRelation() IRelation {
	return &IRelationImpl{fleet: f}
}
