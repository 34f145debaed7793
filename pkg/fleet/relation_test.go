package fleet

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/models"
	_ "edureality.xyz/vr-fleet-service/pkg/testing"
)

func TestCreateApplication_NameUniqueIgnoringCase(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	name := "Chemistry VR " + uuid.NewString()
	_, err := f.Relation.CreateApplication(name)
	require.NoError(t, err)

	var verrs ValidationErrors
	_, err = f.Relation.CreateApplication(name)
	require.ErrorAs(t, err, &verrs)

	// different case, same application
	_, err = f.Relation.CreateApplication(strings.ToUpper(name))
	require.ErrorAs(t, err, &verrs)
}

func TestCreateApplication_EmptyName(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	var verrs ValidationErrors
	_, err := f.Relation.CreateApplication("")
	require.ErrorAs(t, err, &verrs)
}

func TestInstallApp_Idempotent(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	devices, err := f.Catalog.ProvisionDevices(1)
	require.NoError(t, err)
	deviceID := devices[0].ID

	app, err := f.Relation.CreateApplication("Geometry Garden " + uuid.NewString())
	require.NoError(t, err)

	require.NoError(t, f.Relation.InstallApp(deviceID, app.ID))
	require.NoError(t, f.Relation.InstallApp(deviceID, app.ID))

	var count int64
	require.NoError(t, f.Db.Conn.Model(&models.DeviceAppRelation{}).
		Where("device_id = ? AND app_id = ?", deviceID, app.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestInstallApp_UnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	app, err := f.Relation.CreateApplication("Star Walker " + uuid.NewString())
	require.NoError(t, err)

	err = f.Relation.InstallApp(uuid.NewString(), app.ID)
	assert.True(t, IsNotFound(err))
}

func TestUninstallApp_MissingRelationIsNoop(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	assert.NoError(t, f.Relation.UninstallApp(uuid.NewString(), uuid.NewString()))
}

func TestBulkInstall_PartialFailureReported(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	devices, err := f.Catalog.ProvisionDevices(2)
	require.NoError(t, err)

	app, err := f.Relation.CreateApplication("Ocean Explorer " + uuid.NewString())
	require.NoError(t, err)

	staleID := "gone-" + uuid.NewString()
	targets := []string{devices[0].ID, staleID, devices[1].ID}

	var progress []int
	result, err := f.Relation.BulkInstall(context.Background(), app.ID, targets,
		func(current, total int) {
			assert.Equal(t, len(targets), total)
			progress = append(progress, current)
		})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Succeeded)
	require.Equal(t, 1, result.Failed())
	assert.Equal(t, 1, result.Failures[0].Index)
	assert.Equal(t, staleID, result.Failures[0].Target)
	assert.True(t, IsNotFound(result.Failures[0].Err))
	assert.Equal(t, []int{1, 2, 3}, progress)
}

func TestBulkInstall_UnknownAppIsFatal(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	result, err := f.Relation.BulkInstall(context.Background(), uuid.NewString(), []string{"dev-1"}, nil)
	assert.True(t, IsNotFound(err))
	assert.Nil(t, result)
}

func TestBulkInstall_CancelledContextStopsBatch(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	devices, err := f.Catalog.ProvisionDevices(1)
	require.NoError(t, err)

	app, err := f.Relation.CreateApplication("Volcano Tour " + uuid.NewString())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := f.Relation.BulkInstall(ctx, app.ID, []string{devices[0].ID}, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Succeeded)
}

func TestBulkUninstall_RemovesRelations(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	devices, err := f.Catalog.ProvisionDevices(2)
	require.NoError(t, err)
	deviceIDs := []string{devices[0].ID, devices[1].ID}

	app, err := f.Relation.CreateApplication("Microscope Mode " + uuid.NewString())
	require.NoError(t, err)

	installed, err := f.Relation.BulkInstall(context.Background(), app.ID, deviceIDs, nil)
	require.NoError(t, err)
	require.Equal(t, 2, installed.Succeeded)

	removed, err := f.Relation.BulkUninstall(context.Background(), app.ID, deviceIDs, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, removed.Succeeded)
	assert.Equal(t, 0, removed.Failed())

	var count int64
	require.NoError(t, f.Db.Conn.Model(&models.DeviceAppRelation{}).
		Where("app_id = ?", app.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
