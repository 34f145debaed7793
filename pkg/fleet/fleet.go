package fleet

import (
	"context"

	"edureality.xyz/vr-fleet-service/pkg/db"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

type ICatalog interface {
	ListDevices() ([]models.Device, error)
	GetDevice(deviceID string) (*models.Device, error)
	ProvisionDevices(count int) ([]models.Device, error)
	SetDisabled(deviceID string, disabled bool, reason string) error
	DeleteDevice(deviceID string) error
}

type IRelation interface {
	ListApplications() ([]models.Application, error)
	CreateApplication(name string) (*models.Application, error)
	ListRelations() ([]models.DeviceAppRelation, error)
	InstallApp(deviceID string, appID string) error
	UninstallApp(deviceID string, appID string) error
	BulkInstall(ctx context.Context, appID string, deviceIDs []string, onProgress ProgressFunc) (*BatchResult, error)
	BulkUninstall(ctx context.Context, appID string, deviceIDs []string, onProgress ProgressFunc) (*BatchResult, error)
}

type IProgram interface {
	ListPrograms() ([]models.Program, error)
	GetProgram(programID string) (*models.Program, error)
	CreateProgram(program models.Program) (*models.Program, error)
	ResolveDevices(programID string) ([]models.Device, error)
	AssignDevices(programID string, deviceIDs []string) error
}

type IConflict interface {
	FindConflicts(q ConflictQuery) ([]Conflict, error)
}

type ISchedule interface {
	CreateEntries(ctx context.Context, req CreateEntriesRequest) (*CreateEntriesResult, error)
	UpdateEntry(entryID string, patch EntryPatch) (*models.ScheduleEntry, error)
	CancelEntry(entryID string) error
}

// Fleet is the scheduling core. Service concerns are reachable through the
// small interfaces above so tests can swap any of them for a double; wiring
// happens once via WithServices, same pattern for every concern.
type Fleet struct {
	Db    db.DB
	Retry *RetryPolicy
	Pacer *RateLimiterStore

	Catalog  ICatalog
	Relation IRelation
	Program  IProgram
	Conflict IConflict
	Schedule ISchedule
}

type ServiceOpts struct {
	Catalog  ICatalog
	Relation IRelation
	Program  IProgram
	Conflict IConflict
	Schedule ISchedule
}

func (f *Fleet) WithServices(opts ServiceOpts) *Fleet {
	if opts.Catalog != nil {
		f.Catalog = opts.Catalog
	}
	if opts.Relation != nil {
		f.Relation = opts.Relation
	}
	if opts.Program != nil {
		f.Program = opts.Program
	}
	if opts.Conflict != nil {
		f.Conflict = opts.Conflict
	}
	if opts.Schedule != nil {
		f.Schedule = opts.Schedule
	}
	return f
}

// retryDo funnels every store write through the shared retry policy. A Fleet
// without a policy runs the operation once.
func (f *Fleet) retryDo(ctx context.Context, op func() error) error {
	if f.Retry == nil {
		return op()
	}
	return f.Retry.Do(ctx, op)
}

// pace blocks until the shared pacing limiter admits the next batched write.
// Batches run unpaced when no limiter store is configured.
func (f *Fleet) pace(ctx context.Context, key string) error {
	if f.Pacer == nil {
		return nil
	}
	return f.Pacer.GetLimiter(key).Wait(ctx)
}
