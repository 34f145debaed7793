package fleet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/models"
	_ "edureality.xyz/vr-fleet-service/pkg/testing"
)

func TestResolveAppIDs(t *testing.T) {
	program := &models.Program{
		TeachingMaterials: []models.MaterialItem{
			{AppIDs: []string{"app-a", "app-b"}, Experiences: []string{"app-c"}},
		},
		EnrichmentMaterials: []models.MaterialItem{
			{AppIDs: []string{"app-b"}},
		},
		Sessions: []models.SessionItem{
			{AppIDs: []string{"app-d"}, ExperienceIDs: []string{"app-a", ""}},
		},
	}

	set := ResolveAppIDs(program)
	assert.Equal(t, map[string]bool{
		"app-a": true, "app-b": true, "app-c": true, "app-d": true,
	}, set)

	// same input, same output
	assert.Equal(t, set, ResolveAppIDs(program))
}

func TestResolveAppIDs_NilAndEmpty(t *testing.T) {
	assert.Empty(t, ResolveAppIDs(nil))
	assert.Empty(t, ResolveAppIDs(&models.Program{}))
}

func TestSelectionFor_ExplicitWins(t *testing.T) {
	program := &models.Program{
		AssignedDeviceIDs: []string{"dev-1"},
		Sessions:          []models.SessionItem{{AppIDs: []string{"app-a"}}},
	}

	selection := SelectionFor(program)
	assert.Equal(t, SelectionExplicit, selection.Kind)
	assert.Equal(t, []string{"dev-1"}, selection.DeviceIDs)
}

func TestSelectionFor_DerivedWhenNoAssignment(t *testing.T) {
	program := &models.Program{
		Sessions: []models.SessionItem{{AppIDs: []string{"app-a"}}},
	}

	selection := SelectionFor(program)
	assert.Equal(t, SelectionDerived, selection.Kind)
	assert.Equal(t, map[string]bool{"app-a": true}, selection.AppIDs)
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Biology 101",
		DisplayTitle(&models.Program{Title: "Biology 101", CourseTopic: "Cells"}))
	assert.Equal(t, "Cells",
		DisplayTitle(&models.Program{CourseTopic: "Cells", Subject: "Biology"}))
	assert.Equal(t, "Biology",
		DisplayTitle(&models.Program{Subject: "Biology"}))
	assert.Equal(t, "Program p-1",
		DisplayTitle(&models.Program{ID: "p-1"}))
	assert.Equal(t, "", DisplayTitle(nil))
}

func TestCreateProgram_RequiresSomeName(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	_, err := f.Program.CreateProgram(models.Program{InstitutionID: uuid.NewString()})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestResolveDevices_ExplicitSkipsStaleIDs(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	devices, err := f.Catalog.ProvisionDevices(2)
	require.NoError(t, err)

	program, err := f.Program.CreateProgram(models.Program{
		Title:             "Explicit assignment " + uuid.NewString(),
		AssignedDeviceIDs: []string{devices[0].ID, "gone-" + uuid.NewString(), devices[1].ID},
	})
	require.NoError(t, err)

	resolved, err := f.Program.ResolveDevices(program.ID)
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	assert.Equal(t, devices[0].ID, resolved[0].ID)
	assert.Equal(t, devices[1].ID, resolved[1].ID)
	assert.Less(t, resolved[0].BinocularNumber, resolved[1].BinocularNumber)
}

func TestResolveDevices_DerivedFromInstalledApps(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	devices, err := f.Catalog.ProvisionDevices(3)
	require.NoError(t, err)

	app, err := f.Relation.CreateApplication("Anatomy Lab " + uuid.NewString())
	require.NoError(t, err)

	require.NoError(t, f.Relation.InstallApp(devices[0].ID, app.ID))
	require.NoError(t, f.Relation.InstallApp(devices[2].ID, app.ID))

	program, err := f.Program.CreateProgram(models.Program{
		Title:    "Derived assignment " + uuid.NewString(),
		Sessions: []models.SessionItem{{AppIDs: []string{app.ID}}},
	})
	require.NoError(t, err)

	resolved, err := f.Program.ResolveDevices(program.ID)
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	assert.Equal(t, devices[0].ID, resolved[0].ID)
	assert.Equal(t, devices[2].ID, resolved[1].ID)
}

func TestResolveDevices_NoAppsResolvesEmpty(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	program, err := f.Program.CreateProgram(models.Program{
		Title: "Bare program " + uuid.NewString(),
	})
	require.NoError(t, err)

	resolved, err := f.Program.ResolveDevices(program.ID)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveDevices_ProgramNotFound(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	_, err := f.Program.ResolveDevices(uuid.NewString())
	assert.True(t, IsNotFound(err))
}

func TestAssignDevices_SwitchesToExplicit(t *testing.T) {
	common.SetTestLoggerNop()
	f := GetTestFleetWithMemorySqlite()

	devices, err := f.Catalog.ProvisionDevices(1)
	require.NoError(t, err)

	program, err := f.Program.CreateProgram(models.Program{
		Title:    "Reassigned " + uuid.NewString(),
		Sessions: []models.SessionItem{{AppIDs: []string{"app-" + uuid.NewString()}}},
	})
	require.NoError(t, err)

	require.NoError(t, f.Program.AssignDevices(program.ID, []string{devices[0].ID}))

	reloaded, err := f.Program.GetProgram(program.ID)
	require.NoError(t, err)
	assert.Equal(t, SelectionExplicit, SelectionFor(reloaded).Kind)

	resolved, err := f.Program.ResolveDevices(program.ID)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, devices[0].ID, resolved[0].ID)
}
