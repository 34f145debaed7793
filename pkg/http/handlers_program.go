package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/fleet"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

type programResponse struct {
	ID                string   `json:"id"`
	DisplayTitle      string   `json:"display_title"`
	InstitutionID     string   `json:"institution_id"`
	AssignedDeviceIDs []string `json:"assigned_device_ids"`
	ResolvedAppIDs    []string `json:"resolved_app_ids"`
}

func toProgramResponse(program models.Program) programResponse {
	appIDs := []string{}
	for appID := range fleet.ResolveAppIDs(&program) {
		appIDs = append(appIDs, appID)
	}
	sort.Strings(appIDs)

	return programResponse{
		ID:                program.ID,
		DisplayTitle:      fleet.DisplayTitle(&program),
		InstitutionID:     program.InstitutionID,
		AssignedDeviceIDs: program.AssignedDeviceIDs,
		ResolvedAppIDs:    appIDs,
	}
}

func (rs *RestfulServer) GetPrograms(c *gin.Context) {
	programs, err := rs.Fleet.Program.ListPrograms()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.Mapper(programs, toProgramResponse))
}

type ProgramRequest struct {
	Title               string                `json:"title"`
	CourseTopic         string                `json:"course_topic"`
	Subject             string                `json:"subject"`
	InstitutionID       string                `json:"institution_id"`
	TeachingMaterials   []models.MaterialItem `json:"teaching_materials"`
	EnrichmentMaterials []models.MaterialItem `json:"enrichment_materials"`
	Sessions            []models.SessionItem  `json:"sessions"`
}

func (rs *RestfulServer) PostProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := rs.Fleet.Program.CreateProgram(models.Program{
		Title:               req.Title,
		CourseTopic:         req.CourseTopic,
		Subject:             req.Subject,
		InstitutionID:       req.InstitutionID,
		TeachingMaterials:   req.TeachingMaterials,
		EnrichmentMaterials: req.EnrichmentMaterials,
		Sessions:            req.Sessions,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProgramResponse(*program))
}

func (rs *RestfulServer) GetProgram(c *gin.Context) {
	program, err := rs.Fleet.Program.GetProgram(c.Param("program_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProgramResponse(*program))
}

func (rs *RestfulServer) GetProgramDevices(c *gin.Context) {
	devices, err := rs.Fleet.Program.ResolveDevices(c.Param("program_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	if devices == nil {
		devices = []models.Device{}
	}
	c.JSON(http.StatusOK, devices)
}

type AssignDevicesRequest struct {
	DeviceIDs []string `json:"device_ids"`
}

var assignDevicesRequestSchema = z.Struct(z.Shape{
	"DeviceIDs": z.Slice(z.String()),
})

func (rs *RestfulServer) PutProgramDevices(c *gin.Context) {
	programID := c.Param("program_id")

	var req AssignDevicesRequest
	if err := assignDevicesRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Fleet.Program.AssignDevices(programID, req.DeviceIDs); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
