package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/fleet"
	"edureality.xyz/vr-fleet-service/pkg/models"
)

func (rs *RestfulServer) GetApps(c *gin.Context) {
	apps, err := rs.Fleet.Relation.ListApplications()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

type AppRequest struct {
	Name string `json:"name"`
}

var appRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Required(),
})

func (rs *RestfulServer) PostApp(c *gin.Context) {
	var req AppRequest
	if err := appRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	app, err := rs.Fleet.Relation.CreateApplication(req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (rs *RestfulServer) GetAppDevices(c *gin.Context) {
	appID := c.Param("app_id")

	relations, err := rs.Fleet.Relation.ListRelations()
	if err != nil {
		renderError(c, err)
		return
	}
	carriers := fleet.BuildAppToDevices(relations)[appID]

	allDevices, err := rs.Fleet.Catalog.ListDevices()
	if err != nil {
		renderError(c, err)
		return
	}

	devices := []models.Device{}
	for _, device := range allDevices {
		if carriers[device.ID] {
			devices = append(devices, device)
		}
	}
	c.JSON(http.StatusOK, devices)
}

type InstallRequest struct {
	DeviceIDs []string `json:"device_ids"`
}

var installRequestSchema = z.Struct(z.Shape{
	"DeviceIDs": z.Slice(z.String()).Min(1),
})

func (rs *RestfulServer) bulkRelationOp(
	c *gin.Context,
	op func(appID string, deviceIDs []string, onProgress fleet.ProgressFunc) (*fleet.BatchResult, error),
) {
	appID := c.Param("app_id")

	var req InstallRequest
	if err := installRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
	result, err := op(appID, req.DeviceIDs, func(current, total int) {
		logger.Debug("Bulk progress",
			zap.String("app_id", appID),
			zap.Int("current", current),
			zap.Int("total", total))
	})
	if err != nil && result == nil {
		renderError(c, err)
		return
	}

	response := gin.H{
		"succeeded": result.Succeeded,
		"failed":    result.Failed(),
		"failures":  toFailureResponses(result.Failures),
	}
	if err != nil {
		// cancelled mid-batch: report how far it got
		response["cancelled"] = true
	}
	c.JSON(http.StatusOK, response)
}

func (rs *RestfulServer) InstallApp(c *gin.Context) {
	rs.bulkRelationOp(c, func(appID string, deviceIDs []string, onProgress fleet.ProgressFunc) (*fleet.BatchResult, error) {
		return rs.Fleet.Relation.BulkInstall(c.Request.Context(), appID, deviceIDs, onProgress)
	})
}

func (rs *RestfulServer) UninstallApp(c *gin.Context) {
	rs.bulkRelationOp(c, func(appID string, deviceIDs []string, onProgress fleet.ProgressFunc) (*fleet.BatchResult, error) {
		return rs.Fleet.Relation.BulkUninstall(c.Request.Context(), appID, deviceIDs, onProgress)
	})
}
