package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"edureality.xyz/vr-fleet-service/pkg/fleet"
)

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	devices, err := rs.Fleet.Catalog.ListDevices()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

type ProvisionRequest struct {
	Count int `json:"count"`
}

var provisionRequestSchema = z.Struct(z.Shape{
	"Count": z.Int().Required(),
})

func (rs *RestfulServer) ProvisionDevices(c *gin.Context) {
	var req ProvisionRequest
	if err := provisionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	devices, err := rs.Fleet.Catalog.ProvisionDevices(req.Count)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, devices)
}

type DisableRequest struct {
	Reason string `json:"reason"`
}

var disableRequestSchema = z.Struct(z.Shape{
	"Reason": z.String().Required(),
})

func (rs *RestfulServer) DisableDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req DisableRequest
	if err := disableRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Fleet.Catalog.SetDisabled(deviceID, true, req.Reason); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) EnableDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	if err := rs.Fleet.Catalog.SetDisabled(deviceID, false, ""); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	if err := rs.Fleet.Catalog.DeleteDevice(deviceID); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetDeviceApps(c *gin.Context) {
	deviceID := c.Param("device_id")

	if _, err := rs.Fleet.Catalog.GetDevice(deviceID); err != nil {
		renderError(c, err)
		return
	}

	relations, err := rs.Fleet.Relation.ListRelations()
	if err != nil {
		renderError(c, err)
		return
	}

	appIDs := []string{}
	for appID := range fleet.BuildDeviceToApps(relations)[deviceID] {
		appIDs = append(appIDs, appID)
	}
	sort.Strings(appIDs)

	c.JSON(http.StatusOK, gin.H{"device_id": deviceID, "app_ids": appIDs})
}
