package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"edureality.xyz/vr-fleet-service/pkg/fleet"
)

type RestfulServer struct {
	Server           *gin.Engine
	Fleet            *fleet.Fleet
	RateLimiterStore *fleet.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

// rateLimit throttles per client address. The per-handler limiter checks of
// smaller services do not scale to this route count.
func (rs *RestfulServer) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckClientLimiter(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("", rs.rateLimit())

	devices := api.Group("/devices")
	{
		devices.GET("", rs.GetDevices)
		devices.POST("/provision", rs.ProvisionDevices)
		devices.POST("/:device_id/disable", rs.DisableDevice)
		devices.POST("/:device_id/enable", rs.EnableDevice)
		devices.DELETE("/:device_id", rs.DeleteDevice)
		devices.GET("/:device_id/apps", rs.GetDeviceApps)
	}

	apps := api.Group("/apps")
	{
		apps.GET("", rs.GetApps)
		apps.POST("", rs.PostApp)
		apps.GET("/:app_id/devices", rs.GetAppDevices)
		apps.POST("/:app_id/install", rs.InstallApp)
		apps.POST("/:app_id/uninstall", rs.UninstallApp)
	}

	programs := api.Group("/programs")
	{
		programs.GET("", rs.GetPrograms)
		programs.POST("", rs.PostProgram)
		programs.GET("/:program_id", rs.GetProgram)
		programs.GET("/:program_id/devices", rs.GetProgramDevices)
		programs.PUT("/:program_id/devices", rs.PutProgramDevices)
	}

	entries := api.Group("/schedule-entries")
	{
		entries.GET("", rs.GetEntries)
		entries.POST("", rs.PostEntries)
		entries.POST("/preview-conflicts", rs.PreviewConflicts)
		entries.PATCH("/:entry_id", rs.PatchEntry)
		entries.POST("/:entry_id/cancel", rs.CancelEntry)
	}

	api.GET("/institutions", rs.GetInstitutions)
	api.POST("/institutions", rs.PostInstitution)
	api.GET("/teachers", rs.GetTeachers)
	api.POST("/teachers", rs.PostTeacher)

	api.POST("/limiter", rs.PostLimiter)
}
