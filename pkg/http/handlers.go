package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/fleet"
)

// renderError maps the core error taxonomy onto status codes: accumulated
// validation lists become an itemized 400, missing targets 404, exhausted
// rate-limit retries 429.
func renderError(c *gin.Context, err error) {
	var violations fleet.ValidationErrors
	if errors.As(err, &violations) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string(violations)})
		return
	}
	if fleet.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if fleet.IsRateLimited(err) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

type batchFailureResponse struct {
	Index  int    `json:"index"`
	Target string `json:"target"`
	Error  string `json:"error"`
}

func toFailureResponses(failures []fleet.BatchFailure) []batchFailureResponse {
	return common.Mapper(failures, func(f fleet.BatchFailure) batchFailureResponse {
		return batchFailureResponse{Index: f.Index, Target: f.Target, Error: f.Err.Error()}
	})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type LimiterRequest struct {
	ClientKey string  `json:"client_key"`
	Rate      float64 `json:"rate"`
	Burst     int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"ClientKey": z.String().Required(),
	"Rate":      z.Float64().Required(),
	"Burst":     z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(req.ClientKey, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
