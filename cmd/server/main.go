package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"edureality.xyz/vr-fleet-service/pkg/common"
	"edureality.xyz/vr-fleet-service/pkg/db"
	"edureality.xyz/vr-fleet-service/pkg/fleet"
	fleetHttp "edureality.xyz/vr-fleet-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	fleetDbType := os.Getenv(common.EnvKeyFleetDBType)
	switch fleetDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FLEET_DB_TYPE: " + fleetDbType)
	}

	httpHostPort := os.Getenv(common.EnvKeyFleetHttpHostPort)

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFleetDefaultRate), 64); err != nil {
		log.Fatal("Invalid FLEET_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFleetDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid FLEET_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	retryMaxAttempts := fleet.DefaultRetryMaxAttempts
	if raw := os.Getenv(common.EnvKeyFleetRetryMaxAttempts); raw != "" {
		if retryMaxAttempts, err = strconv.Atoi(raw); err != nil {
			log.Fatal("Invalid FLEET_RETRY_MAX_ATTEMPTS, should be an int value")
		}
	}

	retryBackoff := fleet.DefaultRetryInitialBackoff
	if raw := os.Getenv(common.EnvKeyFleetRetryBackoffMs); raw != "" {
		var ms int
		if ms, err = strconv.Atoi(raw); err != nil {
			log.Fatal("Invalid FLEET_RETRY_BACKOFF_MS, should be an int value")
		}
		retryBackoff = time.Duration(ms) * time.Millisecond
	}

	logger := common.GetLogger()

	fleetCore := fleet.Fleet{
		Db:    *dbInstance,
		Retry: fleet.NewRetryPolicy(retryMaxAttempts, retryBackoff),
		Pacer: fleet.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	fleetCore.WithServices(fleet.ServiceOpts{
		Catalog:  fleetCore.GetICatalog(),
		Relation: fleetCore.GetIRelation(),
		Program:  fleetCore.GetIProgram(),
		Conflict: fleetCore.GetIConflict(),
		Schedule: fleetCore.GetISchedule(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &fleetHttp.RestfulServer{
		Server:           gin.Default(),
		Fleet:            &fleetCore,
		RateLimiterStore: fleet.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)),
		zap.Int("retry_max_attempts", retryMaxAttempts),
		zap.Duration("retry_backoff", retryBackoff))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
