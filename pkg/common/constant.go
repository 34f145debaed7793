package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFleetDBType string = "FLEET_DB_TYPE"
	EnvKeyFleetDbPath string = "FLEET_DB_PATH"

	EnvKeyFleetHttpHostPort string = "FLEET_HTTP_HOST_PORT"

	EnvKeyFleetDefaultRate  string = "FLEET_DEFAULT_RATE"
	EnvKeyFleetDefaultBurst string = "FLEET_DEFAULT_BURST"

	EnvKeyFleetRetryMaxAttempts string = "FLEET_RETRY_MAX_ATTEMPTS"
	EnvKeyFleetRetryBackoffMs   string = "FLEET_RETRY_BACKOFF_MS"

	LoggerNameFleetCore     string = "fleet_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldFleetCategory  string = "category"
	LoggerCategoryCatalog     string = "catalog"
	LoggerCategoryRelation    string = "relation"
	LoggerCategoryProgram     string = "program"
	LoggerCategoryConflict    string = "conflict"
	LoggerCategorySchedule    string = "schedule"
	LoggerCategoryRetryPolicy string = "retry_policy"
)
