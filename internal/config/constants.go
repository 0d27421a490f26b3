package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envSeasons       = "SEASONS"
	envBuildInterval = "BUILD_INTERVAL"
	envBuildOnce     = "BUILD_ONCE"
	envFetchSpacing  = "FETCH_SPACING"
	envRetryAttempts = "RETRY_ATTEMPTS"
	envRetryInterval = "RETRY_INTERVAL"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken    = "ADMIN_TOKEN"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Rebuild cadence for the dataset; schedules change rarely so the
	// default stays well under upstream quotas.
	defaultBuildInterval = 6 * Duration(time.Hour)
	// Minimum spacing between season fetches against the upstream API.
	defaultFetchSpacing  = 5 * Duration(time.Second)
	defaultRetryAttempts = 3
	defaultRetryInterval = 200 * Duration(time.Millisecond)
	defaultMetricsPort   = "9090"
)

// defaultSeasons covers the study window when SEASONS is unset.
var defaultSeasons = []string{"20222023", "20232024"}
