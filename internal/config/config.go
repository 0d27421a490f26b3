package config

import (
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	Provider      string
	Seasons       []string
	BuildInterval Duration
	BuildOnce     bool
	FetchSpacing  Duration
	RetryAttempts int
	RetryInterval Duration
	NHLe          NHLeConfig
	Dataset       DatasetConfig
	Metrics       MetricsConfig
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		Provider:      envOrDefault(envProvider, defaultProvider),
		Seasons:       listEnvOrDefault(envSeasons, defaultSeasons),
		BuildInterval: durationEnvOrDefault(envBuildInterval, defaultBuildInterval),
		BuildOnce:     boolEnvOrDefault(envBuildOnce, false),
		FetchSpacing:  durationEnvOrDefault(envFetchSpacing, defaultFetchSpacing),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryInterval: durationEnvOrDefault(envRetryInterval, defaultRetryInterval),
		NHLe:          loadNHLe(),
		Dataset:       loadDataset(),
		Metrics:       loadMetrics(),
	}
}
