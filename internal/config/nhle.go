package config

import "time"

const (
	envNHLeBaseURL   = "NHLE_BASE_URL"
	envNHLeTeams     = "NHLE_TEAMS"
	envNHLeTeamDelay = "NHLE_TEAM_DELAY"

	defaultNHLeBaseURL = "https://api-web.nhle.com/v1"
)

// NHLeConfig controls how we talk to the NHL api-web schedule endpoints.
type NHLeConfig struct {
	BaseURL   string
	Teams     []string // empty means every team in the arena directory
	TeamDelay time.Duration
}

func loadNHLe() NHLeConfig {
	return NHLeConfig{
		BaseURL:   envOrDefault(envNHLeBaseURL, defaultNHLeBaseURL),
		Teams:     listEnvOrDefault(envNHLeTeams, nil),
		TeamDelay: durationEnvOrDefault(envNHLeTeamDelay, 0),
	}
}
