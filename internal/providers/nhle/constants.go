package nhle

import "time"

const (
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 15 * time.Second
	// Spacing between per-team schedule requests, to be nice to the API.
	defaultTeamDelay = 250 * time.Millisecond
)
