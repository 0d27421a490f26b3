package nhle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/providers"
)

// Config controls how the client reaches the NHL api-web API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Teams to query; the club-schedule-season endpoint is per-team, so a
	// full season fetch issues one request per team and de-duplicates by
	// game id.
	Teams []string
	// TeamDelay spaces consecutive team requests. Negative disables.
	TeamDelay time.Duration
}

// Client fetches season schedules from the NHL api-web API and maps them
// to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	teams      []string
	teamDelay  time.Duration
}

// NewClient constructs an NHL api-web client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		teams:      cfg.Teams,
		teamDelay:  resolveTeamDelay(cfg.TeamDelay),
	}
}

// FetchSeason retrieves every regular-season game for the given season
// token (e.g. "20232024"). Each team's schedule is fetched in turn; games
// appear on both participants' schedules and are de-duplicated by id.
func (c *Client) FetchSeason(ctx context.Context, season string) ([]domain.RawGame, error) {
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	if len(c.teams) == 0 {
		return nil, fmt.Errorf("nhle: no teams configured")
	}

	seen := make(map[int]domain.RawGame)
	for i, team := range c.teams {
		if i > 0 && c.teamDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.teamDelay):
			}
		}

		games, err := c.fetchTeamSeason(ctx, team, season)
		if err != nil {
			return nil, fmt.Errorf("nhle: team %s: %w", team, err)
		}
		for _, g := range games {
			if _, ok := seen[g.ID]; !ok {
				seen[g.ID] = g
			}
		}
	}

	out := make([]domain.RawGame, 0, len(seen))
	for _, g := range seen {
		out = append(out, g)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (c *Client) fetchTeamSeason(ctx context.Context, team, season string) ([]domain.RawGame, error) {
	url := fmt.Sprintf("%s/club-schedule-season/%s/%s", c.baseURL, team, season)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	games := make([]domain.RawGame, 0, len(payload.Games))
	for _, g := range payload.Games {
		if g.GameType != int(domain.GameTypeRegularSeason) {
			continue
		}
		games = append(games, mapGame(g, season))
	}
	return games, nil
}

func validateSeason(season string) error {
	if len(season) != 8 {
		return fmt.Errorf("nhle: season must be YYYYYYYY (e.g. 20232024), got %q", season)
	}
	if _, err := strconv.Atoi(season); err != nil {
		return fmt.Errorf("nhle: season must be numeric, got %q", season)
	}
	return nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
