package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meltforce/runplan/internal/library"
	"github.com/meltforce/runplan/internal/models"
)

// HTTPClient implements PlanSource by calling the runplan REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// plans are generated and stored on the remote server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies PlanSource.
var _ PlanSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx answer from the server. Code carries the planner
// error code for validation failures.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, payload any, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("httpclient: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
		var e struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			apiErr.Message, apiErr.Code = e.Error, e.Code
		}
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

// wireProfile mirrors the server's request body, which takes the race date
// as a string.
type wireProfile struct {
	ActivityLevel   models.ActivityLevel `json:"activity_level"`
	AvailableDays   []string             `json:"available_days"`
	Goal            models.Goal          `json:"goal"`
	TargetDistance  string               `json:"target_distance,omitempty"`
	RaceDate        string               `json:"race_date,omitempty"`
	RecentInjury    bool                 `json:"recent_injury,omitempty"`
	CurrentPain     bool                 `json:"current_pain,omitempty"`
	LongestDistance string               `json:"longest_distance,omitempty"`
}

func toWire(p models.Profile) wireProfile {
	w := wireProfile{
		ActivityLevel:   p.ActivityLevel,
		AvailableDays:   p.AvailableDays,
		Goal:            p.Goal,
		TargetDistance:  p.TargetDistance,
		RecentInjury:    p.RecentInjury,
		CurrentPain:     p.CurrentPain,
		LongestDistance: p.LongestDistance,
	}
	if p.RaceDate != nil {
		w.RaceDate = p.RaceDate.UTC().Format(time.RFC3339)
	}
	return w
}

func (c *HTTPClient) GeneratePlan(ctx context.Context, profile models.Profile, persist bool) (*models.Plan, error) {
	path := "/api/v1/plans/preview"
	if persist {
		path = "/api/v1/plans"
	}
	var plan models.Plan
	if err := c.do(ctx, http.MethodPost, path, nil, toWire(profile), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *HTTPClient) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	var plan models.Plan
	if err := c.do(ctx, http.MethodGet, "/api/v1/plans/"+url.PathEscape(id), nil, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *HTTPClient) ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var plans []models.PlanSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/plans", params, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *HTTPClient) WorkoutLibrary(ctx context.Context) (map[models.WorkoutType][]models.Workout, error) {
	var lib map[models.WorkoutType][]models.Workout
	if err := c.do(ctx, http.MethodGet, "/api/v1/library/workouts", nil, nil, &lib); err != nil {
		return nil, err
	}
	return lib, nil
}

func (c *HTTPClient) Presets(ctx context.Context) ([]library.Preset, error) {
	var presets []library.Preset
	if err := c.do(ctx, http.MethodGet, "/api/v1/library/presets", nil, nil, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}
