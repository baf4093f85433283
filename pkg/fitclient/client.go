package fitclient

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
	"sync"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/fitness"

	log "github.com/sirupsen/logrus"
)

const defaultTimeout = 15 * time.Second

// Client calls the FitTrack API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the API rooted at baseURL, e.g. "http://localhost:8080/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

type SignupRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Location string  `json:"location,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

// ProfileUpdate is the body of PUT /users/profile. Only set fields are sent.
type ProfileUpdate struct {
	Name            *string                `json:"name,omitempty"`
	Location        *string                `json:"location,omitempty"`
	Age             *int                   `json:"age,omitempty"`
	Gender          *string                `json:"gender,omitempty"`
	Settings        *domain.Settings       `json:"settings,omitempty"`
	WorkoutSchedule domain.WorkoutSchedule `json:"workoutSchedule,omitempty"`
}

// ExportResult points at a server-side data export.
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Signup registers an account and keeps its token for later calls.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, "/users", req, &s); err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}

// Login authenticates and keeps the token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &s); err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}

// Profile fetches the logged-in user with settings and workout schedule.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodPut, "/users/profile", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) FetchMeasurements(ctx context.Context) ([]domain.Measurement, error) {
	return fetchList[domain.Measurement](ctx, c, "/measurements")
}

func (c *Client) FetchWorkouts(ctx context.Context) ([]domain.WorkoutLog, error) {
	return fetchList[domain.WorkoutLog](ctx, c, "/workouts")
}

func (c *Client) FetchDiet(ctx context.Context) ([]domain.DietLog, error) {
	return fetchList[domain.DietLog](ctx, c, "/diet")
}

func (c *Client) PostMeasurement(ctx context.Context, m domain.Measurement) (*domain.Measurement, error) {
	var saved domain.Measurement
	if err := c.do(ctx, http.MethodPost, "/measurements", m, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) PostWorkout(ctx context.Context, w domain.WorkoutLog) (*domain.WorkoutLog, error) {
	var saved domain.WorkoutLog
	if err := c.do(ctx, http.MethodPost, "/workouts", w, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) PostDiet(ctx context.Context, d domain.DietLog) (*domain.DietLog, error) {
	var saved domain.DietLog
	if err := c.do(ctx, http.MethodPost, "/diet", d, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Dashboard fetches the server-computed summary. days == 0 charts everything;
// negative values are rejected like the server does.
func (c *Client) Dashboard(ctx context.Context, days int) (*fitness.Summary, error) {
	if days < 0 {
		return nil, fmt.Errorf("dashboard: days must not be negative, got %d", days)
	}
	q := url.Values{"days": {strconv.Itoa(days)}}
	var s fitness.Summary
	if err := c.do(ctx, http.MethodGet, "/dashboard?"+q.Encode(), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Export(ctx context.Context) (*ExportResult, error) {
	var res ExportResult
	if err := c.do(ctx, http.MethodPost, "/export", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// fetchList GETs a collection. A 2xx body that is not a JSON array yields an empty list.
func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	list := []T{}
	if !isJSONArray(raw) {
		log.Debugf("fitclient: %s did not return a list, treating as empty", path)
		return list, nil
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return list, nil
}

func isJSONArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
