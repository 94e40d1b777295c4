package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/currencydash/anchor/internal/model"
)

// Client is the typed client over the backend's HTTP contract. The base URL
// is fixed at construction and passed explicitly, never read as ambient
// global state, so pipelines stay testable in isolation.
type Client struct {
	baseURL         string
	userID          string
	transport       *Transport
	checkTimeout    time.Duration
	analysisTimeout time.Duration
}

// Config holds client construction parameters. Zero timeouts fall back to
// the shared defaults.
type Config struct {
	BaseURL         string
	UserID          string
	CheckTimeout    time.Duration
	AnalysisTimeout time.Duration
}

// NewClient validates the base URL and builds a client.
func NewClient(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend: base URL %q is not absolute", cfg.BaseURL)
	}

	checkTimeout := cfg.CheckTimeout
	if checkTimeout <= 0 {
		checkTimeout = model.DefaultCheckTimeout
	}
	analysisTimeout := cfg.AnalysisTimeout
	if analysisTimeout <= 0 {
		analysisTimeout = model.DefaultAnalysisTimeout
	}
	userID := cfg.UserID
	if userID == "" {
		userID = model.DefaultUserID
	}

	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		userID:          userID,
		transport:       NewTransport(),
		checkTimeout:    checkTimeout,
		analysisTimeout: analysisTimeout,
	}, nil
}

// CheckHealth queries GET /api/health and interprets the result.
func (c *Client) CheckHealth(ctx context.Context) model.HealthReport {
	return c.checkPath(ctx, "/api/health")
}

// CheckLiveness queries the liveness probe, consumed identically to the
// general health check.
func (c *Client) CheckLiveness(ctx context.Context) model.HealthReport {
	return c.checkPath(ctx, "/api/health/live")
}

// CheckReadiness queries the readiness probe.
func (c *Client) CheckReadiness(ctx context.Context) model.HealthReport {
	return c.checkPath(ctx, "/api/health/ready")
}

func (c *Client) checkPath(ctx context.Context, path string) model.HealthReport {
	oc := c.transport.Do(ctx, http.MethodGet, c.baseURL+path, nil, c.checkTimeout)
	return InterpretHealth(oc)
}

// FetchStats queries GET /api/stats and interprets the result.
func (c *Client) FetchStats(ctx context.Context) (model.StatsSnapshot, error) {
	oc := c.transport.Do(ctx, http.MethodGet, c.baseURL+"/api/stats", nil, c.checkTimeout)
	return InterpretStats(oc)
}

// RequestAnalysis submits a market description for analysis. The longer
// timeout reflects that a generative call is expected to take materially
// longer than a health or stats check. The description must be non-empty;
// each invocation is one independent request with no retry.
func (c *Client) RequestAnalysis(ctx context.Context, marketData string) (model.AnalysisOutcome, error) {
	if strings.TrimSpace(marketData) == "" {
		return model.AnalysisOutcome{}, fmt.Errorf("backend: empty market description")
	}

	body, err := json.Marshal(map[string]string{
		"market_data": marketData,
		"user_id":     c.userID,
	})
	if err != nil {
		return model.AnalysisOutcome{}, fmt.Errorf("backend: marshal analysis request: %w", err)
	}

	oc := c.transport.Do(ctx, http.MethodPost, c.baseURL+"/api/analysis", body, c.analysisTimeout)
	return ClassifyAnalysis(oc), nil
}
