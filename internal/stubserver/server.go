// Package stubserver is a local stand-in for the CurrencyDashboard backend.
// It serves the documented contract with simulated data so the dashboard can
// be developed and demonstrated without the production service.
package stubserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/currencydash/anchor/internal/model"
	"github.com/gin-gonic/gin"
)

// analysisRateLimit is the per-user request allowance per window.
const (
	analysisRateLimit  = 10
	analysisRateWindow = time.Minute
	statsWindow        = 5 * time.Minute
)

// Server is the stub backend.
type Server struct {
	addr      string
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time

	mu          sync.Mutex
	requests    []requestRecord
	total       int64
	errorsTotal int64
	byEndpoint  map[string]*endpointMetrics
	cache       map[string]string
	cacheHits   int64
	cacheMisses int64
	userWindows map[string]*rateWindow
}

type requestRecord struct {
	at time.Time
}

type endpointMetrics struct {
	count   int64
	totalMs float64
}

type rateWindow struct {
	start time.Time
	count int
}

// NewServer creates a stub server listening on addr.
func NewServer(addr string) *Server {
	if addr == "" {
		addr = model.DefaultStubAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:        addr,
		ctx:         ctx,
		cancel:      cancel,
		byEndpoint:  make(map[string]*endpointMetrics),
		cache:       make(map[string]string),
		userWindows: make(map[string]*rateWindow),
	}
}

// Start begins serving the stub API.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := s.router()

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the stub server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.recordMetrics())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/health/live", s.handleLiveness)
	r.GET("/api/health/ready", s.handleReadiness)
	r.GET("/api/stats", s.handleStats)
	r.POST("/api/analysis", s.handleAnalysis)
	return r
}

// recordMetrics counts every request so /api/stats reflects real traffic.
func (s *Server) recordMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := float64(time.Since(start).Microseconds()) / 1000

		endpoint := c.Request.Method + " " + c.FullPath()
		isError := c.Writer.Status() >= 400

		s.mu.Lock()
		defer s.mu.Unlock()
		s.total++
		if isError {
			s.errorsTotal++
		}
		s.requests = append(s.requests, requestRecord{at: start})
		s.pruneRequestsLocked(start)
		m := s.byEndpoint[endpoint]
		if m == nil {
			m = &endpointMetrics{}
			s.byEndpoint[endpoint] = m
		}
		m.count++
		m.totalMs += elapsed
	}
}

func (s *Server) pruneRequestsLocked(now time.Time) {
	cutoff := now.Add(-statsWindow)
	i := 0
	for i < len(s.requests) && s.requests[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		s.requests = append([]requestRecord(nil), s.requests[i:]...)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"components": gin.H{
			"api":             "operational",
			"cache":           "operational",
			"analysis_engine": "operational",
		},
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
	})
}

func (s *Server) handleLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleReadiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errorRate float64
	if s.total > 0 {
		errorRate = float64(s.errorsTotal) * 100 / float64(s.total)
	}

	var cacheHitRate float64
	if lookups := s.cacheHits + s.cacheMisses; lookups > 0 {
		cacheHitRate = float64(s.cacheHits) * 100 / float64(lookups)
	}

	var totalMs float64
	var totalCount int64
	type ranked struct {
		endpoint string
		count    int64
		avgMs    float64
	}
	var ranking []ranked
	for endpoint, m := range s.byEndpoint {
		totalMs += m.totalMs
		totalCount += m.count
		ranking = append(ranking, ranked{endpoint, m.count, m.totalMs / float64(m.count)})
	}
	// Ranking order is this backend's responsibility; clients render as-is.
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].count != ranking[j].count {
			return ranking[i].count > ranking[j].count
		}
		return ranking[i].endpoint < ranking[j].endpoint
	})

	var avgLatency float64
	if totalCount > 0 {
		avgLatency = totalMs / float64(totalCount)
	}

	top := make([]gin.H, 0, len(ranking))
	for _, r := range ranking {
		top = append(top, gin.H{
			"endpoint": r.endpoint,
			"count":    r.count,
			"avg_ms":   r.avgMs,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"requests_total":         s.total,
		"requests_last_5min":     len(s.requests),
		"error_rate_percent":     errorRate,
		"avg_latency_ms":         avgLatency,
		"cache_hit_rate_percent": cacheHitRate,
		"top_endpoints":          top,
	})
}

func (s *Server) handleAnalysis(c *gin.Context) {
	var req struct {
		MarketData string `json:"market_data" binding:"required"`
		UserID     string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing market_data field"})
		return
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}

	if !s.allow(req.UserID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, try again later"})
		return
	}

	s.mu.Lock()
	narrative, cached := s.cache[req.MarketData]
	if cached {
		s.cacheHits++
	} else {
		s.cacheMisses++
		narrative = simulateNarrative(req.MarketData)
		s.cache[req.MarketData] = narrative
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"analysis":   narrative,
		"from_cache": cached,
	})
}

// allow applies a fixed-window rate limit per user.
func (s *Server) allow(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	w := s.userWindows[userID]
	if w == nil || now.Sub(w.start) >= analysisRateWindow {
		s.userWindows[userID] = &rateWindow{start: now, count: 1}
		return true
	}
	if w.count >= analysisRateLimit {
		return false
	}
	w.count++
	return true
}

// simulateNarrative produces a deterministic canned analysis so the
// dashboard has something sensible to render offline.
func simulateNarrative(marketData string) string {
	lower := strings.ToLower(marketData)

	tone := "mixed"
	switch {
	case strings.Contains(lower, "up") || strings.Contains(lower, "strong") || strings.Contains(lower, "rally"):
		tone = "constructive"
	case strings.Contains(lower, "down") || strings.Contains(lower, "weak") || strings.Contains(lower, "selloff"):
		tone = "cautious"
	}

	ratePressure := "neutral rate pressure"
	if strings.Contains(lower, "fed") || strings.Contains(lower, "rate") {
		ratePressure = "rate-sensitive positioning advised"
	}

	return fmt.Sprintf(
		"Simulated outlook (%s): based on the described conditions, the near-term stance is %s with %s. "+
			"Consider the current dollar strength when weighing non-USD exposure. "+
			"This narrative is generated by the local stub backend, not a live model.",
		tone, tone, ratePressure)
}
