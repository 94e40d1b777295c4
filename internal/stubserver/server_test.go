package stubserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	srv := NewServer("")
	srv.startTime = time.Now()
	return srv, srv.router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("")
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("unmarshal %s %s response: %v", method, path, err)
		}
	}
	return w, decoded
}

func TestHealthEndpoint(t *testing.T) {
	_, r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
	components, ok := body["components"].(map[string]any)
	if !ok || len(components) == 0 {
		t.Errorf("components missing: %v", body["components"])
	}
	if _, ok := body["uptime_seconds"]; !ok {
		t.Error("uptime_seconds missing")
	}
}

func TestProbeEndpoints(t *testing.T) {
	_, r := newTestRouter(t)

	for _, path := range []string{"/api/health/live", "/api/health/ready"} {
		w, body := doJSON(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200", path, w.Code)
		}
		if body["status"] != "healthy" {
			t.Errorf("%s status field = %v", path, body["status"])
		}
	}
}

func TestStatsCountsTraffic(t *testing.T) {
	_, r := newTestRouter(t)

	for i := 0; i < 3; i++ {
		doJSON(t, r, http.MethodGet, "/api/health", "")
	}

	w, body := doJSON(t, r, http.MethodGet, "/api/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d, want 200", w.Code)
	}
	// 3 health calls + this stats call.
	if got := body["requests_total"].(float64); got != 4 {
		t.Errorf("requests_total = %v, want 4", got)
	}
	if got := body["requests_last_5min"].(float64); got != 4 {
		t.Errorf("requests_last_5min = %v, want 4", got)
	}

	top, ok := body["top_endpoints"].([]any)
	if !ok || len(top) == 0 {
		t.Fatalf("top_endpoints = %v", body["top_endpoints"])
	}
	first := top[0].(map[string]any)
	if first["endpoint"] != "GET /api/health" {
		t.Errorf("top endpoint = %v, want GET /api/health first", first["endpoint"])
	}
}

func TestAnalysisSuccessAndCache(t *testing.T) {
	_, r := newTestRouter(t)
	reqBody := `{"market_data":"NASDAQ up 2.3%","user_id":"u1"}`

	w, body := doJSON(t, r, http.MethodPost, "/api/analysis", reqBody)
	if w.Code != http.StatusOK {
		t.Fatalf("analysis status = %d, want 200; body %v", w.Code, body)
	}
	if body["from_cache"] != false {
		t.Errorf("first request from_cache = %v, want false", body["from_cache"])
	}
	narrative, _ := body["analysis"].(string)
	if narrative == "" {
		t.Error("analysis text missing")
	}

	_, second := doJSON(t, r, http.MethodPost, "/api/analysis", reqBody)
	if second["from_cache"] != true {
		t.Errorf("repeat request from_cache = %v, want true", second["from_cache"])
	}
	if second["analysis"] != narrative {
		t.Errorf("cached narrative differs: %v", second["analysis"])
	}
}

func TestAnalysisValidation(t *testing.T) {
	_, r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/analysis", `{"user_id":"u1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing market_data status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/analysis", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d, want 400", w.Code)
	}
}

func TestAnalysisRateLimit(t *testing.T) {
	_, r := newTestRouter(t)

	var lastCode int
	for i := 0; i <= analysisRateLimit; i++ {
		body := fmt.Sprintf(`{"market_data":"scenario %d","user_id":"heavy"}`, i)
		w, _ := doJSON(t, r, http.MethodPost, "/api/analysis", body)
		lastCode = w.Code
	}
	if lastCode != http.StatusTooManyRequests {
		t.Errorf("request %d status = %d, want 429", analysisRateLimit+1, lastCode)
	}

	// Other users are unaffected by one user's window.
	w, _ := doJSON(t, r, http.MethodPost, "/api/analysis", `{"market_data":"fresh","user_id":"light"}`)
	if w.Code != http.StatusOK {
		t.Errorf("other user status = %d, want 200", w.Code)
	}
}
