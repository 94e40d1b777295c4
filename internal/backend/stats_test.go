package backend

import (
	"strings"
	"testing"
)

func TestInterpretStatsRounding(t *testing.T) {
	body := `{
		"requests_total": 1500,
		"requests_last_5min": 42,
		"error_rate_percent": 1.2345,
		"avg_latency_ms": 87.6,
		"cache_hit_rate_percent": 73.456,
		"top_endpoints": [{"endpoint":"/api/analysis","count":900,"avg_ms":120.5}]
	}`
	snap, err := InterpretStats(Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(body)})
	if err != nil {
		t.Fatalf("InterpretStats: %v", err)
	}

	if snap.RequestsTotal != 1500 || snap.RequestsLast5Min != 42 {
		t.Errorf("counters = %d/%d", snap.RequestsTotal, snap.RequestsLast5Min)
	}
	if got := snap.ErrorRateDisplay(); got != "1.23%" {
		t.Errorf("error rate = %q, want 1.23%%", got)
	}
	if got := snap.AvgLatencyDisplay(); got != "88ms" {
		t.Errorf("latency = %q, want 88ms", got)
	}
	if got := snap.CacheHitRateDisplay(); got != "73.5%" {
		t.Errorf("cache hit rate = %q, want 73.5%%", got)
	}
}

func TestInterpretStatsDefaults(t *testing.T) {
	snap, err := InterpretStats(Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(`{}`)})
	if err != nil {
		t.Fatalf("InterpretStats: %v", err)
	}
	if snap.RequestsTotal != 0 || snap.RequestsLast5Min != 0 {
		t.Errorf("counters should default to 0, got %d/%d", snap.RequestsTotal, snap.RequestsLast5Min)
	}
	if snap.ErrorRatePercent != 0 || snap.AvgLatencyMs != 0 || snap.CacheHitRatePercent != 0 {
		t.Errorf("rates should default to 0: %+v", snap)
	}
	if len(snap.TopEndpoints) != 0 {
		t.Errorf("endpoints should default to empty, got %v", snap.TopEndpoints)
	}
}

func TestInterpretStatsEndpointOrderPreserved(t *testing.T) {
	// The backend sorts; the client must not. Counts here are deliberately
	// not in descending order.
	body := `{"top_endpoints":[
		{"endpoint":"/api/health","count":10,"avg_ms":3},
		{"endpoint":"/api/analysis","count":500,"avg_ms":900},
		{"endpoint":"/api/stats","count":50,"avg_ms":5}
	]}`
	snap, err := InterpretStats(Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(body)})
	if err != nil {
		t.Fatalf("InterpretStats: %v", err)
	}
	want := []string{"/api/health", "/api/analysis", "/api/stats"}
	for i, ep := range want {
		if snap.TopEndpoints[i].Endpoint != ep {
			t.Errorf("endpoint[%d] = %q, want %q", i, snap.TopEndpoints[i].Endpoint, ep)
		}
	}
}

func TestInterpretStatsFailures(t *testing.T) {
	tests := []struct {
		name       string
		oc         Outcome
		wantReason string
	}{
		{"network error", Outcome{Kind: OutcomeNetworkError, Reason: "connection refused"}, "unreachable"},
		{"timeout", Outcome{Kind: OutcomeTimedOut}, "timed out"},
		{"server error", Outcome{Kind: OutcomeOK, StatusCode: 500}, "500"},
		{"unexpected code", Outcome{Kind: OutcomeOK, StatusCode: 301}, "301"},
		{"malformed body", Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(`<html>`)}, "malformed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InterpretStats(tt.oc)
			if err == nil {
				t.Fatal("expected failure, got snapshot")
			}
			if !strings.Contains(err.Error(), tt.wantReason) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantReason)
			}
		})
	}
}

func TestInterpretStatsIdempotent(t *testing.T) {
	oc := Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(`{"requests_total":7,"error_rate_percent":0.005}`)}
	first, err1 := InterpretStats(oc)
	second, err2 := InterpretStats(oc)
	if err1 != nil || err2 != nil {
		t.Fatalf("errs: %v %v", err1, err2)
	}
	if first.RequestsTotal != second.RequestsTotal || first.ErrorRatePercent != second.ErrorRatePercent {
		t.Errorf("re-interpretation diverged: %+v vs %+v", first, second)
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{1.2345, 2, 1.23},
		{1.235, 2, 1.24},
		{87.6, 0, 88},
		{87.4, 0, 87},
		{73.456, 1, 73.5},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := roundTo(tt.v, tt.decimals); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tt.v, tt.decimals, got, tt.want)
		}
	}
}
