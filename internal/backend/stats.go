package backend

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/currencydash/anchor/internal/model"
)

type statsWire struct {
	RequestsTotal       int64                `json:"requests_total"`
	RequestsLast5Min    int64                `json:"requests_last_5min"`
	ErrorRatePercent    float64              `json:"error_rate_percent"`
	AvgLatencyMs        float64              `json:"avg_latency_ms"`
	CacheHitRatePercent float64              `json:"cache_hit_rate_percent"`
	TopEndpoints        []model.EndpointStat `json:"top_endpoints"`
}

// InterpretStats converts a transport outcome for GET /api/stats into a
// snapshot. Absent fields default to zero values; percentage precision is
// applied once here so the presentation layer never re-derives it. Anything
// other than a parseable 200 yields no snapshot and a failure reason.
func InterpretStats(oc Outcome) (model.StatsSnapshot, error) {
	switch oc.Kind {
	case OutcomeNetworkError:
		return model.StatsSnapshot{}, failureError(FailureConnection, 0)
	case OutcomeTimedOut:
		return model.StatsSnapshot{}, failureError(FailureTimeout, 0)
	}

	if oc.StatusCode != http.StatusOK {
		return model.StatsSnapshot{}, failureError(classifyStatus(oc.StatusCode), oc.StatusCode)
	}

	var wire statsWire
	if err := json.Unmarshal(oc.Body, &wire); err != nil {
		return model.StatsSnapshot{}, failureError(FailureMalformed, oc.StatusCode)
	}

	// The endpoint ranking passes through unsorted: ordering is the
	// backend's responsibility.
	return model.StatsSnapshot{
		RequestsTotal:       wire.RequestsTotal,
		RequestsLast5Min:    wire.RequestsLast5Min,
		ErrorRatePercent:    roundTo(wire.ErrorRatePercent, 2),
		AvgLatencyMs:        roundTo(wire.AvgLatencyMs, 0),
		CacheHitRatePercent: roundTo(wire.CacheHitRatePercent, 1),
		TopEndpoints:        wire.TopEndpoints,
	}, nil
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
