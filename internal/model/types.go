package model

import "fmt"

// OverallStatus is the aggregate backend status shown on the system view.
type OverallStatus string

const (
	StatusHealthy     OverallStatus = "healthy"
	StatusDegraded    OverallStatus = "degraded"
	StatusUnavailable OverallStatus = "unavailable"
	StatusUnknown     OverallStatus = "unknown"
)

// NormalizeStatus maps a backend-reported status string onto the known set.
// Unrecognized strings become StatusUnknown rather than being dropped.
func NormalizeStatus(raw string) OverallStatus {
	switch raw {
	case "healthy":
		return StatusHealthy
	case "degraded":
		return StatusDegraded
	default:
		return StatusUnknown
	}
}

// ComponentStatus is one backend subsystem's operational label.
// The raw string is preserved and Warning derives from it: anything other
// than the literal "operational" is a warning, since the source data is
// free-form rather than boolean.
type ComponentStatus struct {
	Name    string
	Status  string
	Warning bool
}

// Uptime is a seconds count decomposed into display units.
// Invariant: Hours*3600 + Minutes*60 + Seconds equals the source count,
// with 0 <= Minutes < 60 and 0 <= Seconds < 60.
type Uptime struct {
	Hours   int
	Minutes int
	Seconds int
}

// UptimeFromSeconds decomposes a non-negative seconds count.
// Negative input is treated as zero.
func UptimeFromSeconds(total int) Uptime {
	if total < 0 {
		total = 0
	}
	return Uptime{
		Hours:   total / 3600,
		Minutes: (total / 60) % 60,
		Seconds: total % 60,
	}
}

// TotalSeconds recomposes the uptime into the original seconds count.
func (u Uptime) TotalSeconds() int {
	return u.Hours*3600 + u.Minutes*60 + u.Seconds
}

func (u Uptime) String() string {
	return fmt.Sprintf("%dh %dm %ds", u.Hours, u.Minutes, u.Seconds)
}

// HealthReport is the interpreted result of one health check.
// Constructed fresh per check, never mutated.
type HealthReport struct {
	Overall    OverallStatus
	Detail     string // failure reason or unexpected-code note, empty on the happy path
	StatusCode int    // raw HTTP code when one was received, 0 otherwise
	Components []ComponentStatus
	Uptime     Uptime
}

// Warnings returns the components not reporting "operational".
func (r HealthReport) Warnings() []ComponentStatus {
	var out []ComponentStatus
	for _, c := range r.Components {
		if c.Warning {
			out = append(out, c)
		}
	}
	return out
}

// EndpointStat is one entry of the backend's endpoint ranking.
// The ranking order is the backend's; the client never re-sorts it.
type EndpointStat struct {
	Endpoint string  `json:"endpoint"`
	Count    int64   `json:"count"`
	AvgMs    float64 `json:"avg_ms"`
}

// StatsSnapshot holds one /api/stats response with display precision already
// applied: error rate two decimals, latency whole milliseconds, cache hit
// rate one decimal. Consumers render the values as-is.
type StatsSnapshot struct {
	RequestsTotal       int64
	RequestsLast5Min    int64
	ErrorRatePercent    float64
	AvgLatencyMs        float64
	CacheHitRatePercent float64
	TopEndpoints        []EndpointStat
}

// ErrorRateDisplay renders the error rate as it appears on the dashboard,
// clamped to [0, 100] for display only.
func (s StatsSnapshot) ErrorRateDisplay() string {
	return fmt.Sprintf("%.2f%%", clampPercent(s.ErrorRatePercent))
}

// AvgLatencyDisplay renders the average latency in whole milliseconds.
func (s StatsSnapshot) AvgLatencyDisplay() string {
	return fmt.Sprintf("%.0fms", s.AvgLatencyMs)
}

// CacheHitRateDisplay renders the cache hit rate with one decimal,
// clamped to [0, 100] for display only.
func (s StatsSnapshot) CacheHitRateDisplay() string {
	return fmt.Sprintf("%.1f%%", clampPercent(s.CacheHitRatePercent))
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// AnalysisKind discriminates analysis request outcomes. Exactly one kind is
// active per outcome.
type AnalysisKind int

const (
	AnalysisSuccess AnalysisKind = iota
	AnalysisRateLimited
	AnalysisServerError
	AnalysisConnectionFailed
	AnalysisTimeout
)

func (k AnalysisKind) String() string {
	switch k {
	case AnalysisSuccess:
		return "success"
	case AnalysisRateLimited:
		return "rate limited"
	case AnalysisServerError:
		return "server error"
	case AnalysisConnectionFailed:
		return "connection failed"
	case AnalysisTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// AnalysisOutcome is the classified result of one market analysis request.
// Narrative and FromCache are meaningful only for AnalysisSuccess;
// StatusCode only for AnalysisServerError.
type AnalysisOutcome struct {
	Kind       AnalysisKind
	Narrative  string
	FromCache  bool
	StatusCode int
}
