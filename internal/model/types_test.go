package model

import "testing"

func TestUptimeFromSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    Uptime
	}{
		{"zero", 0, Uptime{0, 0, 0}},
		{"under a minute", 59, Uptime{0, 0, 59}},
		{"exactly a minute", 60, Uptime{0, 1, 0}},
		{"hour minute second", 3661, Uptime{1, 1, 1}},
		{"exactly an hour", 3600, Uptime{1, 0, 0}},
		{"large", 90061, Uptime{25, 1, 1}},
		{"negative treated as zero", -5, Uptime{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UptimeFromSeconds(tt.seconds)
			if got != tt.want {
				t.Errorf("UptimeFromSeconds(%d) = %+v, want %+v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestUptimeDecompositionInvariant(t *testing.T) {
	// h*3600+m*60+s must recompose the input for any non-negative count,
	// with minutes and seconds staying inside [0, 60).
	for _, s := range []int{0, 1, 59, 60, 61, 3599, 3600, 3661, 86399, 86400, 123456789} {
		u := UptimeFromSeconds(s)
		if u.TotalSeconds() != s {
			t.Errorf("recomposed %d from %d", u.TotalSeconds(), s)
		}
		if u.Minutes < 0 || u.Minutes >= 60 {
			t.Errorf("minutes out of range for %d: %d", s, u.Minutes)
		}
		if u.Seconds < 0 || u.Seconds >= 60 {
			t.Errorf("seconds out of range for %d: %d", s, u.Seconds)
		}
	}
}

func TestUptimeString(t *testing.T) {
	if got := UptimeFromSeconds(3661).String(); got != "1h 1m 1s" {
		t.Errorf("String() = %q, want %q", got, "1h 1m 1s")
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want OverallStatus
	}{
		{"healthy", StatusHealthy},
		{"degraded", StatusDegraded},
		{"ok", StatusUnknown},
		{"HEALTHY", StatusUnknown},
		{"", StatusUnknown},
	}
	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestStatsSnapshotDisplay(t *testing.T) {
	s := StatsSnapshot{
		ErrorRatePercent:    1.23,
		AvgLatencyMs:        88,
		CacheHitRatePercent: 73.5,
	}
	if got := s.ErrorRateDisplay(); got != "1.23%" {
		t.Errorf("ErrorRateDisplay() = %q, want %q", got, "1.23%")
	}
	if got := s.AvgLatencyDisplay(); got != "88ms" {
		t.Errorf("AvgLatencyDisplay() = %q, want %q", got, "88ms")
	}
	if got := s.CacheHitRateDisplay(); got != "73.5%" {
		t.Errorf("CacheHitRateDisplay() = %q, want %q", got, "73.5%")
	}
}

func TestStatsSnapshotDisplayClamps(t *testing.T) {
	s := StatsSnapshot{ErrorRatePercent: 120.5, CacheHitRatePercent: -3}
	if got := s.ErrorRateDisplay(); got != "100.00%" {
		t.Errorf("ErrorRateDisplay() = %q, want clamped 100.00%%", got)
	}
	if got := s.CacheHitRateDisplay(); got != "0.0%" {
		t.Errorf("CacheHitRateDisplay() = %q, want clamped 0.0%%", got)
	}
}

func TestHealthReportWarnings(t *testing.T) {
	r := HealthReport{
		Components: []ComponentStatus{
			{Name: "db", Status: "operational"},
			{Name: "cache", Status: "degraded", Warning: true},
			{Name: "api", Status: "operational"},
		},
	}
	warnings := r.Warnings()
	if len(warnings) != 1 || warnings[0].Name != "cache" {
		t.Errorf("Warnings() = %+v, want single cache entry", warnings)
	}
}
