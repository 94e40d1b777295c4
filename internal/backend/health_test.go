package backend

import (
	"testing"

	"github.com/currencydash/anchor/internal/model"
)

func TestInterpretHealthNetworkError(t *testing.T) {
	report := InterpretHealth(Outcome{Kind: OutcomeNetworkError, Reason: "connection refused"})
	if report.Overall != model.StatusUnavailable {
		t.Errorf("overall = %q, want unavailable", report.Overall)
	}
	if report.Detail != "connection refused" {
		t.Errorf("detail = %q, want connection refused", report.Detail)
	}
	if len(report.Components) != 0 {
		t.Errorf("components = %v, want none", report.Components)
	}
}

func TestInterpretHealthTimeout(t *testing.T) {
	report := InterpretHealth(Outcome{Kind: OutcomeTimedOut})
	if report.Overall != model.StatusUnavailable {
		t.Errorf("overall = %q, want unavailable", report.Overall)
	}
	if report.Detail != "timed out" {
		t.Errorf("detail = %q, want timed out", report.Detail)
	}
	// A timeout must stay distinguishable from a refused connection.
	refused := InterpretHealth(Outcome{Kind: OutcomeNetworkError, Reason: "connection refused"})
	if report.Detail == refused.Detail {
		t.Error("timeout and connection failure produce the same detail")
	}
}

func TestInterpretHealth503(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"healthy-claiming body", `{"status":"healthy"}`},
		{"garbage body", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: 503, Body: []byte(tt.body)})
			if report.Overall != model.StatusUnavailable {
				t.Errorf("overall = %q, want unavailable regardless of body", report.Overall)
			}
			if report.StatusCode != 503 {
				t.Errorf("status code = %d, want 503", report.StatusCode)
			}
		})
	}
}

func TestInterpretHealth503KeepsComponents(t *testing.T) {
	body := `{"status":"unhealthy","components":{"db":"down","cache":"operational"}}`
	report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: 503, Body: []byte(body)})
	if report.Overall != model.StatusUnavailable {
		t.Fatalf("overall = %q, want unavailable", report.Overall)
	}
	if len(report.Components) != 2 {
		t.Fatalf("components = %v, want both rendered", report.Components)
	}
	if !report.Components[0].Warning || report.Components[1].Warning {
		t.Errorf("warning flags = %v", report.Components)
	}
}

func TestInterpretHealthSuccess(t *testing.T) {
	body := `{"status":"degraded","components":{"db":"operational","cache":"degraded"},"uptime_seconds":3661}`

	for _, code := range []int{200, 206} {
		report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: code, Body: []byte(body)})
		if report.Overall != model.StatusDegraded {
			t.Errorf("code %d: overall = %q, want degraded", code, report.Overall)
		}
		warnings := report.Warnings()
		if len(warnings) != 1 || warnings[0].Name != "cache" {
			t.Errorf("code %d: warnings = %v, want exactly cache", code, warnings)
		}
		if report.Uptime != (model.Uptime{Hours: 1, Minutes: 1, Seconds: 1}) {
			t.Errorf("code %d: uptime = %+v", code, report.Uptime)
		}
	}
}

func TestInterpretHealthComponentOrderPreserved(t *testing.T) {
	body := `{"status":"healthy","components":{"zeta":"operational","alpha":"operational","mid":"slow"}}`
	report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(body)})

	want := []string{"zeta", "alpha", "mid"}
	if len(report.Components) != len(want) {
		t.Fatalf("components = %v", report.Components)
	}
	for i, name := range want {
		if report.Components[i].Name != name {
			t.Errorf("components[%d] = %q, want %q (body order)", i, report.Components[i].Name, name)
		}
	}
	if !report.Components[2].Warning {
		t.Error("non-operational component not flagged")
	}
}

func TestInterpretHealthComponentRawStringKept(t *testing.T) {
	body := `{"status":"healthy","components":{"cache":"rebuilding index"}}`
	report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(body)})
	if report.Components[0].Status != "rebuilding index" {
		t.Errorf("status = %q, raw string must be preserved", report.Components[0].Status)
	}
	if !report.Components[0].Warning {
		t.Error("free-form status not flagged as warning")
	}
}

func TestInterpretHealthUnrecognizedStatus(t *testing.T) {
	body := `{"status":"purring","uptime_seconds":59}`
	report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(body)})
	if report.Overall != model.StatusUnknown {
		t.Errorf("overall = %q, want unknown for unrecognized status string", report.Overall)
	}
	if report.Uptime != (model.Uptime{Seconds: 59}) {
		t.Errorf("uptime = %+v", report.Uptime)
	}
}

func TestInterpretHealthMissingUptimeDefaultsToZero(t *testing.T) {
	report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(`{"status":"healthy"}`)})
	if report.Uptime != (model.Uptime{}) {
		t.Errorf("uptime = %+v, want zero", report.Uptime)
	}
}

func TestInterpretHealthMalformedBody(t *testing.T) {
	report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(`{{{{`)})
	if report.Overall != model.StatusUnknown {
		t.Errorf("overall = %q, want unknown", report.Overall)
	}
	if report.Detail != "malformed response" {
		t.Errorf("detail = %q, reachable-but-unparseable must stay distinct", report.Detail)
	}
}

func TestInterpretHealthUnexpectedCode(t *testing.T) {
	report := InterpretHealth(Outcome{Kind: OutcomeOK, StatusCode: 418, Body: nil})
	if report.Overall != model.StatusUnknown {
		t.Errorf("overall = %q, want unknown", report.Overall)
	}
	if report.StatusCode != 418 {
		t.Errorf("raw code %d not surfaced", report.StatusCode)
	}
	if report.Detail != "unexpected status 418" {
		t.Errorf("detail = %q", report.Detail)
	}
}

func TestInterpretHealthIdempotent(t *testing.T) {
	oc := Outcome{Kind: OutcomeOK, StatusCode: 200, Body: []byte(`{"status":"degraded","components":{"db":"operational"},"uptime_seconds":42}`)}
	first := InterpretHealth(oc)
	second := InterpretHealth(oc)
	if first.Overall != second.Overall || first.Detail != second.Detail ||
		first.Uptime != second.Uptime || len(first.Components) != len(second.Components) {
		t.Errorf("re-interpreting the same payload diverged: %+v vs %+v", first, second)
	}
	for i := range first.Components {
		if first.Components[i] != second.Components[i] {
			t.Errorf("component %d diverged", i)
		}
	}
}
