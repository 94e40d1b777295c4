package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/currencydash/anchor/internal/model"
)

// operationalStatus is the only component value that is not a warning.
const operationalStatus = "operational"

type healthWire struct {
	Status        string          `json:"status"`
	Components    json.RawMessage `json:"components"`
	UptimeSeconds int             `json:"uptime_seconds"`
}

// InterpretHealth converts a transport outcome for a health endpoint into a
// HealthReport. Classification order: network failure, timeout, explicit 503,
// documented success codes, then the unexpected-code catch-all. All faults
// are folded into the report; this never returns an error.
func InterpretHealth(oc Outcome) model.HealthReport {
	switch oc.Kind {
	case OutcomeNetworkError:
		return model.HealthReport{
			Overall: model.StatusUnavailable,
			Detail:  oc.Reason,
		}
	case OutcomeTimedOut:
		return model.HealthReport{
			Overall: model.StatusUnavailable,
			Detail:  FailureTimeout.String(),
		}
	}

	if oc.StatusCode == http.StatusServiceUnavailable {
		// The service reports itself down. Components are still rendered
		// when the body carries them; a bad body changes nothing here.
		report := model.HealthReport{
			Overall:    model.StatusUnavailable,
			Detail:     "service reports unavailable",
			StatusCode: oc.StatusCode,
		}
		if wire, err := parseHealthBody(oc.Body); err == nil {
			report.Components = wire.components
			report.Uptime = model.UptimeFromSeconds(wire.uptimeSeconds)
		}
		return report
	}

	if oc.StatusCode == http.StatusOK || oc.StatusCode == http.StatusPartialContent {
		wire, err := parseHealthBody(oc.Body)
		if err != nil {
			return model.HealthReport{
				Overall:    model.StatusUnknown,
				Detail:     FailureMalformed.String(),
				StatusCode: oc.StatusCode,
			}
		}
		return model.HealthReport{
			Overall:    model.NormalizeStatus(wire.status),
			StatusCode: oc.StatusCode,
			Components: wire.components,
			Uptime:     model.UptimeFromSeconds(wire.uptimeSeconds),
		}
	}

	return model.HealthReport{
		Overall:    model.StatusUnknown,
		Detail:     fmt.Sprintf("unexpected status %d", oc.StatusCode),
		StatusCode: oc.StatusCode,
	}
}

type parsedHealth struct {
	status        string
	components    []model.ComponentStatus
	uptimeSeconds int
}

func parseHealthBody(data []byte) (parsedHealth, error) {
	var wire healthWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return parsedHealth{}, fmt.Errorf("backend: decode health body: %w", err)
	}
	components, err := orderedComponents(wire.Components)
	if err != nil {
		return parsedHealth{}, err
	}
	return parsedHealth{
		status:        wire.Status,
		components:    components,
		uptimeSeconds: wire.UptimeSeconds,
	}, nil
}

// orderedComponents decodes the components object preserving the backend's
// key order, which a plain map unmarshal would lose.
func orderedComponents(raw json.RawMessage) ([]model.ComponentStatus, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("backend: decode components: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("backend: components is not an object")
	}

	var out []model.ComponentStatus
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("backend: decode components: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("backend: components key is not a string")
		}
		var status string
		if err := dec.Decode(&status); err != nil {
			return nil, fmt.Errorf("backend: decode component %q: %w", name, err)
		}
		out = append(out, model.ComponentStatus{
			Name:    name,
			Status:  status,
			Warning: status != operationalStatus,
		})
	}
	return out, nil
}
