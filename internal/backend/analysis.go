package backend

import (
	"encoding/json"
	"net/http"

	"github.com/currencydash/anchor/internal/model"
)

// placeholderNarrative is shown when a successful analysis response carries
// no analysis text.
const placeholderNarrative = "No analysis available"

type analysisWire struct {
	Analysis  string `json:"analysis"`
	FromCache bool   `json:"from_cache"`
}

// ClassifyAnalysis converts a transport outcome for POST /api/analysis into
// an AnalysisOutcome. The contract documents 200/429/500; every other code
// is a server error catch-all rather than a guessed meaning. A 200 whose
// body does not parse is classified the same way, since the server was
// reachable but responded unusably.
func ClassifyAnalysis(oc Outcome) model.AnalysisOutcome {
	switch oc.Kind {
	case OutcomeNetworkError:
		return model.AnalysisOutcome{Kind: model.AnalysisConnectionFailed}
	case OutcomeTimedOut:
		return model.AnalysisOutcome{Kind: model.AnalysisTimeout}
	}

	switch {
	case oc.StatusCode == http.StatusOK:
		var wire analysisWire
		if err := json.Unmarshal(oc.Body, &wire); err != nil {
			return model.AnalysisOutcome{Kind: model.AnalysisServerError, StatusCode: oc.StatusCode}
		}
		narrative := wire.Analysis
		if narrative == "" {
			narrative = placeholderNarrative
		}
		return model.AnalysisOutcome{
			Kind:      model.AnalysisSuccess,
			Narrative: narrative,
			FromCache: wire.FromCache,
		}
	case oc.StatusCode == http.StatusTooManyRequests:
		// Body content is irrelevant once the request was rate limited.
		return model.AnalysisOutcome{Kind: model.AnalysisRateLimited}
	default:
		return model.AnalysisOutcome{Kind: model.AnalysisServerError, StatusCode: oc.StatusCode}
	}
}
