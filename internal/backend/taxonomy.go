package backend

import "fmt"

// Failure is the shared error taxonomy applied at every pipeline boundary.
// Every transport or interpretation fault is converted into one of these;
// none escapes a pipeline as an unhandled error.
type Failure int

const (
	FailureNone Failure = iota
	// FailureConnection means the backend was unreachable.
	FailureConnection
	// FailureTimeout means no response arrived within the deadline.
	FailureTimeout
	// FailureClientRejected covers 4xx responses, currently only rate limiting.
	FailureClientRejected
	// FailureServer covers 5xx responses and an explicit 503 health state.
	FailureServer
	// FailureMalformed means a 2xx response whose body does not parse or is
	// missing its required shape.
	FailureMalformed
	// FailureUnexpectedStatus is any status code outside the documented set.
	FailureUnexpectedStatus
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureConnection:
		return "unreachable"
	case FailureTimeout:
		return "timed out"
	case FailureClientRejected:
		return "rejected"
	case FailureServer:
		return "server failure"
	case FailureMalformed:
		return "malformed response"
	case FailureUnexpectedStatus:
		return "unexpected status"
	default:
		return "unknown"
	}
}

// classifyStatus buckets a received status code. The contract only documents
// 200/206/429/500/503, so everything else lands in the catch-alls rather
// than being assigned guessed semantics.
func classifyStatus(code int) Failure {
	switch {
	case code >= 200 && code < 300:
		return FailureNone
	case code == 429:
		return FailureClientRejected
	case code >= 500 && code < 600:
		return FailureServer
	default:
		return FailureUnexpectedStatus
	}
}

// failureError renders a taxonomy bucket as the error surfaced to the
// presentation layer, carrying the raw code where one exists.
func failureError(f Failure, code int) error {
	switch f {
	case FailureConnection:
		return fmt.Errorf("backend unreachable")
	case FailureTimeout:
		return fmt.Errorf("request timed out")
	case FailureMalformed:
		return fmt.Errorf("malformed response")
	default:
		return fmt.Errorf("%s (HTTP %d)", f, code)
	}
}
