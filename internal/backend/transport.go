package backend

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"
)

// OutcomeKind discriminates transport results.
type OutcomeKind int

const (
	// OutcomeOK means a response was received, whatever its status code.
	OutcomeOK OutcomeKind = iota
	// OutcomeNetworkError means the backend could not be reached.
	OutcomeNetworkError
	// OutcomeTimedOut means no response arrived within the call's deadline.
	OutcomeTimedOut
)

// Outcome is the typed result of a single HTTP exchange. Body is the raw
// response body; interpreters decode it so that an unparseable body stays
// distinguishable from an unreachable server.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Body       []byte
	Reason     string // network failure detail, empty otherwise
}

// Transport issues exactly one HTTP request per call with a caller-supplied
// deadline. No retries, at this layer or above.
type Transport struct {
	client *http.Client
}

// NewTransport creates a transport over the default HTTP client.
func NewTransport() *Transport {
	return &Transport{client: &http.Client{}}
}

// Do performs one request. A response arriving after the timeout elapses is
// discarded by the context cancellation; the call finalizes as OutcomeTimedOut.
// The timeout must be positive.
func (t *Transport) Do(ctx context.Context, method, target string, body []byte, timeout time.Duration) Outcome {
	if timeout <= 0 {
		return Outcome{Kind: OutcomeNetworkError, Reason: "non-positive timeout"}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Outcome{Kind: OutcomeNetworkError, Reason: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Outcome{Kind: OutcomeTimedOut}
		}
		return Outcome{Kind: OutcomeNetworkError, Reason: failureReason(err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Outcome{Kind: OutcomeTimedOut}
		}
		return Outcome{Kind: OutcomeNetworkError, Reason: failureReason(err)}
	}

	return Outcome{Kind: OutcomeOK, StatusCode: resp.StatusCode, Body: data}
}

// failureReason strips url.Error wrapping and names a refused connection
// explicitly so the dashboard can tell it apart from other network faults.
func failureReason(err error) string {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "connection refused"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "host not found: " + dnsErr.Name
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
