package model

import "time"

// Shared defaults used by both the dashboard and stub backend binaries.
const (
	DefaultBackendURL      = "http://localhost:8787"
	DefaultUserID          = "anchor_user"
	DefaultCheckTimeout    = 5 * time.Second
	DefaultAnalysisTimeout = 30 * time.Second
	DefaultStubAddr        = "0.0.0.0:8787"
	DefaultSkin            = "default"
)
