package health

import (
	"context"
	"time"
)

// CheckResult is the outcome of one health check against one target URL.
// Pointer fields are nil when the value was never obtained (request failed
// before a response, SSL not checked, and so on).
type CheckResult struct {
	URL                string     `json:"url"`
	Timestamp          *time.Time `json:"timestamp"`
	StatusCode         *int       `json:"status_code"`
	StatusHealthy      bool       `json:"status_healthy"`
	ResponseTime       *float64   `json:"response_time"` // seconds
	FinalURL           string     `json:"final_url"`
	SSLChecked         bool       `json:"ssl_checked"`
	SSLValid           bool       `json:"ssl_valid"`
	SSLExpiry          *string    `json:"ssl_expiry"`
	SSLDaysUntilExpiry *int       `json:"ssl_days_until_expiry"`
	Error              *string    `json:"error,omitempty"`
}

// SSLInfo is what the certificate inspector reports for one host:port.
type SSLInfo struct {
	Checked         bool
	Valid           bool
	Expiry          *string
	DaysUntilExpiry *int
}

// Options control a single check. Concurrency only matters to CheckAll.
type Options struct {
	Timeout         time.Duration
	FollowRedirects bool
	Concurrency     int
}

// DefaultOptions mirror the documented engine defaults: 10s timeout,
// redirects followed, sequential batches.
func DefaultOptions() Options {
	return Options{
		Timeout:         10 * time.Second,
		FollowRedirects: true,
		Concurrency:     1,
	}
}

// Checker performs a single health check for a target URL.
type Checker interface {
	Check(ctx context.Context, url string, opts Options) CheckResult
}
