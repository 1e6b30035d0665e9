package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/sitehealth/internal/health"
)

const (
	minTimeout = 1 * time.Second
	maxTimeout = 120 * time.Second
)

type checkPayload struct {
	URL             string   `json:"url"`
	URLs            []string `json:"urls"`
	TimeoutSeconds  float64  `json:"timeout_seconds"`
	FollowRedirects *bool    `json:"follow_redirects"`
}

type batchResponse struct {
	Results []health.CheckResult `json:"results"`
	Summary health.SummaryStats  `json:"summary"`
}

// options applies the payload's overrides on top of the server defaults,
// clamping the timeout so one request cannot pin a worker for long.
func (s *Server) options(p checkPayload) health.Options {
	opts := s.Defaults
	if p.TimeoutSeconds > 0 {
		d := time.Duration(p.TimeoutSeconds * float64(time.Second))
		if d < minTimeout {
			d = minTimeout
		}
		if d > maxTimeout {
			d = maxTimeout
		}
		opts.Timeout = d
	}
	if p.FollowRedirects != nil {
		opts.FollowRedirects = *p.FollowRedirects
	}
	return opts
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var p checkPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.URL == "" {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	res := s.Checker.Check(r.Context(), p.URL, s.options(p))
	s.logResult(res)

	writeJSON(w, res)
}

func (s *Server) handleCheckBatch(w http.ResponseWriter, r *http.Request) {
	var p checkPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || len(p.URLs) == 0 {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	results := health.CheckAll(r.Context(), s.Checker, p.URLs, s.options(p))
	for _, res := range results {
		s.logResult(res)
	}
	summary := health.Summarize(results)

	s.Logger.Info("batch_checked",
		zap.Int("total", summary.TotalSites),
		zap.Int("healthy", summary.HealthySites),
		zap.Float64("health_pct", summary.HealthPercentage),
		zap.Int("errors", summary.SitesWithErrors),
	)

	writeJSON(w, batchResponse{Results: results, Summary: summary})
}

func (s *Server) logResult(res health.CheckResult) {
	fields := []zap.Field{
		zap.String("url", res.URL),
		zap.Bool("healthy", res.StatusHealthy),
		zap.Bool("ssl_checked", res.SSLChecked),
		zap.Bool("ssl_valid", res.SSLValid),
	}
	if res.StatusCode != nil {
		fields = append(fields, zap.Int("status", *res.StatusCode))
	}
	if res.ResponseTime != nil {
		fields = append(fields, zap.Float64("response_time", *res.ResponseTime))
	}
	if res.Error != nil {
		fields = append(fields, zap.String("error", *res.Error))
		s.Logger.Warn("check_failed", fields...)
		return
	}
	s.Logger.Info("checked", fields...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
