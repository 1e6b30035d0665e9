package health

// SummaryStats is an aggregate over a batch of check results. It is
// recomputed fresh on every Summarize call; nothing is carried between
// calls.
type SummaryStats struct {
	TotalSites          int      `json:"total_sites"`
	HealthySites        int      `json:"healthy_sites"`
	UnhealthySites      int      `json:"unhealthy_sites"`
	HealthPercentage    float64  `json:"health_percentage"`
	AverageResponseTime float64  `json:"average_response_time"`
	SSLSitesChecked     int      `json:"ssl_sites_checked"`
	SSLValidSites       int      `json:"ssl_valid_sites"`
	SSLInvalidSites     int      `json:"ssl_invalid_sites"`
	SitesWithErrors     int      `json:"sites_with_errors"`
	FastestResponseTime *float64 `json:"fastest_response_time"`
	SlowestResponseTime *float64 `json:"slowest_response_time"`
}

// Summarize reduces results to aggregate statistics. It trusts the
// fields already present on each result and never re-derives health or
// SSL validity. An empty input yields a zeroed summary.
func Summarize(results []CheckResult) SummaryStats {
	s := SummaryStats{TotalSites: len(results)}
	if len(results) == 0 {
		return s
	}

	var sum float64
	var timed int
	for _, r := range results {
		if r.StatusHealthy {
			s.HealthySites++
		}
		if r.SSLChecked {
			s.SSLSitesChecked++
		}
		if r.SSLValid {
			s.SSLValidSites++
		}
		if r.Error != nil {
			s.SitesWithErrors++
		}
		if r.ResponseTime == nil {
			continue
		}
		rt := *r.ResponseTime
		sum += rt
		timed++
		if s.FastestResponseTime == nil || rt < *s.FastestResponseTime {
			v := rt
			s.FastestResponseTime = &v
		}
		if s.SlowestResponseTime == nil || rt > *s.SlowestResponseTime {
			v := rt
			s.SlowestResponseTime = &v
		}
	}

	s.UnhealthySites = s.TotalSites - s.HealthySites
	s.HealthPercentage = float64(s.HealthySites) / float64(s.TotalSites) * 100
	s.SSLInvalidSites = s.SSLSitesChecked - s.SSLValidSites
	if timed > 0 {
		s.AverageResponseTime = sum / float64(timed)
	}
	return s
}
