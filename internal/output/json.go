package output

import (
	"encoding/json"

	"github.com/hamed0406/sitehealth/internal/health"
)

type report struct {
	Results []health.CheckResult `json:"results"`
	Summary health.SummaryStats  `json:"summary"`
}

// RenderJSON renders results and summary as an indented JSON document.
func RenderJSON(results []health.CheckResult, summary health.SummaryStats) (string, error) {
	b, err := json.MarshalIndent(report{Results: results, Summary: summary}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
