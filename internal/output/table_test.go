package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamed0406/sitehealth/internal/health"
)

func sampleResults() ([]health.CheckResult, health.SummaryStats) {
	code := 200
	rt := 0.512
	days := 42
	expiry := "2027-03-01 00:00:00 UTC"
	errMsg := "Connection Error: refused"
	results := []health.CheckResult{
		{
			URL: "https://ok.example", FinalURL: "https://ok.example",
			StatusCode: &code, StatusHealthy: true, ResponseTime: &rt,
			SSLChecked: true, SSLValid: true, SSLExpiry: &expiry, SSLDaysUntilExpiry: &days,
		},
		{
			URL: "https://down.example", FinalURL: "https://down.example",
			Error: &errMsg,
		},
	}
	return results, health.Summarize(results)
}

func TestRenderTable(t *testing.T) {
	results, summary := sampleResults()
	out := RenderTable(results, summary)

	assert.Contains(t, out, "https://ok.example")
	assert.Contains(t, out, "https://down.example")
	assert.Contains(t, out, "200")
	assert.Contains(t, out, "valid (42d)")
	assert.Contains(t, out, "Connection Error: refused")
	assert.Contains(t, out, "2 sites")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "1 errors")
}

func TestRenderTable_FooterNotUppercased(t *testing.T) {
	results, summary := sampleResults()
	out := RenderTable(results, summary)

	// The style's default footer formatting would shout "2 SITES".
	assert.NotContains(t, out, "2 SITES")
	assert.NotContains(t, out, "1 ERRORS")
	assert.Contains(t, out, "2 sites")
	assert.Contains(t, out, "1 errors")
}

func TestRenderJSON(t *testing.T) {
	results, summary := sampleResults()
	out, err := RenderJSON(results, summary)
	require.NoError(t, err)

	for _, field := range []string{
		`"url"`, `"status_code"`, `"status_healthy"`, `"response_time"`,
		`"final_url"`, `"ssl_checked"`, `"ssl_valid"`, `"ssl_expiry"`,
		`"ssl_days_until_expiry"`, `"total_sites"`, `"health_percentage"`,
	} {
		assert.True(t, strings.Contains(out, field), "missing %s in %s", field, out)
	}
}
