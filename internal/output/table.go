package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/hamed0406/sitehealth/internal/health"
)

// RenderTable renders check results and their summary as an ASCII table.
func RenderTable(results []health.CheckResult, summary health.SummaryStats) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	// StyleRounded upper-cases footers; the summary row should read as
	// written ("2 sites", not "2 SITES").
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"URL", "Status", "Healthy", "Time", "SSL", "Error"})

	for _, r := range results {
		t.AppendRow(table.Row{
			r.URL,
			statusCell(r),
			healthyCell(r.StatusHealthy),
			responseTimeCell(r),
			sslCell(r),
			errorCell(r),
		})
	}

	t.AppendFooter(table.Row{
		fmt.Sprintf("%d sites", summary.TotalSites),
		"",
		fmt.Sprintf("%.1f%%", summary.HealthPercentage),
		fmt.Sprintf("avg %.3fs", summary.AverageResponseTime),
		fmt.Sprintf("%d/%d valid", summary.SSLValidSites, summary.SSLSitesChecked),
		fmt.Sprintf("%d errors", summary.SitesWithErrors),
	})
	return t.Render()
}

func statusCell(r health.CheckResult) string {
	if r.StatusCode == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *r.StatusCode)
}

func healthyCell(healthy bool) string {
	if healthy {
		return "✔"
	}
	return "✖"
}

func responseTimeCell(r health.CheckResult) string {
	if r.ResponseTime == nil {
		return "-"
	}
	return fmt.Sprintf("%.3fs", *r.ResponseTime)
}

func sslCell(r health.CheckResult) string {
	if !r.SSLChecked {
		return "-"
	}
	if !r.SSLValid {
		return "invalid"
	}
	if r.SSLDaysUntilExpiry != nil {
		return fmt.Sprintf("valid (%dd)", *r.SSLDaysUntilExpiry)
	}
	return "valid"
}

func errorCell(r health.CheckResult) string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}
