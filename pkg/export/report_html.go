package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/coolbeans/attest/pkg/report"
	"github.com/coolbeans/attest/pkg/types"
)

// HTML generates a self-contained HTML assessment report with inline CSS.
// Sections follow the report's include toggles.
func HTML(assessmentReport *report.AssessmentReport) string {
	var htmlBuilder strings.Builder
	opts := assessmentReport.Options

	htmlBuilder.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	htmlBuilder.WriteString("<meta charset=\"UTF-8\">\n")
	htmlBuilder.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	htmlBuilder.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(assessmentReport.Assessment.Name)))
	htmlBuilder.WriteString(reportHTMLStyles())
	htmlBuilder.WriteString("</head>\n<body>\n<div class=\"container\">\n")

	if opts.IncludeHeader {
		htmlBuilder.WriteString("<div class=\"header\">\n")
		htmlBuilder.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(assessmentReport.Assessment.Name)))
		htmlBuilder.WriteString(fmt.Sprintf("<span class=\"badge\">%s</span>\n",
			html.EscapeString(string(assessmentReport.Assessment.Status))))
		for _, standard := range assessmentReport.Standards {
			htmlBuilder.WriteString(fmt.Sprintf("<span class=\"badge\">%s</span>\n",
				html.EscapeString(standard.DisplayName())))
		}
		htmlBuilder.WriteString("</div>\n")

		if assessmentReport.Assessment.Description != "" {
			htmlBuilder.WriteString(fmt.Sprintf("<p class=\"description\">%s</p>\n",
				html.EscapeString(assessmentReport.Assessment.Description)))
		}
	}

	if opts.IncludeSummary {
		stats := assessmentReport.Stats
		htmlBuilder.WriteString("<div class=\"score-section\">\n")
		htmlBuilder.WriteString("<h2>Compliance Score</h2>\n")
		htmlBuilder.WriteString(fmt.Sprintf("<div class=\"score-value\">%d%%</div>\n", stats.ComplianceScore))
		htmlBuilder.WriteString("<div class=\"score-bar-container\">\n")
		htmlBuilder.WriteString(fmt.Sprintf(
			"<div class=\"score-bar\" style=\"width:%d%%;background-color:%s\"></div>\n",
			stats.ComplianceScore, scoreToHTMLColor(stats.ComplianceScore)))
		htmlBuilder.WriteString("</div>\n")
		htmlBuilder.WriteString(fmt.Sprintf(
			"<p class=\"score-detail\">%d requirements: %d fulfilled, %d partial, %d not fulfilled, %d not applicable</p>\n",
			stats.TotalRequirements, stats.Fulfilled, stats.PartiallyFulfilled,
			stats.NotFulfilled, stats.NotApplicable))
		htmlBuilder.WriteString("</div>\n")
	}

	if opts.IncludeCharts {
		htmlBuilder.WriteString("<div class=\"section\">\n<h2>Status Distribution</h2>\n")
		writeStatusBars(&htmlBuilder, assessmentReport)
		htmlBuilder.WriteString("</div>\n")
	}

	if opts.IncludeRequirements {
		for _, requirementGroup := range assessmentReport.Groups {
			htmlBuilder.WriteString("<div class=\"section\">\n")
			htmlBuilder.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(requirementGroup.Label)))
			htmlBuilder.WriteString("<table>\n<tr><th>Code</th><th>Name</th><th>Status</th><th>Notes</th></tr>\n")
			for _, req := range requirementGroup.Requirements {
				htmlBuilder.WriteString(fmt.Sprintf(
					"<tr><td>%s</td><td>%s</td><td><span class=\"status-pill\" style=\"background-color:%s\">%s</span></td><td>%s</td></tr>\n",
					html.EscapeString(req.Code),
					html.EscapeString(req.Name),
					statusToHTMLColor(req.Status),
					html.EscapeString(string(req.Status)),
					html.EscapeString(req.Notes)))
			}
			htmlBuilder.WriteString("</table>\n</div>\n")
		}
	}

	if opts.IncludeAttachments && len(assessmentReport.Attachments) > 0 {
		htmlBuilder.WriteString("<div class=\"section\">\n<h2>Attached Evidence</h2>\n<ul>\n")
		for _, attachment := range assessmentReport.Attachments {
			entry := html.EscapeString(attachment.Filename)
			if attachment.Size != "" {
				entry += fmt.Sprintf(" <span class=\"attachment-size\">(%s)</span>", html.EscapeString(attachment.Size))
			}
			if attachment.Description != "" {
				entry += " " + html.EscapeString(attachment.Description)
			}
			htmlBuilder.WriteString(fmt.Sprintf("<li>%s</li>\n", entry))
		}
		htmlBuilder.WriteString("</ul>\n</div>\n")
	}

	htmlBuilder.WriteString("</div>\n</body>\n</html>\n")
	return htmlBuilder.String()
}

// writeStatusBars emits one labeled bar per status bucket.
func writeStatusBars(htmlBuilder *strings.Builder, assessmentReport *report.AssessmentReport) {
	stats := assessmentReport.Stats
	rows := []struct {
		label string
		count int
		color string
	}{
		{"Fulfilled", stats.Fulfilled, "#4caf50"},
		{"Partial", stats.PartiallyFulfilled, "#ff9800"},
		{"Not fulfilled", stats.NotFulfilled, "#f44336"},
		{"N/A", stats.NotApplicable, "#9e9e9e"},
	}

	for _, row := range rows {
		percent := 0
		if stats.TotalRequirements > 0 {
			percent = row.count * 100 / stats.TotalRequirements
		}
		htmlBuilder.WriteString("<div class=\"component-row\">\n")
		htmlBuilder.WriteString(fmt.Sprintf("<span class=\"component-name\">%s</span>\n", row.label))
		htmlBuilder.WriteString("<div class=\"component-bar-container\">")
		htmlBuilder.WriteString(fmt.Sprintf(
			"<div class=\"component-bar\" style=\"width:%d%%;background-color:%s\"></div>", percent, row.color))
		htmlBuilder.WriteString("</div>\n")
		htmlBuilder.WriteString(fmt.Sprintf("<span class=\"component-score\">%d</span>\n", row.count))
		htmlBuilder.WriteString("</div>\n")
	}
}

// statusToHTMLColor maps a requirement status to its display color.
func statusToHTMLColor(status types.RequirementStatus) string {
	switch status {
	case types.StatusFulfilled:
		return "#4caf50"
	case types.StatusPartiallyFulfilled:
		return "#ff9800"
	case types.StatusNotApplicable:
		return "#9e9e9e"
	default:
		return "#f44336"
	}
}

// scoreToHTMLColor maps a compliance score to a traffic-light color.
func scoreToHTMLColor(score int) string {
	switch {
	case score >= 80:
		return "#4caf50"
	case score >= 50:
		return "#ff9800"
	default:
		return "#f44336"
	}
}

// reportHTMLStyles returns the inline stylesheet for HTML reports.
func reportHTMLStyles() string {
	return `<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #f5f5f5; color: #333; line-height: 1.6; }
.container { max-width: 900px; margin: 20px auto; padding: 20px; }
.header { display: flex; align-items: center; gap: 12px; margin-bottom: 16px; flex-wrap: wrap; }
.header h1 { font-size: 24px; }
.badge { background: #e3f2fd; color: #1565c0; padding: 4px 12px; border-radius: 4px; font-size: 14px; font-weight: 600; }
.description { color: #616161; margin-bottom: 24px; }
.score-section { background: white; border-radius: 8px; padding: 20px; margin-bottom: 20px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
.score-value { font-size: 36px; font-weight: 700; margin-bottom: 8px; }
.score-bar-container { background: #e0e0e0; border-radius: 4px; height: 12px; overflow: hidden; margin-bottom: 8px; }
.score-bar { height: 100%; border-radius: 4px; }
.score-detail { color: #757575; font-size: 14px; }
.section { background: white; border-radius: 8px; padding: 20px; margin-bottom: 20px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
.section h2 { font-size: 18px; margin-bottom: 16px; }
.component-row { display: flex; align-items: center; gap: 8px; margin-bottom: 8px; }
.component-name { width: 120px; font-weight: 600; font-size: 14px; }
.component-bar-container { flex: 1; background: #e0e0e0; border-radius: 4px; height: 8px; overflow: hidden; }
.component-bar { height: 100%; border-radius: 4px; }
.component-score { width: 50px; text-align: right; font-size: 14px; font-weight: 600; }
table { width: 100%; border-collapse: collapse; margin: 12px 0; }
th, td { padding: 8px 12px; text-align: left; border-bottom: 1px solid #e0e0e0; }
th { background: #fafafa; font-weight: 600; font-size: 13px; text-transform: uppercase; color: #757575; }
td { font-size: 14px; }
.status-pill { color: white; padding: 2px 8px; border-radius: 10px; font-size: 12px; font-weight: 600; white-space: nowrap; }
.attachment-size { color: #757575; font-size: 13px; }
</style>
`
}
