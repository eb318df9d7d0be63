package export

import (
	"fmt"
	"strings"

	"github.com/coolbeans/attest/pkg/report"
	"github.com/coolbeans/attest/pkg/types"
)

// Markdown generates a Markdown-formatted assessment report suitable for
// GitHub/GitLab rendering and documentation. Sections follow the report's
// include toggles.
func Markdown(assessmentReport *report.AssessmentReport) string {
	var markdownBuilder strings.Builder
	opts := assessmentReport.Options

	if opts.IncludeHeader {
		markdownBuilder.WriteString(fmt.Sprintf("# Compliance Assessment Report: %s\n\n",
			assessmentReport.Assessment.Name))

		markdownBuilder.WriteString("| Field | Value |\n")
		markdownBuilder.WriteString("|-------|-------|\n")
		markdownBuilder.WriteString(fmt.Sprintf("| **Status** | %s |\n", assessmentReport.Assessment.Status))
		if assessmentReport.Assessment.Description != "" {
			markdownBuilder.WriteString(fmt.Sprintf("| **Description** | %s |\n",
				escapeMarkdownTableCell(assessmentReport.Assessment.Description)))
		}
		standardLabels := make([]string, len(assessmentReport.Standards))
		for i, standard := range assessmentReport.Standards {
			standardLabels[i] = standard.DisplayName()
		}
		if len(standardLabels) > 0 {
			markdownBuilder.WriteString(fmt.Sprintf("| **Standards** | %s |\n",
				escapeMarkdownTableCell(strings.Join(standardLabels, ", "))))
		}
		markdownBuilder.WriteString("\n")
	}

	if opts.IncludeSummary {
		stats := assessmentReport.Stats
		markdownBuilder.WriteString("## Summary\n\n")
		markdownBuilder.WriteString("| Metric | Value |\n")
		markdownBuilder.WriteString("|--------|-------|\n")
		markdownBuilder.WriteString(fmt.Sprintf("| **Compliance Score** | %d%% |\n", stats.ComplianceScore))
		markdownBuilder.WriteString(fmt.Sprintf("| Total Requirements | %d |\n", stats.TotalRequirements))
		markdownBuilder.WriteString(fmt.Sprintf("| Fulfilled | %d |\n", stats.Fulfilled))
		markdownBuilder.WriteString(fmt.Sprintf("| Partially Fulfilled | %d |\n", stats.PartiallyFulfilled))
		markdownBuilder.WriteString(fmt.Sprintf("| Not Fulfilled | %d |\n", stats.NotFulfilled))
		markdownBuilder.WriteString(fmt.Sprintf("| Not Applicable | %d |\n", stats.NotApplicable))
		markdownBuilder.WriteString("\n")
	}

	if opts.IncludeCharts {
		markdownBuilder.WriteString("## Status Distribution\n\n")
		markdownBuilder.WriteString("```\n")
		markdownBuilder.WriteString(statusBarChart(assessmentReport))
		markdownBuilder.WriteString("```\n\n")
	}

	if opts.IncludeRequirements {
		for _, requirementGroup := range assessmentReport.Groups {
			markdownBuilder.WriteString(fmt.Sprintf("## %s\n\n", requirementGroup.Label))
			markdownBuilder.WriteString("| Code | Name | Status | Notes |\n")
			markdownBuilder.WriteString("|------|------|--------|-------|\n")
			for _, req := range requirementGroup.Requirements {
				markdownBuilder.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
					escapeMarkdownTableCell(req.Code),
					escapeMarkdownTableCell(req.Name),
					statusToMarkdownBadge(req.Status),
					escapeMarkdownTableCell(req.Notes)))
			}
			markdownBuilder.WriteString("\n")
		}
	}

	if opts.IncludeAttachments && len(assessmentReport.Attachments) > 0 {
		markdownBuilder.WriteString("## Attached Evidence\n\n")
		for _, attachment := range assessmentReport.Attachments {
			line := fmt.Sprintf("- **%s**", attachment.Filename)
			if attachment.Size != "" {
				line += fmt.Sprintf(" (%s)", attachment.Size)
			}
			if attachment.Description != "" {
				line += fmt.Sprintf(": %s", attachment.Description)
			}
			markdownBuilder.WriteString(line + "\n")
		}
		markdownBuilder.WriteString("\n")
	}

	return markdownBuilder.String()
}

// statusBarChart renders a fixed-width text bar per status bucket.
func statusBarChart(assessmentReport *report.AssessmentReport) string {
	stats := assessmentReport.Stats
	var chartBuilder strings.Builder

	rows := []struct {
		label string
		count int
	}{
		{"Fulfilled", stats.Fulfilled},
		{"Partial", stats.PartiallyFulfilled},
		{"Not fulfilled", stats.NotFulfilled},
		{"N/A", stats.NotApplicable},
	}

	const barWidth = 40
	for _, row := range rows {
		bar := ""
		if stats.TotalRequirements > 0 {
			bar = strings.Repeat("#", row.count*barWidth/stats.TotalRequirements)
		}
		chartBuilder.WriteString(fmt.Sprintf("%-14s %-*s %d\n", row.label, barWidth, bar, row.count))
	}

	return chartBuilder.String()
}

// statusToMarkdownBadge converts a RequirementStatus to a text badge.
func statusToMarkdownBadge(status types.RequirementStatus) string {
	switch status {
	case types.StatusFulfilled:
		return "`FULFILLED`"
	case types.StatusPartiallyFulfilled:
		return "`PARTIAL`"
	case types.StatusNotApplicable:
		return "`N/A`"
	default:
		// Unknown statuses render the way they count: not fulfilled.
		return "`NOT FULFILLED`"
	}
}

// escapeMarkdownTableCell escapes pipe characters in table cell content.
func escapeMarkdownTableCell(content string) string {
	return strings.ReplaceAll(strings.ReplaceAll(content, "\n", " "), "|", "\\|")
}
