// Package export renders assessment report view-models into the document
// formats this module owns end to end: CSV, Markdown, HTML and JSON.
// Renderers are pure formatting functions over a built view-model; they
// honor the report's section toggles but never recompute anything.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/coolbeans/attest/pkg/report"
)

// csvHeader is the fixed column set of the CSV export.
var csvHeader = []string{"Code", "Name", "Description", "Status", "Notes", "Evidence"}

// WriteCSV writes the report as RFC 4180 CSV: one header row, then one row
// per requirement in the grouped order the view-model produced. The
// Evidence column is assessment-level and intentionally left empty on
// requirement rows.
func WriteCSV(w io.Writer, assessmentReport *report.AssessmentReport) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, req := range assessmentReport.Requirements() {
		row := []string{req.Code, req.Name, req.Description, string(req.Status), req.Notes, ""}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", req.ID, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// CSV renders the report to a CSV string.
func CSV(assessmentReport *report.AssessmentReport) (string, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, assessmentReport); err != nil {
		return "", err
	}
	return sb.String(), nil
}
