package export

import (
	"encoding/json"

	"github.com/coolbeans/attest/pkg/report"
)

// JSON serializes the full view-model as indented JSON for machine
// consumption. Unlike the document renderers, JSON carries every computed
// field regardless of the section toggles.
func JSON(assessmentReport *report.AssessmentReport) ([]byte, error) {
	return json.MarshalIndent(assessmentReport, "", "  ")
}
