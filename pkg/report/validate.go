package report

import (
	"strings"

	"github.com/coolbeans/attest/pkg/types"
)

// ValidationResult reports whether report inputs are complete enough to
// export. It is a structured result, never an error: the caller decides
// whether to block the operation.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks report inputs for the conditions that make an export
// meaningless: a missing assessment name, no standards, and no
// requirements. It never fails; every problem is reported as an entry in
// Errors.
func Validate(assessment types.Assessment, requirements []types.Requirement, standards []types.Standard) ValidationResult {
	result := ValidationResult{Errors: make([]string, 0)}

	if strings.TrimSpace(assessment.Name) == "" {
		result.Errors = append(result.Errors, "assessment has no name")
	}
	if len(standards) == 0 {
		result.Errors = append(result.Errors, "assessment has no standards")
	}
	if len(requirements) == 0 {
		result.Errors = append(result.Errors, "assessment has no requirements")
	}

	result.Valid = len(result.Errors) == 0
	return result
}
