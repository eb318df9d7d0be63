package types

import "strings"

// RequirementStatus represents the assessed state of a single requirement.
type RequirementStatus string

const (
	// StatusFulfilled indicates the requirement is fully satisfied.
	StatusFulfilled RequirementStatus = "fulfilled"

	// StatusPartiallyFulfilled indicates the requirement is satisfied in part.
	StatusPartiallyFulfilled RequirementStatus = "partially-fulfilled"

	// StatusNotFulfilled indicates the requirement is not satisfied.
	StatusNotFulfilled RequirementStatus = "not-fulfilled"

	// StatusNotApplicable indicates the requirement does not apply to the
	// assessed organization and is excluded from scoring.
	StatusNotApplicable RequirementStatus = "not-applicable"
)

// ParseRequirementStatus normalizes a raw status string to one of the four
// known statuses. Unknown or empty values map to StatusNotFulfilled so that
// aggregation never fails on stale data from an evolving schema.
func ParseRequirementStatus(raw string) RequirementStatus {
	switch RequirementStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusFulfilled:
		return StatusFulfilled
	case StatusPartiallyFulfilled:
		return StatusPartiallyFulfilled
	case StatusNotApplicable:
		return StatusNotApplicable
	default:
		return StatusNotFulfilled
	}
}

// IsKnown reports whether the status is one of the four recognized values.
func (s RequirementStatus) IsKnown() bool {
	switch s {
	case StatusFulfilled, StatusPartiallyFulfilled, StatusNotFulfilled, StatusNotApplicable:
		return true
	}
	return false
}

// Requirement is a single compliance control assessed against a standard.
// Requirements are externally owned; this module only reads them.
type Requirement struct {
	ID          string            `json:"id" yaml:"id"`
	StandardID  string            `json:"standard_id" yaml:"standard_id"`
	Section     string            `json:"section" yaml:"section"`
	Code        string            `json:"code" yaml:"code"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Status      RequirementStatus `json:"status" yaml:"status"`
	Notes       string            `json:"notes,omitempty" yaml:"notes,omitempty"`
}
