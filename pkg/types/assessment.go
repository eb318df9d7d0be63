// Package types defines the compliance domain model shared by the
// aggregation, grouping, reporting and export packages: requirements,
// standards and assessments.
package types

import "time"

// AssessmentStatus represents the lifecycle state of an assessment.
type AssessmentStatus string

const (
	// AssessmentDraft indicates the assessment has been created but work
	// has not started.
	AssessmentDraft AssessmentStatus = "draft"

	// AssessmentInProgress indicates requirements are being assessed.
	AssessmentInProgress AssessmentStatus = "in-progress"

	// AssessmentCompleted indicates all requirements have been assessed.
	AssessmentCompleted AssessmentStatus = "completed"
)

// Assessment is a compliance assessment of one or more standards. It is
// owned and mutated by the host application; this module reads it when
// building report view-models.
type Assessment struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Status      AssessmentStatus `json:"status" yaml:"status"`
	StandardIDs []string         `json:"standard_ids" yaml:"standard_ids"`
	Notes       string           `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Evidence is free text that may embed a pseudo-structured attached
	// files block; see the report package for how it is scraped.
	Evidence string `json:"evidence,omitempty" yaml:"evidence,omitempty"`

	// Progress is the last computed compliance score, 0-100.
	Progress int `json:"progress" yaml:"progress"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
