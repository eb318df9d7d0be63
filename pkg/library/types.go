package library

import (
	"fmt"
	"time"

	"github.com/coolbeans/attest/pkg/types"
)

// Manifest is the top-level index of all standards in a library.
type Manifest struct {
	Version   string           `json:"version"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Standards []*StandardEntry `json:"standards"`
}

// StandardEntry is the manifest record for one stored standard.
type StandardEntry struct {
	Standard         types.Standard `json:"standard"`
	SourceFile       string         `json:"source_file"`
	RequirementCount int            `json:"requirement_count"`
	AddedAt          time.Time      `json:"added_at"`
}

// StandardDefinition is the content of one standard definition file: the
// standard's metadata plus its requirement catalog. Catalog requirements
// carry no status; statuses belong to assessments.
type StandardDefinition struct {
	Standard     types.Standard      `yaml:"standard" json:"standard"`
	Requirements []types.Requirement `yaml:"requirements" json:"requirements"`
}

// Validate checks a definition for the fields the library depends on.
func (d *StandardDefinition) Validate() error {
	if d.Standard.ID == "" {
		return fmt.Errorf("standard.id is required")
	}
	if d.Standard.Name == "" {
		return fmt.Errorf("standard.name is required")
	}
	for i, req := range d.Requirements {
		if req.ID == "" {
			return fmt.Errorf("requirements[%d]: id is required", i)
		}
		if req.Code == "" && req.Name == "" {
			return fmt.Errorf("requirements[%d]: code or name is required", i)
		}
	}
	return nil
}
