package library

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/attest/pkg/types"
)

// AssessmentFile is the on-disk representation of one assessment: the
// assessment record plus per-requirement results keyed by requirement ID.
type AssessmentFile struct {
	Assessment types.Assessment `yaml:"assessment"`
	Results    []ResultEntry    `yaml:"results"`
}

// ResultEntry records the assessed status of a single requirement.
type ResultEntry struct {
	RequirementID string `yaml:"requirement_id"`
	Status        string `yaml:"status"`
	Notes         string `yaml:"notes,omitempty"`
}

// NewAssessment creates a draft assessment for the given standards.
func NewAssessment(name string, standardIDs []string) types.Assessment {
	now := time.Now().UTC()
	return types.Assessment{
		ID:          uuid.NewString(),
		Name:        name,
		Status:      types.AssessmentDraft,
		StandardIDs: standardIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// LoadAssessment reads an assessment file and resolves its inputs against
// the library: the requirement catalogs for the assessment's standards with
// the recorded results applied, and the standards that were found. Unknown
// standard IDs and unknown requirement IDs are tolerated; downstream
// grouping resolves labels for them.
func LoadAssessment(path string, lib *Library) (types.Assessment, []types.Requirement, []types.Standard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Assessment{}, nil, nil, fmt.Errorf("failed to read assessment: %w", err)
	}

	file := &AssessmentFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return types.Assessment{}, nil, nil, fmt.Errorf("failed to parse assessment: %w", err)
	}

	standards := make([]types.Standard, 0, len(file.Assessment.StandardIDs))
	for _, standardID := range file.Assessment.StandardIDs {
		if standard, ok := lib.GetStandard(standardID); ok {
			standards = append(standards, standard)
		}
	}

	requirements := lib.Requirements(file.Assessment.StandardIDs...)

	resultsByID := make(map[string]ResultEntry, len(file.Results))
	for _, result := range file.Results {
		resultsByID[result.RequirementID] = result
	}
	for i := range requirements {
		result, ok := resultsByID[requirements[i].ID]
		if !ok {
			continue
		}
		requirements[i].Status = types.ParseRequirementStatus(result.Status)
		if result.Notes != "" {
			requirements[i].Notes = result.Notes
		}
	}

	return file.Assessment, requirements, standards, nil
}

// SaveAssessment writes an assessment file, refreshing its updated-at
// timestamp.
func SaveAssessment(path string, file *AssessmentFile) error {
	file.Assessment.UpdatedAt = time.Now().UTC()
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write assessment: %w", err)
	}
	return nil
}
