// Package report assembles the denormalized view-model consumed by the
// preview and export renderers: assessment metadata, aggregate statistics,
// requirements grouped by standard, and attachments scraped from evidence
// text. Everything here is a pure function over its inputs; identical
// inputs always produce structurally identical output.
package report

import (
	"github.com/coolbeans/attest/pkg/assess"
	"github.com/coolbeans/attest/pkg/group"
	"github.com/coolbeans/attest/pkg/types"
)

// Format selects the downstream renderer a report is being built for. The
// processor computes the same view-model for every format; the value is
// carried so renderers can route on it.
type Format string

const (
	FormatPreview  Format = "preview"
	FormatPDF      Format = "pdf"
	FormatWord     Format = "word"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Options controls report building. ActiveStandardID filters the
// requirement and standard sets; the Include toggles affect only what the
// renderers draw, never what the processor computes.
type Options struct {
	ActiveStandardID string `json:"active_standard_id,omitempty"`
	Format           Format `json:"format"`

	IncludeHeader       bool `json:"include_header"`
	IncludeSummary      bool `json:"include_summary"`
	IncludeCharts       bool `json:"include_charts"`
	IncludeRequirements bool `json:"include_requirements"`
	IncludeAttachments  bool `json:"include_attachments"`
}

// DefaultOptions returns options with every section enabled and the
// preview format selected.
func DefaultOptions() Options {
	return Options{
		Format:              FormatPreview,
		IncludeHeader:       true,
		IncludeSummary:      true,
		IncludeCharts:       true,
		IncludeRequirements: true,
		IncludeAttachments:  true,
	}
}

// AssessmentReport is the unified view-model for one assessment: a pure
// function of (assessment, requirements, standards, options), recomputed
// on every input change and never persisted.
type AssessmentReport struct {
	Assessment types.Assessment `json:"assessment"`

	// Standards after the active-standard filter, in input order.
	Standards []types.Standard `json:"standards"`

	Stats       assess.Stats  `json:"stats"`
	Groups      []group.Group `json:"groups"`
	Attachments []Attachment  `json:"attachments"`

	Options Options `json:"options"`
}

// Build assembles the view-model: filter by the active standard, aggregate
// stats, group and sort, and scrape attachments. All fields are computed
// regardless of the section toggles.
func Build(assessment types.Assessment, requirements []types.Requirement, standards []types.Standard, opts Options) *AssessmentReport {
	filteredReqs := requirements
	filteredStds := standards
	if opts.ActiveStandardID != "" {
		filteredReqs = filterRequirements(requirements, opts.ActiveStandardID)
		filteredStds = filterStandards(standards, opts.ActiveStandardID)
	}

	return &AssessmentReport{
		Assessment:  assessment,
		Standards:   filteredStds,
		Stats:       assess.ComputeStats(filteredReqs),
		Groups:      group.GroupAndSort(filteredReqs, filteredStds, group.LegacyStandardNames()),
		Attachments: ParseAttachments(assessment.Evidence),
		Options:     opts,
	}
}

// Requirements returns the report's requirements flattened in grouped
// order, which is the row order every exporter uses.
func (r *AssessmentReport) Requirements() []types.Requirement {
	return group.Flatten(r.Groups)
}

func filterRequirements(requirements []types.Requirement, standardID string) []types.Requirement {
	filtered := make([]types.Requirement, 0, len(requirements))
	for _, req := range requirements {
		if req.StandardID == standardID {
			filtered = append(filtered, req)
		}
	}
	return filtered
}

func filterStandards(standards []types.Standard, standardID string) []types.Standard {
	filtered := make([]types.Standard, 0, 1)
	for _, standard := range standards {
		if standard.ID == standardID {
			filtered = append(filtered, standard)
		}
	}
	return filtered
}
