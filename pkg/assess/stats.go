// Package assess computes aggregate statistics for a set of assessed
// requirements: per-status counts and a weighted compliance score.
package assess

import (
	"fmt"
	"math"
	"strings"

	"github.com/coolbeans/attest/pkg/types"
)

// Stats holds per-status counts and the weighted compliance score for a
// requirement set.
type Stats struct {
	TotalRequirements  int `json:"total_requirements"`
	Fulfilled          int `json:"fulfilled"`
	PartiallyFulfilled int `json:"partially_fulfilled"`
	NotFulfilled       int `json:"not_fulfilled"`
	NotApplicable      int `json:"not_applicable"`

	// ComplianceScore is the weighted percentage of requirements satisfied,
	// with partial credit at 50%. Not-applicable requirements are excluded
	// from both numerator and denominator. Always within [0, 100].
	ComplianceScore int `json:"compliance_score"`
}

// ComputeStats derives counts and the compliance score from a list of
// requirements in a single pass. Statuses outside the four known values
// are counted as not-fulfilled rather than rejected, so aggregation never
// fails on stale data. An empty input yields all-zero stats.
func ComputeStats(requirements []types.Requirement) Stats {
	var stats Stats
	stats.TotalRequirements = len(requirements)

	for _, req := range requirements {
		switch req.Status {
		case types.StatusFulfilled:
			stats.Fulfilled++
		case types.StatusPartiallyFulfilled:
			stats.PartiallyFulfilled++
		case types.StatusNotApplicable:
			stats.NotApplicable++
		default:
			stats.NotFulfilled++
		}
	}

	stats.ComplianceScore = complianceScore(stats)
	return stats
}

// complianceScore computes round((fulfilled + 0.5*partial) / (total - n/a) * 100).
// A zero denominator (empty input or all not-applicable) yields 0.
func complianceScore(stats Stats) int {
	denominator := stats.TotalRequirements - stats.NotApplicable
	if denominator <= 0 {
		return 0
	}
	weighted := float64(stats.Fulfilled) + 0.5*float64(stats.PartiallyFulfilled)
	return int(math.Round(weighted / float64(denominator) * 100))
}

// String returns a human-readable summary of the stats.
func (s Stats) String() string {
	var sb strings.Builder

	sb.WriteString("Assessment Statistics\n")
	sb.WriteString("=====================\n")
	sb.WriteString(fmt.Sprintf("  Total requirements: %d\n", s.TotalRequirements))
	sb.WriteString(fmt.Sprintf("  Fulfilled: %d\n", s.Fulfilled))
	sb.WriteString(fmt.Sprintf("  Partially fulfilled: %d\n", s.PartiallyFulfilled))
	sb.WriteString(fmt.Sprintf("  Not fulfilled: %d\n", s.NotFulfilled))
	sb.WriteString(fmt.Sprintf("  Not applicable: %d\n", s.NotApplicable))
	sb.WriteString(fmt.Sprintf("  Compliance score: %d%%\n", s.ComplianceScore))

	return sb.String()
}
