// Package group organizes assessed requirements by their owning standard
// for display and export: stable group ordering, resolved display labels
// (with a legacy fallback for pre-migration standard IDs) and a
// numeric-aware sort within each group.
package group

import (
	"fmt"
	"sort"

	"github.com/coolbeans/attest/pkg/types"
)

// Group is an ordered set of requirements belonging to one standard.
type Group struct {
	StandardID   string              `json:"standard_id"`
	Label        string              `json:"label"`
	Requirements []types.Requirement `json:"requirements"`
}

// GroupAndSort groups requirements by their owning standard and sorts each
// group by section, then code (name when the code is empty), using
// numeric-aware comparison. Groups appear in order of first appearance in
// the input; groups with no requirements are never emitted. Inputs are not
// mutated, and the flattened output is a permutation of the input.
//
// Labels resolve through the standards lookup first, then the legacy table,
// then a synthesized "Unknown Standard" label carrying an ID prefix.
func GroupAndSort(requirements []types.Requirement, standards []types.Standard, legacy map[string]string) []Group {
	standardsByID := make(map[string]types.Standard, len(standards))
	for _, standard := range standards {
		standardsByID[standard.ID] = standard
	}

	groupIndex := make(map[string]int)
	groups := make([]Group, 0)

	for _, req := range requirements {
		idx, ok := groupIndex[req.StandardID]
		if !ok {
			idx = len(groups)
			groupIndex[req.StandardID] = idx
			groups = append(groups, Group{
				StandardID: req.StandardID,
				Label:      ResolveLabel(req.StandardID, standardsByID, legacy),
			})
		}
		groups[idx].Requirements = append(groups[idx].Requirements, req)
	}

	for i := range groups {
		sortRequirements(groups[i].Requirements)
	}

	return groups
}

// ResolveLabel resolves a standard ID to a display label: the standards
// lookup first, then the legacy UUID table, then a synthesized fallback.
// Unknown IDs never produce an error; stale and migrated data must still
// group cleanly.
func ResolveLabel(standardID string, standardsByID map[string]types.Standard, legacy map[string]string) string {
	if standard, ok := standardsByID[standardID]; ok {
		return standard.DisplayName()
	}
	if name, ok := legacy[standardID]; ok {
		return name
	}
	prefix := standardID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("Unknown Standard (%s...)", prefix)
}

// Flatten concatenates all group members in group order.
func Flatten(groups []Group) []types.Requirement {
	flattened := make([]types.Requirement, 0)
	for _, g := range groups {
		flattened = append(flattened, g.Requirements...)
	}
	return flattened
}

// sortRequirements orders a group in place: primary key section
// (lexicographic), secondary key code, falling back to name when the code
// is empty; codes compare numeric-aware so "A.2" precedes "A.10".
func sortRequirements(requirements []types.Requirement) {
	sort.SliceStable(requirements, func(i, j int) bool {
		if requirements[i].Section != requirements[j].Section {
			return requirements[i].Section < requirements[j].Section
		}
		return compareNatural(sortKey(requirements[i]), sortKey(requirements[j])) < 0
	})
}

func sortKey(req types.Requirement) string {
	if req.Code != "" {
		return req.Code
	}
	return req.Name
}
