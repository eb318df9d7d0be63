package group

import (
	"testing"

	"github.com/coolbeans/attest/pkg/types"
)

func sampleStandards() []types.Standard {
	return []types.Standard{
		{ID: "std-iso", Name: "ISO/IEC 27001", Version: "2022", Category: "Information Security"},
		{ID: "std-cis", Name: "CIS Controls", Version: "v8", Category: "Cyber Hygiene"},
	}
}

func TestGroupAndSortGroupsByStandard(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "std-iso", Section: "A.5", Code: "A.5.1"},
		{ID: "r2", StandardID: "std-cis", Section: "1", Code: "1.1"},
		{ID: "r3", StandardID: "std-iso", Section: "A.5", Code: "A.5.2"},
	}

	groups := GroupAndSort(requirements, sampleStandards(), LegacyStandardNames())

	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].Label != "ISO/IEC 27001 2022" {
		t.Errorf("Expected resolved label for first group, got %q", groups[0].Label)
	}
	if len(groups[0].Requirements) != 2 {
		t.Errorf("Expected 2 requirements in ISO group, got %d", len(groups[0].Requirements))
	}
	if groups[1].Label != "CIS Controls v8" {
		t.Errorf("Expected resolved label for second group, got %q", groups[1].Label)
	}
}

func TestGroupAndSortNumericAwareCodeOrder(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "std-iso", Section: "A", Code: "A.10"},
		{ID: "r2", StandardID: "std-iso", Section: "A", Code: "A.2"},
		{ID: "r3", StandardID: "std-iso", Section: "A", Code: "A.1"},
	}

	groups := GroupAndSort(requirements, sampleStandards(), nil)

	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	codes := make([]string, len(groups[0].Requirements))
	for i, req := range groups[0].Requirements {
		codes[i] = req.Code
	}
	expected := []string{"A.1", "A.2", "A.10"}
	for i := range expected {
		if codes[i] != expected[i] {
			t.Errorf("Position %d: expected %q, got %q (order %v)", i, expected[i], codes[i], codes)
		}
	}
}

func TestGroupAndSortSectionBeforeCode(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "std-iso", Section: "B", Code: "A.1"},
		{ID: "r2", StandardID: "std-iso", Section: "A", Code: "Z.9"},
	}

	groups := GroupAndSort(requirements, sampleStandards(), nil)

	if groups[0].Requirements[0].ID != "r2" {
		t.Errorf("Expected section to take precedence over code, got %q first",
			groups[0].Requirements[0].ID)
	}
}

func TestGroupAndSortNameFallbackWhenCodeEmpty(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "std-iso", Section: "A", Name: "Zoning"},
		{ID: "r2", StandardID: "std-iso", Section: "A", Name: "Access control"},
	}

	groups := GroupAndSort(requirements, sampleStandards(), nil)

	if groups[0].Requirements[0].ID != "r2" {
		t.Errorf("Expected name-based ordering when codes are empty, got %q first",
			groups[0].Requirements[0].ID)
	}
}

func TestGroupAndSortLegacyFallback(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "55742f4e-769b-4efe-912c-1371de5e1cd6", Section: "A.5", Code: "A.5.1"},
	}

	groups := GroupAndSort(requirements, nil, LegacyStandardNames())

	if groups[0].Label != "ISO/IEC 27001 2022" {
		t.Errorf("Expected legacy label, got %q", groups[0].Label)
	}
}

func TestGroupAndSortUnknownStandardLabel(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "deadbeef-0000-4000-8000-000000000000", Section: "1", Code: "1.1"},
	}

	groups := GroupAndSort(requirements, sampleStandards(), LegacyStandardNames())

	expected := "Unknown Standard (deadbeef...)"
	if groups[0].Label != expected {
		t.Errorf("Expected %q, got %q", expected, groups[0].Label)
	}
}

func TestGroupAndSortShortUnknownID(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "abc", Section: "1", Code: "1.1"},
	}

	groups := GroupAndSort(requirements, nil, nil)

	expected := "Unknown Standard (abc...)"
	if groups[0].Label != expected {
		t.Errorf("Expected %q, got %q", expected, groups[0].Label)
	}
}

func TestGroupAndSortOmitsEmptyGroupsAndPreservesAll(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "std-cis", Section: "2", Code: "2.1"},
		{ID: "r2", StandardID: "std-iso", Section: "A.8", Code: "A.8.1"},
		{ID: "r3", StandardID: "std-cis", Section: "1", Code: "1.3"},
		{ID: "r4", StandardID: "std-cis", Section: "1", Code: "1.10"},
	}

	// Two standards registered, but only requirements for these two appear;
	// no empty group may be emitted for anything else.
	groups := GroupAndSort(requirements, sampleStandards(), nil)
	for _, g := range groups {
		if len(g.Requirements) == 0 {
			t.Errorf("Emitted empty group for %q", g.StandardID)
		}
	}

	// Flattened output is a permutation of the input.
	flattened := Flatten(groups)
	if len(flattened) != len(requirements) {
		t.Fatalf("Expected %d requirements after flatten, got %d", len(requirements), len(flattened))
	}
	seen := make(map[string]int)
	for _, req := range flattened {
		seen[req.ID]++
	}
	for _, req := range requirements {
		if seen[req.ID] != 1 {
			t.Errorf("Requirement %q appears %d times in flattened output", req.ID, seen[req.ID])
		}
	}
}

func TestGroupAndSortDoesNotMutateInput(t *testing.T) {
	requirements := []types.Requirement{
		{ID: "r1", StandardID: "std-iso", Section: "B", Code: "B.2"},
		{ID: "r2", StandardID: "std-iso", Section: "A", Code: "A.1"},
	}

	GroupAndSort(requirements, sampleStandards(), nil)

	if requirements[0].ID != "r1" || requirements[1].ID != "r2" {
		t.Errorf("Input slice order was mutated: %q, %q", requirements[0].ID, requirements[1].ID)
	}
}

func TestCompareNatural(t *testing.T) {
	cases := []struct {
		a, b     string
		expected int
	}{
		{"A.2", "A.10", -1},
		{"A.10", "A.2", 1},
		{"A.2", "A.2", 0},
		{"1.9", "1.10", -1},
		{"5.1.10", "5.1.9", 1},
		{"", "A", -1},
		{"A", "", 1},
		{"007", "7", 0},
		{"A.2a", "A.2b", -1},
		{"B.1", "A.9", 1},
	}

	for _, tc := range cases {
		if got := compareNatural(tc.a, tc.b); got != tc.expected {
			t.Errorf("compareNatural(%q, %q) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}
