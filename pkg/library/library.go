// Package library manages a persistent collection of compliance standards
// and their requirement catalogs: a JSON manifest indexing YAML definition
// files, plus a registry that hot-reloads definitions when the directory
// changes.
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/attest/pkg/types"
)

const (
	manifestFileName = "library.json"
	standardsDirName = "standards"
	manifestVersion  = "1.0.0"
)

// Library manages a persistent collection of standard definitions.
type Library struct {
	mu          sync.RWMutex
	path        string
	manifest    *Manifest
	definitions map[string]*StandardDefinition
}

// Init creates a new library at the given path.
func Init(libraryPath string) (*Library, error) {
	if err := os.MkdirAll(filepath.Join(libraryPath, standardsDirName), 0755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	lib := &Library{
		path: libraryPath,
		manifest: &Manifest{
			Version:   manifestVersion,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
			Standards: []*StandardEntry{},
		},
		definitions: make(map[string]*StandardDefinition),
	}

	if err := lib.saveManifest(); err != nil {
		return nil, fmt.Errorf("failed to save manifest: %w", err)
	}

	return lib, nil
}

// Open loads an existing library and all its standard definitions.
func Open(libraryPath string) (*Library, error) {
	data, err := os.ReadFile(filepath.Join(libraryPath, manifestFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read library manifest: %w", err)
	}

	manifest := &Manifest{}
	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("failed to parse library manifest: %w", err)
	}

	lib := &Library{
		path:        libraryPath,
		manifest:    manifest,
		definitions: make(map[string]*StandardDefinition),
	}

	for _, entry := range manifest.Standards {
		definition, err := LoadDefinitionFile(filepath.Join(libraryPath, entry.SourceFile))
		if err != nil {
			return nil, fmt.Errorf("standard %s: %w", entry.Standard.ID, err)
		}
		lib.definitions[definition.Standard.ID] = definition
	}

	return lib, nil
}

// LoadDefinitionFile reads and validates a single YAML standard definition.
func LoadDefinitionFile(path string) (*StandardDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	definition := &StandardDefinition{}
	if err := yaml.Unmarshal(data, definition); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if err := definition.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	// Catalog requirements inherit the standard's ID when it is omitted in
	// the file, and always start unassessed.
	for i := range definition.Requirements {
		if definition.Requirements[i].StandardID == "" {
			definition.Requirements[i].StandardID = definition.Standard.ID
		}
		definition.Requirements[i].Status = types.StatusNotFulfilled
	}

	return definition, nil
}

// AddStandard stores a definition as a YAML file and records it in the
// manifest, replacing any previous definition with the same ID.
func (lib *Library) AddStandard(definition *StandardDefinition) error {
	if definition == nil {
		return fmt.Errorf("definition cannot be nil")
	}
	if err := definition.Validate(); err != nil {
		return fmt.Errorf("invalid definition: %w", err)
	}

	data, err := yaml.Marshal(definition)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	sourceFile := filepath.Join(standardsDirName, definition.Standard.ID+".yaml")
	if err := os.WriteFile(filepath.Join(lib.path, sourceFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write definition: %w", err)
	}

	lib.mu.Lock()
	defer lib.mu.Unlock()

	lib.definitions[definition.Standard.ID] = definition
	lib.upsertEntry(&StandardEntry{
		Standard:         definition.Standard,
		SourceFile:       sourceFile,
		RequirementCount: len(definition.Requirements),
		AddedAt:          time.Now().UTC(),
	})

	return lib.saveManifest()
}

// RemoveStandard deletes a standard's definition file and manifest entry.
func (lib *Library) RemoveStandard(standardID string) error {
	lib.mu.Lock()
	defer lib.mu.Unlock()

	entry := lib.findEntryUnsafe(standardID)
	if entry == nil {
		return fmt.Errorf("standard %q not found", standardID)
	}

	if err := os.Remove(filepath.Join(lib.path, entry.SourceFile)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove definition file: %w", err)
	}

	delete(lib.definitions, standardID)
	lib.removeEntry(standardID)
	return lib.saveManifest()
}

// GetStandard returns the standard with the given ID, if present.
func (lib *Library) GetStandard(standardID string) (types.Standard, bool) {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	definition, ok := lib.definitions[standardID]
	if !ok {
		return types.Standard{}, false
	}
	return definition.Standard, true
}

// Standards returns all standards in the library, sorted by name.
func (lib *Library) Standards() []types.Standard {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	standards := make([]types.Standard, 0, len(lib.definitions))
	for _, definition := range lib.definitions {
		standards = append(standards, definition.Standard)
	}
	sort.Slice(standards, func(i, j int) bool {
		if standards[i].Name != standards[j].Name {
			return standards[i].Name < standards[j].Name
		}
		return standards[i].Version < standards[j].Version
	})
	return standards
}

// Entries returns the manifest entries, sorted by standard name.
func (lib *Library) Entries() []*StandardEntry {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	entries := make([]*StandardEntry, len(lib.manifest.Standards))
	copy(entries, lib.manifest.Standards)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Standard.Name < entries[j].Standard.Name
	})
	return entries
}

// Requirements returns fresh copies of the catalog requirements for the
// given standard IDs, in the order the IDs are listed. Unknown IDs are
// skipped; callers resolve their labels through the grouper's fallbacks.
func (lib *Library) Requirements(standardIDs ...string) []types.Requirement {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	requirements := make([]types.Requirement, 0)
	for _, standardID := range standardIDs {
		if definition, ok := lib.definitions[standardID]; ok {
			requirements = append(requirements, definition.Requirements...)
		}
	}
	return requirements
}

// Path returns the library's root directory.
func (lib *Library) Path() string {
	return lib.path
}

// StandardsDir returns the directory holding the definition files.
func (lib *Library) StandardsDir() string {
	return filepath.Join(lib.path, standardsDirName)
}

func (lib *Library) findEntryUnsafe(standardID string) *StandardEntry {
	for _, entry := range lib.manifest.Standards {
		if entry.Standard.ID == standardID {
			return entry
		}
	}
	return nil
}

func (lib *Library) upsertEntry(entry *StandardEntry) {
	for i, existing := range lib.manifest.Standards {
		if existing.Standard.ID == entry.Standard.ID {
			lib.manifest.Standards[i] = entry
			return
		}
	}
	lib.manifest.Standards = append(lib.manifest.Standards, entry)
}

func (lib *Library) removeEntry(standardID string) {
	for i, entry := range lib.manifest.Standards {
		if entry.Standard.ID == standardID {
			lib.manifest.Standards = append(lib.manifest.Standards[:i], lib.manifest.Standards[i+1:]...)
			return
		}
	}
}

func (lib *Library) saveManifest() error {
	lib.manifest.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(lib.manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(lib.path, manifestFileName), data, 0644)
}
