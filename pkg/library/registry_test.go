package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDefinitionFile(t *testing.T, dir, name, standardID, standardName string) {
	t.Helper()
	content := "standard:\n  id: " + standardID + "\n  name: " + standardName + "\n  version: \"1.0\"\nrequirements:\n  - id: " + standardID + "/1.1\n    section: \"1\"\n    code: \"1.1\"\n    name: First control\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write definition file: %v", err)
	}
}

func TestNewRegistryLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeDefinitionFile(t, dir, "a.yaml", "std-a", "Standard A")
	writeDefinitionFile(t, dir, "b.yml", "std-b", "Standard B")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatalf("Failed to write ignored file: %v", err)
	}

	registry, err := NewRegistry(dir)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if len(registry.List()) != 2 {
		t.Errorf("Expected 2 definitions, got %d", len(registry.List()))
	}
	if _, ok := registry.Get("std-a"); !ok {
		t.Error("Expected std-a to be loaded")
	}
}

func TestRegistrySkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeDefinitionFile(t, dir, "good.yaml", "std-good", "Good Standard")
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(": not yaml ["), 0644); err != nil {
		t.Fatalf("Failed to write bad file: %v", err)
	}

	registry, err := NewRegistry(dir)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if len(registry.List()) != 1 {
		t.Errorf("Expected malformed file to be skipped, got %d definitions", len(registry.List()))
	}
}

func TestRegistryReloadPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	writeDefinitionFile(t, dir, "a.yaml", "std-a", "Standard A")

	registry, err := NewRegistry(dir)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	writeDefinitionFile(t, dir, "b.yaml", "std-b", "Standard B")
	if err := registry.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if _, ok := registry.Get("std-b"); !ok {
		t.Error("Expected std-b after reload")
	}
}

func TestRegistryWatchLoadsChanges(t *testing.T) {
	dir := t.TempDir()
	writeDefinitionFile(t, dir, "a.yaml", "std-a", "Standard A")

	registry, err := NewRegistry(dir)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	loaded := make(chan string, 8)
	registry.OnChange(func(event string, definition *StandardDefinition) {
		if event == "loaded" {
			loaded <- definition.Standard.ID
		}
	})

	if err := registry.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer registry.StopWatch()

	if err := registry.Watch(); err == nil {
		t.Error("Expected error on double Watch")
	}

	writeDefinitionFile(t, dir, "c.yaml", "std-c", "Standard C")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case id := <-loaded:
			if id == "std-c" {
				if _, ok := registry.Get("std-c"); !ok {
					t.Error("Callback fired but std-c not in registry")
				}
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for watcher to load std-c")
		}
	}
}
