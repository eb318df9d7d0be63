package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
)

// Registry keeps an in-memory view of a directory of standard definition
// files and can watch the directory for changes, reloading definitions as
// files are created, modified, removed or renamed.
type Registry struct {
	mu          sync.RWMutex
	dir         string
	definitions map[string]*StandardDefinition
	watcher     *fsnotify.Watcher
	stopChan    chan struct{}
	onChange    func(event string, definition *StandardDefinition)
}

// NewRegistry creates a registry and loads all definitions from dir.
func NewRegistry(dir string) (*Registry, error) {
	registry := &Registry{
		dir:         dir,
		definitions: make(map[string]*StandardDefinition),
	}
	if err := registry.Reload(); err != nil {
		return nil, err
	}
	return registry, nil
}

// OnChange registers a callback invoked after each watch-triggered change
// with the event kind ("loaded", "removed") and the affected definition.
func (r *Registry) OnChange(callback func(event string, definition *StandardDefinition)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = callback
}

// Get returns a definition by standard ID.
func (r *Registry) Get(standardID string) (*StandardDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	definition, ok := r.definitions[standardID]
	return definition, ok
}

// List returns all loaded definitions.
func (r *Registry) List() []*StandardDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definitions := make([]*StandardDefinition, 0, len(r.definitions))
	for _, definition := range r.definitions {
		definitions = append(definitions, definition)
	}
	return definitions
}

// Reload discards the in-memory view and reloads every definition file in
// the directory. Files that fail to parse are skipped; a directory is only
// unusable when it cannot be read at all.
func (r *Registry) Reload() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("failed to read definitions directory: %w", err)
	}

	definitions := make(map[string]*StandardDefinition)
	for _, entry := range entries {
		if entry.IsDir() || !isDefinitionFile(entry.Name()) {
			continue
		}
		definition, err := LoadDefinitionFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			continue
		}
		definitions[definition.Standard.ID] = definition
	}

	r.mu.Lock()
	r.definitions = definitions
	r.mu.Unlock()
	return nil
}

// Watch starts watching the definitions directory. Create and write events
// load the changed file; remove and rename events trigger a full reload
// since the removed file's standard ID is no longer recoverable from disk.
func (r *Registry) Watch() error {
	r.mu.Lock()
	if r.watcher != nil {
		r.mu.Unlock()
		return fmt.Errorf("already watching %s", r.dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		r.mu.Unlock()
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.dir); err != nil {
		watcher.Close()
		r.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", r.dir, err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})
	r.mu.Unlock()

	go r.watchLoop(watcher, r.stopChan)
	return nil
}

// StopWatch stops watching the definitions directory.
func (r *Registry) StopWatch() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.watcher == nil {
		return
	}
	close(r.stopChan)
	r.watcher.Close()
	r.watcher = nil
	r.stopChan = nil
}

func (r *Registry) watchLoop(watcher *fsnotify.Watcher, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isDefinitionFile(filepath.Base(event.Name)) {
				continue
			}
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create,
				event.Op&fsnotify.Write == fsnotify.Write:
				r.handleFileChanged(event.Name)
			case event.Op&fsnotify.Remove == fsnotify.Remove,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				r.handleFileRemoved()
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (r *Registry) handleFileChanged(path string) {
	definition, err := LoadDefinitionFile(path)
	if err != nil {
		return
	}

	r.mu.Lock()
	r.definitions[definition.Standard.ID] = definition
	callback := r.onChange
	r.mu.Unlock()

	if callback != nil {
		callback("loaded", definition)
	}
}

func (r *Registry) handleFileRemoved() {
	before := r.List()
	if err := r.Reload(); err != nil {
		return
	}

	r.mu.RLock()
	callback := r.onChange
	r.mu.RUnlock()
	if callback == nil {
		return
	}

	for _, definition := range before {
		if _, ok := r.Get(definition.Standard.ID); !ok {
			callback("removed", definition)
		}
	}
}

func isDefinitionFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
