// Package tags maintains the project tag registry: display metadata for
// every tag used across saved trips, persisted as tags.yaml in the data
// directory.
package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/storage"
)

const (
	TagsRegistryFile = "tags.yaml"
)

// Registry manages the tag registry for a project.
type Registry struct {
	mu       sync.RWMutex
	registry *models.TagRegistry
	path     string
}

// NewRegistry loads the registry from the data directory, creating an
// empty one when the file does not exist yet.
func NewRegistry() (*Registry, error) {
	registryPath := filepath.Join(storage.WayfarerDir, TagsRegistryFile)

	r := &Registry{path: registryPath}

	if err := r.Load(); err != nil {
		if os.IsNotExist(err) {
			r.registry = &models.TagRegistry{Tags: []models.Tag{}}
			return r, nil
		}
		return nil, fmt.Errorf("failed to load tag registry: %w", err)
	}

	return r, nil
}

// Load reads the tag registry from disk.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var registry models.TagRegistry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return fmt.Errorf("failed to parse tag registry: %w", err)
	}

	r.registry = &registry
	return nil
}

// Save writes the tag registry to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := yaml.Marshal(r.registry)
	if err != nil {
		return fmt.Errorf("failed to marshal tag registry: %w", err)
	}

	tmpFile := r.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write tag registry: %w", err)
	}

	if err := os.Rename(tmpFile, r.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save tag registry: %w", err)
	}

	return nil
}

// GetTag retrieves tag metadata by name (case-insensitive).
func (r *Registry) GetTag(name string) (*models.Tag, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := models.NormalizeTagName(name)
	for _, tag := range r.registry.Tags {
		if models.NormalizeTagName(tag.Name) == normalized {
			found := tag
			return &found, true
		}
	}
	return nil, false
}

// AddTag adds or updates a tag in the registry. New tags without a color
// get a consistent palette color derived from their name.
func (r *Registry) AddTag(tag models.Tag) error {
	if err := models.ValidateTagName(tag.Name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tag.Color == "" {
		tag.Color = models.GetTagColor(tag.Name, "")
	}

	normalized := models.NormalizeTagName(tag.Name)
	for i, existing := range r.registry.Tags {
		if models.NormalizeTagName(existing.Name) == normalized {
			r.registry.Tags[i] = tag
			return nil
		}
	}
	r.registry.Tags = append(r.registry.Tags, tag)
	return nil
}

// RemoveTag deletes a tag from the registry by name.
func (r *Registry) RemoveTag(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalized := models.NormalizeTagName(name)
	for i, tag := range r.registry.Tags {
		if models.NormalizeTagName(tag.Name) == normalized {
			r.registry.Tags = append(r.registry.Tags[:i], r.registry.Tags[i+1:]...)
			return
		}
	}
}

// ListTags returns all registered tags sorted by name.
func (r *Registry) ListTags() []models.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Tag, len(r.registry.Tags))
	copy(out, r.registry.Tags)
	sort.Slice(out, func(i, j int) bool {
		return models.NormalizeTagName(out[i].Name) < models.NormalizeTagName(out[j].Name)
	})
	return out
}
