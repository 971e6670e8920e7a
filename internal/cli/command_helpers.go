package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wayfarer/wayfarer-cli/internal/logger"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/storage"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	store       *store.TripStore
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: storage.WayfarerDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .wayfarer directory found. Run 'wayfarer init' first")
	}

	c.validated = true
	return nil
}

// Store returns the trip store, constructing it on first use with a
// file bridge and a file-backed logger so command output stays clean.
func (c *CommandContext) Store() *store.TripStore {
	if c.store == nil {
		log := logger.NewFile(filepath.Join(c.ProjectPath, storage.LogFile), "info")
		c.store = store.New(storage.NewFileBridge(c.ProjectPath), log)
	}
	return c.store
}

// FindTrip resolves a trip reference: exact ID, unique ID prefix, or
// case-insensitive title match, in that order.
func (c *CommandContext) FindTrip(ref string) (*models.TripRecord, error) {
	trips := c.Store().ListAll()

	for _, t := range trips {
		if t.ID == ref {
			trip := t
			return &trip, nil
		}
	}

	var matches []models.TripRecord
	for _, t := range trips {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		for _, t := range trips {
			if strings.EqualFold(t.Title, ref) {
				matches = append(matches, t)
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("trip not found: %s", ref)
	case 1:
		trip := matches[0]
		return &trip, nil
	default:
		return nil, fmt.Errorf("multiple trips match '%s'; use the full ID", ref)
	}
}
