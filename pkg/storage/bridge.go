package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// WayfarerDir is the per-directory data root, the CLI's equivalent of
	// device storage.
	WayfarerDir = ".wayfarer"

	// Storage keys. Each logical key maps to one file under WayfarerDir.
	KeySchedules = "travel_schedules"
	KeyCurrentID = "current_schedule_id"
	KeyTemplates = "checklist_templates"
	KeySettings  = "app_settings"

	// LogFile is where the file-backed logger writes while the TUI owns
	// the terminal.
	LogFile = "wayfarer.log"
)

// Bridge is the host storage abstraction: string keys to string values,
// mirroring a getItem/setItem/removeItem device bridge. A missing key is
// not an error; GetItem returns "" for it.
type Bridge interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// InitProjectStructure creates the .wayfarer data directory.
func InitProjectStructure() error {
	if err := os.MkdirAll(WayfarerDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", WayfarerDir, err)
	}
	return nil
}

// FileBridge persists each key as a JSON file under root.
type FileBridge struct {
	root string
}

// NewFileBridge returns a bridge rooted at dir, or at WayfarerDir when
// dir is empty.
func NewFileBridge(dir string) *FileBridge {
	if dir == "" {
		dir = WayfarerDir
	}
	return &FileBridge{root: dir}
}

func (b *FileBridge) path(key string) string {
	return filepath.Join(b.root, key+".json")
}

// GetItem reads the value stored for key. A missing file yields ("", nil).
func (b *FileBridge) GetItem(key string) (string, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), nil
}

// SetItem writes value for key, creating the data directory if needed.
func (b *FileBridge) SetItem(key, value string) error {
	if err := os.MkdirAll(b.root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", b.root, err)
	}

	// Write to a temp file first so a crash mid-write cannot leave a
	// truncated blob behind.
	tmp := b.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, b.path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes the value stored for key. Removing a missing key is
// a no-op.
func (b *FileBridge) RemoveItem(key string) error {
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// MemBridge is an in-memory bridge for tests.
type MemBridge struct {
	items map[string]string
}

// NewMemBridge returns an empty in-memory bridge.
func NewMemBridge() *MemBridge {
	return &MemBridge{items: make(map[string]string)}
}

func (b *MemBridge) GetItem(key string) (string, error) {
	return b.items[key], nil
}

func (b *MemBridge) SetItem(key, value string) error {
	b.items[key] = value
	return nil
}

func (b *MemBridge) RemoveItem(key string) error {
	delete(b.items, key)
	return nil
}
