package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileBridgeRoundTrip(t *testing.T) {
	b := NewFileBridge(t.TempDir())

	if err := b.SetItem("travel_schedules", `[{"title":"Lisbon"}]`); err != nil {
		t.Fatalf("SetItem() error: %v", err)
	}

	got, err := b.GetItem("travel_schedules")
	if err != nil {
		t.Fatalf("GetItem() error: %v", err)
	}
	if got != `[{"title":"Lisbon"}]` {
		t.Errorf("GetItem() = %q", got)
	}
}

func TestFileBridgeMissingKey(t *testing.T) {
	b := NewFileBridge(t.TempDir())

	got, err := b.GetItem("never_written")
	if err != nil {
		t.Fatalf("missing key should not error: %v", err)
	}
	if got != "" {
		t.Errorf("missing key should yield empty value, got %q", got)
	}
}

func TestFileBridgeRemoveItem(t *testing.T) {
	b := NewFileBridge(t.TempDir())

	if err := b.SetItem("current_schedule_id", "abc"); err != nil {
		t.Fatal(err)
	}
	if err := b.RemoveItem("current_schedule_id"); err != nil {
		t.Fatalf("RemoveItem() error: %v", err)
	}
	if got, _ := b.GetItem("current_schedule_id"); got != "" {
		t.Errorf("value survived removal: %q", got)
	}

	// Removing again is a no-op, not an error.
	if err := b.RemoveItem("current_schedule_id"); err != nil {
		t.Errorf("removing a missing key should be a no-op: %v", err)
	}
}

func TestFileBridgeCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", ".wayfarer")
	b := NewFileBridge(root)

	if err := b.SetItem("app_settings", `{"fontScale":1}`); err != nil {
		t.Fatalf("SetItem() should create the root directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "app_settings.json")); err != nil {
		t.Errorf("expected file under root: %v", err)
	}
}

func TestFileBridgeOverwriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBridge(dir)

	if err := b.SetItem("travel_schedules", "one"); err != nil {
		t.Fatal(err)
	}
	if err := b.SetItem("travel_schedules", "two"); err != nil {
		t.Fatal(err)
	}

	if got, _ := b.GetItem("travel_schedules"); got != "two" {
		t.Errorf("overwrite lost: got %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "travel_schedules.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind after write")
	}
}

func TestMemBridge(t *testing.T) {
	b := NewMemBridge()

	if got, _ := b.GetItem("x"); got != "" {
		t.Errorf("fresh bridge should be empty, got %q", got)
	}
	if err := b.SetItem("x", "1"); err != nil {
		t.Fatal(err)
	}
	if got, _ := b.GetItem("x"); got != "1" {
		t.Errorf("got %q, want 1", got)
	}
	if err := b.RemoveItem("x"); err != nil {
		t.Fatal(err)
	}
	if got, _ := b.GetItem("x"); got != "" {
		t.Errorf("value survived removal: %q", got)
	}
}
