package share

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

// ExportFilename derives the download filename from the trip title and
// the current date. The title is passed through as-is apart from spaces;
// no further sanitization is applied.
func ExportFilename(rec *models.TripRecord, now time.Time) string {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		title = "trip"
	}
	title = strings.ReplaceAll(title, " ", "_")
	return fmt.Sprintf("%s_%s.json", title, now.Format(models.DateLayout))
}

// ExportToFile writes the record as pretty-printed UTF-8 JSON into dir
// and returns the written path. The record keeps its ID at export time;
// importers strip it.
func (c *Codec) ExportToFile(rec *models.TripRecord, dir string) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("cannot export nil trip")
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize trip: %w", err)
	}

	path := filepath.Join(dir, ExportFilename(rec, time.Now()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// ImportFromFile reads an exported trip file and commits it as a new
// record (embedded ID stripped). Unlike URL decoding this path is
// explicitly user-initiated, so failures carry descriptive errors.
func (c *Codec) ImportFromFile(path string, st *store.TripStore) (*models.TripRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rec models.TripRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%s is not a valid trip file: %w", path, err)
	}

	rec.ID = ""
	saved, err := st.Save(&rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save imported trip: %w", err)
	}
	return saved, nil
}
