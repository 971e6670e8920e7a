package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wayfarer/wayfarer-cli/internal/logger"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/storage"
)

// TripStore persists trip records, checklist templates and app settings
// through a storage bridge. Every mutation rewrites the whole collection;
// working sets are small and the blob stays trivially consistent.
type TripStore struct {
	bridge storage.Bridge
	log    logger.Logger
}

// New returns a store backed by the given bridge.
func New(bridge storage.Bridge, log logger.Logger) *TripStore {
	if log == nil {
		log = logger.NewNop()
	}
	return &TripStore{bridge: bridge, log: log}
}

// ListAll returns every persisted trip in storage insertion order. A
// missing or corrupted blob degrades to an empty list; the corruption is
// logged but never surfaced, so a bad blob cannot brick the app.
func (s *TripStore) ListAll() []models.TripRecord {
	raw, err := s.bridge.GetItem(storage.KeySchedules)
	if err != nil {
		s.log.Warn("failed to read trip collection", logger.Error(err))
		return []models.TripRecord{}
	}
	if raw == "" {
		return []models.TripRecord{}
	}

	var trips []models.TripRecord
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		s.log.Warn("corrupted trip collection, degrading to empty",
			logger.String("key", storage.KeySchedules), logger.Error(err))
		return []models.TripRecord{}
	}
	return trips
}

// Get returns the trip with the given ID, or nil when absent.
func (s *TripStore) Get(id string) *models.TripRecord {
	for _, t := range s.ListAll() {
		if t.ID == id {
			trip := t
			return &trip
		}
	}
	return nil
}

// Save persists the record. A record without an ID is assigned one along
// with CreatedAt; UpdatedAt is refreshed on every save. An existing ID is
// replaced in place (position preserved), otherwise the record is
// appended. Returns the persisted record.
func (s *TripStore) Save(rec *models.TripRecord) (*models.TripRecord, error) {
	if rec == nil {
		return nil, fmt.Errorf("cannot save nil trip")
	}

	now := time.Now()
	if rec.ID == "" {
		rec.ID = models.NewID("")
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	trips := s.ListAll()
	replaced := false
	for i, t := range trips {
		if t.ID == rec.ID {
			trips[i] = *rec
			replaced = true
			break
		}
	}
	if !replaced {
		trips = append(trips, *rec)
	}

	if err := s.writeAll(trips); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the trip with the given ID. When the deleted trip was
// the current one, the current pointer is cleared as well. Deleting an
// unknown ID is a no-op.
func (s *TripStore) Delete(id string) error {
	trips := s.ListAll()
	filtered := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}

	if err := s.writeAll(filtered); err != nil {
		return err
	}

	if current, _ := s.bridge.GetItem(storage.KeyCurrentID); current == id {
		if err := s.bridge.RemoveItem(storage.KeyCurrentID); err != nil {
			return fmt.Errorf("failed to clear current trip: %w", err)
		}
	}
	return nil
}

// Current returns the trip the current pointer references, or nil when
// the pointer is unset or dangling.
func (s *TripStore) Current() *models.TripRecord {
	id, err := s.bridge.GetItem(storage.KeyCurrentID)
	if err != nil || id == "" {
		return nil
	}
	return s.Get(id)
}

// SetCurrent points the current-trip pointer at the given ID.
func (s *TripStore) SetCurrent(id string) error {
	if err := s.bridge.SetItem(storage.KeyCurrentID, id); err != nil {
		return fmt.Errorf("failed to set current trip: %w", err)
	}
	return nil
}

// CurrentID returns the raw current pointer ("" when unset).
func (s *TripStore) CurrentID() string {
	id, _ := s.bridge.GetItem(storage.KeyCurrentID)
	return id
}

func (s *TripStore) writeAll(trips []models.TripRecord) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("failed to marshal trip collection: %w", err)
	}
	if err := s.bridge.SetItem(storage.KeySchedules, string(data)); err != nil {
		return fmt.Errorf("failed to persist trip collection: %w", err)
	}
	return nil
}

// ListTemplates returns all saved checklist templates, with the same
// degrade-to-empty behavior as ListAll.
func (s *TripStore) ListTemplates() []models.ChecklistTemplate {
	raw, err := s.bridge.GetItem(storage.KeyTemplates)
	if err != nil || raw == "" {
		if err != nil {
			s.log.Warn("failed to read checklist templates", logger.Error(err))
		}
		return []models.ChecklistTemplate{}
	}

	var templates []models.ChecklistTemplate
	if err := json.Unmarshal([]byte(raw), &templates); err != nil {
		s.log.Warn("corrupted checklist templates, degrading to empty", logger.Error(err))
		return []models.ChecklistTemplate{}
	}
	return templates
}

// SaveTemplate stores a checklist template, assigning ID and CreatedAt
// when missing.
func (s *TripStore) SaveTemplate(tpl *models.ChecklistTemplate) (*models.ChecklistTemplate, error) {
	if tpl == nil {
		return nil, fmt.Errorf("cannot save nil template")
	}
	if tpl.ID == "" {
		tpl.ID = models.NewID("tpl")
		tpl.CreatedAt = time.Now()
	}

	templates := s.ListTemplates()
	replaced := false
	for i, t := range templates {
		if t.ID == tpl.ID {
			templates[i] = *tpl
			replaced = true
			break
		}
	}
	if !replaced {
		templates = append(templates, *tpl)
	}

	data, err := json.Marshal(templates)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal templates: %w", err)
	}
	if err := s.bridge.SetItem(storage.KeyTemplates, string(data)); err != nil {
		return nil, fmt.Errorf("failed to persist templates: %w", err)
	}
	return tpl, nil
}

// Settings loads the presentation settings, falling back to defaults on
// absence or corruption.
func (s *TripStore) Settings() *models.AppSettings {
	raw, err := s.bridge.GetItem(storage.KeySettings)
	if err != nil || raw == "" {
		return models.DefaultAppSettings()
	}

	var settings models.AppSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.log.Warn("corrupted app settings, using defaults", logger.Error(err))
		return models.DefaultAppSettings()
	}
	settings.Normalize()
	return &settings
}

// SaveSettings persists the presentation settings.
func (s *TripStore) SaveSettings(settings *models.AppSettings) error {
	settings.Normalize()
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.bridge.SetItem(storage.KeySettings, string(data)); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}
