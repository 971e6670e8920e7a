package editor

import (
	"errors"
	"strings"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

// ErrNameRequired is returned when an accommodation is added or updated
// without a name.
var ErrNameRequired = errors.New("accommodation name is required")

// AccommodationManager owns the accommodation list for one editing
// session. The list survives step navigation; it is read out at
// submission time via List.
type AccommodationManager struct {
	list []models.Accommodation
}

// NewAccommodationManager seeds a manager from the record being edited.
func NewAccommodationManager(seed []models.Accommodation) *AccommodationManager {
	m := &AccommodationManager{
		list: make([]models.Accommodation, len(seed)),
	}
	copy(m.list, seed)
	return m
}

// Add appends an accommodation. The name is the only required field; a
// rejected add leaves state unchanged. The stored entry gets a fresh ID.
func (m *AccommodationManager) Add(a models.Accommodation) (models.Accommodation, error) {
	if strings.TrimSpace(a.Name) == "" {
		return models.Accommodation{}, ErrNameRequired
	}
	a.ID = models.NewID("acc")
	if a.AssignedDates == nil {
		a.AssignedDates = []string{}
	}
	m.list = append(m.list, a)
	return a, nil
}

// Update replaces the accommodation with the same ID.
func (m *AccommodationManager) Update(a models.Accommodation) error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrNameRequired
	}
	for i, existing := range m.list {
		if existing.ID == a.ID {
			m.list[i] = a
			return nil
		}
	}
	return errors.New("accommodation not found")
}

// Delete removes an accommodation by ID; unknown IDs are no-ops.
func (m *AccommodationManager) Delete(id string) {
	for i, a := range m.list {
		if a.ID == id {
			m.list = append(m.list[:i], m.list[i+1:]...)
			return
		}
	}
}

// ToggleDate assigns or unassigns a calendar date on an accommodation.
// Dates are not validated against the trip range; the same date may be
// assigned to several accommodations (overlapping bookings).
func (m *AccommodationManager) ToggleDate(id, date string) {
	for i := range m.list {
		if m.list[i].ID != id {
			continue
		}
		for j, d := range m.list[i].AssignedDates {
			if d == date {
				m.list[i].AssignedDates = append(m.list[i].AssignedDates[:j], m.list[i].AssignedDates[j+1:]...)
				return
			}
		}
		m.list[i].AssignedDates = append(m.list[i].AssignedDates, date)
		return
	}
}

// Get returns the accommodation with the given ID, or nil.
func (m *AccommodationManager) Get(id string) *models.Accommodation {
	for _, a := range m.list {
		if a.ID == id {
			found := a
			return &found
		}
	}
	return nil
}

// List returns a copy of the current list for assembly at submit time.
func (m *AccommodationManager) List() []models.Accommodation {
	out := make([]models.Accommodation, len(m.list))
	copy(out, m.list)
	return out
}

// Len reports how many accommodations the session holds.
func (m *AccommodationManager) Len() int {
	return len(m.list)
}
