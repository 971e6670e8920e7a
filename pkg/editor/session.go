// Package editor implements the five-step trip editing session: a
// working trip record as the single source of truth, a step state
// machine with advisory per-step status, and session-scoped managers for
// accommodations, checklists and tips.
package editor

import (
	"errors"
	"strings"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/schedule"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

// Step identifies one editor phase.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepItinerary
	StepAccommodations
	StepChecklists
	StepTips
)

const (
	StepMin = StepBasicInfo
	StepMax = StepTips
)

// Status is the advisory fill state of a step. It drives a visual
// indicator only; navigation is never blocked by it.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
	StatusEmpty   Status = "empty"
)

// ErrMissingBasics is returned by Submit when the mandatory step 1
// fields are incomplete.
var ErrMissingBasics = errors.New("title, dates and at least one location are required")

// Session owns the editing state for one trip. It works on a clone of
// the stored record, so nothing is persisted until Submit.
type Session struct {
	record *models.TripRecord
	step   Step

	Accommodations *AccommodationManager
	Checklists     *ChecklistManager
	Tips           *TipManager
}

// NewSession starts an editing session. A nil record starts a fresh
// draft with defaults; otherwise the record is cloned and the managers
// are seeded from its collections.
func NewSession(existing *models.TripRecord) *Session {
	var rec *models.TripRecord
	if existing == nil {
		rec = models.NewTripRecord()
	} else {
		rec = existing.Clone()
	}

	return &Session{
		record:         rec,
		step:           StepBasicInfo,
		Accommodations: NewAccommodationManager(rec.Accommodations),
		Checklists:     NewChecklistManager(rec.Checklists),
		Tips:           NewTipManager(rec.Tips),
	}
}

// Record exposes the working record. Callers must treat it as read-only
// and mutate through the session's setters.
func (s *Session) Record() *models.TripRecord {
	return s.record
}

// Step returns the active step.
func (s *Session) Step() Step {
	return s.step
}

// GoTo navigates to the target step. Out-of-range targets and the
// current step are no-ops. Entering the itinerary step regenerates the
// day sequence from the current date range, carrying entered events
// across unchanged dates. Navigation can never fail.
func (s *Session) GoTo(target Step) {
	if target < StepMin || target > StepMax || target == s.step {
		return
	}
	s.step = target
	if target == StepItinerary {
		s.regenerateDays()
	}
}

// Next advances one step; a no-op on the last step.
func (s *Session) Next() {
	s.GoTo(s.step + 1)
}

// Prev goes back one step; a no-op on the first step.
func (s *Session) Prev() {
	s.GoTo(s.step - 1)
}

// Status computes the advisory status for a step from live state.
// Step 1 is the only mandatory step: valid iff title, both dates and at
// least one location are present. Steps 2-5 report valid when their
// collection is non-empty, else empty.
func (s *Session) Status(step Step) Status {
	switch step {
	case StepBasicInfo:
		if strings.TrimSpace(s.record.Title) != "" &&
			s.record.StartDate != "" && s.record.EndDate != "" &&
			len(s.record.Countries) > 0 {
			return StatusValid
		}
		return StatusInvalid
	case StepItinerary:
		for _, d := range s.record.Days {
			if len(d.Events) > 0 {
				return StatusValid
			}
		}
		return StatusEmpty
	case StepAccommodations:
		if s.Accommodations.Len() > 0 {
			return StatusValid
		}
		return StatusEmpty
	case StepChecklists:
		if s.Checklists.TotalItems() > 0 {
			return StatusValid
		}
		return StatusEmpty
	case StepTips:
		if s.Tips.Len() > 0 {
			return StatusValid
		}
		return StatusEmpty
	}
	return StatusEmpty
}

// SetTitle updates the trip title.
func (s *Session) SetTitle(title string) {
	s.record.Title = title
}

// SetTripType updates the trip type.
func (s *Session) SetTripType(tripType string) {
	s.record.TripType = tripType
}

// SetTheme updates the presentational theme.
func (s *Session) SetTheme(theme string) {
	s.record.Theme = theme
}

// SetMembers updates the traveller counts; negative counts are clamped
// to zero.
func (s *Session) SetMembers(adults, children int) {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}
	s.record.Members = models.Members{Adults: adults, Children: children}
}

// SetDates updates the date range and regenerates the day sequence
// immediately, preserving events on unchanged dates. An inverted range
// simply produces no days.
func (s *Session) SetDates(start, end string) {
	s.record.StartDate = start
	s.record.EndDate = end
	s.regenerateDays()
}

// AddTag appends a tag, enforcing uniqueness case-insensitively.
// Empty tags are ignored.
func (s *Session) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, t := range s.record.Tags {
		if strings.EqualFold(t, tag) {
			return
		}
	}
	s.record.Tags = append(s.record.Tags, tag)
}

// RemoveTag drops a tag by exact value.
func (s *Session) RemoveTag(tag string) {
	for i, t := range s.record.Tags {
		if t == tag {
			s.record.Tags = append(s.record.Tags[:i], s.record.Tags[i+1:]...)
			return
		}
	}
}

// AddLocation appends a destination, enforcing uniqueness. Empty values
// are ignored.
func (s *Session) AddLocation(loc string) {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return
	}
	for _, c := range s.record.Countries {
		if strings.EqualFold(c, loc) {
			return
		}
	}
	s.record.Countries = append(s.record.Countries, loc)
}

// RemoveLocation drops a destination by exact value.
func (s *Session) RemoveLocation(loc string) {
	for i, c := range s.record.Countries {
		if c == loc {
			s.record.Countries = append(s.record.Countries[:i], s.record.Countries[i+1:]...)
			return
		}
	}
}

// AddEvent appends an event to the given 1-based day. Unknown day
// numbers are ignored.
func (s *Session) AddEvent(day int, ev models.Event) {
	for i := range s.record.Days {
		if s.record.Days[i].Day == day {
			s.record.Days[i].Events = append(s.record.Days[i].Events, ev)
			return
		}
	}
}

// UpdateEvent replaces the event at idx on the given day.
func (s *Session) UpdateEvent(day, idx int, ev models.Event) {
	for i := range s.record.Days {
		if s.record.Days[i].Day == day {
			if idx >= 0 && idx < len(s.record.Days[i].Events) {
				s.record.Days[i].Events[idx] = ev
			}
			return
		}
	}
}

// DeleteEvent removes the event at idx on the given day.
func (s *Session) DeleteEvent(day, idx int) {
	for i := range s.record.Days {
		if s.record.Days[i].Day == day {
			evs := s.record.Days[i].Events
			if idx >= 0 && idx < len(evs) {
				s.record.Days[i].Events = append(evs[:idx], evs[idx+1:]...)
			}
			return
		}
	}
}

// Assemble merges the working record with the sub-managers' current
// lists into the record that would be persisted. Fields not touched by
// the editor (a prior ID, CreatedAt) are preserved.
func (s *Session) Assemble() *models.TripRecord {
	rec := s.record.Clone()
	rec.Accommodations = s.Accommodations.List()
	rec.Checklists = s.Checklists.Lists()
	rec.Tips = s.Tips.List()
	return rec
}

// Submit assembles the trip and persists it. The mandatory step 1
// fields gate submission; every other step may be empty.
func (s *Session) Submit(st *store.TripStore) (*models.TripRecord, error) {
	if s.Status(StepBasicInfo) != StatusValid {
		return nil, ErrMissingBasics
	}
	return st.Save(s.Assemble())
}

func (s *Session) regenerateDays() {
	s.record.Days = schedule.Generate(s.record.StartDate, s.record.EndDate, s.record.Days)
}
