package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trip type values.
const (
	TripTypeDomestic      = "domestic"
	TripTypeInternational = "international"
)

// Trip theme values. Themes are presentational only.
const (
	ThemeNone     = ""
	ThemeSolo     = "solo"
	ThemeFriends  = "friends"
	ThemeCouple   = "couple"
	ThemeFamily   = "family"
	ThemeBabymoon = "babymoon"
)

// Item priority values.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// DateLayout is the calendar date format used everywhere a date is
// stored or compared ("2026-10-02").
const DateLayout = "2006-01-02"

// TripRecord is the root persisted entity representing one planned trip.
type TripRecord struct {
	ID             string          `json:"id,omitempty"`
	Title          string          `json:"title"`
	TripType       string          `json:"tripType"`
	Theme          string          `json:"theme,omitempty"`
	Tags           []string        `json:"tags"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	Countries      []string        `json:"countries"`
	Members        Members         `json:"members"`
	Days           []DayEntry      `json:"days"`
	Accommodations []Accommodation `json:"accommodations"`
	Checklists     Checklists      `json:"checklists"`
	Tips           []Tip           `json:"tips"`
	CreatedAt      time.Time       `json:"createdAt,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt,omitempty"`
}

// Members counts who is travelling.
type Members struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// DayEntry is one calendar day within the trip's date range. Day is the
// 1-based position in the range and Date is derived from the start date,
// never entered directly.
type DayEntry struct {
	Day    int     `json:"day"`
	Date   string  `json:"date"`
	Events []Event `json:"events"`
}

// Event is a single itinerary entry within a day.
type Event struct {
	Location    string `json:"location"`
	Place       string `json:"place"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// Accommodation is a lodging booking. AssignedDates holds the calendar
// dates the booking covers; a date may appear on several accommodations
// (overlapping bookings are a valid use case).
type Accommodation struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type,omitempty"`
	Location      string   `json:"location,omitempty"`
	Contact       string   `json:"contact,omitempty"`
	Price         string   `json:"price,omitempty"`
	URL           string   `json:"url,omitempty"`
	CheckIn       string   `json:"checkIn,omitempty"`
	CheckOut      string   `json:"checkOut,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	AssignedDates []string `json:"assignedDates"`
}

// Checklists holds the two independently managed checklist tabs.
type Checklists struct {
	Packing []Category `json:"packing"`
	Todo    []Category `json:"todo"`
}

// Category groups checklist items.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is one checklist entry. Order mirrors the item's position in the
// category and is recomputed on every mutation; the slice position is
// authoritative.
type Item struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Priority string `json:"priority"`
	Checked  bool   `json:"checked"`
	Order    int    `json:"order"`
}

// Tip is a free-form note attached to the trip.
type Tip struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChecklistTemplate is a reusable checklist preset stored alongside trips.
type ChecklistTemplate struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// NewTripRecord returns an unsaved draft with the documented defaults:
// today as both start and end date, two adults, empty collections.
func NewTripRecord() *TripRecord {
	today := time.Now().Format(DateLayout)
	return &TripRecord{
		TripType:       TripTypeDomestic,
		Tags:           []string{},
		StartDate:      today,
		EndDate:        today,
		Countries:      []string{},
		Members:        Members{Adults: 2, Children: 0},
		Days:           []DayEntry{},
		Accommodations: []Accommodation{},
		Checklists:     Checklists{Packing: []Category{}, Todo: []Category{}},
		Tips:           []Tip{},
	}
}

// NewID generates a collision-resistant identifier. Sub-entity IDs keep a
// short type prefix ("acc", "cat", "item", "tip") so persisted blobs stay
// readable; trip IDs use the bare UUID.
func NewID(prefix string) string {
	id := uuid.NewString()
	if prefix == "" {
		return id
	}
	return fmt.Sprintf("%s_%s", prefix, id)
}

// Clone returns a deep copy of the record. The editor session works on a
// clone so a cancelled edit never touches the stored record.
func (t *TripRecord) Clone() *TripRecord {
	c := *t
	c.Tags = append([]string(nil), t.Tags...)
	c.Countries = append([]string(nil), t.Countries...)
	c.Days = make([]DayEntry, len(t.Days))
	for i, d := range t.Days {
		c.Days[i] = d
		c.Days[i].Events = append([]Event(nil), d.Events...)
	}
	c.Accommodations = make([]Accommodation, len(t.Accommodations))
	for i, a := range t.Accommodations {
		c.Accommodations[i] = a
		c.Accommodations[i].AssignedDates = append([]string(nil), a.AssignedDates...)
	}
	c.Checklists.Packing = cloneCategories(t.Checklists.Packing)
	c.Checklists.Todo = cloneCategories(t.Checklists.Todo)
	c.Tips = append([]Tip(nil), t.Tips...)
	return &c
}

func cloneCategories(cats []Category) []Category {
	out := make([]Category, len(cats))
	for i, cat := range cats {
		out[i] = cat
		out[i].Items = append([]Item(nil), cat.Items...)
	}
	return out
}
