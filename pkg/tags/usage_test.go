package tags

import (
	"testing"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

func TestUsageFromTrips(t *testing.T) {
	trips := []models.TripRecord{
		{Tags: []string{"Beach", "food"}},
		{Tags: []string{"beach"}},
		{Tags: []string{"city", "food", ""}},
	}

	usage := UsageFromTrips(trips)

	if len(usage) != 3 {
		t.Fatalf("got %d tags, want 3: %v", len(usage), usage)
	}
	// beach and food both count 2; alphabetical breaks the tie.
	if usage[0].Name != "Beach" || usage[0].Count != 2 {
		t.Errorf("first = %+v", usage[0])
	}
	if usage[1].Name != "food" || usage[1].Count != 2 {
		t.Errorf("second = %+v", usage[1])
	}
	if usage[2].Name != "city" || usage[2].Count != 1 {
		t.Errorf("third = %+v", usage[2])
	}
}

func TestUsageFromTripsEmpty(t *testing.T) {
	if got := UsageFromTrips(nil); len(got) != 0 {
		t.Errorf("expected no usage, got %v", got)
	}
}

func TestSyncFromTrips(t *testing.T) {
	r := testRegistry(t)
	r.AddTag(models.Tag{Name: "beach", Color: "#123456"})

	trips := []models.TripRecord{
		{Tags: []string{"Beach", "food"}},
		{Tags: []string{"city"}},
	}
	if err := SyncFromTrips(r, trips); err != nil {
		t.Fatalf("SyncFromTrips() error: %v", err)
	}

	if got := r.ListTags(); len(got) != 3 {
		t.Fatalf("got %d tags, want 3: %v", len(got), got)
	}
	// A known tag keeps its color.
	if tag, _ := r.GetTag("beach"); tag.Color != "#123456" {
		t.Errorf("sync changed an existing color: %s", tag.Color)
	}
}

func TestHasTag(t *testing.T) {
	trip := &models.TripRecord{Tags: []string{"Beach", "food"}}

	if !HasTag(trip, "beach") {
		t.Error("case-insensitive match failed")
	}
	if HasTag(trip, "city") {
		t.Error("unexpected match")
	}
}
