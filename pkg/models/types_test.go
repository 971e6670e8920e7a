package models

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	if id := NewID(""); strings.Contains(id, "_") || len(id) != 36 {
		t.Errorf("bare ID should be a plain UUID, got %q", id)
	}
	if id := NewID("acc"); !strings.HasPrefix(id, "acc_") {
		t.Errorf("prefixed ID = %q", id)
	}
	if NewID("item") == NewID("item") {
		t.Error("two IDs collided")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewTripRecord()
	orig.Title = "Original"
	orig.Tags = []string{"beach"}
	orig.Countries = []string{"Portugal"}
	orig.Days = []DayEntry{{Day: 1, Date: "2026-10-02", Events: []Event{{Place: "Museum"}}}}
	orig.Accommodations = []Accommodation{{ID: "acc_1", Name: "Hotel", AssignedDates: []string{"2026-10-02"}}}
	orig.Checklists.Packing = []Category{{ID: "cat_1", Name: "Essentials", Items: []Item{{ID: "item_1", Text: "Passport"}}}}
	orig.Tips = []Tip{{ID: "tip_1", Title: "Metro", Content: "card"}}

	c := orig.Clone()
	c.Tags[0] = "mutated"
	c.Countries[0] = "mutated"
	c.Days[0].Events[0].Place = "mutated"
	c.Accommodations[0].AssignedDates[0] = "mutated"
	c.Checklists.Packing[0].Items[0].Text = "mutated"
	c.Tips[0].Title = "mutated"

	if orig.Tags[0] != "beach" ||
		orig.Countries[0] != "Portugal" ||
		orig.Days[0].Events[0].Place != "Museum" ||
		orig.Accommodations[0].AssignedDates[0] != "2026-10-02" ||
		orig.Checklists.Packing[0].Items[0].Text != "Passport" ||
		orig.Tips[0].Title != "Metro" {
		t.Error("clone shares state with the original")
	}
}

func TestAppSettingsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   AppSettings
		want AppSettings
	}{
		{"valid passes through", AppSettings{FontScale: 3, Theme: ThemeLight}, AppSettings{FontScale: 3, Theme: ThemeLight}},
		{"scale too high", AppSettings{FontScale: 9, Theme: ThemeDark}, AppSettings{FontScale: 1, Theme: ThemeDark}},
		{"negative scale", AppSettings{FontScale: -1, Theme: ThemeDark}, AppSettings{FontScale: 1, Theme: ThemeDark}},
		{"unknown theme", AppSettings{FontScale: 2, Theme: "sepia"}, AppSettings{FontScale: 2, Theme: ThemeDark}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
