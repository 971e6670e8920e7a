package editor

import (
	"errors"
	"testing"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/storage"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

func validSession() *Session {
	s := NewSession(nil)
	s.SetTitle("Lisbon")
	s.SetDates("2026-10-02", "2026-10-05")
	s.AddLocation("Portugal")
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(nil)

	if s.Step() != StepBasicInfo {
		t.Errorf("new session starts on step %d, want %d", s.Step(), StepBasicInfo)
	}
	rec := s.Record()
	if rec.Members.Adults != 2 || rec.Members.Children != 0 {
		t.Errorf("unexpected default members: %+v", rec.Members)
	}
	if rec.TripType != models.TripTypeDomestic {
		t.Errorf("unexpected default trip type: %q", rec.TripType)
	}
	if rec.StartDate == "" || rec.StartDate != rec.EndDate {
		t.Errorf("defaults should be a single-day range: %s / %s", rec.StartDate, rec.EndDate)
	}
}

func TestNewSessionClonesExisting(t *testing.T) {
	original := models.NewTripRecord()
	original.Title = "Before"
	original.Countries = []string{"Japan"}

	s := NewSession(original)
	s.SetTitle("After")
	s.AddLocation("Korea")

	if original.Title != "Before" {
		t.Errorf("session mutated the stored record's title: %q", original.Title)
	}
	if len(original.Countries) != 1 {
		t.Errorf("session mutated the stored record's locations: %v", original.Countries)
	}
}

func TestNavigationBounds(t *testing.T) {
	s := NewSession(nil)

	s.Prev()
	if s.Step() != StepBasicInfo {
		t.Errorf("Prev() on the first step moved to %d", s.Step())
	}

	s.GoTo(StepTips)
	s.Next()
	if s.Step() != StepTips {
		t.Errorf("Next() on the last step moved to %d", s.Step())
	}

	s.GoTo(Step(99))
	if s.Step() != StepTips {
		t.Errorf("out-of-range GoTo moved to %d", s.Step())
	}
}

func TestEnteringItineraryGeneratesDays(t *testing.T) {
	s := validSession()
	s.GoTo(StepItinerary)

	days := s.Record().Days
	if len(days) != 4 {
		t.Fatalf("expected 4 generated days, got %d", len(days))
	}
	if days[0].Date != "2026-10-02" || days[3].Date != "2026-10-05" {
		t.Errorf("unexpected range: %s .. %s", days[0].Date, days[3].Date)
	}
}

func TestSetDatesPreservesEventsOnKeptDates(t *testing.T) {
	s := validSession()
	s.GoTo(StepItinerary)
	s.AddEvent(2, models.Event{Place: "Tram 28"})

	// Extend the range; day 2's date is unchanged so its event stays.
	s.SetDates("2026-10-02", "2026-10-07")

	days := s.Record().Days
	if len(days) != 6 {
		t.Fatalf("expected 6 days, got %d", len(days))
	}
	if len(days[1].Events) != 1 || days[1].Events[0].Place != "Tram 28" {
		t.Errorf("event lost on range change: %+v", days[1].Events)
	}
}

func TestStatusBasicInfo(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Session)
		want  Status
	}{
		{"fresh draft", func(s *Session) {}, StatusInvalid},
		{"title only", func(s *Session) { s.SetTitle("X") }, StatusInvalid},
		{"no location", func(s *Session) {
			s.SetTitle("X")
			s.SetDates("2026-10-02", "2026-10-03")
		}, StatusInvalid},
		{"complete", func(s *Session) {
			s.SetTitle("X")
			s.SetDates("2026-10-02", "2026-10-03")
			s.AddLocation("Portugal")
		}, StatusValid},
		{"whitespace title", func(s *Session) {
			s.SetTitle("   ")
			s.SetDates("2026-10-02", "2026-10-03")
			s.AddLocation("Portugal")
		}, StatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(nil)
			tt.setup(s)
			if got := s.Status(StepBasicInfo); got != tt.want {
				t.Errorf("Status() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatusOptionalSteps(t *testing.T) {
	s := validSession()

	for _, step := range []Step{StepItinerary, StepAccommodations, StepChecklists, StepTips} {
		if got := s.Status(step); got != StatusEmpty {
			t.Errorf("step %d: got %s, want %s", step, got, StatusEmpty)
		}
	}

	s.GoTo(StepItinerary)
	s.AddEvent(1, models.Event{Place: "Castle"})
	if got := s.Status(StepItinerary); got != StatusValid {
		t.Errorf("itinerary with events: got %s", got)
	}

	s.Accommodations.Add(models.Accommodation{Name: "Hotel Mundial"})
	if got := s.Status(StepAccommodations); got != StatusValid {
		t.Errorf("accommodations non-empty: got %s", got)
	}

	cat, _ := s.Checklists.AddCategory(TabPacking, "Clothes")
	s.Checklists.AddItem(TabPacking, cat.ID, "Jacket", "")
	if got := s.Status(StepChecklists); got != StatusValid {
		t.Errorf("checklists non-empty: got %s", got)
	}

	s.Tips.Add("Metro", "Buy a Viva Viagem card")
	if got := s.Status(StepTips); got != StatusValid {
		t.Errorf("tips non-empty: got %s", got)
	}
}

func TestTagAndLocationUniqueness(t *testing.T) {
	s := NewSession(nil)

	s.AddTag("beach")
	s.AddTag("Beach")
	s.AddTag("  ")
	if got := s.Record().Tags; len(got) != 1 {
		t.Errorf("tags = %v, want one entry", got)
	}

	s.AddLocation("Portugal")
	s.AddLocation("portugal")
	s.AddLocation("")
	if got := s.Record().Countries; len(got) != 1 {
		t.Errorf("countries = %v, want one entry", got)
	}

	s.RemoveTag("beach")
	s.RemoveLocation("Portugal")
	if len(s.Record().Tags) != 0 || len(s.Record().Countries) != 0 {
		t.Error("removal failed")
	}
}

func TestSetMembersClampsNegatives(t *testing.T) {
	s := NewSession(nil)
	s.SetMembers(-1, -5)
	if m := s.Record().Members; m.Adults != 0 || m.Children != 0 {
		t.Errorf("negative counts not clamped: %+v", m)
	}
}

func TestEventMutations(t *testing.T) {
	s := validSession()
	s.GoTo(StepItinerary)

	s.AddEvent(1, models.Event{Place: "A"})
	s.AddEvent(1, models.Event{Place: "B"})
	s.AddEvent(99, models.Event{Place: "ignored"})

	if got := s.Record().Days[0].Events; len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}

	s.UpdateEvent(1, 1, models.Event{Place: "B, revised"})
	if got := s.Record().Days[0].Events[1].Place; got != "B, revised" {
		t.Errorf("update failed: %q", got)
	}

	s.DeleteEvent(1, 0)
	events := s.Record().Days[0].Events
	if len(events) != 1 || events[0].Place != "B, revised" {
		t.Errorf("delete failed: %+v", events)
	}

	// Out-of-range indices are ignored.
	s.UpdateEvent(1, 5, models.Event{Place: "nope"})
	s.DeleteEvent(1, 5)
	if len(s.Record().Days[0].Events) != 1 {
		t.Error("out-of-range mutation changed state")
	}
}

func TestSubmitGatedByBasics(t *testing.T) {
	st := store.New(storage.NewMemBridge(), nil)

	s := NewSession(nil)
	if _, err := s.Submit(st); !errors.Is(err, ErrMissingBasics) {
		t.Fatalf("expected ErrMissingBasics, got %v", err)
	}
	if n := len(st.ListAll()); n != 0 {
		t.Fatalf("rejected submit persisted %d trips", n)
	}

	s = validSession()
	saved, err := s.Submit(st)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if saved.ID == "" {
		t.Error("submitted trip has no ID")
	}
}

func TestSubmitAssemblesManagerState(t *testing.T) {
	st := store.New(storage.NewMemBridge(), nil)
	s := validSession()

	s.Accommodations.Add(models.Accommodation{Name: "Hotel Mundial"})
	cat, _ := s.Checklists.AddCategory(TabTodo, "Bookings")
	s.Checklists.AddItem(TabTodo, cat.ID, "Reserve fado show", models.PriorityHigh)
	s.Tips.Add("Metro", "Buy a Viva Viagem card")

	saved, err := s.Submit(st)
	if err != nil {
		t.Fatal(err)
	}

	stored := st.Get(saved.ID)
	if len(stored.Accommodations) != 1 {
		t.Errorf("accommodations not assembled: %+v", stored.Accommodations)
	}
	if len(stored.Checklists.Todo) != 1 || len(stored.Checklists.Todo[0].Items) != 1 {
		t.Errorf("checklists not assembled: %+v", stored.Checklists)
	}
	if len(stored.Tips) != 1 {
		t.Errorf("tips not assembled: %+v", stored.Tips)
	}
}

func TestResubmitKeepsIdentity(t *testing.T) {
	st := store.New(storage.NewMemBridge(), nil)

	first, err := validSession().Submit(st)
	if err != nil {
		t.Fatal(err)
	}

	s := NewSession(st.Get(first.ID))
	s.SetTitle("Lisbon, extended")
	second, err := s.Submit(st)
	if err != nil {
		t.Fatal(err)
	}

	if second.ID != first.ID {
		t.Errorf("resubmit changed ID: %s -> %s", first.ID, second.ID)
	}
	if n := len(st.ListAll()); n != 1 {
		t.Errorf("resubmit duplicated the trip: %d records", n)
	}
}
