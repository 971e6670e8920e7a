package share

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/storage"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

func sampleTrip() *models.TripRecord {
	rec := models.NewTripRecord()
	rec.ID = "local-id"
	rec.Title = "Açores & Madeira"
	rec.StartDate = "2026-10-02"
	rec.EndDate = "2026-10-05"
	rec.Countries = []string{"Portugal"}
	rec.Days = []models.DayEntry{
		{Day: 1, Date: "2026-10-02", Events: []models.Event{{Place: "Ponta Delgada", StartTime: "10:00"}}},
	}
	return rec
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCodec("", nil)

	link, err := c.EncodeToURL(sampleTrip())
	if err != nil {
		t.Fatalf("EncodeToURL() error: %v", err)
	}
	if !strings.HasPrefix(link, DefaultBaseURL+"#share=") {
		t.Fatalf("unexpected link shape: %s", link)
	}

	decoded, ok := c.DecodeFromURL(link)
	if !ok {
		t.Fatal("DecodeFromURL() rejected its own output")
	}
	if decoded.Title != "Açores & Madeira" {
		t.Errorf("title did not survive: %q", decoded.Title)
	}
	if decoded.StartDate != "2026-10-02" || decoded.EndDate != "2026-10-05" {
		t.Errorf("dates did not survive: %s / %s", decoded.StartDate, decoded.EndDate)
	}
	if len(decoded.Days) != 1 || len(decoded.Days[0].Events) != 1 {
		t.Fatalf("itinerary did not survive: %+v", decoded.Days)
	}
	if decoded.Days[0].Events[0].Place != "Ponta Delgada" {
		t.Errorf("event did not survive: %+v", decoded.Days[0].Events[0])
	}
}

func TestEncodeCustomBaseURL(t *testing.T) {
	c := NewCodec("https://example.test/p", nil)
	link, err := c.EncodeToURL(sampleTrip())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(link, "https://example.test/p#share=") {
		t.Errorf("custom base URL ignored: %s", link)
	}
}

func TestDecodeMalformedInputs(t *testing.T) {
	c := NewCodec("", nil)

	notJSON := base64.StdEncoding.EncodeToString([]byte("this is not json"))
	emptyObject := base64.StdEncoding.EncodeToString([]byte("%7B%7D"))

	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"no fragment", "https://wayfarer.app/planner"},
		{"wrong fragment", "https://wayfarer.app/planner#other=abc"},
		{"invalid base64", "https://wayfarer.app/planner#share=!!!not-base64!!!"},
		{"valid base64, invalid json", "https://wayfarer.app/planner#share=" + notJSON},
		{"json but not a trip", "https://wayfarer.app/planner#share=" + emptyObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec, ok := c.DecodeFromURL(tt.raw); ok || rec != nil {
				t.Errorf("malformed input accepted: %+v", rec)
			}
		})
	}
}

func TestDecodeBareFragment(t *testing.T) {
	c := NewCodec("", nil)
	link, _ := c.EncodeToURL(sampleTrip())
	payload := strings.TrimPrefix(link, DefaultBaseURL+"#")

	// A pasted "share=..." without the page URL still decodes.
	if _, ok := c.DecodeFromURL(payload); !ok {
		t.Error("bare share= payload rejected")
	}
}

func TestImportSharedStripsID(t *testing.T) {
	c := NewCodec("", nil)
	st := store.New(storage.NewMemBridge(), nil)

	// A local trip already occupies the ID embedded in the link.
	local := sampleTrip()
	local.Title = "Local original"
	if _, err := st.Save(local); err != nil {
		t.Fatal(err)
	}

	link, _ := c.EncodeToURL(sampleTrip())
	imported, err := c.ImportShared(link, st)
	if err != nil {
		t.Fatalf("ImportShared() error: %v", err)
	}

	if imported.ID == "local-id" {
		t.Error("import reused the embedded ID")
	}
	if got := st.Get("local-id"); got == nil || got.Title != "Local original" {
		t.Errorf("import overwrote the local trip: %+v", got)
	}
	if n := len(st.ListAll()); n != 2 {
		t.Errorf("got %d trips after import, want 2", n)
	}
}

func TestImportSharedRejectsGarbage(t *testing.T) {
	c := NewCodec("", nil)
	st := store.New(storage.NewMemBridge(), nil)

	if _, err := c.ImportShared("https://nope.example/", st); err == nil {
		t.Error("expected an error for a link without trip data")
	}
	if n := len(st.ListAll()); n != 0 {
		t.Errorf("failed import still persisted %d trips", n)
	}
}

func TestEncodeNil(t *testing.T) {
	c := NewCodec("", nil)
	if _, err := c.EncodeToURL(nil); err == nil {
		t.Error("encoding nil should error")
	}
}
