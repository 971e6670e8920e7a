package editor

import (
	"errors"
	"testing"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

func TestTipAddRequiresBothFields(t *testing.T) {
	m := NewTipManager(nil)

	tests := []struct {
		name    string
		title   string
		content string
		ok      bool
	}{
		{"both present", "Metro", "Buy a Viva Viagem card", true},
		{"missing title", "", "content", false},
		{"missing content", "title", "", false},
		{"whitespace only", "  ", "  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Add(tt.title, tt.content)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrTipIncomplete) {
				t.Errorf("expected ErrTipIncomplete, got %v", err)
			}
		})
	}
}

func TestTipUpdateAndDelete(t *testing.T) {
	m := NewTipManager(nil)
	tip, err := m.Add("Metro", "Buy a Viva Viagem card")
	if err != nil {
		t.Fatal(err)
	}

	tip.Content = "Tap in and out at the gates"
	if err := m.Update(tip); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got := m.List()[0].Content; got != "Tap in and out at the gates" {
		t.Errorf("update not applied: %q", got)
	}

	if err := m.Update(models.Tip{ID: "missing", Title: "x", Content: "y"}); err == nil {
		t.Error("updating a missing tip should error")
	}

	m.Delete(tip.ID)
	if m.Len() != 0 {
		t.Error("delete failed")
	}
	m.Delete("missing")
}
