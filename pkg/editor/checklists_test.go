package editor

import (
	"errors"
	"testing"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

func seededChecklist(t *testing.T) (*ChecklistManager, models.Category) {
	t.Helper()
	m := NewChecklistManager(models.Checklists{})
	cat, err := m.AddCategory(TabPacking, "Clothes")
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"Jacket", "Boots", "Hat"} {
		if _, err := m.AddItem(TabPacking, cat.ID, text, ""); err != nil {
			t.Fatal(err)
		}
	}
	return m, cat
}

func itemTexts(cats []models.Category, catID string) []string {
	for _, c := range cats {
		if c.ID == catID {
			out := make([]string, len(c.Items))
			for i, item := range c.Items {
				out[i] = item.Text
			}
			return out
		}
	}
	return nil
}

func assertOrderContiguous(t *testing.T, items []models.Item) {
	t.Helper()
	for i, item := range items {
		if item.Order != i {
			t.Errorf("item %q at position %d has Order %d", item.Text, i, item.Order)
		}
	}
}

func TestAddCategoryValidation(t *testing.T) {
	m := NewChecklistManager(models.Checklists{})

	if _, err := m.AddCategory(TabPacking, "   "); !errors.Is(err, ErrCategoryNameRequired) {
		t.Errorf("expected ErrCategoryNameRequired, got %v", err)
	}
	if _, err := m.AddCategory(TabPacking, "Clothes"); err != nil {
		t.Errorf("valid add failed: %v", err)
	}
}

func TestAddItemDefaultsPriority(t *testing.T) {
	m, cat := seededChecklist(t)

	item, err := m.AddItem(TabPacking, cat.ID, "Sunscreen", "")
	if err != nil {
		t.Fatal(err)
	}
	if item.Priority != models.PriorityMedium {
		t.Errorf("empty priority should default to medium, got %q", item.Priority)
	}

	if _, err := m.AddItem(TabPacking, cat.ID, "  ", ""); !errors.Is(err, ErrItemTextRequired) {
		t.Errorf("expected ErrItemTextRequired, got %v", err)
	}
	if _, err := m.AddItem(TabPacking, "missing-cat", "x", ""); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestTabsAreIndependent(t *testing.T) {
	m := NewChecklistManager(models.Checklists{})
	packCat, _ := m.AddCategory(TabPacking, "Clothes")
	todoCat, _ := m.AddCategory(TabTodo, "Bookings")
	m.AddItem(TabPacking, packCat.ID, "Jacket", "")
	m.AddItem(TabTodo, todoCat.ID, "Reserve hotel", "")

	// An ID from one tab must not resolve on the other.
	if _, err := m.AddItem(TabTodo, packCat.ID, "misplaced", ""); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("packing category resolved on the todo tab: %v", err)
	}
	if len(m.Categories(TabPacking)) != 1 || len(m.Categories(TabTodo)) != 1 {
		t.Error("tabs leaked into each other")
	}
	if m.TotalItems() != 2 {
		t.Errorf("TotalItems() = %d, want 2", m.TotalItems())
	}
}

func TestMoveItem(t *testing.T) {
	m, cat := seededChecklist(t)
	items := m.Categories(TabPacking)[0].Items

	// Move "Boots" (position 1) up.
	if !m.MoveItem(TabPacking, cat.ID, items[1].ID, true) {
		t.Fatal("expected move to succeed")
	}
	got := itemTexts(m.Categories(TabPacking), cat.ID)
	want := []string{"Boots", "Jacket", "Hat"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after move up: got %v, want %v", got, want)
		}
	}
	assertOrderContiguous(t, m.Categories(TabPacking)[0].Items)

	// "Boots" is now first; moving up again hits the edge.
	if m.MoveItem(TabPacking, cat.ID, items[1].ID, true) {
		t.Error("move past the top edge should report false")
	}

	// Edge at the bottom too.
	last := m.Categories(TabPacking)[0].Items[2]
	if m.MoveItem(TabPacking, cat.ID, last.ID, false) {
		t.Error("move past the bottom edge should report false")
	}

	if m.MoveItem(TabPacking, cat.ID, "missing-item", true) {
		t.Error("moving a missing item should report false")
	}
}

func TestDeleteItemRenumbers(t *testing.T) {
	m, cat := seededChecklist(t)
	items := m.Categories(TabPacking)[0].Items

	m.DeleteItem(TabPacking, cat.ID, items[0].ID)

	remaining := m.Categories(TabPacking)[0].Items
	if len(remaining) != 2 {
		t.Fatalf("got %d items, want 2", len(remaining))
	}
	assertOrderContiguous(t, remaining)
}

func TestToggleAndPriority(t *testing.T) {
	m, cat := seededChecklist(t)
	item := m.Categories(TabPacking)[0].Items[0]

	m.ToggleItem(TabPacking, cat.ID, item.ID)
	if !m.Categories(TabPacking)[0].Items[0].Checked {
		t.Error("toggle did not check the item")
	}
	m.ToggleItem(TabPacking, cat.ID, item.ID)
	if m.Categories(TabPacking)[0].Items[0].Checked {
		t.Error("second toggle did not uncheck the item")
	}

	m.SetPriority(TabPacking, cat.ID, item.ID, models.PriorityHigh)
	if got := m.Categories(TabPacking)[0].Items[0].Priority; got != models.PriorityHigh {
		t.Errorf("priority = %q, want high", got)
	}
}

func TestDeleteCategoryRemovesItems(t *testing.T) {
	m, cat := seededChecklist(t)

	m.DeleteCategory(TabPacking, cat.ID)
	if len(m.Categories(TabPacking)) != 0 {
		t.Error("category survived deletion")
	}
	if m.TotalItems() != 0 {
		t.Errorf("TotalItems() = %d after deleting the only category", m.TotalItems())
	}
}

func TestApplyTemplateAssignsFreshIDs(t *testing.T) {
	m, cat := seededChecklist(t)
	m.ToggleItem(TabPacking, cat.ID, m.Categories(TabPacking)[0].Items[0].ID)
	tpl := m.TemplateFromTab(TabPacking, "Standard packing")

	m.ApplyTemplate(TabPacking, tpl)
	cats := m.Categories(TabPacking)
	if len(cats) != 2 {
		t.Fatalf("got %d categories after apply, want 2", len(cats))
	}
	if cats[1].ID == cat.ID {
		t.Error("applied category reused the source ID")
	}
	for i, item := range cats[1].Items {
		if item.ID == cats[0].Items[i].ID {
			t.Errorf("applied item %d reused the source ID", i)
		}
		if item.Checked {
			t.Errorf("applied item %d should start unchecked", i)
		}
	}

	// Applying the same template twice is allowed.
	m.ApplyTemplate(TabPacking, tpl)
	if got := len(m.Categories(TabPacking)); got != 3 {
		t.Errorf("second apply: got %d categories, want 3", got)
	}
}

func TestTemplateFromTabSnapshots(t *testing.T) {
	m, cat := seededChecklist(t)
	tpl := m.TemplateFromTab(TabPacking, "Snapshot")

	// Later edits must not leak into the captured template.
	m.AddItem(TabPacking, cat.ID, "Gloves", "")

	if len(tpl.Categories) != 1 || len(tpl.Categories[0].Items) != 3 {
		t.Errorf("template mutated after capture: %+v", tpl.Categories)
	}
	if tpl.Name != "Snapshot" {
		t.Errorf("template name = %q", tpl.Name)
	}
}
