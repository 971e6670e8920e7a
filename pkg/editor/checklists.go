package editor

import (
	"errors"
	"strings"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

// Checklist tabs.
const (
	TabPacking = "packing"
	TabTodo    = "todo"
)

var (
	// ErrCategoryNameRequired rejects empty category names.
	ErrCategoryNameRequired = errors.New("category name is required")
	// ErrItemTextRequired rejects empty item text.
	ErrItemTextRequired = errors.New("item text is required")
	// ErrCategoryNotFound is returned for unknown category IDs.
	ErrCategoryNotFound = errors.New("category not found")
)

// ChecklistManager owns the two checklist tabs for one editing session.
// Each tab holds an ordered category list; item Order fields are
// recomputed from slice position on every mutation, so position is
// always authoritative.
type ChecklistManager struct {
	packing []models.Category
	todo    []models.Category
	active  string
}

// NewChecklistManager seeds a manager from the record being edited.
func NewChecklistManager(seed models.Checklists) *ChecklistManager {
	m := &ChecklistManager{active: TabPacking}
	m.packing = cloneTab(seed.Packing)
	m.todo = cloneTab(seed.Todo)
	return m
}

func cloneTab(cats []models.Category) []models.Category {
	out := make([]models.Category, len(cats))
	for i, c := range cats {
		out[i] = c
		out[i].Items = append([]models.Item(nil), c.Items...)
	}
	return out
}

// SetActiveTab switches between packing and todo; unknown names are
// ignored.
func (m *ChecklistManager) SetActiveTab(tab string) {
	if tab == TabPacking || tab == TabTodo {
		m.active = tab
	}
}

// ActiveTab returns the currently selected tab name.
func (m *ChecklistManager) ActiveTab() string {
	return m.active
}

func (m *ChecklistManager) tab(name string) *[]models.Category {
	if name == TabTodo {
		return &m.todo
	}
	return &m.packing
}

// Categories returns the category list of a tab.
func (m *ChecklistManager) Categories(tab string) []models.Category {
	return *m.tab(tab)
}

// AddCategory appends a named category to a tab.
func (m *ChecklistManager) AddCategory(tab, name string) (models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return models.Category{}, ErrCategoryNameRequired
	}
	cat := models.Category{
		ID:    models.NewID("cat"),
		Name:  name,
		Items: []models.Item{},
	}
	cats := m.tab(tab)
	*cats = append(*cats, cat)
	return cat, nil
}

// RenameCategory updates a category's name.
func (m *ChecklistManager) RenameCategory(tab, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCategoryNameRequired
	}
	cats := *m.tab(tab)
	for i := range cats {
		if cats[i].ID == id {
			cats[i].Name = name
			return nil
		}
	}
	return ErrCategoryNotFound
}

// DeleteCategory removes a category and all its items.
func (m *ChecklistManager) DeleteCategory(tab, id string) {
	cats := m.tab(tab)
	for i, c := range *cats {
		if c.ID == id {
			*cats = append((*cats)[:i], (*cats)[i+1:]...)
			return
		}
	}
}

// AddItem appends an item to a category. Text is required; an empty
// priority defaults to medium.
func (m *ChecklistManager) AddItem(tab, catID, text, priority string) (models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return models.Item{}, ErrItemTextRequired
	}
	if priority == "" {
		priority = models.PriorityMedium
	}

	cats := *m.tab(tab)
	for i := range cats {
		if cats[i].ID != catID {
			continue
		}
		item := models.Item{
			ID:       models.NewID("item"),
			Text:     text,
			Priority: priority,
			Order:    len(cats[i].Items),
		}
		cats[i].Items = append(cats[i].Items, item)
		return item, nil
	}
	return models.Item{}, ErrCategoryNotFound
}

// SetItemText updates an item's text; empty text is rejected.
func (m *ChecklistManager) SetItemText(tab, catID, itemID, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrItemTextRequired
	}
	if item := m.findItem(tab, catID, itemID); item != nil {
		item.Text = text
		return nil
	}
	return errors.New("item not found")
}

// SetPriority reassigns an item's three-level priority.
func (m *ChecklistManager) SetPriority(tab, catID, itemID, priority string) {
	if item := m.findItem(tab, catID, itemID); item != nil {
		item.Priority = priority
	}
}

// ToggleItem flips an item's checked flag.
func (m *ChecklistManager) ToggleItem(tab, catID, itemID string) {
	if item := m.findItem(tab, catID, itemID); item != nil {
		item.Checked = !item.Checked
	}
}

// MoveItem swaps an item with its neighbor (up=true swaps toward the
// front). Reordering is adjacent-swap only; Order fields are renumbered
// afterwards. Returns false when the item is already at the edge or not
// found.
func (m *ChecklistManager) MoveItem(tab, catID, itemID string, up bool) bool {
	cats := *m.tab(tab)
	for i := range cats {
		if cats[i].ID != catID {
			continue
		}
		items := cats[i].Items
		for j := range items {
			if items[j].ID != itemID {
				continue
			}
			k := j + 1
			if up {
				k = j - 1
			}
			if k < 0 || k >= len(items) {
				return false
			}
			items[j], items[k] = items[k], items[j]
			renumber(items)
			return true
		}
	}
	return false
}

// DeleteItem removes an item and renumbers the remainder.
func (m *ChecklistManager) DeleteItem(tab, catID, itemID string) {
	cats := *m.tab(tab)
	for i := range cats {
		if cats[i].ID != catID {
			continue
		}
		for j, item := range cats[i].Items {
			if item.ID == itemID {
				cats[i].Items = append(cats[i].Items[:j], cats[i].Items[j+1:]...)
				renumber(cats[i].Items)
				return
			}
		}
	}
}

// ApplyTemplate appends a template's categories to a tab, assigning
// fresh IDs so the template can be applied more than once.
func (m *ChecklistManager) ApplyTemplate(tab string, tpl models.ChecklistTemplate) {
	cats := m.tab(tab)
	for _, c := range tpl.Categories {
		cat := models.Category{
			ID:    models.NewID("cat"),
			Name:  c.Name,
			Items: make([]models.Item, 0, len(c.Items)),
		}
		for _, item := range c.Items {
			cat.Items = append(cat.Items, models.Item{
				ID:       models.NewID("item"),
				Text:     item.Text,
				Priority: item.Priority,
				Order:    len(cat.Items),
			})
		}
		*cats = append(*cats, cat)
	}
}

// TemplateFromTab snapshots a tab as a named template for reuse on
// future trips.
func (m *ChecklistManager) TemplateFromTab(tab, name string) models.ChecklistTemplate {
	return models.ChecklistTemplate{
		Name:       name,
		Categories: cloneTab(*m.tab(tab)),
	}
}

// Lists returns a copy of both tabs for assembly at submit time.
func (m *ChecklistManager) Lists() models.Checklists {
	return models.Checklists{
		Packing: cloneTab(m.packing),
		Todo:    cloneTab(m.todo),
	}
}

// TotalItems counts items across both tabs; drives the step status.
func (m *ChecklistManager) TotalItems() int {
	n := 0
	for _, c := range m.packing {
		n += len(c.Items)
	}
	for _, c := range m.todo {
		n += len(c.Items)
	}
	return n
}

func (m *ChecklistManager) findItem(tab, catID, itemID string) *models.Item {
	cats := *m.tab(tab)
	for i := range cats {
		if cats[i].ID != catID {
			continue
		}
		for j := range cats[i].Items {
			if cats[i].Items[j].ID == itemID {
				return &cats[i].Items[j]
			}
		}
	}
	return nil
}

func renumber(items []models.Item) {
	for i := range items {
		items[i].Order = i
	}
}
