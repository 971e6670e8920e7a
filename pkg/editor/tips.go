package editor

import (
	"errors"
	"strings"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

// ErrTipIncomplete rejects tips missing a title or content.
var ErrTipIncomplete = errors.New("tip title and content are required")

// TipManager owns the tip list for one editing session.
type TipManager struct {
	list []models.Tip
}

// NewTipManager seeds a manager from the record being edited.
func NewTipManager(seed []models.Tip) *TipManager {
	m := &TipManager{list: make([]models.Tip, len(seed))}
	copy(m.list, seed)
	return m
}

// Add appends a tip; title and content are both required and a rejected
// add leaves state unchanged.
func (m *TipManager) Add(title, content string) (models.Tip, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return models.Tip{}, ErrTipIncomplete
	}
	tip := models.Tip{
		ID:      models.NewID("tip"),
		Title:   title,
		Content: content,
	}
	m.list = append(m.list, tip)
	return tip, nil
}

// Update replaces the tip with the same ID.
func (m *TipManager) Update(tip models.Tip) error {
	if strings.TrimSpace(tip.Title) == "" || strings.TrimSpace(tip.Content) == "" {
		return ErrTipIncomplete
	}
	for i, t := range m.list {
		if t.ID == tip.ID {
			m.list[i] = tip
			return nil
		}
	}
	return errors.New("tip not found")
}

// Delete removes a tip by ID; unknown IDs are no-ops.
func (m *TipManager) Delete(id string) {
	for i, t := range m.list {
		if t.ID == id {
			m.list = append(m.list[:i], m.list[i+1:]...)
			return
		}
	}
}

// List returns a copy of the current list for assembly at submit time.
func (m *TipManager) List() []models.Tip {
	out := make([]models.Tip, len(m.list))
	copy(out, m.list)
	return out
}

// Len reports how many tips the session holds.
func (m *TipManager) Len() int {
	return len(m.list)
}
