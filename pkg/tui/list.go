package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

// TripListModel is the landing view: all saved trips plus keys to plan,
// edit, view, share and delete them.
type TripListModel struct {
	store    *store.TripStore
	settings *models.AppSettings

	trips   []models.TripRecord
	cursor  int
	width   int
	height  int
	status  string
	confirm *ConfirmationModel
}

func NewTripListModel(st *store.TripStore, settings *models.AppSettings) *TripListModel {
	m := &TripListModel{
		store:    st,
		settings: settings,
		confirm:  NewConfirmation(),
	}
	m.Reload()
	return m
}

// Reload refreshes the trip list from the store.
func (m *TripListModel) Reload() {
	m.trips = m.store.ListAll()
	if m.cursor >= len(m.trips) {
		m.cursor = len(m.trips) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *TripListModel) Init() tea.Cmd {
	return nil
}

func (m *TripListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *TripListModel) Update(msg tea.Msg, app *App) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return app, nil
	}

	if m.confirm.Active() {
		return app, m.confirm.Update(keyMsg)
	}

	switch keyMsg.String() {
	case "q", "esc":
		return app, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.trips)-1 {
			m.cursor++
		}

	case "n":
		return app, switchView(tripEditorView, "")

	case "enter", "v":
		if trip := m.selected(); trip != nil {
			return app, switchView(tripViewerView, trip.ID)
		}

	case "e":
		if trip := m.selected(); trip != nil {
			return app, switchView(tripEditorView, trip.ID)
		}

	case "c":
		if trip := m.selected(); trip != nil {
			if err := m.store.SetCurrent(trip.ID); err != nil {
				m.status = "Failed to set current trip"
			} else {
				m.status = fmt.Sprintf("Current trip: %s", trip.Title)
			}
		}

	case "d":
		trip := m.selected()
		if trip == nil {
			break
		}
		id, title := trip.ID, trip.Title
		m.confirm.Show(ConfirmationConfig{
			Message:     fmt.Sprintf("Delete trip '%s'?", title),
			Destructive: true,
		}, func() tea.Cmd {
			if err := m.store.Delete(id); err != nil {
				m.status = "Failed to delete trip"
				return nil
			}
			m.Reload()
			m.status = fmt.Sprintf("Deleted '%s'", title)
			return nil
		}, nil)
	}

	return app, nil
}

func (m *TripListModel) selected() *models.TripRecord {
	if m.cursor < 0 || m.cursor >= len(m.trips) {
		return nil
	}
	trip := m.trips[m.cursor]
	return &trip
}

func (m *TripListModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("WAYFARER · Trips"))
	b.WriteString("\n\n")

	if len(m.trips) == 0 {
		b.WriteString(DimStyle.Render("No trips yet. Press 'n' to plan one."))
		b.WriteString("\n")
	}

	currentID := m.store.CurrentID()
	selRow := SelectedRowStyle(m.settings.Theme)
	for i, trip := range m.trips {
		marker := "  "
		if trip.ID == currentID {
			marker = "* "
		}
		line := fmt.Sprintf("%s%-30s  %s → %s  (%d days)",
			marker, truncate(trip.Title, 30), trip.StartDate, trip.EndDate, len(trip.Days))
		if len(trip.Tags) > 0 {
			line += "  #" + strings.Join(trip.Tags, " #")
		}
		if i == m.cursor {
			b.WriteString(selRow.Render(line))
		} else {
			b.WriteString(NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("n new · enter view · e edit · c current · d delete · q quit"))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func switchView(view sessionState, tripID string) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: view, tripID: tripID}
	}
}
