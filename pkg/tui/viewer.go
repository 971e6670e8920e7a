package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/wayfarer/wayfarer-cli/pkg/compose"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

// TripViewerModel shows one trip's composed itinerary in a scrollable
// viewport.
type TripViewerModel struct {
	store  *store.TripStore
	trip   *models.TripRecord
	width  int
	height int

	viewport viewport.Model
}

func NewTripViewerModel(st *store.TripStore, tripID string) *TripViewerModel {
	m := &TripViewerModel{
		store:    st,
		trip:     st.Get(tripID),
		viewport: viewport.New(80, 20),
	}
	// Opening a trip makes it the current one.
	if m.trip != nil {
		_ = st.SetCurrent(m.trip.ID)
	}
	return m
}

func (m *TripViewerModel) Init() tea.Cmd {
	m.refreshContent()
	return nil
}

func (m *TripViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	if height > 4 {
		m.viewport.Height = height - 4
	}
	m.refreshContent()
}

func (m *TripViewerModel) refreshContent() {
	if m.trip == nil {
		m.viewport.SetContent(DimStyle.Render("Trip not found."))
		return
	}
	composed, err := compose.ComposeTrip(m.trip)
	if err != nil {
		m.viewport.SetContent(ErrorStyle.Render(err.Error()))
		return
	}
	wrap := m.width - 2
	if wrap < 20 {
		wrap = 78
	}
	m.viewport.SetContent(wordwrap.String(composed, wrap))
}

func (m *TripViewerModel) Update(msg tea.Msg, app *App) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return app, switchView(tripListView, "")
		case "e":
			if m.trip != nil {
				return app, switchView(tripEditorView, m.trip.ID)
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return app, cmd
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return app, cmd
	}
	return app, nil
}

func (m *TripViewerModel) View() string {
	title := "Trip"
	if m.trip != nil {
		title = m.trip.Title
	}
	header := TitleStyle.Render("WAYFARER · " + title)
	help := HelpStyle.Render("↑/↓ scroll · e edit · esc back")
	return header + "\n\n" + m.viewport.View() + "\n" + help
}
