package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer/wayfarer-cli/internal/logger"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/storage"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

type sessionState int

const (
	tripListView sessionState = iota
	tripEditorView
	tripViewerView
)

// SwitchViewMsg asks the app to change the active view. TripID selects
// the trip to open; empty means "new trip" for the editor view.
type SwitchViewMsg struct {
	view   sessionState
	tripID string
}

// StatusMsg updates the app-level status line.
type StatusMsg string

type App struct {
	state    sessionState
	store    *store.TripStore
	settings *models.AppSettings

	list   *TripListModel
	editor *EditorModel
	viewer *TripViewerModel

	width     int
	height    int
	statusMsg string
}

func NewApp() *App {
	log := logger.NewFile(filepath.Join(storage.WayfarerDir, storage.LogFile), "info")
	st := store.New(storage.NewFileBridge(""), log)

	app := &App{
		state:    tripListView,
		store:    st,
		settings: st.Settings(),
	}
	app.list = NewTripListModel(st, app.settings)
	return app
}

func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		if a.list != nil {
			a.list.SetSize(msg.Width, msg.Height)
		}
		if a.editor != nil {
			a.editor.SetSize(msg.Width, msg.Height)
		}
		if a.viewer != nil {
			a.viewer.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case tripListView:
			a.state = tripListView
			// Reload trips when returning to the list
			a.list.Reload()
			return a, a.list.Init()
		case tripEditorView:
			a.state = tripEditorView
			var trip *models.TripRecord
			if msg.tripID != "" {
				trip = a.store.Get(msg.tripID)
			}
			a.editor = NewEditorModel(a.store, trip)
			a.editor.SetSize(a.width, a.height)
			return a, a.editor.Init()
		case tripViewerView:
			a.state = tripViewerView
			a.viewer = NewTripViewerModel(a.store, msg.tripID)
			a.viewer.SetSize(a.width, a.height)
			return a, a.viewer.Init()
		}
	}

	// Route to the active view
	switch a.state {
	case tripListView:
		return a.list.Update(msg, a)
	case tripEditorView:
		return a.editor.Update(msg, a)
	case tripViewerView:
		return a.viewer.Update(msg, a)
	}
	return a, nil
}

func (a *App) View() string {
	switch a.state {
	case tripListView:
		return a.list.View()
	case tripEditorView:
		return a.editor.View()
	case tripViewerView:
		return a.viewer.View()
	}
	return ""
}
