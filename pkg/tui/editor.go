package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer/wayfarer-cli/pkg/editor"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

// formKind identifies which input form is open in the editor.
type formKind int

const (
	formNone formKind = iota
	formBasics
	formLocation
	formTag
	formEvent
	formAccommodation
	formCategory
	formItem
	formTip
	formTemplateName
)

// tripTypes and themes are cycled in place rather than typed.
var tripTypes = []string{models.TripTypeDomestic, models.TripTypeInternational}

var themes = []string{
	models.ThemeNone, models.ThemeSolo, models.ThemeFriends,
	models.ThemeCouple, models.ThemeFamily, models.ThemeBabymoon,
}

// EditorModel drives the five-step trip wizard around an editor.Session.
// All trip state lives in the session; this model only holds cursors and
// the currently open input form.
type EditorModel struct {
	session *editor.Session
	store   *store.TripStore

	width  int
	height int
	status string

	confirm *ConfirmationModel

	form   formKind
	inputs []textinput.Model
	labels []string
	focus  int

	// itinerary step
	dayCursor    int
	eventCursor  int
	eventEditIdx int

	// accommodations step
	accCursor  int
	accEditID  string
	assigning  bool
	dateCursor int

	// checklists step
	catCursor         int
	itemCursor        int
	onItems           bool
	selectingTemplate bool
	tplCursor         int

	// tips step
	tipCursor int
	tipEditID string
}

// NewEditorModel starts an editor for the given trip (nil = new draft).
func NewEditorModel(st *store.TripStore, trip *models.TripRecord) *EditorModel {
	return &EditorModel{
		session: editor.NewSession(trip),
		store:   st,
		confirm: NewConfirmation(),
	}
}

func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *EditorModel) Update(msg tea.Msg, app *App) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return app, m.updateFocusedInput(msg)
	}

	if m.confirm.Active() {
		return app, m.confirm.Update(keyMsg)
	}

	if m.form != formNone {
		return app, m.updateForm(keyMsg)
	}

	return m.updateBrowse(keyMsg, app)
}

// updateBrowse handles keys while no input form is open.
func (m *EditorModel) updateBrowse(msg tea.KeyMsg, app *App) (tea.Model, tea.Cmd) {
	m.status = ""

	// Step navigation is always available; it can never fail.
	switch msg.String() {
	case "tab", "right":
		m.session.Next()
		m.leaveStep()
		return app, nil
	case "shift+tab", "left":
		m.session.Prev()
		m.leaveStep()
		return app, nil
	case "1", "2", "3", "4", "5":
		if !m.digitIsStepJump() {
			break
		}
		n, _ := strconv.Atoi(msg.String())
		m.session.GoTo(editor.Step(n))
		m.leaveStep()
		return app, nil
	case "esc":
		if m.assigning {
			m.assigning = false
			return app, nil
		}
		if m.selectingTemplate {
			m.selectingTemplate = false
			return app, nil
		}
		if m.onItems {
			m.onItems = false
			return app, nil
		}
		m.confirm.Show(ConfirmationConfig{
			Message:     "Discard changes and leave the editor?",
			Destructive: true,
		}, func() tea.Cmd {
			return switchView(tripListView, "")
		}, nil)
		return app, nil
	}

	switch m.session.Step() {
	case editor.StepBasicInfo:
		m.updateBasicInfo(msg)
	case editor.StepItinerary:
		m.updateItinerary(msg)
	case editor.StepAccommodations:
		m.updateAccommodations(msg)
	case editor.StepChecklists:
		m.updateChecklists(msg)
	case editor.StepTips:
		if cmd := m.updateTips(msg, app); cmd != nil {
			return app, cmd
		}
	}
	return app, nil
}

// digitIsStepJump reports whether digit keys currently mean "jump to
// step". Inside the checklist item cursor they mean priority instead.
func (m *EditorModel) digitIsStepJump() bool {
	return !(m.session.Step() == editor.StepChecklists && m.onItems)
}

func (m *EditorModel) updateBasicInfo(msg tea.KeyMsg) {
	rec := m.session.Record()
	switch msg.String() {
	case "e":
		m.openForm(formBasics,
			[]string{"Title", "Start date", "End date", "Adults", "Children"},
			[]string{rec.Title, rec.StartDate, rec.EndDate,
				strconv.Itoa(rec.Members.Adults), strconv.Itoa(rec.Members.Children)})
	case "a":
		m.openForm(formLocation, []string{"Destination"}, []string{""})
	case "r":
		if n := len(rec.Countries); n > 0 {
			m.session.RemoveLocation(rec.Countries[n-1])
		}
	case "t":
		m.openForm(formTag, []string{"Tag"}, []string{""})
	case "y":
		if n := len(rec.Tags); n > 0 {
			m.session.RemoveTag(rec.Tags[n-1])
		}
	case "p":
		m.session.SetTripType(cycle(tripTypes, rec.TripType))
	case "m":
		m.session.SetTheme(cycle(themes, rec.Theme))
	}
}

func (m *EditorModel) updateItinerary(msg tea.KeyMsg) {
	days := m.session.Record().Days
	if len(days) == 0 {
		return
	}
	day := days[m.dayCursor]

	switch msg.String() {
	case "<", "h":
		if m.dayCursor > 0 {
			m.dayCursor--
			m.eventCursor = 0
		}
	case ">", "l":
		if m.dayCursor < len(days)-1 {
			m.dayCursor++
			m.eventCursor = 0
		}
	case "up", "k":
		if m.eventCursor > 0 {
			m.eventCursor--
		}
	case "down", "j":
		if m.eventCursor < len(day.Events)-1 {
			m.eventCursor++
		}
	case "a":
		m.eventEditIdx = -1
		m.openForm(formEvent,
			[]string{"Place", "Location", "Start (HH:MM)", "End (HH:MM)", "Description"},
			[]string{"", "", "", "", ""})
	case "e":
		if m.eventCursor < len(day.Events) {
			ev := day.Events[m.eventCursor]
			m.eventEditIdx = m.eventCursor
			m.openForm(formEvent,
				[]string{"Place", "Location", "Start (HH:MM)", "End (HH:MM)", "Description"},
				[]string{ev.Place, ev.Location, ev.StartTime, ev.EndTime, ev.Description})
		}
	case "x":
		if m.eventCursor < len(day.Events) {
			m.session.DeleteEvent(day.Day, m.eventCursor)
			m.clampCursors()
		}
	}
}

func (m *EditorModel) updateAccommodations(msg tea.KeyMsg) {
	accs := m.session.Accommodations.List()

	if m.assigning {
		m.updateDateAssign(msg, accs)
		return
	}

	switch msg.String() {
	case "up", "k":
		if m.accCursor > 0 {
			m.accCursor--
		}
	case "down", "j":
		if m.accCursor < len(accs)-1 {
			m.accCursor++
		}
	case "a":
		m.accEditID = ""
		m.openForm(formAccommodation, accommodationLabels, make([]string, len(accommodationLabels)))
	case "e":
		if m.accCursor < len(accs) {
			acc := accs[m.accCursor]
			m.accEditID = acc.ID
			m.openForm(formAccommodation, accommodationLabels,
				[]string{acc.Name, acc.Type, acc.Location, acc.CheckIn, acc.CheckOut, acc.Price, acc.Notes})
		}
	case "x":
		if m.accCursor < len(accs) {
			m.session.Accommodations.Delete(accs[m.accCursor].ID)
			m.clampCursors()
		}
	case "n":
		if m.accCursor < len(accs) && len(m.session.Record().Days) > 0 {
			m.assigning = true
			m.dateCursor = 0
		}
	}
}

func (m *EditorModel) updateDateAssign(msg tea.KeyMsg, accs []models.Accommodation) {
	days := m.session.Record().Days
	switch msg.String() {
	case "up", "k":
		if m.dateCursor > 0 {
			m.dateCursor--
		}
	case "down", "j":
		if m.dateCursor < len(days)-1 {
			m.dateCursor++
		}
	case " ", "enter":
		if m.accCursor < len(accs) && m.dateCursor < len(days) {
			m.session.Accommodations.ToggleDate(accs[m.accCursor].ID, days[m.dateCursor].Date)
		}
	case "n":
		m.assigning = false
	}
}

func (m *EditorModel) updateChecklists(msg tea.KeyMsg) {
	cl := m.session.Checklists
	cats := cl.Categories(cl.ActiveTab())

	if m.selectingTemplate {
		m.updateTemplateSelect(msg)
		return
	}

	if m.onItems {
		m.updateChecklistItems(msg, cats)
		return
	}

	switch msg.String() {
	case "p":
		if cl.ActiveTab() == editor.TabPacking {
			cl.SetActiveTab(editor.TabTodo)
		} else {
			cl.SetActiveTab(editor.TabPacking)
		}
		m.catCursor = 0
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
		}
	case "down", "j":
		if m.catCursor < len(cats)-1 {
			m.catCursor++
		}
	case "a":
		m.openForm(formCategory, []string{"Category name"}, []string{""})
	case "i":
		if m.catCursor < len(cats) {
			m.openForm(formItem, []string{"Item", "Priority (high/medium/low)"}, []string{"", ""})
		}
	case "x":
		if m.catCursor < len(cats) {
			cl.DeleteCategory(cl.ActiveTab(), cats[m.catCursor].ID)
			m.clampCursors()
		}
	case "enter":
		if m.catCursor < len(cats) && len(cats[m.catCursor].Items) > 0 {
			m.onItems = true
			m.itemCursor = 0
		}
	case "t":
		if len(m.store.ListTemplates()) > 0 {
			m.selectingTemplate = true
			m.tplCursor = 0
		} else {
			m.status = "No saved templates"
		}
	case "s":
		if len(cats) > 0 {
			m.openForm(formTemplateName, []string{"Template name"}, []string{""})
		}
	}
}

func (m *EditorModel) updateChecklistItems(msg tea.KeyMsg, cats []models.Category) {
	cl := m.session.Checklists
	if m.catCursor >= len(cats) {
		m.onItems = false
		return
	}
	cat := cats[m.catCursor]
	items := cat.Items

	switch msg.String() {
	case "up", "k":
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case "down", "j":
		if m.itemCursor < len(items)-1 {
			m.itemCursor++
		}
	case " ":
		if m.itemCursor < len(items) {
			cl.ToggleItem(cl.ActiveTab(), cat.ID, items[m.itemCursor].ID)
		}
	case "1":
		m.setPriority(cat, items, models.PriorityHigh)
	case "2":
		m.setPriority(cat, items, models.PriorityMedium)
	case "3":
		m.setPriority(cat, items, models.PriorityLow)
	case "K":
		if m.itemCursor < len(items) && cl.MoveItem(cl.ActiveTab(), cat.ID, items[m.itemCursor].ID, true) {
			m.itemCursor--
		}
	case "J":
		if m.itemCursor < len(items) && cl.MoveItem(cl.ActiveTab(), cat.ID, items[m.itemCursor].ID, false) {
			m.itemCursor++
		}
	case "x":
		if m.itemCursor < len(items) {
			cl.DeleteItem(cl.ActiveTab(), cat.ID, items[m.itemCursor].ID)
			m.clampCursors()
		}
	}
}

func (m *EditorModel) setPriority(cat models.Category, items []models.Item, priority string) {
	if m.itemCursor < len(items) {
		cl := m.session.Checklists
		cl.SetPriority(cl.ActiveTab(), cat.ID, items[m.itemCursor].ID, priority)
	}
}

func (m *EditorModel) updateTemplateSelect(msg tea.KeyMsg) {
	templates := m.store.ListTemplates()
	switch msg.String() {
	case "up", "k":
		if m.tplCursor > 0 {
			m.tplCursor--
		}
	case "down", "j":
		if m.tplCursor < len(templates)-1 {
			m.tplCursor++
		}
	case "enter":
		if m.tplCursor < len(templates) {
			cl := m.session.Checklists
			cl.ApplyTemplate(cl.ActiveTab(), templates[m.tplCursor])
			m.status = fmt.Sprintf("Applied template '%s'", templates[m.tplCursor].Name)
		}
		m.selectingTemplate = false
	}
}

func (m *EditorModel) updateTips(msg tea.KeyMsg, app *App) tea.Cmd {
	tips := m.session.Tips.List()
	switch msg.String() {
	case "up", "k":
		if m.tipCursor > 0 {
			m.tipCursor--
		}
	case "down", "j":
		if m.tipCursor < len(tips)-1 {
			m.tipCursor++
		}
	case "a":
		m.tipEditID = ""
		m.openForm(formTip, []string{"Title", "Content"}, []string{"", ""})
	case "e":
		if m.tipCursor < len(tips) {
			tip := tips[m.tipCursor]
			m.tipEditID = tip.ID
			m.openForm(formTip, []string{"Title", "Content"}, []string{tip.Title, tip.Content})
		}
	case "x":
		if m.tipCursor < len(tips) {
			m.session.Tips.Delete(tips[m.tipCursor].ID)
			m.clampCursors()
		}
	case "s":
		trip, err := m.session.Submit(m.store)
		if err != nil {
			m.status = err.Error()
			return nil
		}
		if err := m.store.SetCurrent(trip.ID); err != nil {
			m.status = "Saved, but failed to set current trip"
			return nil
		}
		return tea.Batch(
			func() tea.Msg { return StatusMsg(fmt.Sprintf("Saved '%s'", trip.Title)) },
			switchView(tripListView, ""),
		)
	}
	return nil
}

// openForm builds a fresh input form with the given labels and values
// and focuses the first field.
func (m *EditorModel) openForm(kind formKind, labels, values []string) {
	m.form = kind
	m.labels = labels
	m.focus = 0
	m.inputs = make([]textinput.Model, len(labels))
	for i := range labels {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.SetValue(values[i])
		in.CharLimit = 200
		if i == 0 {
			in.Focus()
		}
		m.inputs[i] = in
	}
}

func (m *EditorModel) closeForm() {
	m.form = formNone
	m.inputs = nil
	m.labels = nil
}

func (m *EditorModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return nil

	case "tab", "down":
		m.setFocus(m.focus + 1)
		return nil

	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return nil

	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return nil
		}
		m.commitForm()
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *EditorModel) setFocus(focus int) {
	if focus < 0 {
		focus = len(m.inputs) - 1
	}
	if focus >= len(m.inputs) {
		focus = 0
	}
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
}

func (m *EditorModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.form == formNone || m.focus >= len(m.inputs) {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// commitForm applies the open form to the session. Validation errors
// from the managers surface on the status line and keep the form open.
func (m *EditorModel) commitForm() {
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = strings.TrimSpace(m.inputs[i].Value())
	}

	switch m.form {
	case formBasics:
		m.session.SetTitle(values[0])
		m.session.SetDates(values[1], values[2])
		adults, _ := strconv.Atoi(values[3])
		children, _ := strconv.Atoi(values[4])
		m.session.SetMembers(adults, children)

	case formLocation:
		m.session.AddLocation(values[0])

	case formTag:
		m.session.AddTag(values[0])

	case formEvent:
		days := m.session.Record().Days
		if m.dayCursor < len(days) {
			ev := models.Event{
				Place:       values[0],
				Location:    values[1],
				StartTime:   values[2],
				EndTime:     values[3],
				Description: values[4],
			}
			day := days[m.dayCursor].Day
			if m.eventEditIdx >= 0 {
				m.session.UpdateEvent(day, m.eventEditIdx, ev)
			} else {
				m.session.AddEvent(day, ev)
			}
		}

	case formAccommodation:
		acc := models.Accommodation{
			Name: values[0], Type: values[1], Location: values[2],
			CheckIn: values[3], CheckOut: values[4], Price: values[5], Notes: values[6],
		}
		var err error
		if m.accEditID != "" {
			if existing := m.session.Accommodations.Get(m.accEditID); existing != nil {
				updated := *existing
				updated.Name = acc.Name
				updated.Type = acc.Type
				updated.Location = acc.Location
				updated.CheckIn = acc.CheckIn
				updated.CheckOut = acc.CheckOut
				updated.Price = acc.Price
				updated.Notes = acc.Notes
				err = m.session.Accommodations.Update(updated)
			}
		} else {
			_, err = m.session.Accommodations.Add(acc)
		}
		if err != nil {
			m.status = err.Error()
			return
		}

	case formCategory:
		cl := m.session.Checklists
		if _, err := cl.AddCategory(cl.ActiveTab(), values[0]); err != nil {
			m.status = err.Error()
			return
		}

	case formItem:
		cl := m.session.Checklists
		cats := cl.Categories(cl.ActiveTab())
		if m.catCursor < len(cats) {
			priority := strings.ToLower(values[1])
			if _, err := cl.AddItem(cl.ActiveTab(), cats[m.catCursor].ID, values[0], priority); err != nil {
				m.status = err.Error()
				return
			}
		}

	case formTip:
		var err error
		if m.tipEditID != "" {
			err = m.session.Tips.Update(models.Tip{ID: m.tipEditID, Title: values[0], Content: values[1]})
		} else {
			_, err = m.session.Tips.Add(values[0], values[1])
		}
		if err != nil {
			m.status = err.Error()
			return
		}

	case formTemplateName:
		cl := m.session.Checklists
		tpl := cl.TemplateFromTab(cl.ActiveTab(), values[0])
		if tpl.Name == "" {
			m.status = "Template name is required"
			return
		}
		if _, err := m.store.SaveTemplate(&tpl); err != nil {
			m.status = "Failed to save template"
			return
		}
		m.status = fmt.Sprintf("Template '%s' saved", tpl.Name)
	}

	m.closeForm()
}

// leaveStep clears step-local modes on navigation so a half-open mode
// never survives into another step.
func (m *EditorModel) leaveStep() {
	m.assigning = false
	m.selectingTemplate = false
	m.onItems = false
	m.clampCursors()
}

// clampCursors keeps all cursors inside their collections after a
// mutation or step change.
func (m *EditorModel) clampCursors() {
	rec := m.session.Record()

	m.dayCursor = clamp(m.dayCursor, len(rec.Days))
	if m.dayCursor < len(rec.Days) {
		m.eventCursor = clamp(m.eventCursor, len(rec.Days[m.dayCursor].Events))
	} else {
		m.eventCursor = 0
	}

	m.accCursor = clamp(m.accCursor, m.session.Accommodations.Len())

	cl := m.session.Checklists
	cats := cl.Categories(cl.ActiveTab())
	m.catCursor = clamp(m.catCursor, len(cats))
	if m.catCursor < len(cats) {
		m.itemCursor = clamp(m.itemCursor, len(cats[m.catCursor].Items))
	} else {
		m.itemCursor = 0
		m.onItems = false
	}

	m.tipCursor = clamp(m.tipCursor, m.session.Tips.Len())
}

func clamp(cursor, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// cycle returns the element after current, wrapping around.
func cycle(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

var accommodationLabels = []string{
	"Name", "Type", "Location", "Check-in", "Check-out", "Price", "Notes",
}
