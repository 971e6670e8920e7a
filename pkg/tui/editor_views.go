package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wayfarer/wayfarer-cli/pkg/editor"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

var stepNames = map[editor.Step]string{
	editor.StepBasicInfo:      "Basics",
	editor.StepItinerary:      "Itinerary",
	editor.StepAccommodations: "Stays",
	editor.StepChecklists:     "Checklists",
	editor.StepTips:           "Tips",
}

func (m *EditorModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("WAYFARER · Trip Editor"))
	b.WriteString("\n")
	b.WriteString(m.stepBar())
	b.WriteString("\n\n")

	if m.form != formNone {
		b.WriteString(m.formView())
	} else {
		switch m.session.Step() {
		case editor.StepBasicInfo:
			b.WriteString(m.basicInfoView())
		case editor.StepItinerary:
			b.WriteString(m.itineraryView())
		case editor.StepAccommodations:
			b.WriteString(m.accommodationsView())
		case editor.StepChecklists:
			b.WriteString(m.checklistsView())
		case editor.StepTips:
			b.WriteString(m.tipsView())
		}
	}

	if m.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render(m.helpLine()))
	return b.String()
}

// stepBar renders the five step labels with their advisory status color.
func (m *EditorModel) stepBar() string {
	parts := make([]string, 0, int(editor.StepMax))
	for step := editor.StepMin; step <= editor.StepMax; step++ {
		label := fmt.Sprintf("%d %s", step, stepNames[step])
		style := statusStyle(m.session.Status(step))
		if step == m.session.Step() {
			label = SelectedStyle.Render(" " + label + " ")
		} else {
			label = style.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, DimStyle.Render("  ·  "))
}

func statusStyle(status editor.Status) lipgloss.Style {
	switch status {
	case editor.StatusValid:
		return StatusValidStyle
	case editor.StatusInvalid:
		return StatusInvalidStyle
	default:
		return StatusEmptyStyle
	}
}

func (m *EditorModel) basicInfoView() string {
	rec := m.session.Record()
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Basic info"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Title:       %s\n", valueOrDim(rec.Title, "(untitled)")))
	b.WriteString(fmt.Sprintf("  Dates:       %s → %s\n", rec.StartDate, rec.EndDate))
	b.WriteString(fmt.Sprintf("  Type:        %s\n", rec.TripType))
	b.WriteString(fmt.Sprintf("  Theme:       %s\n", valueOrDim(rec.Theme, "(none)")))
	b.WriteString(fmt.Sprintf("  Travellers:  %d adults, %d children\n", rec.Members.Adults, rec.Members.Children))
	b.WriteString(fmt.Sprintf("  Where:       %s\n", valueOrDim(strings.Join(rec.Countries, ", "), "(add at least one)")))
	b.WriteString(fmt.Sprintf("  Tags:        %s\n", valueOrDim(strings.Join(rec.Tags, ", "), "(none)")))

	if m.session.Status(editor.StepBasicInfo) != editor.StatusValid {
		b.WriteString("\n")
		b.WriteString(StatusInvalidStyle.Render("  Title, dates and a destination are required before saving."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *EditorModel) itineraryView() string {
	days := m.session.Record().Days
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Itinerary"))
	b.WriteString("\n\n")

	if len(days) == 0 {
		b.WriteString(DimStyle.Render("  No days. Set the trip dates on the basics step first."))
		b.WriteString("\n")
		return b.String()
	}

	day := days[m.dayCursor]
	b.WriteString(fmt.Sprintf("  Day %d of %d · %s\n\n", day.Day, len(days), day.Date))

	if len(day.Events) == 0 {
		b.WriteString(DimStyle.Render("  No events this day."))
		b.WriteString("\n")
	}
	for i, ev := range day.Events {
		line := fmt.Sprintf("  %s %s", eventTime(ev), ev.Place)
		if ev.Location != "" {
			line += " @ " + ev.Location
		}
		if i == m.eventCursor {
			b.WriteString(SelectedStyle.Render(line))
		} else {
			b.WriteString(NormalStyle.Render(line))
		}
		b.WriteString("\n")
		if ev.Description != "" {
			b.WriteString(DimStyle.Render("      " + ev.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func eventTime(ev models.Event) string {
	switch {
	case ev.StartTime != "" && ev.EndTime != "":
		return ev.StartTime + "-" + ev.EndTime
	case ev.StartTime != "":
		return ev.StartTime
	default:
		return "--:--"
	}
}

func (m *EditorModel) accommodationsView() string {
	accs := m.session.Accommodations.List()
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Accommodations"))
	b.WriteString("\n\n")

	if len(accs) == 0 {
		b.WriteString(DimStyle.Render("  No accommodations yet. Press 'a' to add one."))
		b.WriteString("\n")
		return b.String()
	}

	for i, acc := range accs {
		line := fmt.Sprintf("  %-28s %-12s %d nights", truncate(acc.Name, 28), acc.Type, len(acc.AssignedDates))
		if i == m.accCursor {
			b.WriteString(SelectedStyle.Render(line))
		} else {
			b.WriteString(NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.assigning {
		b.WriteString("\n")
		b.WriteString(HeaderStyle.Render("  Assign nights"))
		b.WriteString("\n")
		b.WriteString(m.dateAssignView(accs[m.accCursor]))
	}
	return b.String()
}

func (m *EditorModel) dateAssignView(acc models.Accommodation) string {
	assigned := make(map[string]bool, len(acc.AssignedDates))
	for _, d := range acc.AssignedDates {
		assigned[d] = true
	}

	var b strings.Builder
	for i, day := range m.session.Record().Days {
		mark := "[ ]"
		if assigned[day.Date] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s Day %d  %s", mark, day.Day, day.Date)
		if i == m.dateCursor {
			b.WriteString(SelectedStyle.Render(line))
		} else {
			b.WriteString(NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *EditorModel) checklistsView() string {
	cl := m.session.Checklists
	cats := cl.Categories(cl.ActiveTab())
	var b strings.Builder

	tabLabel := "Packing"
	if cl.ActiveTab() == editor.TabTodo {
		tabLabel = "To do"
	}
	b.WriteString(HeaderStyle.Render("Checklists · " + tabLabel))
	b.WriteString("\n\n")

	if m.selectingTemplate {
		b.WriteString(m.templateSelectView())
		return b.String()
	}

	if len(cats) == 0 {
		b.WriteString(DimStyle.Render("  No categories. Press 'a' to add one, 't' to apply a template."))
		b.WriteString("\n")
		return b.String()
	}

	for i, cat := range cats {
		catLine := fmt.Sprintf("  %s (%d)", cat.Name, len(cat.Items))
		if i == m.catCursor && !m.onItems {
			b.WriteString(SelectedStyle.Render(catLine))
		} else {
			b.WriteString(NormalStyle.Render(catLine))
		}
		b.WriteString("\n")

		if i != m.catCursor {
			continue
		}
		for j, item := range cat.Items {
			b.WriteString(m.itemLine(item, m.onItems && j == m.itemCursor))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *EditorModel) itemLine(item models.Item, selected bool) string {
	check := "[ ]"
	if item.Checked {
		check = "[x]"
	}
	flag := "   "
	if item.Priority == models.PriorityHigh {
		flag = "(!)"
	}
	line := fmt.Sprintf("      %s %s %s", check, flag, item.Text)
	if selected {
		return SelectedStyle.Render(line)
	}
	return NormalStyle.Render(line)
}

func (m *EditorModel) templateSelectView() string {
	var b strings.Builder
	b.WriteString(DimStyle.Render("  Apply a template to this tab:"))
	b.WriteString("\n\n")
	for i, tpl := range m.store.ListTemplates() {
		line := fmt.Sprintf("  %-24s %d categories", truncate(tpl.Name, 24), len(tpl.Categories))
		if i == m.tplCursor {
			b.WriteString(SelectedStyle.Render(line))
		} else {
			b.WriteString(NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *EditorModel) tipsView() string {
	tips := m.session.Tips.List()
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Tips"))
	b.WriteString("\n\n")

	if len(tips) == 0 {
		b.WriteString(DimStyle.Render("  No tips yet. Press 'a' to add one."))
		b.WriteString("\n")
	}
	for i, tip := range tips {
		if i == m.tipCursor {
			b.WriteString(SelectedStyle.Render("  " + tip.Title))
		} else {
			b.WriteString(NormalStyle.Render("  " + tip.Title))
		}
		b.WriteString("\n")
		b.WriteString(DimStyle.Render("      " + truncate(tip.Content, 70)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(DimStyle.Render("  Press 's' to save the trip."))
	b.WriteString("\n")
	return b.String()
}

func (m *EditorModel) formView() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(formTitle(m.form)))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		label := fmt.Sprintf("  %-22s ", m.labels[i]+":")
		if i == m.focus {
			b.WriteString(SelectedStyle.Render(label))
		} else {
			b.WriteString(NormalStyle.Render(label))
		}
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}

func formTitle(kind formKind) string {
	switch kind {
	case formBasics:
		return "Edit basics"
	case formLocation:
		return "Add destination"
	case formTag:
		return "Add tag"
	case formEvent:
		return "Event"
	case formAccommodation:
		return "Accommodation"
	case formCategory:
		return "Add category"
	case formItem:
		return "Add item"
	case formTip:
		return "Tip"
	case formTemplateName:
		return "Save as template"
	default:
		return ""
	}
}

// helpLine picks the contextual key hints for the current mode.
func (m *EditorModel) helpLine() string {
	if m.form != formNone {
		return "enter next/commit · tab switch field · esc cancel"
	}

	nav := "tab/shift+tab step · 1-5 jump · esc leave"
	switch m.session.Step() {
	case editor.StepBasicInfo:
		return "e edit · a destination · r remove dest · t tag · y remove tag · p type · m theme · " + nav
	case editor.StepItinerary:
		return "</> day · ↑/↓ event · a add · e edit · x delete · " + nav
	case editor.StepAccommodations:
		if m.assigning {
			return "↑/↓ date · space toggle · n/esc done"
		}
		return "↑/↓ select · a add · e edit · x delete · n nights · " + nav
	case editor.StepChecklists:
		if m.selectingTemplate {
			return "↑/↓ select · enter apply · esc cancel"
		}
		if m.onItems {
			return "↑/↓ item · space check · 1/2/3 priority · K/J move · x delete · esc back"
		}
		return "p tab · ↑/↓ category · a category · i item · enter items · t template · s save template · x delete · " + nav
	case editor.StepTips:
		return "↑/↓ select · a add · e edit · x delete · s save trip · " + nav
	}
	return nav
}

func valueOrDim(value, placeholder string) string {
	if value == "" {
		return DimStyle.Render(placeholder)
	}
	return value
}
