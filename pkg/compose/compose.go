// Package compose renders a trip record as a readable markdown
// itinerary. The output feeds the show command, the clipboard command
// and the TUI viewer.
package compose

import (
	"fmt"
	"strings"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/schedule"
)

// ComposeTrip renders the full itinerary document for a trip.
func ComposeTrip(rec *models.TripRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("trip is nil")
	}

	var out strings.Builder
	title := rec.Title
	if title == "" {
		title = "Untitled trip"
	}
	out.WriteString(fmt.Sprintf("# %s\n\n", title))

	writeOverview(&out, rec)
	writeDays(&out, rec)
	writeAccommodations(&out, rec)
	writeChecklists(&out, rec)
	writeTips(&out, rec)

	return strings.TrimRight(out.String(), "\n") + "\n", nil
}

func writeOverview(out *strings.Builder, rec *models.TripRecord) {
	out.WriteString(fmt.Sprintf("- Dates: %s to %s (%d days)\n", rec.StartDate, rec.EndDate, len(rec.Days)))
	out.WriteString(fmt.Sprintf("- Type: %s\n", rec.TripType))
	if rec.Theme != models.ThemeNone {
		out.WriteString(fmt.Sprintf("- Theme: %s\n", rec.Theme))
	}
	out.WriteString(fmt.Sprintf("- Travellers: %d adults, %d children\n", rec.Members.Adults, rec.Members.Children))
	if len(rec.Countries) > 0 {
		out.WriteString(fmt.Sprintf("- Destinations: %s\n", strings.Join(rec.Countries, ", ")))
	}
	if len(rec.Tags) > 0 {
		out.WriteString(fmt.Sprintf("- Tags: %s\n", strings.Join(rec.Tags, ", ")))
	}
	out.WriteString("\n")
}

func writeDays(out *strings.Builder, rec *models.TripRecord) {
	if len(rec.Days) == 0 {
		return
	}
	out.WriteString("## Itinerary\n\n")
	for _, day := range rec.Days {
		out.WriteString(fmt.Sprintf("### Day %d - %s\n\n", day.Day, day.Date))
		if len(day.Events) == 0 {
			out.WriteString("_No events planned._\n\n")
			continue
		}
		for _, ev := range day.Events {
			out.WriteString(formatEvent(ev))
		}
		out.WriteString("\n")
	}
}

func formatEvent(ev models.Event) string {
	var parts []string
	if ev.StartTime != "" || ev.EndTime != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", ev.StartTime, ev.EndTime))
	}
	if ev.Place != "" {
		parts = append(parts, ev.Place)
	}
	if ev.Location != "" {
		parts = append(parts, fmt.Sprintf("(%s)", ev.Location))
	}
	line := "- " + strings.Join(parts, " ")
	if ev.Description != "" {
		line += ": " + ev.Description
	}
	return line + "\n"
}

func writeAccommodations(out *strings.Builder, rec *models.TripRecord) {
	if len(rec.Accommodations) == 0 {
		return
	}
	out.WriteString("## Accommodations\n\n")
	for _, acc := range rec.Accommodations {
		out.WriteString(fmt.Sprintf("### %s\n\n", acc.Name))
		if acc.Type != "" {
			out.WriteString(fmt.Sprintf("- Type: %s\n", acc.Type))
		}
		if acc.Location != "" {
			out.WriteString(fmt.Sprintf("- Location: %s\n", acc.Location))
		}
		if acc.CheckIn != "" || acc.CheckOut != "" {
			out.WriteString(fmt.Sprintf("- Check-in %s, check-out %s\n", acc.CheckIn, acc.CheckOut))
		}
		if acc.Price != "" {
			out.WriteString(fmt.Sprintf("- Price: %s\n", acc.Price))
		}
		if acc.Contact != "" {
			out.WriteString(fmt.Sprintf("- Contact: %s\n", acc.Contact))
		}
		if acc.URL != "" {
			out.WriteString(fmt.Sprintf("- URL: %s\n", acc.URL))
		}
		if len(acc.AssignedDates) > 0 {
			out.WriteString(fmt.Sprintf("- Nights: %s\n", formatAssignedDates(rec.StartDate, acc.AssignedDates)))
		}
		if acc.Notes != "" {
			out.WriteString(fmt.Sprintf("- Notes: %s\n", acc.Notes))
		}
		out.WriteString("\n")
	}
}

func formatAssignedDates(start string, dates []string) string {
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		if n := schedule.DayNumber(start, d); n != 0 {
			parts = append(parts, fmt.Sprintf("%s (day %d)", d, n))
		} else {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, ", ")
}

func writeChecklists(out *strings.Builder, rec *models.TripRecord) {
	writeChecklistTab(out, "Packing", rec.Checklists.Packing)
	writeChecklistTab(out, "To do", rec.Checklists.Todo)
}

func writeChecklistTab(out *strings.Builder, heading string, cats []models.Category) {
	total := 0
	for _, c := range cats {
		total += len(c.Items)
	}
	if total == 0 {
		return
	}

	out.WriteString(fmt.Sprintf("## %s\n\n", heading))
	for _, cat := range cats {
		if len(cat.Items) == 0 {
			continue
		}
		out.WriteString(fmt.Sprintf("### %s\n\n", cat.Name))
		for _, item := range cat.Items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			suffix := ""
			if item.Priority == models.PriorityHigh {
				suffix = " (!)"
			}
			out.WriteString(fmt.Sprintf("- [%s] %s%s\n", mark, item.Text, suffix))
		}
		out.WriteString("\n")
	}
}

func writeTips(out *strings.Builder, rec *models.TripRecord) {
	if len(rec.Tips) == 0 {
		return
	}
	out.WriteString("## Tips\n\n")
	for _, tip := range rec.Tips {
		out.WriteString(fmt.Sprintf("### %s\n\n", tip.Title))
		out.WriteString(strings.TrimSpace(tip.Content))
		out.WriteString("\n\n")
	}
}
