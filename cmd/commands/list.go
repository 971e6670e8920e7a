package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/tags"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single trip in the list
type ListItem struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	TripType     string   `json:"tripType" yaml:"tripType"`
	StartDate    string   `json:"startDate" yaml:"startDate"`
	EndDate      string   `json:"endDate" yaml:"endDate"`
	Days         int      `json:"days" yaml:"days"`
	Destinations []string `json:"destinations" yaml:"destinations"`
	Tags         []string `json:"tags" yaml:"tags"`
	Current      bool     `json:"current,omitempty" yaml:"current,omitempty"`
}

var (
	listFilterTag string
	listShowTags  bool
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved trips",
		Long: `List all trips saved in the current project.

The current trip (the one last viewed or edited) is marked with *.

Examples:
  # List all trips
  wayfarer list

  # List trips carrying a tag
  wayfarer list --tag summer

  # Show tag usage across all trips
  wayfarer list --tags

  # List trips as JSON
  wayfarer list -o json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runList,
	}

	cmd.Flags().StringVarP(&listFilterTag, "tag", "t", "", "Only show trips carrying this tag")
	cmd.Flags().BoolVar(&listShowTags, "tags", false, "Show tag usage instead of trips")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	st := ctx.Store()
	trips := st.ListAll()

	if listShowTags {
		return printTagUsage(cmd, trips)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	currentID := st.CurrentID()

	var result ListResult
	for _, trip := range trips {
		if listFilterTag != "" && !tags.HasTag(&trip, listFilterTag) {
			continue
		}
		result.Items = append(result.Items, ListItem{
			ID:           trip.ID,
			Title:        trip.Title,
			TripType:     trip.TripType,
			StartDate:    trip.StartDate,
			EndDate:      trip.EndDate,
			Days:         len(trip.Days),
			Destinations: trip.Countries,
			Tags:         trip.Tags,
			Current:      trip.ID == currentID,
		})
	}
	result.Count = len(result.Items)

	if outputFormat == "json" || outputFormat == "yaml" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	if result.Count == 0 {
		cli.PrintInfo("No trips found. Run 'wayfarer' to plan one.")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("", "TITLE", "DATES", "DAYS", "DESTINATIONS", "TAGS", "ID")
	for _, item := range result.Items {
		marker := ""
		if item.Current {
			marker = "*"
		}
		table.Row(
			marker,
			item.Title,
			fmt.Sprintf("%s → %s", item.StartDate, item.EndDate),
			fmt.Sprintf("%d", item.Days),
			strings.Join(item.Destinations, ", "),
			strings.Join(item.Tags, ", "),
			shortID(item.ID),
		)
	}
	table.Flush()
	return nil
}

func printTagUsage(cmd *cobra.Command, trips []models.TripRecord) error {
	usage := tags.UsageFromTrips(trips)
	if len(usage) == 0 {
		cli.PrintInfo("No tags in use")
		return nil
	}

	// Keep the registry in step with the trips so every tag has a
	// stable color assigned.
	registry, err := tags.NewRegistry()
	if err != nil {
		return err
	}
	if err := tags.SyncFromTrips(registry, trips); err != nil {
		return err
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("TAG", "TRIPS", "COLOR")
	for _, u := range usage {
		color := ""
		if tag, ok := registry.GetTag(u.Name); ok {
			color = tag.Color
		}
		table.Row(u.Name, fmt.Sprintf("%d", u.Count), color)
	}
	table.Flush()
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// requireProject is the shared PreRunE: commands refuse to run before
// 'wayfarer init'.
func requireProject(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cli.NewCommandContext().ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .wayfarer directory found. Run 'wayfarer init' first")
	}
	return nil
}
