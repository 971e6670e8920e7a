package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
	"github.com/wayfarer/wayfarer-cli/pkg/compose"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [trip]",
		Short: "Show a trip's itinerary",
		Long: `Show a trip as a composed markdown itinerary.

The trip can be referenced by ID, ID prefix, or title. With no argument
the current trip is shown.

Examples:
  # Show the current trip
  wayfarer show

  # Show a trip by title
  wayfarer show "Lisbon in May"

  # Show raw trip data
  wayfarer show "Lisbon in May" -o json`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	trip, err := resolveTripArg(ctx, args)
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" || outputFormat == "yaml" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, trip)
	}

	composed, err := compose.ComposeTrip(trip)
	if err != nil {
		return fmt.Errorf("failed to compose itinerary: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), composed)
	return nil
}

// resolveTripArg returns the referenced trip, falling back to the
// current trip when no reference is given.
func resolveTripArg(ctx *cli.CommandContext, args []string) (*models.TripRecord, error) {
	if len(args) > 0 {
		return ctx.FindTrip(args[0])
	}
	trip := ctx.Store().Current()
	if trip == nil {
		return nil, fmt.Errorf("no current trip set; pass a trip reference or run 'wayfarer current <trip>'")
	}
	return trip, nil
}
