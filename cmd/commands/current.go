package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
)

// NewCurrentCommand creates the current command
func NewCurrentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current [trip]",
		Short: "Show or set the current trip",
		Long: `Show the current trip, or point the current-trip marker at another
trip. The current trip is the default target for show, export, share
and clipboard.

Examples:
  # Show the current trip
  wayfarer current

  # Make a trip current
  wayfarer current "Lisbon in May"`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runCurrent,
	}

	return cmd
}

func runCurrent(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	st := ctx.Store()

	if len(args) == 0 {
		trip := st.Current()
		if trip == nil {
			cli.PrintInfo("No current trip set")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s → %s) [%s]\n",
			trip.Title, trip.StartDate, trip.EndDate, shortID(trip.ID))
		return nil
	}

	trip, err := ctx.FindTrip(args[0])
	if err != nil {
		return err
	}
	if err := st.SetCurrent(trip.ID); err != nil {
		return err
	}

	cli.PrintSuccess("Current trip set to '%s'", trip.Title)
	return nil
}
