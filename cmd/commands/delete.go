package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
)

var (
	deleteForce bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <trip>",
		Short: "Delete a trip",
		Long: `Permanently delete a trip.

This action cannot be undone. Export the trip first if you might need
it later. If the deleted trip was the current one, the current pointer
is cleared.

Examples:
  # Delete a trip (with confirmation)
  wayfarer delete "Lisbon in May"

  # Force delete without confirmation
  wayfarer delete "Lisbon in May" --force`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Force deletion without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	trip, err := ctx.FindTrip(args[0])
	if err != nil {
		return err
	}

	if !deleteForce {
		confirmed, err := cli.Confirm(fmt.Sprintf("Delete trip '%s'?", trip.Title), false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	if err := ctx.Store().Delete(trip.ID); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	cli.PrintSuccess("Trip '%s' deleted", trip.Title)
	return nil
}
