package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
	"github.com/wayfarer/wayfarer-cli/pkg/share"
)

var (
	exportDir string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [trip]",
		Short: "Export a trip to a JSON file",
		Long: `Export a trip as a pretty-printed JSON file, named after the trip
title and today's date. The file can be re-imported on any machine with
'wayfarer import'; the trip ID is stripped on import so an exported trip
never overwrites an existing one.

With no argument the current trip is exported.

Examples:
  # Export the current trip into the working directory
  wayfarer export

  # Export a specific trip into a directory
  wayfarer export "Lisbon in May" --dir ~/Documents

  # Print the trip to stdout instead
  wayfarer export "Lisbon in May" -o json`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runExport,
	}

	cmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Directory to write the export file into")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	trip, err := resolveTripArg(ctx, args)
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" || outputFormat == "yaml" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, trip)
	}

	if info, err := os.Stat(exportDir); err != nil || !info.IsDir() {
		return fmt.Errorf("export directory does not exist: %s", exportDir)
	}

	codec := share.NewCodec("", nil)
	path, err := codec.ExportToFile(trip, exportDir)
	if err != nil {
		return err
	}

	cli.PrintSuccess("Trip '%s' exported to: %s", trip.Title, path)
	return nil
}
