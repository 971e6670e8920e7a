package commands

import (
	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
	"github.com/wayfarer/wayfarer-cli/pkg/share"
)

var (
	importSetCurrent bool
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a trip from an exported JSON file",
		Long: `Import a trip from a file produced by 'wayfarer export'.

The imported trip is always saved as a new record: any ID embedded in
the file is dropped, so importing can never overwrite a local trip.

Examples:
  # Import a trip
  wayfarer import Lisbon_in_May_2026-05-01.json

  # Import and make it the current trip
  wayfarer import Lisbon_in_May_2026-05-01.json --current`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runImport,
	}

	cmd.Flags().BoolVar(&importSetCurrent, "current", false, "Make the imported trip current")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	st := ctx.Store()

	codec := share.NewCodec("", nil)
	trip, err := codec.ImportFromFile(args[0], st)
	if err != nil {
		return err
	}

	if importSetCurrent {
		if err := st.SetCurrent(trip.ID); err != nil {
			return err
		}
	}

	cli.PrintSuccess("Trip '%s' imported (%s)", trip.Title, shortID(trip.ID))
	return nil
}
