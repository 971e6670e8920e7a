package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
	"github.com/wayfarer/wayfarer-cli/pkg/share"
)

var (
	shareDecode  string
	shareBaseURL string
)

// NewShareCommand creates the share command
func NewShareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share [trip]",
		Short: "Create or import a share URL",
		Long: `Encode a trip into a share URL, or decode a received URL and import
the trip it carries.

The URL embeds the whole trip in its fragment, so sharing needs no
server. Decoding drops the embedded trip ID: an imported trip is always
saved as a new record.

With no argument the current trip is shared.

Examples:
  # Print a share URL for the current trip
  wayfarer share

  # Share a specific trip
  wayfarer share "Lisbon in May"

  # Import a trip from a received URL
  wayfarer share --decode 'https://wayfarer.app/planner#share=...'`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runShare,
	}

	cmd.Flags().StringVar(&shareDecode, "decode", "", "Decode a share URL and import the trip")
	cmd.Flags().StringVar(&shareBaseURL, "base-url", "", "Base URL for generated share links")

	return cmd
}

func runShare(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	codec := share.NewCodec(shareBaseURL, nil)

	if shareDecode != "" {
		trip, err := codec.ImportShared(shareDecode, ctx.Store())
		if err != nil {
			return err
		}
		cli.PrintSuccess("Trip '%s' imported (%s)", trip.Title, shortID(trip.ID))
		return nil
	}

	trip, err := resolveTripArg(ctx, args)
	if err != nil {
		return err
	}

	url, err := codec.EncodeToURL(trip)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
