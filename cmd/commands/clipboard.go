package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
	"github.com/wayfarer/wayfarer-cli/pkg/compose"
	"github.com/wayfarer/wayfarer-cli/pkg/share"
)

var (
	clipboardURL bool
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clipboard [trip]",
		Short:   "Copy a trip's itinerary or share URL to the clipboard",
		Aliases: []string{"clip", "copy"},
		Long: `Copy a trip's composed markdown itinerary to the system clipboard,
ready to paste into a message or document. With --url, copy the trip's
share link instead.

When no system clipboard is available, the content is printed to stdout
for manual copying.

With no argument the current trip is used.

Examples:
  # Copy the current trip's itinerary
  wayfarer clipboard

  # Copy a trip's share URL
  wayfarer clipboard "Lisbon in May" --url`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runClipboard,
	}

	cmd.Flags().BoolVar(&clipboardURL, "url", false, "Copy the share URL instead of the itinerary")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	trip, err := resolveTripArg(ctx, args)
	if err != nil {
		return err
	}

	var content string
	var what string
	if clipboardURL {
		codec := share.NewCodec("", nil)
		content, err = codec.EncodeToURL(trip)
		if err != nil {
			return err
		}
		what = "share URL"
	} else {
		content, err = compose.ComposeTrip(trip)
		if err != nil {
			return fmt.Errorf("failed to compose itinerary: %w", err)
		}
		what = "itinerary"
	}

	if !share.CopyText(content) {
		return fmt.Errorf("failed to copy to clipboard")
	}

	cli.PrintSuccess("%s of '%s' copied to clipboard", what, trip.Title)
	return nil
}
