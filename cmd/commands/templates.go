package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfarer/wayfarer-cli/internal/cli"
)

// NewTemplatesCommand creates the templates command
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List saved checklist templates",
		Long: `List the reusable checklist templates saved from the editor.

Templates are created inside the trip editor by saving a checklist tab,
and can be applied to any trip's packing or todo tab.

Examples:
  # List templates
  wayfarer templates

  # List templates as JSON
  wayfarer templates -o json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runTemplates,
	}

	return cmd
}

func runTemplates(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	templates := ctx.Store().ListTemplates()

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" || outputFormat == "yaml" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, templates)
	}

	if len(templates) == 0 {
		cli.PrintInfo("No checklist templates saved")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("NAME", "CATEGORIES", "ITEMS", "CREATED")
	for _, tpl := range templates {
		items := 0
		for _, cat := range tpl.Categories {
			items += len(cat.Items)
		}
		table.Row(
			tpl.Name,
			fmt.Sprintf("%d", len(tpl.Categories)),
			fmt.Sprintf("%d", items),
			tpl.CreatedAt.Format("2006-01-02"),
		)
	}
	table.Flush()
	return nil
}
