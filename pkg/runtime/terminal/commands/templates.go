package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lince-tools/lince-report/pkg/store/sqlite/template"
)

type TemplatesCmd struct {
	store template.Store
}

func NewTemplatesCmd(store template.Store) *cobra.Command {
	tc := &TemplatesCmd{store: store}
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List saved report templates",
		RunE:  tc.run,
	}
	return cmd
}

func (tc *TemplatesCmd) run(cmd *cobra.Command, args []string) error {
	templates, err := tc.store.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates saved yet.")
		return nil
	}

	for _, tpl := range templates {
		enabled := 0
		for _, block := range tpl.Config.Blocks {
			if block.Enabled {
				enabled++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d of %d blocks enabled, updated %s)\n",
			tpl.ID, tpl.Name, enabled, len(tpl.Config.Blocks), tpl.UpdatedAt.Format("2006-01-02"))
	}
	return nil
}
