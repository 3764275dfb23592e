package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/runtime/terminal/export"
)

type InspectCmd struct {
	dataPath string
	reporter *export.Reporter
}

func NewInspectCmd(reporter *export.Reporter) *cobra.Command {
	ic := &InspectCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a report data export without rendering it",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.dataPath, "data", "", "Path to the report data JSON file")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (ic *InspectCmd) run(cmd *cobra.Command, args []string) error {
	var data domain.ReportData
	if err := readJSONFile(ic.dataPath, &data); err != nil {
		return fmt.Errorf("failed to load report data: %w", err)
	}
	return ic.reporter.Handle(&data)
}
