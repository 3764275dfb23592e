package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lince-tools/lince-report/pkg/runtime/terminal/commands"
	"github.com/lince-tools/lince-report/pkg/runtime/terminal/export"
	"github.com/lince-tools/lince-report/pkg/services/report"
	"github.com/lince-tools/lince-report/pkg/store/sqlite/template"
)

// CLI represents the command-line interface
type CLI struct {
	controller *report.Controller
	uploader   report.Uploader
	templates  template.Store
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Controller *report.Controller
	Uploader   report.Uploader
	Templates  template.Store
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		controller: opts.Controller,
		uploader:   opts.Uploader,
		templates:  opts.Templates,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Water treatment report generator",
	}

	cmd.AddCommand(commands.NewRenderCmd(cli.controller, cli.uploader))
	cmd.AddCommand(commands.NewInspectCmd(cli.reporter))
	cmd.AddCommand(commands.NewTemplatesCmd(cli.templates))

	return cmd
}
