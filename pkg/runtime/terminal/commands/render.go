package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

type RenderCmd struct {
	dataPath     string
	templatePath string
	outPath      string
	name         string
	upload       bool
	controller   *report.Controller
	uploader     report.Uploader
}

func NewRenderCmd(controller *report.Controller, uploader report.Uploader) *cobra.Command {
	rc := &RenderCmd{controller: controller, uploader: uploader}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report data export to PDF",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.dataPath, "data", "", "Path to the report data JSON file")
	cmd.Flags().StringVar(&rc.templatePath, "template", "", "Path to the template config JSON file")
	cmd.Flags().StringVar(&rc.name, "name", "", "Report name, used for the output filename")
	cmd.Flags().StringVar(&rc.outPath, "out", "", "Output PDF path (defaults to the sanitized report name)")
	cmd.Flags().BoolVar(&rc.upload, "upload", false, "Upload the PDF instead of writing it locally")

	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var data domain.ReportData
	if err := readJSONFile(rc.dataPath, &data); err != nil {
		return fmt.Errorf("failed to load report data: %w", err)
	}

	var config domain.ReportTemplateConfig
	if err := readJSONFile(rc.templatePath, &config); err != nil {
		return fmt.Errorf("failed to load template config: %w", err)
	}

	artifact, err := rc.controller.Generate(ctx, rc.name, config, &data)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	if len(artifact.MissingCharts) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d chart(s) could not be rendered\n", len(artifact.MissingCharts))
	}

	if rc.upload {
		if rc.uploader == nil {
			return fmt.Errorf("no uploader configured; set the upload bucket in the config file")
		}
		location, err := rc.controller.Upload(ctx, rc.uploader, artifact)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded report to %s\n", location)
		return nil
	}

	outPath := rc.outPath
	if outPath == "" {
		outPath = artifact.Filename
	}
	if err := os.WriteFile(outPath, artifact.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", outPath, len(artifact.PDF))
	return nil
}

func readJSONFile(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
