package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/runtime/terminal"
	"github.com/lince-tools/lince-report/pkg/services/chart"
	"github.com/lince-tools/lince-report/pkg/services/config"
	"github.com/lince-tools/lince-report/pkg/services/report"
	"github.com/lince-tools/lince-report/pkg/services/report/blocks"
	"github.com/lince-tools/lince-report/pkg/services/report/pdf"
	"github.com/lince-tools/lince-report/pkg/services/upload"
	"github.com/lince-tools/lince-report/pkg/store/sqlite"
	"github.com/lince-tools/lince-report/pkg/store/sqlite/template"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Getenv("LINCE_CONFIG"))
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.Store.Path})
	if err != nil {
		return err
	}
	templates, err := template.NewStore(db)
	if err != nil {
		return err
	}

	translator := i18n.New(i18n.Locale(cfg.Locale))
	registry := report.NewRegistry(blocks.Renderers())
	controller := report.NewController(
		report.NewAssembler(registry),
		pdf.NewWriter(),
		chart.NewBatch(chart.NewGenerator(translator), cfg.Charts.Timeout),
		translator,
	)

	var uploader report.Uploader
	if cfg.Upload.Bucket != "" {
		s3Uploader, err := upload.NewS3Uploader(context.Background(), upload.S3Config{
			Bucket: cfg.Upload.Bucket,
			Region: cfg.Upload.Region,
			Prefix: cfg.Upload.Prefix,
		})
		if err != nil {
			return err
		}
		uploader = s3Uploader
	}

	cli := terminal.NewCLI(terminal.Options{
		Controller: controller,
		Uploader:   uploader,
		Templates:  templates,
		Output:     os.Stdout,
	})

	return cli.Execute()
}
