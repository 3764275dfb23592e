package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/server"
	"github.com/lince-tools/lince-report/pkg/services/chart"
	"github.com/lince-tools/lince-report/pkg/services/config"
	"github.com/lince-tools/lince-report/pkg/services/report"
	"github.com/lince-tools/lince-report/pkg/services/report/blocks"
	"github.com/lince-tools/lince-report/pkg/services/report/pdf"
	"github.com/lince-tools/lince-report/pkg/services/upload"
	"github.com/lince-tools/lince-report/pkg/store/sqlite"
	"github.com/lince-tools/lince-report/pkg/store/sqlite/template"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report generation web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (defaults and LINCE_* env vars apply without one)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.Store.Path})
	if err != nil {
		return fmt.Errorf("failed to open template database: %w", err)
	}
	templates, err := template.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create template store: %w", err)
	}

	translator := i18n.New(i18n.Locale(cfg.Locale))
	registry := report.NewRegistry(blocks.Renderers())
	batch := chart.NewBatch(chart.NewGenerator(translator), cfg.Charts.Timeout)
	controller := report.NewController(
		report.NewAssembler(registry),
		pdf.NewWriter(),
		batch,
		translator,
	)

	var uploader report.Uploader
	if cfg.Upload.Bucket != "" {
		s3Uploader, err := upload.NewS3Uploader(ctx, upload.S3Config{
			Bucket: cfg.Upload.Bucket,
			Region: cfg.Upload.Region,
			Prefix: cfg.Upload.Prefix,
		})
		if err != nil {
			return fmt.Errorf("failed to create s3 uploader: %w", err)
		}
		uploader = s3Uploader
		logger.Info().Str("bucket", cfg.Upload.Bucket).Msg("report upload enabled")
	}

	logger.Info().
		Str("locale", cfg.Locale).
		Str("store", cfg.Store.Path).
		Msg("configuration loaded")

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Controller: controller,
			Uploader:   uploader,
			Templates:  templates,
			Logger:     logger,
		},
	})

	return api.Start()
}
