package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/lince-tools/lince-report/pkg/handlers/report"
	lincemiddleware "github.com/lince-tools/lince-report/pkg/server/middleware"
	"github.com/lince-tools/lince-report/pkg/services/report"
	"github.com/lince-tools/lince-report/pkg/store/sqlite/template"
)

type Dependencies struct {
	Controller *report.Controller
	Uploader   report.Uploader
	Templates  template.Store
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the API router with logging and panic recovery.
func ConfigureRouter(config Config) *chi.Mux {
	handler := handlers.NewHandler(
		config.Dependencies.Controller,
		config.Dependencies.Uploader,
		config.Dependencies.Templates,
	)

	router := chi.NewRouter()
	router.Use(lincemiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/reports/render", handler.RenderReport)
		r.Post("/reports/upload", handler.UploadReport)

		r.Get("/templates", handler.ListTemplates)
		r.Post("/templates", handler.CreateTemplate)
		r.Get("/templates/{id}", handler.GetTemplate)
		r.Put("/templates/{id}", handler.UpdateTemplate)
		r.Delete("/templates/{id}", handler.DeleteTemplate)
	})

	return router
}

type WebAPI struct {
	logger *zerolog.Logger
	server *http.Server
	config Config
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(config)
	return &WebAPI{
		logger: &logger,
		config: config,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		timeout := w.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
