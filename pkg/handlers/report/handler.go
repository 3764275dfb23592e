package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/lince-tools/lince-report/pkg/models/api"
	"github.com/lince-tools/lince-report/pkg/models/domain"
	reportsvc "github.com/lince-tools/lince-report/pkg/services/report"
	"github.com/lince-tools/lince-report/pkg/store/sqlite/template"
)

type Handler struct {
	controller *reportsvc.Controller
	uploader   reportsvc.Uploader
	templates  template.Store
}

func NewHandler(controller *reportsvc.Controller, uploader reportsvc.Uploader, templates template.Store) *Handler {
	return &Handler{
		controller: controller,
		uploader:   uploader,
		templates:  templates,
	}
}

// RenderReport generates a PDF and streams it back as a download.
func (h *Handler) RenderReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeRenderRequest(w, r)
	if !ok {
		return
	}

	artifact, err := h.controller.Generate(ctx, req.Name, req.Config, &req.Data)
	if err != nil {
		if errors.Is(err, reportsvc.ErrUnknownBlockType) {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	if _, err := w.Write(artifact.PDF); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write pdf response")
	}
}

// UploadReport generates a PDF and pushes it to the configured uploader.
func (h *Handler) UploadReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.uploader == nil {
		writeError(w, r, http.StatusServiceUnavailable, errors.New("no uploader configured"))
		return
	}

	req, ok := h.decodeRenderRequest(w, r)
	if !ok {
		return
	}

	artifact, err := h.controller.Generate(ctx, req.Name, req.Config, &req.Data)
	if err != nil {
		if errors.Is(err, reportsvc.ErrUnknownBlockType) {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	location, err := h.controller.Upload(ctx, h.uploader, artifact)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, err)
		return
	}

	writeJSON(w, r, http.StatusOK, api.UploadResponse{
		Location: location,
		Filename: artifact.Filename,
		Size:     len(artifact.PDF),
	})
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	response := make([]api.Template, 0, len(templates))
	for _, tpl := range templates {
		response = append(response, toAPITemplate(tpl))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := h.templates.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeTemplateError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toAPITemplate(tpl))
}

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req api.SaveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("template name is required"))
		return
	}

	tpl, err := h.templates.Create(r.Context(), req.Name, req.Config)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toAPITemplate(tpl))
}

func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req api.SaveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	tpl, err := h.templates.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Config)
	if err != nil {
		writeTemplateError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toAPITemplate(tpl))
}

func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeTemplateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeRenderRequest(w http.ResponseWriter, r *http.Request) (api.RenderRequest, bool) {
	var req api.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return req, false
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("report name is required"))
		return req, false
	}
	if len(req.Config.Blocks) == 0 {
		writeError(w, r, http.StatusBadRequest, errors.New("template config has no blocks"))
		return req, false
	}
	return req, true
}

func toAPITemplate(tpl *domain.ReportTemplate) api.Template {
	return api.Template{
		ID:        tpl.ID,
		Name:      tpl.Name,
		Config:    tpl.Config,
		CreatedAt: tpl.CreatedAt,
		UpdatedAt: tpl.UpdatedAt,
	}
}

func writeTemplateError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, template.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	writeError(w, r, http.StatusInternalServerError, err)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	writeJSON(w, r, status, api.Error{Error: err.Error()})
}
