package api

import (
	"time"

	"github.com/lince-tools/lince-report/pkg/models/domain"
)

// RenderRequest is the body of POST /api/v1/reports/render and /upload.
type RenderRequest struct {
	Name   string                      `json:"name"`
	Config domain.ReportTemplateConfig `json:"config"`
	Data   domain.ReportData           `json:"data"`
}

// UploadResponse reports where a rendered report was stored.
type UploadResponse struct {
	Location string `json:"location"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

// Template is the API projection of a persisted report template.
type Template struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name"`
	Config    domain.ReportTemplateConfig `json:"config"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// SaveTemplateRequest creates or replaces a template.
type SaveTemplateRequest struct {
	Name   string                      `json:"name"`
	Config domain.ReportTemplateConfig `json:"config"`
}

// Error is the JSON error body returned by all handlers.
type Error struct {
	Error string `json:"error"`
}
