package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/models/api"
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/chart"
	"github.com/lince-tools/lince-report/pkg/services/report"
	"github.com/lince-tools/lince-report/pkg/services/report/blocks"
	"github.com/lince-tools/lince-report/pkg/store/sqlite/template"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) Write(doc *report.Document) ([]byte, error) {
	args := m.Called(doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockBatch struct {
	mock.Mock
}

func (m *mockBatch) GenerateAll(ctx context.Context, series []chart.Series, cfg chart.Config) chart.Result {
	args := m.Called(ctx, series, cfg)
	return args.Get(0).(chart.Result)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, filename string, body []byte) (string, error) {
	args := m.Called(ctx, filename, body)
	return args.String(0), args.Error(1)
}

type mockTemplateStore struct {
	mock.Mock
}

func (m *mockTemplateStore) List(ctx context.Context) ([]*domain.ReportTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReportTemplate), args.Error(1)
}

func (m *mockTemplateStore) Get(ctx context.Context, id string) (*domain.ReportTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportTemplate), args.Error(1)
}

func (m *mockTemplateStore) Create(
	ctx context.Context,
	name string,
	config domain.ReportTemplateConfig,
) (*domain.ReportTemplate, error) {
	args := m.Called(ctx, name, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportTemplate), args.Error(1)
}

func (m *mockTemplateStore) Update(
	ctx context.Context,
	id, name string,
	config domain.ReportTemplateConfig,
) (*domain.ReportTemplate, error) {
	args := m.Called(ctx, id, name, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportTemplate), args.Error(1)
}

func (m *mockTemplateStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func renderBody(t *testing.T, name string) []byte {
	t.Helper()
	req := api.RenderRequest{
		Name: name,
		Config: domain.ReportTemplateConfig{
			Blocks: []domain.ReportBlock{
				{Type: domain.BlockIdentification, Enabled: true, Order: 1},
				{Type: domain.BlockConclusion, Enabled: true, Order: 2},
			},
		},
		Data: domain.ReportData{
			Client: domain.Client{Name: "Aquatech"},
			Period: domain.Period{
				Type:      domain.PeriodQuarterly,
				StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return body
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.Nop()
	pdfBytes := []byte("%PDF-1.4 stub")

	writer := new(mockWriter)
	batch := new(mockBatch)
	uploader := new(mockUploader)
	templates := new(mockTemplateStore)

	writer.On("Write", mock.Anything).Return(pdfBytes, nil)

	registry := report.NewRegistry(blocks.Renderers())
	controller := report.NewController(
		report.NewAssembler(registry),
		writer,
		batch,
		i18n.New(i18n.LocaleEN),
	)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Controller: controller,
			Uploader:   uploader,
			Templates:  templates,
			Logger:     logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	savedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	quarterly := &domain.ReportTemplate{
		ID:   "tpl-1",
		Name: "Quarterly",
		Config: domain.ReportTemplateConfig{
			Blocks: []domain.ReportBlock{{Type: domain.BlockIdentification, Enabled: true, Order: 1}},
		},
		CreatedAt: savedAt,
		UpdatedAt: savedAt,
	}

	tests := []struct {
		name           string
		method         string
		path           string
		body           []byte
		setupMocks     func()
		expectedStatus int
		check          func(t *testing.T, resp *http.Response, body []byte)
	}{
		{
			name:           "RenderReport",
			method:         http.MethodPost,
			path:           "/api/v1/reports/render",
			body:           renderBody(t, "Q1 Report: North/South"),
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
				assert.Equal(t,
					`attachment; filename="Q1_Report__North_South.pdf"`,
					resp.Header.Get("Content-Disposition"))
				assert.Equal(t, pdfBytes, body)
			},
		},
		{
			name:           "RenderReport_InvalidBody",
			method:         http.MethodPost,
			path:           "/api/v1/reports/render",
			body:           []byte("{not json"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "RenderReport_NoBlocks",
			method: http.MethodPost,
			path:   "/api/v1/reports/render",
			body: mustMarshal(t, api.RenderRequest{
				Name:   "Empty",
				Config: domain.ReportTemplateConfig{},
			}),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "RenderReport_UnknownBlockType",
			method: http.MethodPost,
			path:   "/api/v1/reports/render",
			body: mustMarshal(t, api.RenderRequest{
				Name: "Mystery",
				Config: domain.ReportTemplateConfig{
					Blocks: []domain.ReportBlock{{Type: "mystery", Enabled: true, Order: 1}},
				},
			}),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "UploadReport",
			method: http.MethodPost,
			path:   "/api/v1/reports/upload",
			body:   renderBody(t, "Monthly"),
			setupMocks: func() {
				uploader.On("Upload", mock.Anything, "Monthly.pdf", pdfBytes).
					Return("s3://reports/Monthly.pdf", nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				var got api.UploadResponse
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, api.UploadResponse{
					Location: "s3://reports/Monthly.pdf",
					Filename: "Monthly.pdf",
					Size:     len(pdfBytes),
				}, got)
			},
		},
		{
			name:   "UploadReport_UploaderFails",
			method: http.MethodPost,
			path:   "/api/v1/reports/upload",
			body:   renderBody(t, "Monthly"),
			setupMocks: func() {
				uploader.On("Upload", mock.Anything, "Monthly.pdf", pdfBytes).
					Return("", errors.New("bucket unreachable")).Once()
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:   "ListTemplates",
			method: http.MethodGet,
			path:   "/api/v1/templates",
			setupMocks: func() {
				templates.On("List", mock.Anything).
					Return([]*domain.ReportTemplate{quarterly}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				var got []api.Template
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 1)
				assert.Equal(t, "tpl-1", got[0].ID)
				assert.Equal(t, "Quarterly", got[0].Name)
			},
		},
		{
			name:   "GetTemplate_NotFound",
			method: http.MethodGet,
			path:   "/api/v1/templates/missing",
			setupMocks: func() {
				templates.On("Get", mock.Anything, "missing").
					Return(nil, template.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "CreateTemplate",
			method: http.MethodPost,
			path:   "/api/v1/templates",
			body: mustMarshal(t, api.SaveTemplateRequest{
				Name:   "Quarterly",
				Config: quarterly.Config,
			}),
			setupMocks: func() {
				templates.On("Create", mock.Anything, "Quarterly", quarterly.Config).
					Return(quarterly, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "DeleteTemplate",
			method: http.MethodDelete,
			path:   "/api/v1/templates/tpl-1",
			setupMocks: func() {
				templates.On("Delete", mock.Anything, "tpl-1").Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setupMocks != nil {
				tc.setupMocks()
			}

			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, bytes.NewReader(tc.body))
			require.NoError(t, err, "Failed to build request")
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			if tc.check != nil {
				tc.check(t, resp, body)
			}
		})
	}

	uploader.AssertExpectations(t)
	templates.AssertExpectations(t)
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return body
}
