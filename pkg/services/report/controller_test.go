package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/chart"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) Write(doc *Document) ([]byte, error) {
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

func testController(writer DocumentWriter, batch ChartBatch) *Controller {
	registry := NewRegistry(map[domain.BlockType]RenderFunc{
		domain.BlockIdentification: stubRenderer("id"),
		domain.BlockAnalyses:       stubRenderer("analyses"),
	})
	return NewController(NewAssembler(registry), writer, batch, i18n.New(i18n.LocaleEN))
}

func analysesData() *domain.ReportData {
	value1, value2 := 7.2, 9.5
	point := domain.MonitoringPoint{
		ID:     "ph",
		Name:   "pH",
		Unit:   "",
		Limits: domain.Range{Min: floatPtr(6.5), Max: floatPtr(9)},
	}
	return &domain.ReportData{
		Client: domain.Client{Name: "Aquatech"},
		DailyLogs: []domain.DailyLog{
			{
				Date:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				RecordType: domain.RecordField,
				Entries:    []domain.LogEntry{{Point: point, Value: &value1}},
			},
			{
				Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				RecordType: domain.RecordField,
				Entries:    []domain.LogEntry{{Point: point, Value: &value2, OutOfRange: true}},
			},
		},
	}
}

func TestController_Generate_WithCharts(t *testing.T) {
	writer := new(mockWriter)
	batch := new(mockBatch)
	controller := testController(writer, batch)

	pdfBytes := []byte("%PDF-1.4 stub")
	chartPNG := []byte("png-bytes")
	writer.On("Write", mock.Anything).Return(pdfBytes, nil)
	batch.On("GenerateAll", mock.Anything, mock.MatchedBy(func(series []chart.Series) bool {
		return len(series) == 1 &&
			series[0].Key == "field:ph" &&
			len(series[0].Points) == 2 &&
			series[0].Points[1].OutOfRange
	}), mock.Anything).Return(chart.Result{
		Images: map[string][]byte{"field:ph": chartPNG},
	})

	config := domain.ReportTemplateConfig{
		Blocks: []domain.ReportBlock{
			{Type: domain.BlockIdentification, Enabled: true, Order: 1},
			{Type: domain.BlockAnalyses, Enabled: true, Order: 2, IncludeCharts: true},
		},
	}
	data := analysesData()

	artifact, err := controller.Generate(context.Background(), "March Report", config, data)
	require.NoError(t, err)

	assert.Equal(t, "March Report", artifact.Name)
	assert.Equal(t, "March_Report.pdf", artifact.Filename)
	assert.Equal(t, pdfBytes, artifact.PDF)
	assert.Empty(t, artifact.MissingCharts)

	require.NotNil(t, data.ChartImages)
	assert.Equal(t, chartPNG, data.ChartImages.Field["ph"])
	assert.Empty(t, data.ChartImages.Laboratory)

	batch.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func TestController_Generate_SkipsChartPhaseWithoutChartBlocks(t *testing.T) {
	writer := new(mockWriter)
	batch := new(mockBatch)
	controller := testController(writer, batch)

	writer.On("Write", mock.Anything).Return([]byte("pdf"), nil)

	config := domain.ReportTemplateConfig{
		Blocks: []domain.ReportBlock{
			{Type: domain.BlockIdentification, Enabled: true, Order: 1},
			{Type: domain.BlockAnalyses, Enabled: true, Order: 2, IncludeCharts: false},
		},
	}

	_, err := controller.Generate(context.Background(), "No charts", config, analysesData())
	require.NoError(t, err)

	batch.AssertNotCalled(t, "GenerateAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_Generate_PartialChartsDegrade(t *testing.T) {
	writer := new(mockWriter)
	batch := new(mockBatch)
	controller := testController(writer, batch)

	writer.On("Write", mock.Anything).Return([]byte("pdf"), nil)
	batch.On("GenerateAll", mock.Anything, mock.Anything, mock.Anything).Return(chart.Result{
		Images:  map[string][]byte{},
		Missing: []string{"field:ph"},
	})

	config := domain.ReportTemplateConfig{
		Blocks: []domain.ReportBlock{
			{Type: domain.BlockAnalyses, Enabled: true, Order: 1, IncludeCharts: true},
		},
	}

	artifact, err := controller.Generate(context.Background(), "Partial", config, analysesData())
	require.NoError(t, err)
	assert.Equal(t, []string{"field:ph"}, artifact.MissingCharts)
}

func TestController_Generate_WriterError(t *testing.T) {
	writer := new(mockWriter)
	batch := new(mockBatch)
	controller := testController(writer, batch)

	writer.On("Write", mock.Anything).Return(nil, errors.New("page overflow"))

	config := domain.ReportTemplateConfig{
		Blocks: []domain.ReportBlock{{Type: domain.BlockIdentification, Enabled: true, Order: 1}},
	}

	_, err := controller.Generate(context.Background(), "Broken", config, &domain.ReportData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page overflow")
}

func TestController_Upload(t *testing.T) {
	controller := testController(new(mockWriter), new(mockBatch))
	uploader := new(mockUploader)

	artifact := &Artifact{Filename: "report.pdf", PDF: []byte("pdf")}
	uploader.On("Upload", mock.Anything, "report.pdf", artifact.PDF).
		Return("s3://reports/report.pdf", nil).Once()

	location, err := controller.Upload(context.Background(), uploader, artifact)
	require.NoError(t, err)
	assert.Equal(t, "s3://reports/report.pdf", location)

	uploader.On("Upload", mock.Anything, "report.pdf", artifact.PDF).
		Return("", errors.New("bucket unreachable")).Once()

	_, err = controller.Upload(context.Background(), uploader, artifact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.pdf")
}

func TestController_StateResetsAfterGenerate(t *testing.T) {
	writer := new(mockWriter)
	batch := new(mockBatch)
	controller := testController(writer, batch)

	writer.On("Write", mock.Anything).Return([]byte("pdf"), nil)

	assert.Equal(t, StateIdle, controller.State())

	config := domain.ReportTemplateConfig{
		Blocks: []domain.ReportBlock{{Type: domain.BlockIdentification, Enabled: true, Order: 1}},
	}
	_, err := controller.Generate(context.Background(), "State", config, &domain.ReportData{})
	require.NoError(t, err)

	assert.Equal(t, StateIdle, controller.State())
}
