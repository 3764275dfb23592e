package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/chart"
)

// State tracks one generation run through the chart phase.
type State string

const (
	StateIdle             State = "idle"
	StateChartsGenerating State = "chartsGenerating"
	StateChartsReady      State = "chartsReady"
)

// DocumentWriter serializes an assembled document to PDF bytes.
type DocumentWriter interface {
	Write(doc *Document) ([]byte, error)
}

// ChartBatch renders chart series in bulk. Implemented by chart.Batch.
type ChartBatch interface {
	GenerateAll(ctx context.Context, series []chart.Series, cfg chart.Config) chart.Result
}

// Uploader persists a rendered report remotely and returns its location.
type Uploader interface {
	Upload(ctx context.Context, filename string, body []byte) (string, error)
}

// Artifact is one finished report, ready for preview, download or upload.
// It is retained by the caller so an upload failure can be retried without
// regenerating.
type Artifact struct {
	Name          string
	Filename      string
	PDF           []byte
	MissingCharts []string
}

// Controller runs the full generation pipeline: chart batch, image
// attachment, block assembly, PDF serialization.
type Controller struct {
	assembler  *Assembler
	writer     DocumentWriter
	charts     ChartBatch
	translator *i18n.Translator
	alertColor string

	mu    sync.RWMutex
	state State
}

// NewController wires the pipeline. The translator fixes the locale for
// every label and date in the output.
func NewController(assembler *Assembler, writer DocumentWriter, charts ChartBatch, translator *i18n.Translator) *Controller {
	return &Controller{
		assembler:  assembler,
		writer:     writer,
		charts:     charts,
		translator: translator,
		alertColor: "#d93a2b",
		state:      StateIdle,
	}
}

// State returns the current generation state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Generate renders the complete report. Chart generation runs first and is
// bounded by the batch timeout; series that do not finish degrade to
// "chart unavailable" placeholders and are listed on the artifact.
func (c *Controller) Generate(ctx context.Context, name string, config domain.ReportTemplateConfig, data *domain.ReportData) (*Artifact, error) {
	logger := zerolog.Ctx(ctx)
	defer c.setState(StateIdle)

	series, cfg := c.chartRequests(config, data)
	var missing []string
	if len(series) > 0 {
		c.setState(StateChartsGenerating)
		result := c.charts.GenerateAll(ctx, series, cfg)
		missing = result.Missing
		if !result.Complete() {
			logger.Warn().Strs("series", result.Missing).Msg("proceeding without some chart images")
		}
		data.ChartImages = splitImages(result.Images)
	}
	c.setState(StateChartsReady)

	doc, err := c.assembler.Assemble(name, config, data, c.translator)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := c.writer.Write(doc)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Name:          name,
		Filename:      SanitizeFilename(name),
		PDF:           pdfBytes,
		MissingCharts: missing,
	}, nil
}

// Upload hands a finished artifact to the uploader. The artifact is left
// untouched on failure so the caller may retry.
func (c *Controller) Upload(ctx context.Context, uploader Uploader, artifact *Artifact) (string, error) {
	location, err := uploader.Upload(ctx, artifact.Filename, artifact.PDF)
	if err != nil {
		return "", fmt.Errorf("failed to upload report %q: %w", artifact.Filename, err)
	}
	return location, nil
}

// chartRequests collects one series per monitoring point for every enabled
// analyses block that requests charts. With no chart-bearing blocks the
// run skips the chart phase entirely.
func (c *Controller) chartRequests(config domain.ReportTemplateConfig, data *domain.ReportData) ([]chart.Series, chart.Config) {
	var analysesBlock *domain.ReportBlock
	for i, block := range config.Blocks {
		if block.Type == domain.BlockAnalyses && block.Enabled && block.IncludeCharts {
			analysesBlock = &config.Blocks[i]
			break
		}
	}
	if analysesBlock == nil {
		return nil, chart.Config{}
	}

	cfg := chart.Config{
		Kind:         chart.Kind(analysesBlock.ChartType),
		PrimaryColor: config.Branding.PrimaryColor,
		AlertColor:   c.alertColor,
	}
	if cfg.Kind == "" {
		cfg.Kind = chart.KindLine
	}

	locale := c.translator.Locale()
	bucket := map[string]*chart.Series{}
	var order []string
	for _, log := range data.DailyLogs {
		prefix := string(log.RecordType) + ":"
		for _, entry := range log.Entries {
			if entry.Value == nil {
				continue
			}
			key := prefix + entry.Point.ID
			s, ok := bucket[key]
			if !ok {
				s = &chart.Series{
					Key:    key,
					Title:  entry.Point.Name,
					Unit:   entry.Point.Unit,
					Limits: entry.Point.Limits,
				}
				bucket[key] = s
				order = append(order, key)
			}
			s.Points = append(s.Points, chart.Point{
				Label:      FormatDate(log.Date, locale),
				Value:      *entry.Value,
				OutOfRange: entry.OutOfRange,
			})
		}
	}

	series := make([]chart.Series, 0, len(order))
	for _, key := range order {
		series = append(series, *bucket[key])
	}
	return series, cfg
}

// splitImages separates batch results back into the field and laboratory
// maps keyed by monitoring point id.
func splitImages(images map[string][]byte) *domain.ChartImages {
	out := &domain.ChartImages{
		Field:      map[string][]byte{},
		Laboratory: map[string][]byte{},
	}
	fieldPrefix := string(domain.RecordField) + ":"
	labPrefix := string(domain.RecordLaboratory) + ":"
	for key, png := range images {
		switch {
		case len(key) > len(fieldPrefix) && key[:len(fieldPrefix)] == fieldPrefix:
			out.Field[key[len(fieldPrefix):]] = png
		case len(key) > len(labPrefix) && key[:len(labPrefix)] == labPrefix:
			out.Laboratory[key[len(labPrefix):]] = png
		}
	}
	return out
}
