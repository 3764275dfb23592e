package chart

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/models/domain"
)

// Kind selects the chart rendering style.
type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindArea Kind = "area"
)

// Point is one chart sample.
type Point struct {
	Label      string
	Value      float64
	OutOfRange bool
}

// Series is the data for one monitoring point chart.
type Series struct {
	Key    string
	Title  string
	Unit   string
	Limits domain.Range
	Points []Point
}

// Config styles every chart of one report generation run.
type Config struct {
	Kind          Kind
	PrimaryColor  string
	AlertColor    string
	ShowSpecLimit *bool
	Width         int
	Height        int
}

func (c Config) specLimitEnabled() bool {
	return c.ShowSpecLimit == nil || *c.ShowSpecLimit
}

const (
	defaultWidth  = 640
	defaultHeight = 320
)

// Generator renders a single monitoring series to a static PNG image.
// Out-of-range points use the alert color, in-range points the primary
// color; when spec limits are present and not disabled, dashed threshold
// lines with Max/Min labels are overlaid.
type Generator struct {
	translator *i18n.Translator
}

// NewGenerator creates a Generator using the given translator for the
// threshold labels.
func NewGenerator(translator *i18n.Translator) *Generator {
	return &Generator{translator: translator}
}

// Render produces the PNG for one series.
func (g *Generator) Render(series Series, cfg Config) ([]byte, error) {
	if len(series.Points) == 0 {
		return nil, fmt.Errorf("series %q has no points", series.Key)
	}

	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}

	primary := colorFromHex(cfg.PrimaryColor, drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 255})
	alert := colorFromHex(cfg.AlertColor, drawing.Color{R: 0xd9, G: 0x3a, B: 0x2b, A: 255})

	var buf bytes.Buffer
	var err error
	if cfg.Kind == KindBar {
		err = g.renderBars(&buf, series, cfg, primary, alert)
	} else {
		err = g.renderLines(&buf, series, cfg, primary, alert)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render chart for %q: %w", series.Key, err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderLines(buf *bytes.Buffer, series Series, cfg Config, primary, alert drawing.Color) error {
	n := len(series.Points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range series.Points {
		xs[i] = float64(i)
		ys[i] = p.Value
	}

	style := chart.Style{
		StrokeColor: primary,
		StrokeWidth: 2,
		DotWidth:    4,
		DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
			if index >= 0 && index < n && series.Points[index].OutOfRange {
				return alert
			}
			return primary
		},
	}
	if cfg.Kind == KindArea {
		style.FillColor = primary.WithAlpha(60)
	}

	allSeries := []chart.Series{chart.ContinuousSeries{
		Name:    series.Title,
		XValues: xs,
		YValues: ys,
		Style:   style,
	}}

	minX, maxX := 0.0, float64(n-1)
	if n == 1 {
		maxX = 1
	}
	if cfg.specLimitEnabled() {
		allSeries = append(allSeries, g.limitSeries(series, minX, maxX, alert)...)
	}

	xAxis := chart.XAxis{
		Ticks: labelTicks(series.Points),
	}
	if n == 1 {
		// A single sample has no x-range of its own; pin the axis so the
		// render does not reject the series.
		xAxis.Range = &chart.ContinuousRange{Min: minX, Max: maxX}
	}

	graph := chart.Chart{
		Title:  series.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		XAxis:  xAxis,
		YAxis: chart.YAxis{
			Name:  series.Unit,
			Range: yRange(series),
		},
		Series: allSeries,
	}
	return graph.Render(chart.PNG, buf)
}

func (g *Generator) renderBars(buf *bytes.Buffer, series Series, cfg Config, primary, alert drawing.Color) error {
	bars := make([]chart.Value, 0, len(series.Points))
	for _, p := range series.Points {
		color := primary
		if p.OutOfRange {
			color = alert
		}
		bars = append(bars, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	yAxis := chart.YAxis{
		Name:  series.Unit,
		Range: yRange(series),
	}
	if cfg.specLimitEnabled() {
		limitStyle := chart.Style{
			StrokeColor:     alert,
			StrokeWidth:     1,
			StrokeDashArray: []float64{4, 3},
		}
		if series.Limits.Max != nil {
			yAxis.GridLines = append(yAxis.GridLines, chart.GridLine{Value: *series.Limits.Max, Style: limitStyle})
		}
		if series.Limits.Min != nil {
			yAxis.GridLines = append(yAxis.GridLines, chart.GridLine{Value: *series.Limits.Min, Style: limitStyle})
		}
	}

	graph := chart.BarChart{
		Title:    series.Title,
		Width:    cfg.Width,
		Height:   cfg.Height,
		BarWidth: barWidth(cfg.Width, len(bars)),
		YAxis:    yAxis,
		Bars:     bars,
	}
	return graph.Render(chart.PNG, buf)
}

// limitSeries builds the dashed threshold overlays with Max/Min labels.
func (g *Generator) limitSeries(series Series, minX, maxX float64, alert drawing.Color) []chart.Series {
	lineStyle := chart.Style{
		StrokeColor:     alert,
		StrokeWidth:     1,
		StrokeDashArray: []float64{4, 3},
	}

	var out []chart.Series
	add := func(value float64, label string) {
		out = append(out,
			chart.ContinuousSeries{
				XValues: []float64{minX, maxX},
				YValues: []float64{value, value},
				Style:   lineStyle,
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{XValue: maxX, YValue: value, Label: label}},
				Style:       chart.Style{StrokeColor: alert},
			},
		)
	}

	if series.Limits.Max != nil {
		add(*series.Limits.Max, g.translator.T("chart.max", trimFloat(*series.Limits.Max)))
	}
	if series.Limits.Min != nil {
		add(*series.Limits.Min, g.translator.T("chart.min", trimFloat(*series.Limits.Min)))
	}
	return out
}

// yRange pads the value range by 10% and widens it to include spec limits so
// threshold overlays are never clipped.
func yRange(series Series) *chart.ContinuousRange {
	min, max := series.Points[0].Value, series.Points[0].Value
	for _, p := range series.Points {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	if series.Limits.Min != nil && *series.Limits.Min < min {
		min = *series.Limits.Min
	}
	if series.Limits.Max != nil && *series.Limits.Max > max {
		max = *series.Limits.Max
	}
	span := max - min
	if span < 0.001 {
		span = 1
	}
	return &chart.ContinuousRange{Min: min - span*0.1, Max: max + span*0.1}
}

// labelTicks samples point labels so the axis stays readable on long series.
func labelTicks(points []Point) []chart.Tick {
	step := len(points)/8 + 1
	ticks := make([]chart.Tick, 0, len(points)/step+1)
	for i := 0; i < len(points); i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: points[i].Label})
	}
	return ticks
}

func barWidth(chartWidth, bars int) int {
	if bars == 0 {
		return 20
	}
	w := chartWidth / (bars * 2)
	if w < 8 {
		w = 8
	}
	if w > 40 {
		w = 40
	}
	return w
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func colorFromHex(hex string, fallback drawing.Color) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fallback
	}
	return drawing.ColorFromHex(hex)
}
