package blocks

import (
	"sort"
	"time"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

// detailedDateWindow caps the pivoted detail table at the latest distinct
// log dates, rendered ascending left to right.
const detailedDateWindow = 7

func renderAnalyses(ctx report.RenderContext, data *domain.ReportData, block domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator

	field := logsOfType(data.DailyLogs, domain.RecordField)
	lab := logsOfType(data.DailyLogs, domain.RecordLaboratory)
	if len(field) == 0 && len(lab) == 0 {
		return emptyState(t.T("analyses.title"), t.T("analyses.empty")), nil
	}

	elements := []report.Element{
		report.Heading{Text: t.T("analyses.title"), Level: 1},
	}

	sections := []struct {
		titleKey     string
		logs         []domain.DailyLog
		showOverview bool
		showDetailed bool
		images       map[string][]byte
	}{
		{"analyses.field", field, block.ShowFieldOverview, block.ShowFieldDetailed, chartImagesFor(data, domain.RecordField)},
		{"analyses.laboratory", lab, block.ShowLabOverview, block.ShowLabDetailed, chartImagesFor(data, domain.RecordLaboratory)},
	}

	for _, section := range sections {
		if len(section.logs) == 0 {
			continue
		}
		elements = append(elements, report.Heading{Text: t.T(section.titleKey), Level: 2})

		if section.showOverview {
			elements = append(elements,
				report.Heading{Text: t.T("analyses.overview"), Level: 3},
				overviewTable(ctx, section.logs),
			)
		}
		if section.showDetailed {
			elements = append(elements,
				report.Heading{Text: t.T("analyses.detailed"), Level: 3},
				detailedTable(ctx, section.logs),
			)
		}
		if block.IncludeCharts {
			elements = append(elements, chartElements(ctx, section.logs, section.images)...)
		}
	}

	if obs := observationRows(ctx, data.DailyLogs); len(obs) > 0 {
		elements = append(elements,
			report.Heading{Text: t.T("analyses.observations"), Level: 2},
			report.Table{
				Header: []string{t.T("analyses.date"), t.T("analyses.system"), t.T("analyses.parameter"), t.T("inspections.note")},
				Widths: []float64{0.15, 0.2, 0.2, 0.45},
				Rows:   obs,
			},
		)
	}

	return report.Fragment{Elements: elements}, nil
}

func logsOfType(logs []domain.DailyLog, recordType domain.RecordType) []domain.DailyLog {
	var out []domain.DailyLog
	for _, l := range logs {
		if l.RecordType == recordType {
			out = append(out, l)
		}
	}
	return out
}

func chartImagesFor(data *domain.ReportData, recordType domain.RecordType) map[string][]byte {
	if data.ChartImages == nil {
		return nil
	}
	if recordType == domain.RecordField {
		return data.ChartImages.Field
	}
	return data.ChartImages.Laboratory
}

// overviewTable lists one row per daily log with reading counts.
func overviewTable(ctx report.RenderContext, logs []domain.DailyLog) report.Table {
	t := ctx.Translator
	rows := make([]report.TableRow, 0, len(logs))
	for _, l := range logs {
		outOfRange := 0
		for _, e := range l.Entries {
			if e.OutOfRange {
				outOfRange++
			}
		}
		flag := report.FlagNone
		if outOfRange > 0 {
			flag = report.FlagOutOfRange
		}
		rows = append(rows, report.TableRow{Cells: []report.TableCell{
			{Text: report.FormatDate(l.Date, ctx.Locale)},
			{Text: l.SystemName},
			{Text: l.Operator},
			{Text: report.FormatValue(floatPtr(float64(len(l.Entries))))},
			{Text: report.FormatValue(floatPtr(float64(outOfRange))), Flag: flag},
		}})
	}
	return report.Table{
		Header: []string{
			t.T("analyses.date"), t.T("analyses.system"), t.T("analyses.operator"),
			t.T("analyses.readings"), t.T("analyses.out_of_range"),
		},
		Widths: []float64{0.15, 0.3, 0.25, 0.15, 0.15},
		Rows:   rows,
	}
}

// detailedTable pivots readings: rows are monitoring points, columns the
// latest distinct log dates (at most detailedDateWindow), ascending.
func detailedTable(ctx report.RenderContext, logs []domain.DailyLog) report.Table {
	t := ctx.Translator
	dates := latestDates(logs, detailedDateWindow)

	type cellKey struct {
		point string
		date  string
	}
	points := map[string]domain.MonitoringPoint{}
	cells := map[cellKey]domain.LogEntry{}
	for _, l := range logs {
		day := l.Date.Format("2006-01-02")
		for _, e := range l.Entries {
			points[e.Point.ID] = e.Point
			cells[cellKey{point: e.Point.ID, date: day}] = e
		}
	}

	ordered := make([]domain.MonitoringPoint, 0, len(points))
	for _, p := range points {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	header := []string{t.T("analyses.parameter")}
	for _, d := range dates {
		header = append(header, report.FormatDateString(d, ctx.Locale))
	}

	rows := make([]report.TableRow, 0, len(ordered))
	for _, p := range ordered {
		name := p.Name
		if p.Unit != "" {
			name += " (" + p.Unit + ")"
		}
		row := []report.TableCell{{Text: name}}
		for _, d := range dates {
			entry, ok := cells[cellKey{point: p.ID, date: d}]
			if !ok {
				row = append(row, report.TableCell{Text: "-"})
				continue
			}
			flag := report.FlagNone
			if entry.OutOfRange {
				flag = report.FlagOutOfRange
			}
			row = append(row, report.TableCell{Text: report.FormatValue(entry.Value), Flag: flag})
		}
		rows = append(rows, report.TableRow{Cells: row})
	}

	return report.Table{Header: header, Rows: rows}
}

// latestDates returns at most limit distinct log days, ascending.
func latestDates(logs []domain.DailyLog, limit int) []string {
	seen := map[string]bool{}
	var days []string
	for _, l := range logs {
		day := l.Date.Format("2006-01-02")
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Strings(days)
	if len(days) > limit {
		days = days[len(days)-limit:]
	}
	return days
}

// chartElements embeds the pre-generated chart image of every monitoring
// point in the section, with an explicit placeholder for missing images.
func chartElements(ctx report.RenderContext, logs []domain.DailyLog, images map[string][]byte) []report.Element {
	t := ctx.Translator

	points := map[string]domain.MonitoringPoint{}
	for _, l := range logs {
		for _, e := range l.Entries {
			points[e.Point.ID] = e.Point
		}
	}
	if len(points) == 0 {
		return nil
	}

	ordered := make([]domain.MonitoringPoint, 0, len(points))
	for _, p := range points {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	elements := []report.Element{report.Heading{Text: t.T("analyses.charts"), Level: 3}}
	for _, p := range ordered {
		png, ok := images[p.ID]
		if !ok || len(png) == 0 {
			elements = append(elements, report.Paragraph{
				Text:  p.Name + ": " + t.T("analyses.chart_unavailable"),
				Muted: true,
			})
			continue
		}
		elements = append(elements, report.Image{Name: "chart-" + p.ID, PNG: png, Caption: p.Name})
	}
	return elements
}

// observationRows collects free-text notes and out-of-range readings across
// all logs, chronologically.
func observationRows(ctx report.RenderContext, logs []domain.DailyLog) []report.TableRow {
	type observation struct {
		date   time.Time
		system string
		point  string
		note   string
		flag   report.CellFlag
	}

	var all []observation
	for _, l := range logs {
		for _, e := range l.Entries {
			if e.Note == "" && !e.OutOfRange {
				continue
			}
			note := e.Note
			flag := report.FlagNone
			if e.OutOfRange {
				flag = report.FlagOutOfRange
				if note == "" {
					note = ctx.Translator.T("analyses.out_of_range") + ": " +
						report.FormatValue(e.Value) + " (" + report.FormatRange(e.Point.Limits) + ")"
				}
			}
			all = append(all, observation{
				date:   l.Date,
				system: l.SystemName,
				point:  e.Point.Name,
				note:   note,
				flag:   flag,
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].date.Before(all[j].date) })

	rows := make([]report.TableRow, 0, len(all))
	for _, o := range all {
		rows = append(rows, report.TableRow{Cells: []report.TableCell{
			{Text: report.FormatDate(o.date, ctx.Locale)},
			{Text: o.system},
			{Text: o.point},
			{Text: o.note, Flag: o.flag},
		}})
	}
	return rows
}

func floatPtr(v float64) *float64 { return &v }
