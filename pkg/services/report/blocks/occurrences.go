package blocks

import (
	"sort"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

const timelineSize = 5

func renderOccurrences(ctx report.RenderContext, data *domain.ReportData, block domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator

	if len(data.Incidents) == 0 {
		return emptyState(t.T("occurrences.title"), t.T("occurrences.empty")), nil
	}

	rows := make([]report.TableRow, 0, len(data.Incidents))
	for _, inc := range data.Incidents {
		rows = append(rows, report.TableRow{Cells: []report.TableCell{
			{Text: inc.Title},
			{Text: inc.SystemName},
			{Text: t.T("priority." + string(inc.Priority)), Flag: priorityFlag(inc.Priority)},
			{Text: t.T("incident_status." + string(inc.Status))},
			{Text: report.FormatDate(inc.CreatedAt, ctx.Locale)},
		}})
	}

	elements := []report.Element{
		report.Heading{Text: t.T("occurrences.title"), Level: 1},
		report.Table{
			Header: []string{
				t.T("occurrences.incident"), t.T("occurrences.system"), t.T("occurrences.priority"),
				t.T("occurrences.status"), t.T("occurrences.created"),
			},
			Widths: []float64{0.32, 0.2, 0.14, 0.16, 0.18},
			Rows:   rows,
		},
	}

	if block.ShowTimeline {
		elements = append(elements, timeline(ctx, data.Incidents)...)
	}

	return report.Fragment{Elements: elements}, nil
}

// timeline lists the most recent incidents with creation and resolution
// timestamps.
func timeline(ctx report.RenderContext, incidents []domain.Incident) []report.Element {
	t := ctx.Translator

	recent := make([]domain.Incident, len(incidents))
	copy(recent, incidents)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > timelineSize {
		recent = recent[:timelineSize]
	}

	rows := make([]report.TableRow, 0, len(recent))
	for _, inc := range recent {
		resolved := t.T("occurrences.unresolved")
		flag := report.FlagOutOfRange
		if inc.ResolvedAt != nil {
			resolved = report.FormatDateTime(*inc.ResolvedAt, ctx.Locale)
			flag = report.FlagNone
		}
		rows = append(rows, report.TableRow{Cells: []report.TableCell{
			{Text: inc.Title},
			{Text: report.FormatDateTime(inc.CreatedAt, ctx.Locale)},
			{Text: resolved, Flag: flag},
		}})
	}

	return []report.Element{
		report.Heading{Text: t.T("occurrences.timeline"), Level: 2},
		report.Table{
			Header: []string{t.T("occurrences.incident"), t.T("occurrences.created"), t.T("occurrences.resolved")},
			Widths: []float64{0.44, 0.28, 0.28},
			Rows:   rows,
		},
	}
}

func priorityFlag(p domain.IncidentPriority) report.CellFlag {
	if p == domain.PriorityHigh || p == domain.PriorityCritical {
		return report.FlagHighPriority
	}
	return report.FlagNone
}
