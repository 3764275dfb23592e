package blocks

import (
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

func renderConclusion(ctx report.RenderContext, data *domain.ReportData, _ domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator

	elements := []report.Element{
		report.Heading{Text: t.T("conclusion.title"), Level: 1},
		report.CounterRow{Counters: []report.Counter{
			{Label: t.T("conclusion.systems"), Value: data.Summary.SystemCount},
			{Label: t.T("conclusion.readings"), Value: data.Summary.ReadingCount},
			{Label: t.T("conclusion.inspections"), Value: data.Summary.InspectionCount},
			{Label: t.T("conclusion.incidents"), Value: data.Summary.IncidentCount},
		}},
	}

	if data.Summary.OutOfRangeCount > 0 {
		elements = append(elements, report.Banner{
			Text:     t.T("conclusion.out_of_range_warn", data.Summary.OutOfRangeCount),
			Severity: report.BannerWarning,
		})
	}

	if data.Conclusion != "" {
		elements = append(elements, report.Paragraph{Text: data.Conclusion})
	}

	return report.Fragment{Elements: elements}, nil
}
