package blocks

import (
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

var periodDescriptionKeys = map[domain.PeriodType]string{
	domain.PeriodWeekly:    "report.period.weekly",
	domain.PeriodMonthly:   "report.period.monthly",
	domain.PeriodQuarterly: "report.period.quarterly",
	domain.PeriodCustom:    "report.period.custom",
}

func renderScope(ctx report.RenderContext, data *domain.ReportData, _ domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator

	key, ok := periodDescriptionKeys[data.Period.Type]
	if !ok {
		key = "report.period.custom"
	}
	description := t.T(key,
		report.FormatDate(data.Period.StartDate, ctx.Locale),
		report.FormatDate(data.Period.EndDate, ctx.Locale))

	elements := []report.Element{
		report.Heading{Text: t.T("scope.title"), Level: 1},
		report.Paragraph{Text: description},
	}

	if len(data.Systems) == 0 {
		elements = append(elements, report.Paragraph{Text: t.T("scope.empty"), Muted: true})
	} else {
		elements = append(elements, report.Heading{Text: t.T("scope.systems"), Level: 2})
		rows := make([]report.TableRow, 0, len(data.Systems))
		for _, s := range data.Systems {
			rows = append(rows, report.TableRow{Cells: []report.TableCell{
				{Text: s.Name},
				{Text: s.Type},
			}})
		}
		elements = append(elements, report.Table{
			Header: []string{t.T("systems.name"), t.T("systems.type")},
			Widths: []float64{0.6, 0.4},
			Rows:   rows,
		})
	}

	return report.Fragment{Elements: elements}, nil
}
