package blocks

import (
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

func renderIdentification(ctx report.RenderContext, data *domain.ReportData, _ domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator

	// A service provider reports on its own operation, so the info box is
	// labeled "Company" instead of "Client".
	boxTitle := t.T("identification.client")
	if data.Client.ServiceProvider {
		boxTitle = t.T("identification.company")
	}

	rows := []report.KeyValue{
		{Key: t.T("systems.name"), Value: data.Client.Name},
	}
	if data.Client.Document != "" {
		rows = append(rows, report.KeyValue{Key: t.T("identification.document"), Value: data.Client.Document})
	}
	if data.Client.Address != "" {
		rows = append(rows, report.KeyValue{Key: t.T("identification.address"), Value: data.Client.Address})
	}
	if contact := contactLine(data.Client); contact != "" {
		rows = append(rows, report.KeyValue{Key: t.T("identification.contact"), Value: contact})
	}

	period := report.FormatDate(data.Period.StartDate, ctx.Locale) + " - " +
		report.FormatDate(data.Period.EndDate, ctx.Locale)

	return report.Fragment{
		Elements: []report.Element{
			report.Heading{Text: t.T("report.title"), Level: 1},
			report.Paragraph{Text: t.T("report.period") + ": " + period},
			report.KeyValueBox{Title: boxTitle, Rows: rows},
		},
	}, nil
}

func contactLine(c domain.Client) string {
	out := c.ContactName
	if c.ContactEmail != "" {
		if out != "" {
			out += " · "
		}
		out += c.ContactEmail
	}
	if c.ContactPhone != "" {
		if out != "" {
			out += " · "
		}
		out += c.ContactPhone
	}
	return out
}
