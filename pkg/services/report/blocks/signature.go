package blocks

import (
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

func renderSignature(ctx report.RenderContext, data *domain.ReportData, _ domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator

	elements := []report.Element{
		report.Heading{Text: t.T("signature.title"), Level: 1},
	}

	sig := data.Signature
	if sig == nil {
		generated := report.FormatDate(data.GeneratedAt, ctx.Locale)
		elements = append(elements, report.KeyValueBox{Rows: []report.KeyValue{
			{Key: t.T("signature.date"), Value: generated},
		}})
		return report.Fragment{Elements: elements}, nil
	}

	if len(sig.ImageData) > 0 {
		name := sig.ImageURL
		if name == "" {
			name = "signature"
		}
		elements = append(elements, report.Image{Name: name, PNG: sig.ImageData})
	}

	rows := []report.KeyValue{
		{Key: t.T("signature.name"), Value: sig.Name},
	}
	if sig.Role != "" {
		rows = append(rows, report.KeyValue{Key: t.T("signature.role"), Value: sig.Role})
	}
	if sig.Registration != "" {
		rows = append(rows, report.KeyValue{Key: t.T("signature.registration"), Value: sig.Registration})
	}
	rows = append(rows, report.KeyValue{
		Key:   t.T("signature.date"),
		Value: report.FormatDate(data.GeneratedAt, ctx.Locale),
	})

	elements = append(elements, report.KeyValueBox{Rows: rows})
	return report.Fragment{Elements: elements}, nil
}
