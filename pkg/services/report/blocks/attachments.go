package blocks

import (
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

// Attachments are appended to the PDF outside the rendering pipeline, so
// the block itself is a static placeholder section.
func renderAttachments(ctx report.RenderContext, _ *domain.ReportData, _ domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator
	return report.Fragment{
		Elements: []report.Element{
			report.Heading{Text: t.T("attachments.title"), Level: 1},
			report.Paragraph{Text: t.T("attachments.placeholder"), Muted: true},
		},
	}, nil
}
