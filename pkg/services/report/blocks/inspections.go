package blocks

import (
	"strconv"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

func renderInspections(ctx report.RenderContext, data *domain.ReportData, block domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator

	if len(data.Inspections) == 0 {
		return emptyState(t.T("inspections.title"), t.T("inspections.empty")), nil
	}

	inspections := data.Inspections
	if block.HighlightOnlyNonConformities {
		inspections = nonConformant(inspections)
		if len(inspections) == 0 {
			return emptyState(t.T("inspections.title"), t.T("inspections.empty_nc")), nil
		}
	}

	elements := []report.Element{
		report.Heading{Text: t.T("inspections.title"), Level: 1},
		inspectionOverview(ctx, inspections),
	}

	if block.ShowDetailedView {
		for _, insp := range inspections {
			elements = append(elements, inspectionDetail(ctx, insp, block.IncludePhotos)...)
		}
	}

	return report.Fragment{Elements: elements}, nil
}

func nonConformant(inspections []domain.Inspection) []domain.Inspection {
	var out []domain.Inspection
	for _, insp := range inspections {
		if insp.HasNonConformity() {
			out = append(out, insp)
		}
	}
	return out
}

func inspectionOverview(ctx report.RenderContext, inspections []domain.Inspection) report.Table {
	t := ctx.Translator
	rows := make([]report.TableRow, 0, len(inspections))
	for _, insp := range inspections {
		ncFlag := report.FlagNone
		if insp.HasNonConformity() {
			ncFlag = report.FlagNonCompliant
		}
		rows = append(rows, report.TableRow{Cells: []report.TableCell{
			{Text: report.FormatDate(insp.Date, ctx.Locale)},
			{Text: insp.SystemName},
			{Text: insp.Inspector},
			{Text: insp.Status},
			{Text: strconv.Itoa(insp.CompliantCount()), Flag: report.FlagCompliant},
			{Text: strconv.Itoa(insp.NonCompliantCount()), Flag: ncFlag},
		}})
	}
	return report.Table{
		Header: []string{
			t.T("inspections.date"), t.T("inspections.system"), t.T("inspections.inspector"),
			t.T("inspections.status"), t.T("inspections.compliant"), t.T("inspections.non_compliant"),
		},
		Widths: []float64{0.14, 0.24, 0.2, 0.14, 0.14, 0.14},
		Rows:   rows,
	}
}

func inspectionDetail(ctx report.RenderContext, insp domain.Inspection, includePhotos bool) []report.Element {
	t := ctx.Translator

	elements := []report.Element{
		report.Heading{
			Text:  insp.SystemName + " - " + report.FormatDate(insp.Date, ctx.Locale),
			Level: 2,
		},
	}

	rows := make([]report.TableRow, 0, len(insp.Items))
	for _, item := range insp.Items {
		rows = append(rows, report.TableRow{Cells: []report.TableCell{
			{Text: item.Description},
			{Text: t.T("status." + string(item.Status)), Flag: statusFlag(item.Status)},
			{Text: item.Note},
		}})
	}
	elements = append(elements, report.Table{
		Header: []string{t.T("inspections.item"), t.T("inspections.status"), t.T("inspections.note")},
		Widths: []float64{0.5, 0.2, 0.3},
		Rows:   rows,
	})

	if insp.Conclusion != "" {
		elements = append(elements,
			report.Heading{Text: t.T("inspections.conclusion"), Level: 3},
			report.Paragraph{Text: insp.Conclusion},
		)
	}

	if includePhotos && len(insp.Photos) > 0 {
		images := make([]report.Image, 0, len(insp.Photos))
		for _, p := range insp.Photos {
			images = append(images, report.Image{Name: p.URL, PNG: p.Data, Caption: p.Caption})
		}
		elements = append(elements, report.ImageGrid{
			Title:  t.T("inspections.photos"),
			PerRow: 2,
			Images: images,
		})
	}

	return elements
}

func statusFlag(status domain.ItemStatus) report.CellFlag {
	switch status {
	case domain.StatusCompliant:
		return report.FlagCompliant
	case domain.StatusNonCompliant:
		return report.FlagNonCompliant
	case domain.StatusNotApplicable:
		return report.FlagNotApplicable
	case domain.StatusNotVerified:
		return report.FlagNotVerified
	}
	return report.FlagNone
}
