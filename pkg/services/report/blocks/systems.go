package blocks

import (
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

const maxPhotosPerSystem = 4

func renderSystems(ctx report.RenderContext, data *domain.ReportData, block domain.ReportBlock) (report.Fragment, error) {
	t := ctx.Translator

	if len(data.Systems) == 0 {
		return emptyState(t.T("systems.title"), t.T("systems.empty")), nil
	}

	elements := []report.Element{
		report.Heading{Text: t.T("systems.title"), Level: 1},
		systemTable(ctx, data.Systems),
	}

	if block.IncludeStages {
		for _, s := range data.Systems {
			if len(s.Children) == 0 {
				continue
			}
			elements = append(elements,
				report.Heading{Text: s.Name + " - " + t.T("systems.stages"), Level: 2},
				systemTable(ctx, s.Children),
			)
		}
	}

	if block.IncludePhotos {
		for _, s := range data.Systems {
			if len(s.Photos) == 0 {
				continue
			}
			photos := s.Photos
			if len(photos) > maxPhotosPerSystem {
				photos = photos[:maxPhotosPerSystem]
			}
			images := make([]report.Image, 0, len(photos))
			for _, p := range photos {
				images = append(images, report.Image{Name: p.URL, PNG: p.Data, Caption: p.Caption})
			}
			elements = append(elements, report.ImageGrid{
				Title:  s.Name + " - " + t.T("systems.photos"),
				PerRow: 2,
				Images: images,
			})
		}
	}

	return report.Fragment{Elements: elements}, nil
}

func systemTable(ctx report.RenderContext, systems []domain.System) report.Table {
	t := ctx.Translator
	rows := make([]report.TableRow, 0, len(systems))
	for _, s := range systems {
		rows = append(rows, report.TableRow{Cells: []report.TableCell{
			{Text: s.Name},
			{Text: s.Type},
			{Text: statusLabel(ctx, s.Status)},
			{Text: s.Description},
		}})
	}
	return report.Table{
		Header: []string{t.T("systems.name"), t.T("systems.type"), t.T("systems.status"), t.T("systems.description")},
		Widths: []float64{0.25, 0.2, 0.15, 0.4},
		Rows:   rows,
	}
}

func statusLabel(ctx report.RenderContext, status domain.SystemStatus) string {
	switch status {
	case domain.SystemActive:
		return ctx.Translator.T("systems.status.active")
	case domain.SystemInactive:
		return ctx.Translator.T("systems.status.inactive")
	case domain.SystemMaintenance:
		return ctx.Translator.T("systems.status.maintenance")
	}
	return string(status)
}
