package blocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

func inspection(system string, statuses ...domain.ItemStatus) domain.Inspection {
	insp := domain.Inspection{
		SystemName: system,
		Inspector:  "M. Costa",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     "done",
	}
	for _, s := range statuses {
		insp.Items = append(insp.Items, domain.ChecklistItem{Description: "item", Status: s})
	}
	return insp
}

func TestRenderInspections_NonConformityFilter(t *testing.T) {
	data := &domain.ReportData{
		Inspections: []domain.Inspection{
			inspection("Tower A", domain.StatusCompliant, domain.StatusCompliant),
			inspection("Tower B", domain.StatusCompliant, domain.StatusNonCompliant),
			inspection("Boiler", domain.StatusNonCompliant),
		},
	}

	fragment, err := renderInspections(enContext(), data, domain.ReportBlock{
		Type:                         domain.BlockInspections,
		HighlightOnlyNonConformities: true,
	})
	require.NoError(t, err)

	tables := findTables(fragment.Elements)
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 2, "fully conformant inspections must be filtered out")
	assert.Equal(t, "Tower B", tables[0].Rows[0].Cells[1].Text)
	assert.Equal(t, "Boiler", tables[0].Rows[1].Cells[1].Text)
}

func TestRenderInspections_FilterWithNoNonConformities(t *testing.T) {
	data := &domain.ReportData{
		Inspections: []domain.Inspection{
			inspection("Tower A", domain.StatusCompliant),
		},
	}

	fragment, err := renderInspections(enContext(), data, domain.ReportBlock{
		Type:                         domain.BlockInspections,
		HighlightOnlyNonConformities: true,
	})
	require.NoError(t, err)

	require.Len(t, fragment.Elements, 2)
	paragraph, ok := fragment.Elements[1].(report.Paragraph)
	require.True(t, ok, "placeholder expected when the filter removes everything")
	assert.True(t, paragraph.Muted)
}

func TestRenderInspections_OverviewCounts(t *testing.T) {
	data := &domain.ReportData{
		Inspections: []domain.Inspection{
			inspection("Tower A",
				domain.StatusCompliant, domain.StatusCompliant,
				domain.StatusNonCompliant, domain.StatusNotApplicable),
		},
	}

	fragment, err := renderInspections(enContext(), data, domain.ReportBlock{Type: domain.BlockInspections})
	require.NoError(t, err)

	tables := findTables(fragment.Elements)
	require.Len(t, tables, 1)
	cells := tables[0].Rows[0].Cells
	require.Len(t, cells, 6)
	assert.Equal(t, "2", cells[4].Text)
	assert.Equal(t, "1", cells[5].Text)
	assert.Equal(t, report.FlagNonCompliant, cells[5].Flag)
}

func TestRenderInspections_DetailedViewStatusLabels(t *testing.T) {
	insp := inspection("Tower A",
		domain.StatusCompliant, domain.StatusNonCompliant,
		domain.StatusNotApplicable, domain.StatusNotVerified)
	data := &domain.ReportData{Inspections: []domain.Inspection{insp}}

	fragment, err := renderInspections(enContext(), data, domain.ReportBlock{
		Type:             domain.BlockInspections,
		ShowDetailedView: true,
	})
	require.NoError(t, err)

	tables := findTables(fragment.Elements)
	require.Len(t, tables, 2, "overview plus one detail table")

	detail := tables[1]
	require.Len(t, detail.Rows, 4)
	assert.Equal(t, "Compliant", detail.Rows[0].Cells[1].Text)
	assert.Equal(t, report.FlagCompliant, detail.Rows[0].Cells[1].Flag)
	assert.Equal(t, "Non-compliant", detail.Rows[1].Cells[1].Text)
	assert.Equal(t, report.FlagNonCompliant, detail.Rows[1].Cells[1].Flag)
	assert.Equal(t, "Not applicable", detail.Rows[2].Cells[1].Text)
	assert.Equal(t, "Not verified", detail.Rows[3].Cells[1].Text)
}

func TestRenderInspections_EmptyState(t *testing.T) {
	fragment, err := renderInspections(enContext(), &domain.ReportData{}, domain.ReportBlock{Type: domain.BlockInspections})
	require.NoError(t, err)

	require.Len(t, fragment.Elements, 2)
	paragraph, ok := fragment.Elements[1].(report.Paragraph)
	require.True(t, ok)
	assert.True(t, paragraph.Muted)
}
